// Package assets describes the CDN audio files the batch job processes:
// their relative paths, categories, download URLs and audio formats.
package assets
