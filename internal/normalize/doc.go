// Package normalize turns one downloaded MP3 or WAV file into its
// level-adjusted copy.
//
// ffprobe supplies the channel layout, ffmpeg decodes to PCM, the loudness
// package applies peak normalization plus the flat gain shift, and ffmpeg
// re-encodes at the output rate (MP3 at a fixed bitrate). Any failure removes
// the output so the normalized tree only ever holds complete results.
package normalize
