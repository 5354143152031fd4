// Package fetch downloads CDN assets with a single plain GET per file.
//
// There is no retry, no auth and no checksum: a transport error or non-2xx
// response is returned to the caller, which logs it and moves on. Bodies are
// written through a temp file so a failed transfer never leaves a truncated
// file in the download tree.
package fetch
