// Package ffmpeg pipes raw PCM in and out of the ffmpeg binary.
//
// DecodePCM turns any input ffmpeg understands into interleaved s16le
// samples on stdout; EncodePCM feeds samples on stdin and writes MP3 (via
// libmp3lame at a fixed bitrate) or 16-bit WAV at the requested output rate.
// Gain math happens in Go between the two calls.
package ffmpeg
