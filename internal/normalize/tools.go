package normalize

import (
	"context"

	"audionorm/internal/media/ffmpeg"
	"audionorm/internal/media/ffprobe"
)

// FFprobe adapts the ffprobe package to Prober.
type FFprobe struct {
	Binary string
}

func (p FFprobe) Probe(ctx context.Context, path string) (ffprobe.Result, error) {
	return ffprobe.Inspect(ctx, p.Binary, path)
}

// FFmpeg adapts the ffmpeg package to Codec.
type FFmpeg struct {
	Binary string
}

func (c FFmpeg) Decode(ctx context.Context, path string, format ffmpeg.PCMFormat) ([]byte, error) {
	return ffmpeg.DecodePCM(ctx, c.Binary, path, format)
}

func (c FFmpeg) Encode(ctx context.Context, pcm []byte, in ffmpeg.PCMFormat, opts ffmpeg.EncodeOptions, dest string) error {
	return ffmpeg.EncodePCM(ctx, c.Binary, pcm, in, opts, dest)
}
