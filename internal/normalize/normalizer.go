package normalize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"audionorm/internal/assets"
	"audionorm/internal/config"
	"audionorm/internal/fileutil"
	"audionorm/internal/logging"
	"audionorm/internal/loudness"
	"audionorm/internal/media/ffmpeg"
	"audionorm/internal/media/ffprobe"
)

// ErrUnsupportedFormat marks files whose extension the normalizer cannot
// decode and re-encode.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Prober reports stream layout for a file.
type Prober interface {
	Probe(ctx context.Context, path string) (ffprobe.Result, error)
}

// Codec decodes to and encodes from raw s16le PCM.
type Codec interface {
	Decode(ctx context.Context, path string, format ffmpeg.PCMFormat) ([]byte, error)
	Encode(ctx context.Context, pcm []byte, in ffmpeg.PCMFormat, opts ffmpeg.EncodeOptions, dest string) error
}

// Settings are the level targets and output encoder parameters.
type Settings struct {
	TargetDBFS float64
	HeadroomDB float64
	SampleRate int
	MP3Bitrate string
}

// SettingsFromConfig copies the [normalize] section.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		TargetDBFS: cfg.Normalize.TargetDBFS,
		HeadroomDB: cfg.Normalize.HeadroomDB,
		SampleRate: cfg.Normalize.SampleRate,
		MP3Bitrate: cfg.Normalize.MP3Bitrate,
	}
}

// Result describes one successful normalization.
type Result struct {
	Input           string
	Output          string
	Format          assets.Format
	OriginalBytes   int64
	NormalizedBytes int64
	Channels        int
	SourceRate      int
	Duration        time.Duration
	Stats           loudness.Stats
}

// Normalizer runs probe → decode → level → encode for a single file.
type Normalizer struct {
	prober   Prober
	codec    Codec
	settings Settings
	logger   *slog.Logger
}

// New builds a Normalizer.
func New(prober Prober, codec Codec, settings Settings, logger *slog.Logger) *Normalizer {
	return &Normalizer{
		prober:   prober,
		codec:    codec,
		settings: settings,
		logger:   logging.NewComponentLogger(logger, "normalize"),
	}
}

// File normalizes input into output. When it returns an error, output does
// not exist.
func (n *Normalizer) File(ctx context.Context, input, output string) (Result, error) {
	res, err := n.file(ctx, input, output)
	if err != nil {
		if rmErr := fileutil.RemoveIfExists(output); rmErr != nil {
			n.logger.Debug("remove partial output failed", logging.String("path", output), logging.Error(rmErr))
		}
		return Result{}, err
	}
	return res, nil
}

func (n *Normalizer) file(ctx context.Context, input, output string) (Result, error) {
	format := assets.FormatOf(input)
	if format == assets.FormatUnsupported {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, assets.Extension(input))
	}

	res := Result{Input: input, Output: output, Format: format}
	size, err := fileutil.Size(input)
	if err != nil {
		return Result{}, fmt.Errorf("stat input: %w", err)
	}
	res.OriginalBytes = size

	probe, err := n.prober.Probe(ctx, input)
	if err != nil {
		return Result{}, err
	}
	stream, ok := probe.FirstAudioStream()
	if !ok {
		return Result{}, errors.New("no audio stream found")
	}
	pcmFormat := ffmpeg.PCMFormat{Channels: stream.Channels, SampleRate: stream.SampleRateHz()}
	if pcmFormat.Channels <= 0 || pcmFormat.SampleRate <= 0 {
		return Result{}, fmt.Errorf("unusable audio stream (channels=%d, sample_rate=%q)", stream.Channels, stream.SampleRate)
	}
	res.Channels = pcmFormat.Channels
	res.SourceRate = pcmFormat.SampleRate
	res.Duration = probe.Duration(stream)

	pcm, err := n.codec.Decode(ctx, input, pcmFormat)
	if err != nil {
		return Result{}, err
	}
	seg, err := loudness.FromPCM(pcm, pcmFormat.Channels, pcmFormat.SampleRate)
	if err != nil {
		return Result{}, fmt.Errorf("decode pcm: %w", err)
	}
	if res.Duration == 0 {
		res.Duration = time.Duration(seg.Frames()) * time.Second / time.Duration(seg.SampleRate)
	}

	processed, stats, err := loudness.Process(seg, loudness.Params{
		HeadroomDB: n.settings.HeadroomDB,
		TargetDBFS: n.settings.TargetDBFS,
	})
	if err != nil {
		return Result{}, fmt.Errorf("level: %w", err)
	}
	res.Stats = stats

	opts := ffmpeg.EncodeOptions{SampleRate: n.settings.SampleRate}
	switch format {
	case assets.FormatMP3:
		opts.Container = ffmpeg.ContainerMP3
		opts.Bitrate = n.settings.MP3Bitrate
	case assets.FormatWAV:
		opts.Container = ffmpeg.ContainerWAV
	}
	if err := n.codec.Encode(ctx, processed.PCM(), pcmFormat, opts, output); err != nil {
		return Result{}, err
	}

	info, err := os.Stat(output)
	if err != nil {
		return Result{}, fmt.Errorf("stat output: %w", err)
	}
	res.NormalizedBytes = info.Size()

	n.logger.Debug("levels adjusted",
		logging.String("input", input),
		logging.Duration("duration", res.Duration),
		logging.Float64("peak_before_dbfs", stats.PeakBefore),
		logging.Float64("level_before_dbfs", stats.LevelBefore),
		logging.Float64("peak_gain_db", stats.PeakGain),
		logging.Float64("target_gain_db", stats.TargetGain),
		logging.Float64("level_after_dbfs", stats.LevelAfter),
	)
	return res, nil
}
