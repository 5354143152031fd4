package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"audionorm/internal/fileutil"
)

var commandContext = exec.CommandContext

// Container selects the output muxer and codec.
type Container string

const (
	ContainerMP3 Container = "mp3"
	ContainerWAV Container = "wav"
)

// PCMFormat describes interleaved signed 16-bit little-endian samples.
type PCMFormat struct {
	Channels   int
	SampleRate int
}

func (f PCMFormat) validate() error {
	if f.Channels <= 0 {
		return fmt.Errorf("invalid channel count %d", f.Channels)
	}
	if f.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", f.SampleRate)
	}
	return nil
}

// EncodeOptions controls the re-encode of normalized PCM.
type EncodeOptions struct {
	Container  Container
	SampleRate int
	// Bitrate applies to lossy containers only, e.g. "192k".
	Bitrate string
}

// DecodePCM decodes the first audio stream of path into raw s16le PCM in the
// requested layout.
func DecodePCM(ctx context.Context, binary, path string, format PCMFormat) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("ffmpeg decode: empty path")
	}
	if err := format.validate(); err != nil {
		return nil, fmt.Errorf("ffmpeg decode: %w", err)
	}
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-nostdin",
		"-i", path,
		"-map", "0:a:0",
		"-vn",
		"-sn",
		"-dn",
		"-ac", strconv.Itoa(format.Channels),
		"-ar", strconv.Itoa(format.SampleRate),
		"-c:a", "pcm_s16le",
		"-f", "s16le",
		"pipe:1",
	}
	var stdout, stderr bytes.Buffer
	cmd := commandContext(ctx, binaryOrDefault(binary), args...) //nolint:gosec
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg decode: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	frame := 2 * format.Channels
	if stdout.Len()%frame != 0 {
		return nil, fmt.Errorf("ffmpeg decode: %d bytes is not a whole number of %d-channel frames", stdout.Len(), format.Channels)
	}
	return stdout.Bytes(), nil
}

// EncodePCM encodes raw s16le PCM into dest. The file is written under a temp
// name and renamed on success, so dest never holds a partial encode.
func EncodePCM(ctx context.Context, binary string, pcm []byte, in PCMFormat, opts EncodeOptions, dest string) error {
	if strings.TrimSpace(dest) == "" {
		return errors.New("ffmpeg encode: empty destination")
	}
	if err := in.validate(); err != nil {
		return fmt.Errorf("ffmpeg encode: %w", err)
	}
	codecArgs, err := encodeArgs(opts)
	if err != nil {
		return fmt.Errorf("ffmpeg encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("ffmpeg encode: create output directory: %w", err)
	}

	tmp := dest + fileutil.TempSuffix
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "s16le",
		"-ar", strconv.Itoa(in.SampleRate),
		"-ac", strconv.Itoa(in.Channels),
		"-i", "pipe:0",
	}
	args = append(args, codecArgs...)
	args = append(args, tmp)

	var stderr bytes.Buffer
	cmd := commandContext(ctx, binaryOrDefault(binary), args...) //nolint:gosec
	cmd.Stdin = bytes.NewReader(pcm)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		_ = fileutil.RemoveIfExists(tmp)
		return fmt.Errorf("ffmpeg encode: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = fileutil.RemoveIfExists(tmp)
		return fmt.Errorf("ffmpeg encode: %w", err)
	}
	return nil
}

func encodeArgs(opts EncodeOptions) ([]string, error) {
	if opts.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid output sample rate %d", opts.SampleRate)
	}
	rate := strconv.Itoa(opts.SampleRate)
	switch opts.Container {
	case ContainerMP3:
		bitrate := strings.TrimSpace(opts.Bitrate)
		if bitrate == "" {
			return nil, errors.New("mp3 output requires a bitrate")
		}
		return []string{"-c:a", "libmp3lame", "-b:a", bitrate, "-ar", rate, "-f", "mp3"}, nil
	case ContainerWAV:
		return []string{"-c:a", "pcm_s16le", "-ar", rate, "-f", "wav"}, nil
	default:
		return nil, fmt.Errorf("unsupported container %q", opts.Container)
	}
}

func binaryOrDefault(binary string) string {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return "ffmpeg"
	}
	return binary
}
