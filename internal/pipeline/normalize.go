package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dustin/go-humanize"

	"audionorm/internal/assets"
	"audionorm/internal/fileutil"
	"audionorm/internal/logging"
	"audionorm/internal/normalize"
)

// normalize processes every file in the download tree, not just the asset
// list, so stray files are reported rather than silently ignored.
func (r *Runner) normalize(ctx context.Context, logger *slog.Logger, con *console, report *Report) error {
	con.section("Normalizing audio...")

	files, err := r.layout.Files()
	if err != nil {
		return err
	}
	con.attach(newProgress(r.progressW != nil, r.progressW, len(files), "Normalizing"))
	defer con.detach()

	for _, input := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := r.layout.Rel(input)
		if err != nil {
			return err
		}
		entry := report.ensure(rel)
		if size, err := fileutil.Size(input); err == nil {
			entry.OriginalBytes = size
		}
		con.line("Processing: %s", rel)

		res, err := r.normalizer.File(ctx, input, r.layout.NormalizedPath(rel))
		switch {
		case err == nil:
			entry.Outcome = OutcomeNormalized
			entry.OriginalBytes = res.OriginalBytes
			entry.NormalizedBytes = res.NormalizedBytes
			entry.Duration = res.Duration
			entry.LevelAfter = res.Stats.LevelAfter
			logger.Debug("normalized",
				logging.String(logging.FieldAsset, rel),
				logging.Int64("original_bytes", res.OriginalBytes),
				logging.Int64("normalized_bytes", res.NormalizedBytes),
				logging.Duration("duration", res.Duration),
				logging.Float64("level_dbfs", res.Stats.LevelAfter),
			)
			con.success("done (original: %s -> normalized: %s)",
				humanize.IBytes(uint64(res.OriginalBytes)),
				humanize.IBytes(uint64(res.NormalizedBytes)),
			)
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(err, normalize.ErrUnsupportedFormat):
			entry.Outcome = OutcomeSkipped
			entry.Err = err
			con.clearBar()
			logging.WarnWithContext(logger, "unsupported format", "unsupported_format",
				logging.String(logging.FieldAsset, rel),
				logging.String("extension", assets.Extension(rel)),
				logging.String(logging.FieldErrorHint, "only .mp3 and .wav files are normalized"),
			)
			con.warning("unsupported format: %s", assets.Extension(rel))
		default:
			entry.Outcome = OutcomeFailed
			entry.Err = err
			con.clearBar()
			logging.WarnWithContext(logger, "normalization failed", "normalize_failed",
				logging.String(logging.FieldAsset, rel),
				logging.String(logging.FieldErrorHint, "inspect the source file with ffprobe"),
				logging.Error(err),
			)
			con.failure("failed: %v", err)
		}
		if con.bar != nil {
			_ = con.bar.Add(1)
		}
	}

	con.detach()
	con.done("Normalization complete")
	return nil
}
