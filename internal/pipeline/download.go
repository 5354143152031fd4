package pipeline

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"

	"audionorm/internal/assets"
	"audionorm/internal/logging"
)

func (r *Runner) download(ctx context.Context, logger *slog.Logger, con *console, report *Report) error {
	con.section("Downloading audio files...")
	con.attach(newProgress(r.progressW != nil, r.progressW, len(r.assets), "Downloading"))
	defer con.detach()

	for _, asset := range r.assets {
		if err := ctx.Err(); err != nil {
			return err
		}
		entry := report.ensure(asset.Path)
		url := assets.URL(r.cfg.CDN.BaseURL, asset.Path)

		n, err := r.fetcher.Download(ctx, url, r.layout.OriginalPath(asset.Path))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			entry.DownloadErr = err
			con.clearBar()
			logging.WarnWithContext(logger, "download failed", "download_failed",
				logging.String(logging.FieldAsset, asset.Path),
				logging.String("url", url),
				logging.String(logging.FieldErrorHint, "check the asset path on the CDN and network connectivity"),
				logging.Error(err),
			)
			con.failure("%s - failed: %v", asset.Path, err)
		} else {
			entry.Downloaded = true
			entry.DownloadBytes = n
			logger.Debug("downloaded",
				logging.String(logging.FieldAsset, asset.Path),
				logging.Int64("bytes", n),
			)
			con.success("%s (%s)", asset.Path, humanize.IBytes(uint64(n)))
		}
		if con.bar != nil {
			_ = con.bar.Add(1)
		}
	}

	con.detach()
	con.done("Download complete")
	return nil
}
