package pipeline

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// newProgress returns a per-file bar on w, or a silent bar when the output
// is not interactive.
func newProgress(enabled bool, w io.Writer, total int, description string) *progressbar.ProgressBar {
	if !enabled || w == nil {
		return progressbar.DefaultSilent(int64(total), description)
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetItsString("file"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(false),
	)
}
