package pipeline

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"audionorm/internal/textutil"
)

// uploadPrefixes are the tree roots synced to object storage.
var uploadPrefixes = []string{"audio", "assets/audio"}

func writeSummary(w io.Writer, con *console, report *Report, normalizedDir string) {
	fmt.Fprintln(w)
	con.banner("Audio normalization finished")
	fmt.Fprintf(w, "\nOutput directory: %s\n\n", report.NormalizedDir)

	fmt.Fprintln(w, renderReport(report))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  1. Review the normalized files")
	fmt.Fprintln(w, "  2. Listen to them and check the audio quality")
	fmt.Fprintln(w, "  3. Upload them to the CDN")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Upload example (AWS S3):")
	for _, line := range uploadCommands(normalizedDir) {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)
}

func renderReport(report *Report) string {
	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		length, level := "-", "-"
		if e.Outcome == OutcomeNormalized {
			length = durationCell(e.Duration)
			level = fmt.Sprintf("%.1f dBFS", e.LevelAfter)
		}
		rows = append(rows, []string{
			e.Path,
			textutil.Title(e.Category),
			sizeCell(e.OriginalBytes, e.Downloaded || e.OriginalBytes > 0),
			sizeCell(e.NormalizedBytes, e.Outcome == OutcomeNormalized),
			length,
			level,
			string(e.Outcome),
		})
	}
	return textutil.Table(
		[]string{"File", "Category", "Original", "Normalized", "Length", "Level", "Status"},
		rows,
		[]textutil.Alignment{textutil.AlignLeft, textutil.AlignLeft, textutil.AlignRight, textutil.AlignRight, textutil.AlignRight, textutil.AlignRight, textutil.AlignLeft},
	)
}

func sizeCell(n int64, known bool) string {
	if !known {
		return "-"
	}
	return humanize.IBytes(uint64(n))
}

// durationCell renders whole seconds, or tenths for clips under ten seconds.
func durationCell(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < 10*time.Second {
		return d.Round(100 * time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}

func uploadCommands(normalizedDir string) []string {
	out := make([]string, 0, len(uploadPrefixes))
	for _, prefix := range uploadPrefixes {
		local := filepath.Join(normalizedDir, filepath.FromSlash(prefix))
		out = append(out, fmt.Sprintf("aws s3 sync %s s3://your-bucket/%s --acl public-read", local, path.Clean(prefix)))
	}
	return out
}
