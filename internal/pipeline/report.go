package pipeline

import (
	"time"

	"audionorm/internal/assets"
)

// Outcome is the final state of one file in the run.
type Outcome string

const (
	OutcomeNotDownloaded Outcome = "not downloaded"
	OutcomeNormalized    Outcome = "normalized"
	OutcomeSkipped       Outcome = "skipped"
	OutcomeFailed        Outcome = "failed"
)

// Entry tracks a single asset through download and normalization.
type Entry struct {
	Path     string
	Category string

	Downloaded    bool
	DownloadBytes int64
	DownloadErr   error

	Outcome         Outcome
	Err             error
	OriginalBytes   int64
	NormalizedBytes int64
	Duration        time.Duration
	LevelAfter      float64
}

// Report collects per-file outcomes for the summary. It carries
// no aggregate failure count.
type Report struct {
	RunID         string
	NormalizedDir string
	Entries       []*Entry

	index map[string]*Entry
}

func newReport(runID, normalizedDir string, list []assets.Asset) *Report {
	r := &Report{
		RunID:         runID,
		NormalizedDir: normalizedDir,
		index:         make(map[string]*Entry, len(list)),
	}
	for _, a := range list {
		r.ensure(a.Path)
	}
	return r
}

// Entry returns the entry for a relative path, or nil.
func (r *Report) Entry(rel string) *Entry {
	if r == nil {
		return nil
	}
	return r.index[rel]
}

// ensure returns the entry for rel, appending one for files that were found
// in the download tree without being in the asset list.
func (r *Report) ensure(rel string) *Entry {
	if e, ok := r.index[rel]; ok {
		return e
	}
	e := &Entry{Path: rel, Category: assets.Category(rel), Outcome: OutcomeNotDownloaded}
	r.index[rel] = e
	r.Entries = append(r.Entries, e)
	return e
}
