package preflight

import (
	"context"

	"audionorm/internal/config"
	"audionorm/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	for _, status := range CheckSystemDeps(cfg) {
		results = append(results, FromStatus(status))
	}
	results = append(results, CheckWorkParent(cfg.Paths.WorkDir))
	results = append(results, CheckCDN(ctx, cfg.CDN.BaseURL, cfg.RequestTimeout()))
	return results
}

// FromStatus converts a dependency status into a check result.
func FromStatus(status deps.Status) Result {
	if status.Available {
		return Result{Name: status.Name, Passed: true, Detail: status.Command}
	}
	return Result{Name: status.Name, Detail: status.Detail}
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}
