package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"audionorm/internal/assets"
	"audionorm/internal/config"
	"audionorm/internal/deps"
	"audionorm/internal/fetch"
	"audionorm/internal/logging"
	"audionorm/internal/normalize"
	"audionorm/internal/workspace"
)

// Fetcher downloads one URL to a local path.
type Fetcher interface {
	Download(ctx context.Context, url, dest string) (int64, error)
}

// FileNormalizer normalizes one file into an output path.
type FileNormalizer interface {
	File(ctx context.Context, input, output string) (normalize.Result, error)
}

// Runner executes the batch.
type Runner struct {
	cfg        *config.Config
	logger     *slog.Logger
	fetcher    Fetcher
	normalizer FileNormalizer
	layout     workspace.Layout
	assets     []assets.Asset
	out        io.Writer
	progressW  io.Writer
	colorize   bool
	checkDeps  bool
}

// Option customizes a Runner.
type Option func(*Runner)

// WithFetcher replaces the HTTP client.
func WithFetcher(f Fetcher) Option {
	return func(r *Runner) {
		if f != nil {
			r.fetcher = f
		}
	}
}

// WithNormalizer replaces the ffmpeg-backed normalizer.
func WithNormalizer(n FileNormalizer) Option {
	return func(r *Runner) {
		if n != nil {
			r.normalizer = n
		}
	}
}

// WithOutput sets where the transcript and summary are written.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithProgress draws progress bars on w; nil disables them.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) {
		r.progressW = w
	}
}

// WithColor forces transcript colors on or off.
func WithColor(enabled bool) Option {
	return func(r *Runner) {
		r.colorize = enabled
	}
}

// WithoutDependencyCheck skips the ffmpeg/ffprobe lookup, for callers that
// inject their own normalizer.
func WithoutDependencyCheck() Option {
	return func(r *Runner) {
		r.checkDeps = false
	}
}

// New builds a Runner from configuration. Progress bars and colors default
// on only when stdout and stderr are terminals.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Runner{
		cfg:       cfg,
		logger:    logging.NewComponentLogger(logger, "pipeline"),
		layout:    workspace.New(cfg.Paths.WorkDir),
		assets:    assets.FromPaths(cfg.Assets),
		out:       os.Stdout,
		colorize:  logging.IsTerminal(os.Stdout),
		checkDeps: true,
	}
	if logging.IsTerminal(os.Stderr) {
		r.progressW = os.Stderr
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fetcher == nil {
		r.fetcher = fetch.NewClient(cfg.RequestTimeout(), fetch.WithLogger(logger))
	}
	if r.normalizer == nil {
		r.normalizer = normalize.New(
			normalize.FFprobe{Binary: cfg.FFprobeBinary()},
			normalize.FFmpeg{Binary: cfg.FFmpegBinary()},
			normalize.SettingsFromConfig(cfg),
			logger,
		)
	}
	return r
}

// Layout exposes the work tree the runner operates on.
func (r *Runner) Layout() workspace.Layout {
	return r.layout
}

type step struct {
	name string
	run  func(context.Context, *slog.Logger, *console, *Report) error
}

// Run performs setup, download, normalization and the summary in order.
// The returned report is non-nil whenever setup got far enough to create it.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	runID := uuid.NewString()
	logger := r.logger.With(logging.String(logging.FieldRunID, runID))

	if r.checkDeps {
		if _, err := deps.Require(deps.AudioRequirements(r.cfg.FFmpegBinary(), r.cfg.FFprobeBinary())); err != nil {
			return nil, err
		}
	}

	lock, err := r.layout.Acquire()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("release work tree lock failed", logging.Error(err))
		}
	}()

	normalizedDir, err := filepath.Abs(r.layout.Normalized)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}
	report := newReport(runID, normalizedDir, r.assets)

	con := newConsole(r.out, r.colorize)
	con.banner("Audio normalization")
	fmt.Fprintln(r.out)

	logger.Info("run started",
		logging.String(logging.FieldEventType, "run_start"),
		logging.String("work_dir", r.layout.Root),
		logging.String("cdn", r.cfg.CDN.BaseURL),
		logging.Int("assets", len(r.assets)),
	)

	steps := []step{
		{name: "setup", run: r.setup},
		{name: "download", run: r.download},
		{name: "normalize", run: r.normalize},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		stepLogger := logger.With(logging.String(logging.FieldStep, s.name))
		stepLogger.Debug("step started", logging.String(logging.FieldEventType, "step_start"))
		if err := s.run(ctx, stepLogger, con, report); err != nil {
			con.detach()
			if ctx.Err() == nil {
				logging.ErrorWithContext(stepLogger, "step failed", "step_failed",
					logging.String(logging.FieldErrorHint, "fix the cause and rerun; the work tree is rebuilt from scratch"),
					logging.Error(err),
				)
			}
			return report, fmt.Errorf("%s: %w", s.name, err)
		}
		stepLogger.Debug("step completed", logging.String(logging.FieldEventType, "step_complete"))
	}

	writeSummary(r.out, con, report, r.layout.Normalized)
	logger.Info("run completed", logging.String(logging.FieldEventType, "run_complete"))
	return report, nil
}

func (r *Runner) setup(_ context.Context, logger *slog.Logger, con *console, _ *Report) error {
	con.section("Creating work directories...")
	if err := r.layout.Reset(); err != nil {
		return err
	}
	logger.Debug("work tree reset",
		logging.String("original_dir", r.layout.Original),
		logging.String("normalized_dir", r.layout.Normalized),
	)
	con.done("Directories ready")
	return nil
}
