package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"audionorm/internal/config"
	"audionorm/internal/deps"
	"audionorm/internal/testsupport"
	"audionorm/internal/workspace"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	server     *httptest.Server
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "missing.mp3") {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("not really audio"))
	}))
	t.Cleanup(srv.Close)

	opts = append([]testsupport.ConfigOption{
		testsupport.WithCDN(srv.URL),
		testsupport.WithAssets("assets/audio/gui/click.mp3", "assets/audio/gui/missing.mp3"),
	}, opts...)
	cfg := testsupport.NewConfig(t, opts...)

	configPath := filepath.Join(testsupport.BaseDir(cfg), "audionorm.toml")
	writeTestConfig(t, configPath, cfg)
	return &cliTestEnv{cfg: cfg, configPath: configPath, server: srv}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	quoted := make([]string, 0, len(cfg.Assets))
	for _, a := range cfg.Assets {
		quoted = append(quoted, fmt.Sprintf("%q", a))
	}
	content := fmt.Sprintf(
		"assets = [%s]\n\n[cdn]\nbase_url = %q\nrequest_timeout = 5\n\n[paths]\nwork_dir = %q\n\n[normalize]\nffmpeg_binary = %q\nffprobe_binary = %q\n",
		strings.Join(quoted, ", "),
		cfg.CDN.BaseURL,
		cfg.Paths.WorkDir,
		cfg.FFmpegBinary(),
		cfg.FFprobeBinary(),
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, ctx context.Context, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(ctx, args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestRunRecoversFromPanic(t *testing.T) {
	original := rootCommand
	rootCommand = func() *cobra.Command {
		return &cobra.Command{
			Use: "audionorm",
			RunE: func(*cobra.Command, []string) error {
				var report map[string]int
				report["boom"]++
				return nil
			},
		}
	}
	t.Cleanup(func() { rootCommand = original })

	out, stderr, code := runCLI(t, context.Background())
	if code != 1 {
		t.Fatalf("expected exit 1, got %d\nstdout: %s\nstderr: %s", code, out, stderr)
	}
	requireContains(t, stderr, "error: assignment to entry in nil map")
	requireContains(t, stderr, "goroutine ")
	requireContains(t, stderr, "runtime/debug.Stack")
}

func TestRunCompletesDespiteFileFailures(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries())

	out, stderr, code := runCLI(t, context.Background(), "--config", env.configPath, "--log-level", "error")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d\nstdout: %s\nstderr: %s", code, out, stderr)
	}
	requireContains(t, out, "Audio normalization finished")
	requireContains(t, out, "assets/audio/gui/missing.mp3 - failed")
	requireContains(t, out, "aws s3 sync")

	layout := workspace.New(env.cfg.Paths.WorkDir)
	if _, err := os.Stat(layout.OriginalPath("assets/audio/gui/click.mp3")); err != nil {
		t.Fatalf("expected downloaded original: %v", err)
	}
	// The stub ffprobe prints nothing, so normalization fails and leaves no output.
	if _, err := os.Stat(layout.NormalizedPath("assets/audio/gui/click.mp3")); !os.IsNotExist(err) {
		t.Fatalf("expected no normalized output, stat err=%v", err)
	}
}

func TestRunMissingDependency(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Normalize.FFmpegBinary = "audionorm-test-missing-ffmpeg"
	env.cfg.Normalize.FFprobeBinary = "audionorm-test-missing-ffprobe"
	writeTestConfig(t, env.configPath, env.cfg)

	_, stderr, code := runCLI(t, context.Background(), "--config", env.configPath)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	requireContains(t, stderr, "missing required dependencies")
	requireContains(t, stderr, "Install ffmpeg")
	if _, err := os.Stat(env.cfg.Paths.WorkDir); !os.IsNotExist(err) {
		t.Fatalf("work tree should not be created, stat err=%v", err)
	}
}

func TestRunInterrupted(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, stderr, code := runCLI(t, ctx, "--config", env.configPath)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	requireContains(t, stderr, "interrupted by user")
}

func TestRunRejectsArguments(t *testing.T) {
	env := setupCLITestEnv(t)
	_, stderr, code := runCLI(t, context.Background(), "--config", env.configPath, "extra")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	requireContains(t, stderr, "error:")
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries())

	out, stderr, code := runCLI(t, context.Background(), "--config", env.configPath, "check")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d\nstdout: %s\nstderr: %s", code, out, stderr)
	}
	requireContains(t, out, "== Environment ==")
	requireContains(t, out, env.configPath)
	requireContains(t, out, "FFmpeg:")
	requireContains(t, out, "[OK]")
	requireContains(t, out, "CDN:")
}

func TestCheckCommandReportsMissingBinaries(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Normalize.FFmpegBinary = "audionorm-test-missing-ffmpeg"
	writeTestConfig(t, env.configPath, env.cfg)

	out, stderr, code := runCLI(t, context.Background(), "--config", env.configPath, "check")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	requireContains(t, out, "[ERROR]")
	requireContains(t, out, "Install ffmpeg")
	requireContains(t, stderr, "preflight checks failed")
}

func TestAssetsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, code := runCLI(t, context.Background(), "--config", env.configPath, "assets")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	requireContains(t, out, env.server.URL+"/assets/audio/gui/click.mp3")
	requireContains(t, out, "Gui")
	requireContains(t, out, "2 assets")
}

func TestAssetsCommandDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	out, _, code := runCLI(t, context.Background(), "assets")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	requireContains(t, out, "https://cdn.tailbound.xyz/assets/audio/")
	requireContains(t, out, fmt.Sprintf("%d assets", len(config.DefaultAssets())))
}

func TestConfigInitAndValidate(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, _, code := runCLI(t, context.Background(), "config", "validate")
	if code != 0 {
		t.Fatalf("config validate without file: exit %d", code)
	}
	requireContains(t, out, "defaults were used")
	requireContains(t, out, "Configuration valid")

	out, _, code = runCLI(t, context.Background(), "config", "init")
	if code != 0 {
		t.Fatalf("config init: exit %d", code)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(filepath.Join(dir, config.ProjectConfigName)); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	_, stderr, code := runCLI(t, context.Background(), "config", "init")
	if code != 1 {
		t.Fatalf("expected refusal to overwrite, exit %d", code)
	}
	requireContains(t, stderr, "already exists")

	out, _, code = runCLI(t, context.Background(), "config", "validate")
	if code != 0 {
		t.Fatalf("config validate with file: exit %d", code)
	}
	if strings.Contains(out, "defaults were used") {
		t.Fatalf("expected project config to be used:\n%s", out)
	}
}

func TestConfigValidateRejectsBadLogFormat(t *testing.T) {
	chdir(t, t.TempDir())
	_, stderr, code := runCLI(t, context.Background(), "--log-format", "xml", "config", "validate")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	requireContains(t, stderr, "logging.format")
}

func TestFormatErrorAddsGuidance(t *testing.T) {
	err := fmt.Errorf("run: %w", &deps.MissingError{Missing: []deps.Status{{Name: "FFmpeg", Detail: "binary \"ffmpeg\" not found"}}})
	msg := formatError(err)
	requireContains(t, msg, "error: run: missing required dependencies")
	for _, hint := range deps.InstallHint() {
		requireContains(t, msg, hint)
	}

	msg = formatError(fmt.Errorf("%w (lock file x.lock)", workspace.ErrLocked))
	requireContains(t, msg, "Another audionorm run")
}
