package preflight

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"audionorm/internal/config"
	"audionorm/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckWorkParent verifies the work tree can be created. The work directory
// itself is wiped on every run, so only its parent has to exist.
func CheckWorkParent(workDir string) Result {
	const name = "Work directory"

	workDir = strings.TrimSpace(workDir)
	if workDir == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	res := CheckDirectoryAccess(name, filepath.Dir(filepath.Clean(workDir)))
	if res.Passed {
		res.Detail = fmt.Sprintf("%s (parent writable)", workDir)
	}
	return res
}

// CheckCDN verifies the CDN host answers HTTP. Any status code counts as
// reachable since the root path is not an asset.
func CheckCDN(ctx context.Context, baseURL string, timeout time.Duration) Result {
	const name = "CDN"

	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return Result{Name: name, Detail: "missing url"}
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequestWithContext(checkCtx, http.MethodHead, base+"/", nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("request failed (%v)", err)}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("unreachable (%v)", err)}
	}
	defer resp.Body.Close()
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (HTTP %d)", base, resp.StatusCode)}
}

// CheckSystemDeps evaluates the external binaries for the given config.
// Both the runner and the CLI check command use this to avoid duplicating
// the requirements list.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries(deps.AudioRequirements(cfg.FFmpegBinary(), cfg.FFprobeBinary()))
}
