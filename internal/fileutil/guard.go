package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckRemovable reports an error when deleting dir recursively would take
// the filesystem root, the current directory, the home directory or an
// ancestor of either with it.
func CheckRemovable(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("refusing to remove an empty path")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", dir, err)
	}
	if abs == filepath.Dir(abs) {
		return fmt.Errorf("refusing to remove filesystem root %s", abs)
	}
	if cwd, err := os.Getwd(); err == nil && within(cwd, abs) {
		return fmt.Errorf("refusing to remove %s: it contains the current directory", abs)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" && within(home, abs) {
		return fmt.Errorf("refusing to remove %s: it contains the home directory", abs)
	}
	return nil
}

// within reports whether path equals dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
