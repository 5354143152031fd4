package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"audionorm/internal/fileutil"
)

const (
	originalDirName   = "original"
	normalizedDirName = "normalized"
)

// Layout is the work tree: downloads under Original, output under Normalized,
// both mirroring the asset relative paths.
type Layout struct {
	Root       string
	Original   string
	Normalized string
}

// New derives the layout for root.
func New(root string) Layout {
	root = filepath.Clean(root)
	return Layout{
		Root:       root,
		Original:   filepath.Join(root, originalDirName),
		Normalized: filepath.Join(root, normalizedDirName),
	}
}

// Reset deletes the whole work tree and recreates both subtrees.
func (l Layout) Reset() error {
	if err := fileutil.CheckRemovable(l.Root); err != nil {
		return fmt.Errorf("reset work tree: %w", err)
	}
	if err := os.RemoveAll(l.Root); err != nil {
		return fmt.Errorf("remove work tree: %w", err)
	}
	for _, dir := range []string{l.Original, l.Normalized} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// OriginalPath maps a relative asset path into the download tree.
func (l Layout) OriginalPath(rel string) string {
	return filepath.Join(l.Original, filepath.FromSlash(rel))
}

// NormalizedPath maps a relative asset path into the output tree.
func (l Layout) NormalizedPath(rel string) string {
	return filepath.Join(l.Normalized, filepath.FromSlash(rel))
}

// Rel returns the slash-separated path of a download-tree file relative to
// the Original root.
func (l Layout) Rel(path string) (string, error) {
	rel, err := filepath.Rel(l.Original, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside %s", path, l.Original)
	}
	return filepath.ToSlash(rel), nil
}

// Files lists every regular file in the download tree in lexical order,
// regardless of extension.
func (l Layout) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(l.Original, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == l.Original {
				return fs.SkipAll
			}
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", l.Original, err)
	}
	sort.Strings(files)
	return files, nil
}
