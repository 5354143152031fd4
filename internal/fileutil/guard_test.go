package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckRemovable(t *testing.T) {
	base := t.TempDir()
	cwd := filepath.Join(base, "project", "sub")
	home := filepath.Join(base, "home", "user")
	for _, dir := range []string{cwd, home} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("HOME", home)
	chdir(t, cwd)

	refused := map[string]string{
		"empty":          "",
		"root":           string(filepath.Separator),
		"current":        ".",
		"parent":         "..",
		"ancestor":       base,
		"home":           home,
		"home parent":    filepath.Dir(home),
		"current by abs": cwd,
	}
	for name, dir := range refused {
		t.Run(name, func(t *testing.T) {
			if err := CheckRemovable(dir); err == nil {
				t.Fatalf("expected %q to be refused", dir)
			}
		})
	}

	allowed := []string{
		"audio-normalize-temp",
		filepath.Join("..", "sibling"),
		filepath.Join(home, "work"),
		filepath.Join(base, "elsewhere"),
	}
	for _, dir := range allowed {
		if err := CheckRemovable(dir); err != nil {
			t.Fatalf("expected %q to be allowed: %v", dir, err)
		}
	}
}
