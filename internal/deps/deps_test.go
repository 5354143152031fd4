package deps

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("expected blank command to be reported, got %#v", results[2])
	}
}

func TestRequireReturnsMissingError(t *testing.T) {
	reqs := []Requirement{
		{Name: "FFmpeg", Command: "clearly-not-present-ffmpeg"},
		{Name: "Extra", Command: "clearly-not-present-extra", Optional: true},
	}
	statuses, err := Require(reqs)
	if len(statuses) != 2 {
		t.Fatalf("expected statuses for every requirement, got %d", len(statuses))
	}
	var missingErr *MissingError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingError, got %v", err)
	}
	if len(missingErr.Missing) != 1 || missingErr.Missing[0].Name != "FFmpeg" {
		t.Fatalf("optional dependency should not be reported: %#v", missingErr.Missing)
	}
	if !strings.Contains(err.Error(), "FFmpeg") {
		t.Fatalf("error should name the binary: %v", err)
	}
}

func TestRequireSatisfied(t *testing.T) {
	binDir := t.TempDir()
	for _, name := range []string{"ffmpeg", "ffprobe"} {
		if err := os.WriteFile(filepath.Join(binDir, name), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatalf("write stub: %v", err)
		}
	}
	t.Setenv("PATH", binDir)

	statuses, err := Require(AudioRequirements("ffmpeg", "ffprobe"))
	if err != nil {
		t.Fatalf("Require: %v", err)
	}
	for _, status := range statuses {
		if status.Command != filepath.Join(binDir, strings.ToLower(status.Name)) {
			t.Fatalf("expected resolved command path, got %q", status.Command)
		}
	}
}

func TestInstallHintNotEmpty(t *testing.T) {
	if len(InstallHint()) == 0 {
		t.Fatal("expected install guidance")
	}
}
