package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type failingReader struct {
	sent bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.sent {
		return 0, errors.New("connection reset")
	}
	r.sent = true
	return copy(p, "partial"), nil
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "nested", "dst.mp3")

	written, err := WriteAtomic(dst, strings.NewReader("hello world"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if written != int64(len("hello world")) {
		t.Fatalf("unexpected byte count %d", written)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello world" {
		t.Fatalf("content mismatch: got %q", got)
	}
	if _, err := os.Stat(dst + TempSuffix); !os.IsNotExist(err) {
		t.Fatalf("temp file should be gone, stat err=%v", err)
	}
}

func TestWriteAtomicFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst.mp3")

	if _, err := WriteAtomic(dst, &failingReader{}, 0o644); err == nil {
		t.Fatal("expected error from failing reader")
	}
	for _, path := range []string{dst, dst + TempSuffix} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Fatalf("expected %s to be absent, stat err=%v", path, err)
		}
	}
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	if err := RemoveIfExists(path); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if _, err := WriteAtomic(path, io.LimitReader(strings.NewReader("abc"), 3), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := RemoveIfExists(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected removal, stat err=%v", err)
	}
}

func TestSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sized")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}
	size, err := Size(path)
	if err != nil {
		t.Fatal(err)
	}
	if size != 2048 {
		t.Fatalf("unexpected size %d", size)
	}
}
