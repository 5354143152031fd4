package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDownloadWritesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/assets/audio/gui/button-click.mp3" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte("ID3-fake-mp3"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "assets", "audio", "gui", "button-click.mp3")
	client := NewClient(time.Second)

	n, err := client.Download(context.Background(), server.URL+"/assets/audio/gui/button-click.mp3", dest)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if n != int64(len("ID3-fake-mp3")) {
		t.Fatalf("unexpected byte count %d", n)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read dest: %v", err)
	}
	if string(got) != "ID3-fake-mp3" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestDownloadStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "missing.mp3")
	_, err := NewClient(time.Second).Download(context.Background(), server.URL+"/missing.mp3", dest)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status %d", statusErr.StatusCode)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Fatalf("expected no file on failure, stat err=%v", err)
	}
}

func TestDownloadTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	dest := filepath.Join(t.TempDir(), "slow.mp3")
	_, err := NewClient(50*time.Millisecond).Download(context.Background(), server.URL+"/slow.mp3", dest)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Fatalf("expected no file on timeout, stat err=%v", statErr)
	}
}

func TestDownloadConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/gone.mp3"
	server.Close()

	if _, err := NewClient(time.Second).Download(context.Background(), url, filepath.Join(t.TempDir(), "gone.mp3")); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestDownloadRejectsEmptyArgs(t *testing.T) {
	client := NewClient(0)
	if _, err := client.Download(context.Background(), "", "/tmp/x"); err == nil {
		t.Fatal("expected error for empty url")
	}
	if _, err := client.Download(context.Background(), "http://example.invalid/a", ""); err == nil {
		t.Fatal("expected error for empty destination")
	}
}
