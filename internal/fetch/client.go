package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"audionorm/internal/fileutil"
	"audionorm/internal/logging"
)

const defaultTimeout = 30 * time.Second

// StatusError is returned when the CDN answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	status := strings.TrimSpace(e.Status)
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("GET %s: unexpected status %s", e.URL, status)
}

// Client downloads single files over plain HTTP GET. It never retries.
type Client struct {
	http   *http.Client
	logger *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a Client whose requests time out after timeout.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		http:   &http.Client{Timeout: timeout},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Download fetches url and writes the body to dest, returning the byte count.
// dest is only created when the whole body was received.
func (c *Client) Download(ctx context.Context, url, dest string) (int64, error) {
	if strings.TrimSpace(url) == "" {
		return 0, errors.New("download: empty url")
	}
	if strings.TrimSpace(dest) == "" {
		return 0, errors.New("download: empty destination")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("download: build request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return 0, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	written, err := fileutil.WriteAtomic(dest, resp.Body, 0o644)
	if err != nil {
		return 0, fmt.Errorf("download: write %s: %w", dest, err)
	}

	c.logger.Debug("download finished",
		logging.String("url", url),
		logging.Int64("bytes", written),
		logging.Duration("elapsed", time.Since(start)),
	)
	return written, nil
}
