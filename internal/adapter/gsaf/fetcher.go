// Package gsaf downloads the published GSAF spreadsheet.
package gsaf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Client fetches the source spreadsheet over plain HTTP.
// It implements pipeline.Fetcher.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a fetcher with the given request timeout.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Download retrieves url and writes the response body to dest, replacing any
// existing file. The body is streamed to a temp file in the destination
// directory and renamed into place, so a failed download never clobbers a
// previous raw file. Returns the number of bytes written.
func (c *Client) Download(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("fetch %s: status %d: %s", url, resp.StatusCode, body)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, fmt.Errorf("create destination dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}

	n, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("write %s: %w", dest, err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("replace %s: %w", dest, err)
	}

	c.logger.Info("spreadsheet downloaded", "url", url, "dest", dest, "bytes", n)
	return n, nil
}
