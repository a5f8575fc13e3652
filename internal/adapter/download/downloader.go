// Package download retrieves remote files into caller-owned
// destinations.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"sched/internal/domain"
)

// Downloader performs single-shot HTTP downloads. Timetable PDFs are
// small, so the body is read fully into memory before writing.
type Downloader struct {
	client *http.Client
}

// New creates a Downloader with the given request timeout.
func New(timeout time.Duration) *Downloader {
	return &Downloader{client: &http.Client{Timeout: timeout}}
}

// Download GETs url and writes the response body verbatim to dest,
// overwriting any existing file. No retries; any failure propagates.
func (d *Downloader) Download(ctx context.Context, url string, dest domain.Destination) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: status %d", url, resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read download body: %w", err)
	}

	f, err := dest.Create()
	if err != nil {
		return fmt.Errorf("create %s: %w", dest.Path(), err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", dest.Path(), err)
	}
	return f.Close()
}
