package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/llehouerou/backdrop/internal/location"
)

// ErrNotRegularFile is returned when a local location is a directory or device.
var ErrNotRegularFile = errors.New("not a regular file")

const (
	// DefaultTimeout bounds a single probe.
	DefaultTimeout = 5 * time.Second
	userAgent      = "backdrop/1.0"
)

// HTTPProber issues HEAD requests; only the status line and headers are transferred.
type HTTPProber struct {
	httpClient *http.Client
}

// NewHTTPProber creates an HTTP prober with the given per-request timeout.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPProber{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProber) Probe(ctx context.Context, loc string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, loc, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return nil
}

// FileProber checks local paths and file:// URLs.
type FileProber struct{}

func (FileProber) Probe(_ context.Context, loc string) error {
	path, err := location.LocalPath(loc)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return ErrNotRegularFile
	}
	return nil
}

// SchemeProber dispatches to the HTTP or file prober based on the location.
type SchemeProber struct {
	HTTP Prober
	File Prober
}

// NewSchemeProber returns the default prober for mixed local/remote playlists.
func NewSchemeProber(timeout time.Duration) *SchemeProber {
	return &SchemeProber{HTTP: NewHTTPProber(timeout), File: FileProber{}}
}

func (p *SchemeProber) Probe(ctx context.Context, loc string) error {
	if location.IsRemote(loc) {
		return p.HTTP.Probe(ctx, loc)
	}
	return p.File.Probe(ctx, loc)
}
