// Package http provides the HTTP implementation of blogscrap.Fetcher.
// Both supported platforms serve fully rendered HTML, so a plain HTTP
// client suffices.
package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jtorra/blogscrap"
)

// UserAgent is the fixed descriptive header sent with every request.
const UserAgent = "blogscrap/1.0 (blog archival crawler; +https://github.com/jtorra/blogscrap)"

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements blogscrap.Fetcher at compile time.
var _ blogscrap.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
//
// Transport failures are deliberately permissive: a connection error or
// non-200 status is logged at info level and the crawl continues with
// whatever body arrived (possibly empty), degrading to "nothing found"
// rather than aborting. The error return is reserved for malformed URLs
// and context cancellation.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithLogger sets the logger for transport failures.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", blogscrap.Errorf(blogscrap.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		f.logger.Info("fetch failed", "url", url, "error", err)
		return "", nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Info("fetch returned non-200", "url", url, "status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Info("fetch body truncated", "url", url, "error", err)
		return string(body), nil
	}

	return string(body), nil
}
