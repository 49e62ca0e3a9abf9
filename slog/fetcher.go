package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jtorra/blogscrap"
)

// Ensure LoggingFetcher implements blogscrap.Fetcher.
var _ blogscrap.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging for request timing.
type LoggingFetcher struct {
	next   blogscrap.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next blogscrap.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request timing.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	f.logger.Debug("fetch",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
		"error", err,
	)
	return html, err
}
