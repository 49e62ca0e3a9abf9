// Package slog provides logging decorators for blogscrap services.
package slog

import (
	"log/slog"
	"time"

	"github.com/jtorra/blogscrap"
)

// Ensure LoggingDetector implements blogscrap.PlatformDetector.
var _ blogscrap.PlatformDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a PlatformDetector with debug logging for platform
// detection.
type LoggingDetector struct {
	next   blogscrap.PlatformDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next blogscrap.PlatformDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect runs the wrapped detection and logs its outcome.
func (d *LoggingDetector) Detect(rootURL string, html string) blogscrap.Platform {
	begin := time.Now()
	platform := d.next.Detect(rootURL, html)
	platformName := string(platform)
	if platform == blogscrap.PlatformUnknown {
		platformName = "(unknown)"
	}
	d.logger.Debug("platform detection",
		"url", rootURL,
		"platform", platformName,
		"duration", time.Since(begin),
	)
	return platform
}
