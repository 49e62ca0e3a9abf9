package mock

import "github.com/jtorra/blogscrap"

var _ blogscrap.PlatformDetector = (*Detector)(nil)

// Detector is a mock implementation of blogscrap.PlatformDetector.
type Detector struct {
	DetectFn func(rootURL string, html string) blogscrap.Platform
}

func (d *Detector) Detect(rootURL string, html string) blogscrap.Platform {
	return d.DetectFn(rootURL, html)
}
