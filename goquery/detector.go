// Package goquery provides goquery-backed implementations of the blogscrap
// platform detector and layout selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jtorra/blogscrap"
)

var _ blogscrap.PlatformDetector = (*Detector)(nil)

// Detector identifies blog platforms from the root URL and page markup.
// It checks for platform-specific link hrefs, meta tags, and structural
// markers unique to each publishing platform.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes the root URL and page HTML and returns the identified
// platform. Blogspot markers are checked before WordPress ones; the
// presence of an <article> element is the weakest WordPress signal and is
// checked last. Returns PlatformUnknown if nothing matches.
func (d *Detector) Detect(rootURL string, html string) blogscrap.Platform {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return blogscrap.PlatformUnknown
	}

	if strings.Contains(rootURL, "blogspot") || d.hasBloggerLink(doc) {
		return blogscrap.PlatformBlogspot
	}

	if strings.Contains(rootURL, "wordpress") ||
		d.hasWordpressMeta(doc) ||
		d.hasWordpressAnchor(doc) ||
		doc.Find("article").Length() > 0 {
		return blogscrap.PlatformWordpress
	}

	return blogscrap.PlatformUnknown
}

// hasBloggerLink checks for a <link> whose href points at the Blogger domain.
func (d *Detector) hasBloggerLink(doc *goquery.Document) bool {
	found := false
	doc.Find("link").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if href, ok := s.Attr("href"); ok && strings.Contains(href, "blogger") {
			found = true
			return false
		}
		return true
	})
	return found
}

// hasWordpressMeta checks for a meta tag whose content mentions WordPress
// (typically the generator tag, e.g. "WordPress 6.4").
func (d *Detector) hasWordpressMeta(doc *goquery.Document) bool {
	found := false
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if content, ok := s.Attr("content"); ok &&
			strings.Contains(strings.ToLower(content), "wordpress") {
			found = true
			return false
		}
		return true
	})
	return found
}

// hasWordpressAnchor checks for an anchor whose href contains the WordPress
// domain fragment (theme credits, wordpress.com subdomains, login links).
func (d *Detector) hasWordpressAnchor(doc *goquery.Document) bool {
	found := false
	doc.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if href, ok := s.Attr("href"); ok && strings.Contains(href, "wordpress") {
			found = true
			return false
		}
		return true
	})
	return found
}
