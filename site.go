package blogscrap

import (
	"net/url"
	"strings"
)

// Site represents one blog being archived. It is identified by its root URL
// and a derived hostname; the hostname keys the per-site cache and output
// directories. A Site persists only as filesystem directories beyond a run.
type Site struct {
	// RootURL is the blog's front-page URL, normalized by trimming
	// whitespace and a trailing slash.
	RootURL string

	// Hostname keys the site's cache and output directories.
	Hostname string
}

// NewSite derives a Site from a root URL.
// Returns EINVALID if the URL cannot be parsed or has no host.
func NewSite(rawURL string) (*Site, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(rawURL), "/")
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid site URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "site URL %q has no host", rawURL)
	}
	return &Site{RootURL: trimmed, Hostname: u.Host}, nil
}
