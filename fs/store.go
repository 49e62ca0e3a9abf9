// Package fs provides file-based storage for crawled blog archives.
package fs

import (
	"os"
	"path/filepath"

	"github.com/jtorra/blogscrap"
)

// Ensure Store implements blogscrap.ArchiveStore at compile time.
var _ blogscrap.ArchiveStore = (*Store)(nil)

// Store lays out crawl outputs on disk: cached article artifacts under
// <cacheBase>/<hostname>/<name>.html and converted Markdown under
// <mdBase>/<hostname>/<name>.md.
type Store struct {
	cacheBase string
	mdBase    string
}

// NewStore creates a Store with the given cache and markdown base
// directories (typically "cache" and "md").
func NewStore(cacheBase, mdBase string) *Store {
	return &Store{cacheBase: cacheBase, mdBase: mdBase}
}

// EnsureSite creates the site's cache and output directories if needed.
func (s *Store) EnsureSite(site *blogscrap.Site) error {
	if err := os.MkdirAll(filepath.Join(s.cacheBase, site.Hostname), 0755); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(s.mdBase, site.Hostname), 0755)
}

// ArtifactPath returns the on-disk path an artifact is (or would be) at.
func (s *Store) ArtifactPath(site *blogscrap.Site, name string) string {
	return filepath.Join(s.cacheBase, site.Hostname, name)
}

// ArtifactExists reports whether an artifact is already cached.
func (s *Store) ArtifactExists(site *blogscrap.Site, name string) bool {
	info, err := os.Stat(s.ArtifactPath(site, name))
	return err == nil && !info.IsDir()
}

// SaveArtifact writes an artifact document.
func (s *Store) SaveArtifact(site *blogscrap.Site, name string, html string) error {
	return os.WriteFile(s.ArtifactPath(site, name), []byte(html), 0644)
}

// ReadArtifact reads a cached artifact back.
// Returns ENOTFOUND if the artifact does not exist.
func (s *Store) ReadArtifact(site *blogscrap.Site, name string) (string, error) {
	data, err := os.ReadFile(s.ArtifactPath(site, name))
	if os.IsNotExist(err) {
		return "", blogscrap.Errorf(blogscrap.ENOTFOUND, "artifact %q not cached", name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MarkdownPath returns the on-disk path a converted document is at.
func (s *Store) MarkdownPath(site *blogscrap.Site, name string) string {
	return filepath.Join(s.mdBase, site.Hostname, name)
}

// MarkdownExists reports whether a converted document already exists.
func (s *Store) MarkdownExists(site *blogscrap.Site, name string) bool {
	info, err := os.Stat(s.MarkdownPath(site, name))
	return err == nil && !info.IsDir()
}

// SaveMarkdown writes a converted document.
func (s *Store) SaveMarkdown(site *blogscrap.Site, name string, markdown string) error {
	return os.WriteFile(s.MarkdownPath(site, name), []byte(markdown), 0644)
}

// ListArtifacts returns the cached artifact paths matching
// <cacheBase>/<dirFilter|*>/*.html in lexical order. Used by the mdfy and
// clean post-processing passes.
func (s *Store) ListArtifacts(dirFilter string) ([]string, error) {
	if dirFilter == "" {
		dirFilter = "*"
	}
	return filepath.Glob(filepath.Join(s.cacheBase, dirFilter, "*.html"))
}

// MarkdownPathFor maps a cached artifact path to its mirrored markdown path.
func (s *Store) MarkdownPathFor(artifactPath string) string {
	rel, err := filepath.Rel(s.cacheBase, artifactPath)
	if err != nil {
		rel = filepath.Base(artifactPath)
	}
	rel = blogscrap.MarkdownName(rel)
	return filepath.Join(s.mdBase, rel)
}
