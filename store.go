package blogscrap

// ArchiveStore persists crawl outputs: cached article artifacts under
// cache/<hostname>/<name>.html and converted Markdown under
// md/<hostname>/<name>.md. Artifacts are created once per permalink and
// never deleted by the crawler; a forced re-crawl may overwrite them.
type ArchiveStore interface {
	// EnsureSite creates the site's cache and output directories if needed.
	EnsureSite(site *Site) error

	// ArtifactExists reports whether an artifact is already cached. The
	// orchestrator checks this before fetching an article page at all, so a
	// cache hit costs no network call.
	ArtifactExists(site *Site, name string) bool

	// SaveArtifact writes an artifact document.
	SaveArtifact(site *Site, name string, html string) error

	// ReadArtifact reads a cached artifact back.
	// Returns ENOTFOUND if the artifact does not exist.
	ReadArtifact(site *Site, name string) (string, error)

	// MarkdownExists reports whether a converted document already exists.
	MarkdownExists(site *Site, name string) bool

	// SaveMarkdown writes a converted document.
	SaveMarkdown(site *Site, name string, markdown string) error
}

// LedgerStore persists the set of root site URLs ever crawled.
// The on-disk form is plain text: one URL per line, sorted, deduplicated,
// trailing slashes stripped.
type LedgerStore interface {
	// Load reads the ledger, returning normalized URLs in sorted order.
	// A missing ledger file loads as an empty set.
	Load() ([]string, error)

	// Save rewrites the ledger with the URLs normalized and sorted.
	// Saving immediately after loading produces a byte-identical file.
	Save(urls []string) error
}
