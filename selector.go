package blogscrap

// LayoutSelector knows how to read one platform's page layout: which nodes
// are article summaries, where the "older posts" link lives, and which
// container holds an article's main content.
type LayoutSelector interface {
	// Name returns the selector's identifier (e.g., "blogspot", "wordpress").
	Name() string

	// ListArticles returns the article summaries on a listing page in
	// document order. Summaries whose first link points at a known noise
	// feed, or that contain no link at all, are excluded.
	ListArticles(html string, baseURL string) ([]Article, error)

	// NextPageURL returns the absolute URL of the "older posts" link, or ""
	// when the page has no further pagination (the walk's normal terminal
	// condition, distinct from an HTTP failure). The label disambiguates
	// among multiple next-like candidates: pass the label captured on an
	// earlier page, or "" on the first page. The returned label echoes the
	// existing one, or captures the trimmed text of the link just found.
	NextPageURL(html string, baseURL string, label string) (nextURL string, nextLabel string, err error)

	// ExtractContent finds an article page's main content container, strips
	// known noise subtrees from it, and returns a minimal standalone HTML
	// document containing a <title> with the given display title and the
	// cleaned content. Returns ENOTFOUND when no known container matches;
	// the caller skips the article.
	ExtractContent(html string, title string) (artifactHTML string, err error)
}

// SelectorRegistry maps platforms to their layout selectors.
type SelectorRegistry interface {
	// Get returns the selector for a platform. Returns nil for
	// PlatformUnknown or unregistered platforms; callers treat a nil
	// selector as "no articles, no pagination".
	Get(platform Platform) LayoutSelector

	// Register adds a selector for a platform, replacing any existing one.
	Register(platform Platform, selector LayoutSelector)

	// List returns all registered platforms.
	List() []Platform
}
