package blogscrap

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Article is an ephemeral reference to one article summary discovered on a
// listing page.
type Article struct {
	// URL is the article's absolute permalink, trailing slash stripped.
	URL string

	// Title is the display title, taken from the summary link's title
	// attribute or, failing that, its text.
	Title string
}

// ArtifactName derives the deterministic cache filename for an article.
// The stem comes from the permalink's path segments joined with dashes.
// Permalinks with no meaningful path (query-only URLs) fall back to a
// sanitized title, and finally to an xxhash of the permalink so the name
// stays deterministic even for untitled articles. A ".html" suffix is
// appended when missing.
func ArtifactName(permalink, title string) string {
	stem := ""
	if u, err := url.Parse(permalink); err == nil {
		stem = strings.ReplaceAll(strings.Trim(u.Path, "/"), "/", "-")
	}
	if stem == "" {
		stem = sanitizeStem(title)
	}
	if stem == "" {
		stem = fmt.Sprintf("%x", xxhash.Sum64String(permalink))
	}
	if !strings.HasSuffix(stem, ".html") {
		stem += ".html"
	}
	return stem
}

// MarkdownName returns the output filename that mirrors an artifact name.
func MarkdownName(artifactName string) string {
	return strings.TrimSuffix(artifactName, ".html") + ".md"
}

// sanitizeStem reduces a title to a filesystem-safe filename stem.
func sanitizeStem(title string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '/':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
