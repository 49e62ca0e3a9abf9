package goquery

import (
	"strings"

	"github.com/jtorra/blogscrap"
)

var _ blogscrap.LayoutSelector = (*BlogspotSelector)(nil)

// BlogspotSelector reads the Blogspot (Blogger) page layout.
type BlogspotSelector struct{}

// NewBlogspotSelector creates a new BlogspotSelector.
func NewBlogspotSelector() *BlogspotSelector {
	return &BlogspotSelector{}
}

// Name returns the selector's identifier.
func (s *BlogspotSelector) Name() string {
	return "blogspot"
}

// ListArticles returns the article summaries on a listing page.
// Summary nodes are searched per tag in priority order (div, h1, h2, h3)
// with a post-title or entry-title class; the first tag with any match
// wins and later tags are not merged in.
func (s *BlogspotSelector) ListArticles(html string, baseURL string) ([]blogscrap.Article, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	for _, tag := range []string{"div", "h1", "h2", "h3"} {
		summaries := doc.Find(tag + ".post-title, " + tag + ".entry-title")
		if summaries.Length() > 0 {
			return collectArticles(summaries, base), nil
		}
	}
	return nil, nil
}

// NextPageURL returns the "older posts" link, a single anchor identified by
// a fixed class. Blogspot pagination has no competing next-like links, but
// the first link's text is still captured as the label for consistency.
func (s *BlogspotSelector) NextPageURL(html string, baseURL string, label string) (string, string, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return "", label, err
	}
	doc, err := parseDocument(html)
	if err != nil {
		return "", label, err
	}

	link := doc.Find("a.blog-pager-older-link").First()
	if link.Length() == 0 {
		return "", label, nil
	}
	href, ok := link.Attr("href")
	if !ok || href == "" {
		return "", label, nil
	}
	resolved := resolveURL(base, href)
	if resolved == "" {
		return "", label, nil
	}
	if label == "" {
		label = strings.TrimSpace(link.Text())
	}
	return resolved, label, nil
}

// ExtractContent finds the content container (the two-class post body, with
// a fallback to a plain "post" container), strips noise subtrees, and
// assembles the minimal artifact document.
func (s *BlogspotSelector) ExtractContent(html string, title string) (string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return "", err
	}

	content := doc.Find("div.post-body.entry-content").First()
	if content.Length() == 0 {
		content = doc.Find("div.post").First()
	}
	if content.Length() == 0 {
		return "", blogscrap.Errorf(blogscrap.ENOTFOUND, "no content container found")
	}

	removeNoise(content)
	return BuildArtifact(title, content)
}
