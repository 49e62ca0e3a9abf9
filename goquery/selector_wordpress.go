package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jtorra/blogscrap"
)

var _ blogscrap.LayoutSelector = (*WordpressSelector)(nil)

// wordpressPaginationContainers are searched in priority order for the
// container holding the "older posts" link.
var wordpressPaginationContainers = []string{
	"div.nav-previous",
	"div.navigation",
	"div.nav-links",
}

// wordpressNextLinkFallbacks are generic next-link classes tried in order
// when no pagination container matches.
var wordpressNextLinkFallbacks = []string{
	"a.next.page-numbers",
	"a.next",
	"a.pagination-next",
}

// wordpressContentContainers are tried in order on an article page;
// the first match wins.
var wordpressContentContainers = []string{
	"article",
	"div.entry",
	"div.post-entry",
	"div.entry-content",
	"div.content",
	"div.content-area",
	"div.storycontent",
}

// WordpressSelector reads the WordPress page layout.
type WordpressSelector struct{}

// NewWordpressSelector creates a new WordpressSelector.
func NewWordpressSelector() *WordpressSelector {
	return &WordpressSelector{}
}

// Name returns the selector's identifier.
func (s *WordpressSelector) Name() string {
	return "wordpress"
}

// ListArticles returns the article summaries on a listing page: <article>
// elements, falling back to post-classed containers when a theme uses none.
func (s *WordpressSelector) ListArticles(html string, baseURL string) ([]blogscrap.Article, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	summaries := doc.Find("article")
	if summaries.Length() == 0 {
		summaries = doc.Find("div.post, div.type-post, div.item.entry")
	}
	return collectArticles(summaries, base), nil
}

// NextPageURL searches the pagination containers in priority order. Within
// the first container found, the first anchor is taken when no label is
// known yet; once a label exists, only an anchor with exactly that text
// matches, so themes that place "newer" and "older" links side by side
// don't walk the chain backwards. Link text is assumed stable across pages;
// a re-labelled link silently ends the walk. Generic next-link classes are
// tried only when no container matched at all.
func (s *WordpressSelector) NextPageURL(html string, baseURL string, label string) (string, string, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return "", label, err
	}
	doc, err := parseDocument(html)
	if err != nil {
		return "", label, err
	}

	var link *goquery.Selection
	containerFound := false
	for _, selector := range wordpressPaginationContainers {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		containerFound = true
		if label == "" {
			if a := container.Find("a").First(); a.Length() > 0 {
				link = a
			}
		} else {
			container.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
				if strings.TrimSpace(a.Text()) == label {
					link = a
					return false
				}
				return true
			})
		}
		break
	}

	if !containerFound {
		for _, selector := range wordpressNextLinkFallbacks {
			if a := doc.Find(selector).First(); a.Length() > 0 {
				link = a
				break
			}
		}
	}

	if link == nil {
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

// ExtractContent walks the content-container fallback chain, strips noise
// subtrees from the first match, and assembles the minimal artifact
// document. Returns ENOTFOUND when no container matches (syndicated or
// malformed pages); the caller skips the article.
func (s *WordpressSelector) ExtractContent(html string, title string) (string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return "", err
	}

	for _, selector := range wordpressContentContainers {
		content := doc.Find(selector).First()
		if content.Length() == 0 {
			continue
		}
		removeNoise(content)
		return BuildArtifact(title, content)
	}
	return "", blogscrap.Errorf(blogscrap.ENOTFOUND, "no content container found")
}
