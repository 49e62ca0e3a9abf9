package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jtorra/blogscrap"
)

// noiseSelector matches the subtrees stripped from extracted content before
// caching: sharing widgets, entry metadata, the comments container, inline
// scripts, small print, and footers.
const noiseSelector = "div.sharedaddy, div.entry-meta, #comments, script, small, footer"

// noiseFeedPrefixes are permalink prefixes that mark a summary as a feed
// aggregator or podcast audio link rather than an article.
var noiseFeedPrefixes = []string{
	"http://feeds.feedburner.com",
	"https://feeds.feedburner.com",
	"http://feedproxy.google.com",
	"https://feedproxy.google.com",
	"http://traffic.libsyn.com",
	"https://traffic.libsyn.com",
}

// removeNoise destructively removes noise subtrees from the selection.
func removeNoise(sel *goquery.Selection) {
	sel.Find(noiseSelector).Remove()
}

// isNoiseFeed reports whether a permalink points at a known noise feed.
func isNoiseFeed(permalink string) bool {
	for _, prefix := range noiseFeedPrefixes {
		if strings.HasPrefix(permalink, prefix) {
			return true
		}
	}
	return false
}

// resolveURL resolves a relative href against a base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// collectArticles turns summary nodes into Articles, in document order.
// Summaries with no anchor are excluded: they can never be fetched, so
// deferring them to extraction would only postpone a guaranteed failure.
// Summaries whose first anchor resolves to a noise feed are excluded too.
func collectArticles(summaries *goquery.Selection, base *url.URL) []blogscrap.Article {
	var articles []blogscrap.Article
	summaries.Each(func(_ int, s *goquery.Selection) {
		link := s.Find("a").First()
		if link.Length() == 0 {
			return
		}
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || isNoiseFeed(resolved) {
			return
		}
		title := strings.TrimSpace(link.AttrOr("title", ""))
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}
		articles = append(articles, blogscrap.Article{
			URL:   strings.TrimSuffix(resolved, "/"),
			Title: title,
		})
	})
	return articles
}

// parseDocument parses HTML, wrapping failures as EINVALID.
func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, blogscrap.Errorf(blogscrap.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// parseBase parses a base URL, wrapping failures as EINVALID.
func parseBase(baseURL string) (*url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, blogscrap.Errorf(blogscrap.EINVALID, "invalid base URL: %v", err)
	}
	return base, nil
}
