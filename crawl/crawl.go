// Package crawl provides blog crawling orchestration. It coordinates
// platform detection, listing, pagination, content extraction, caching,
// and markdown conversion for one site at a time.
package crawl

import (
	"context"
	"log/slog"

	"github.com/jtorra/blogscrap"
	"github.com/jtorra/blogscrap/bloom"
)

// Visited-set sizing for the pagination cycle guard.
const (
	// visitedExpectedPages is the expected number of listing pages per site.
	visitedExpectedPages = 10000
	// visitedFalsePositiveRate is the acceptable false positive rate; a
	// false positive ends a walk early, it never re-fetches a page.
	visitedFalsePositiveRate = 0.01
)

// Crawler orchestrates the crawling of one blog site at a time. The crawl
// is single-threaded and fully synchronous: one HTTP request in flight,
// articles processed in document order, pages in pagination order.
type Crawler struct {
	Fetcher   blogscrap.Fetcher
	Detector  blogscrap.PlatformDetector
	Selectors blogscrap.SelectorRegistry
	Store     blogscrap.ArchiveStore
	Converter blogscrap.Converter

	// Pauser, when set, spaces out network fetches. Cache hits cost no
	// network call and no pause.
	Pauser *Pauser

	Logger *slog.Logger
}

// Options control a single crawl invocation.
type Options struct {
	// OnlyFirstPage skips pagination unconditionally after the first
	// listing pass (the initial "scrap" behavior; "refresh" walks fully).
	OnlyFirstPage bool

	// Force re-fetches and overwrites artifacts that are already cached.
	Force bool
}

// Result summarizes one site's crawl.
type Result struct {
	Platform blogscrap.Platform
	Pages    int // listing pages fetched
	Articles int // summaries listed after noise filtering
	Saved    int // artifacts written
	Cached   int // cache hits (no fetch)
	Missing  int // article pages with no recognizable content
}

// CrawlSite walks a site from its root URL to completion: fetch page,
// classify (first page only), list articles, extract and cache each, then
// follow the "older posts" link until none is found or a page repeats.
// Filesystem errors abort the crawl; per-article extraction misses and
// transport-level failures do not.
func (c *Crawler) CrawlSite(ctx context.Context, site *blogscrap.Site, opts Options) (*Result, error) {
	if err := c.Store.EnsureSite(site); err != nil {
		return nil, err
	}

	result := &Result{Platform: blogscrap.PlatformUnknown}
	visited := bloom.NewFilter(visitedExpectedPages, visitedFalsePositiveRate)
	logger := c.logger().With("site", site.Hostname)

	var selector blogscrap.LayoutSelector
	label := ""
	counter := 0
	pageURL := site.RootURL

	for pageURL != "" {
		// Cycle guard runs before the fetch: a repeated URL costs no
		// network call.
		if visited.Seen(pageURL) {
			logger.Debug("page already visited, ending walk", "url", pageURL)
			break
		}
		visited.Add(pageURL)

		html, err := c.fetch(ctx, site, pageURL)
		if err != nil {
			return result, err
		}
		result.Pages++

		// Classification runs once, only while the platform is unknown;
		// once set it is immutable for the rest of the crawl.
		if result.Platform == blogscrap.PlatformUnknown {
			result.Platform = c.Detector.Detect(site.RootURL, html)
			selector = c.Selectors.Get(result.Platform)
			if selector == nil {
				logger.Info("platform unknown, nothing to extract", "url", pageURL)
				break
			}
			logger.Info("platform detected", "platform", result.Platform)
		}

		articles, err := selector.ListArticles(html, site.RootURL)
		if err != nil {
			return result, err
		}
		result.Articles += len(articles)

		for _, article := range articles {
			counter++
			if err := c.processArticle(ctx, site, selector, article, counter, opts, result, logger); err != nil {
				return result, err
			}
		}

		if opts.OnlyFirstPage {
			break
		}

		next, nextLabel, err := selector.NextPageURL(html, site.RootURL, label)
		if err != nil {
			return result, err
		}
		label = nextLabel
		pageURL = next
	}

	logger.Info("crawl finished",
		"platform", result.Platform,
		"pages", result.Pages,
		"articles", result.Articles,
		"saved", result.Saved,
		"cached", result.Cached,
		"missing", result.Missing,
	)
	return result, nil
}

// processArticle extracts, caches, and converts one article. The cache
// check happens before any fetch: on a hit the article costs zero network
// calls unless forced.
func (c *Crawler) processArticle(
	ctx context.Context,
	site *blogscrap.Site,
	selector blogscrap.LayoutSelector,
	article blogscrap.Article,
	seq int,
	opts Options,
	result *Result,
	logger *slog.Logger,
) error {
	name := blogscrap.ArtifactName(article.URL, article.Title)
	logger = logger.With("seq", seq, "title", article.Title, "artifact", name)

	if !opts.Force && c.Store.ArtifactExists(site, name) {
		result.Cached++
		logger.Info("cached", "url", article.URL)
		return c.convert(site, name, opts, logger)
	}

	html, err := c.fetch(ctx, site, article.URL)
	if err != nil {
		return err
	}

	artifact, err := selector.ExtractContent(html, article.Title)
	if err != nil {
		if blogscrap.ErrorCode(err) == blogscrap.ENOTFOUND {
			result.Missing++
			logger.Info("content not found, skipping", "url", article.URL)
			return nil
		}
		return err
	}

	if err := c.Store.SaveArtifact(site, name, artifact); err != nil {
		return err
	}
	result.Saved++
	logger.Info("saved", "url", article.URL)

	return c.convert(site, name, opts, logger)
}

// convert runs the downstream markdown conversion for a cached artifact.
// It is idempotent on existing outputs unless forced. Conversion failures
// are logged and skipped; the crawl engine's outputs are already safe on
// disk at this point.
func (c *Crawler) convert(site *blogscrap.Site, name string, opts Options, logger *slog.Logger) error {
	mdName := blogscrap.MarkdownName(name)
	if !opts.Force && c.Store.MarkdownExists(site, mdName) {
		return nil
	}

	artifact, err := c.Store.ReadArtifact(site, name)
	if err != nil {
		return err
	}

	markdown, err := c.Converter.Convert(artifact)
	if err != nil {
		logger.Warn("markdown conversion failed", "error", err)
		return nil
	}

	return c.Store.SaveMarkdown(site, mdName, markdown)
}

// fetch pauses politely, then retrieves a URL.
func (c *Crawler) fetch(ctx context.Context, site *blogscrap.Site, url string) (string, error) {
	if c.Pauser != nil {
		if err := c.Pauser.Pause(ctx, site.Hostname); err != nil {
			return "", err
		}
	}
	return c.Fetcher.Fetch(ctx, url)
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
