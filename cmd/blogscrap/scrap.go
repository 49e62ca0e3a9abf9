package main

import (
	"fmt"

	"github.com/jtorra/blogscrap"
	"github.com/jtorra/blogscrap/crawl"
)

// Run executes the scrap command: crawl one site (first page only unless
// --full), then record it in the ledger.
func (c *ScrapCmd) Run(deps *Dependencies) error {
	site, err := blogscrap.NewSite(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogscrap.ErrorMessage(err))
		return err
	}

	result, err := deps.Crawler.CrawlSite(deps.Ctx, site, crawl.Options{
		OnlyFirstPage: !c.Full,
		Force:         c.Force,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling %s: %v\n", site.Hostname, err)
		return err
	}

	printResult(deps, site, result)

	// Record the site so refresh picks it up in later runs.
	urls, err := deps.Ledger.Load()
	if err != nil {
		return err
	}
	return deps.Ledger.Save(append(urls, site.RootURL))
}

func printResult(deps *Dependencies, site *blogscrap.Site, result *crawl.Result) {
	if result.Platform == blogscrap.PlatformUnknown {
		fmt.Fprintf(deps.Stdout, "%s: unknown platform, nothing archived\n", site.Hostname)
		return
	}
	fmt.Fprintf(deps.Stdout, "%s (%s): %d pages, %d articles, %d saved, %d cached, %d missing\n",
		site.Hostname, result.Platform,
		result.Pages, result.Articles, result.Saved, result.Cached, result.Missing)
}
