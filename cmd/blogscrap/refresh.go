package main

import (
	"fmt"

	"github.com/jtorra/blogscrap"
	"github.com/jtorra/blogscrap/crawl"
)

// Run executes the refresh command: re-crawl every ledgered site in full,
// starting from an optional lexicographic cursor (inclusive). Membership of
// the ledger never changes; it is only rewritten in sorted order.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	urls, err := deps.Ledger.Load()
	if err != nil {
		return err
	}

	for _, u := range blogscrap.LedgerFrom(urls, c.From) {
		site, err := blogscrap.NewSite(u)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", u, blogscrap.ErrorMessage(err))
			continue
		}

		result, err := deps.Crawler.CrawlSite(deps.Ctx, site, crawl.Options{
			Force: c.Force,
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error crawling %s: %v\n", site.Hostname, err)
			return err
		}
		printResult(deps, site, result)
	}

	return deps.Ledger.Save(urls)
}
