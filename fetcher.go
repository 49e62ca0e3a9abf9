package blogscrap

import "context"

// Fetcher retrieves raw HTML from URLs with a single blocking GET.
//
// Transport-level failures (non-200 statuses, connection errors) are
// deliberately permissive: implementations log them and return an empty or
// partial body rather than an error, so a crawl degrades to "nothing found"
// instead of aborting. The error return is reserved for malformed URLs and
// context cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (html string, err error)
}
