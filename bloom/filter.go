// Package bloom provides probabilistic URL-set membership, used as the
// crawl's pagination cycle guard.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for visited-URL tracking within one crawl
// run. A false positive can end a walk one page early; a visited page is
// never re-fetched (no false negatives).
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as visited.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Seen returns true if the URL might have been visited.
func (f *Filter) Seen(url string) bool {
	return f.f.TestString(url)
}
