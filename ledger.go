package blogscrap

import (
	"sort"
	"strings"
)

// NormalizeLedger returns the URLs with whitespace and trailing slashes
// trimmed, blanks dropped, duplicates removed, and the result sorted.
// It is a fixed point: normalizing an already-normalized set is a no-op.
func NormalizeLedger(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	normalized := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSuffix(strings.TrimSpace(u), "/")
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		normalized = append(normalized, u)
	}
	sort.Strings(normalized)
	return normalized
}

// LedgerFrom returns the entries at or after cursor in lexicographic order.
// The cursor is inclusive; an empty cursor returns all entries.
func LedgerFrom(urls []string, cursor string) []string {
	if cursor == "" {
		return urls
	}
	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		if u >= cursor {
			filtered = append(filtered, u)
		}
	}
	return filtered
}
