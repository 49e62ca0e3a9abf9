package fs

import (
	"os"
	"strings"

	"github.com/jtorra/blogscrap"
)

// Ensure Ledger implements blogscrap.LedgerStore at compile time.
var _ blogscrap.LedgerStore = (*Ledger)(nil)

// Ledger persists the set of root site URLs ever crawled as a plain-text
// file: one URL per line, sorted, deduplicated, trailing slashes stripped.
// It is read in full at process start and rewritten in full at process end;
// two simultaneous process invocations race on it (known limitation).
type Ledger struct {
	path string
}

// NewLedger creates a Ledger backed by the given file path (typically
// ".urls").
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Load reads the ledger, returning normalized URLs in sorted order.
// A missing ledger file loads as an empty set.
func (l *Ledger) Load() ([]string, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blogscrap.NormalizeLedger(strings.Split(string(data), "\n")), nil
}

// Save rewrites the ledger with the URLs normalized and sorted. Saving
// immediately after loading produces a byte-identical file.
func (l *Ledger) Save(urls []string) error {
	normalized := blogscrap.NormalizeLedger(urls)
	var b strings.Builder
	for _, u := range normalized {
		b.WriteString(u)
		b.WriteByte('\n')
	}
	return os.WriteFile(l.path, []byte(b.String()), 0644)
}
