package mock

import "github.com/jtorra/blogscrap"

var _ blogscrap.LedgerStore = (*LedgerStore)(nil)

// LedgerStore is a mock implementation of blogscrap.LedgerStore.
type LedgerStore struct {
	LoadFn func() ([]string, error)
	SaveFn func(urls []string) error
}

func (l *LedgerStore) Load() ([]string, error) {
	return l.LoadFn()
}

func (l *LedgerStore) Save(urls []string) error {
	return l.SaveFn(urls)
}
