package main

import (
	"testing"

	"github.com/jtorra/blogscrap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshCmd_WalksLedgerFromCursor(t *testing.T) {
	t.Parallel()

	var fetched []string
	var saved []string
	deps := testDeps(t, map[string]string{
		"https://a.example.com": "<html><body></body></html>",
		"https://m.example.com": "<html><body></body></html>",
		"https://z.example.com": "<html><body></body></html>",
	}, &fetched)
	deps.Ledger = &mock.LedgerStore{
		LoadFn: func() ([]string, error) {
			return []string{"https://a.example.com", "https://m.example.com", "https://z.example.com"}, nil
		},
		SaveFn: func(urls []string) error { saved = urls; return nil },
	}

	cmd := &RefreshCmd{From: "https://m.example.com"}
	require.NoError(t, cmd.Run(deps))

	// Sites before the cursor are not visited; the cursor itself is.
	assert.NotContains(t, fetched, "https://a.example.com")
	assert.Contains(t, fetched, "https://m.example.com")
	assert.Contains(t, fetched, "https://z.example.com")

	// Membership never changes on refresh.
	assert.Equal(t, []string{"https://a.example.com", "https://m.example.com", "https://z.example.com"}, saved)
}

func TestRefreshCmd_EmptyLedgerIsANoOp(t *testing.T) {
	t.Parallel()

	var fetched []string
	saveCalled := false
	deps := testDeps(t, nil, &fetched)
	deps.Ledger = &mock.LedgerStore{
		LoadFn: func() ([]string, error) { return nil, nil },
		SaveFn: func([]string) error { saveCalled = true; return nil },
	}

	cmd := &RefreshCmd{}
	require.NoError(t, cmd.Run(deps))

	assert.Empty(t, fetched)
	assert.True(t, saveCalled)
}
