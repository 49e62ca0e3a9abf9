package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jtorra/blogscrap/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_MissingFileLoadsEmpty(t *testing.T) {
	t.Parallel()

	ledger := fs.NewLedger(filepath.Join(t.TempDir(), ".urls"))

	urls, err := ledger.Load()

	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestLedger_SaveNormalizes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".urls")
	ledger := fs.NewLedger(path)

	require.NoError(t, ledger.Save([]string{
		"https://z.com/",
		"https://a.com",
		"https://z.com",
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://a.com\nhttps://z.com\n", string(data))
}

func TestLedger_SaveAfterLoadIsByteIdentical(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".urls")
	require.NoError(t, os.WriteFile(path, []byte("https://b.com/\nhttps://a.com\nhttps://a.com\n"), 0644))
	ledger := fs.NewLedger(path)

	// First load+save normalizes the hand-edited file.
	urls, err := ledger.Load()
	require.NoError(t, err)
	require.NoError(t, ledger.Save(urls))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	// A second load+save changes nothing.
	urls, err = ledger.Load()
	require.NoError(t, err)
	require.NoError(t, ledger.Save(urls))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Equal(t, "https://a.com\nhttps://b.com\n", string(second))
}
