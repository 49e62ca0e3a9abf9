package blogscrap_test

import (
	"testing"

	"github.com/jtorra/blogscrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSite_DerivesHostnameAndTrimsSlash(t *testing.T) {
	t.Parallel()

	site, err := blogscrap.NewSite("https://myblog.blogspot.com/")

	require.NoError(t, err)
	assert.Equal(t, "https://myblog.blogspot.com", site.RootURL)
	assert.Equal(t, "myblog.blogspot.com", site.Hostname)
}

func TestNewSite_RejectsURLWithoutHost(t *testing.T) {
	t.Parallel()

	_, err := blogscrap.NewSite("not-a-url")

	require.Error(t, err)
	assert.Equal(t, blogscrap.EINVALID, blogscrap.ErrorCode(err))
}
