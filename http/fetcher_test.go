package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jtorra/blogscrap"
	bshttp "github.com/jtorra/blogscrap/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ blogscrap.Fetcher = (*bshttp.Fetcher)(nil)

func TestFetcher_SendsDescriptiveUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	f := bshttp.NewFetcher()
	body, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "<html></html>", body)
	assert.Equal(t, bshttp.UserAgent, gotUA)
}

func TestFetcher_NonOKStatusStillReturnsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("gone"))
	}))
	defer srv.Close()

	f := bshttp.NewFetcher()
	body, err := f.Fetch(context.Background(), srv.URL)

	// Transport-level problems degrade, they don't abort.
	require.NoError(t, err)
	assert.Equal(t, "gone", body)
}

func TestFetcher_ConnectionFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	f := bshttp.NewFetcher()
	body, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestFetcher_RejectsMalformedURL(t *testing.T) {
	t.Parallel()

	f := bshttp.NewFetcher()
	_, err := f.Fetch(context.Background(), "ht tp://bad url")

	require.Error(t, err)
	assert.Equal(t, blogscrap.EINVALID, blogscrap.ErrorCode(err))
}

func TestFetcher_ReportsContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := bshttp.NewFetcher()
	_, err := f.Fetch(ctx, srv.URL)

	assert.ErrorIs(t, err, context.Canceled)
}
