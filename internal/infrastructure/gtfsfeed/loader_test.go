package gtfsfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	assert.True(t, isRemote("https://example.org/feed.zip"))
	assert.True(t, isRemote("http://example.org/feed.zip"))
	assert.False(t, isRemote("/data/feed.zip"))
	assert.False(t, isRemote("feed.zip"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.zip"))
	assert.ErrorContains(t, err, "error reading local GTFS file")
}

func TestLoadRejectsNonZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o600))

	_, err := Load(context.Background(), path)
	assert.ErrorContains(t, err, "error parsing GTFS data")
}

func TestLoadRemoteStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Load(context.Background(), srv.URL+"/feed.zip")
	assert.ErrorContains(t, err, "status 404")
}

func TestLoadRemoteCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("zip"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, srv.URL+"/feed.zip")
	assert.ErrorIs(t, err, context.Canceled)
}
