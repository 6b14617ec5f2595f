package scraperapi

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

func TestFetchAndSaveImage_WritesFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), "nested", "product_image.jpg")
	n, err := testClient("").FetchAndSaveImage(context.Background(), srv.URL+"/img.jpg", dest)
	require.NoError(t, err)
	assert.Equal(t, int64(len("jpeg-bytes")), n)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(got))
}

func TestFetchAndSaveImage_OverwritesExisting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("new"))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	dest := filepath.Join(dir, "product_image.jpg")
	require.NoError(t, os.WriteFile(dest, []byte("old image contents"), 0o644))

	_, err := testClient("").FetchAndSaveImage(context.Background(), srv.URL, dest)
	require.NoError(t, err)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestFetchAndSaveImage_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), "product_image.jpg")
	_, err := testClient("").FetchAndSaveImage(context.Background(), srv.URL, dest)
	require.ErrorIs(t, err, ErrImageDownload)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetchAndSaveImage_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	imageURL := srv.URL
	srv.Close()

	_, err := testClient("").FetchAndSaveImage(context.Background(), imageURL, filepath.Join(t.TempDir(), "p.jpg"))
	require.ErrorIs(t, err, ErrRequest)
}
