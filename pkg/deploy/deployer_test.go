package deploy

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrics-lab/staticpress/pkg/upstream"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return dir
}

func TestProjectName(t *testing.T) {
	assert.Equal(t, "mls-site_1", ProjectName("site_1"))
}

func TestDeploy_Success(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"index.html":     "<html></html>",
		"css/styles.css": "body{}",
	})

	var gotPath, gotAuth string
	var gotFiles []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		gz, err := gzip.NewReader(r.Body)
		require.NoError(t, err)
		tr := tar.NewReader(gz)
		for {
			hdr, err := tr.Next()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			gotFiles = append(gotFiles, hdr.Name)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"url":"https://mls-site-1.edge.example.com"}`))
	}))
	defer srv.Close()

	d := NewHTTPDeployer(srv.URL, "token-123")
	url, err := d.Deploy(context.Background(), "mls-site_1", dir, "https://origin.example.com")

	require.NoError(t, err)
	assert.Equal(t, "https://mls-site-1.edge.example.com", url)
	assert.Equal(t, "/v1/projects/mls-site_1/deployments", gotPath)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.ElementsMatch(t, []string{"index.html", "css/styles.css"}, gotFiles)
}

func TestDeploy_ServerErrorIsTransient(t *testing.T) {
	dir := writeTree(t, map[string]string{"index.html": "x"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := NewHTTPDeployer(srv.URL, "t")
	_, err := d.Deploy(context.Background(), "p", dir, "")

	require.Error(t, err)
	assert.True(t, upstream.IsTransient(err))
}

func TestDeploy_ClientErrorIsFatal(t *testing.T) {
	dir := writeTree(t, map[string]string{"index.html": "x"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	d := NewHTTPDeployer(srv.URL, "t")
	_, err := d.Deploy(context.Background(), "p", dir, "")

	require.Error(t, err)
	assert.False(t, upstream.IsTransient(err))
}

func TestDeploy_EmptyDirectoryFails(t *testing.T) {
	d := NewHTTPDeployer("http://unused", "t")
	_, err := d.Deploy(context.Background(), "p", t.TempDir(), "")
	assert.ErrorContains(t, err, "empty")
}

func TestTarDirectory_RelativePaths(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.html":        "a",
		"nested/b.html": "b",
	})
	archive, n, err := tarDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	gz, err := gzip.NewReader(bytes.NewReader(archive))
	require.NoError(t, err)
	tr := tar.NewReader(gz)
	var names []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, hdr.Name)
	}
	assert.ElementsMatch(t, []string{"a.html", "nested/b.html"}, names)
}
