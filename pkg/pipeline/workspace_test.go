package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRelPath(t *testing.T) {
	tests := []struct {
		urlPath string
		want    string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/about/", filepath.Join("about", "index.html")},
		{"/about", filepath.Join("about", "index.html")},
		{"/blog/first-post/", filepath.Join("blog", "first-post", "index.html")},
		{"/contact.html", "contact.html"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageRelPath(tt.urlPath), "path %q", tt.urlPath)
	}
}

func TestAssetRelPath(t *testing.T) {
	rel, err := AssetRelPath("https://example.com/wp-content/uploads/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("wp-content", "uploads", "photo.jpg"), rel)

	rel, err = AssetRelPath("/assets/app.css?ver=6.4")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("assets", "app.css"), rel)

	_, err = AssetRelPath("https://example.com")
	assert.Error(t, err)
}

func TestWorkspaceLayout(t *testing.T) {
	ws := NewWorkspace(t.TempDir(), "build_abc")
	require.NoError(t, ws.Prepare())
	assert.True(t, ws.Exists())
	assert.DirExists(t, ws.Output)
	assert.DirExists(t, ws.Logs)
	assert.DirExists(t, ws.Screenshots)

	missing := NewWorkspace(t.TempDir(), "build_never")
	assert.False(t, missing.Exists())
}

func TestScreenshotFile(t *testing.T) {
	ws := NewWorkspace("/data", "build_abc")
	assert.Equal(t, filepath.Join(ws.Screenshots, "home-mobile.png"), ws.ScreenshotFile("/", "mobile"))
	assert.Equal(t, filepath.Join(ws.Screenshots, "about-desktop.png"), ws.ScreenshotFile("/about/", "desktop"))
}
