package pipeline

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Workspace is the on-disk layout for one build:
//
//	{data-root}/builds/{buildId}/
//	  output/       deployable artifact tree
//	  logs/         phase log files
//	  screenshots/  baseline captures per page and viewport
type Workspace struct {
	Root        string
	Output      string
	Logs        string
	Screenshots string
}

// NewWorkspace returns the workspace paths for a build without
// touching the filesystem.
func NewWorkspace(dataRoot, buildID string) *Workspace {
	root := filepath.Join(dataRoot, "builds", buildID)
	return &Workspace{
		Root:        root,
		Output:      filepath.Join(root, "output"),
		Logs:        filepath.Join(root, "logs"),
		Screenshots: filepath.Join(root, "screenshots"),
	}
}

// Prepare creates the workspace directory tree.
func (w *Workspace) Prepare() error {
	for _, dir := range []string{w.Output, w.Logs, w.Screenshots} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create workspace dir %s: %w", dir, err)
		}
	}
	return nil
}

// Exists reports whether the workspace root is present on disk. Resume
// after a retry is only possible when the checkpointed artifacts are
// still here.
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.Root)
	return err == nil && info.IsDir()
}

// InventoryPath is where the crawl phase persists the site inventory.
func (w *Workspace) InventoryPath() string {
	return filepath.Join(w.Root, "inventory.json")
}

// PageFile maps a URL path to its file under output/: "/" becomes
// index.html, "/about/" and "/about" become about/index.html.
func (w *Workspace) PageFile(urlPath string) string {
	return filepath.Join(w.Output, PageRelPath(urlPath))
}

// PageRelPath returns the output-relative file path for a URL path.
func PageRelPath(urlPath string) string {
	trimmed := strings.Trim(urlPath, "/")
	if trimmed == "" {
		return "index.html"
	}
	if strings.Contains(filepath.Base(trimmed), ".") {
		return filepath.FromSlash(trimmed)
	}
	return filepath.Join(filepath.FromSlash(trimmed), "index.html")
}

// AssetFile maps an asset URL to its file under output/, mirroring the
// URL path. Query strings are dropped.
func (w *Workspace) AssetFile(assetURL string) (string, error) {
	rel, err := AssetRelPath(assetURL)
	if err != nil {
		return "", err
	}
	return filepath.Join(w.Output, rel), nil
}

// AssetRelPath returns the output-relative path for an asset URL.
func AssetRelPath(assetURL string) (string, error) {
	parsed, err := url.Parse(assetURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse asset url %s: %w", assetURL, err)
	}
	p := strings.TrimPrefix(parsed.Path, "/")
	if p == "" {
		return "", fmt.Errorf("asset url %s has no path", assetURL)
	}
	return filepath.FromSlash(p), nil
}

// ScreenshotFile names a baseline capture for a page and viewport.
func (w *Workspace) ScreenshotFile(urlPath, viewport string) string {
	slug := strings.Trim(strings.ReplaceAll(urlPath, "/", "-"), "-")
	if slug == "" {
		slug = "home"
	}
	return filepath.Join(w.Screenshots, fmt.Sprintf("%s-%s.png", slug, viewport))
}
