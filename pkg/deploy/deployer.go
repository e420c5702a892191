// Package deploy uploads optimized artifact trees to the edge
// provider.
package deploy

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/metrics-lab/staticpress/pkg/upstream"
)

// Deployer is the edge provider contract consumed by the pipeline and
// the live-edit workspace.
type Deployer interface {
	// Deploy uploads a directory under the given project name and
	// returns the public URL.
	Deploy(ctx context.Context, projectName, directory, sourceURL string) (string, error)
}

// ProjectName returns the edge project name for a site.
func ProjectName(siteID string) string {
	return "mls-" + siteID
}

// HTTPDeployer deploys by streaming a tar.gz of the directory to the
// edge provider's deployment endpoint.
type HTTPDeployer struct {
	baseURL  string
	apiToken string
	client   *http.Client
	logger   *slog.Logger
}

// NewHTTPDeployer creates an edge deployer against the given base URL.
func NewHTTPDeployer(baseURL, apiToken string) *HTTPDeployer {
	return &HTTPDeployer{
		baseURL:  baseURL,
		apiToken: apiToken,
		client:   &http.Client{Timeout: 10 * time.Minute},
		logger:   slog.With("component", "deploy.edge"),
	}
}

type deployResponse struct {
	URL string `json:"url"`
}

// Deploy uploads the directory. 5xx and rate-limit responses are
// transient; 4xx responses are fatal.
func (d *HTTPDeployer) Deploy(ctx context.Context, projectName, directory, sourceURL string) (string, error) {
	archive, files, err := tarDirectory(directory)
	if err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", directory, err)
	}
	if files == 0 {
		return "", fmt.Errorf("deploy directory %s is empty", directory)
	}

	url := fmt.Sprintf("%s/v1/projects/%s/deployments", d.baseURL, projectName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(archive))
	if err != nil {
		return "", fmt.Errorf("failed to build deploy request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+d.apiToken)
	req.Header.Set("Content-Type", "application/gzip")
	req.Header.Set("X-Source-URL", sourceURL)

	d.logger.Info("Uploading deployment", "project", projectName, "files", files, "bytes", len(archive))

	resp, err := d.client.Do(req)
	if err != nil {
		return "", upstream.Transient(fmt.Errorf("deploy upload failed: %w", err))
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		err := fmt.Errorf("deploy returned %d: %s", resp.StatusCode, string(body))
		if upstream.RetryableStatus(resp.StatusCode) {
			return "", upstream.Transient(err)
		}
		return "", err
	}

	var parsed deployResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse deploy response: %w", err)
	}
	if parsed.URL == "" {
		return "", fmt.Errorf("deploy response missing url")
	}

	d.logger.Info("Deployment live", "project", projectName, "url", parsed.URL)
	return parsed.URL, nil
}

// tarDirectory produces a gzipped tar of every regular file under root,
// with paths relative to root.
func tarDirectory(root string) ([]byte, int, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	files := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		hdr := &tar.Header{
			Name:    filepath.ToSlash(rel),
			Mode:    0o644,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := io.Copy(tw, f); err != nil {
			return err
		}
		files++
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if err := tw.Close(); err != nil {
		return nil, 0, err
	}
	if err := gz.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), files, nil
}
