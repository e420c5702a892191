package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/metrics-lab/staticpress/pkg/browser"
)

// PageDoc is one crawled page in the inventory.
type PageDoc struct {
	URL         string `json:"url"`
	Path        string `json:"path"`
	ContentHash string `json:"contentHash"`
	// Unchanged is set on partial builds when the content hash matches
	// the fingerprint from the previous crawl.
	Unchanged           bool                         `json:"unchanged,omitempty"`
	Links               []string                     `json:"links,omitempty"`
	Assets              []browser.AssetRef           `json:"assets,omitempty"`
	InteractiveElements []browser.InteractiveElement `json:"interactiveElements,omitempty"`
	ClassNames          []string                     `json:"classNames,omitempty"`
	ThirdPartyOrigins   []string                     `json:"thirdPartyOrigins,omitempty"`
}

// ImageVariant is one generated rendition of a source image.
type ImageVariant struct {
	RelPath string `json:"relPath"`
	Width   int    `json:"width"`
	Format  string `json:"format"`
	Bytes   int64  `json:"bytes"`
}

// Inventory is the crawl phase's full account of the source site. It
// is persisted to the workspace so later phases (and resumed builds)
// work from the same snapshot.
type Inventory struct {
	StartURL          string    `json:"startUrl"`
	Pages             []PageDoc `json:"pages"`
	ClassNames        []string  `json:"classNames,omitempty"`
	ThirdPartyOrigins []string  `json:"thirdPartyOrigins,omitempty"`

	// Deduplicated same-origin assets downloaded into the output tree,
	// keyed by output-relative path.
	Assets map[string]browser.AssetRef `json:"assets"`

	// ImageVariants records renditions produced by the images phase,
	// keyed by the source asset's output-relative path.
	ImageVariants map[string][]ImageVariant `json:"imageVariants,omitempty"`

	// FontFiles maps original font URLs to their self-hosted
	// output-relative paths, filled by the fonts phase.
	FontFiles map[string]string `json:"fontFiles,omitempty"`
}

// Save writes the inventory to its workspace location.
func (inv *Inventory) Save(path string) error {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to persist inventory: %w", err)
	}
	return nil
}

// LoadInventory reads a persisted inventory. A missing file means the
// crawl checkpoint is unusable and the build must restart from crawl.
func LoadInventory(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("failed to parse inventory: %w", err)
	}
	return &inv, nil
}

// AssetsByClass returns the inventory assets of one class, keyed by
// output-relative path.
func (inv *Inventory) AssetsByClass(class string) map[string]browser.AssetRef {
	out := map[string]browser.AssetRef{}
	for rel, ref := range inv.Assets {
		if ref.AssetClass == class {
			out[rel] = ref
		}
	}
	return out
}

// JQueryRequired reports whether any detected interactive element
// depends on jQuery; when true, the JS phase must not touch jQuery
// bundles.
func (inv *Inventory) JQueryRequired() bool {
	for _, page := range inv.Pages {
		for _, el := range page.InteractiveElements {
			if el.JQueryDependent {
				return true
			}
		}
	}
	return false
}
