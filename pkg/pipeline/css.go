package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// runCSS tree-shakes and minifies every crawled stylesheet against the
// full page corpus. Aggressiveness and safelists come from settings;
// the safe floor was already applied when the engine resolved them.
func (e *Engine) runCSS(ctx context.Context, bc *buildCtx) error {
	sheets := bc.inv.AssetsByClass("css")
	if len(sheets) == 0 {
		return nil
	}

	htmlDocs, err := e.loadPageHTML(bc)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.AssetConcurrency)
	for rel, ref := range sheets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			before, after, err := e.processStylesheet(gctx, bc, rel, ref.URL, htmlDocs)
			if err != nil {
				e.log(gctx, bc, "warn", PhaseCSS, fmt.Sprintf("keeping original %s: %v", rel, err))
				return nil
			}
			mu.Lock()
			bc.stats.add("css", before, after)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	e.log(ctx, bc, "info", PhaseCSS, fmt.Sprintf("processed %d stylesheets", len(sheets)))
	return nil
}

// processStylesheet purges and minifies one stylesheet in place.
func (e *Engine) processStylesheet(ctx context.Context, bc *buildCtx, rel, srcURL string, htmlDocs []string) (before, after int64, err error) {
	path := filepath.Join(bc.ws.Output, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read stylesheet: %w", err)
	}
	before = int64(len(data))
	css := string(data)

	resolved, err := e.resolver.ResolveForAsset(ctx, bc.site.ID, urlPathOf(srcURL))
	if err != nil {
		return 0, 0, err
	}
	// Per-asset overrides never loosen the site-level purge floor.
	aggressiveness := minAggressiveness(
		stringSetting(bc.settings, "css", "purgeAggressiveness", "standard"),
		stringSetting(resolved, "css", "purgeAggressiveness", "standard"),
	)

	if boolSetting(resolved, "css", "purgeEnabled", true) && aggressiveness != "safe" {
		tier := "standard"
		if aggressiveness == "aggressive" {
			tier = "greedy"
		}
		purged, err := e.cssProc.Purge(css, htmlDocs, purgeSafelist(resolved, tier))
		if err != nil {
			return 0, 0, err
		}
		css = purged
	}

	if boolSetting(resolved, "css", "minify", true) {
		minified, err := e.cssProc.Minify(css)
		if err != nil {
			return 0, 0, err
		}
		css = minified
	}

	if err := writeAtomic(path, []byte(css)); err != nil {
		return 0, 0, err
	}
	return before, int64(len(css)), nil
}

// loadPageHTML reads every crawled page from the output tree.
func (e *Engine) loadPageHTML(bc *buildCtx) ([]string, error) {
	docs := make([]string, 0, len(bc.inv.Pages))
	for _, p := range bc.inv.Pages {
		data, err := os.ReadFile(bc.ws.PageFile(p.Path))
		if err != nil {
			return nil, fmt.Errorf("failed to read page %s: %w", p.Path, err)
		}
		docs = append(docs, string(data))
	}
	return docs, nil
}

// minAggressiveness returns the more conservative of two purge levels.
func minAggressiveness(a, b string) string {
	order := map[string]int{"safe": 0, "standard": 1, "aggressive": 2}
	if order[a] <= order[b] {
		return a
	}
	return b
}

// writeAtomic writes via a temp file and rename so readers never see a
// partial file.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
