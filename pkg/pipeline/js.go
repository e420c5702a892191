package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// runJS minifies every crawled script. jQuery bundles are left alone
// whenever a detected interactive element depends on them; removal of
// bloat script tags happens in the HTML phase.
func (e *Engine) runJS(ctx context.Context, bc *buildCtx) error {
	if !boolSetting(bc.settings, "js", "minify", true) {
		return nil
	}

	scripts := bc.inv.AssetsByClass("js")
	jqueryRequired := bc.inv.JQueryRequired()

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.AssetConcurrency)
	for rel := range scripts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if strings.Contains(rel, ".min.") {
				return nil
			}
			if jqueryRequired && isJQueryBundle(rel) {
				e.log(gctx, bc, "info", PhaseJS, fmt.Sprintf("leaving %s untouched: interactive elements depend on jQuery", rel))
				return nil
			}

			path := filepath.Join(bc.ws.Output, rel)
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read script %s: %w", rel, err)
			}
			minified, err := e.jsMin.Minify(string(data))
			if err != nil {
				e.log(gctx, bc, "warn", PhaseJS, fmt.Sprintf("keeping original %s: %v", rel, err))
				return nil
			}
			if err := writeAtomic(path, []byte(minified)); err != nil {
				return err
			}
			mu.Lock()
			bc.stats.add("js", int64(len(data)), int64(len(minified)))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	e.log(ctx, bc, "info", PhaseJS, fmt.Sprintf("minified up to %d scripts", len(scripts)))
	return nil
}

func isJQueryBundle(rel string) bool {
	base := strings.ToLower(filepath.Base(rel))
	return strings.Contains(base, "jquery")
}
