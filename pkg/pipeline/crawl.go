package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"golang.org/x/sync/errgroup"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/page"
	"github.com/metrics-lab/staticpress/pkg/browser"
	"github.com/metrics-lab/staticpress/pkg/services"
	"github.com/metrics-lab/staticpress/pkg/upstream"
)

// runCrawl discovers the site's pages, captures JS-rendered HTML and
// baseline screenshots through the renderer, downloads same-origin
// assets into the output tree, and persists the inventory.
func (e *Engine) runCrawl(ctx context.Context, bc *buildCtx) error {
	start, err := url.Parse(bc.site.SourceURL)
	if err != nil {
		return fmt.Errorf("site %s has invalid source url: %w", bc.site.ID, err)
	}

	urls, err := e.discoverURLs(ctx, start)
	if err != nil {
		return err
	}
	e.log(ctx, bc, "info", PhaseCrawl, fmt.Sprintf("discovered %d pages", len(urls)))

	if err := e.setProgress(ctx, bc, len(urls), 0); err != nil {
		return err
	}

	inv := &Inventory{
		StartURL: bc.site.SourceURL,
		Assets:   map[string]browser.AssetRef{},
	}

	var (
		mu        sync.Mutex
		processed int
		classes   = map[string]bool{}
		origins   = map[string]bool{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.CrawlConcurrency)
	for _, pageURL := range urls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := e.capturePage(gctx, bc, pageURL)
			if err != nil {
				// One broken page does not fail the crawl; the build
				// fails only when nothing renders.
				e.log(gctx, bc, "warn", PhaseCrawl, fmt.Sprintf("skipping %s: %v", pageURL, err))
				return nil
			}

			mu.Lock()
			inv.Pages = append(inv.Pages, *doc)
			for _, class := range doc.ClassNames {
				classes[class] = true
			}
			for _, origin := range doc.ThirdPartyOrigins {
				origins[origin] = true
			}
			for _, ref := range doc.Assets {
				if !sameHost(ref.URL, start.Host) {
					if ref.AssetClass != "font" && ref.AssetClass != "css" {
						origins[originOf(ref.URL)] = true
					}
					continue
				}
				if rel, err := AssetRelPath(ref.URL); err == nil {
					inv.Assets[rel] = ref
				}
			}
			processed++
			count := processed
			mu.Unlock()

			if count%10 == 0 {
				_ = e.setProgress(gctx, bc, len(urls), count)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(inv.Pages) == 0 {
		return fmt.Errorf("crawl completed with zero renderable pages for %s", bc.site.SourceURL)
	}

	// Class inventory feeds the purge safe floor; third-party origins
	// feed resource hints.
	inv.ClassNames = sortedKeys(classes)
	inv.ThirdPartyOrigins = sortedKeys(origins)
	sort.Slice(inv.Pages, func(i, j int) bool { return inv.Pages[i].Path < inv.Pages[j].Path })

	if err := e.downloadAssets(ctx, bc, inv); err != nil {
		return err
	}

	if err := e.setProgress(ctx, bc, len(urls), len(inv.Pages)); err != nil {
		return err
	}
	bc.inv = inv
	return inv.Save(bc.ws.InventoryPath())
}

// discoverURLs walks same-origin links from the start URL and merges
// in the sitemap, bounded by the depth and page caps.
func (e *Engine) discoverURLs(ctx context.Context, start *url.URL) ([]string, error) {
	seen := map[string]bool{}
	var mu sync.Mutex

	c := colly.NewCollector(
		colly.AllowedDomains(start.Host),
		colly.MaxDepth(e.cfg.MaxCrawlDepth),
		colly.Async(true),
		colly.UserAgent("staticpress-crawler/1.0"),
	)
	if err := c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: e.cfg.CrawlConcurrency}); err != nil {
		return nil, fmt.Errorf("failed to configure crawler: %w", err)
	}

	c.OnHTML("a[href]", func(el *colly.HTMLElement) {
		link := el.Request.AbsoluteURL(el.Attr("href"))
		if link == "" || !isPageURL(link) {
			return
		}
		mu.Lock()
		full := len(seen) >= e.cfg.MaxPagesPerCrawl
		mu.Unlock()
		if full {
			return
		}
		_ = el.Request.Visit(link)
	})
	c.OnResponse(func(resp *colly.Response) {
		if resp.StatusCode != http.StatusOK {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if len(seen) < e.cfg.MaxPagesPerCrawl {
			seen[canonicalURL(resp.Request.URL)] = true
		}
	})

	if err := c.Visit(start.String()); err != nil {
		return nil, upstream.Transient(fmt.Errorf("failed to reach %s: %w", start, err))
	}
	c.Wait()

	for _, loc := range e.sitemapURLs(ctx, start) {
		mu.Lock()
		if len(seen) < e.cfg.MaxPagesPerCrawl {
			seen[loc] = true
		}
		mu.Unlock()
	}

	urls := sortedKeys(seen)
	if len(urls) > e.cfg.MaxPagesPerCrawl {
		urls = urls[:e.cfg.MaxPagesPerCrawl]
	}
	return urls, nil
}

type sitemapIndex struct {
	Locs []string `xml:"url>loc"`
}

// sitemapURLs fetches {origin}/sitemap.xml; absence is not an error.
func (e *Engine) sitemapURLs(ctx context.Context, start *url.URL) []string {
	sitemap := start.Scheme + "://" + start.Host + "/sitemap.xml"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemap, nil)
	if err != nil {
		return nil
	}
	resp, err := e.fetcher.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil
	}
	var parsed sitemapIndex
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil
	}

	var out []string
	for _, loc := range parsed.Locs {
		loc = strings.TrimSpace(loc)
		if sameHost(loc, start.Host) && isPageURL(loc) {
			out = append(out, loc)
		}
	}
	return out
}

// capturePage renders one URL, fingerprints it, stores the HTML and
// baseline screenshots, and updates the page's crawl record.
func (e *Engine) capturePage(ctx context.Context, bc *buildCtx, pageURL string) (*PageDoc, error) {
	rendered, err := e.renderer.RenderPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", pageURL, err)
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256([]byte(rendered.HTML))
	hash := hex.EncodeToString(sum[:])

	unchanged, err := e.recordPageFingerprint(ctx, bc, parsed.Path, hash)
	if err != nil {
		return nil, err
	}

	dest := bc.ws.PageFile(parsed.Path)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create page dir: %w", err)
	}
	if err := os.WriteFile(dest, []byte(rendered.HTML), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write page html: %w", err)
	}

	for _, viewport := range browser.Viewports {
		shot, err := e.renderer.Screenshot(ctx, pageURL, viewport)
		if err != nil {
			e.log(ctx, bc, "warn", PhaseCrawl, fmt.Sprintf("screenshot %s %s: %v", parsed.Path, viewport, err))
			continue
		}
		if err := os.WriteFile(bc.ws.ScreenshotFile(parsed.Path, viewport), shot.PNG, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write screenshot: %w", err)
		}
	}

	return &PageDoc{
		URL:                 pageURL,
		Path:                parsed.Path,
		ContentHash:         hash,
		Unchanged:           unchanged && bc.build.Scope == build.ScopePartial,
		Links:               rendered.Links,
		Assets:              rendered.Assets,
		InteractiveElements: rendered.InteractiveElements,
		ClassNames:          rendered.ClassNames,
		ThirdPartyOrigins:   rendered.ThirdPartyOrigins,
	}, nil
}

// recordPageFingerprint upserts the per-path content hash and reports
// whether it matched the previous crawl.
func (e *Engine) recordPageFingerprint(ctx context.Context, bc *buildCtx, path, hash string) (bool, error) {
	existing, err := e.client.Page.Query().
		Where(page.SiteIDEQ(bc.site.ID), page.PathEQ(path)).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err := e.client.Page.Create().
			SetID(services.NewID("pg")).
			SetSiteID(bc.site.ID).
			SetPath(path).
			SetContentHash(hash).
			Save(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to record page fingerprint: %w", err)
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load page fingerprint: %w", err)
	}

	unchanged := existing.ContentHash == hash
	_, err = existing.Update().
		SetContentHash(hash).
		SetLastCrawledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update page fingerprint: %w", err)
	}
	return unchanged, nil
}

// downloadAssets fetches every same-origin asset into the output tree.
func (e *Engine) downloadAssets(ctx context.Context, bc *buildCtx, inv *Inventory) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.AssetConcurrency)

	for rel, ref := range inv.Assets {
		g.Go(func() error {
			dest := filepath.Join(bc.ws.Output, rel)
			if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				return fmt.Errorf("failed to create asset dir: %w", err)
			}
			if err := e.fetchToFile(gctx, ref.URL, dest); err != nil {
				e.log(gctx, bc, "warn", PhaseCrawl, fmt.Sprintf("asset %s: %v", ref.URL, err))
			}
			return nil
		})
	}
	return g.Wait()
}

// fetchToFile downloads a URL to a local path.
func (e *Engine) fetchToFile(ctx context.Context, srcURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return err
	}
	resp, err := e.fetcher.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch returned %d", resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return err
	}
	return nil
}

// isPageURL filters out feed, admin and asset URLs from discovery.
func isPageURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	p := parsed.Path
	for _, skip := range []string{"/wp-admin", "/wp-login", "/feed", "/xmlrpc.php", "/wp-json"} {
		if strings.HasPrefix(p, skip) || strings.HasSuffix(p, skip) {
			return false
		}
	}
	if ext := strings.ToLower(filepath.Ext(p)); ext != "" && ext != ".html" && ext != ".htm" && ext != ".php" {
		return false
	}
	return true
}

func sameHost(raw, host string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Host == "" || parsed.Host == host
}

func originOf(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}
	return parsed.Scheme + "://" + parsed.Host
}

func canonicalURL(u *url.URL) string {
	clean := *u
	clean.Fragment = ""
	clean.RawQuery = ""
	return clean.String()
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
