package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

// inlineStyleBudget caps how much processed CSS gets inlined into a
// page before falling back to deferred loading.
const inlineStyleBudget = 14 * 1024

// Embed providers whose iframes get replaced with click-to-load
// facades.
var facadeProviders = []string{
	"youtube.com", "youtube-nocookie.com", "youtu.be",
	"vimeo.com",
	"wistia.com", "wistia.net",
	"crisp.chat", "intercom.io", "tawk.to",
}

// runHTML rewrites every page: strips WordPress metadata, removes
// bloat scripts, defers the rest, rewrites image markup with the
// generated renditions, replaces heavy embeds with facades, injects
// resource hints, inlines or defers stylesheets, and minifies.
func (e *Engine) runHTML(ctx context.Context, bc *buildCtx) error {
	minifier := minify.New()
	minifier.Add("text/html", &minhtml.Minifier{KeepDocumentTags: true, KeepEndTags: true, KeepQuotes: true})

	var iframesReplaced, scriptsRemoved int
	for _, p := range bc.inv.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Partial fast path: unchanged pages reuse the previous build's
		// optimized HTML verbatim.
		if p.Unchanged && e.copyPreviousPage(bc, p.Path) {
			continue
		}

		path := bc.ws.PageFile(p.Path)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read page %s: %w", p.Path, err)
		}
		before := int64(len(data))

		rewritten, iframes, scripts, err := e.rewritePage(bc, &p, string(data))
		if err != nil {
			e.log(ctx, bc, "warn", PhaseHTML, fmt.Sprintf("keeping original %s: %v", p.Path, err))
			continue
		}
		iframesReplaced += iframes
		scriptsRemoved += scripts

		out := rewritten
		if minified, err := minifier.String("text/html", rewritten); err == nil {
			out = minified
		}
		if err := writeAtomic(path, []byte(out)); err != nil {
			return err
		}
		bc.stats.add("html", before, int64(len(out)))
	}

	_, err := e.client.Build.UpdateOneID(bc.build.ID).
		SetIframesReplaced(iframesReplaced).
		SetScriptsRemoved(scriptsRemoved).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record html phase counters: %w", err)
	}
	e.log(ctx, bc, "info", PhaseHTML,
		fmt.Sprintf("rewrote %d pages, replaced %d embeds, removed %d scripts", len(bc.inv.Pages), iframesReplaced, scriptsRemoved))
	return nil
}

// rewritePage applies every HTML transformation to one document.
func (e *Engine) rewritePage(bc *buildCtx, p *PageDoc, html string) (out string, iframes, scripts int, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to parse page: %w", err)
	}
	s := bc.settings

	if boolSetting(s, "html", "stripMetadata", true) {
		scripts += stripWordPressMetadata(doc)
	}
	scripts += removeBloatScripts(doc, s)
	if boolSetting(s, "js", "deferScripts", true) {
		deferScripts(doc)
	}
	if boolSetting(s, "html", "lazyLoadMedia", true) {
		lazyLoadMedia(doc, p)
	}
	rewriteImageSources(doc, bc.inv.ImageVariants)
	if boolSetting(s, "html", "embedFacades", true) {
		iframes = replaceEmbeds(doc)
	}
	if boolSetting(s, "html", "resourceHints", true) {
		injectResourceHints(doc, bc.inv, p)
	}
	if err := e.restyleStylesheets(doc, bc); err != nil {
		return "", 0, 0, err
	}

	out, err = doc.Html()
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to serialize page: %w", err)
	}
	return out, iframes, scripts, nil
}

// stripWordPressMetadata drops discovery tags a static site has no use
// for. Returns the number of emoji scripts removed.
func stripWordPressMetadata(doc *goquery.Document) int {
	doc.Find(`meta[name="generator"]`).Remove()
	doc.Find(`link[rel="EditURI"]`).Remove()
	doc.Find(`link[rel="wlwmanifest"]`).Remove()
	doc.Find(`link[rel="shortlink"]`).Remove()
	doc.Find(`link[rel="pingback"]`).Remove()
	doc.Find(`link[rel="https://api.w.org/"]`).Remove()

	removed := 0
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if strings.Contains(src, "wp-emoji") || strings.Contains(sel.Text(), "wp-emoji-settings") {
			sel.Remove()
			removed++
		}
	})
	return removed
}

// removeBloatScripts drops script and style references the settings
// mark as removable.
func removeBloatScripts(doc *goquery.Document, s map[string]any) int {
	removed := 0
	if boolSetting(s, "js", "removeBlockLibrary", true) {
		doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr("href")
			if strings.Contains(href, "wp-block-library") || strings.Contains(href, "classic-theme-styles") {
				sel.Remove()
			}
		})
	}
	if boolSetting(s, "js", "removeAnalytics", false) {
		doc.Find("script[src]").Each(func(_ int, sel *goquery.Selection) {
			src, _ := sel.Attr("src")
			for _, host := range []string{"googletagmanager.com", "google-analytics.com", "connect.facebook.net", "hotjar.com"} {
				if strings.Contains(src, host) {
					sel.Remove()
					removed++
					return
				}
			}
		})
	}
	return removed
}

// deferScripts marks external scripts defer unless they opt out via
// async or a data: module type.
func deferScripts(doc *goquery.Document) {
	doc.Find("script[src]").Each(func(_ int, sel *goquery.Selection) {
		if _, async := sel.Attr("async"); async {
			return
		}
		if t, _ := sel.Attr("type"); t == "module" || t == "application/ld+json" {
			return
		}
		sel.SetAttr("defer", "")
	})
}

// lazyLoadMedia adds loading=lazy to images and iframes, skipping the
// page's LCP candidates which must load eagerly.
func lazyLoadMedia(doc *goquery.Document, p *PageDoc) {
	lcp := map[string]bool{}
	for _, ref := range p.Assets {
		if ref.LCPCandidate {
			lcp[urlPathOf(ref.URL)] = true
		}
	}
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if lcp[urlPathOf(src)] {
			sel.SetAttr("fetchpriority", "high")
			return
		}
		sel.SetAttr("loading", "lazy")
		sel.SetAttr("decoding", "async")
	})
	doc.Find("iframe").Each(func(_ int, sel *goquery.Selection) {
		sel.SetAttr("loading", "lazy")
	})
}

// rewriteImageSources attaches srcset/sizes built from the generated
// renditions, keeping the original src as fallback.
func rewriteImageSources(doc *goquery.Document, variants map[string][]ImageVariant) {
	if len(variants) == 0 {
		return
	}
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		rel, err := AssetRelPath(src)
		if err != nil {
			return
		}
		ladder, ok := variants[rel]
		if !ok || len(ladder) == 0 {
			return
		}
		parts := make([]string, 0, len(ladder))
		for _, v := range ladder {
			parts = append(parts, fmt.Sprintf("/%s %dw", filepath.ToSlash(v.RelPath), v.Width))
		}
		sel.SetAttr("srcset", strings.Join(parts, ", "))
		sel.SetAttr("sizes", "(max-width: 640px) 100vw, 1280px")
	})
}

// replaceEmbeds swaps heavy third-party iframes for click-to-load
// facades. Returns the number of iframes replaced.
func replaceEmbeds(doc *goquery.Document) int {
	replaced := 0
	doc.Find("iframe[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if !isFacadeProvider(src) {
			return
		}
		facade := fmt.Sprintf(
			`<div class="sp-embed-facade" data-embed-src=%q role="button" tabindex="0" aria-label="Load embedded content">`+
				`<span class="sp-embed-play">▶</span></div>`, src)
		sel.ReplaceWithHtml(facade)
		replaced++
	})
	if replaced > 0 {
		doc.Find("body").AppendHtml(facadeLoaderScript)
	}
	return replaced
}

// facadeLoaderScript swaps a facade for its iframe on first
// interaction.
const facadeLoaderScript = `<script>document.addEventListener("click",function(e){var f=e.target.closest(".sp-embed-facade");if(!f)return;var i=document.createElement("iframe");i.src=f.dataset.embedSrc;i.allow="autoplay; encrypted-media";i.allowFullscreen=true;f.replaceWith(i)});</script>`

func isFacadeProvider(src string) bool {
	for _, provider := range facadeProviders {
		if strings.Contains(src, provider) {
			return true
		}
	}
	return false
}

// injectResourceHints adds preconnect/dns-prefetch for third-party
// origins and a preload for the page's LCP image.
func injectResourceHints(doc *goquery.Document, inv *Inventory, p *PageDoc) {
	head := doc.Find("head")
	if head.Length() == 0 {
		return
	}
	for _, origin := range inv.ThirdPartyOrigins {
		head.PrependHtml(fmt.Sprintf(`<link rel="preconnect" href=%q crossorigin><link rel="dns-prefetch" href=%q>`, origin, origin))
	}
	for _, ref := range p.Assets {
		if ref.LCPCandidate && ref.AssetClass == "image" {
			head.AppendHtml(fmt.Sprintf(`<link rel="preload" as="image" href=%q fetchpriority="high">`, urlPathOf(ref.URL)))
			break
		}
	}
}

// restyleStylesheets inlines small same-origin stylesheets and defers
// the rest with the media-swap pattern.
func (e *Engine) restyleStylesheets(doc *goquery.Document, bc *buildCtx) error {
	inline := boolSetting(bc.settings, "css", "criticalInline", true)
	deferred := boolSetting(bc.settings, "css", "deferNonCritical", true)
	if !inline && !deferred {
		return nil
	}

	budget := inlineStyleBudget
	var outerErr error
	doc.Find(`link[rel="stylesheet"][href]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		rel, err := AssetRelPath(href)
		if err != nil {
			return
		}
		if _, known := bc.inv.Assets[rel]; !known {
			// Third-party stylesheet: defer only.
			if deferred {
				deferStylesheet(sel, href)
			}
			return
		}

		if inline {
			data, err := os.ReadFile(filepath.Join(bc.ws.Output, rel))
			if err != nil {
				outerErr = fmt.Errorf("failed to read stylesheet %s: %w", rel, err)
				return
			}
			if len(data) <= budget {
				sel.ReplaceWithHtml("<style>" + string(data) + "</style>")
				budget -= len(data)
				return
			}
		}
		if deferred {
			deferStylesheet(sel, href)
		}
	})
	return outerErr
}

// deferStylesheet applies the print-media swap so the stylesheet loads
// without blocking render.
func deferStylesheet(sel *goquery.Selection, href string) {
	sel.SetAttr("media", "print")
	sel.SetAttr("onload", `this.media='all'`)
	sel.AfterHtml(fmt.Sprintf(`<noscript><link rel="stylesheet" href=%q></noscript>`, href))
}

// copyPreviousPage copies the optimized HTML for an unchanged page
// from the last successful build. Returns false when no prior artifact
// exists, in which case the page goes through the full rewrite.
func (e *Engine) copyPreviousPage(bc *buildCtx, urlPath string) bool {
	if bc.prevOutput == "" {
		return false
	}
	src := filepath.Join(bc.prevOutput, PageRelPath(urlPath))
	data, err := os.ReadFile(src)
	if err != nil {
		return false
	}
	dest := bc.ws.PageFile(urlPath)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false
	}
	return writeAtomic(dest, data) == nil
}
