package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	fontFaceBlock = regexp.MustCompile(`@font-face\s*\{[^}]*\}`)
	cssURLRef     = regexp.MustCompile(`url\(\s*['"]?([^'")]+)['"]?\s*\)`)
	fontExts      = map[string]bool{".woff2": true, ".woff": true, ".ttf": true, ".otf": true, ".eot": true}
)

// maxFontPreloads bounds the preload hints injected per page.
const maxFontPreloads = 3

// runFonts self-hosts external webfonts under /fonts/, injects
// font-display into every @font-face, and preloads the primary woff2
// files.
func (e *Engine) runFonts(ctx context.Context, bc *buildCtx) error {
	selfHost := boolSetting(bc.settings, "fonts", "selfHost", true)
	display := stringSetting(bc.settings, "fonts", "fontDisplay", "swap")
	if display != "swap" && display != "optional" {
		display = "swap"
	}

	hosted := map[string]string{}
	if selfHost {
		if err := os.MkdirAll(filepath.Join(bc.ws.Output, "fonts"), 0o755); err != nil {
			return fmt.Errorf("failed to create fonts dir: %w", err)
		}
		if err := e.selfHostGoogleFonts(ctx, bc, display, hosted); err != nil {
			return err
		}
	}

	if err := e.rewriteStylesheetFonts(ctx, bc, selfHost, display, hosted); err != nil {
		return err
	}

	if boolSetting(bc.settings, "fonts", "preload", true) {
		if err := e.injectFontPreloads(bc, hosted); err != nil {
			return err
		}
	}

	bc.inv.FontFiles = hosted
	if err := bc.inv.Save(bc.ws.InventoryPath()); err != nil {
		return err
	}
	e.log(ctx, bc, "info", PhaseFonts, fmt.Sprintf("self-hosted %d font files", len(hosted)))
	return nil
}

// selfHostGoogleFonts replaces Google Fonts stylesheet links in every
// page with a locally hosted copy whose font files live under /fonts/.
func (e *Engine) selfHostGoogleFonts(ctx context.Context, bc *buildCtx, display string, hosted map[string]string) error {
	for _, p := range bc.inv.Pages {
		path := bc.ws.PageFile(p.Path)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read page %s: %w", p.Path, err)
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
		if err != nil {
			continue
		}

		changed := false
		doc.Find(`link[rel="stylesheet"][href]`).Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr("href")
			if !strings.Contains(href, "fonts.googleapis.com") {
				return
			}
			localCSS, err := e.localizeFontStylesheet(ctx, bc, href, display, hosted)
			if err != nil {
				e.log(ctx, bc, "warn", PhaseFonts, fmt.Sprintf("keeping remote fonts %s: %v", href, err))
				return
			}
			sel.SetAttr("href", localCSS)
			sel.RemoveAttr("media")
			sel.RemoveAttr("onload")
			changed = true
		})
		// Provider preconnects are pointless once fonts are local.
		if changed {
			doc.Find(`link[href*="fonts.googleapis.com"][rel="preconnect"]`).Remove()
			doc.Find(`link[href*="fonts.gstatic.com"]`).Remove()
			out, err := doc.Html()
			if err != nil {
				continue
			}
			if err := writeAtomic(path, []byte(out)); err != nil {
				return err
			}
		}
	}
	return nil
}

// localizeFontStylesheet downloads a provider stylesheet and its font
// files, rewriting every url() to the self-hosted copy.
func (e *Engine) localizeFontStylesheet(ctx context.Context, bc *buildCtx, href, display string, hosted map[string]string) (string, error) {
	css, err := e.fetchString(ctx, href)
	if err != nil {
		return "", err
	}

	rewritten := cssURLRef.ReplaceAllStringFunc(css, func(match string) string {
		m := cssURLRef.FindStringSubmatch(match)
		if len(m) < 2 {
			return match
		}
		local, err := e.hostFontFile(ctx, bc, m[1], hosted)
		if err != nil {
			return match
		}
		return fmt.Sprintf("url(%s)", local)
	})
	rewritten = injectFontDisplay(rewritten, display)

	sum := sha256.Sum256([]byte(href))
	name := "fonts/" + hex.EncodeToString(sum[:8]) + ".css"
	if err := writeAtomic(filepath.Join(bc.ws.Output, filepath.FromSlash(name)), []byte(rewritten)); err != nil {
		return "", err
	}
	return "/" + name, nil
}

// hostFontFile downloads one font file into /fonts/ exactly once.
func (e *Engine) hostFontFile(ctx context.Context, bc *buildCtx, fontURL string, hosted map[string]string) (string, error) {
	if local, ok := hosted[fontURL]; ok {
		return local, nil
	}
	ext := strings.ToLower(filepath.Ext(strippedPath(fontURL)))
	if !fontExts[ext] {
		return "", fmt.Errorf("not a font file: %s", fontURL)
	}

	sum := sha256.Sum256([]byte(fontURL))
	name := hex.EncodeToString(sum[:8]) + ext
	local := "/fonts/" + name
	dest := filepath.Join(bc.ws.Output, "fonts", name)
	if err := e.fetchToFile(ctx, fontURL, dest); err != nil {
		return "", err
	}
	hosted[fontURL] = local
	return local, nil
}

// rewriteStylesheetFonts walks every same-origin stylesheet: external
// font url()s get self-hosted, and @font-face blocks get the
// configured font-display.
func (e *Engine) rewriteStylesheetFonts(ctx context.Context, bc *buildCtx, selfHost bool, display string, hosted map[string]string) error {
	for rel := range bc.inv.AssetsByClass("css") {
		path := filepath.Join(bc.ws.Output, rel)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		css := string(data)

		if selfHost {
			css = cssURLRef.ReplaceAllStringFunc(css, func(match string) string {
				m := cssURLRef.FindStringSubmatch(match)
				if len(m) < 2 || !strings.HasPrefix(m[1], "http") {
					return match
				}
				local, err := e.hostFontFile(ctx, bc, m[1], hosted)
				if err != nil {
					return match
				}
				return fmt.Sprintf("url(%s)", local)
			})
		}
		css = injectFontDisplay(css, display)

		if css != string(data) {
			if err := writeAtomic(path, []byte(css)); err != nil {
				return err
			}
		}
	}
	return nil
}

// injectFontDisplay adds font-display to @font-face blocks that lack
// one.
func injectFontDisplay(css, display string) string {
	return fontFaceBlock.ReplaceAllStringFunc(css, func(block string) string {
		if strings.Contains(block, "font-display") {
			return block
		}
		return strings.TrimSuffix(block, "}") + ";font-display:" + display + "}"
	})
}

// injectFontPreloads adds preload hints for the first few self-hosted
// woff2 files to every page.
func (e *Engine) injectFontPreloads(bc *buildCtx, hosted map[string]string) error {
	var preloads []string
	for _, local := range hosted {
		if strings.HasSuffix(local, ".woff2") {
			preloads = append(preloads, local)
		}
		if len(preloads) >= maxFontPreloads {
			break
		}
	}
	if len(preloads) == 0 {
		return nil
	}

	var hints strings.Builder
	for _, local := range preloads {
		hints.WriteString(fmt.Sprintf(`<link rel="preload" as="font" type="font/woff2" href=%q crossorigin>`, local))
	}

	for _, p := range bc.inv.Pages {
		path := bc.ws.PageFile(p.Path)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		html := string(data)
		if idx := strings.Index(html, "<head>"); idx >= 0 {
			html = html[:idx+len("<head>")] + hints.String() + html[idx+len("<head>"):]
			if err := writeAtomic(path, []byte(html)); err != nil {
				return err
			}
		}
	}
	return nil
}

// fetchString downloads a URL body as text.
func (e *Engine) fetchString(ctx context.Context, srcURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return "", err
	}
	// Providers vary the stylesheet by UA; ask for the modern variant.
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 Chrome/120 Safari/537.36")
	resp, err := e.fetcher.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func strippedPath(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		return raw[:i]
	}
	return raw
}
