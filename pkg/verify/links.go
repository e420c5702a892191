package verify

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

// runLinks checks every link in the artifact tree. Internal links must
// resolve to a file in the output; external links get a HEAD request
// and only hard failures count — timeouts are tolerated since slow
// third parties are not our breakage.
func (s *Suite) runLinks(ctx context.Context, in *Input) ([]LinkResult, error) {
	internal, external, err := collectLinks(in)
	if err != nil {
		return nil, err
	}

	var broken []LinkResult
	for page, hrefs := range internal {
		for _, href := range hrefs {
			if !outputHasPath(in.Workspace.Output, href) {
				broken = append(broken, LinkResult{Page: page, Href: href, Error: "no matching file in output"})
			}
		}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for page, hrefs := range external {
		for _, href := range hrefs {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if res := s.checkExternal(gctx, page, href); res != nil {
					mu.Lock()
					broken = append(broken, *res)
					mu.Unlock()
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return broken, nil
}

// collectLinks parses every page and buckets hrefs into internal and
// external, deduplicated per page.
func collectLinks(in *Input) (internal, external map[string][]string, err error) {
	internal = map[string][]string{}
	external = map[string][]string{}

	sourceHost := ""
	if parsed, err := url.Parse(in.SourceURL); err == nil {
		sourceHost = parsed.Host
	}

	for _, pagePath := range in.Pages {
		data, err := os.ReadFile(in.Workspace.PageFile(pagePath))
		if err != nil {
			continue
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
		if err != nil {
			continue
		}

		seen := map[string]bool{}
		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr("href")
			href = strings.TrimSpace(href)
			if href == "" || seen[href] ||
				strings.HasPrefix(href, "#") ||
				strings.HasPrefix(href, "mailto:") ||
				strings.HasPrefix(href, "tel:") ||
				strings.HasPrefix(href, "javascript:") {
				return
			}
			seen[href] = true

			parsed, err := url.Parse(href)
			if err != nil {
				return
			}
			switch {
			case parsed.Host == "":
				internal[pagePath] = append(internal[pagePath], parsed.Path)
			case parsed.Host == sourceHost:
				// Origin-absolute links become internal after deploy.
				internal[pagePath] = append(internal[pagePath], parsed.Path)
			default:
				external[pagePath] = append(external[pagePath], href)
			}
		})
	}
	return internal, external, nil
}

// outputHasPath reports whether a URL path resolves to a file in the
// artifact tree.
func outputHasPath(output, urlPath string) bool {
	if urlPath == "" || urlPath == "/" {
		urlPath = "/"
	}
	rel := strings.TrimPrefix(urlPath, "/")
	candidates := []string{
		filepath.Join(output, filepath.FromSlash(rel)),
		filepath.Join(output, filepath.FromSlash(rel), "index.html"),
	}
	if rel == "" {
		candidates = []string{filepath.Join(output, "index.html")}
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// checkExternal HEADs one external link; returns nil when fine or
// tolerably slow.
func (s *Suite) checkExternal(ctx context.Context, page, href string) *LinkResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, href, nil)
	if err != nil {
		return &LinkResult{Page: page, Href: href, Error: err.Error()}
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		// Timeouts and connection refusals on third parties are noise.
		return nil
	}
	defer resp.Body.Close()

	// Some servers reject HEAD; retry those with GET before reporting.
	if resp.StatusCode == http.StatusMethodNotAllowed {
		req.Method = http.MethodGet
		getResp, err := s.httpClient.Do(req)
		if err != nil {
			return nil
		}
		defer getResp.Body.Close()
		resp = getResp
	}

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusForbidden {
		return &LinkResult{Page: page, Href: href, Status: resp.StatusCode}
	}
	return nil
}
