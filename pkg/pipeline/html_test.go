package pipeline

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrics-lab/staticpress/pkg/browser"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func render(t *testing.T, doc *goquery.Document) string {
	t.Helper()
	out, err := doc.Html()
	require.NoError(t, err)
	return out
}

func TestStripWordPressMetadata(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<meta name="generator" content="WordPress 6.4">
		<link rel="EditURI" href="/xmlrpc.php?rsd">
		<link rel="shortlink" href="/?p=1">
		<link rel="pingback" href="/xmlrpc.php">
		<script src="/wp-includes/js/wp-emoji-release.min.js"></script>
	</head><body></body></html>`)

	removed := stripWordPressMetadata(doc)

	out := render(t, doc)
	assert.Equal(t, 1, removed)
	assert.NotContains(t, out, "generator")
	assert.NotContains(t, out, "EditURI")
	assert.NotContains(t, out, "shortlink")
	assert.NotContains(t, out, "pingback")
	assert.NotContains(t, out, "wp-emoji")
}

func TestDeferScripts(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<script src="/a.js"></script>
		<script src="/b.js" async></script>
		<script type="module" src="/c.js"></script>
		<script>inline()</script>
	</body></html>`)

	deferScripts(doc)

	assert.Equal(t, 1, doc.Find(`script[src="/a.js"][defer]`).Length())
	assert.Equal(t, 0, doc.Find(`script[src="/b.js"][defer]`).Length())
	assert.Equal(t, 0, doc.Find(`script[type="module"][defer]`).Length())
}

func TestReplaceEmbeds(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<iframe src="https://www.youtube.com/embed/abc123"></iframe>
		<iframe src="https://player.vimeo.com/video/9"></iframe>
		<iframe src="https://example.com/map"></iframe>
	</body></html>`)

	replaced := replaceEmbeds(doc)

	out := render(t, doc)
	assert.Equal(t, 2, replaced)
	assert.Equal(t, 2, doc.Find(".sp-embed-facade").Length())
	assert.Contains(t, out, "example.com/map") // non-provider iframe untouched
	assert.Contains(t, out, "sp-embed-facade")
}

func TestLazyLoadMediaSkipsLCP(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<img src="/hero.jpg">
		<img src="/footer.jpg">
	</body></html>`)
	p := &PageDoc{Assets: []browser.AssetRef{
		{URL: "/hero.jpg", AssetClass: "image", LCPCandidate: true},
	}}

	lazyLoadMedia(doc, p)

	hero := doc.Find(`img[src="/hero.jpg"]`)
	_, lazy := hero.Attr("loading")
	assert.False(t, lazy)
	priority, _ := hero.Attr("fetchpriority")
	assert.Equal(t, "high", priority)

	footer := doc.Find(`img[src="/footer.jpg"]`)
	loading, _ := footer.Attr("loading")
	assert.Equal(t, "lazy", loading)
}

func TestRewriteImageSources(t *testing.T) {
	doc := parseDoc(t, `<html><body><img src="/uploads/photo.jpg"></body></html>`)
	variants := map[string][]ImageVariant{
		"uploads/photo.jpg": {
			{RelPath: "uploads/photo-1280w.jpg", Width: 1280},
			{RelPath: "uploads/photo-640w.jpg", Width: 640},
		},
	}

	rewriteImageSources(doc, variants)

	srcset, ok := doc.Find("img").Attr("srcset")
	require.True(t, ok)
	assert.Contains(t, srcset, "/uploads/photo-1280w.jpg 1280w")
	assert.Contains(t, srcset, "/uploads/photo-640w.jpg 640w")
}

func TestInjectFontDisplay(t *testing.T) {
	css := `@font-face{font-family:"A";src:url(a.woff2)}@font-face{font-family:"B";src:url(b.woff2);font-display:optional}`
	out := injectFontDisplay(css, "swap")
	assert.Contains(t, out, `font-family:"A";src:url(a.woff2);font-display:swap`)
	assert.Contains(t, out, "font-display:optional") // existing value kept
	assert.Equal(t, 2, strings.Count(out, "font-display"))
}

func TestMinAggressiveness(t *testing.T) {
	assert.Equal(t, "safe", minAggressiveness("safe", "aggressive"))
	assert.Equal(t, "standard", minAggressiveness("aggressive", "standard"))
	assert.Equal(t, "aggressive", minAggressiveness("aggressive", "aggressive"))
}

func TestIsPageURL(t *testing.T) {
	assert.True(t, isPageURL("https://example.com/about/"))
	assert.True(t, isPageURL("https://example.com/post.html"))
	assert.False(t, isPageURL("https://example.com/wp-admin/options.php"))
	assert.False(t, isPageURL("https://example.com/feed"))
	assert.False(t, isPageURL("https://example.com/wp-json/wp/v2/posts"))
	assert.False(t, isPageURL("https://example.com/style.css"))
	assert.False(t, isPageURL("https://example.com/image.jpg"))
}

func TestVariantPath(t *testing.T) {
	assert.Equal(t, "uploads/photo-640w.jpg", variantPath("uploads/photo.png", 640, "jpeg"))
	assert.Equal(t, "uploads/photo-400w.png", variantPath("uploads/photo.png", 400, "png"))
}
