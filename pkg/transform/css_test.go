package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const purgeSampleHTML = `<!DOCTYPE html>
<html>
<head><title>t</title></head>
<body>
  <div class="hero hero--wide">
    <h1 id="headline">Hi</h1>
    <p class="lead">text</p>
  </div>
</body>
</html>`

func TestPurgeKeepsUsedSelectors(t *testing.T) {
	css := `.hero{color:red}.lead{font-size:1rem}#headline{margin:0}p{line-height:1.5}`

	out, err := NewCSSProcessor().Purge(css, []string{purgeSampleHTML}, nil)
	require.NoError(t, err)

	assert.Contains(t, out, ".hero{")
	assert.Contains(t, out, ".lead{")
	assert.Contains(t, out, "#headline{")
	assert.Contains(t, out, "p{line-height")
}

func TestPurgeDropsUnusedSelectors(t *testing.T) {
	css := `.unused-widget{color:blue}.hero{color:red}#never-there{display:none}`

	out, err := NewCSSProcessor().Purge(css, []string{purgeSampleHTML}, nil)
	require.NoError(t, err)

	assert.NotContains(t, out, ".unused-widget")
	assert.NotContains(t, out, "#never-there")
	assert.Contains(t, out, ".hero")
}

func TestPurgeSafelistOverridesUsage(t *testing.T) {
	css := `.wp-block-gallery{display:grid}.elementor-widget{padding:0}.gone{color:red}`

	out, err := NewCSSProcessor().Purge(css, []string{purgeSampleHTML}, []string{"wp-block-", "elementor-"})
	require.NoError(t, err)

	assert.Contains(t, out, ".wp-block-gallery")
	assert.Contains(t, out, ".elementor-widget")
	assert.NotContains(t, out, ".gone")
}

func TestPurgeKeepsAtRulesIntact(t *testing.T) {
	css := `@media (min-width: 600px){.unused{color:red}}@font-face{font-family:"X";src:url(x.woff2)}@keyframes spin{from{transform:rotate(0)}to{transform:rotate(360deg)}}`

	out, err := NewCSSProcessor().Purge(css, []string{purgeSampleHTML}, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "@media (min-width: 600px)")
	assert.Contains(t, out, "@font-face")
	assert.Contains(t, out, "@keyframes spin")
}

func TestPurgeCommaSeparatedSelectorKeptOnAnyMatch(t *testing.T) {
	css := `.missing, .hero{color:red}.also-missing, .still-missing{color:blue}`

	out, err := NewCSSProcessor().Purge(css, []string{purgeSampleHTML}, nil)
	require.NoError(t, err)

	assert.Contains(t, out, ".missing, .hero{")
	assert.NotContains(t, out, ".also-missing")
}

func TestPurgeKeepsUniversalAndPseudoRoot(t *testing.T) {
	css := `*{box-sizing:border-box}:root{--x:1}`

	out, err := NewCSSProcessor().Purge(css, []string{purgeSampleHTML}, nil)
	require.NoError(t, err)

	assert.Contains(t, out, "*{box-sizing")
	assert.Contains(t, out, ":root{")
}

func TestMinifyCSS(t *testing.T) {
	out, err := NewCSSProcessor().Minify(`.a {
  color: #ff0000;
}`)
	require.NoError(t, err)
	assert.Equal(t, ".a{color:red}", out)
}

func TestMinifyJS(t *testing.T) {
	out, err := NewJSMinifier().Minify(`var answer = 40 + 2;
console.log( answer );`)
	require.NoError(t, err)
	assert.NotContains(t, out, "\n")
	assert.True(t, len(out) < len("var answer = 40 + 2;\nconsole.log( answer );"))
}

func TestSplitRulesNestedBraces(t *testing.T) {
	rules := splitRules(`@media print{.a{color:red}.b{color:blue}}.c{color:green}`)
	require.Len(t, rules, 2)
	assert.True(t, rules[0].atRule)
	assert.Equal(t, ".c", rules[1].selector)
}

func TestPurgeEmptyDocumentsDropsEverythingUnsafe(t *testing.T) {
	out, err := NewCSSProcessor().Purge(`.a{color:red}`, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", strings.TrimSpace(out))
}
