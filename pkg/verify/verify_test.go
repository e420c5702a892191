package verify

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrics-lab/staticpress/pkg/browser"
)

func solidPNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDiffPNGsIdentical(t *testing.T) {
	a := solidPNG(t, 50, 50, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	diff, err := DiffPNGs(a, a)
	require.NoError(t, err)
	assert.Zero(t, diff)
}

func TestDiffPNGsToleratesEncodingNoise(t *testing.T) {
	a := solidPNG(t, 50, 50, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	b := solidPNG(t, 50, 50, color.RGBA{R: 105, G: 98, B: 103, A: 255})
	diff, err := DiffPNGs(a, b)
	require.NoError(t, err)
	assert.Zero(t, diff)
}

func TestDiffPNGsFullyDifferent(t *testing.T) {
	a := solidPNG(t, 50, 50, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	b := solidPNG(t, 50, 50, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	diff, err := DiffPNGs(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, diff)
}

func TestDiffPNGsPartial(t *testing.T) {
	a := solidPNG(t, 10, 10, color.RGBA{R: 0, G: 0, B: 0, A: 255})

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			if y < 5 {
				img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.Set(x, y, color.RGBA{A: 255})
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	diff, err := DiffPNGs(a, buf.Bytes())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, diff, 0.01)
}

func TestDiffPNGsSizeMismatchCountsUncoveredArea(t *testing.T) {
	a := solidPNG(t, 10, 10, color.RGBA{R: 9, G: 9, B: 9, A: 255})
	b := solidPNG(t, 10, 20, color.RGBA{R: 9, G: 9, B: 9, A: 255})
	diff, err := DiffPNGs(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, diff, 0.01)
}

func TestDiffPNGsRejectsGarbage(t *testing.T) {
	_, err := DiffPNGs([]byte("nope"), solidPNG(t, 4, 4, color.RGBA{A: 255}))
	assert.Error(t, err)
}

func TestVerdictFor(t *testing.T) {
	assert.Equal(t, VerdictIdentical, verdictFor(0))
	assert.Equal(t, VerdictIdentical, verdictFor(0.0009))
	assert.Equal(t, VerdictAcceptable, verdictFor(0.001))
	assert.Equal(t, VerdictAcceptable, verdictFor(0.019))
	assert.Equal(t, VerdictNeedsReview, verdictFor(0.02))
	assert.Equal(t, VerdictNeedsReview, verdictFor(0.099))
	assert.Equal(t, VerdictFailed, verdictFor(0.10))
	assert.Equal(t, VerdictFailed, verdictFor(0.9))
}

func TestAggregateWorstVisualWins(t *testing.T) {
	r := &SuiteResult{Visual: []VisualResult{
		{Verdict: VerdictIdentical},
		{Verdict: VerdictNeedsReview},
		{Verdict: VerdictAcceptable},
	}}
	assert.Equal(t, VerdictNeedsReview, aggregate(r))
}

func TestAggregateFunctionalFailureIsFatal(t *testing.T) {
	r := &SuiteResult{
		Visual:     []VisualResult{{Verdict: VerdictIdentical}},
		Functional: []FunctionalResult{{Passed: true}, {Passed: false}},
	}
	assert.Equal(t, VerdictFailed, aggregate(r))
}

func TestAggregateBrokenLinksDemoteToNeedsReview(t *testing.T) {
	r := &SuiteResult{
		Visual: []VisualResult{{Verdict: VerdictAcceptable}},
		Links:  []LinkResult{{Href: "/gone"}},
	}
	assert.Equal(t, VerdictNeedsReview, aggregate(r))
}

func TestAggregatePerformanceRegression(t *testing.T) {
	r := &SuiteResult{
		Visual:      []VisualResult{{Verdict: VerdictIdentical}},
		Performance: []PerformanceResult{{Regressed: true}},
	}
	assert.Equal(t, VerdictNeedsReview, aggregate(r))
}

func TestAggregateCleanRun(t *testing.T) {
	r := &SuiteResult{
		Visual:      []VisualResult{{Verdict: VerdictIdentical}},
		Functional:  []FunctionalResult{{Passed: true}},
		Performance: []PerformanceResult{{Regressed: false}},
	}
	assert.Equal(t, VerdictIdentical, aggregate(r))
}

func TestOutputHasPath(t *testing.T) {
	output := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(output, "about"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(output, "index.html"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(output, "about", "index.html"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(output, "style.css"), []byte("x"), 0o644))

	assert.True(t, outputHasPath(output, "/"))
	assert.True(t, outputHasPath(output, "/about/"))
	assert.True(t, outputHasPath(output, "/about"))
	assert.True(t, outputHasPath(output, "/style.css"))
	assert.False(t, outputHasPath(output, "/missing/"))
}

func TestStepsFor(t *testing.T) {
	accordion := stepsFor(browser.InteractiveElement{Kind: "accordion", Selector: ".acc"})
	require.Len(t, accordion, 1)
	assert.Equal(t, "click", accordion[0].Action)

	form := stepsFor(browser.InteractiveElement{Kind: "form", Selector: "#contact"})
	require.Len(t, form, 2)
	assert.Equal(t, "type", form[1].Action)
}
