package verify

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/metrics-lab/staticpress/pkg/browser"
)

// channelTolerance ignores sub-perceptual per-channel differences
// introduced by re-encoding.
const channelTolerance = 12

// runVisual screenshots every page of the deployed copy and diffs it
// against the crawl baselines, per viewport.
func (s *Suite) runVisual(ctx context.Context, in *Input) ([]VisualResult, error) {
	var (
		results []VisualResult
		g, gctx = errgroup.WithContext(ctx)
	)
	resultCh := make(chan VisualResult, len(in.Pages)*len(browser.Viewports))

	g.SetLimit(s.concurrency)
	for _, p := range in.Pages {
		for _, viewport := range browser.Viewports {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				res := s.diffPage(gctx, in, p, viewport)
				resultCh <- res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(resultCh)
	for res := range resultCh {
		results = append(results, res)
	}
	return results, nil
}

// diffPage compares the baseline screenshot with a fresh capture of
// the deployed page. Missing baselines and capture errors report as
// needs-review rather than failing the suite.
func (s *Suite) diffPage(ctx context.Context, in *Input, pagePath, viewport string) VisualResult {
	res := VisualResult{Path: pagePath, Viewport: viewport}

	baselineFile := in.Workspace.ScreenshotFile(pagePath, viewport)
	baseline, err := os.ReadFile(baselineFile)
	if err != nil {
		res.Verdict = VerdictNeedsReview
		res.Error = fmt.Sprintf("no baseline: %v", err)
		return res
	}

	edgePage := strings.TrimSuffix(in.EdgeURL, "/") + pagePath
	shot, err := s.renderer.Screenshot(ctx, edgePage, viewport)
	if err != nil {
		res.Verdict = VerdictNeedsReview
		res.Error = fmt.Sprintf("capture failed: %v", err)
		return res
	}

	diff, err := DiffPNGs(baseline, shot.PNG)
	if err != nil {
		res.Verdict = VerdictNeedsReview
		res.Error = err.Error()
		return res
	}
	res.DiffPercent = diff * 100
	res.Verdict = verdictFor(diff)
	return res
}

// DiffPNGs returns the fraction of pixels that differ between two PNG
// images. Size mismatches count the uncovered area as fully different.
func DiffPNGs(a, b []byte) (float64, error) {
	imgA, err := png.Decode(bytes.NewReader(a))
	if err != nil {
		return 0, fmt.Errorf("failed to decode baseline: %w", err)
	}
	imgB, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return 0, fmt.Errorf("failed to decode capture: %w", err)
	}

	ba, bb := imgA.Bounds(), imgB.Bounds()
	width := min(ba.Dx(), bb.Dx())
	height := min(ba.Dy(), bb.Dy())
	if width == 0 || height == 0 {
		return 1, nil
	}

	totalW := max(ba.Dx(), bb.Dx())
	totalH := max(ba.Dy(), bb.Dy())
	total := totalW * totalH

	differing := total - width*height // area only one image covers
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !pixelsClose(imgA, imgB, ba.Min.X+x, ba.Min.Y+y, bb.Min.X+x, bb.Min.Y+y) {
				differing++
			}
		}
	}
	return float64(differing) / float64(total), nil
}

func pixelsClose(a, b image.Image, ax, ay, bx, by int) bool {
	ar, ag, ab2, _ := a.At(ax, ay).RGBA()
	br, bg, bb2, _ := b.At(bx, by).RGBA()
	return channelClose(ar, br) && channelClose(ag, bg) && channelClose(ab2, bb2)
}

func channelClose(a, b uint32) bool {
	// RGBA() returns 16-bit channels; compare in 8-bit space.
	d := int(a>>8) - int(b>>8)
	if d < 0 {
		d = -d
	}
	return d <= channelTolerance
}
