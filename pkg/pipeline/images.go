package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/metrics-lab/staticpress/pkg/transform"
)

// Variant widths per tier. LCP candidates get the full ladder; other
// images get standard and thumbnail renditions for srcset.
var (
	lcpWidths      = []int{1920, 1280, 640}
	standardWidths = []int{1280, 640}
	thumbnailWidth = 400
)

// runImages generates renditions for every crawled image. Individual
// failures keep the original in place; only infrastructure errors fail
// the phase.
func (e *Engine) runImages(ctx context.Context, bc *buildCtx) error {
	if !boolSetting(bc.settings, "images", "enabled", true) {
		e.log(ctx, bc, "info", PhaseImages, "image optimization disabled")
		return nil
	}

	images := bc.inv.AssetsByClass("image")
	e.log(ctx, bc, "info", PhaseImages, fmt.Sprintf("processing %d images", len(images)))

	var mu sync.Mutex
	variants := map[string][]ImageVariant{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.AssetConcurrency)
	for rel, ref := range images {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			produced, err := e.transcodeImage(gctx, bc, rel, ref.URL, ref.LCPCandidate)
			if err != nil {
				// Pass the original through untouched.
				e.log(gctx, bc, "warn", PhaseImages, fmt.Sprintf("keeping original %s: %v", rel, err))
				return nil
			}
			if len(produced) > 0 {
				mu.Lock()
				variants[rel] = produced
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Byte accounting: each image counts its source size against the
	// smallest rendition a browser would actually fetch.
	for rel, ref := range images {
		before := ref.Bytes
		if before == 0 {
			if info, err := os.Stat(filepath.Join(bc.ws.Output, rel)); err == nil {
				before = info.Size()
			}
		}
		after := before
		for _, v := range variants[rel] {
			if v.Bytes < after {
				after = v.Bytes
			}
		}
		bc.stats.add("images", before, after)
	}

	bc.inv.ImageVariants = variants
	return bc.inv.Save(bc.ws.InventoryPath())
}

// transcodeImage produces the rendition ladder for one source image.
func (e *Engine) transcodeImage(ctx context.Context, bc *buildCtx, rel, srcURL string, lcp bool) ([]ImageVariant, error) {
	src := filepath.Join(bc.ws.Output, rel)
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	// Per-asset overrides can change format and quality for this URL.
	resolved, err := e.resolver.ResolveForAsset(ctx, bc.site.ID, urlPathOf(srcURL))
	if err != nil {
		return nil, err
	}

	threshold := int64(intSetting(resolved, "images", "minBytes", int(e.cfg.ImageByteThreshold)))
	if int64(len(data)) <= threshold {
		return nil, nil
	}

	format := normalizeImageFormat(stringSetting(resolved, "images", "modernFormat", "webp"), rel)
	quality := intSetting(resolved, "images", "qualityStandard", 75)
	widths := standardWidths
	if lcp {
		quality = intSetting(resolved, "images", "qualityLCP", 85)
		widths = lcpWidths
	}

	var produced []ImageVariant
	for _, width := range widths {
		v, err := e.writeVariant(ctx, src, rel, data, format, quality, width)
		if err != nil {
			return nil, err
		}
		if v != nil {
			produced = append(produced, *v)
		}
	}

	thumbQuality := intSetting(resolved, "images", "qualityThumbnail", 60)
	if v, err := e.writeVariant(ctx, src, rel, data, format, thumbQuality, thumbnailWidth); err != nil {
		return nil, err
	} else if v != nil {
		produced = append(produced, *v)
	}
	return produced, nil
}

// writeVariant encodes one rendition next to the source file, named
// {base}-{width}w.{ext}.
func (e *Engine) writeVariant(ctx context.Context, src, rel string, data []byte, format string, quality, width int) (*ImageVariant, error) {
	out, err := e.transcoder.Transcode(ctx, data, transform.TranscodeOptions{
		Format:   format,
		Quality:  quality,
		MaxWidth: width,
	})
	if err != nil {
		return nil, err
	}
	// Skip renditions that came out larger than the source.
	if len(out) >= len(data) {
		return nil, nil
	}

	variantRel := variantPath(rel, width, format)
	dest := filepath.Join(filepath.Dir(src), filepath.Base(variantRel))
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write variant: %w", err)
	}
	return &ImageVariant{RelPath: variantRel, Width: width, Format: format, Bytes: int64(len(out))}, nil
}

// normalizeImageFormat maps the configured modern format onto what the
// in-process codecs can encode. WebP encoding needs the renderer
// sidecar, so it degrades to jpeg (or png for transparency-bearing
// sources).
func normalizeImageFormat(configured, rel string) string {
	switch configured {
	case "jpeg", "jpg", "png":
		return configured
	}
	if strings.HasSuffix(strings.ToLower(rel), ".png") {
		return "png"
	}
	return "jpeg"
}

func variantPath(rel string, width int, format string) string {
	ext := filepath.Ext(rel)
	base := strings.TrimSuffix(rel, ext)
	return fmt.Sprintf("%s-%dw.%s", base, width, formatExt(format))
}

func formatExt(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}

func urlPathOf(raw string) string {
	if i := strings.Index(raw, "://"); i >= 0 {
		rest := raw[i+3:]
		if j := strings.Index(rest, "/"); j >= 0 {
			return rest[j:]
		}
		return "/"
	}
	return raw
}
