// Package transform holds the asset transformation adapters used by
// the pipeline's optimization phases: image transcoding, CSS purging
// and minification, and JS minification.
package transform

import "context"

// TranscodeOptions controls one image transcode.
type TranscodeOptions struct {
	// Format is the output format: webp, jpeg, png.
	Format string
	// Quality 1-100 for lossy formats.
	Quality int
	// MaxWidth scales the image down when it is wider; zero keeps the
	// original dimensions.
	MaxWidth int
}

// ImageTranscoder converts bitmap images between formats and quality
// tiers.
type ImageTranscoder interface {
	Transcode(ctx context.Context, data []byte, opts TranscodeOptions) ([]byte, error)
}

// CSSProcessor tree-shakes and minifies stylesheets.
type CSSProcessor interface {
	// Purge removes rules whose selectors match nothing in any of the
	// HTML documents, keeping safelisted selectors unconditionally.
	Purge(css string, htmlDocs []string, safelist []string) (string, error)
	// Minify compacts the stylesheet.
	Minify(css string) (string, error)
}

// JSMinifier compacts scripts.
type JSMinifier interface {
	Minify(js string) (string, error)
}
