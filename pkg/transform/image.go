package transform

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// CodecTranscoder implements ImageTranscoder with in-process codecs.
// Decoding supports jpeg, png, gif and webp; encoding supports jpeg
// and png. WebP output is produced by the renderer sidecar in
// deployments that want it; this transcoder reports it as unsupported
// so the phase falls back to the legacy format.
type CodecTranscoder struct{}

// NewCodecTranscoder creates the in-process transcoder.
func NewCodecTranscoder() *CodecTranscoder {
	return &CodecTranscoder{}
}

// Transcode decodes, optionally scales down, and re-encodes an image.
// Errors are intrinsic to the input bytes (never transient): callers
// log them and pass the original through.
func (t *CodecTranscoder) Transcode(ctx context.Context, data []byte, opts TranscodeOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, sourceFormat, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if opts.MaxWidth > 0 && img.Bounds().Dx() > opts.MaxWidth {
		img = scaleToWidth(img, opts.MaxWidth)
	}

	var buf bytes.Buffer
	switch opts.Format {
	case "jpeg", "jpg":
		quality := opts.Quality
		if quality <= 0 || quality > 100 {
			quality = 75
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode jpeg: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode png: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported output format %q (source was %s)", opts.Format, sourceFormat)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (image.Image, string, error) {
	// webp is not registered with image.Decode; try it explicitly
	// before the generic path.
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, "webp", nil
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	return img, format, nil
}

func scaleToWidth(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	height := bounds.Dy() * width / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
