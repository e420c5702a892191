package transform

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTranscodePNGToJPEG(t *testing.T) {
	out, err := NewCodecTranscoder().Transcode(context.Background(), samplePNG(t, 64, 48), TranscodeOptions{
		Format:  "jpeg",
		Quality: 70,
	})
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestTranscodeScalesDownWideImages(t *testing.T) {
	out, err := NewCodecTranscoder().Transcode(context.Background(), samplePNG(t, 800, 400), TranscodeOptions{
		Format:   "png",
		MaxWidth: 200,
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestTranscodeNeverUpscales(t *testing.T) {
	out, err := NewCodecTranscoder().Transcode(context.Background(), samplePNG(t, 100, 100), TranscodeOptions{
		Format:   "png",
		MaxWidth: 500,
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
}

func TestTranscodeRejectsGarbage(t *testing.T) {
	_, err := NewCodecTranscoder().Transcode(context.Background(), []byte("not an image"), TranscodeOptions{Format: "jpeg"})
	assert.Error(t, err)
}

func TestTranscodeUnsupportedOutputFormat(t *testing.T) {
	_, err := NewCodecTranscoder().Transcode(context.Background(), samplePNG(t, 10, 10), TranscodeOptions{Format: "webp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
