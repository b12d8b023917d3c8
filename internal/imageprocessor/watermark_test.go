package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestWatermarker_Apply(t *testing.T) {
	overlay := encodePNG(t, solidImage(40, 40, color.RGBA{R: 255, A: 255}))
	wm, err := NewWatermarker(overlay)
	require.NoError(t, err)

	base := encodePNG(t, solidImage(200, 100, color.RGBA{B: 255, A: 255}))
	out, err := wm.Apply(base)
	require.NoError(t, err)

	result, err := png.Decode(out)
	require.NoError(t, err)

	// Размеры базового изображения сохраняются
	assert.Equal(t, 200, result.Bounds().Dx())
	assert.Equal(t, 100, result.Bounds().Dy())

	// Правый нижний угол закрашен водяным знаком (красный поверх синего)
	r, _, b, _ := result.At(199, 99).RGBA()
	assert.Greater(t, r, b, "bottom-right corner should carry the overlay")

	// Левый верхний угол не тронут
	r, _, b, _ = result.At(0, 0).RGBA()
	assert.Greater(t, b, r, "top-left corner should stay untouched")
}

func TestWatermarker_RejectsGarbage(t *testing.T) {
	overlay := encodePNG(t, solidImage(10, 10, color.White))
	wm, err := NewWatermarker(overlay)
	require.NoError(t, err)

	_, err = wm.Apply(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestWatermarker_RejectsTooSmall(t *testing.T) {
	overlay := encodePNG(t, solidImage(10, 10, color.White))
	wm, err := NewWatermarker(overlay)
	require.NoError(t, err)

	_, err = wm.Apply(encodePNG(t, solidImage(2, 2, color.White)))
	assert.Error(t, err)
}

func TestNewWatermarker_InvalidOverlay(t *testing.T) {
	_, err := NewWatermarker(strings.NewReader("garbage"))
	assert.Error(t, err)
}
