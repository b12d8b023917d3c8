package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Watermarker overlays a fixed translucent image onto uploaded avatars.
type Watermarker struct {
	overlay image.Image
}

// NewWatermarker decodes the watermark overlay once and reuses it for
// every processed avatar.
func NewWatermarker(overlayReader io.Reader) (*Watermarker, error) {
	overlay, err := imaging.Decode(overlayReader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode watermark image: %w", err)
	}

	return &Watermarker{overlay: overlay}, nil
}

// Apply decodes an avatar image, stamps the overlay into its bottom-right
// corner (scaled to a quarter of the avatar's dimensions, Lanczos resample)
// and returns the result encoded as PNG.
func (w *Watermarker) Apply(reader io.Reader) (io.Reader, error) {
	base, err := imaging.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := base.Bounds()
	baseWidth := bounds.Dx()
	baseHeight := bounds.Dy()

	markWidth := baseWidth / 4
	markHeight := baseHeight / 4
	if markWidth < 1 || markHeight < 1 {
		return nil, fmt.Errorf("image %dx%d is too small for watermarking", baseWidth, baseHeight)
	}

	mark := imaging.Resize(w.overlay, markWidth, markHeight, imaging.Lanczos)

	position := image.Pt(baseWidth-markWidth, baseHeight-markHeight)
	stamped := imaging.Overlay(base, mark, position, 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, stamped, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return &buf, nil
}
