package converter

import (
	"image"
	"image/color"
	"imgadjust/internal/core/domain"

	"github.com/anthonynsimon/bild/adjust"
)

// BildConverter applies the linear transform through bild's parallel per-pixel adjuster. bild works on
// premultiplied RGBA, so results only match ImagingConverter for opaque pixels.
type BildConverter struct{}

func NewBildConverter() *BildConverter {
	return &BildConverter{}
}

func (c *BildConverter) Convert(src image.Image, params domain.TransformParameters) (image.Image, error) {
	if err := checkInput(src, params); err != nil {
		return nil, err
	}

	lut := lookupTable(params)

	return adjust.Apply(src, func(px color.RGBA) color.RGBA {
		return color.RGBA{R: lut[px.R], G: lut[px.G], B: lut[px.B], A: px.A}
	}), nil
}
