package converter

import (
	"image"
	"image/color"
	"imgadjust/internal/core/domain"

	"github.com/disintegration/imaging"
)

// ImagingConverter applies the linear transform on non-premultiplied channels, leaving alpha untouched.
type ImagingConverter struct{}

func NewImagingConverter() *ImagingConverter {
	return &ImagingConverter{}
}

func (c *ImagingConverter) Convert(src image.Image, params domain.TransformParameters) (image.Image, error) {
	if err := checkInput(src, params); err != nil {
		return nil, err
	}

	lut := lookupTable(params)

	return imaging.AdjustFunc(src, func(px color.NRGBA) color.NRGBA {
		return color.NRGBA{R: lut[px.R], G: lut[px.G], B: lut[px.B], A: px.A}
	}), nil
}
