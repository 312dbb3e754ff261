package port

import (
	"image"
	"imgadjust/internal/core/domain"
)

type ImageConverter interface {
	// Convert derives a new image by applying dst = saturate(|src*scale + offset|) to every color channel of src.
	// The source image is never modified.
	Convert(src image.Image, params domain.TransformParameters) (image.Image, error)
}
