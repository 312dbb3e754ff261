package port

import (
	"context"
	"image"
)

type ImageEncoder interface {
	// Encode produces the JPEG byte stream for img.
	Encode(ctx context.Context, img image.Image) ([]byte, error)
}
