package port

import (
	"context"
	"imgadjust/internal/core/domain"
)

type Adjuster interface {
	// Adjust validates req, applies the brightness/contrast transform to the source image and returns the JPEG bytes.
	Adjust(ctx context.Context, req domain.AdjustmentRequest) ([]byte, error)
}
