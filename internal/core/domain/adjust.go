package domain

import (
	"math"
	"strconv"
)

const (
	brightnessRange = "[0, +inf)"
	contrastRange   = "(0, 1]"
)

// Validate rejects requests that must never reach Normalize. Contrast 0 is rejected here
// since it has no finite offset.
func Validate(req AdjustmentRequest) error {
	b := req.Brightness
	if math.IsNaN(b) || math.IsInf(b, 0) || b < 0 {
		return &RequestError{Field: FieldBrightness, Value: formatFloat(b), Allowed: brightnessRange}
	}

	c := req.Contrast
	if math.IsNaN(c) || c <= 0 || c > 1 {
		return &RequestError{Field: FieldContrast, Value: formatFloat(c), Allowed: contrastRange}
	}

	return nil
}

// Normalize maps a validated request onto the transform domain so that
// (0.5, 1.0) lands on Identity.
func Normalize(req AdjustmentRequest) TransformParameters {
	return TransformParameters{
		Scale:  2 * req.Brightness,
		Offset: 1/req.Contrast - 1,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
