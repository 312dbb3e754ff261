package converter

import (
	"errors"
	"fmt"
	"image"
	"imgadjust/internal/core/domain"
	"imgadjust/internal/core/port"
	"math"

	"github.com/rs/zerolog/log"
)

var (
	errNoImage       = errors.New("no source image")
	errEmptyImage    = errors.New("source image has no pixels")
	errBadParameters = errors.New("undefined transform parameters")
)

// NewConverter returns the converter backing the given engine name.
func NewConverter(engine domain.Engine) (port.ImageConverter, error) {
	switch engine {
	case domain.EngineImaging, "":
		log.Debug().Str("engine", string(domain.EngineImaging)).Msg("using converter")
		return NewImagingConverter(), nil
	case domain.EngineBild:
		log.Debug().Str("engine", string(domain.EngineBild)).Msg("using converter")
		return NewBildConverter(), nil
	default:
		return nil, fmt.Errorf("%w: unknown transform engine %q", domain.ErrStartupFailed, engine)
	}
}

func checkInput(src image.Image, params domain.TransformParameters) error {
	if src == nil {
		return fmt.Errorf("%w: %w", domain.ErrTransformFailed, errNoImage)
	}

	if src.Bounds().Empty() {
		return fmt.Errorf("%w: %w", domain.ErrTransformFailed, errEmptyImage)
	}

	// an infinite offset saturates every channel, only an infinite scale or a NaN has no defined result
	if !isFinite(params.Scale) || math.IsNaN(params.Offset) {
		return fmt.Errorf("%w: %w (scale=%v, offset=%v)", domain.ErrTransformFailed, errBadParameters,
			params.Scale, params.Offset)
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// lookupTable precomputes saturate(|v*scale + offset|) for every 8-bit channel value.
func lookupTable(params domain.TransformParameters) *[256]uint8 {
	var lut [256]uint8
	for v := range 256 {
		lut[v] = saturate(math.Abs(float64(v)*params.Scale + params.Offset))
	}
	return &lut
}

func saturate(f float64) uint8 {
	f = math.Round(f)
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f)
	}
}
