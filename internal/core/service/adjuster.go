package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"imgadjust/internal/core/domain"
	"imgadjust/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type AdjustService struct {
	source    port.SourceGuard
	converter port.ImageConverter
	encoder   port.ImageEncoder
}

func NewAdjustService(source port.SourceGuard, converter port.ImageConverter, encoder port.ImageEncoder) *AdjustService {
	return &AdjustService{source: source, converter: converter, encoder: encoder}
}

func (s *AdjustService) Adjust(ctx context.Context, req domain.AdjustmentRequest) ([]byte, error) {
	l := log.Ctx(ctx).With().
		Float64("brightness", req.Brightness).
		Float64("contrast", req.Contrast).
		Logger()

	if err := domain.Validate(req); err != nil {
		l.Debug().Err(err).Msg("rejected adjustment request")
		return nil, err
	}

	params := domain.Normalize(req)
	l = l.With().Float64("scale", params.Scale).Float64("offset", params.Offset).Logger()

	start := time.Now()

	var payload []byte
	err := s.source.WithSource(func(src image.Image) error {
		processed, err := runStage(domain.ErrTransformFailed, func() (image.Image, error) {
			return s.converter.Convert(src, params)
		})
		if err != nil {
			return err
		}

		payload, err = runStage(domain.ErrEncodeFailed, func() ([]byte, error) {
			return s.encoder.Encode(ctx, processed)
		})
		return err
	})
	if err != nil {
		l.Error().Err(err).Msg("adjustment failed")
		return nil, err
	}

	l.Debug().Int("bytes", len(payload)).Dur("took", time.Since(start)).Msg("adjustment finished")

	return payload, nil
}

// runStage runs one pipeline stage and tags its error or panic with kind, unless the error already carries it.
func runStage[T any](kind error, fn func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out, err = zero, fmt.Errorf("%w: panic: %v", kind, r)
		}
	}()

	out, err = fn()
	if err != nil && !errors.Is(err, kind) {
		err = fmt.Errorf("%w: %w", kind, err)
	}

	return out, err
}
