package service

import (
	"fmt"
	"image"
	"imgadjust/internal/core/domain"
	"sync"

	"github.com/rs/zerolog/log"
)

// ImageStore owns the source image for the process lifetime and hands it out one caller at a time.
type ImageStore struct {
	source image.Image
	mutex  *sync.Mutex
}

func NewImageStore(source image.Image) (*ImageStore, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: no source image", domain.ErrStartupFailed)
	}

	b := source.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: source image has no pixels", domain.ErrStartupFailed)
	}

	log.Info().Int("width", b.Dx()).Int("height", b.Dy()).Msg("source image stored")

	return &ImageStore{source: source, mutex: &sync.Mutex{}}, nil
}

func (s *ImageStore) WithSource(fn func(src image.Image) error) (err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered panic while holding source image")
			err = fmt.Errorf("%w: %v", domain.ErrTransformFailed, r)
		}
	}()

	return fn(s.source)
}
