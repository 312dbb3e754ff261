package file

import (
	"fmt"
	"image"
	"imgadjust/internal/core/domain"
	"os"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
)

// LoadImage decodes the image at path, applying EXIF orientation. Any failure is a startup failure.
func LoadImage(path string) (image.Image, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: source image: %w", domain.ErrStartupFailed, err)
	}

	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: source image %s is not a regular file", domain.ErrStartupFailed, path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding source image: %w", domain.ErrStartupFailed, err)
	}

	log.Info().Str("path", path).Int64("bytes", stat.Size()).Msg("loaded source image")

	return img, nil
}
