package encoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"imgadjust/internal/adapters/file"
	"imgadjust/internal/core/domain"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
)

const (
	DefaultQuality = 95
	jpegExtension  = ".jpg"
)

var errNoImage = errors.New("nothing to encode")

type JPEGEncoder struct {
	quality int
	staging domain.Staging
}

func NewJPEGEncoder(quality int, staging domain.Staging) (*JPEGEncoder, error) {
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("%w: jpeg quality %d outside [1, 100]", domain.ErrStartupFailed, quality)
	}

	switch staging {
	case domain.StagingMemory, domain.StagingTempFile:
	case "":
		staging = domain.StagingMemory
	default:
		return nil, fmt.Errorf("%w: unknown staging mode %q", domain.ErrStartupFailed, staging)
	}

	return &JPEGEncoder{quality: quality, staging: staging}, nil
}

func (e *JPEGEncoder) Encode(ctx context.Context, img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errNoImage
	}

	if e.staging == domain.StagingTempFile {
		return e.encodeViaTempFile(ctx, img)
	}

	var buf bytes.Buffer
	if err := e.encodeTo(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// encodeViaTempFile stages the encoded artifact on disk and reads it back. The file is removed before returning.
func (e *JPEGEncoder) encodeViaTempFile(ctx context.Context, img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.encodeTo(&buf, img); err != nil {
		return nil, err
	}

	path, err := file.SaveTempFile(buf.Bytes(), jpegExtension)
	if err != nil {
		return nil, err
	}

	defer file.RemoveTempFile(path)

	log.Ctx(ctx).Debug().Str("path", path).Msg("jpeg staged")

	return file.GetTempFile(path)
}

func (e *JPEGEncoder) encodeTo(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(e.quality)); err != nil {
		return fmt.Errorf("error encoding jpeg %w", err)
	}
	return nil
}
