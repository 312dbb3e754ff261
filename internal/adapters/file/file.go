package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// CreateTempFile opens a new uniquely named file in the temp directory. The caller closes it.
func CreateTempFile(extension string) (*os.File, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("%s%s", id.String(), extension))

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		err = fmt.Errorf("error creating temp file %w", err)
		log.Error().Err(err).Send()
		return nil, err
	}

	log.Debug().Str("path", f.Name()).Msg("created file")

	return f, nil
}

// SaveTempFile saves bytes to a temp location and returns the path.
func SaveTempFile(data []byte, extension string) (string, error) {
	log.Debug().Int("bytes", len(data)).Str("extension", extension).Msg("creating temp file")

	f, err := CreateTempFile(extension)
	if err != nil {
		return "", err
	}

	defer f.Close()

	if _, err := f.Write(data); err != nil {
		err = fmt.Errorf("error writing temp file %w", err)
		log.Error().Err(err).Send()
		RemoveTempFile(f.Name())
		return "", err
	}

	return f.Name(), nil
}

// GetTempFile retrieves a temporarily stored file by its path, as returned from SaveTempFile().
func GetTempFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("error reading temp file %w", err)
		log.Error().Err(err).Send()
		return nil, err
	}

	return buf, nil
}

// RemoveTempFile removes a specified temporary file at the given path and logs success or failure.
func RemoveTempFile(path string) {
	err := os.Remove(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up temp file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up temp file")
}
