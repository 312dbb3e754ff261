package port

import "image"

type SourceGuard interface {
	// WithSource runs fn with exclusive access to the stored source image and returns its error. Concurrent callers
	// wait for their turn. fn must not retain or modify the image.
	WithSource(fn func(src image.Image) error) error
}
