package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest      = errors.New("bad request")
	ErrTransformFailed = errors.New("conversion failed")
	ErrEncodeFailed    = errors.New("encode failed")
	ErrStartupFailed   = errors.New("startup failed")
)

// Kind is the closed set of failure classes a request or the startup sequence can end in.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindTransformFailure
	KindEncodeFailure
	KindStartupFailure
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindTransformFailure:
		return "transform_failure"
	case KindEncodeFailure:
		return "encode_failure"
	case KindStartupFailure:
		return "startup_failure"
	default:
		return "unknown"
	}
}

// RequestError describes a client-caused range or parse violation for a single field.
type RequestError struct {
	Field   string
	Value   string
	Allowed string
}

func (e *RequestError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("bad %s: missing value", e.Field)
	}

	if e.Allowed == "" {
		return fmt.Sprintf("bad %s: %q", e.Field, e.Value)
	}

	return fmt.Sprintf("bad %s: %s is outside %s", e.Field, e.Value, e.Allowed)
}

func (e *RequestError) Unwrap() error {
	return ErrBadRequest
}

// KindOf classifies err. Errors that match none of the sentinels are KindUnknown.
func KindOf(err error) Kind {
	var reqErr *RequestError

	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &reqErr), errors.Is(err, ErrBadRequest):
		return KindBadRequest
	case errors.Is(err, ErrTransformFailed):
		return KindTransformFailure
	case errors.Is(err, ErrEncodeFailed):
		return KindEncodeFailure
	case errors.Is(err, ErrStartupFailed):
		return KindStartupFailure
	default:
		return KindUnknown
	}
}
