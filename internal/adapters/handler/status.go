package handler

import (
	"imgadjust/internal/core/domain"
	"net/http"
)

var statusByKind = map[domain.Kind]int{
	domain.KindBadRequest:       http.StatusBadRequest,
	domain.KindTransformFailure: http.StatusInternalServerError,
	domain.KindEncodeFailure:    http.StatusInternalServerError,
}

// StatusFor maps an error kind to its HTTP status. Anything unmapped is a 500.
func StatusFor(kind domain.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// messageFor returns the client-facing body for err. Internal failures are reduced to their sentinel text.
func messageFor(err error) string {
	switch domain.KindOf(err) {
	case domain.KindBadRequest:
		return err.Error()
	case domain.KindTransformFailure:
		return domain.ErrTransformFailed.Error()
	case domain.KindEncodeFailure:
		return domain.ErrEncodeFailed.Error()
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(StatusFor(domain.KindOf(err)))
	_, _ = w.Write([]byte(messageFor(err)))
}
