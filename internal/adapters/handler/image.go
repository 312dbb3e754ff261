package handler

import (
	"context"
	"errors"
	"imgadjust/internal/core/domain"
	"imgadjust/internal/core/port"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"
)

type Image struct {
	adjuster port.Adjuster
	decoder  *schema.Decoder
}

func NewImage(adjuster port.Adjuster) *Image {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Image{adjuster: adjuster, decoder: decoder}
}

// ServeHTTP answers GET /image?brightness=<float>&contrast=<float> with a JPEG.
func (h *Image) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := log.Ctx(r.Context())

	req, err := h.parseQuery(r.URL.Query())
	if err != nil {
		l.Debug().Err(err).Str("query", r.URL.RawQuery).Msg("invalid query")
		writeError(w, err)
		return
	}

	// a client disconnect must not abort a transform that already holds the source image
	payload, err := h.adjuster.Adjust(context.WithoutCancel(r.Context()), req)
	if err != nil {
		// already logged by the adjuster
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	if _, err := w.Write(payload); err != nil {
		l.Warn().Err(err).Msg("failed to write response body")
	}
}

func (h *Image) parseQuery(query url.Values) (domain.AdjustmentRequest, error) {
	var req domain.AdjustmentRequest

	err := h.decoder.Decode(&req, query)
	if err == nil {
		return req, nil
	}

	return req, toRequestError(err, query)
}

// toRequestError reduces a schema decoding error to the first offending field, in alphabetical order.
func toRequestError(err error, query url.Values) error {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return fieldError(err, query)
	}

	keys := make([]string, 0, len(multi))
	for k := range multi {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		return &domain.RequestError{Field: "query"}
	}

	return fieldError(multi[keys[0]], query)
}

func fieldError(err error, query url.Values) error {
	var empty schema.EmptyFieldError
	var conversion schema.ConversionError

	switch {
	case errors.As(err, &empty):
		return &domain.RequestError{Field: empty.Key}
	case errors.As(err, &conversion):
		return &domain.RequestError{Field: conversion.Key, Value: query.Get(conversion.Key)}
	default:
		return &domain.RequestError{Field: "query", Value: err.Error()}
	}
}
