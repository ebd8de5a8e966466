package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/linx/internal/shortener"
)

// toHTTPError maps a service error to the status returned to clients.
// Internal failures never expose their cause.
func toHTTPError(err error) huma.StatusError {
	switch {
	case errors.Is(err, shortener.ErrInvalidCode), errors.Is(err, shortener.ErrInvalidURL):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, shortener.ErrCodeConflict), errors.Is(err, shortener.ErrExhaustedRetries):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, shortener.ErrNotFound):
		return huma.Error404NotFound("short url not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
