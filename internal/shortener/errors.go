package shortener

import "errors"

// Errors returned by a Repository.
var (
	ErrNotFound      = errors.New("link not found")
	ErrDuplicateCode = errors.New("code already exists")
)

// Errors returned by the Service.
var (
	ErrInvalidURL       = errors.New("invalid url")
	ErrInvalidCode      = errors.New("invalid code")
	ErrCodeConflict     = errors.New("code is already in use")
	ErrExhaustedRetries = errors.New("could not generate a unique code")
	ErrInternal         = errors.New("internal error")
)
