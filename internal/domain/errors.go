package domain

import "errors"

// Error kinds surfaced by the service layer. Handlers match these with
// errors.Is and translate them to HTTP status codes; anything else is a
// plain 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
)
