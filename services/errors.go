package services

import "errors"

// Sentinel errors shared by the services. Controllers translate these into
// HTTP status codes; anything else maps to a 500.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrDuplicate    = errors.New("already exists")
)
