package usecase

import "errors"

// Failure taxonomy surfaced to handlers. Store and mail failures inside
// the disclosure workflow are deliberately not part of it; they are logged
// and swallowed.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)
