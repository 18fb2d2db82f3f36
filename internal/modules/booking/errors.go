package booking

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("spot not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("booking conflict")
)
