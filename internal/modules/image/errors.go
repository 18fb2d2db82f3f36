package image

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid_request")
	ErrNotFound         = errors.New("not_found")
	ErrForbidden        = errors.New("forbidden")
	ErrCapacityExceeded = errors.New("capacity_exceeded")
)
