package repository

import "errors"

var (
	// ErrOverlap is returned when a booking insert would overlap an
	// existing booking for the same spot.
	ErrOverlap = errors.New("booking dates overlap an existing booking")

	// ErrDuplicateReview is returned when a user already reviewed the
	// spot.
	ErrDuplicateReview = errors.New("duplicate review for spot and user")
)
