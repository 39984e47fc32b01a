package eqparts

import "errors"

var (
	// ErrInvalidParts is returned when the requested number of parts is less than 1.
	ErrInvalidParts = errors.New("number of parts must be greater than 0")

	// ErrInvalidLength is returned when a plan is requested for a negative length.
	ErrInvalidLength = errors.New("length cannot be negative")
)
