package engine

import "errors"

var (
	// ErrValidation indicates a request that cannot be run as given.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the input file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMalformedGrid indicates the input could not be parsed into a rectangular numeric grid.
	ErrMalformedGrid = errors.New("malformed grid")
)
