package profile

import "errors"

var (
	// ErrNonPositiveSpacing indicates a bucket width of zero or less.
	ErrNonPositiveSpacing = errors.New("spacing must be positive")
)
