package mix

import "errors"

var (
	// ErrShapeMismatch indicates parallel per-clip lists of unequal length.
	ErrShapeMismatch = errors.New("per-clip lists disagree in length")

	// ErrInvalidRate indicates a non-positive output sample rate.
	ErrInvalidRate = errors.New("invalid sample rate")

	// ErrNoDecoder indicates a clip references a path but the mixer has
	// no decode collaborator.
	ErrNoDecoder = errors.New("no decode function configured")
)
