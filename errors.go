package mixdown

import "errors"

var (
	// ErrUnreadableSource indicates a missing, unsupported or corrupt
	// input file. Decode failures are fatal; there is no retry.
	ErrUnreadableSource = errors.New("unreadable source")

	// ErrWriteFailure indicates an output I/O or encoding failure.
	ErrWriteFailure = errors.New("write failure")

	// ErrUnsupportedFormat indicates a container this build cannot
	// decode or encode.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
