package core

import "errors"

// Error classes shared by every stage of a run. Callers match them with
// errors.Is; concrete errors wrap one or more of these with context.
var (
	// ErrFileOpen reports an unreadable source or an unwritable sink.
	ErrFileOpen = errors.New("file open")
	// ErrFormat reports a malformed bitmap: bad marker, bad dimensions,
	// non-binary pixel token, or a short or overlong pixel stream.
	ErrFormat = errors.New("bitmap format")
	// ErrDimension reports non-positive dimensions or mismatched buffers.
	ErrDimension = errors.New("dimension")
	// ErrAllocation reports that a grid buffer could not be allocated.
	ErrAllocation = errors.New("allocation")
)
