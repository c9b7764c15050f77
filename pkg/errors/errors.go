package errors

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds occurs when an index-based removal targets a position
// outside of the queue.
var ErrIndexOutOfBounds = errors.New("lineup: index out of bounds")

// IndexError carries the details of a rejected index access.
type IndexError struct {
	Op    string
	Index uint
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, len %d: %v", e.Op, e.Index, e.Len, ErrIndexOutOfBounds)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
