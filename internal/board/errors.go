package board

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel behind NotFoundError.
var ErrNotFound = errors.New("player not available")

// NotFoundError reports an index that is not in the available partition.
type NotFoundError struct {
	Index int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("index %d: %v", e.Index, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
