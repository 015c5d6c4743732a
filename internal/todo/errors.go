package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned by Add when it is handed something that is
	// not an item (a nil *Item).
	ErrTypeMismatch = errors.New("can only add todo items")

	// ErrIndexOutOfRange is returned by index-based accessors when the index
	// is not currently occupied.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError reports an index that did not address an occupied slot.
// It matches ErrIndexOutOfRange under errors.Is.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid index: %d (size %d)", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
