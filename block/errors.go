package block

import (
	"errors"
	"fmt"
)

// Sentinel errors for block operations
var (
	// ErrEmptyBlock indicates that a Block was constructed without lines
	ErrEmptyBlock = errors.New("block has no lines")

	// ErrNilLine indicates that a nil Line was passed to New
	ErrNilLine = errors.New("nil line")

	// ErrDuplicateLine indicates that the same Line was passed to New twice
	ErrDuplicateLine = errors.New("line appears more than once")

	// ErrMultilineContent indicates content containing a newline or carriage
	// return, which would occupy more than one terminal row
	ErrMultilineContent = errors.New("content spans more than one row")

	// ErrIndexOutOfRange indicates a row index outside the block, or a Line
	// that does not belong to the block
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCursor indicates that a control sequence could not be written
	ErrCursor = errors.New("cursor write failed")
)

// IndexError represents a request for a row the block does not own
type IndexError struct {
	Index int
	Len   int
	// Foreign is set when the index is in range but the Line handle
	// belongs to a different block.
	Foreign bool
}

func (e *IndexError) Error() string {
	if e.Foreign {
		return fmt.Sprintf("line at index %d does not belong to this block", e.Index)
	}
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Is returns true if the target error is ErrIndexOutOfRange
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// CursorError represents a failed write to the output stream
type CursorError struct {
	Op  string
	Err error
}

func (e *CursorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Is returns true if the target error is ErrCursor
func (e *CursorError) Is(target error) bool {
	return target == ErrCursor
}

func (e *CursorError) Unwrap() error {
	return e.Err
}
