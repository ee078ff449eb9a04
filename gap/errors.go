package gap

import (
	"errors"
	"fmt"
)

// ErrInvalidOffset reports a logical position or length outside the content.
var ErrInvalidOffset = errors.New("invalid offset")

// BadLocationError describes a rejected edit or read. It wraps
// ErrInvalidOffset.
type BadLocationError struct {
	Op     string
	Offset int
	Length int
	Size   int // logical length at the time of the call
}

func (e *BadLocationError) Error() string {
	return fmt.Sprintf("gap: %s at %d (length %d) outside content of length %d", e.Op, e.Offset, e.Length, e.Size)
}

func (e *BadLocationError) Unwrap() error { return ErrInvalidOffset }
