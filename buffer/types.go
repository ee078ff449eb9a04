package buffer

import (
	"errors"

	"github.com/iw2rmb/gapbuffer/gap"
)

// ErrInvalidOffset is returned (wrapped) for offsets outside the content.
var ErrInvalidOffset = gap.ErrInvalidOffset

// ErrReleasedMark is returned when a nil or released Mark is moved.
var ErrReleasedMark = errors.New("buffer: mark is released")

// Pos points into the content by (line, col) in runes.
// Line and Col are 0-based; lines are separated by '\n'.
type Pos struct {
	Line int
	Col  int
}

// TextEdit replaces Length runes at Offset with Text.
type TextEdit struct {
	Offset int
	Length int
	Text   string
}

func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func badLocation(op string, offset, length, size int) error {
	return &gap.BadLocationError{Op: op, Offset: offset, Length: length, Size: size}
}
