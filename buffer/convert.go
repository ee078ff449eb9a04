package buffer

import "unicode/utf8"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// ByteOffset converts a rune offset to the UTF-8 byte offset in String().
func (c *Content) ByteOffset(runeOff int, mode OffsetClampMode) (int, bool) {
	runeOff, ok := clampOffset(runeOff, c.Len(), mode)
	if !ok {
		return 0, false
	}
	total := 0
	c.scan(func(i int, r rune) bool {
		if i == runeOff {
			return false
		}
		total += runeByteLen(r)
		return true
	})
	return total, true
}

// RuneOffset converts a UTF-8 byte offset in String() to a rune offset.
// Offsets inside an encoded rune fail in OffsetError mode and snap to the
// rune start in OffsetClamp mode.
func (c *Content) RuneOffset(byteOff int, mode OffsetClampMode) (int, bool) {
	byteOff, ok := clampOffset(byteOff, c.byteLen(), mode)
	if !ok {
		return 0, false
	}
	out, found := c.Len(), true
	cur := 0
	c.scan(func(i int, r rune) bool {
		if byteOff == cur {
			out = i
			return false
		}
		next := cur + runeByteLen(r)
		if byteOff < next {
			out, found = i, mode == OffsetClamp
			return false
		}
		cur = next
		return true
	})
	if !found {
		return 0, false
	}
	return out, true
}

// PosFromOffset converts a rune offset to (line, col).
func (c *Content) PosFromOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, c.Len(), mode)
	if !ok {
		return Pos{}, false
	}
	var p Pos
	c.scan(func(i int, r rune) bool {
		if i == off {
			return false
		}
		if r == '\n' {
			p.Line++
			p.Col = 0
		} else {
			p.Col++
		}
		return true
	})
	return p, true
}

// OffsetFromPos converts (line, col) to a rune offset. In OffsetError mode the
// position must exist: Line < LineCount() and Col <= the line's length.
func (c *Content) OffsetFromPos(p Pos, mode OffsetClampMode) (int, bool) {
	if mode != OffsetError && mode != OffsetClamp {
		return 0, false
	}
	lines := c.LineCount()
	if mode == OffsetError && (p.Line < 0 || p.Line >= lines) {
		return 0, false
	}
	line := clampInt(p.Line, 0, lines-1)

	start, length := c.lineBounds(line)
	if mode == OffsetError && (p.Col < 0 || p.Col > length) {
		return 0, false
	}
	return start + clampInt(p.Col, 0, length), true
}

// LineCount returns the number of '\n'-separated lines, at least 1.
func (c *Content) LineCount() int {
	lines := 1
	c.scan(func(_ int, r rune) bool {
		if r == '\n' {
			lines++
		}
		return true
	})
	return lines
}

// lineBounds returns the start offset and rune length of line, excluding its
// terminating '\n'.
func (c *Content) lineBounds(line int) (start, length int) {
	cur := 0
	end := -1
	c.scan(func(i int, r rune) bool {
		if r != '\n' {
			return true
		}
		if cur == line {
			end = i
			return false
		}
		cur++
		start = i + 1
		return true
	})
	if end < 0 {
		end = c.Len()
	}
	return start, end - start
}

func (c *Content) byteLen() int {
	total := 0
	c.scan(func(_ int, r rune) bool {
		total += runeByteLen(r)
		return true
	})
	return total
}

// scan calls fn for each rune in order until fn returns false.
func (c *Content) scan(fn func(i int, r rune) bool) {
	head, tail, _ := c.text.Chunks(0, c.text.Len())
	for i, r := range head {
		if !fn(i, r) {
			return
		}
	}
	for i, r := range tail {
		if !fn(len(head)+i, r) {
			return
		}
	}
}

func runeByteLen(r rune) int {
	n := utf8.RuneLen(r)
	if n < 0 {
		return utf8.RuneLen(utf8.RuneError)
	}
	return n
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}
