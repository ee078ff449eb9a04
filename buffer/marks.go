package buffer

// Bias decides where a mark goes when text is inserted exactly at it.
type Bias uint8

const (
	BiasBackward Bias = iota // stays before the inserted text
	BiasForward              // moves past the inserted text
)

// Mark is an offset that follows edits of the Content that created it.
//
// Text inserted before a mark shifts it; text removed around a mark collapses
// it to the start of the removed range. Undoing the removal puts a live mark
// back where it was.
type Mark struct {
	offset int
	bias   Bias
	live   bool
}

func (m *Mark) Offset() int { return m.offset }

func (m *Mark) Bias() Bias { return m.bias }

// Live reports whether the mark is still tracked by its Content.
func (m *Mark) Live() bool { return m.live }

type markSet struct {
	marks []*Mark
}

// Changed implements gap.Listener.
func (s *markSet) Changed(offset, delta int) {
	if delta > 0 {
		for _, m := range s.marks {
			if m.offset > offset || (m.offset == offset && m.bias == BiasForward) {
				m.offset += delta
			}
		}
		return
	}

	end := offset - delta
	for _, m := range s.marks {
		switch {
		case m.offset >= end:
			m.offset += delta
		case m.offset > offset:
			m.offset = offset
		}
	}
}

type savedMark struct {
	m      *Mark
	offset int
}

// within returns the marks in [offset, offset+n], the ones a removal of n
// runes at offset collapses.
func (s *markSet) within(offset, n int) []savedMark {
	if n <= 0 {
		return nil
	}
	var out []savedMark
	for _, m := range s.marks {
		if m.offset >= offset && m.offset <= offset+n {
			out = append(out, savedMark{m: m, offset: m.offset})
		}
	}
	return out
}

func restoreMarks(saved []savedMark) {
	for _, sm := range saved {
		if sm.m.live {
			sm.m.offset = sm.offset
		}
	}
}

func (s *markSet) add(m *Mark) { s.marks = append(s.marks, m) }

func (s *markSet) remove(m *Mark) bool {
	for i, cur := range s.marks {
		if cur == m {
			s.marks = append(s.marks[:i], s.marks[i+1:]...)
			return true
		}
	}
	return false
}

// CreatePosition returns a mark at offset, 0 <= offset <= Len().
func (c *Content) CreatePosition(offset int, bias Bias) (*Mark, error) {
	if offset < 0 || offset > c.Len() {
		return nil, badLocation("position", offset, 0, c.Len())
	}
	m := &Mark{offset: offset, bias: bias, live: true}
	c.marks.add(m)
	return m, nil
}

// MovePosition relocates a live mark. Moving a nil or released mark fails
// with ErrReleasedMark.
func (c *Content) MovePosition(m *Mark, offset int) error {
	if m == nil || !m.live {
		return ErrReleasedMark
	}
	if offset < 0 || offset > c.Len() {
		return badLocation("position", offset, 0, c.Len())
	}
	m.offset = offset
	return nil
}

// ReleasePosition stops tracking m. Its offset freezes.
func (c *Content) ReleasePosition(m *Mark) {
	if m == nil || !m.live {
		return
	}
	if c.marks.remove(m) {
		m.live = false
	}
}

// Positions returns the number of live marks.
func (c *Content) Positions() int { return len(c.marks.marks) }
