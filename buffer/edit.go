package buffer

import (
	"slices"

	"github.com/iw2rmb/gapbuffer/internal/grapheme"
)

// InsertString inserts s at offset.
func (c *Content) InsertString(offset int, s string) (Edit, error) {
	return c.Replace(offset, 0, s)
}

// Remove deletes n runes starting at offset.
func (c *Content) Remove(offset, n int) (Edit, error) {
	return c.Replace(offset, n, "")
}

// Replace substitutes n runes at offset with s. Replacing text with itself is
// not an effective edit and returns an empty Edit.
func (c *Content) Replace(offset, n int, s string) (Edit, error) {
	change := c.beginChange(ChangeSourceLocal)
	collapsed := c.marks.within(offset, n)
	applied, changed, err := c.replaceRunes(offset, n, []rune(s))
	if err != nil || !changed {
		return Edit{}, err
	}
	change.addEdit(applied, collapsed)
	c.commitChange(change)
	c.recordUndo(change)
	return applied, nil
}

// GraphemeBounds returns the grapheme cluster [start, end) containing offset.
// At Len() it returns the empty range [Len(), Len()).
func (c *Content) GraphemeBounds(offset int) (start, end int, err error) {
	n := c.Len()
	if offset < 0 || offset > n {
		return 0, 0, badLocation("grapheme", offset, 0, n)
	}
	if offset == n {
		return n, n, nil
	}

	// A cluster never spans a line feed, so the enclosing line is enough
	// context.
	lineStart := offset
	for lineStart > 0 && c.text.At(lineStart-1) != '\n' {
		lineStart--
	}
	lineEnd := offset
	for lineEnd < n && c.text.At(lineEnd) != '\n' {
		lineEnd++
	}
	if lineEnd < n {
		lineEnd++
	}

	window, err := c.text.Slice(lineStart, lineEnd-lineStart)
	if err != nil {
		return 0, 0, err
	}
	s, e := grapheme.Around(window, offset-lineStart)
	return lineStart + s, lineStart + e, nil
}

// DeleteGraphemeBefore applies backspace semantics at offset: it removes the
// part of the preceding grapheme cluster that lies before offset.
func (c *Content) DeleteGraphemeBefore(offset int) (Edit, error) {
	if offset < 0 || offset > c.Len() {
		return Edit{}, badLocation("delete", offset, 0, c.Len())
	}
	if offset == 0 {
		return Edit{}, nil
	}
	start, _, err := c.GraphemeBounds(offset - 1)
	if err != nil {
		return Edit{}, err
	}
	return c.Remove(start, offset-start)
}

// DeleteGraphemeAfter applies delete-key semantics at offset.
func (c *Content) DeleteGraphemeAfter(offset int) (Edit, error) {
	_, end, err := c.GraphemeBounds(offset)
	if err != nil {
		return Edit{}, err
	}
	if end == offset {
		return Edit{}, nil
	}
	return c.Remove(offset, end-offset)
}

func (c *Content) replaceRunes(offset, n int, rs []rune) (applied Edit, changed bool, err error) {
	deleted, err := c.text.Slice(offset, n)
	if err != nil {
		return Edit{}, false, err
	}
	if slices.Equal(deleted, rs) {
		return Edit{}, false, nil
	}

	// deleted may alias storage: capture it before mutating.
	applied = Edit{
		Offset:   offset,
		Deleted:  string(deleted),
		Inserted: string(rs),
	}
	if err := c.text.Replace(offset, n, rs); err != nil {
		return Edit{}, false, err
	}
	return applied, true, nil
}
