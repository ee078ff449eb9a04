package buffer

import "unicode/utf8"

// Apply applies a sequence of text edits in order. Each edit's offset is
// interpreted against the content left by the edits before it.
//
// The whole batch is validated first; if any edit is out of range nothing is
// applied. Effective edits are reported as one Change and undone as one step.
func (c *Content) Apply(edits ...TextEdit) error {
	if len(edits) == 0 {
		return nil
	}

	n := c.Len()
	for _, e := range edits {
		if e.Offset < 0 || e.Length < 0 || e.Offset > n || e.Length > n-e.Offset {
			return badLocation("apply", e.Offset, e.Length, n)
		}
		n += utf8.RuneCountInString(e.Text) - e.Length
	}

	change := c.beginChange(ChangeSourceLocal)
	for _, e := range edits {
		collapsed := c.marks.within(e.Offset, e.Length)
		applied, changed, err := c.replaceRunes(e.Offset, e.Length, []rune(e.Text))
		if err != nil {
			// Validated above.
			break
		}
		if changed {
			change.addEdit(applied, collapsed)
		}
	}
	if c.commitChange(change) {
		c.recordUndo(change)
	}
	return nil
}
