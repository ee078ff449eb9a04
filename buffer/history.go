package buffer

import (
	"fmt"
	"unicode/utf8"
)

type historyState struct {
	undo []historyStep
	redo []historyStep
}

// historyStep is one undoable change. collapsed follows changeBuilder.
type historyStep struct {
	edits     []Edit
	collapsed [][]savedMark
}

func (c *Content) recordUndo(change changeBuilder) {
	if len(change.edits) == 0 {
		return
	}
	if c.pushUndo(historyStep{edits: change.edits, collapsed: change.collapsed}) {
		c.hist.redo = nil
	}
}

func (c *Content) pushUndo(step historyStep) bool {
	limit := c.opt.HistoryLimit
	if limit <= 0 {
		return false
	}
	c.hist.undo = append(c.hist.undo, step)
	if len(c.hist.undo) > limit {
		c.hist.undo = c.hist.undo[len(c.hist.undo)-limit:]
	}
	return true
}

func (c *Content) CanUndo() bool { return len(c.hist.undo) > 0 }

func (c *Content) CanRedo() bool { return len(c.hist.redo) > 0 }

// Undo reverts the most recent recorded change and puts marks collapsed by
// its removals back at their earlier offsets.
func (c *Content) Undo() bool {
	if len(c.hist.undo) == 0 {
		return false
	}

	i := len(c.hist.undo) - 1
	step := c.hist.undo[i]
	c.hist.undo = c.hist.undo[:i]

	n := len(step.edits)
	inverse := make([]Edit, 0, n)
	restore := make([][]savedMark, 0, n)
	for j := n - 1; j >= 0; j-- {
		inverse = append(inverse, step.edits[j].inverse())
		restore = append(restore, step.collapsed[j])
	}
	c.replay(inverse, restore, ChangeSourceUndo)
	c.hist.redo = append(c.hist.redo, step)
	return true
}

// Redo reapplies the most recently undone change.
func (c *Content) Redo() bool {
	if len(c.hist.redo) == 0 {
		return false
	}

	i := len(c.hist.redo) - 1
	step := c.hist.redo[i]
	c.hist.redo = c.hist.redo[:i]

	change := c.replay(step.edits, nil, ChangeSourceRedo)
	c.pushUndo(historyStep{edits: change.edits, collapsed: change.collapsed})
	return true
}

// ClearHistory drops all undo and redo steps.
func (c *Content) ClearHistory() {
	c.hist = historyState{}
}

// replay applies edits in order. After edits[i], marks in restore[i] (if
// any) return to their saved offsets.
func (c *Content) replay(edits []Edit, restore [][]savedMark, source ChangeSource) changeBuilder {
	change := c.beginChange(source)
	for i, e := range edits {
		n := utf8.RuneCountInString(e.Deleted)
		collapsed := c.marks.within(e.Offset, n)
		applied, changed, err := c.replaceRunes(e.Offset, n, []rune(e.Inserted))
		if err != nil {
			// History only holds edits made through this Content.
			panic(fmt.Sprintf("buffer: history out of sync: %v", err))
		}
		if changed {
			change.addEdit(applied, collapsed)
		}
		if i < len(restore) {
			restoreMarks(restore[i])
		}
	}
	c.commitChange(change)
	return change
}
