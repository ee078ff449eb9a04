package buffer

// ChangeSource identifies what produced a change.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceUndo
	ChangeSourceRedo
)

// Edit describes one effective replacement: Deleted was removed at Offset and
// Inserted put in its place.
type Edit struct {
	Offset   int
	Deleted  string
	Inserted string
}

func (e Edit) IsEmpty() bool { return e.Deleted == "" && e.Inserted == "" }

func (e Edit) inverse() Edit {
	return Edit{Offset: e.Offset, Deleted: e.Inserted, Inserted: e.Deleted}
}

// Change is a versioned mutation payload. Edits apply in order, each against
// the content left by the previous one.
type Change struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64
	Edits         []Edit
}

type changeBuilder struct {
	source        ChangeSource
	versionBefore uint64
	edits         []Edit
	// collapsed[i] holds marks in the range edits[i] removed, at their
	// offsets before the edit.
	collapsed [][]savedMark
}

// LastChange returns the most recent effective change.
func (c *Content) LastChange() (Change, bool) {
	if !c.hasLastChange {
		return Change{}, false
	}
	return cloneChange(c.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.Edits = append([]Edit(nil), in.Edits...)
	return out
}

func (c *Content) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:        source,
		versionBefore: c.version,
	}
}

func (cb *changeBuilder) addEdit(e Edit, collapsed []savedMark) {
	cb.edits = append(cb.edits, e)
	cb.collapsed = append(cb.collapsed, collapsed)
}

// commitChange bumps the version once for all edits collected by cb.
func (c *Content) commitChange(cb changeBuilder) bool {
	if len(cb.edits) == 0 {
		return false
	}
	c.version++
	c.lastChange = Change{
		Source:        cb.source,
		VersionBefore: cb.versionBefore,
		VersionAfter:  c.version,
		Edits:         append([]Edit(nil), cb.edits...),
	}
	c.hasLastChange = true
	return true
}
