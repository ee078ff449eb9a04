package buffer

import (
	"errors"
	"testing"
)

func TestMarks_InsertRespectsBias(t *testing.T) {
	c := New("abcdef", Options{})
	back, _ := c.CreatePosition(3, BiasBackward)
	fwd, _ := c.CreatePosition(3, BiasForward)
	before, _ := c.CreatePosition(1, BiasForward)
	after, _ := c.CreatePosition(5, BiasBackward)

	_, _ = c.InsertString(3, "XY")

	cases := []struct {
		name string
		m    *Mark
		want int
	}{
		{name: "backward at insert", m: back, want: 3},
		{name: "forward at insert", m: fwd, want: 5},
		{name: "before insert", m: before, want: 1},
		{name: "after insert", m: after, want: 7},
	}
	for _, tc := range cases {
		if got := tc.m.Offset(); got != tc.want {
			t.Fatalf("%s: offset=%d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestMarks_RemoveCollapsesAndShifts(t *testing.T) {
	c := New("0123456789", Options{})
	atStart, _ := c.CreatePosition(2, BiasForward)
	inside, _ := c.CreatePosition(4, BiasBackward)
	atEnd, _ := c.CreatePosition(6, BiasBackward)
	past, _ := c.CreatePosition(9, BiasForward)

	_, _ = c.Remove(2, 4)

	for name, tc := range map[string]struct {
		m    *Mark
		want int
	}{
		"start":  {atStart, 2},
		"inside": {inside, 2},
		"end":    {atEnd, 2},
		"past":   {past, 5},
	} {
		if got := tc.m.Offset(); got != tc.want {
			t.Fatalf("%s: offset=%d, want %d", name, got, tc.want)
		}
	}
}

func TestMarks_ReplaceMovesForwardMarkPastReplacement(t *testing.T) {
	c := New("hello world", Options{})
	cursor, _ := c.CreatePosition(11, BiasForward)
	anchor, _ := c.CreatePosition(6, BiasBackward)

	_, _ = c.Replace(6, 5, "there!")

	if got, want := cursor.Offset(), 12; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got, want := anchor.Offset(), 6; got != want {
		t.Fatalf("anchor=%d, want %d", got, want)
	}
}

func TestMarks_FollowUndoRedo(t *testing.T) {
	c := New("ab", Options{})
	m, _ := c.CreatePosition(2, BiasBackward)

	_, _ = c.InsertString(0, "xyz")
	if m.Offset() != 5 {
		t.Fatalf("offset=%d, want 5", m.Offset())
	}
	c.Undo()
	if m.Offset() != 2 {
		t.Fatalf("offset after undo=%d, want 2", m.Offset())
	}
	c.Redo()
	if m.Offset() != 5 {
		t.Fatalf("offset after redo=%d, want 5", m.Offset())
	}
}

func TestMarks_ReleaseAndMove(t *testing.T) {
	c := New("abc", Options{})
	m, err := c.CreatePosition(1, BiasForward)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Positions() != 1 || !m.Live() {
		t.Fatalf("expected one live mark")
	}

	if err := c.MovePosition(m, 3); err != nil {
		t.Fatalf("move: %v", err)
	}
	if m.Offset() != 3 {
		t.Fatalf("offset=%d, want 3", m.Offset())
	}
	if err := c.MovePosition(m, 4); !errors.Is(err, ErrInvalidOffset) {
		t.Fatalf("err=%v, want ErrInvalidOffset", err)
	}

	c.ReleasePosition(m)
	if c.Positions() != 0 || m.Live() {
		t.Fatalf("expected released mark")
	}
	_, _ = c.InsertString(0, "zz")
	if m.Offset() != 3 {
		t.Fatalf("released mark moved to %d", m.Offset())
	}
	if err := c.MovePosition(m, 0); !errors.Is(err, ErrReleasedMark) {
		t.Fatalf("move released: err=%v, want ErrReleasedMark", err)
	}
	if err := c.MovePosition(nil, 0); !errors.Is(err, ErrReleasedMark) {
		t.Fatalf("move nil: err=%v, want ErrReleasedMark", err)
	}
	c.ReleasePosition(m)
	c.ReleasePosition(nil)
}

func TestMarks_UndoRestoresCollapsedMarks(t *testing.T) {
	c := New("hello world", Options{})
	inside, _ := c.CreatePosition(8, BiasBackward)
	end, _ := c.CreatePosition(11, BiasBackward)
	start, _ := c.CreatePosition(6, BiasForward)

	_, _ = c.Remove(6, 5)
	for name, m := range map[string]*Mark{"inside": inside, "end": end, "start": start} {
		if got := m.Offset(); got != 6 {
			t.Fatalf("%s after remove=%d, want 6", name, got)
		}
	}

	c.Undo()
	if got, want := c.String(), "hello world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	for name, tc := range map[string]struct {
		m    *Mark
		want int
	}{
		"inside": {inside, 8},
		"end":    {end, 11},
		"start":  {start, 6},
	} {
		if got := tc.m.Offset(); got != tc.want {
			t.Fatalf("%s after undo=%d, want %d", name, got, tc.want)
		}
	}

	c.Redo()
	if got := inside.Offset(); got != 6 {
		t.Fatalf("inside after redo=%d, want 6", got)
	}
	c.Undo()
	if got := inside.Offset(); got != 8 {
		t.Fatalf("inside after second undo=%d, want 8", got)
	}
}

func TestMarks_UndoApplyRestoresEachEdit(t *testing.T) {
	c := New("abcdefgh", Options{})
	first, _ := c.CreatePosition(2, BiasBackward)
	second, _ := c.CreatePosition(7, BiasBackward)

	if err := c.Apply(
		TextEdit{Offset: 1, Length: 2, Text: "X"},
		TextEdit{Offset: 4, Length: 2, Text: ""},
	); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, want := c.String(), "aXdeh"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	c.Undo()
	if got, want := c.String(), "abcdefgh"; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
	if first.Offset() != 2 || second.Offset() != 7 {
		t.Fatalf("marks after undo=%d,%d, want 2,7", first.Offset(), second.Offset())
	}
}

func TestMarks_UndoSkipsReleasedMarks(t *testing.T) {
	c := New("abcdef", Options{})
	m, _ := c.CreatePosition(4, BiasBackward)
	_, _ = c.Remove(2, 3)
	c.ReleasePosition(m)

	c.Undo()
	if got := m.Offset(); got != 2 {
		t.Fatalf("released mark moved to %d", got)
	}
}

func TestMarks_CreateOutOfRange(t *testing.T) {
	c := New("abc", Options{})
	if _, err := c.CreatePosition(4, BiasForward); !errors.Is(err, ErrInvalidOffset) {
		t.Fatalf("err=%v, want ErrInvalidOffset", err)
	}
	if m, err := c.CreatePosition(3, BiasForward); err != nil || m.Offset() != 3 {
		t.Fatalf("mark at end: %v", err)
	}
}
