package buffer

import (
	"errors"
	"testing"
)

func TestContent_Apply_SequentialOffsets(t *testing.T) {
	c := New("abc", Options{})

	err := c.Apply(
		TextEdit{Offset: 3, Text: "d"},
		TextEdit{Offset: 0, Length: 1, Text: "A"},
		TextEdit{Offset: 4, Text: "!"},
	)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, want := c.String(), "Abcd!"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := c.Version(), uint64(1); got != want {
		t.Fatalf("version=%d, want %d", got, want)
	}
}

func TestContent_Apply_RejectsWholeBatch(t *testing.T) {
	c := New("abc", Options{})

	// The second edit is only valid if the first one shrank nothing.
	err := c.Apply(
		TextEdit{Offset: 0, Length: 2},
		TextEdit{Offset: 2, Length: 1, Text: "x"},
	)
	if !errors.Is(err, ErrInvalidOffset) {
		t.Fatalf("err=%v, want ErrInvalidOffset", err)
	}
	if got, want := c.String(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if c.Version() != 0 || c.CanUndo() {
		t.Fatalf("rejected batch must not bump version or history")
	}
}

func TestContent_Apply_NoEffectiveEdits(t *testing.T) {
	c := New("abc", Options{})
	if err := c.Apply(); err != nil {
		t.Fatalf("empty apply: %v", err)
	}
	if err := c.Apply(TextEdit{Offset: 1, Length: 1, Text: "b"}, TextEdit{Offset: 2}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if c.Version() != 0 {
		t.Fatalf("version=%d, want 0", c.Version())
	}
	if _, ok := c.LastChange(); ok {
		t.Fatalf("expected no change")
	}
}
