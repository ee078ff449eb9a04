package buffer

import (
	"strings"

	"github.com/iw2rmb/gapbuffer/gap"
)

type Options struct {
	Capacity     int              // initial backing capacity; grown to fit the initial text
	HistoryLimit int              // default: 1000; negative disables undo
	Growth       gap.GrowthPolicy // default: gap.DefaultGrowth
}

// Layout describes the backing storage of a Content.
type Layout struct {
	Capacity int
	GapStart int
	GapEnd   int
}

// Content is mutable rune storage with auto-adjusting marks, change records
// and undo history.
type Content struct {
	text    *gap.Vector[rune]
	version uint64
	marks   markSet

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Content {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	rs := []rune(text)

	capacity := opt.Capacity
	if capacity <= len(rs) && len(rs) > 0 {
		capacity = len(rs) + gap.DefaultCapacity
	}
	var gopts []gap.Option
	if opt.Growth != nil {
		gopts = append(gopts, gap.WithGrowth(opt.Growth))
	}

	c := &Content{
		text: gap.New[rune](capacity, gopts...),
		opt:  opt,
	}
	_ = c.text.Insert(0, rs...)
	c.text.ResetStats()
	c.text.AddListener(&c.marks)
	return c
}

// Len returns the content length in runes.
func (c *Content) Len() int { return c.text.Len() }

func (c *Content) Version() uint64 { return c.version }

func (c *Content) String() string {
	head, tail, _ := c.text.Chunks(0, c.text.Len())
	var sb strings.Builder
	sb.Grow(len(head) + len(tail))
	for _, r := range head {
		sb.WriteRune(r)
	}
	for _, r := range tail {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Text returns n runes starting at offset.
func (c *Content) Text(offset, n int) (string, error) {
	rs, err := c.text.Slice(offset, n)
	if err != nil {
		return "", err
	}
	return string(rs), nil
}

// Segment returns n runes starting at offset without copying when possible.
//
// If the range crosses the gap, a partial Segment returns only the runes
// before the gap (callers continue from offset+len), while a full Segment
// returns a copy. The result must not be modified or kept across edits.
func (c *Content) Segment(offset, n int, partial bool) ([]rune, error) {
	head, tail, err := c.text.Chunks(offset, n)
	if err != nil {
		return nil, err
	}
	if len(tail) == 0 || partial {
		return head, nil
	}
	return c.text.AppendTo(make([]rune, 0, n), offset, n)
}

func (c *Content) RuneAt(offset int) (rune, error) {
	if offset < 0 || offset >= c.text.Len() {
		return 0, badLocation("rune", offset, 1, c.text.Len())
	}
	return c.text.At(offset), nil
}

func (c *Content) Layout() Layout {
	start, end := c.text.Gap()
	return Layout{Capacity: c.text.Cap(), GapStart: start, GapEnd: end}
}

// Stats returns data movement counters of the backing gap buffer.
func (c *Content) Stats() gap.Stats { return c.text.Stats() }
