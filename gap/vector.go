package gap

import "slices"

// DefaultCapacity is used by New when the requested capacity is not positive.
const DefaultCapacity = 10

// Stats counts data movement inside a Vector.
type Stats struct {
	Copies int // contiguous copies performed to move the gap
	Moved  int // items moved by those copies
	Grows  int // backing array reallocations
	Grown  int // items carried over into reallocated arrays
}

// Vector is an ordered sequence of T stored in a gap buffer.
//
// The backing array holds content in [0, gapStart) and [gapEnd, cap).
// Invariant: 0 <= gapStart <= gapEnd <= cap.
type Vector[T any] struct {
	array    []T
	gapStart int
	gapEnd   int

	growth GrowthPolicy
	stats  Stats

	listeners    []listenerEntry
	nextListener int
}

// New returns an empty Vector whose backing array holds capacity items.
func New[T any](capacity int, opts ...Option) *Vector[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	o := options{growth: DefaultGrowth}
	for _, opt := range opts {
		opt(&o)
	}
	return &Vector[T]{
		array:    make([]T, capacity),
		gapStart: 0,
		gapEnd:   capacity,
		growth:   o.growth,
	}
}

// Len returns the logical length.
func (v *Vector[T]) Len() int { return len(v.array) - (v.gapEnd - v.gapStart) }

// Cap returns the backing array capacity.
func (v *Vector[T]) Cap() int { return len(v.array) }

// Gap returns the physical gap bounds [start, end).
func (v *Vector[T]) Gap() (start, end int) { return v.gapStart, v.gapEnd }

// Stats returns the movement counters accumulated since creation or the last
// ResetStats.
func (v *Vector[T]) Stats() Stats { return v.stats }

func (v *Vector[T]) ResetStats() { v.stats = Stats{} }

// Backing exposes the backing array. It is valid until the next mutation and
// is meant for filling slots reserved by Open.
func (v *Vector[T]) Backing() []T { return v.array }

// Physical maps a logical position to its physical index.
func (v *Vector[T]) Physical(position int) int {
	if position < v.gapStart {
		return position
	}
	return position + (v.gapEnd - v.gapStart)
}

// At returns the item at logical index i. It panics when i is out of range,
// like slice indexing.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.Len() {
		panic(&BadLocationError{Op: "at", Offset: i, Length: 1, Size: v.Len()})
	}
	return v.array[v.Physical(i)]
}

// Open reserves count slots at logical position and returns the physical index
// of the first one. The caller writes the new items into Backing() starting at
// that index before the next mutation.
//
// With count == 0 nothing moves; the returned index is the physical position
// that logical position currently maps to.
func (v *Vector[T]) Open(position, count int) (int, error) {
	if err := v.checkInsert("open", position, count); err != nil {
		return 0, err
	}
	at := v.open(position, count)
	v.notify(position, count)
	return at, nil
}

// Insert inserts items at logical position. items may be a view returned by
// Slice or Chunks of the same vector.
func (v *Vector[T]) Insert(position int, items ...T) error {
	if err := v.checkInsert("insert", position, len(items)); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	items = slices.Clone(items)
	at := v.open(position, len(items))
	copy(v.array[at:at+len(items)], items)
	v.notify(position, len(items))
	return nil
}

// Delete removes count items starting at logical position.
func (v *Vector[T]) Delete(position, count int) error {
	if err := v.checkRange("delete", position, count); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	v.close(position, count)
	v.notify(position, -count)
	return nil
}

// Replace substitutes removeCount items at position with items.
//
// Listeners see the removal first and then the insertion, both at position.
// Like Insert, items may alias the vector's own storage.
func (v *Vector[T]) Replace(position, removeCount int, items []T) error {
	if err := v.checkRange("replace", position, removeCount); err != nil {
		return err
	}
	v.replace(position, removeCount, slices.Clone(items))
	v.notify(position, -removeCount)
	v.notify(position, len(items))
	return nil
}

func (v *Vector[T]) checkInsert(op string, position, count int) error {
	if position < 0 || position > v.Len() || count < 0 {
		return &BadLocationError{Op: op, Offset: position, Length: count, Size: v.Len()}
	}
	return nil
}

func (v *Vector[T]) checkRange(op string, position, count int) error {
	n := v.Len()
	if position < 0 || count < 0 || position > n || count > n-position {
		return &BadLocationError{Op: op, Offset: position, Length: count, Size: n}
	}
	return nil
}

func (v *Vector[T]) replace(position, removeCount int, items []T) {
	addCount := len(items)
	switch {
	case addCount == 0:
		v.close(position, removeCount)
	case removeCount > addCount:
		// The gap ends up at position+addCount, so the head region is
		// physically contiguous and unshifted.
		v.close(position+addCount, removeCount-addCount)
		copy(v.array[position:position+addCount], items)
	case removeCount < addCount:
		extra := addCount - removeCount
		at := v.open(position+removeCount, extra)
		copy(v.array[at:at+extra], items[removeCount:])
		copy(v.array[position:position+removeCount], items[:removeCount])
	default:
		v.overwrite(position, items)
	}
}

// overwrite writes items over the same number of logical slots without moving
// the gap.
func (v *Vector[T]) overwrite(position int, items []T) {
	head := 0
	if position < v.gapStart {
		head = min(len(items), v.gapStart-position)
		copy(v.array[position:position+head], items[:head])
	}
	if head < len(items) {
		at := v.Physical(position + head)
		copy(v.array[at:], items[head:])
	}
}

func (v *Vector[T]) open(position, count int) int {
	gapSize := v.gapEnd - v.gapStart
	if count == 0 {
		if position > v.gapStart {
			position += gapSize
		}
		return position
	}
	v.shiftGap(position)
	if count >= gapSize {
		v.shiftEnd(len(v.array) - gapSize + count)
	}
	v.gapStart += count
	return position
}

func (v *Vector[T]) close(position, count int) {
	if count == 0 {
		return
	}
	end := position + count
	newGapSize := (v.gapEnd - v.gapStart) + count
	switch {
	case end <= v.gapStart:
		if v.gapStart != end {
			v.shiftGap(end)
		}
		v.gapStart -= count
		clear(v.array[v.gapStart : v.gapStart+count])
	case position >= v.gapStart:
		if v.gapStart != position {
			v.shiftGap(position)
		}
		clear(v.array[v.gapEnd : v.gapEnd+count])
		v.gapEnd = v.gapStart + newGapSize
	default:
		// The range straddles the gap: only the bounds move.
		newGapEnd := position + newGapSize
		clear(v.array[position:v.gapStart])
		clear(v.array[v.gapEnd:newGapEnd])
		v.gapStart = position
		v.gapEnd = newGapEnd
	}
}

// shiftGap moves the gap so that it starts at newGapStart, copying only the
// items between the old and new location.
func (v *Vector[T]) shiftGap(newGapStart int) {
	if newGapStart == v.gapStart {
		return
	}
	oldGapStart, oldGapEnd := v.gapStart, v.gapEnd
	dg := newGapStart - oldGapStart
	newGapEnd := oldGapEnd + dg
	v.gapStart = newGapStart
	v.gapEnd = newGapEnd

	if dg > 0 {
		v.move(oldGapStart, oldGapEnd, dg)
		// Vacated slots now sit inside the gap.
		clear(v.array[max(oldGapEnd, newGapStart):newGapEnd])
	} else {
		v.move(newGapEnd, newGapStart, -dg)
		clear(v.array[newGapStart:min(oldGapStart, newGapEnd)])
	}
}

func (v *Vector[T]) move(dst, src, n int) {
	copy(v.array[dst:dst+n], v.array[src:src+n])
	v.stats.Copies++
	v.stats.Moved += n
}

// shiftEnd reallocates the backing array so it can hold required items,
// keeping the content after the gap at the end of the new array.
func (v *Vector[T]) shiftEnd(required int) {
	oldCap := len(v.array)
	oldGapEnd := v.gapEnd
	upperSize := oldCap - oldGapEnd

	newCap := v.growth(oldCap, required)
	if newCap < required+1 {
		newCap = required + 1
	}
	newGapEnd := newCap - upperSize

	grown := make([]T, newCap)
	copy(grown, v.array[:v.gapStart])
	copy(grown[newGapEnd:], v.array[oldGapEnd:])

	v.array = grown
	v.gapEnd = newGapEnd
	v.stats.Grows++
	v.stats.Grown += v.gapStart + upperSize
}
