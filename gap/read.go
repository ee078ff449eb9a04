package gap

// Chunks returns the logical range [position, position+count) as two views of
// the backing array. tail is empty unless the range crosses the gap.
//
// The views alias internal storage: do not modify them, and do not keep them
// across mutations.
func (v *Vector[T]) Chunks(position, count int) (head, tail []T, err error) {
	if err := v.checkRange("read", position, count); err != nil {
		return nil, nil, err
	}
	end := position + count
	switch {
	case end <= v.gapStart:
		return v.array[position:end:end], nil, nil
	case position >= v.gapStart:
		p := v.Physical(position)
		return v.array[p : p+count : p+count], nil, nil
	default:
		tailEnd := v.Physical(end)
		return v.array[position:v.gapStart:v.gapStart], v.array[v.gapEnd:tailEnd:tailEnd], nil
	}
}

// Slice returns the logical range [position, position+count). When the range
// does not cross the gap the result aliases internal storage and follows the
// same rules as Chunks; otherwise it is a fresh copy.
func (v *Vector[T]) Slice(position, count int) ([]T, error) {
	head, tail, err := v.Chunks(position, count)
	if err != nil {
		return nil, err
	}
	if len(tail) == 0 {
		return head, nil
	}
	out := make([]T, 0, count)
	out = append(out, head...)
	return append(out, tail...), nil
}

// AppendTo appends the logical range [position, position+count) to dst.
func (v *Vector[T]) AppendTo(dst []T, position, count int) ([]T, error) {
	head, tail, err := v.Chunks(position, count)
	if err != nil {
		return dst, err
	}
	dst = append(dst, head...)
	return append(dst, tail...), nil
}

// Values returns a copy of the whole logical content.
func (v *Vector[T]) Values() []T {
	out := make([]T, 0, v.Len())
	out = append(out, v.array[:v.gapStart]...)
	return append(out, v.array[v.gapEnd:]...)
}
