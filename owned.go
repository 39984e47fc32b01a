package eqparts

import "iter"

// Owned yields independently allocated parts of a slice it has taken over.
type Owned[Slice ~[]E, E any] struct {
	buf Slice
	cur cursor
}

// Take takes s over and returns an iterator over n near-equal contiguous
// parts of it.
//
// Each part is copied into its own allocation, and the elements it was
// copied from are zeroed in s, so parts may be passed to other goroutines
// without synchronization. The caller must not use s after calling Take.
// Extraction is linear in len(s) in total.
//
// Take fails with [ErrInvalidParts] if n is less than 1.
func Take[Slice ~[]E, E any](s Slice, n int) (*Owned[Slice, E], error) {
	plan, err := NewPlan(len(s), n)
	if err != nil {
		return nil, err
	}

	return &Owned[Slice, E]{
		buf: s,
		cur: newCursor(plan),
	}, nil
}

// Next returns the next part. It reports false once the slice is exhausted.
func (o *Owned[Slice, E]) Next() (Slice, bool) {
	if len(o.buf) == 0 {
		var zero Slice
		return zero, false
	}

	size := o.cur.next()
	src := o.buf[:size]

	part := make(Slice, size)
	copy(part, src)
	clear(src)

	o.buf = o.buf[size:]
	if len(o.buf) == 0 {
		// Drop the source backing array as soon as the last part is out.
		o.buf = nil
	}

	return part, true
}

// All returns a single-use sequence over the parts left in the iterator.
func (o *Owned[Slice, E]) All() iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		for {
			part, ok := o.Next()
			if !ok || !yield(part) {
				return
			}
		}
	}
}

// Remaining returns the number of elements that are not yielded yet.
func (o *Owned[Slice, E]) Remaining() int {
	return len(o.buf)
}

// Plan returns the plan the iterator follows.
func (o *Owned[Slice, E]) Plan() Plan {
	return o.cur.plan
}
