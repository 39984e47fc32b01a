package eqparts

import "iter"

// Views yields contiguous views of a slice.
// Every view shares the backing array of the slice passed to [Split].
type Views[Slice ~[]E, E any] struct {
	rest Slice
	cur  cursor
}

// Split returns an iterator over n near-equal contiguous views of s.
//
// The views are clipped to their length, so appending to one of them
// never overwrites elements of the next view. s must not be modified
// while the views are in use.
//
// Split fails with [ErrInvalidParts] if n is less than 1.
func Split[Slice ~[]E, E any](s Slice, n int) (*Views[Slice, E], error) {
	plan, err := NewPlan(len(s), n)
	if err != nil {
		return nil, err
	}

	return &Views[Slice, E]{
		rest: s,
		cur:  newCursor(plan),
	}, nil
}

// Next returns the next view. It reports false once the slice is exhausted.
func (v *Views[Slice, E]) Next() (Slice, bool) {
	if len(v.rest) == 0 {
		var zero Slice
		return zero, false
	}

	size := v.cur.next()

	part := v.rest[:size:size]
	v.rest = v.rest[size:]

	return part, true
}

// All returns a single-use sequence over the views left in the iterator.
func (v *Views[Slice, E]) All() iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		for {
			part, ok := v.Next()
			if !ok || !yield(part) {
				return
			}
		}
	}
}

// Remaining returns the number of elements that are not yielded yet.
func (v *Views[Slice, E]) Remaining() int {
	return len(v.rest)
}

// Plan returns the plan the iterator follows.
func (v *Views[Slice, E]) Plan() Plan {
	return v.cur.plan
}
