package eqparts

import (
	"fmt"
	"iter"
)

// Plan describes how a sequence of a known length is split into parts.
//
// The first FullCount parts have FullSize elements, the following ShortCount
// parts have ShortSize elements. ShortSize is FullSize-1, or 0 when the
// sequence is empty.
type Plan struct {
	FullSize   int
	ShortSize  int
	FullCount  int
	ShortCount int
}

// NewPlan computes the plan for splitting n elements into k parts.
func NewPlan(n, k int) (Plan, error) {
	if k < 1 {
		return Plan{}, fmt.Errorf("%w: got %d", ErrInvalidParts, k)
	}

	if n < 0 {
		return Plan{}, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	full := n / k

	// full*k - n, computed without the multiplication to stay clear of overflow.
	var deficit int

	if r := n % k; r != 0 {
		full++
		deficit = k - r
	}

	return Plan{
		FullSize:   full,
		ShortSize:  max(0, full-1),
		FullCount:  k - deficit,
		ShortCount: deficit,
	}, nil
}

// Total returns the number of elements covered by the plan.
func (p Plan) Total() int {
	return p.FullCount*p.FullSize + p.ShortCount*p.ShortSize
}

// Parts returns the number of non-empty parts, i.e. how many parts
// an iterator built from this plan actually yields.
func (p Plan) Parts() int {
	switch {
	case p.FullSize == 0:
		return 0
	case p.ShortSize == 0:
		return p.FullCount
	default:
		return p.FullCount + p.ShortCount
	}
}

// Bounds returns the half-open index ranges [lo, hi) of the non-empty parts
// in emission order.
func (p Plan) Bounds() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		var lo int

		for i := range p.Parts() {
			size := p.ShortSize
			if i < p.FullCount {
				size = p.FullSize
			}

			if !yield(lo, lo+size) {
				return
			}

			lo += size
		}
	}
}

// cursor tracks how many full-size parts are still owed and picks the size
// of the next part.
type cursor struct {
	plan     Plan
	fullLeft int
}

func newCursor(p Plan) cursor {
	return cursor{
		plan:     p,
		fullLeft: p.FullCount,
	}
}

func (c *cursor) next() int {
	if c.fullLeft > 0 {
		c.fullLeft--
		return c.plan.FullSize
	}

	return c.plan.ShortSize
}
