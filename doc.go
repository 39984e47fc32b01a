// Package eqparts splits slices into a requested number of contiguous,
// near-equal-size parts.
//
// For a slice of length N split into K parts every part has either
// ceil(N/K) or ceil(N/K)-1 elements, and the larger parts always come first.
// When N < K only N single-element parts are produced; an empty slice
// produces no parts at all. Empty parts are never emitted.
//
// Two flavors are provided:
//
//   - [Split] yields views sharing the backing array of the source slice.
//   - [Take] takes the source slice over and yields freshly allocated parts
//     that can be handed to independent goroutines.
//
// Both iterators are lazy and single-pass: every call to Next advances the
// cursor, and the parts cannot be produced again without a new call to
// Split or Take.
package eqparts
