// SPDX-License-Identifier: MIT
//
// File: oracle.go
// Role: cached ascending prefix of squares with membership queries.

package squares

import "slices"

// Oracle caches the ascending squares up to a bound that only ever grows.
// It is not safe for concurrent mutation; the search runs single-threaded.
type Oracle struct {
	bound   int   // every square ≤ bound is cached
	squares []int // ascending, squares[k] == (k+1)^2
}

// NewOracle returns an Oracle whose cache covers every square ≤ bound.
func NewOracle(bound int) *Oracle {
	o := &Oracle{}
	o.Extend(bound)

	return o
}

// Extend grows the cache to cover bound. Smaller bounds are a no-op.
//
// Complexity: O(√bound).
func (o *Oracle) Extend(bound int) {
	if bound <= o.bound {
		return
	}
	last := 0
	if k := len(o.squares); k > 0 {
		last = o.squares[k-1]
	}
	for sq := range UpTo(bound) {
		if sq > last {
			o.squares = append(o.squares, sq)
		}
	}
	o.bound = bound
}

// Bound reports the largest value the cache is known to cover.
func (o *Oracle) Bound() int { return o.bound }

// Squares returns the cached prefix. Callers must treat it as read-only;
// it stays valid until the next Extend.
func (o *Oracle) Squares() []int { return o.squares }

// Contains reports whether x is a perfect square, extending the cache when x
// lies beyond the current bound.
//
// Complexity: O(log √x) after the cache covers x.
func (o *Oracle) Contains(x int) bool {
	if x <= 0 {
		return false
	}
	o.Extend(x)
	_, found := slices.BinarySearch(o.squares, x)

	return found
}
