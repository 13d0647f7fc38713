// SPDX-License-Identifier: MIT
//
// File: squares.go
// Role: lazy square sequences and the exact IsSquare predicate.

package squares

import (
	"iter"
	"math"
)

// All yields 1, 4, 9, ... without bound. Callers stop it by breaking out of
// the range loop. Iteration stops silently before the square would overflow int.
func All() iter.Seq[int] {
	return func(yield func(int) bool) {
		var r int
		for r = 1; r <= maxRoot; r++ {
			if !yield(r * r) {
				return
			}
		}
	}
}

// UpTo yields every perfect square sq with 1 ≤ sq ≤ bound in ascending order.
// A bound below 1 yields nothing. The sequence restarts on every range.
//
// Complexity: O(√bound) time, O(1) space.
func UpTo(bound int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for sq := range All() {
			if sq > bound {
				return
			}
			if !yield(sq) {
				return
			}
		}
	}
}

// Collect materializes UpTo(bound) into a fresh slice.
func Collect(bound int) []int {
	out := make([]int, 0, Root(bound))
	for sq := range UpTo(bound) {
		out = append(out, sq)
	}

	return out
}

// Root returns ⌊√x⌋ for x ≥ 0 and 0 for negative x.
// The float estimate is corrected in both directions so the result is exact
// for every int.
func Root(x int) int {
	if x <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(x)))
	if r > maxRoot {
		r = maxRoot
	}
	for r > 0 && r*r > x {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= x {
		r++
	}

	return r
}

// IsSquare reports whether x is a perfect square of a positive integer.
// Zero and negative numbers are never square-sum partners and report false.
func IsSquare(x int) bool {
	if x <= 0 {
		return false
	}
	r := Root(x)

	return r*r == x
}

// maxRoot is the largest r with r*r representable as int on this platform.
var maxRoot = int(math.Sqrt(float64(math.MaxInt)))
