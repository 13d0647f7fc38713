// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: square-sum path verification.

package hamilton

import (
	"fmt"

	"github.com/milliams/square-sum/squares"
)

// CheckSumSquares reports whether every adjacent pair of seq sums to a
// perfect square. Sequences shorter than two are trivially valid.
//
// Complexity: O(len(seq)).
func CheckSumSquares(seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if !squares.IsSquare(seq[i-1] + seq[i]) {
			return false
		}
	}

	return true
}

// ValidatePath checks that seq is a permutation of 1..n whose adjacent pairs
// all sum to squares. It returns ErrNotPermutation or ErrNotSquareSum with
// the offending position.
func ValidatePath(seq []int, n int) error {
	if len(seq) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(seq), n)
	}
	seen := make([]bool, n+1)
	for i, x := range seq {
		if x < 1 || x > n {
			return fmt.Errorf("%w: value %d at %d out of range", ErrNotPermutation, x, i)
		}
		if seen[x] {
			return fmt.Errorf("%w: value %d repeated at %d", ErrNotPermutation, x, i)
		}
		seen[x] = true
		if i > 0 && !squares.IsSquare(seq[i-1]+x) {
			return fmt.Errorf("%w: %d+%d at %d", ErrNotSquareSum, seq[i-1], x, i)
		}
	}

	return nil
}
