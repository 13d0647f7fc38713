// SPDX-License-Identifier: MIT
//
// File: enumerate.go
// Role: repeated unseeded searches collecting distinct canonical paths.

package hamilton

import (
	"errors"
	"math"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/milliams/square-sum/core"
	"github.com/milliams/square-sum/squares"
)

// minStale is the floor of the diminishing-returns stopping rule.
const minStale = 3

// staleRatio scales the stopping bar with the number of attempts.
const staleRatio = 0.7

// Enumeration is the outcome of FindAllPaths.
type Enumeration struct {
	// Paths are the distinct canonical paths in lexicographic order.
	Paths [][]int

	// Magic is the subset of Paths that IsMagic accepts, same order.
	Magic [][]int

	// Tries counts every search attempt, successful or not.
	Tries int

	// Iterations sums search iterations across attempts.
	Iterations int
}

// FindAllPaths runs unseeded searches on g until attempts stop yielding new
// paths: it stops once the count of consecutive attempts that failed or
// repeated a known path exceeds max(3, 0.7·tries).
//
// ErrNotConnected is returned with an empty Enumeration. Invariant
// violations abort with the error.
func FindAllPaths(g core.Adjacency, opts ...Option) (*Enumeration, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	found := treeset.NewWith(compareSeq)
	out := &Enumeration{}
	stale := 0
	for {
		res, err := search(g, nil, cfg)
		out.Tries++
		if res != nil {
			out.Iterations += res.Iterations
		}
		switch {
		case err == nil:
			canon := Canonicalize(res.Path)
			if found.Contains(canon) {
				stale++
			} else {
				found.Add(canon)
				stale = 0
			}
		case errors.Is(err, ErrNotConnected):
			return out, err
		case errors.Is(err, ErrTimeout):
			stale++
		default:
			return nil, err
		}

		if float64(stale) > math.Max(minStale, staleRatio*float64(out.Tries)) {
			break
		}
	}

	out.Paths = make([][]int, 0, found.Size())
	for _, v := range found.Values() {
		out.Paths = append(out.Paths, v.([]int))
	}
	out.Magic, _ = Classify(out.Paths)

	return out, nil
}

// Canonicalize returns a copy of seq oriented so that its first value is
// not greater than its last. A path and its reverse canonicalize equally.
func Canonicalize(seq []int) []int {
	out := append([]int(nil), seq...)
	if len(out) > 1 && out[0] > out[len(out)-1] {
		for i, k := 0, len(out)-1; i < k; i, k = i+1, k-1 {
			out[i], out[k] = out[k], out[i]
		}
	}

	return out
}

// IsMagic reports whether a full path over 1..n can absorb n+1 at one of
// its ends, i.e. n+1 sums to a square with its first or last value.
func IsMagic(seq []int) bool {
	if len(seq) == 0 {
		return false
	}
	next := len(seq) + 1

	return squares.IsSquare(next+seq[0]) || squares.IsSquare(next+seq[len(seq)-1])
}

// Classify splits paths into magic and plain ones, preserving order.
func Classify(paths [][]int) (magic, plain [][]int) {
	for _, p := range paths {
		if IsMagic(p) {
			magic = append(magic, p)
		} else {
			plain = append(plain, p)
		}
	}

	return magic, plain
}

// compareSeq orders []int lexicographically, shorter prefixes first.
func compareSeq(a, b interface{}) int {
	x, y := a.([]int), b.([]int)
	for i := 0; i < len(x) && i < len(y); i++ {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}

	return 0
}
