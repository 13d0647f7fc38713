// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, results and options for the Hamiltonian search.

package hamilton

import (
	"errors"
	"math/rand"
)

// Expected, caller-recoverable outcomes.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("hamilton: graph is nil")

	// ErrNotConnected means the graph has more than one connected component
	// (or none), so no Hamiltonian path exists at this order.
	ErrNotConnected = errors.New("hamilton: graph not connected")

	// ErrNoNeighbours means the seeder picked an isolated start node.
	ErrNoNeighbours = errors.New("hamilton: start node has no neighbours")

	// ErrTimeout means the iteration budget ran out without a full path.
	// It is inconclusive: a path may still exist.
	ErrTimeout = errors.New("hamilton: search budget exhausted")

	// ErrInvalidSeed wraps a seed sequence that cannot form a path.
	ErrInvalidSeed = errors.New("hamilton: invalid seed")

	// ErrInvalidParams is returned for WithParams values that cannot drive the loop.
	ErrInvalidParams = errors.New("hamilton: invalid search parameters")
)

// Invariant violations. These signal a bug, never a search outcome.
var (
	// ErrPivotNotFound means a rotation pivot was not on the path.
	ErrPivotNotFound = errors.New("hamilton: pivot not on path")

	// ErrTailNotFound means the path was too short to have a predecessor of its tail.
	ErrTailNotFound = errors.New("hamilton: tail predecessor missing")
)

// Validation failures of CheckSumSquares' stricter sibling ValidatePath.
var (
	// ErrNotPermutation means the sequence is not a permutation of 1..n.
	ErrNotPermutation = errors.New("hamilton: not a permutation of 1..n")

	// ErrNotSquareSum means some adjacent pair does not sum to a square.
	ErrNotSquareSum = errors.New("hamilton: adjacent pair is not a square sum")
)

// IsInvariantViolation reports whether err signals a broken internal
// invariant. Callers must abort rather than retry on such errors.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrPivotNotFound) || errors.Is(err, ErrTailNotFound)
}

// Result is the outcome of a single search.
type Result struct {
	// Path covers every node as 1-indexed integers; nil unless the search succeeded.
	Path []int

	// Longest is the longest dead-end path observed (1-indexed). Diagnostics only.
	Longest []int

	// Iterations counts loop iterations across all resets.
	Iterations int

	// Resets counts abandoned walks.
	Resets int

	// Seeded reports whether the walk started from a caller-supplied seed.
	Seeded bool
}

// Option configures a search or an enumeration.
type Option func(*config)

// config is the resolved option set.
type config struct {
	rng    *rand.Rand
	params *Params
	err    error
}

// newConfig applies opts in order over the default seed policy.
func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}

	return c
}

// WithRand supplies the random stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("hamilton: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a deterministic stream; seed 0 maps to the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithParams replaces the order-derived parameters. Intended for tuning
// experiments and tests; invalid values surface as ErrInvalidParams.
func WithParams(p Params) Option {
	return func(c *config) {
		if err := p.Validate(); err != nil {
			c.err = err
			return
		}
		c.params = &p
	}
}
