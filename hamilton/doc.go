// SPDX-License-Identifier: MIT

// Package hamilton searches square-sum graphs for Hamiltonian paths with a
// randomized rotation heuristic, and enumerates the distinct paths it finds.
//
// Search / FindHamiltonian
//
//	A single search walks a path from a seed (or a random edge), extending the
//	tail with a random unvisited neighbour. At a dead end it applies the
//	classical rotation move: pick a neighbour of the tail (other than its
//	predecessor) as pivot and reverse the suffix after it, exposing a new tail.
//	Periodic reversal, backtracking and resets keep the walk from settling in
//	one region. Every rate is derived from the graph order (see DeriveParams).
//
//	Outcomes:
//	  - path covering every node, 1-indexed;
//	  - ErrNotConnected: more than one component, no iteration spent;
//	  - ErrTimeout: the reset budget ran out (inconclusive, not a proof);
//	  - ErrPivotNotFound / ErrTailNotFound: internal invariant broken, fatal.
//
// FindAllPaths
//
//	Repeats unseeded searches, canonicalizes each path so that its first value
//	is ≤ its last, and stops once the run of attempts that produced nothing new
//	exceeds max(3, 0.7·tries). IsMagic flags paths whose end can absorb n+1.
//
// Randomness
//
//	Nothing here touches the global math/rand source. Pass WithRand or
//	WithSeed; without either a fixed default seed is used, so every call is
//	reproducible.
//
// Concurrency
//
//	A search owns its path and RNG; a *rand.Rand must not be shared between
//	goroutines.
package hamilton
