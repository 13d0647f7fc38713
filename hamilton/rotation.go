// SPDX-License-Identifier: MIT
//
// File: rotation.go
// Role: the rotation search loop.
//
// One iteration, in order:
//  1. every ReverseRate iterations reverse the path;
//  2. past ResetRate iterations abandon the walk and reseed (ignoring any
//     caller seed), resets++;
//  3. every BacktrackRate iterations drop BacktrackAmount tail entries;
//  4. extend the tail with a random unvisited neighbour, or at a dead end
//     rotate around a random pivot adjacent to the tail;
//  5. succeed when the path covers the graph;
//  6. time out once resets·ResetRate exceeds MaxIterations.

package hamilton

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/milliams/square-sum/bfs"
	"github.com/milliams/square-sum/core"
	"github.com/milliams/square-sum/path"
)

// FindHamiltonian returns a Hamiltonian path of g as 1-indexed integers.
// seed, when non-nil, is a 1-indexed path to resume from (typically the
// result for the previous order); it must be non-empty and duplicate-free,
// its edges are trusted.
func FindHamiltonian(g core.Adjacency, seed []int, opts ...Option) ([]int, error) {
	res, err := Search(g, seed, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs one rotation search and reports diagnostics alongside the
// path. On ErrTimeout the returned Result is non-nil and carries Longest.
func Search(g core.Adjacency, seed []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	return search(g, seed, cfg)
}

// search is Search after option resolution; the enumerator reuses it so a
// single stream drives every attempt.
func search(g core.Adjacency, seed []int, cfg config) (*Result, error) {
	n := g.Order()
	if n == 1 {
		return &Result{Path: []int{1}, Seeded: seed != nil}, nil
	}
	if bfs.Components(g) != 1 {
		return &Result{Seeded: seed != nil}, ErrNotConnected
	}

	params := DeriveParams(n)
	if cfg.params != nil {
		params = *cfg.params
	}
	s := &searcher{
		g:      g,
		n:      n,
		params: params,
		rng:    cfg.rng,
		cand:   make([]int, 0, 16),
	}

	return s.run(seed)
}

// searcher holds the state of one search call.
type searcher struct {
	g      core.Adjacency
	n      int
	params Params
	rng    *rand.Rand

	p       *path.Path
	longest []int // node ids of the longest dead-end path
	cand    []int // scratch buffer for neighbour candidates
}

func (s *searcher) run(seed []int) (*Result, error) {
	res := &Result{Seeded: seed != nil}

	var err error
	if seed != nil {
		s.p, err = path.FromValues(s.n, seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
		}
	} else if s.p, err = seedPath(s.g, s.rng); err != nil {
		return nil, err
	}

	iteration := 0
	for {
		res.Iterations++

		if iteration > 0 && iteration%s.params.ReverseRate == 0 {
			s.p.Reverse()
		}
		if iteration > s.params.ResetRate {
			if s.p, err = seedPath(s.g, s.rng); err != nil {
				return nil, err
			}
			res.Resets++
			iteration = 1
			continue
		}
		if iteration > 0 && iteration%s.params.BacktrackRate == 0 {
			s.p.Backtrack(s.params.BacktrackAmount)
		}
		if err = s.step(); err != nil {
			return nil, err
		}
		if s.p.Len() == s.n {
			res.Path = s.p.Values()
			res.Longest = res.Path
			return res, nil
		}
		if res.Resets*s.params.ResetRate > s.params.MaxIterations {
			res.Longest = values(s.longest)
			return res, ErrTimeout
		}
		iteration++
	}
}

// step extends the tail, or rotates when the tail is a dead end.
func (s *searcher) step() error {
	v := s.p.Last()
	nbrs := s.g.Neighbors(v)

	s.cand = s.cand[:0]
	for _, u := range nbrs {
		if !s.p.Contains(u) {
			s.cand = append(s.cand, u)
		}
	}
	if len(s.cand) > 0 {
		return s.p.Push(pick(s.rng, s.cand))
	}

	if s.p.Len() > len(s.longest) {
		s.longest = s.p.Nodes()
	}

	return s.rotate(v, nbrs)
}

// rotate reverses the suffix after a random pivot adjacent to tail v.
// Leaves the path unchanged when v has no neighbour besides its predecessor.
func (s *searcher) rotate(v int, nbrs []int) error {
	if s.p.Len() < 2 {
		return errors.Wrapf(ErrTailNotFound, "tail %d, path length %d", v, s.p.Len())
	}
	prev := s.p.At(s.p.Len() - 2)

	s.cand = s.cand[:0]
	for _, u := range nbrs {
		if u != prev {
			s.cand = append(s.cand, u)
		}
	}
	if len(s.cand) == 0 {
		return nil
	}

	pivot := pick(s.rng, s.cand)
	pos := s.p.IndexOf(pivot)
	if pos < 0 {
		return errors.Wrapf(ErrPivotNotFound, "pivot %d for tail %d, path length %d", pivot, v, s.p.Len())
	}
	s.p.RotateAfter(pos)

	return nil
}

// values converts node ids to 1-indexed integers.
func values(nodes []int) []int {
	if nodes == nil {
		return nil
	}
	out := make([]int, len(nodes))
	for i, v := range nodes {
		out[i] = v + 1
	}

	return out
}
