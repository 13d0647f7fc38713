// SPDX-License-Identifier: MIT
//
// File: seed.go
// Role: random two-node starting paths.

package hamilton

import (
	"fmt"
	"math/rand"

	"github.com/milliams/square-sum/core"
	"github.com/milliams/square-sum/path"
)

// seedPath starts a walk on a random node and one of its random neighbours.
func seedPath(g core.Adjacency, r *rand.Rand) (*path.Path, error) {
	n := g.Order()
	start := r.Intn(n)
	nbrs := g.Neighbors(start)
	if len(nbrs) == 0 {
		return nil, fmt.Errorf("node %d: %w", start, ErrNoNeighbours)
	}

	p := path.New(n)
	if err := p.Push(start); err != nil {
		return nil, fmt.Errorf("seed at node %d: %w", start, err)
	}
	if err := p.Push(pick(r, nbrs)); err != nil {
		return nil, fmt.Errorf("seed from node %d: %w", start, err)
	}

	return p, nil
}
