// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Path type, constructors and sentinel errors.

package path

import "errors"

// Sentinel errors for path construction and mutation.
var (
	// ErrEmptySeed indicates FromSeed/FromValues received no nodes.
	ErrEmptySeed = errors.New("path: empty seed")

	// ErrDuplicateNode indicates a node is already on the path.
	ErrDuplicateNode = errors.New("path: duplicate node")

	// ErrNodeOutOfRange indicates a node id outside 0..order-1.
	ErrNodeOutOfRange = errors.New("path: node out of range")
)

// Path is an ordered sequence of distinct node ids over a fixed id space.
type Path struct {
	nodes  []int  // visit order
	member []bool // member[v] ⇔ v ∈ nodes
}

// New returns an empty path over node ids 0..order-1.
func New(order int) *Path {
	if order < 0 {
		order = 0
	}

	return &Path{
		nodes:  make([]int, 0, order),
		member: make([]bool, order),
	}
}

// FromSeed builds a path over 0..order-1 from node ids in visit order.
// The seed must be non-empty, in range and duplicate-free. Edges are not
// verified; that is the caller's responsibility.
//
// Complexity: O(order + len(seed)).
func FromSeed(order int, seed []int) (*Path, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	p := New(order)
	for _, v := range seed {
		if err := p.Push(v); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// FromValues is FromSeed for 1-indexed integers (value i ↔ node i-1).
func FromValues(order int, values []int) (*Path, error) {
	if len(values) == 0 {
		return nil, ErrEmptySeed
	}
	seed := make([]int, len(values))
	for i, x := range values {
		seed[i] = x - 1
	}

	return FromSeed(order, seed)
}

// Clone returns an independent copy.
func (p *Path) Clone() *Path {
	return &Path{
		nodes:  append(make([]int, 0, cap(p.nodes)), p.nodes...),
		member: append([]bool(nil), p.member...),
	}
}
