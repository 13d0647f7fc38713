// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, Adjacency interface, constructor.

package core

// Adjacency is the read-only view that traversal and search algorithms need.
// Node ids are dense: 0..Order()-1.
type Adjacency interface {
	// Order returns the number of nodes.
	Order() int

	// Neighbors returns the nodes adjacent to v in no particular order.
	// The slice must not be modified by the caller.
	Neighbors(v int) []int
}

// Graph is the square-sum graph store.
//
// adj[v] lists the neighbours of node v; size counts undirected edges once.
type Graph struct {
	adj  [][]int
	size int
}

// compile-time check
var _ Adjacency = (*Graph)(nil)

// NewGraph creates an empty Graph with storage preallocated for
// expectedOrder nodes. Negative hints are treated as zero.
//
// Complexity: O(expectedOrder) space for the outer slice.
func NewGraph(expectedOrder int) *Graph {
	if expectedOrder < 0 {
		expectedOrder = 0
	}

	return &Graph{adj: make([][]int, 0, expectedOrder)}
}
