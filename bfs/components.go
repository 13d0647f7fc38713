// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: connected-component partition over an undirected adjacency.

package bfs

import "github.com/milliams/square-sum/core"

// Labels assigns every node the index of its connected component.
// Components are numbered 0,1,... in order of their smallest node id.
// Returns the labels and the component count; an empty or nil graph has 0.
//
// Complexity: O(V + E) time, O(V) space.
func Labels(g core.Adjacency) ([]int, int) {
	if g == nil {
		return nil, 0
	}
	n := g.Order()
	label := make([]int, n)

	// One walker across all roots: Depth marks nodes already labelled.
	w := newWalker(g, DefaultOptions(), n)
	count := 0
	for root := 0; root < n; root++ {
		if w.res.Reached(root) {
			continue
		}
		first := len(w.res.Order)
		w.enqueue(root, 0, -1)
		// DefaultOptions installs a hook that never fails.
		_ = w.loop()
		for _, v := range w.res.Order[first:] {
			label[v] = count
		}
		count++
	}

	return label, count
}

// Components returns the number of connected components of g.
func Components(g core.Adjacency) int {
	_, count := Labels(g)

	return count
}

// IsConnected reports whether g has exactly one component.
// The empty graph is not connected.
func IsConnected(g core.Adjacency) bool {
	return Components(g) == 1
}
