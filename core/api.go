// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only getters over the graph store.

package core

import "sort"

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return g.size }

// Neighbors returns the adjacency of v, or nil when v is out of range.
// The returned slice aliases internal storage and is only valid until the
// next mutation; callers must not modify it.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= len(g.adj) {
		return nil
	}

	return g.adj[v]
}

// Degree returns the number of neighbours of v (0 when out of range).
func (g *Graph) Degree(v int) int { return len(g.Neighbors(v)) }

// HasEdge reports whether u and v are adjacent.
//
// Complexity: O(min(deg u, deg v)); square-sum degrees grow like O(√n).
func (g *Graph) HasEdge(u, v int) bool {
	a, b := g.Neighbors(u), g.Neighbors(v)
	if a == nil || b == nil {
		return false
	}
	if len(b) < len(a) {
		a, v = b, u
	}
	for _, w := range a {
		if w == v {
			return true
		}
	}

	return false
}

// Edges returns every edge once as [u, v] with u < v, sorted by (u, v).
// Intended for verification and diagnostics.
//
// Complexity: O(E log E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.size)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}
