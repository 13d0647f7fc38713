// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: the only mutations of a Graph: node append and square-sum wiring.

package core

// AddNode appends the next node (value Order()+1) with no edges and returns
// its id. It must be followed by ConnectNewNode to restore the invariant.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode() int {
	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// ConnectNewNode wires the newest node to its earlier square-sum partners.
//
// For the newest node with value i, every square sq in ascending squares with
// i < sq ≤ 2i-1 yields the partner j = sq-i ∈ [1, i-1] and the edge
// (i-1, j-1). squares must be ascending and cover 2i-1; entries outside the
// window are skipped. Returns the number of edges inserted.
//
// Complexity: O(|squares| ) scan plus O(deg) per insert.
func (g *Graph) ConnectNewNode(squares []int) int {
	if len(g.adj) == 0 {
		return 0
	}
	i := len(g.adj) // value of the newest node
	hi := 2*i - 1
	added := 0
	for _, sq := range squares {
		if sq <= i {
			continue
		}
		if sq > hi {
			break
		}
		if g.addEdge(i-1, sq-i-1) {
			added++
		}
	}

	return added
}

// Grow appends the next node and connects it. Returns the new node id.
func (g *Graph) Grow(squares []int) int {
	v := g.AddNode()
	g.ConnectNewNode(squares)

	return v
}

// addEdge inserts the undirected edge u–v unless it exists or is a loop.
func (g *Graph) addEdge(u, v int) bool {
	if u == v || g.HasEdge(u, v) {
		return false
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.size++

	return true
}
