// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over core.Adjacency and the
// connected-component partition the Hamiltonian search uses as its
// precondition: a Hamiltonian path cannot span two or more components.
//
//	BFS(g, start, opts...)  visit order, depth and parent links from one root
//	Labels(g)               component label per node, plus the count
//	Components(g)           component count only
//	IsConnected(g)          Components(g) == 1
//
// Traversal visits neighbours in adjacency order, so results are
// deterministic for a deterministic graph.
//
// Complexity: O(V + E) time, O(V) space for every entry point.
package bfs
