// SPDX-License-Identifier: MIT

// Package core provides the Graph Store of the square-sum module: an
// undirected, unweighted adjacency structure over nodes 0..n-1 where node
// i-1 stands for the integer i.
//
// The graph is append-only. Nodes arrive in increasing order through AddNode,
// and ConnectNewNode wires the newest node to every earlier partner it sums
// to a perfect square with. After every Grow step the invariant holds:
//
//	for any present nodes u<v, HasEdge(u, v) ⇔ (u+1)+(v+1) is a perfect square
//
// Edges are derived data; there is no public AddEdge. Inserting an edge that
// already exists is a no-op, so the graph never carries multi-edges or loops.
//
// Concurrency:
//
//	A Graph is owned by a single call frame (the growth driver or a test). It
//	carries no locks; share it read-only or not at all.
//
// Algorithms take the narrow Adjacency interface so they can be exercised on
// hand-built adjacency in tests.
package core
