// SPDX-License-Identifier: MIT

// Package builder constructs square-sum graphs.
//
//	BuildGraph(n, opts...)  graph on 1..n in one call
//	GrowGraph(g, oracle)    append node Order()+1 and wire it
//	GrowTo(g, oracle, n)    repeat GrowGraph until Order()==n
//
// BuildGraph is literally GrowTo on an empty graph, so building at order n
// and growing one node at a time produce identical edge sets by construction.
// The oracle is extended to 2i-1 before node i is wired, which is the largest
// sum i can form with an earlier partner (the same bound the graph is first
// built with: squares up to 2·limit−1).
//
// Options follow the package convention: option constructors validate and
// panic on meaningless input; building itself never panics.
package builder
