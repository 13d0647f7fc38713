// Package squaresum searches for square-sum Hamiltonian paths: orderings of
// the integers 1..n in which every adjacent pair sums to a perfect square.
//
// 15 is the smallest n that admits one:
//
//	8 1 15 10 6 3 13 12 4 5 11 14 2 7 9
//	 9 16 25 16 9 16 25 16 9 16 25 16 9 16
//
// The problem is a Hamiltonian path search on the square-sum graph, whose
// node i is joined to node j when i+j is a square. The graph is grown one
// node at a time and searched with a randomized rotation heuristic, each
// order seeded with the path found for the previous one.
//
// Packages:
//
//	squares/   perfect squares: lazy sequences, exact roots, a growing oracle
//	core/      the append-only adjacency store
//	builder/   square-sum graph construction and one-node growth
//	bfs/       breadth-first traversal and connected components
//	path/      the mutable path state (push, backtrack, reverse, rotate)
//	hamilton/  rotation search, the path enumerator and verification
//	growth/    the per-order driver with logging, tracing and metrics
//	store/     BadgerDB catalog of found paths
//	metrics/   Prometheus instruments
//	config/    YAML run configuration
//
// The squaresum command (cmd/squaresum) wires them together:
//
//	go run ./cmd/squaresum run --start 1 --end 500 --store ./paths
//	go run ./cmd/squaresum run --find all --end 40
//	go run ./cmd/squaresum check 8 1 15 10 6 3 13 12 4 5 11 14 2 7 9
//	go run ./cmd/squaresum graph 15 --edges
package squaresum
