// SPDX-License-Identifier: MIT

// Command squaresum searches for square-sum Hamiltonian paths: orderings of
// 1..n in which every adjacent pair sums to a perfect square.
//
//	squaresum run --start 1 --end 200
//	squaresum run --config run.yaml --find all
//	squaresum check 8 1 15 10 6 3 13 12 4 5 11 14 2 7 9
//	squaresum graph 15 --edges
package main

import (
	"os"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitFailure)
	}
	os.Exit(exitOK)
}
