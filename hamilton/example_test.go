package hamilton_test

import (
	"fmt"

	"github.com/milliams/square-sum/builder"
	"github.com/milliams/square-sum/hamilton"
)

// ExampleFindHamiltonian finds the square-sum arrangement of 1..15, the
// smallest order that admits one. It is unique up to reversal.
func ExampleFindHamiltonian() {
	g, _ := builder.BuildGraph(15)
	p, err := hamilton.FindHamiltonian(g, nil, hamilton.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(hamilton.Canonicalize(p))
	fmt.Println("valid:", hamilton.CheckSumSquares(p))
	// Output:
	// [8 1 15 10 6 3 13 12 4 5 11 14 2 7 9]
	// valid: true
}

// ExampleFindHamiltonian_notConnected shows the fast failure on 1..4, where
// only 1+3 is a square sum.
func ExampleFindHamiltonian_notConnected() {
	g, _ := builder.BuildGraph(4)
	_, err := hamilton.FindHamiltonian(g, nil)
	fmt.Println(err)
	// Output:
	// hamilton: graph not connected
}

// ExampleFindAllPaths enumerates 1..15 and flags the path as magic: 16
// sums to 25 with its last value 9.
func ExampleFindAllPaths() {
	g, _ := builder.BuildGraph(15)
	res, err := hamilton.FindAllPaths(g, hamilton.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("paths:", len(res.Paths), "magic:", len(res.Magic))
	// Output:
	// paths: 1 magic: 1
}
