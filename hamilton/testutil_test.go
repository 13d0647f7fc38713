package hamilton_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milliams/square-sum/builder"
	"github.com/milliams/square-sum/core"
	"github.com/milliams/square-sum/hamilton"
)

// known square-sum paths (canonical orientation) with exactly one solution
// up to reversal.
var (
	path15 = []int{8, 1, 15, 10, 6, 3, 13, 12, 4, 5, 11, 14, 2, 7, 9}
	path16 = []int{8, 1, 15, 10, 6, 3, 13, 12, 4, 5, 11, 14, 2, 7, 9, 16}
	path17 = []int{16, 9, 7, 2, 14, 11, 5, 4, 12, 13, 3, 6, 10, 15, 1, 8, 17}
)

// adjList is a hand-built undirected adjacency.
type adjList [][]int

func (a adjList) Order() int            { return len(a) }
func (a adjList) Neighbors(v int) []int { return a[v] }

func mustGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n)
	require.NoError(t, err)
	return g
}

func reversed(a []int) []int {
	out := make([]int, len(a))
	for i, x := range a {
		out[len(a)-1-i] = x
	}
	return out
}

// searchRetry runs unseeded searches on independent streams until one
// succeeds; the heuristic is not guaranteed to succeed on every stream.
func searchRetry(t testing.TB, g core.Adjacency, attempts int) []int {
	t.Helper()
	for stream := uint64(0); stream < uint64(attempts); stream++ {
		got, err := hamilton.FindHamiltonian(g, nil, hamilton.WithRand(hamilton.DeriveRand(5, stream)))
		if err == nil {
			return got
		}
		require.ErrorIs(t, err, hamilton.ErrTimeout)
	}
	require.FailNow(t, "no path found", "%d attempts", attempts)
	return nil
}

func fmtSeq(a []int) string {
	return fmt.Sprint(a)
}
