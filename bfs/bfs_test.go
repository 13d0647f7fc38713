package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milliams/square-sum/bfs"
	"github.com/milliams/square-sum/core"
	"github.com/milliams/square-sum/squares"
)

// adjList is a hand-built undirected adjacency.
type adjList [][]int

func (a adjList) Order() int            { return len(a) }
func (a adjList) Neighbors(v int) []int { return a[v] }

// chain 0-1-2-3 plus isolated 4
var chain = adjList{{1}, {0, 2}, {1, 3}, {2}, {}}

func squareSumGraph(n int) *core.Graph {
	sq := squares.Collect(2*n - 1)
	g := core.NewGraph(n)
	for g.Order() < n {
		g.Grow(sq)
	}
	return g
}

func TestBFS_DepthAndParents(t *testing.T) {
	res, err := bfs.BFS(chain, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, -1}, res.Depth)
	assert.Equal(t, []int{-1, 0, 1, 2, -1}, res.Parent)
	assert.False(t, res.Reached(4))
	assert.True(t, res.Reached(3))
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(chain, 1, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 0, 2}, res.Order)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(chain, 5)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.BFS(chain, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	stop := errors.New("stop")
	_, err = bfs.BFS(chain, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestLabels_HandBuilt(t *testing.T) {
	labels, count := bfs.Labels(chain)
	require.Equal(t, 2, count)
	assert.Equal(t, []int{0, 0, 0, 0, 1}, labels)
}

func TestComponents_SquareSum(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 2},
		{4, 3},
		{12, 3},
		{13, 2},
		{14, 1},
		{15, 1},
		{40, 1},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, bfs.Components(squareSumGraph(tc.n)), "n=%d", tc.n)
	}
}

func TestComponents_Empty(t *testing.T) {
	assert.Equal(t, 0, bfs.Components(core.NewGraph(0)))
	assert.Equal(t, 0, bfs.Components(nil))
	assert.False(t, bfs.IsConnected(core.NewGraph(0)))
	assert.True(t, bfs.IsConnected(squareSumGraph(15)))
}

func TestLabels_AgreeWithBFSReach(t *testing.T) {
	// components {0,3,5}, {1,4}, {2}
	g := adjList{{3}, {4}, {}, {0, 5}, {1}, {3}}
	labels, count := bfs.Labels(g)
	require.Equal(t, 3, count)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 0}, labels)

	for _, gr := range []adjList{g, chain} {
		labels, _ := bfs.Labels(gr)
		for u := range gr {
			res, err := bfs.BFS(gr, u)
			require.NoError(t, err)
			for v := range gr {
				assert.Equalf(t, res.Reached(v), labels[u] == labels[v], "u=%d v=%d", u, v)
			}
		}
	}
}
