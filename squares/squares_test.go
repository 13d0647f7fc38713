package squares_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milliams/square-sum/squares"
)

func TestUpTo_Ascending(t *testing.T) {
	got := slices.Collect(squares.UpTo(50))
	require.Equal(t, []int{1, 4, 9, 16, 25, 36, 49}, got)
}

func TestUpTo_BoundIsInclusive(t *testing.T) {
	assert.Equal(t, []int{1, 4, 9}, squares.Collect(9))
	assert.Equal(t, []int{1, 4}, squares.Collect(8))
	assert.Empty(t, squares.Collect(0))
	assert.Empty(t, squares.Collect(-5))
}

func TestUpTo_Restartable(t *testing.T) {
	seq := squares.UpTo(30)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Equal(t, first, second, "ranging twice must restart from 1")
}

func TestAll_BreakStopsIteration(t *testing.T) {
	var got []int
	for sq := range squares.All() {
		if len(got) == 5 {
			break
		}
		got = append(got, sq)
	}
	require.Equal(t, []int{1, 4, 9, 16, 25}, got)
}

func TestIsSquare(t *testing.T) {
	cases := []struct {
		x    int
		want bool
	}{
		{-4, false},
		{0, false},
		{1, true},
		{2, false},
		{15, false},
		{16, true},
		{17, false},
		{99980001, true}, // 9999^2
		{99980002, false},
		{1 << 62, true},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, squares.IsSquare(tc.x), "IsSquare(%d)", tc.x)
	}
}

func TestRoot_ExactAroundSquares(t *testing.T) {
	for r := 1; r < 2000; r++ {
		sq := r * r
		require.Equal(t, r, squares.Root(sq))
		require.Equal(t, r-1, squares.Root(sq-1))
		require.Equal(t, r, squares.Root(sq+1))
	}
}

func TestOracle_ExtendAndContains(t *testing.T) {
	o := squares.NewOracle(10)
	require.Equal(t, []int{1, 4, 9}, o.Squares())
	require.Equal(t, 10, o.Bound())

	o.Extend(5) // shrinking is a no-op
	require.Equal(t, 10, o.Bound())

	assert.True(t, o.Contains(49), "Contains extends the cache on demand")
	assert.GreaterOrEqual(t, o.Bound(), 49)
	assert.False(t, o.Contains(50))
	assert.False(t, o.Contains(0))
	assert.Equal(t, squares.Collect(o.Bound()), o.Squares())
}

func TestOracle_MatchesIsSquare(t *testing.T) {
	o := squares.NewOracle(0)
	for x := -3; x <= 5000; x++ {
		require.Equalf(t, squares.IsSquare(x), o.Contains(x), "x=%d", x)
	}
}

func TestOracle_StepwiseExtendMatchesUpTo(t *testing.T) {
	o := squares.NewOracle(0)
	for bound := 1; bound <= 2000; bound += 37 {
		o.Extend(bound)
		require.Equalf(t, squares.Collect(bound), o.Squares(), "bound=%d", bound)
	}
	o.Extend(2000) // bound between squares, then again past the next one
	o.Extend(2025)
	assert.Equal(t, 2025, o.Squares()[len(o.Squares())-1])
	assert.Len(t, o.Squares(), 45)
}
