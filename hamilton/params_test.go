package hamilton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milliams/square-sum/hamilton"
)

func TestDeriveParams(t *testing.T) {
	cases := []struct {
		n    int
		want hamilton.Params
	}{
		{2, hamilton.Params{ReverseRate: 100, BacktrackRate: 1000, BacktrackAmount: 5, ResetRate: 20, MaxIterations: 100}},
		{15, hamilton.Params{ReverseRate: 100, BacktrackRate: 1000, BacktrackAmount: 5, ResetRate: 150, MaxIterations: 750}},
		{250_000, hamilton.Params{ReverseRate: 250, BacktrackRate: 2500, BacktrackAmount: 25, ResetRate: 2_500_000, MaxIterations: 12_500_000}},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, hamilton.DeriveParams(tc.n), "n=%d", tc.n)
	}
}

func TestDeriveParams_MonotoneWithFloors(t *testing.T) {
	prev := hamilton.DeriveParams(1)
	for n := 2; n < 300_000; n += 997 {
		p := hamilton.DeriveParams(n)
		assert.GreaterOrEqual(t, p.ReverseRate, 100)
		assert.GreaterOrEqual(t, p.BacktrackRate, 1000)
		assert.GreaterOrEqual(t, p.BacktrackAmount, 5)
		assert.Greater(t, p.ResetRate, n, "a full path must fit in one walk")
		assert.GreaterOrEqual(t, p.ReverseRate, prev.ReverseRate)
		assert.GreaterOrEqual(t, p.BacktrackRate, prev.BacktrackRate)
		assert.GreaterOrEqual(t, p.BacktrackAmount, prev.BacktrackAmount)
		assert.GreaterOrEqual(t, p.MaxIterations, prev.MaxIterations)
		assert.NoError(t, p.Validate())
		prev = p
	}
}

func TestParamsValidate(t *testing.T) {
	base := hamilton.DeriveParams(10)
	mutate := []func(*hamilton.Params){
		func(p *hamilton.Params) { p.ReverseRate = 0 },
		func(p *hamilton.Params) { p.BacktrackRate = -1 },
		func(p *hamilton.Params) { p.BacktrackAmount = -1 },
		func(p *hamilton.Params) { p.ResetRate = 0 },
		func(p *hamilton.Params) { p.MaxIterations = -1 },
	}
	for i, m := range mutate {
		p := base
		m(&p)
		assert.ErrorIsf(t, p.Validate(), hamilton.ErrInvalidParams, "case %d", i)
	}
}
