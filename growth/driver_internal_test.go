package growth

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milliams/square-sum/core"
	"github.com/milliams/square-sum/hamilton"
	"github.com/milliams/square-sum/metrics"
)

func TestRun_InvariantViolationAborts(t *testing.T) {
	rec := metrics.NewRecorder(prometheus.NewRegistry())
	d, err := New(Config{Start: 1, End: 20},
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), WithRecorder(rec))
	require.NoError(t, err)

	orig := d.search
	d.search = func(g core.Adjacency, seed []int, opts ...hamilton.Option) (*hamilton.Result, error) {
		if g.Order() == 15 {
			return nil, fmt.Errorf("rotate: %w", hamilton.ErrPivotNotFound)
		}
		return orig(g, seed, opts...)
	}

	var orders []int
	sum, err := d.Run(context.Background(), func(o Outcome) { orders = append(orders, o.Order) })
	require.ErrorIs(t, err, hamilton.ErrPivotNotFound)
	assert.True(t, hamilton.IsInvariantViolation(err))
	assert.Contains(t, err.Error(), "order 15")
	assert.Len(t, orders, 14, "no outcome is reported for the aborted order")
	assert.Equal(t, 14, sum.Found+sum.Failed)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.SearchesTotal.WithLabelValues(metrics.OutcomeError)))
}
