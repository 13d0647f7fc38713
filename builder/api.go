// SPDX-License-Identifier: MIT
//
// api.go: BuildGraph, GrowGraph, GrowTo.

package builder

import (
	"fmt"

	"github.com/milliams/square-sum/core"
	"github.com/milliams/square-sum/squares"
)

// BuildGraph returns the square-sum graph on 1..n.
//
// Complexity: O(n√n) time, O(n + E) space.
func BuildGraph(n int, opts ...BuilderOption) (*core.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrNegativeOrder)
	}
	cfg := newBuilderConfig(opts...)

	hint := cfg.expectedOrder
	if hint < n {
		hint = n
	}
	o := cfg.oracle
	if o == nil {
		o = squares.NewOracle(2*n - 1)
	}

	g := core.NewGraph(hint)
	if err := GrowTo(g, o, n); err != nil {
		return nil, err
	}

	return g, nil
}

// GrowGraph appends the next node to g and connects it, extending o as
// needed. Returns the new order.
//
// Complexity: O(√i) for the node with value i.
func GrowGraph(g *core.Graph, o *squares.Oracle) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if o == nil {
		return 0, ErrOracleNil
	}
	i := g.Order() + 1
	o.Extend(2*i - 1)
	g.Grow(o.Squares())

	return g.Order(), nil
}

// GrowTo grows g until it has order n. Graphs already at or beyond n are
// left untouched; the store never shrinks.
func GrowTo(g *core.Graph, o *squares.Oracle, n int) error {
	if g == nil {
		return ErrGraphNil
	}
	if o == nil {
		return ErrOracleNil
	}
	if n < 0 {
		return fmt.Errorf("GrowTo: n=%d: %w", n, ErrNegativeOrder)
	}
	for g.Order() < n {
		if _, err := GrowGraph(g, o); err != nil {
			return err
		}
	}

	return nil
}
