// SPDX-License-Identifier: MIT
//
// options.go: functional options for BuildGraph.
//
// Option constructors panic on meaningless inputs; BuildGraph never does.

package builder

import "github.com/milliams/square-sum/squares"

// BuilderOption customizes BuildGraph.
type BuilderOption func(*builderConfig)

// builderConfig aggregates the knobs used by BuildGraph.
type builderConfig struct {
	oracle        *squares.Oracle // shared square cache; nil → fresh oracle
	expectedOrder int             // preallocation hint; <0 → use n
}

// newBuilderConfig applies options in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{expectedOrder: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOracle shares an existing square cache with the builder, so a growth
// driver can keep extending the same prefix. Panics on nil.
func WithOracle(o *squares.Oracle) BuilderOption {
	if o == nil {
		panic("builder: WithOracle(nil)")
	}
	return func(c *builderConfig) { c.oracle = o }
}

// WithExpectedOrder preallocates room for hint nodes, useful when the graph
// will keep growing past the initial order. Panics on negative hints.
func WithExpectedOrder(hint int) BuilderOption {
	if hint < 0 {
		panic("builder: WithExpectedOrder(negative)")
	}
	return func(c *builderConfig) { c.expectedOrder = hint }
}
