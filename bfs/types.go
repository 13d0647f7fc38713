// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: options, results and sentinel errors for breadth-first traversal.

package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start node is not in 0..Order()-1.
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when a node is dequeued. Returning an error aborts
	// the traversal with that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no hooks and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(int, int) error { return nil },
	}
}

// WithOnVisit installs a visit hook. A nil fn is ignored.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration depth. Negative values are rejected with
// ErrOptionViolation when BFS runs.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the output of a single-root traversal.
type Result struct {
	// Order lists nodes in visit order.
	Order []int

	// Depth[v] is the hop distance from the root, -1 when unreached.
	Depth []int

	// Parent[v] is the BFS tree parent, -1 for the root and unreached nodes.
	Parent []int
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
