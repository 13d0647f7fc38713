// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: queue-driven breadth-first walker.

package bfs

import (
	"fmt"

	"github.com/milliams/square-sum/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Adjacency
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation or any hook error.
func BFS(g core.Adjacency, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Order()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	w := newWalker(g, o, n)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func newWalker(g core.Adjacency, o Options, n int) *walker {
	return &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res:   newResult(n),
	}
}

func newResult(n int) *Result {
	r := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		r.Depth[v] = -1
		r.Parent[v] = -1
	}

	return r
}

// enqueue marks v discovered at depth d under parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[v]

		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(v) {
			if w.res.Depth[nbr] < 0 {
				w.enqueue(nbr, d+1, v)
			}
		}
	}

	return nil
}
