// SPDX-License-Identifier: MIT

// Package squares is the square oracle of the square-sum module.
//
// It produces the ascending sequence of perfect squares 1, 4, 9, ... either
// lazily (range-over-func iterators that restart on every range) or as a
// cached, monotonically growing prefix held by an Oracle.
//
// The prefix drives two consumers:
//   - core.Graph.ConnectNewNode, which scans squares in (i, 2i-1] to connect a
//     freshly appended node;
//   - hamilton.CheckSumSquares, which verifies a finished path.
//
// Everything here is pure with respect to the requested bound; an Oracle only
// ever grows its cache, it never forgets squares it has produced.
package squares
