// SPDX-License-Identifier: MIT

// Package path holds the mutable path state of the Hamiltonian search: an
// ordered sequence of distinct node ids plus a membership flag array indexed
// by node id, giving O(1) containment tests.
//
// Invariants maintained by every method:
//   - no node appears twice;
//   - member[v] is true exactly for the nodes in the sequence.
//
// Edge validity (every adjacent pair connected) is the caller's contract:
// Push and the reordering moves never consult the graph. The rotation move
// RotateAfter preserves edge validity whenever the pivot is adjacent to the
// current tail, which is how the search uses it.
package path
