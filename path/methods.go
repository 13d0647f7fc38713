// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: push/backtrack/reverse/rotate moves and read-only queries.

package path

import "iter"

// minKeep is the number of entries Backtrack always preserves.
const minKeep = 2

// Len returns the number of nodes on the path.
func (p *Path) Len() int { return len(p.nodes) }

// Order returns the size of the node id space.
func (p *Path) Order() int { return len(p.member) }

// Contains reports whether v is on the path. Out-of-range ids report false.
//
// Complexity: O(1).
func (p *Path) Contains(v int) bool {
	return v >= 0 && v < len(p.member) && p.member[v]
}

// Push appends v and marks it as a member.
func (p *Path) Push(v int) error {
	if v < 0 || v >= len(p.member) {
		return ErrNodeOutOfRange
	}
	if p.member[v] {
		return ErrDuplicateNode
	}
	p.nodes = append(p.nodes, v)
	p.member[v] = true

	return nil
}

// Last returns the tail node, or -1 for an empty path.
func (p *Path) Last() int {
	if len(p.nodes) == 0 {
		return -1
	}

	return p.nodes[len(p.nodes)-1]
}

// At returns the node at position i. Panics when i is out of range, like
// indexing a slice.
func (p *Path) At(i int) int { return p.nodes[i] }

// IndexOf returns the position of v, or -1 when v is not on the path.
//
// Complexity: O(1) for non-members, O(len) otherwise.
func (p *Path) IndexOf(v int) int {
	if !p.Contains(v) {
		return -1
	}
	for i, w := range p.nodes {
		if w == v {
			return i
		}
	}

	return -1
}

// Backtrack drops the last min(amount, Len()-2) entries and clears their
// membership. The path never shrinks below two entries. Returns the number
// of entries removed.
func (p *Path) Backtrack(amount int) int {
	drop := len(p.nodes) - minKeep
	if amount < drop {
		drop = amount
	}
	if drop <= 0 {
		return 0
	}
	cut := len(p.nodes) - drop
	for _, v := range p.nodes[cut:] {
		p.member[v] = false
	}
	p.nodes = p.nodes[:cut]

	return drop
}

// Reverse flips the visit order in place. Membership is unaffected.
func (p *Path) Reverse() {
	reverseRange(p.nodes, 0, len(p.nodes)-1)
}

// RotateAfter reverses the suffix that starts right after position pos, so
// the node at pos+1 becomes the new tail. With the pivot at pos adjacent to
// the old tail this is the classical rotation move: the sequence stays
// edge-valid and a different node is exposed for extension.
// Positions outside [0, Len()-1] are a no-op.
func (p *Path) RotateAfter(pos int) {
	if pos < 0 || pos >= len(p.nodes) {
		return
	}
	reverseRange(p.nodes, pos+1, len(p.nodes)-1)
}

// Nodes returns a copy of the node ids in visit order.
func (p *Path) Nodes() []int {
	return append([]int(nil), p.nodes...)
}

// Values returns a copy of the path as 1-indexed integers.
func (p *Path) Values() []int {
	out := make([]int, len(p.nodes))
	for i, v := range p.nodes {
		out[i] = v + 1
	}

	return out
}

// All iterates positions and nodes in current order.
func (p *Path) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i, v := range p.nodes {
			if !yield(i, v) {
				return
			}
		}
	}
}

// reverseRange reverses a[i..k] inclusive; empty or inverted ranges are a no-op.
func reverseRange(a []int, i, k int) {
	for i < k {
		a[i], a[k] = a[k], a[i]
		i++
		k--
	}
}
