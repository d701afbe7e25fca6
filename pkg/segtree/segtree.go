// Package segtree implements a dynamic segment tree with lazy
// propagation over a fixed index domain [0, size). Nodes are allocated
// lazily on first descent rather than all at once, which keeps a tree
// over a large domain cheap when only a fraction of it is ever touched
// — exactly the access pattern of the AMC solver's per-vertex
// out-degree timelines (pkg/amc).
//
// The tree is parameterised by two associative binary operations —
// Update, applied when a pending range-update is composed with an
// existing value or lazy delta, and Accumulate, applied when folding a
// range query or merging two children — plus MultiAccumulate(k, v),
// the value of folding k copies of v through Accumulate. Two
// specializations are provided: [NewRangeAddSum] (+, +) and
// [NewRangeAddMax] (+, max).
package segtree

import (
	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
)

const op = "segtree"

// Ops bundles the three functions that define a segment tree
// specialization. Update and Accumulate must both be associative.
type Ops[V any] struct {
	// Zero is the identity element for Accumulate: Accumulate(Zero, x) == x.
	Zero V
	// Update composes a pending delta with an existing value or lazy.
	Update func(existing, delta V) V
	// Accumulate folds two range results (or two children) into one.
	Accumulate func(a, b V) V
	// MultiAccumulate is the result of folding k copies of v through
	// Accumulate. Must satisfy MultiAccumulate(1, v) == v and
	// MultiAccumulate(a+b, v) == Accumulate(MultiAccumulate(a, v), MultiAccumulate(b, v)).
	MultiAccumulate func(k int, v V) V
}

type node[V any] struct {
	left, right *node[V]
	lazy        *V
	value       V
	lo, hi      int
}

// Tree is a lazy segment tree over [0, size).
type Tree[V any] struct {
	root *node[V]
	ops  Ops[V]
	size int
}

// New builds a tree over the index domain [0, size), rounding the
// internal span up to the next power of two. size must be positive.
func New[V any](size int, ops Ops[V]) *Tree[V] {
	if size <= 0 {
		panic("segtree: size must be positive")
	}

	p := nextPow2(size)

	return &Tree[V]{
		root: &node[V]{lo: 0, hi: p - 1, value: ops.Zero},
		ops:  ops,
		size: size,
	}
}

// NewRangeAddSum builds the (+, +) specialization over int64 values:
// range-add, range-sum.
func NewRangeAddSum(size int) *Tree[int64] {
	return New(size, Ops[int64]{
		Zero:            0,
		Update:          func(a, b int64) int64 { return a + b },
		Accumulate:      func(a, b int64) int64 { return a + b },
		MultiAccumulate: func(k int, v int64) int64 { return int64(k) * v },
	})
}

// NewRangeAddMax builds the (+, max) specialization over int values:
// range-add, range-max. This is the structure pkg/amc uses to track
// each vertex's out-degree timeline.
func NewRangeAddMax(size int) *Tree[int] {
	return New(size, Ops[int]{
		Zero:            0,
		Update:          func(a, b int) int { return a + b },
		Accumulate:      func(a, b int) int { return max(a, b) },
		MultiAccumulate: func(_ int, v int) int { return v },
	})
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}

// RangeUpdate applies the Update operation with delta v across every
// index in [l, r].
func (t *Tree[V]) RangeUpdate(l, r int, v V) error {
	if err := t.checkRange(l, r); err != nil {
		return err
	}

	t.update(t.root, l, r, v)

	return nil
}

// RangeQuery folds Accumulate over [l, r].
func (t *Tree[V]) RangeQuery(l, r int) (V, error) {
	if err := t.checkRange(l, r); err != nil {
		var zero V

		return zero, err
	}

	return t.query(t.root, l, r), nil
}

func (t *Tree[V]) checkRange(l, r int) error {
	if l < 0 || r >= t.size || l > r {
		return errkind.New(errkind.OutOfRange, op, "range outside [0, size)")
	}

	return nil
}

func (t *Tree[V]) update(n *node[V], l, r int, v V) {
	if r < n.lo || n.hi < l {
		return
	}

	if l <= n.lo && n.hi <= r {
		n.value = t.ops.Update(n.value, t.ops.MultiAccumulate(n.hi-n.lo+1, v))
		n.lazy = composeLazy(t.ops, n.lazy, v)

		return
	}

	t.ensureChildren(n)
	t.push(n)

	t.update(n.left, l, r, v)
	t.update(n.right, l, r, v)

	n.value = t.ops.Accumulate(n.left.value, n.right.value)
}

func (t *Tree[V]) query(n *node[V], l, r int) V {
	if r < n.lo || n.hi < l {
		return t.ops.Zero
	}

	if l <= n.lo && n.hi <= r {
		return n.value
	}

	t.ensureChildren(n)
	t.push(n)

	return t.ops.Accumulate(t.query(n.left, l, r), t.query(n.right, l, r))
}

// ensureChildren allocates this node's children on first descent. A
// leaf (lo == hi) never gets children.
func (t *Tree[V]) ensureChildren(n *node[V]) {
	if n.left != nil || n.lo == n.hi {
		return
	}

	mid := n.lo + (n.hi-n.lo)/2
	n.left = &node[V]{lo: n.lo, hi: mid, value: t.ops.Zero}
	n.right = &node[V]{lo: mid + 1, hi: n.hi, value: t.ops.Zero}
}

// push propagates n's pending lazy delta to its children, folding it
// into each child's value via MultiAccumulate over the child's span,
// then clears it.
func (t *Tree[V]) push(n *node[V]) {
	if n.lazy == nil || n.lo == n.hi {
		return
	}

	delta := *n.lazy

	for _, c := range [2]*node[V]{n.left, n.right} {
		c.value = t.ops.Update(c.value, t.ops.MultiAccumulate(c.hi-c.lo+1, delta))
		c.lazy = composeLazy(t.ops, c.lazy, delta)
	}

	n.lazy = nil
}

func composeLazy[V any](ops Ops[V], existing *V, delta V) *V {
	if existing == nil {
		d := delta

		return &d
	}

	combined := ops.Update(*existing, delta)

	return &combined
}
