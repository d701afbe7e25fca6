// Package intervaltree implements an augmented interval tree: an AVL
// tree keyed by (low, high) pairs, each node additionally tracking the
// maximum high endpoint anywhere in its subtree so overlap queries can
// prune entire branches. The AMC solver (pkg/amc) keeps one of these per
// vertex to answer "how many already-assigned intervals collide with
// this candidate" in O(log n + k).
package intervaltree

import (
	"cmp"
)

// Interval is a closed range [Low, High] carrying an arbitrary value.
type Interval[T cmp.Ordered, V comparable] struct {
	Low, High T
	Value     V
}

type node[T cmp.Ordered, V comparable] struct {
	iv          Interval[T, V]
	highest     T
	left, right *node[T, V]
	height      int
}

// Tree is an augmented AVL tree over closed intervals [Low, High].
// Duplicate (Low, High) pairs are permitted, distinguished by Value.
type Tree[T cmp.Ordered, V comparable] struct {
	root *node[T, V]
	size int
}

// New creates an empty interval tree.
func New[T cmp.Ordered, V comparable]() *Tree[T, V] {
	return &Tree[T, V]{}
}

// Len returns the number of stored intervals.
func (t *Tree[T, V]) Len() int {
	return t.size
}

// Insert adds the interval [low, high] with the given value.
func (t *Tree[T, V]) Insert(low, high T, value V) {
	t.root = insert(t.root, Interval[T, V]{Low: low, High: high, Value: value})
	t.size++
}

// Remove deletes one interval exactly matching (low, high, value).
// Reports whether a matching interval was found.
func (t *Tree[T, V]) Remove(low, high T, value V) bool {
	target := Interval[T, V]{Low: low, High: high, Value: value}

	removed := false
	t.root = remove(t.root, target, &removed)

	if removed {
		t.size--
	}

	return removed
}

// Overlaps returns every stored interval [l, h] such that l <= high and
// low <= h — i.e. every interval whose timespan shares at least one
// point with [low, high].
func (t *Tree[T, V]) Overlaps(low, high T) []Interval[T, V] {
	var out []Interval[T, V]

	collect(t.root, low, high, &out)

	return out
}

// CountOverlaps returns len(Overlaps(low, high)) without allocating the
// result slice.
func (t *Tree[T, V]) CountOverlaps(low, high T) int {
	return count(t.root, low, high)
}

func keyCompare[T cmp.Ordered, V comparable](a, b Interval[T, V]) int {
	if a.Low != b.Low {
		return cmp.Compare(a.Low, b.Low)
	}

	return cmp.Compare(a.High, b.High)
}

func overlaps[T cmp.Ordered, V comparable](iv Interval[T, V], low, high T) bool {
	return iv.Low <= high && low <= iv.High
}

func insert[T cmp.Ordered, V comparable](n *node[T, V], iv Interval[T, V]) *node[T, V] {
	if n == nil {
		return &node[T, V]{iv: iv, highest: iv.High, height: 1}
	}

	if keyCompare(iv, n.iv) <= 0 {
		n.left = insert(n.left, iv)
	} else {
		n.right = insert(n.right, iv)
	}

	return rebalance(n)
}

func remove[T cmp.Ordered, V comparable](n *node[T, V], target Interval[T, V], removed *bool) *node[T, V] {
	if n == nil {
		return nil
	}

	c := keyCompare(target, n.iv)

	switch {
	case c < 0:
		n.left = remove(n.left, target, removed)
	case c > 0:
		n.right = remove(n.right, target, removed)
	default:
		if n.iv.Value == target.Value {
			*removed = true

			if n.left == nil {
				return n.right
			}

			if n.right == nil {
				return n.left
			}

			succ := minNode(n.right)
			n.iv = succ.iv
			n.right = remove(n.right, succ.iv, new(bool))
		} else {
			// Same key, different value: the match (if any) could be in
			// either subtree since duplicate keys sort left.
			n.left = remove(n.left, target, removed)

			if !*removed {
				n.right = remove(n.right, target, removed)
			}
		}
	}

	if n == nil {
		return nil
	}

	return rebalance(n)
}

func collect[T cmp.Ordered, V comparable](n *node[T, V], low, high T, out *[]Interval[T, V]) {
	if n == nil || n.highest < low {
		return
	}

	collect(n.left, low, high, out)

	if overlaps(n.iv, low, high) {
		*out = append(*out, n.iv)
	}

	if n.iv.Low > high {
		return
	}

	collect(n.right, low, high, out)
}

func count[T cmp.Ordered, V comparable](n *node[T, V], low, high T) int {
	if n == nil || n.highest < low {
		return 0
	}

	total := count(n.left, low, high)

	if overlaps(n.iv, low, high) {
		total++
	}

	if n.iv.Low > high {
		return total
	}

	return total + count(n.right, low, high)
}

func minNode[T cmp.Ordered, V comparable](n *node[T, V]) *node[T, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func height[T cmp.Ordered, V comparable](n *node[T, V]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func highest[T cmp.Ordered, V comparable](n *node[T, V]) (zero T, ok bool) {
	if n == nil {
		return zero, false
	}

	return n.highest, true
}

func recalc[T cmp.Ordered, V comparable](n *node[T, V]) {
	n.height = 1 + max(height(n.left), height(n.right))

	m := n.iv.High
	if h, ok := highest(n.left); ok && h > m {
		m = h
	}

	if h, ok := highest(n.right); ok && h > m {
		m = h
	}

	n.highest = m
}

func balanceFactor[T cmp.Ordered, V comparable](n *node[T, V]) int {
	return height(n.left) - height(n.right)
}

func rotateLeft[T cmp.Ordered, V comparable](n *node[T, V]) *node[T, V] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	recalc(n)
	recalc(pivot)

	return pivot
}

func rotateRight[T cmp.Ordered, V comparable](n *node[T, V]) *node[T, V] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	recalc(n)
	recalc(pivot)

	return pivot
}

func rebalance[T cmp.Ordered, V comparable](n *node[T, V]) *node[T, V] {
	recalc(n)

	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}

		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}

		return rotateLeft(n)
	default:
		return n
	}
}
