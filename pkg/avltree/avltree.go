// Package avltree implements a balanced binary search tree augmented
// with per-node subtree counts, giving O(log n) rank/select alongside
// the usual insert/remove/contains. It is the order-statistic structure
// the bounded-arboricity graph (pkg/forest) uses to enumerate and
// rank-select its edges, and the building block pkg/intervaltree and
// pkg/orientation layer further augmentation on top of.
//
// Duplicate keys are permitted; ties sort into the left subtree so that
// repeated inserts of an equal key are stable in rank order.
package avltree

import (
	"iter"

	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
)

const op = "avltree"

// node is a single AVL node augmented with subtree size and height.
type node[T any] struct {
	key         T
	left, right *node[T]
	height      int
	count       int
}

// Tree is a balanced BST keyed by T, ordered by a caller-supplied
// comparator. The zero value is not usable; construct one with [New].
type Tree[T any] struct {
	root *node[T]
	cmp  func(a, b T) int
}

// New creates an empty tree ordered by cmp (negative when a < b, zero
// when equal, positive when a > b).
func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// Len returns the number of keys currently stored, counting duplicates.
func (t *Tree[T]) Len() int {
	return nodeCount(t.root)
}

// Contains reports whether k is present.
func (t *Tree[T]) Contains(k T) bool {
	n := t.root
	for n != nil {
		c := t.cmp(k, n.key)

		switch {
		case c == 0:
			return true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}

	return false
}

// Insert adds k, rebalancing on the way back up. Duplicate keys are
// inserted into the left subtree of any equal node already present.
func (t *Tree[T]) Insert(k T) {
	t.root = t.insert(t.root, k)
}

func (t *Tree[T]) insert(n *node[T], k T) *node[T] {
	if n == nil {
		return &node[T]{key: k, height: 1, count: 1}
	}

	if t.cmp(k, n.key) <= 0 {
		n.left = t.insert(n.left, k)
	} else {
		n.right = t.insert(n.right, k)
	}

	return t.rebalance(n)
}

// Remove deletes one occurrence of k, if present, and reports whether it
// found one. On a two-child match, the node is replaced by the minimum
// key of its right subtree (predecessor-by-successor replacement).
func (t *Tree[T]) Remove(k T) bool {
	removed := false
	t.root = t.remove(t.root, k, &removed)

	return removed
}

func (t *Tree[T]) remove(n *node[T], k T, removed *bool) *node[T] {
	if n == nil {
		return nil
	}

	c := t.cmp(k, n.key)

	switch {
	case c < 0:
		n.left = t.remove(n.left, k, removed)
	case c > 0:
		n.right = t.remove(n.right, k, removed)
	default:
		*removed = true

		if n.left == nil {
			return n.right
		}

		if n.right == nil {
			return n.left
		}

		succ := minNode(n.right)
		n.key = succ.key
		n.right = t.remove(n.right, succ.key, new(bool))
	}

	return t.rebalance(n)
}

// Min returns the smallest key. Fails with an [errkind.EmptyStructure]
// error when the tree is empty.
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T

		return zero, errkind.New(errkind.EmptyStructure, op+".Min", "tree is empty")
	}

	return minNode(t.root).key, nil
}

// Max returns the largest key. Fails with an [errkind.EmptyStructure]
// error when the tree is empty.
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T

		return zero, errkind.New(errkind.EmptyStructure, op+".Max", "tree is empty")
	}

	return maxNode(t.root).key, nil
}

// Nth returns the i-th smallest key (0-indexed). Fails with an
// [errkind.OutOfRange] error when i >= Len().
func (t *Tree[T]) Nth(i int) (T, error) {
	if i < 0 || i >= nodeCount(t.root) {
		var zero T

		return zero, errkind.New(errkind.OutOfRange, op+".Nth", "index out of range")
	}

	n := t.root
	for {
		lc := nodeCount(n.left)

		switch {
		case i < lc:
			n = n.left
		case i == lc:
			return n.key, nil
		default:
			i -= lc + 1
			n = n.right
		}
	}
}

// Rank returns the number of keys strictly less than k — its
// insertion-order rank were k inserted now. Combined with Nth, this
// gives O(log n) access to the contiguous range of keys satisfying any
// prefix predicate the comparator induces (see pkg/orientation).
func (t *Tree[T]) Rank(k T) int {
	rank := 0
	n := t.root

	for n != nil {
		if t.cmp(k, n.key) <= 0 {
			n = n.left
		} else {
			rank += nodeCount(n.left) + 1
			n = n.right
		}
	}

	return rank
}

// All returns an in-order, restartable iterator over every key. Each
// call to All walks the tree fresh; concurrent mutation during iteration
// is not supported.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		inorder(t.root, yield)
	}
}

func inorder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	if !inorder(n.left, yield) {
		return false
	}

	if !yield(n.key) {
		return false
	}

	return inorder(n.right, yield)
}

func nodeCount[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return n.count
}

func nodeHeight[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func minNode[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func maxNode[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}

	return n
}

func balanceFactor[T any](n *node[T]) int {
	return nodeHeight(n.left) - nodeHeight(n.right)
}

func touchUp[T any](n *node[T]) {
	n.height = 1 + max(nodeHeight(n.left), nodeHeight(n.right))
	n.count = 1 + nodeCount(n.left) + nodeCount(n.right)
}

func rotateLeft[T any](n *node[T]) *node[T] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	touchUp(n)
	touchUp(pivot)

	return pivot
}

func rotateRight[T any](n *node[T]) *node[T] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	touchUp(n)
	touchUp(pivot)

	return pivot
}

// rebalance restores the AVL height invariant at n, performing at most
// two rotations, and refreshes n's augmentation.
func (t *Tree[T]) rebalance(n *node[T]) *node[T] {
	touchUp(n)

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
