// Package linkcut implements a link/cut forest: splay-tree-based
// preferred-path trees supporting amortised O(log V) link, cut, and
// connectivity queries over a dynamic forest. pkg/forest uses one per
// Forest to reject edges that would close a cycle.
package linkcut

import (
	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
)

const op = "linkcut"

// node is one splay-tree node representing a vertex within its
// preferred path. parent is either an in-path splay-tree parent (the
// usual BST sense) or a path-parent pointer to the node one level up in
// a different preferred path; isRoot distinguishes the two without an
// extra field lookup on every access.
type node struct {
	left, right, parent *node
	reversed            bool
}

// Forest is a link/cut forest over nodes 0..n. No index is treated
// specially: pkg/forest passes vertex ids through unchanged, 0 included.
type Forest struct {
	nodes []node
}

// New builds a link/cut forest over n+1 nodes, indexed 0..n.
func New(n int) *Forest {
	return &Forest{nodes: make([]node, n+1)}
}

func (f *Forest) at(v int) *node {
	return &f.nodes[v]
}

func (n *node) isRoot() bool {
	return n.parent == nil || (n.parent.left != n && n.parent.right != n)
}

func (n *node) push() {
	if !n.reversed {
		return
	}

	n.left, n.right = n.right, n.left

	if n.left != nil {
		n.left.reversed = !n.left.reversed
	}

	if n.right != nil {
		n.right.reversed = !n.right.reversed
	}

	n.reversed = false
}

// rotate performs one splay-tree rotation of n with its in-path parent,
// preserving path-parent pointers on the side that leaves the path.
func rotate(n *node) {
	p := n.parent
	g := p.parent

	pIsRoot := p.isRoot()
	pWasLeft := g != nil && g.left == p

	if p.left == n {
		p.left = n.right
		if n.right != nil {
			n.right.parent = p
		}

		n.right = p
	} else {
		p.right = n.left
		if n.left != nil {
			n.left.parent = p
		}

		n.left = p
	}

	p.parent = n
	n.parent = g

	if !pIsRoot {
		if pWasLeft {
			g.left = n
		} else {
			g.right = n
		}
	}
}

// splay brings n to the root of its splay tree, pushing down pending
// reversals top-down along the way first.
func splay(n *node) {
	var chain []*node
	for c := n; c != nil; c = c.parent {
		chain = append(chain, c)
	}

	for i := len(chain) - 1; i >= 0; i-- {
		chain[i].push()
	}

	for !n.isRoot() {
		p := n.parent
		if p.isRoot() {
			rotate(n)

			continue
		}

		g := p.parent
		if (g.left == p) == (p.left == n) {
			rotate(p)
			rotate(n)
		} else {
			rotate(n)
			rotate(n)
		}
	}
}

// access splays n to the root of its splay tree and re-links the
// preferred path so that n becomes the deepest node on the path from
// its tree's root, returning n.
func access(n *node) *node {
	splay(n)
	n.push()
	n.right = nil

	for p := n.parent; p != nil; p = n.parent {
		splay(p)
		p.push()
		p.right = n
		n.parent = p
		splay(n)
	}

	return n
}

// makeRoot re-roots the whole tree containing n at n by reversing the
// path from the old root down to n.
func makeRoot(n *node) {
	access(n)
	n.reversed = !n.reversed
	n.push()
}

func findRoot(n *node) *node {
	access(n)
	n.push()

	for n.left != nil {
		n = n.left
		n.push()
	}

	splay(n)

	return n
}

// Connected reports whether u and v lie in the same tree.
func (f *Forest) Connected(u, v int) bool {
	if u == v {
		return true
	}

	return findRoot(f.at(u)) == findRoot(f.at(v))
}

// Link joins the trees containing u and v by making v's tree hang off
// u. The caller must ensure u and v are currently disjoint.
func (f *Forest) Link(u, v int) error {
	un, vn := f.at(u), f.at(v)

	if findRoot(un) == findRoot(vn) {
		return errkind.New(errkind.PreconditionViolated, op+".Link", "u and v already connected")
	}

	makeRoot(vn)
	vn.parent = un

	return nil
}

// Cut removes the edge between u and v, which must currently exist in
// the forest (v must be reachable as u's neighbour on the preferred
// path, or vice versa).
func (f *Forest) Cut(u, v int) error {
	un, vn := f.at(u), f.at(v)

	makeRoot(un)
	access(vn)

	// After access(vn) with u as vn's tree root, u is the sole node in
	// vn's left subtree exactly when (u, v) is an edge.
	if vn.left == nil || vn.left.right != nil || vn.left != un {
		return errkind.New(errkind.PreconditionViolated, op+".Cut", "u and v are not adjacent")
	}

	vn.left.parent = nil
	vn.left = nil

	return nil
}
