// Package forest implements a single forest component of a
// bounded-arboricity graph: an order-statistic AVL tree over
// canonicalised edges, backed by a link/cut forest that rejects any
// insertion which would close a cycle.
package forest

import (
	"github.com/kamil-cwintal/no-flip-tester/pkg/avltree"
	"github.com/kamil-cwintal/no-flip-tester/pkg/edge"
	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
	"github.com/kamil-cwintal/no-flip-tester/pkg/linkcut"
)

const op = "forest"

// Forest is one acyclic edge set over vertex ids 0..V. Ids are passed
// to the link/cut forest unchanged; it has V+1 nodes, so every id in
// that range, 0 included, is addressable (pkg/arbgraph uses [0, V)).
type Forest struct {
	edges *avltree.Tree[edge.Edge]
	lc    *linkcut.Forest
}

// New creates an empty forest over vertex ids 0..v.
func New(v int) *Forest {
	return &Forest{
		edges: avltree.New(edge.Compare),
		lc:    linkcut.New(v),
	}
}

// Len returns the number of edges currently stored.
func (f *Forest) Len() int {
	return f.edges.Len()
}

// Contains reports whether the canonicalised edge (u, v) is present.
func (f *Forest) Contains(u, v edge.Vertex) bool {
	return f.edges.Contains(edge.Canon(u, v))
}

// Insert adds the edge (u, v) unless it is a self-loop, is already
// present, or would close a cycle. Reports whether the edge was added.
func (f *Forest) Insert(u, v edge.Vertex) bool {
	if u == v {
		return false
	}

	e := edge.Canon(u, v)
	if f.edges.Contains(e) {
		return false
	}

	if f.lc.Connected(u, v) {
		return false
	}

	f.edges.Insert(e)

	if err := f.lc.Link(u, v); err != nil {
		// Connected(u, v) was just checked false, so Link cannot fail;
		// a failure here means the AVL tree and link/cut forest have
		// already diverged.
		panic(errkind.New(errkind.Impossible, op+".Insert", err.Error()))
	}

	return true
}

// Delete removes the edge (u, v) if present. Reports whether it was
// removed.
func (f *Forest) Delete(u, v edge.Vertex) bool {
	e := edge.Canon(u, v)
	if !f.edges.Remove(e) {
		return false
	}

	if err := f.lc.Cut(u, v); err != nil {
		panic(errkind.New(errkind.Impossible, op+".Delete", err.Error()))
	}

	return true
}

// EdgeAt returns the i-th edge in canonical order (0-indexed). Fails
// with an [errkind.OutOfRange] error when i >= Len().
func (f *Forest) EdgeAt(i int) (edge.Edge, error) {
	return f.edges.Nth(i)
}

// Connected reports whether u and v lie in the same tree of the forest.
func (f *Forest) Connected(u, v edge.Vertex) bool {
	return f.lc.Connected(u, v)
}
