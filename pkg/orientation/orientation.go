// Package orientation tracks a directed assignment of an undirected
// edge set: per-vertex out-degree, a forward index of directed edges
// ordered by source, and a reverse index ordered by destination. The
// forward index's ordering gives every vertex's outgoing edges as a
// contiguous rank range, which is how [Orientation.OutNeighbours]
// avoids a linear scan.
package orientation

import (
	"iter"

	"github.com/kamil-cwintal/no-flip-tester/pkg/avltree"
	"github.com/kamil-cwintal/no-flip-tester/pkg/edge"
	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
)

const op = "orientation"

// Orientation assigns a direction to each edge of an undirected graph
// over vertices [0, v).
type Orientation struct {
	outdeg   []int
	forward  *avltree.Tree[edge.Directed] // ordered (From, To)
	backward *avltree.Tree[edge.Directed] // ordered (To, From)
}

// New creates an empty orientation over vertices [0, v).
func New(v int) *Orientation {
	return &Orientation{
		outdeg:   make([]int, v),
		forward:  avltree.New(edge.CompareDirected),
		backward: avltree.New(compareByDestination),
	}
}

func compareByDestination(a, b edge.Directed) int {
	if a.To != b.To {
		return a.To - b.To
	}

	return a.From - b.From
}

// OutDegree returns the current out-degree of v.
func (o *Orientation) OutDegree(v edge.Vertex) int {
	return o.outdeg[v]
}

// IsOriented reports whether the directed edge u->v is currently
// present.
func (o *Orientation) IsOriented(u, v edge.Vertex) bool {
	return o.forward.Contains(edge.Directed{From: u, To: v})
}

// OrientEdge directs the edge between u and v as u->v. Fails with
// [errkind.PreconditionViolated] if the edge already exists in either
// direction.
func (o *Orientation) OrientEdge(u, v edge.Vertex) error {
	if o.IsOriented(u, v) || o.IsOriented(v, u) {
		return errkind.New(errkind.PreconditionViolated, op+".OrientEdge", "edge already oriented")
	}

	d := edge.Directed{From: u, To: v}
	o.forward.Insert(d)
	o.backward.Insert(d)
	o.outdeg[u]++

	return nil
}

// RemoveEdge removes the directed edge u->v. Fails with
// [errkind.PreconditionViolated] if it does not exist in that
// direction.
func (o *Orientation) RemoveEdge(u, v edge.Vertex) error {
	if !o.IsOriented(u, v) {
		return errkind.New(errkind.PreconditionViolated, op+".RemoveEdge", "edge not oriented u->v")
	}

	d := edge.Directed{From: u, To: v}
	o.forward.Remove(d)
	o.backward.Remove(d)
	o.outdeg[u]--

	return nil
}

// FlipEdge reverses the directed edge u->v into v->u.
func (o *Orientation) FlipEdge(u, v edge.Vertex) error {
	if err := o.RemoveEdge(u, v); err != nil {
		return err
	}

	return o.OrientEdge(v, u)
}

// OutNeighbours returns an iterator over every w such that u->w is
// currently oriented, using the rank range of forward keys with
// From == u.
func (o *Orientation) OutNeighbours(u edge.Vertex) iter.Seq[edge.Vertex] {
	// Vertex ids are non-negative, so To: -1 sorts before every real
	// edge leaving the same source.
	lo := o.forward.Rank(edge.Directed{From: u, To: -1})
	hi := o.forward.Rank(edge.Directed{From: u + 1, To: -1})

	return func(yield func(edge.Vertex) bool) {
		for i := lo; i < hi; i++ {
			d, err := o.forward.Nth(i)
			if err != nil {
				panic(errkind.New(errkind.Impossible, op+".OutNeighbours", err.Error()))
			}

			if !yield(d.To) {
				return
			}
		}
	}
}

// InNeighbours returns an iterator over every w such that w->v is
// currently oriented, using the reverse index's rank range of keys
// with To == v.
func (o *Orientation) InNeighbours(v edge.Vertex) iter.Seq[edge.Vertex] {
	lo := o.backward.Rank(edge.Directed{From: -1, To: v})
	hi := o.backward.Rank(edge.Directed{From: -1, To: v + 1})

	return func(yield func(edge.Vertex) bool) {
		for i := lo; i < hi; i++ {
			d, err := o.backward.Nth(i)
			if err != nil {
				panic(errkind.New(errkind.Impossible, op+".InNeighbours", err.Error()))
			}

			if !yield(d.From) {
				return
			}
		}
	}
}

// MaxOutDegree returns the largest out-degree across all vertices.
func (o *Orientation) MaxOutDegree() int {
	m := 0
	for _, d := range o.outdeg {
		m = max(m, d)
	}

	return m
}
