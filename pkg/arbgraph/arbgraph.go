// Package arbgraph implements a bounded-arboricity graph: an ordered
// tuple of edge-disjoint forests. Edge-existence queries aggregate
// across every forest; an edge is accepted into at most one of them.
package arbgraph

import (
	"github.com/kamil-cwintal/no-flip-tester/pkg/edge"
	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
	"github.com/kamil-cwintal/no-flip-tester/pkg/forest"
)

const op = "arbgraph"

// Graph is an array of alpha edge-disjoint forests over the same
// vertex set, each individually acyclic, together bounding the graph's
// arboricity by len(Forests).
type Graph struct {
	forests []*forest.Forest
	v       int
}

// New creates an empty graph over vertices [0, v) with the given
// arboricity bound alpha.
func New(v, alpha int) *Graph {
	forests := make([]*forest.Forest, alpha)
	for i := range forests {
		forests[i] = forest.New(v)
	}

	return &Graph{forests: forests, v: v}
}

// Alpha returns the number of forests.
func (g *Graph) Alpha() int {
	return len(g.forests)
}

// EdgeCount returns the total number of edges across all forests.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, f := range g.forests {
		total += f.Len()
	}

	return total
}

// Capacity returns the maximum number of edges the graph can hold:
// (V-1) * alpha, the arboricity bound on a simple graph over V
// vertices.
func (g *Graph) Capacity() int {
	return (g.v - 1) * len(g.forests)
}

// Contains reports whether the canonicalised edge (u, v) exists in any
// forest.
func (g *Graph) Contains(u, v edge.Vertex) bool {
	for _, f := range g.forests {
		if f.Contains(u, v) {
			return true
		}
	}

	return false
}

// Forest returns the i-th forest for direct inspection (e.g. by
// pkg/dot when rendering multi-forest graphs with one colour per
// forest).
func (g *Graph) Forest(i int) *forest.Forest {
	return g.forests[i]
}

// Insert adds (u, v) into forests[idx]. Rejects the edge if it is
// already present in any forest (not just forests[idx]) or if idx's
// forest itself rejects it (self-loop or would-close-a-cycle).
func (g *Graph) Insert(idx int, u, v edge.Vertex) bool {
	if g.Contains(u, v) {
		return false
	}

	return g.forests[idx].Insert(u, v)
}

// Delete removes the canonicalised edge (u, v), trying every forest in
// turn. At most one forest can hold it. Reports whether it was found.
func (g *Graph) Delete(u, v edge.Vertex) bool {
	for _, f := range g.forests {
		if f.Delete(u, v) {
			return true
		}
	}

	return false
}

// GetEdge walks the forests in order, subtracting each forest's edge
// count from globalIndex until it falls within one, then rank-selects
// the edge there. Fails with an [errkind.OutOfRange] error when
// globalIndex >= EdgeCount().
func (g *Graph) GetEdge(globalIndex int) (edge.Edge, error) {
	remaining := globalIndex

	for _, f := range g.forests {
		if remaining < f.Len() {
			return f.EdgeAt(remaining)
		}

		remaining -= f.Len()
	}

	return edge.Edge{}, errkind.New(errkind.OutOfRange, op+".GetEdge", "index out of range")
}
