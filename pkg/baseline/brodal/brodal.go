// Package brodal implements the online, bounded-flip baseline: a single
// orientation maintained by walking an operation sequence in reverse,
// keeping every out-degree under a caller-chosen bound at the cost of
// occasionally flipping a short chain of edges to make room.
package brodal

import (
	"sort"

	"github.com/kamil-cwintal/no-flip-tester/pkg/edge"
	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
	"github.com/kamil-cwintal/no-flip-tester/pkg/instance"
	"github.com/kamil-cwintal/no-flip-tester/pkg/orientation"
)

const op = "brodal"

// Result summarises one Solve run.
type Result struct {
	Flips        int
	MaxOutdegree int
}

// Solve walks inst.Sequence in reverse, maintaining a single
// orientation over inst.V vertices with every out-degree bounded by
// outdegBound. Undoing an original Insert removes whichever direction
// the edge currently holds; undoing an original Delete re-introduces
// the edge oriented away from one endpoint, freeing capacity along a
// short outgoing path first if that endpoint is already at the bound.
// Applies only to alpha == 1 sequences with outdegBound > 1; Solve
// rejects any other arboricity bound, since the short-path search the
// reverse walk relies on only has a logarithmic depth guarantee on a
// forest. The returned orientation covers the edge set left after the
// full sequence; Result holds the total flip count and the highest
// out-degree reached at any point of the run.
func Solve(inst instance.Instance, outdegBound int) (*orientation.Orientation, Result, error) {
	if inst.Alpha != 1 {
		return nil, Result{}, errkind.New(errkind.PreconditionViolated, op+".Solve", "applies only to alpha == 1 instances")
	}

	o := orientation.New(inst.V)
	flips := bootstrap(o, inst, outdegBound)
	peak := o.MaxOutDegree()

	// The reverse walk ends on the empty graph, so the orientation handed
	// back is a separate copy of the bootstrap state.
	final := orientation.New(inst.V)
	bootstrap(final, inst, outdegBound)

	for t := len(inst.Sequence) - 1; t >= 0; t-- {
		c := inst.Sequence[t]
		u, v := c.Edge.U, c.Edge.V

		switch c.Kind {
		case instance.Insert:
			if o.IsOriented(u, v) {
				mustRemove(o, u, v)
			} else {
				mustRemove(o, v, u)
			}
		case instance.Delete:
			flips += reintroduce(o, u, v, outdegBound, inst.V)
			peak = max(peak, o.MaxOutDegree())
		}
	}

	return final, Result{Flips: flips, MaxOutdegree: peak}, nil
}

// bootstrap orients every edge still present after the full sequence
// runs, before the reverse walk starts undoing operations on top of
// it. Without this, a reverse-insert would have nothing to remove for
// an edge that was never deleted.
func bootstrap(o *orientation.Orientation, inst instance.Instance, outdegBound int) int {
	active := map[edge.Edge]bool{}
	for _, c := range inst.Sequence {
		switch c.Kind {
		case instance.Insert:
			active[c.Edge] = true
		case instance.Delete:
			delete(active, c.Edge)
		}
	}

	finalEdges := make([]edge.Edge, 0, len(active))
	for e := range active {
		finalEdges = append(finalEdges, e)
	}

	sort.Slice(finalEdges, func(i, j int) bool {
		return edge.Compare(finalEdges[i], finalEdges[j]) < 0
	})

	flips := 0
	for _, e := range finalEdges {
		flips += reintroduce(o, e.U, e.V, outdegBound, inst.V)
	}

	return flips
}

func mustRemove(o *orientation.Orientation, u, v edge.Vertex) {
	if err := o.RemoveEdge(u, v); err != nil {
		panic(errkind.New(errkind.Impossible, op+".Solve", err.Error()))
	}
}

// reintroduce orients u->v, freeing capacity at u first if it is
// already at outdegBound. Returns the number of flips it performed.
func reintroduce(o *orientation.Orientation, u, v edge.Vertex, outdegBound, vertexCount int) int {
	flips := 0

	if o.OutDegree(u) >= outdegBound {
		path, ok := flipOnShortPath(o, u, outdegBound, vertexCount)
		if !ok {
			panic(errkind.New(errkind.Impossible, op+".reintroduce", "no short augmenting path from a vertex at the out-degree bound"))
		}

		for _, d := range path {
			if err := o.FlipEdge(d.From, d.To); err != nil {
				panic(errkind.New(errkind.Impossible, op+".reintroduce", err.Error()))
			}
		}

		flips += len(path)
	}

	if err := o.OrientEdge(u, v); err != nil {
		panic(errkind.New(errkind.Impossible, op+".reintroduce", err.Error()))
	}

	return flips
}

// flipOnShortPath breadth-first-searches from u along outgoing edges,
// up to depthBound levels, for the nearest vertex whose out-degree is
// below outdegBound. It returns the path of directed edges from u to
// that vertex, in order.
func flipOnShortPath(o *orientation.Orientation, u edge.Vertex, outdegBound, vertexCount int) ([]edge.Directed, bool) {
	maxDepth := depthBound(vertexCount, outdegBound)

	visited := map[edge.Vertex]bool{u: true}
	parent := map[edge.Vertex]edge.Vertex{}
	depthOf := map[edge.Vertex]int{u: 0}
	queue := []edge.Vertex{u}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if depthOf[cur] >= maxDepth {
			continue
		}

		for w := range o.OutNeighbours(cur) {
			if visited[w] {
				continue
			}

			visited[w] = true
			parent[w] = cur
			depthOf[w] = depthOf[cur] + 1

			if o.OutDegree(w) < outdegBound {
				return reconstructPath(parent, u, w), true
			}

			queue = append(queue, w)
		}
	}

	return nil, false
}

func reconstructPath(parent map[edge.Vertex]edge.Vertex, u, w edge.Vertex) []edge.Directed {
	var reversed []edge.Directed

	cur := w
	for cur != u {
		p := parent[cur]
		reversed = append(reversed, edge.Directed{From: p, To: cur})
		cur = p
	}

	path := make([]edge.Directed, len(reversed))
	for i, d := range reversed {
		path[len(reversed)-1-i] = d
	}

	return path
}

// depthBound returns ceil(log(vertexCount) / log(outdegBound)), the
// search radius within which the arboricity bound guarantees a vertex
// under outdegBound is reachable.
func depthBound(vertexCount, outdegBound int) int {
	if outdegBound <= 1 || vertexCount <= 1 {
		return vertexCount
	}

	depth, cap := 0, 1
	for cap < vertexCount {
		cap *= outdegBound
		depth++
	}

	return depth
}
