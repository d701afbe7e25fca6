// Package instance defines the operation-sequence types shared by the
// generator, the interval reformulation, and the baseline strategies:
// an ordered list of canonicalised Insert/Delete commands over a
// bounded-arboricity graph.
package instance

import "github.com/kamil-cwintal/no-flip-tester/pkg/edge"

// Kind distinguishes an edge insertion from a deletion.
type Kind int

const (
	Insert Kind = iota
	Delete
)

func (k Kind) String() string {
	if k == Insert {
		return "insert"
	}

	return "delete"
}

// Command is one step of an operation sequence: an Insert or Delete of
// a canonicalised edge.
type Command struct {
	Kind Kind
	Edge edge.Edge
}

// Instance is a complete operation sequence over a graph with V
// vertices and arboricity bound alpha. Applying Sequence in order to an
// empty alpha-bounded graph must succeed at every step: Insert never
// violates arboricity or duplicates an edge, Delete never removes a
// nonexistent edge.
type Instance struct {
	V        int
	Alpha    int
	Sequence []Command
}
