// Package dot renders the module's core structures as Graphviz DOT,
// and optionally rasterizes that DOT to SVG. It exists purely for
// human inspection of a generated instance or a solver's output; no
// core package depends on it, and the CLI's render command is its only
// importer.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/kamil-cwintal/no-flip-tester/pkg/arbgraph"
	"github.com/kamil-cwintal/no-flip-tester/pkg/edge"
	"github.com/kamil-cwintal/no-flip-tester/pkg/forest"
	"github.com/kamil-cwintal/no-flip-tester/pkg/intervalset"
	"github.com/kamil-cwintal/no-flip-tester/pkg/orientation"
)

// forestPalette assigns a distinct colour to each forest index in a
// multi-forest graph, cycling if alpha exceeds its length.
var forestPalette = []string{"black", "crimson", "steelblue", "darkorange", "seagreen", "purple"}

// Forest renders one forest component as an undirected DOT graph.
func Forest(f *forest.Forest) string {
	var buf bytes.Buffer

	buf.WriteString("graph {\n")
	buf.WriteString("  node [shape=circle];\n")

	for _, e := range collectForestEdges(f) {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.U, e.V)
	}

	buf.WriteString("}\n")

	return buf.String()
}

// BoundedArbGraph renders every forest of g as an undirected DOT graph,
// colouring each forest's edges distinctly so the arboricity
// decomposition is visible.
func BoundedArbGraph(g *arbgraph.Graph) string {
	var buf bytes.Buffer

	buf.WriteString("graph {\n")
	buf.WriteString("  node [shape=circle];\n")

	for i := 0; i < g.Alpha(); i++ {
		colour := forestPalette[i%len(forestPalette)]
		for _, e := range collectForestEdges(g.Forest(i)) {
			fmt.Fprintf(&buf, "  %d -- %d [color=%q];\n", e.U, e.V, colour)
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}

// Orientation renders an orientation as a directed DOT graph, one
// arrow per oriented edge, labelling each node with its current
// out-degree.
func Orientation(o *orientation.Orientation, v int) string {
	var buf bytes.Buffer

	buf.WriteString("digraph {\n")
	buf.WriteString("  node [shape=circle];\n")

	for u := 0; u < v; u++ {
		fmt.Fprintf(&buf, "  %d [label=%q];\n", u, fmt.Sprintf("%d (%d)", u, o.OutDegree(u)))

		for w := range o.OutNeighbours(u) {
			fmt.Fprintf(&buf, "  %d -> %d;\n", u, w)
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}

// Intervals renders an interval set as plain text: a header line
// giving the instance's size, arboricity, and timeframe, followed by
// one line per interval in the form "{u, v} FROM low TO high", tagged
// with its current assignment status. This is not DOT — interval sets
// have no graph to draw, only a list of edge lifetimes.
func Intervals(s *intervalset.Set) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "|V| = %d, alpha = %d, timeframe = %d\n", s.V, s.Alpha, s.Timeframe)

	for _, iv := range s.Intervals {
		fmt.Fprintf(&buf, "%s\n", formatInterval(iv))
	}

	return buf.String()
}

func formatInterval(iv *intervalset.Interval) string {
	head := fmt.Sprintf("{%d, %d} FROM %d TO %d", iv.Edge.U, iv.Edge.V, iv.Low, iv.High)

	switch iv.Status {
	case intervalset.FirstChosen:
		return fmt.Sprintf("%s (SET %d)", head, iv.Edge.U)
	case intervalset.SecondChosen:
		return fmt.Sprintf("%s (SET %d)", head, iv.Edge.V)
	default:
		return head + " (NOT SET)"
	}
}

// RenderSVG rasterizes a DOT source string to SVG bytes via Graphviz.
func RenderSVG(dotSource string) ([]byte, error) {
	ctx := context.Background()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSource))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render SVG: %w", err)
	}

	return buf.Bytes(), nil
}

func collectForestEdges(f *forest.Forest) []edge.Edge {
	edges := make([]edge.Edge, 0, f.Len())

	for i := 0; i < f.Len(); i++ {
		e, err := f.EdgeAt(i)
		if err != nil {
			break
		}

		edges = append(edges, e)
	}

	return edges
}
