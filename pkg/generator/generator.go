// Package generator drives a bounded-arboricity graph through a
// stochastic stream of Insert/Delete commands, biasing toward the
// target edge density and periodically forcing a run of Deletes (a
// "purge phase") to drain the edge set back down.
package generator

import (
	"github.com/kamil-cwintal/no-flip-tester/pkg/arbgraph"
	"github.com/kamil-cwintal/no-flip-tester/pkg/edge"
	"github.com/kamil-cwintal/no-flip-tester/pkg/instance"
	"github.com/kamil-cwintal/no-flip-tester/pkg/mtrand"
)

// Sampler draws a candidate endpoint pair in [0, v) for a forest
// insertion attempt. Uniform and Geometric are the two variants the
// spec calls out; a generator is configured with one, not subclassed.
type Sampler func(r *mtrand.Rand, v int) (a, b edge.Vertex)

// UniformSampler draws both endpoints uniformly at random.
func UniformSampler(r *mtrand.Rand, v int) (edge.Vertex, edge.Vertex) {
	return r.Intn(v), r.Intn(v)
}

// GeometricSampler draws one endpoint uniformly and the other from a
// geometric distribution with success probability q, clamped to v-1.
// This biases the degree distribution toward a few hub vertices.
func GeometricSampler(q float64) Sampler {
	return func(r *mtrand.Rand, v int) (edge.Vertex, edge.Vertex) {
		return r.Intn(v), r.Geometric(q, v-1)
	}
}

// Config parameterises one generator run.
type Config struct {
	V       int     // vertex count
	Alpha   int     // arboricity bound
	Delta   float64 // target edge density in (0, 1)
	Purge   float64 // probability of starting a purge phase each step
	Length  int     // number of commands to emit
	Seed    uint64
	Sampler Sampler // defaults to UniformSampler if nil
}

// Generator produces a reproducible operation sequence over a bounded-
// arboricity graph it owns and mutates as it goes.
type Generator struct {
	cfg            Config
	rng            *mtrand.Rand
	graph          *arbgraph.Graph
	purgeCountdown int
}

// New constructs a generator from cfg. The underlying graph starts
// empty.
func New(cfg Config) *Generator {
	if cfg.Sampler == nil {
		cfg.Sampler = UniformSampler
	}

	return &Generator{
		cfg:   cfg,
		rng:   mtrand.NewFromSeed(cfg.Seed),
		graph: arbgraph.New(cfg.V, cfg.Alpha),
	}
}

// Graph exposes the underlying graph, e.g. so a caller can render the
// final state after Generate returns.
func (g *Generator) Graph() *arbgraph.Graph {
	return g.graph
}

// Generate emits cfg.Length commands, applying each to the owned graph
// as it is produced, and returns the resulting instance.
func (g *Generator) Generate() instance.Instance {
	seq := make([]instance.Command, 0, g.cfg.Length)

	for i := 0; i < g.cfg.Length; i++ {
		seq = append(seq, g.step())
	}

	return instance.Instance{V: g.cfg.V, Alpha: g.cfg.Alpha, Sequence: seq}
}

func (g *Generator) step() instance.Command {
	kind := g.chooseKind()

	var e edge.Edge

	if kind == instance.Insert {
		e = g.performInsert()
	} else {
		e = g.performDelete()
	}

	g.advancePurgeGate()

	return instance.Command{Kind: kind, Edge: e}
}

func (g *Generator) chooseKind() instance.Kind {
	switch {
	case g.graph.EdgeCount() == 0:
		return instance.Insert
	case g.graph.EdgeCount() == g.graph.Capacity():
		return instance.Delete
	case g.purgeCountdown > 0:
		return instance.Delete
	case g.rng.Bool(g.pInsert()):
		return instance.Insert
	default:
		return instance.Delete
	}
}

// pInsert implements the density-responsive insertion probability:
// continuous at d=delta (value 1/2), zero at d=1.
func (g *Generator) pInsert() float64 {
	d := float64(g.graph.EdgeCount()) / float64(g.graph.Capacity())
	delta := g.cfg.Delta

	if d <= delta {
		return 1 - d/(2*delta)
	}

	return (1 - d) / (2 - 2*delta)
}

// performInsert resamples an endpoint pair and a target forest until
// one accepts the edge. Rejection is bounded by graph geometry: with
// the edge count strictly below capacity, some (forestIdx, a, b) always
// succeeds.
func (g *Generator) performInsert() edge.Edge {
	for {
		forestIdx := g.rng.Intn(g.cfg.Alpha)
		a, b := g.cfg.Sampler(g.rng, g.cfg.V)

		if g.graph.Insert(forestIdx, a, b) {
			return edge.Canon(a, b)
		}
	}
}

// performDelete samples a uniform edge index across all forests and
// removes it.
func (g *Generator) performDelete() edge.Edge {
	idx := g.rng.Intn(g.graph.EdgeCount())

	e, err := g.graph.GetEdge(idx)
	if err != nil {
		panic(err)
	}

	g.graph.Delete(e.U, e.V)

	return e
}

func (g *Generator) advancePurgeGate() {
	if g.purgeCountdown > 0 {
		g.purgeCountdown--

		return
	}

	if g.rng.Bool(g.cfg.Purge) {
		g.purgeCountdown = g.rng.Intn(g.graph.EdgeCount()/2 + 1)
	}
}
