// Package kowalik implements the offline, flip-free baseline: a
// divide-and-conquer construction that orients every graph snapshot of
// an operation sequence without ever flipping an edge that was already
// oriented by a previous snapshot's computation, at the cost of a
// peak out-degree that grows with log of the sequence length rather
// than staying bounded.
package kowalik

import (
	"github.com/kamil-cwintal/no-flip-tester/pkg/edge"
	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
	"github.com/kamil-cwintal/no-flip-tester/pkg/instance"
)

const op = "kowalik"

// Result is the per-snapshot orientation produced by [Solve], plus the
// peak out-degree observed across every snapshot.
type Result struct {
	// Dirs[t] maps each edge present at time t to the vertex it points
	// from. An edge absent from the snapshot has no entry.
	Dirs         []map[edge.Edge]edge.Vertex
	MaxOutdegree int
}

type snapshot struct {
	edges []edge.Edge
}

// Solve builds the graph snapshot at every time index of inst and
// recursively orients them: the midpoint of each range is oriented
// fresh by rooting a DFS at vertex 0, and every snapshot in the range
// is then flipped into agreement with the midpoint wherever they share
// an edge. Applies only to alpha == 1 sequences, since the recursion
// relies on every snapshot being a forest; Solve rejects any other
// arboricity bound.
func Solve(inst instance.Instance) (Result, error) {
	if inst.Alpha != 1 {
		return Result{}, errkind.New(errkind.PreconditionViolated, op+".Solve", "applies only to alpha == 1 instances")
	}

	snapshots := buildSnapshots(inst)

	dirs := make([]map[edge.Edge]edge.Vertex, len(snapshots))
	if len(snapshots) > 0 {
		solve(snapshots, dirs, inst.V, 0, len(snapshots)-1)
	}

	assertNoInterSnapshotFlips(dirs)

	return Result{Dirs: dirs, MaxOutdegree: maxOutdegreeAcross(dirs, inst.V)}, nil
}

// assertNoInterSnapshotFlips checks the flip-free guarantee the
// recursion is supposed to deliver: for every pair of consecutive
// snapshots, an edge they both orient must point the same way in
// both. The merge step inside solve only ever flips a range's interior
// snapshots into agreement with their own midpoint, so by the time the
// full recursion returns, adjacent snapshots can no longer disagree on
// a shared edge.
func assertNoInterSnapshotFlips(dirs []map[edge.Edge]edge.Vertex) {
	for t := 1; t < len(dirs); t++ {
		for e, from := range dirs[t-1] {
			if prevFrom, ok := dirs[t][e]; ok && prevFrom != from {
				panic(errkind.New(errkind.Impossible, op+".Solve", "adjacent snapshots disagree on a shared edge's direction"))
			}
		}
	}
}

// buildSnapshots replays inst.Sequence and records the live edge set
// after every command, one entry per command index.
func buildSnapshots(inst instance.Instance) []snapshot {
	active := map[edge.Edge]bool{}
	snapshots := make([]snapshot, len(inst.Sequence))

	for t, c := range inst.Sequence {
		switch c.Kind {
		case instance.Insert:
			active[c.Edge] = true
		case instance.Delete:
			delete(active, c.Edge)
		}

		edges := make([]edge.Edge, 0, len(active))
		for e := range active {
			edges = append(edges, e)
		}

		snapshots[t] = snapshot{edges: edges}
	}

	return snapshots
}

// solve fills dirs[s..e] in place. The midpoint m is oriented directly
// from its own snapshot; both halves are solved first and then aligned
// against m's orientation wherever an edge survives into the midpoint's
// snapshot.
func solve(snapshots []snapshot, dirs []map[edge.Edge]edge.Vertex, v, s, e int) {
	if s == e {
		dirs[s] = rootedOrient(snapshots[s].edges, v)
		return
	}

	half := (e - s + 2) / 2 // ceil((e-s+1)/2)
	m := s + half

	if s <= m-1 {
		solve(snapshots, dirs, v, s, m-1)
	}
	if m+1 <= e {
		solve(snapshots, dirs, v, m+1, e)
	}

	gm := rootedOrient(snapshots[m].edges, v)
	dirs[m] = gm

	for t := s; t <= e; t++ {
		if t == m {
			continue
		}

		for e2, from := range dirs[t] {
			if gmFrom, ok := gm[e2]; ok && gmFrom != from {
				dirs[t][e2] = gmFrom
			}
		}
	}
}

// rootedOrient 1-orients a forest by rooting a DFS at the lowest
// unvisited vertex of every component and directing each discovered
// edge from the child back toward its parent.
func rootedOrient(edges []edge.Edge, v int) map[edge.Edge]edge.Vertex {
	adj := make(map[edge.Vertex][]edge.Edge, v)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e)
		adj[e.V] = append(adj[e.V], e)
	}

	dir := make(map[edge.Edge]edge.Vertex, len(edges))
	visited := make([]bool, v)

	for root := 0; root < v; root++ {
		if visited[root] {
			continue
		}

		visited[root] = true
		stack := []edge.Vertex{root}

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, e := range adj[cur] {
				child := e.Other(cur)
				if visited[child] {
					continue
				}

				visited[child] = true
				dir[e] = child
				stack = append(stack, child)
			}
		}
	}

	return dir
}

func maxOutdegreeAcross(dirs []map[edge.Edge]edge.Vertex, v int) int {
	best := 0
	outdeg := make([]int, v)

	for _, dir := range dirs {
		for i := range outdeg {
			outdeg[i] = 0
		}

		for _, from := range dir {
			outdeg[from]++
		}

		for _, d := range outdeg {
			best = max(best, d)
		}
	}

	return best
}
