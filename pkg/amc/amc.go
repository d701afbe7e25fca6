// Package amc implements the Adaptive Minimise Collisions solver: a
// score-driven greedy that assigns each edge-occurrence interval to one
// of its two endpoints, minimising the peak per-vertex out-degree over
// time. It is the consumer that the order-statistic AVL tree, the
// interval tree, and the lazy segment tree all exist to serve.
package amc

import (
	"github.com/kamil-cwintal/no-flip-tester/pkg/avltree"
	"github.com/kamil-cwintal/no-flip-tester/pkg/intervaltree"
	"github.com/kamil-cwintal/no-flip-tester/pkg/intervalset"
	"github.com/kamil-cwintal/no-flip-tester/pkg/segtree"
)

// Solver runs the AMC greedy over one interval set.
type Solver struct {
	set *intervalset.Set

	assigned   []*intervaltree.Tree[int, *intervalset.Interval]
	unassigned []*intervaltree.Tree[int, *intervalset.Interval]
	outdeg     []*segtree.Tree[int]

	queue *avltree.Tree[*intervalset.Interval]

	maxOutdegree int
}

// New builds a solver over set. Every interval starts Unset, queued by
// (score desc, time-bounds asc), and indexed into the unassigned tree
// of both of its endpoints.
func New(set *intervalset.Set) *Solver {
	s := &Solver{
		set:        set,
		assigned:   make([]*intervaltree.Tree[int, *intervalset.Interval], set.V),
		unassigned: make([]*intervaltree.Tree[int, *intervalset.Interval], set.V),
		outdeg:     make([]*segtree.Tree[int], set.V),
		queue:      avltree.New(priorityCompare),
	}

	for v := 0; v < set.V; v++ {
		s.assigned[v] = intervaltree.New[int, *intervalset.Interval]()
		s.unassigned[v] = intervaltree.New[int, *intervalset.Interval]()
		s.outdeg[v] = segtree.NewRangeAddMax(max(set.Timeframe, 1))
	}

	for _, iv := range set.Intervals {
		s.unassigned[iv.Edge.U].Insert(iv.Low, iv.High, iv)
		s.unassigned[iv.Edge.V].Insert(iv.Low, iv.High, iv)
		s.queue.Insert(iv)
	}

	return s
}

// priorityCompare orders the queue by score descending, then by time
// bounds ascending as the tiebreak. Time bounds are unique across
// intervals, so this is a strict total order.
func priorityCompare(a, b *intervalset.Interval) int {
	if a.Score != b.Score {
		return b.Score - a.Score
	}

	if a.Low != b.Low {
		return a.Low - b.Low
	}

	return a.High - b.High
}

// Run executes the greedy loop to completion and returns the resulting
// peak out-degree. Every interval's Status is set to FirstChosen or
// SecondChosen as a side effect.
func (s *Solver) Run() int {
	for s.queue.Len() > 0 {
		iv := s.popHighestPriority()

		u, v := iv.Edge.U, iv.Edge.V

		s.unassigned[u].Remove(iv.Low, iv.High, iv)
		s.unassigned[v].Remove(iv.Low, iv.High, iv)

		cu := s.assigned[u].CountOverlaps(iv.Low, iv.High)
		cv := s.assigned[v].CountOverlaps(iv.Low, iv.High)

		owner := u
		iv.Status = intervalset.FirstChosen

		if cu > cv {
			owner = v
			iv.Status = intervalset.SecondChosen
		}

		s.assign(iv, owner)
		s.propagateScores(iv, owner)
	}

	return s.maxOutdegree
}

func (s *Solver) popHighestPriority() *intervalset.Interval {
	iv, err := s.queue.Min()
	if err != nil {
		panic(err)
	}

	s.queue.Remove(iv)

	return iv
}

func (s *Solver) assign(iv *intervalset.Interval, owner int) {
	s.assigned[owner].Insert(iv.Low, iv.High, iv)

	if err := s.outdeg[owner].RangeUpdate(iv.Low, iv.High, 1); err != nil {
		panic(err)
	}

	peak, err := s.outdeg[owner].RangeQuery(iv.Low, iv.High)
	if err != nil {
		panic(err)
	}

	s.maxOutdegree = max(s.maxOutdegree, peak)
}

// propagateScores increments the score of every Unset interval still
// touching owner that overlaps iv's timespan, since the owner's load
// just grew and makes those intervals harder to place there.
func (s *Solver) propagateScores(iv *intervalset.Interval, owner int) {
	for _, stored := range s.unassigned[owner].Overlaps(iv.Low, iv.High) {
		j := stored.Value

		s.queue.Remove(j)
		j.Score++
		s.queue.Insert(j)
	}
}

// MaxOutdegree returns the peak out-degree computed by the most recent
// Run call.
func (s *Solver) MaxOutdegree() int {
	return s.maxOutdegree
}
