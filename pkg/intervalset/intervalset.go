// Package intervalset reformulates an operation sequence into a set of
// edge-occurrence intervals: for each canonicalised edge, the spans of
// time during which it was present in the graph. The AMC solver
// (pkg/amc) consumes this reformulation; the baseline strategies work
// on the raw command stream instead.
package intervalset

import (
	"github.com/kamil-cwintal/no-flip-tester/pkg/edge"
	"github.com/kamil-cwintal/no-flip-tester/pkg/instance"
)

// Status is the ownership state of an interval.
type Status int

const (
	Unset Status = iota
	FirstChosen
	SecondChosen
)

func (s Status) String() string {
	switch s {
	case FirstChosen:
		return "first-chosen"
	case SecondChosen:
		return "second-chosen"
	default:
		return "unset"
	}
}

// Interval is the lifetime [Low, High] of one occurrence of an edge
// within an operation sequence. Low and High are command indices; two
// distinct intervals never share the exact pair (Low, High), which is
// what makes time bounds a total-order key for solver lookups.
//
// Score and Status are mutated in place by the AMC solver; every
// consumer of an IntervalSet holds pointers, not copies, so that
// mutation is visible everywhere the interval is referenced.
type Interval struct {
	Low, High int
	Edge      edge.Edge
	Status    Status
	Score     int
	// Synthetic marks an interval whose High was closed artificially
	// because the edge was never deleted, rather than by a real Delete
	// command — ToCommands needs this to reconstruct the original
	// stream without inventing a Delete that never happened.
	Synthetic bool
}

// Set is the interval reformulation of one operation instance.
type Set struct {
	V         int
	Alpha     int
	Timeframe int
	Intervals []*Interval
}

// FromCommands converts inst's command sequence into an interval set.
// Insert and Delete strictly alternate per edge, starting with Insert;
// each paired (Insert, Delete) produces one closed interval, and an
// edge still present at the end of the sequence gets one interval
// synthetically closed at the index of the final command.
func FromCommands(inst instance.Instance) *Set {
	history := map[edge.Edge][]int{}

	for t, cmd := range inst.Sequence {
		history[cmd.Edge] = append(history[cmd.Edge], t)
	}

	lastIndex := len(inst.Sequence) - 1

	set := &Set{V: inst.V, Alpha: inst.Alpha, Timeframe: len(inst.Sequence)}

	for e, timestamps := range history {
		pairs := len(timestamps) / 2

		for i := 0; i < pairs; i++ {
			set.Intervals = append(set.Intervals, &Interval{
				Low:  timestamps[2*i],
				High: timestamps[2*i+1],
				Edge: e,
			})
		}

		if len(timestamps)%2 == 1 {
			set.Intervals = append(set.Intervals, &Interval{
				Low:       timestamps[len(timestamps)-1],
				High:      lastIndex,
				Edge:      e,
				Synthetic: true,
			})
		}
	}

	return set
}

// ToCommands reconstructs the operation stream an interval set was
// built from: two commands per paired interval (Insert at Low, Delete
// at High), one Insert for an interval marked Synthetic (unpaired,
// closed at the sequence's final index). The result reproduces
// the original ordered multiset of commands modulo order; callers that
// need the exact original order must sort by timestamp themselves.
func (s *Set) ToCommands() []instance.Command {
	var out []instance.Command

	for _, iv := range s.Intervals {
		out = append(out, instance.Command{Kind: instance.Insert, Edge: iv.Edge})

		if !iv.Synthetic {
			out = append(out, instance.Command{Kind: instance.Delete, Edge: iv.Edge})
		}
	}

	return out
}
