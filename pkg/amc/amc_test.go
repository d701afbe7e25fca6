package amc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamil-cwintal/no-flip-tester/pkg/edge"
	"github.com/kamil-cwintal/no-flip-tester/pkg/instance"
	"github.com/kamil-cwintal/no-flip-tester/pkg/intervalset"
)

func cmd(kind instance.Kind, u, v int) instance.Command {
	return instance.Command{Kind: kind, Edge: edge.Canon(u, v)}
}

func TestScenarioOnePeakIsOne(t *testing.T) {
	t.Parallel()

	inst := instance.Instance{
		V: 4, Alpha: 1,
		Sequence: []instance.Command{
			cmd(instance.Insert, 0, 1),
			cmd(instance.Insert, 1, 2),
			cmd(instance.Insert, 2, 3),
			cmd(instance.Delete, 1, 2),
		},
	}

	set := intervalset.FromCommands(inst)
	solver := New(set)

	assert.Equal(t, 1, solver.Run())
}

func TestScenarioTwoPeakIsOne(t *testing.T) {
	t.Parallel()

	inst := instance.Instance{
		V: 3, Alpha: 1,
		Sequence: []instance.Command{
			cmd(instance.Insert, 0, 1),
			cmd(instance.Insert, 0, 2),
			cmd(instance.Delete, 0, 1),
			cmd(instance.Insert, 1, 2),
		},
	}

	set := intervalset.FromCommands(inst)
	solver := New(set)

	assert.Equal(t, 1, solver.Run())
}

func TestScenarioThreePeakIsOne(t *testing.T) {
	t.Parallel()

	inst := instance.Instance{
		V: 2, Alpha: 1,
		Sequence: []instance.Command{
			cmd(instance.Insert, 0, 1),
		},
	}

	set := intervalset.FromCommands(inst)
	solver := New(set)

	assert.Equal(t, 1, solver.Run())
}

func TestEveryIntervalEndsUpAssigned(t *testing.T) {
	t.Parallel()

	inst := instance.Instance{
		V: 5, Alpha: 2,
		Sequence: []instance.Command{
			cmd(instance.Insert, 0, 1),
			cmd(instance.Insert, 1, 2),
			cmd(instance.Insert, 2, 3),
			cmd(instance.Insert, 3, 4),
			cmd(instance.Delete, 0, 1),
			cmd(instance.Insert, 0, 4),
			cmd(instance.Delete, 2, 3),
			cmd(instance.Insert, 0, 2),
		},
	}

	set := intervalset.FromCommands(inst)
	solver := New(set)

	solver.Run()

	for _, iv := range set.Intervals {
		assert.NotEqual(t, intervalset.Unset, iv.Status)
	}
}

func TestMaxOutdegreeMatchesBruteForcePeak(t *testing.T) {
	t.Parallel()

	inst := instance.Instance{
		V: 5, Alpha: 2,
		Sequence: []instance.Command{
			cmd(instance.Insert, 0, 1),
			cmd(instance.Insert, 1, 2),
			cmd(instance.Insert, 2, 3),
			cmd(instance.Insert, 3, 4),
			cmd(instance.Delete, 0, 1),
			cmd(instance.Insert, 0, 4),
			cmd(instance.Delete, 2, 3),
			cmd(instance.Insert, 0, 2),
		},
	}

	set := intervalset.FromCommands(inst)
	solver := New(set)

	got := solver.Run()

	want := bruteForcePeak(set)
	assert.Equal(t, want, got)
}

// bruteForcePeak recomputes the peak out-degree directly from each
// interval's final Status, independent of the solver's own bookkeeping.
func bruteForcePeak(set *intervalset.Set) int {
	load := make([][]int, set.V)
	for v := range load {
		load[v] = make([]int, set.Timeframe)
	}

	peak := 0

	for _, iv := range set.Intervals {
		owner := iv.Edge.U
		if iv.Status == intervalset.SecondChosen {
			owner = iv.Edge.V
		}

		for t := iv.Low; t <= iv.High; t++ {
			load[owner][t]++
			peak = max(peak, load[owner][t])
		}
	}

	return peak
}
