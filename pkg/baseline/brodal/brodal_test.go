package brodal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamil-cwintal/no-flip-tester/pkg/edge"
	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
	"github.com/kamil-cwintal/no-flip-tester/pkg/generator"
	"github.com/kamil-cwintal/no-flip-tester/pkg/instance"
)

func cmd(kind instance.Kind, u, v int) instance.Command {
	return instance.Command{Kind: kind, Edge: edge.Canon(u, v)}
}

func TestFinalOrientationRespectsBound(t *testing.T) {
	t.Parallel()

	inst := instance.Instance{
		V: 6, Alpha: 1,
		Sequence: []instance.Command{
			cmd(instance.Insert, 0, 1),
			cmd(instance.Insert, 1, 2),
			cmd(instance.Insert, 2, 3),
			cmd(instance.Insert, 3, 4),
			cmd(instance.Insert, 4, 5),
			cmd(instance.Delete, 0, 1),
			cmd(instance.Insert, 0, 1),
		},
	}

	_, result, err := Solve(inst, 2)
	require.NoError(t, err)

	assert.LessOrEqual(t, result.MaxOutdegree, 2)
	assert.GreaterOrEqual(t, result.Flips, 0)
}

func TestOrientationCoversFinalEdgeSet(t *testing.T) {
	t.Parallel()

	inst := instance.Instance{
		V: 4, Alpha: 1,
		Sequence: []instance.Command{
			cmd(instance.Insert, 0, 1),
			cmd(instance.Insert, 1, 2),
			cmd(instance.Insert, 2, 3),
		},
	}

	o, _, err := Solve(inst, 3)
	require.NoError(t, err)

	assert.True(t, o.IsOriented(0, 1) || o.IsOriented(1, 0))
	assert.True(t, o.IsOriented(1, 2) || o.IsOriented(2, 1))
	assert.True(t, o.IsOriented(2, 3) || o.IsOriented(3, 2))
}

func TestBoundHeldAcrossGeneratedInstances(t *testing.T) {
	t.Parallel()

	const bound = 3

	for _, length := range []int{50, 200, 500} {
		g := generator.New(generator.Config{V: 30, Alpha: 1, Delta: 0.5, Purge: 0.1, Length: length, Seed: uint64(length) + 1000})
		inst := g.Generate()

		_, result, err := Solve(inst, bound)
		require.NoError(t, err)

		assert.LessOrEqual(t, result.MaxOutdegree, bound, "length %d", length)
	}
}

func TestEmptySequenceLeavesOrientationEmpty(t *testing.T) {
	t.Parallel()

	o, result, err := Solve(instance.Instance{V: 3, Alpha: 1}, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Flips)
	assert.Equal(t, 0, o.MaxOutDegree())
}

func TestSolveRejectsAlphaOtherThanOne(t *testing.T) {
	t.Parallel()

	_, _, err := Solve(instance.Instance{V: 3, Alpha: 2}, 3)

	require.Error(t, err)
	assert.True(t, errkind.Is(err, errkind.PreconditionViolated))
}
