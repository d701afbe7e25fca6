package segtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
)

func TestRangeAddMaxLiteralExample(t *testing.T) {
	t.Parallel()

	tr := NewRangeAddMax(8)

	require.NoError(t, tr.RangeUpdate(1, 4, 3))
	require.NoError(t, tr.RangeUpdate(3, 6, 2))

	got, err := tr.RangeQuery(0, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = tr.RangeQuery(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = tr.RangeQuery(5, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestRangeAddSum(t *testing.T) {
	t.Parallel()

	tr := NewRangeAddSum(16)

	require.NoError(t, tr.RangeUpdate(0, 15, 1))
	require.NoError(t, tr.RangeUpdate(4, 7, 2))

	got, err := tr.RangeQuery(0, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(16+4*2), got)

	got, err = tr.RangeQuery(4, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4*3), got)
}

func TestSizeOneTreeConstructs(t *testing.T) {
	t.Parallel()

	tr := NewRangeAddMax(1)

	require.NoError(t, tr.RangeUpdate(0, 0, 5))

	got, err := tr.RangeQuery(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestOutOfRangeRejected(t *testing.T) {
	t.Parallel()

	tr := NewRangeAddMax(8)

	err := tr.RangeUpdate(-1, 3, 1)
	require.Error(t, err)
	assert.True(t, errkind.Is(err, errkind.OutOfRange))

	_, err = tr.RangeQuery(0, 8)
	require.Error(t, err)
	assert.True(t, errkind.Is(err, errkind.OutOfRange))
}

func TestInterleavedUpdatesAndQueriesAgainstBruteForce(t *testing.T) {
	t.Parallel()

	const domain = 32

	tr := NewRangeAddMax(domain)
	brute := make([]int, domain)

	updates := [][3]int{
		{0, 31, 1},
		{5, 10, 4},
		{20, 25, -2},
		{3, 3, 7},
		{15, 31, 2},
	}

	for _, u := range updates {
		l, r, v := u[0], u[1], u[2]

		require.NoError(t, tr.RangeUpdate(l, r, v))

		for i := l; i <= r; i++ {
			brute[i] += v
		}
	}

	queries := [][2]int{{0, 31}, {0, 0}, {5, 10}, {20, 25}, {3, 3}, {15, 31}}
	for _, q := range queries {
		want := brute[q[0]]
		for i := q[0] + 1; i <= q[1]; i++ {
			want = max(want, brute[i])
		}

		got, err := tr.RangeQuery(q[0], q[1])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
