package avltree

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
)

func ordered[T cmp.Ordered]() *Tree[T] {
	return New[T](func(a, b T) int { return cmp.Compare(a, b) })
}

func collect[T any](tr *Tree[T]) []T {
	var out []T
	for k := range tr.All() {
		out = append(out, k)
	}

	return out
}

func TestInsertNth(t *testing.T) {
	t.Parallel()

	tr := ordered[int]()
	for _, k := range []int{5, 3, 8, 3, 1, 9, 7} {
		tr.Insert(k)
	}

	want := []int{1, 3, 3, 5, 7, 8, 9}
	for i, w := range want {
		got, err := tr.Nth(i)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}

	assert.Equal(t, want, collect(tr))
}

func TestRemoveThenNth(t *testing.T) {
	t.Parallel()

	tr := ordered[int]()
	for _, k := range []int{5, 3, 8, 3, 1, 9, 7} {
		tr.Insert(k)
	}

	assert.True(t, tr.Remove(3))

	want := []int{1, 3, 5, 7, 8, 9}
	for i, w := range want {
		got, err := tr.Nth(i)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
}

func TestEmptyTreeMinMaxNth(t *testing.T) {
	t.Parallel()

	tr := ordered[int]()

	_, err := tr.Min()
	require.Error(t, err)
	assert.True(t, errkind.Is(err, errkind.EmptyStructure))

	_, err = tr.Max()
	require.Error(t, err)
	assert.True(t, errkind.Is(err, errkind.EmptyStructure))

	_, err = tr.Nth(0)
	require.Error(t, err)
	assert.True(t, errkind.Is(err, errkind.OutOfRange))
}

func TestSingleElement(t *testing.T) {
	t.Parallel()

	tr := ordered[int]()
	tr.Insert(42)

	mn, err := tr.Min()
	require.NoError(t, err)
	mx, err := tr.Max()
	require.NoError(t, err)
	nth, err := tr.Nth(0)
	require.NoError(t, err)

	assert.Equal(t, 42, mn)
	assert.Equal(t, 42, mx)
	assert.Equal(t, 42, nth)
}

func TestContains(t *testing.T) {
	t.Parallel()

	tr := ordered[int]()
	for _, k := range []int{10, 20, 30} {
		tr.Insert(k)
	}

	assert.True(t, tr.Contains(20))
	assert.False(t, tr.Contains(25))
}

func TestRankIsContiguousForPrefix(t *testing.T) {
	t.Parallel()

	tr := ordered[int]()
	for _, k := range []int{1, 3, 3, 5, 7, 8, 9} {
		tr.Insert(k)
	}

	// Rank(5) counts everything strictly less than 5.
	assert.Equal(t, 3, tr.Rank(5))
	// Rank(k) then Rank(k+epsilon) bounds the contiguous run of k's.
	assert.Equal(t, 1, tr.Rank(3))
}

func TestBalanceInvariantHolds(t *testing.T) {
	t.Parallel()

	tr := ordered[int]()
	for i := range 500 {
		tr.Insert(i)
	}

	for i := 0; i < 500; i += 2 {
		tr.Remove(i)
	}

	assertBalanced(t, tr.root)
	assert.Equal(t, 250, tr.Len())
}

func assertBalanced[T any](t *testing.T, n *node[T]) {
	t.Helper()

	if n == nil {
		return
	}

	bf := balanceFactor(n)
	assert.LessOrEqual(t, bf, 1)
	assert.GreaterOrEqual(t, bf, -1)
	assert.Equal(t, 1+nodeCount(n.left)+nodeCount(n.right), n.count)

	assertBalanced(t, n.left)
	assertBalanced(t, n.right)
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	t.Parallel()

	tr := ordered[int]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tr.Insert(k)
	}

	before := collect(tr)

	tr.Insert(100)
	assert.True(t, tr.Remove(100))

	assert.Equal(t, before, collect(tr))
}
