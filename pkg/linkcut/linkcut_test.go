package linkcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkThenConnected(t *testing.T) {
	t.Parallel()

	f := New(5)

	require.NoError(t, f.Link(1, 2))
	require.NoError(t, f.Link(2, 3))

	assert.True(t, f.Connected(1, 3))
	assert.False(t, f.Connected(1, 4))
	assert.False(t, f.Connected(4, 5))
}

func TestLinkAlreadyConnectedRejected(t *testing.T) {
	t.Parallel()

	f := New(3)
	require.NoError(t, f.Link(1, 2))
	require.NoError(t, f.Link(2, 3))

	err := f.Link(1, 3)
	require.Error(t, err)
}

func TestCutSeparates(t *testing.T) {
	t.Parallel()

	f := New(3)
	require.NoError(t, f.Link(1, 2))
	require.NoError(t, f.Link(2, 3))

	require.NoError(t, f.Cut(2, 3))

	assert.True(t, f.Connected(1, 2))
	assert.False(t, f.Connected(1, 3))
	assert.False(t, f.Connected(2, 3))
}

func TestCutNonAdjacentRejected(t *testing.T) {
	t.Parallel()

	f := New(3)
	require.NoError(t, f.Link(1, 2))
	require.NoError(t, f.Link(2, 3))

	err := f.Cut(1, 3)
	require.Error(t, err)
}

func TestVertexConnectedToItself(t *testing.T) {
	t.Parallel()

	f := New(4)

	assert.True(t, f.Connected(1, 1))
}

// TestConnectedAfterMixedLinkCutSequence replays a fixed sequence of
// links and cuts and checks the resulting components by hand.
func TestConnectedAfterMixedLinkCutSequence(t *testing.T) {
	t.Parallel()

	const n = 8

	f := New(n)

	type step struct {
		op   string
		u, v int
	}

	steps := []step{
		{"link", 1, 2},
		{"link", 2, 3},
		{"link", 4, 5},
		{"link", 5, 6},
		{"link", 3, 4},
		{"cut", 2, 3},
		{"link", 7, 8},
		{"cut", 5, 6},
		{"link", 6, 7},
	}

	for _, s := range steps {
		switch s.op {
		case "link":
			require.NoError(t, f.Link(s.u, s.v))
		case "cut":
			require.NoError(t, f.Cut(s.u, s.v))
		}
	}

	// Final expected components after the above script, worked out by
	// hand: {1,2}, {3,4,5}, {6,7,8}.
	assertConnected(t, f, 1, 2, true)
	assertConnected(t, f, 2, 3, false)
	assertConnected(t, f, 3, 4, true)
	assertConnected(t, f, 4, 5, true)
	assertConnected(t, f, 6, 7, true)
	assertConnected(t, f, 7, 8, true)
	assertConnected(t, f, 5, 6, false)
}

func assertConnected(t *testing.T, f *Forest, u, v int, want bool) {
	t.Helper()

	assert.Equal(t, want, f.Connected(u, v), "Connected(%d, %d)", u, v)
}

func TestRepeatedMakeRootDoesNotCorruptStructure(t *testing.T) {
	t.Parallel()

	f := New(6)
	require.NoError(t, f.Link(1, 2))
	require.NoError(t, f.Link(2, 3))
	require.NoError(t, f.Link(3, 4))
	require.NoError(t, f.Link(4, 5))
	require.NoError(t, f.Link(5, 6))

	for i := 1; i <= 6; i++ {
		for j := 1; j <= 6; j++ {
			assert.True(t, f.Connected(i, j))
		}
	}

	require.NoError(t, f.Cut(3, 4))

	assert.True(t, f.Connected(1, 3))
	assert.True(t, f.Connected(4, 6))
	assert.False(t, f.Connected(3, 4))
}
