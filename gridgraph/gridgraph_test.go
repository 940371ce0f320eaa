package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphy/gridgraph"
)

//----------------------------------------------------------------------------//
// NewTopology Tests
//----------------------------------------------------------------------------//

// TestNewTopology_Errors verifies that non-square and non-positive sizes are rejected.
func TestNewTopology_Errors(t *testing.T) {
	for _, n := range []int{-4, 0, 2, 3, 5, 8, 10, 99, 101} {
		_, err := gridgraph.NewTopology(n)
		if !errors.Is(err, gridgraph.ErrInvalidTopology) {
			t.Errorf("NewTopology(%d) error = %v; want ErrInvalidTopology", n, err)
		}
	}
}

// TestNewTopology_CandidateCount checks 2·s·(s−1) candidates for every side s.
func TestNewTopology_CandidateCount(t *testing.T) {
	for s := 1; s <= 12; s++ {
		topo, err := gridgraph.NewTopology(s * s)
		require.NoError(t, err)
		assert.Equal(t, s, topo.Side())
		assert.Equal(t, s*s, topo.Order())
		assert.Len(t, topo.CandidateEdges(), 2*s*(s-1), "side %d", s)
		assert.Equal(t, 2*s*(s-1), topo.NumCandidates())
	}
}

// TestCandidateEdges_3x3 pins the exact candidate list of a 3×3 grid.
func TestCandidateEdges_3x3(t *testing.T) {
	topo, err := gridgraph.NewTopology(9)
	require.NoError(t, err)

	want := []gridgraph.Edge{
		{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5},
		{3, 4}, {3, 6}, {4, 5}, {4, 7}, {5, 8},
		{6, 7}, {7, 8},
	}
	assert.Equal(t, want, topo.CandidateEdges())
}

// TestCandidateEdges_NoWrap ensures no candidate wraps around a row boundary
// and every candidate joins grid neighbours.
func TestCandidateEdges_NoWrap(t *testing.T) {
	topo, err := gridgraph.NewTopology(100)
	require.NoError(t, err)
	for _, e := range topo.CandidateEdges() {
		require.Less(t, e.U, e.V)
		assert.Equal(t, 1, topo.Manhattan(e.U, e.V), "edge %v is not between neighbours", e)
	}
}

// TestCandidateEdges_Copy verifies callers cannot mutate the cached list.
func TestCandidateEdges_Copy(t *testing.T) {
	topo, err := gridgraph.NewTopology(4)
	require.NoError(t, err)
	a := topo.CandidateEdges()
	a[0] = gridgraph.Edge{U: 42, V: 43}
	assert.Equal(t, gridgraph.Edge{U: 0, V: 1}, topo.CandidateEdges()[0])
}

//----------------------------------------------------------------------------//
// Coordinate helpers
//----------------------------------------------------------------------------//

// TestIndexCoordinate_RoundTrip checks Index and Coordinate are inverse.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	topo, err := gridgraph.NewTopology(25)
	require.NoError(t, err)
	for v := 0; v < topo.Order(); v++ {
		x, y := topo.Coordinate(v)
		idx, err := topo.Index(x, y)
		require.NoError(t, err)
		assert.Equal(t, v, idx)
	}
	_, err = topo.Index(5, 0)
	assert.ErrorIs(t, err, gridgraph.ErrCellOutOfRange)
	assert.False(t, topo.InBounds(-1, 2))
}

// TestPerfectSquareRoot covers exact squares and their neighbours.
func TestPerfectSquareRoot(t *testing.T) {
	for s := 1; s < 300; s++ {
		r, ok := gridgraph.PerfectSquareRoot(s * s)
		require.True(t, ok)
		require.Equal(t, s, r)
		_, ok = gridgraph.PerfectSquareRoot(s*s + 1)
		require.False(t, ok, "n=%d", s*s+1)
	}
}
