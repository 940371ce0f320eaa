package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphy/flow"
	"github.com/katalvlaran/graphy/generator"
	"github.com/katalvlaran/graphy/interdict"
	"github.com/katalvlaran/graphy/network"
)

func water(t *testing.T, origin, dest int, edges ...network.Edge) *network.Network {
	t.Helper()
	net := network.New(network.KindWater, 2)
	require.NoError(t, net.SetRole(origin, network.RoleOrigin))
	require.NoError(t, net.SetRole(dest, network.RoleDestination))
	for _, e := range edges {
		require.NoError(t, net.AddEdge(e.U, e.V, e.Color))
	}

	return net
}

func TestMinCut_Cycle(t *testing.T) {
	net := water(t, 0, 3,
		network.Edge{U: 0, V: 1, Color: network.ColorBlue},
		network.Edge{U: 0, V: 2, Color: network.ColorBlue},
		network.Edge{U: 1, V: 3, Color: network.ColorBlue},
		network.Edge{U: 2, V: 3, Color: network.ColorBlue},
	)
	cut, err := flow.MinCut(context.Background(), net)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cut.Value)
	assert.Len(t, cut.Edges, 2)
	assert.Contains(t, cut.SourceSide, 0)
	assert.NotContains(t, cut.SourceSide, 3)
}

// TestMinCut_RedDetour: red pipes force the cut onto the blue middle pipe.
func TestMinCut_RedDetour(t *testing.T) {
	net := water(t, 0, 3,
		network.Edge{U: 0, V: 1, Color: network.ColorRed},
		network.Edge{U: 1, V: 2, Color: network.ColorBlue},
		network.Edge{U: 2, V: 3, Color: network.ColorRed},
	)
	cut, err := flow.MinCut(context.Background(), net)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cut.Value)
	assert.Equal(t, []network.Edge{{U: 1, V: 2, Color: network.ColorBlue}}, cut.Edges)
	assert.Equal(t, []int{0, 1}, cut.SourceSide)
}

func TestMinCut_ProtectedPath(t *testing.T) {
	net := water(t, 0, 2,
		network.Edge{U: 0, V: 1, Color: network.ColorRed},
		network.Edge{U: 1, V: 2, Color: network.ColorRed},
	)
	_, err := flow.MinCut(context.Background(), net)
	require.ErrorIs(t, err, flow.ErrProtectedPath)
}

func TestMinCut_NilNetwork(t *testing.T) {
	_, err := flow.MinCut(context.Background(), nil)
	require.ErrorIs(t, err, flow.ErrNilNetwork)
	_, _, err = flow.EdmondsKarp(context.Background(), nil, 0, 1, nil, nil)
	require.ErrorIs(t, err, flow.ErrNilNetwork)
}

func TestMinCut_WrongKind(t *testing.T) {
	_, err := flow.MinCut(context.Background(), network.New(network.KindMilitary, 2))
	require.ErrorIs(t, err, network.ErrRoleMismatch)
}

// TestMinCut_AgreesWithProgram cross-checks the flow certificate against the
// integer program on generated networks, before and after extra pipes make
// the graph cyclic.
func TestMinCut_AgreesWithProgram(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 6; seed++ {
		g, err := generator.New(36, generator.WithSeed(seed))
		require.NoError(t, err)
		net, err := g.WaterNetwork()
		require.NoError(t, err)

		// Close every missing grid pipe, coloring it the way the generator would.
		origin, _ := net.Origin()
		dest, _ := net.Destination()
		for _, c := range g.Topology().CandidateEdges() {
			if net.HasEdge(c.U, c.V) {
				continue
			}
			color := network.ColorBlue
			if c.U == origin || c.V == origin || c.U == dest || c.V == dest {
				color = network.ColorRed
			}
			require.NoError(t, net.AddEdge(c.U, c.V, color))
		}

		cut, err := flow.MinCut(ctx, net)
		require.NoError(t, err, "seed %d", seed)
		sol, err := interdict.SolveWaterCut(ctx, nil, net)
		require.NoError(t, err, "seed %d", seed)
		require.Equal(t, float64(cut.Value), sol.Objective(), "seed %d", seed)
		for _, e := range cut.Edges {
			require.Equal(t, network.ColorBlue, e.Color)
		}
	}
}
