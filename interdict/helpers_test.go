package interdict_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphy/generator"
	"github.com/katalvlaran/graphy/mip"
	"github.com/katalvlaran/graphy/network"
)

// waterNet builds a water network by hand; pairs are added in order.
func waterNet(t *testing.T, side, origin, dest int, edges ...network.Edge) *network.Network {
	t.Helper()
	net := network.New(network.KindWater, side)
	require.NoError(t, net.SetRole(origin, network.RoleOrigin))
	require.NoError(t, net.SetRole(dest, network.RoleDestination))
	for _, e := range edges {
		require.NoError(t, net.AddEdge(e.U, e.V, e.Color))
	}

	return net
}

// militaryNet builds a military network by hand with the given endurances.
func militaryNet(t *testing.T, side, hq int, endurance []int, edges ...[2]int) *network.Network {
	t.Helper()
	net := network.New(network.KindMilitary, side)
	require.NoError(t, net.SetRole(hq, network.RoleHeadquarters))
	for v, e := range endurance {
		require.NoError(t, net.SetEndurance(v, e))
	}
	for _, p := range edges {
		require.NoError(t, net.AddEdge(p[0], p[1], network.ColorNone))
	}

	return net
}

func blue(u, v int) network.Edge { return network.Edge{U: u, V: v, Color: network.ColorBlue} }
func red(u, v int) network.Edge  { return network.Edge{U: u, V: v, Color: network.ColorRed} }

func generatedMilitary(t require.TestingT, cells int, seed int64) *network.Network {
	g, err := generator.New(cells, generator.WithSeed(seed))
	require.NoError(t, err)
	net, err := g.MilitaryNetwork()
	require.NoError(t, err)

	return net
}

func generatedWater(t require.TestingT, cells int, seed int64) *network.Network {
	g, err := generator.New(cells, generator.WithSeed(seed))
	require.NoError(t, err)
	net, err := g.WaterNetwork()
	require.NoError(t, err)

	return net
}

// stubSolver returns a fixed outcome.
type stubSolver struct {
	sol *mip.Solution
	err error
}

func (s stubSolver) Solve(context.Context, *mip.Model) (*mip.Solution, error) { return s.sol, s.err }
