package interdict_test

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/graphy/generator"
	"github.com/katalvlaran/graphy/interdict"
	"github.com/katalvlaran/graphy/mip"
	"github.com/katalvlaran/graphy/network"
)

// TestInterdictionProperties checks monotonicity in the budget and that no
// budget ever buys headquarters or a secure vertex.
func TestInterdictionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 25
	properties := gopter.NewProperties(parameters)
	solver := mip.NewBranchAndBound()

	properties.Property("a larger budget never disconnects less", prop.ForAll(
		func(seed int64, side, budget, extra int) bool {
			net, err := military(seed, side)
			if err != nil {
				return false
			}
			lo, err := interdict.SolveMilitaryDisconnect(context.Background(), solver, net, budget)
			if err != nil {
				return false
			}
			hi, err := interdict.SolveMilitaryDisconnect(context.Background(), solver, net, budget+extra)
			if err != nil {
				return false
			}
			return hi.Objective() >= lo.Objective()
		},
		gen.Int64(),
		gen.IntRange(2, 4),
		gen.IntRange(0, 8),
		gen.IntRange(0, 6),
	))

	properties.Property("protected vertices are never removed", prop.ForAll(
		func(seed int64, side, budget int) bool {
			net, err := military(seed, side)
			if err != nil {
				return false
			}
			sol, err := interdict.SolveMilitaryDisconnect(context.Background(), solver, net, budget)
			if err != nil {
				return false
			}
			for _, v := range sol.VerticesToRemove() {
				vx, err := net.Vertex(v)
				if err != nil || vx.Role != network.RoleNone {
					return false
				}
			}
			return sol.Cost() <= budget
		},
		gen.Int64(),
		gen.IntRange(2, 4),
		gen.IntRange(0, 20000),
	))

	properties.Property("water cuts are single blue pipes on spanning trees", prop.ForAll(
		func(seed int64, side int) bool {
			g, err := generator.New(side*side, generator.WithSeed(seed))
			if err != nil {
				return false
			}
			net, err := g.WaterNetwork()
			if err != nil {
				return false
			}
			sol, err := interdict.SolveWaterCut(context.Background(), solver, net)
			if err != nil {
				return false
			}
			cut := sol.EdgesToRemove()
			return sol.Objective() == 1 && len(cut) == 1 && cut[0].Color == network.ColorBlue
		},
		gen.Int64(),
		gen.IntRange(4, 8),
	))

	properties.TestingRun(t)
}

func military(seed int64, side int) (*network.Network, error) {
	g, err := generator.New(side*side, generator.WithSeed(seed))
	if err != nil {
		return nil, err
	}

	return g.MilitaryNetwork()
}
