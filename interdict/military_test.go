package interdict_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphy/generator"
	"github.com/katalvlaran/graphy/interdict"
	"github.com/katalvlaran/graphy/mip"
	"github.com/katalvlaran/graphy/network"
)

// MilitarySuite runs the hand-built military cases against one shared solver.
type MilitarySuite struct {
	suite.Suite
	solver mip.Solver
	ctx    context.Context
}

func (s *MilitarySuite) SetupSuite() {
	s.solver = mip.NewBranchAndBound()
	s.ctx = context.Background()
}

// star has headquarters 0 and three leaves of endurance 1.
func (s *MilitarySuite) star() *network.Network {
	return militaryNet(s.T(), 2, 0, []int{generator.HeadquartersEndurance, 1, 1, 1}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
}

func (s *MilitarySuite) TestStarBudgets() {
	for budget := 0; budget <= 4; budget++ {
		sol, err := interdict.SolveMilitaryDisconnect(s.ctx, s.solver, s.star(), budget)
		s.Require().NoError(err, "L=%d", budget)
		want := budget
		if want > 3 {
			want = 3
		}
		s.Equal(float64(want), sol.Objective(), "L=%d", budget)
		s.Len(sol.VerticesToRemove(), want, "L=%d", budget)
		s.Equal(want, sol.Cost(), "L=%d", budget)
		s.Len(sol.DisconnectedVertices(), want, "L=%d", budget)
		s.Equal(budget, sol.Budget())
	}
}

// TestCheapestAmongOptima: either leaf alone disconnects one vertex; the
// cheaper one must be chosen.
func (s *MilitarySuite) TestCheapestAmongOptima() {
	net := militaryNet(s.T(), 2, 0, []int{generator.HeadquartersEndurance, 2, 1, 3}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	sol, err := interdict.SolveMilitaryDisconnect(s.ctx, s.solver, net, 2)
	s.Require().NoError(err)
	s.Equal(1.0, sol.Objective())
	s.Equal([]int{2}, sol.VerticesToRemove())
	s.Equal(1, sol.Cost())
}

// TestChainCutsHigh: on hq-1-2-3 removing vertex 1 disconnects everything.
func (s *MilitarySuite) TestChainCutsHigh() {
	net := militaryNet(s.T(), 2, 0, []int{generator.HeadquartersEndurance, 3, 1, 1}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	sol, err := interdict.SolveMilitaryDisconnect(s.ctx, s.solver, net, 3)
	s.Require().NoError(err)
	s.Equal(3.0, sol.Objective())
	s.Equal([]int{1}, sol.VerticesToRemove())
	s.Equal([]int{1, 2, 3}, sol.DisconnectedVertices())
}

// TestHugeBudgets: budgets beyond the removable endurance behave like that
// endurance, up to math.MaxInt.
func (s *MilitarySuite) TestHugeBudgets() {
	chain := func() *network.Network {
		return militaryNet(s.T(), 2, 0, []int{generator.HeadquartersEndurance, 3, 1, 1}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	}
	for _, budget := range []int{1e12, 1e17, math.MaxInt} {
		sol, err := interdict.SolveMilitaryDisconnect(s.ctx, s.solver, chain(), budget)
		s.Require().NoError(err, "L=%d", budget)
		s.Equal(3.0, sol.Objective())
		s.Equal([]int{1}, sol.VerticesToRemove())
		s.Equal(3, sol.Cost())
		s.Equal(budget, sol.Budget())
	}

	net := generatedMilitary(s.T(), 16, 2)
	removable := 0
	for _, vx := range net.Vertices() {
		if vx.Role != network.RoleHeadquarters && vx.Role != network.RoleSecure && !vx.Removed {
			removable += vx.Endurance
		}
	}
	want, err := interdict.SolveMilitaryDisconnect(s.ctx, s.solver, net, removable)
	s.Require().NoError(err)
	for _, budget := range []int{1e12, math.MaxInt} {
		got, err := interdict.SolveMilitaryDisconnect(s.ctx, s.solver, net, budget)
		s.Require().NoError(err, "L=%d", budget)
		s.Equal(want.Objective(), got.Objective(), "L=%d", budget)
		s.Equal(want.Cost(), got.Cost(), "L=%d", budget)
	}
}

// TestProtectedRolesIgnoreEndurance: roles, not endurance values, decide
// what may be removed.
func (s *MilitarySuite) TestProtectedRolesIgnoreEndurance() {
	net := militaryNet(s.T(), 2, 0, []int{1, 1, 1, 1}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	s.Require().NoError(net.SetRole(1, network.RoleSecure))
	sol, err := interdict.SolveMilitaryDisconnect(s.ctx, s.solver, net, 100)
	s.Require().NoError(err)
	s.Equal([]int{2}, sol.VerticesToRemove())
	s.Equal(2.0, sol.Objective())
}

func (s *MilitarySuite) TestBuildErrors() {
	_, err := interdict.BuildMilitaryDisconnect(nil, 6)
	s.ErrorIs(err, interdict.ErrNilNetwork)

	_, err = interdict.BuildMilitaryDisconnect(s.star(), -1)
	s.ErrorIs(err, interdict.ErrNegativeBudget)

	_, err = interdict.BuildMilitaryDisconnect(network.New(network.KindWater, 2), 6)
	s.ErrorIs(err, interdict.ErrWrongKind)

	_, err = interdict.BuildMilitaryDisconnect(network.New(network.KindMilitary, 2), 6)
	s.ErrorIs(err, interdict.ErrRoleMissing)
}

func (s *MilitarySuite) TestModelShape() {
	mm, err := interdict.BuildMilitaryDisconnect(s.star(), interdict.DefaultBudget)
	s.Require().NoError(err)
	m := mm.Model()
	s.Equal(8, m.NumVars())
	// hq pin, 2 rows per edge, protect hq, budget.
	s.Equal(1+2*3+1+1, m.NumConstraints())
	s.Equal(mip.Maximize, m.Sense())
	s.Equal(interdict.DefaultBudget, mm.Budget())
}

func (s *MilitarySuite) TestApply() {
	net := s.star()
	sol, err := interdict.SolveMilitaryDisconnect(s.ctx, s.solver, net, 2)
	s.Require().NoError(err)
	s.Require().NoError(sol.Apply(net))

	s.Equal(1, net.Size())
	s.Equal(sol.DisconnectedVertices(), net.Unsupplied())
	for _, v := range sol.VerticesToRemove() {
		vx, err := net.Vertex(v)
		s.Require().NoError(err)
		s.True(vx.Removed)
	}

	// Removed vertices stay counted and can no longer be chosen.
	again, err := interdict.SolveMilitaryDisconnect(s.ctx, s.solver, net, 1)
	s.Require().NoError(err)
	s.Equal(3.0, again.Objective())
}

func TestMilitarySuite(t *testing.T) {
	suite.Run(t, new(MilitarySuite))
}

//----------------------------------------------------------------------------//
// Generated networks
//----------------------------------------------------------------------------//

func TestMilitary_IdempotentAndMonotone(t *testing.T) {
	solver := mip.NewBranchAndBound()
	for seed := int64(1); seed <= 4; seed++ {
		net := generatedMilitary(t, 25, seed)
		prev := -1.0
		for budget := 0; budget <= 8; budget++ {
			a, err := interdict.SolveMilitaryDisconnect(context.Background(), solver, net, budget)
			require.NoError(t, err, "seed %d L=%d", seed, budget)
			b, err := interdict.SolveMilitaryDisconnect(context.Background(), solver, net, budget)
			require.NoError(t, err)
			require.Equal(t, a.Objective(), b.Objective(), "idempotence, seed %d L=%d", seed, budget)
			require.GreaterOrEqual(t, a.Objective(), prev, "monotone, seed %d L=%d", seed, budget)
			prev = a.Objective()
		}
	}
}

// TestMilitary_MatchesEnumeration compares the optimum with every
// affordable removal set on 3×3 grids.
func TestMilitary_MatchesEnumeration(t *testing.T) {
	solver := mip.NewBranchAndBound()
	for seed := int64(1); seed <= 8; seed++ {
		net := generatedMilitary(t, 9, seed)
		for _, budget := range []int{1, 3, interdict.DefaultBudget} {
			sol, err := interdict.SolveMilitaryDisconnect(context.Background(), solver, net, budget)
			require.NoError(t, err)
			best := bruteForceMilitary(t, net, budget)
			require.Equal(t, float64(best), sol.Objective(), "seed %d L=%d", seed, budget)
			require.Len(t, sol.DisconnectedVertices(), best)
			require.LessOrEqual(t, sol.Cost(), budget)
		}
	}
}

func bruteForceMilitary(t *testing.T, net *network.Network, budget int) int {
	var candidates []int
	for _, vx := range net.Vertices() {
		if vx.Role == network.RoleNone {
			candidates = append(candidates, vx.ID)
		}
	}
	best := 0
	for mask := 0; mask < 1<<len(candidates); mask++ {
		var pick []int
		for i, v := range candidates {
			if mask&(1<<i) != 0 {
				pick = append(pick, v)
			}
		}
		if net.TotalEndurance(pick) > budget {
			continue
		}
		a, err := interdict.ScoreMilitaryAttempt(net, pick, budget, 0)
		require.NoError(t, err)
		if len(a.Disconnected) > best {
			best = len(a.Disconnected)
		}
	}

	return best
}

func TestMilitary_ProtectedAcrossBudgets(t *testing.T) {
	solver := mip.NewBranchAndBound()
	net := generatedMilitary(t, 36, 3)
	hq, _ := net.Headquarters()
	secure := net.WithRole(network.RoleSecure)
	for _, budget := range []int{0, 1, 6, 50, 99, 100, 500, 20000} {
		sol, err := interdict.SolveMilitaryDisconnect(context.Background(), solver, net, budget)
		require.NoError(t, err, "L=%d", budget)
		removed := sol.VerticesToRemove()
		assert.NotContains(t, removed, hq, "L=%d", budget)
		for _, v := range secure {
			assert.NotContains(t, removed, v, "L=%d", budget)
		}
		assert.LessOrEqual(t, sol.Cost(), budget)
		assert.NotContains(t, sol.DisconnectedVertices(), hq)
	}
}
