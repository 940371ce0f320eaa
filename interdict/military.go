package interdict

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/graphy/mip"
	"github.com/katalvlaran/graphy/network"
)

// DefaultBudget is the firepower budget L used when the caller has no preference.
const DefaultBudget = 6

// MilitaryModel is the budgeted vertex interdiction program of one
// military network.
//
//	maximize   Σ x_v − ε·Σ endurance_v·y_v
//	subject to x_headquarters = 0
//	           y_u + y_v ≥ x_u − x_v and y_u + y_v ≥ x_v − x_u   for every edge {u,v}
//	           Σ endurance_v·y_v ≤ L
//	           y_v = 0   for headquarters, secure and already removed vertices
//
// x_v = 1 marks v as cut off from headquarters; y_v = 1 removes v.
// ε = 1/(L+1) keeps the penalty below one vertex, so the count of
// disconnected vertices is maximized first and the spent endurance is
// minimized among the maximizers. L is capped at the total endurance of
// the removable vertices; Budget still reports the caller's value.
type MilitaryModel struct {
	model  *mip.Model
	net    *network.Network // private snapshot taken at build time
	hq     int
	budget int
	x      []mip.Var
	y      []mip.Var
}

// BuildMilitaryDisconnect encodes net with firepower budget L. net is not modified.
// Returns ErrNilNetwork, ErrWrongKind, ErrRoleMissing or ErrNegativeBudget.
// Complexity: O(V + E).
func BuildMilitaryDisconnect(net *network.Network, budget int) (*MilitaryModel, error) {
	if err := checkKind(net, network.KindMilitary); err != nil {
		return nil, err
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	hq, _ := net.Headquarters()

	m := mip.NewModel("military-disconnect", mip.Maximize)
	n := net.Order()
	mm := &MilitaryModel{
		model:  m,
		net:    net.Clone(),
		hq:     hq,
		budget: budget,
		x:      make([]mip.Var, n),
		y:      make([]mip.Var, n),
	}
	vertices := net.Vertices()
	// No strategy can spend more than the removable endurance, so larger
	// budgets encode the same program with worse scaling.
	limit := 0
	for _, vx := range vertices {
		if !protected(vx) {
			limit += vx.Endurance
		}
	}
	limit = min(limit, budget)
	eps := 1 / float64(limit+1)
	for v := range mm.x {
		mm.x[v] = m.AddBinary(fmt.Sprintf("x_%d", v), 1)
	}
	for v, vx := range vertices {
		mm.y[v] = m.AddBinary(fmt.Sprintf("y_%d", v), -eps*float64(vx.Endurance))
	}

	r := rows{m: m}
	r.add("headquarters", mip.Equal, 0, mip.T(1, mm.x[hq]))
	for _, e := range net.Edges() {
		yu, yv, xu, xv := mm.y[e.U], mm.y[e.V], mm.x[e.U], mm.x[e.V]
		r.add(fmt.Sprintf("split_%d_%d", e.U, e.V), mip.GreaterEq, 0,
			mip.T(1, yu), mip.T(1, yv), mip.T(-1, xu), mip.T(1, xv))
		r.add(fmt.Sprintf("split_%d_%d", e.V, e.U), mip.GreaterEq, 0,
			mip.T(1, yu), mip.T(1, yv), mip.T(-1, xv), mip.T(1, xu))
	}
	budgetTerms := make([]mip.Term, 0, n)
	for v, vx := range vertices {
		if protected(vx) {
			r.add(fmt.Sprintf("protect_%d", v), mip.Equal, 0, mip.T(1, mm.y[v]))
			continue
		}
		budgetTerms = append(budgetTerms, mip.T(float64(vx.Endurance), mm.y[v]))
	}
	r.add("budget", mip.LessEq, float64(limit), budgetTerms...)
	if r.err != nil {
		return nil, r.err
	}

	return mm, nil
}

// protected reports whether v may never be chosen for removal.
func protected(v network.Vertex) bool {
	return v.Role == network.RoleHeadquarters || v.Role == network.RoleSecure || v.Removed
}

// Model returns the underlying program.
func (mm *MilitaryModel) Model() *mip.Model { return mm.model }

// Budget returns the firepower budget L.
func (mm *MilitaryModel) Budget() int { return mm.budget }

// Solve runs solver on the program (nil selects mip.NewBranchAndBound()).
// The program is always feasible (remove nothing, disconnect nothing), so
// an error means the solver gave up and matches ErrSolverFailure.
func (mm *MilitaryModel) Solve(ctx context.Context, solver mip.Solver) (*MilitarySolution, error) {
	sol, err := solve(ctx, solver, mm.model)
	if err != nil {
		return nil, err
	}

	var remove []int
	count := 0.0
	for v := range mm.x {
		count += sol.Value(mm.x[v])
		if sol.Bool(mm.y[v]) {
			remove = append(remove, v)
		}
	}
	reach, err := mm.net.Reachable(mm.hq, network.WithoutVertices(remove...))
	if err != nil {
		return nil, err
	}

	return &MilitarySolution{
		objective:    math.Round(count),
		remove:       remove,
		disconnected: unreached(reach),
		cost:         mm.net.TotalEndurance(remove),
		budget:       mm.budget,
		nodes:        sol.Nodes,
	}, nil
}

// SolveMilitaryDisconnect builds and solves the interdiction program of net
// in one call.
func SolveMilitaryDisconnect(ctx context.Context, solver mip.Solver, net *network.Network, budget int) (*MilitarySolution, error) {
	mm, err := BuildMilitaryDisconnect(net, budget)
	if err != nil {
		return nil, err
	}

	return mm.Solve(ctx, solver)
}

// MilitarySolution is an optimal interdiction of a military network.
type MilitarySolution struct {
	objective    float64
	remove       []int
	disconnected []int
	cost         int
	budget       int
	nodes        int
}

// Objective returns the number of vertices cut off from headquarters,
// removed vertices included.
func (s *MilitarySolution) Objective() float64 { return s.objective }

// VerticesToRemove returns the chosen vertices, ascending.
func (s *MilitarySolution) VerticesToRemove() []int {
	return append([]int(nil), s.remove...)
}

// DisconnectedVertices returns, ascending, every vertex headquarters no
// longer reaches once VerticesToRemove are gone (those vertices included).
func (s *MilitarySolution) DisconnectedVertices() []int {
	return append([]int(nil), s.disconnected...)
}

// Cost returns the total endurance of VerticesToRemove; never above Budget.
func (s *MilitarySolution) Cost() int { return s.cost }

// Budget returns the firepower budget the solution was computed for.
func (s *MilitarySolution) Budget() int { return s.budget }

// Nodes returns how many search nodes the solver explored.
func (s *MilitarySolution) Nodes() int { return s.nodes }

// Apply removes the chosen vertices from net and clears Supplied on every
// vertex headquarters no longer reaches.
func (s *MilitarySolution) Apply(net *network.Network) error {
	if err := checkKind(net, network.KindMilitary); err != nil {
		return err
	}
	if err := net.RemoveVertices(s.remove...); err != nil {
		return err
	}
	hq, _ := net.Headquarters()
	reach, err := net.Reachable(hq)
	if err != nil {
		return err
	}
	net.InterruptSupply(unreached(reach)...)

	return nil
}
