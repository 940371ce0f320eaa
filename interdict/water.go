package interdict

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphy/mip"
	"github.com/katalvlaran/graphy/network"
)

// WaterModel is the minimum edge cut program of one water network.
//
//	minimize   Σ y_e
//	subject to x_origin = 0, x_destination = 1
//	           y_uv ≥ x_u − x_v and y_uv ≥ x_v − x_u   for every pipe {u,v}
//	           y_uv = 0                                 for every red pipe
//
// x_v = 1 places v on the destination side; y_e = 1 cuts pipe e.
type WaterModel struct {
	model  *mip.Model
	net    *network.Network // private snapshot taken at build time
	origin int
	dest   int
	x      []mip.Var // per vertex
	edges  []network.Edge
	y      []mip.Var // parallel to edges
}

// BuildWaterCut encodes net as a WaterModel. net is not modified.
// Returns ErrNilNetwork, ErrWrongKind or ErrRoleMissing.
// Complexity: O(V + E).
func BuildWaterCut(net *network.Network) (*WaterModel, error) {
	if err := checkKind(net, network.KindWater); err != nil {
		return nil, err
	}
	origin, _ := net.Origin()
	dest, _ := net.Destination()

	m := mip.NewModel("water-cut", mip.Minimize)
	wm := &WaterModel{
		model:  m,
		net:    net.Clone(),
		origin: origin,
		dest:   dest,
		x:      make([]mip.Var, net.Order()),
		edges:  net.Edges(),
	}
	for v := range wm.x {
		wm.x[v] = m.AddBinary(fmt.Sprintf("x_%d", v), 0)
	}
	wm.y = make([]mip.Var, len(wm.edges))
	for i, e := range wm.edges {
		wm.y[i] = m.AddBinary(fmt.Sprintf("y_%d_%d", e.U, e.V), 1)
	}

	r := rows{m: m}
	r.add("origin", mip.Equal, 0, mip.T(1, wm.x[origin]))
	r.add("destination", mip.Equal, 1, mip.T(1, wm.x[dest]))
	for i, e := range wm.edges {
		xu, xv, y := wm.x[e.U], wm.x[e.V], wm.y[i]
		r.add(fmt.Sprintf("cross_%d_%d", e.U, e.V), mip.GreaterEq, 0, mip.T(1, y), mip.T(-1, xu), mip.T(1, xv))
		r.add(fmt.Sprintf("cross_%d_%d", e.V, e.U), mip.GreaterEq, 0, mip.T(1, y), mip.T(-1, xv), mip.T(1, xu))
		if e.Color == network.ColorRed {
			r.add(fmt.Sprintf("protect_%d_%d", e.U, e.V), mip.Equal, 0, mip.T(1, y))
		}
	}
	if r.err != nil {
		return nil, r.err
	}

	return wm, nil
}

// Model returns the underlying program.
func (wm *WaterModel) Model() *mip.Model { return wm.model }

// Solve runs solver on the program (nil selects mip.NewBranchAndBound()).
// Returns ErrModelInfeasible when the destination cannot be cut off, and
// an error matching ErrSolverFailure when the solver gives up.
func (wm *WaterModel) Solve(ctx context.Context, solver mip.Solver) (*WaterCutSolution, error) {
	sol, err := solve(ctx, solver, wm.model)
	if err != nil {
		return nil, err
	}

	var cut []network.Edge
	keys := make([][2]int, 0, len(wm.edges))
	for i, e := range wm.edges {
		if sol.Bool(wm.y[i]) {
			cut = append(cut, e)
			keys = append(keys, e.Key())
		}
	}
	reach, err := wm.net.Reachable(wm.origin, network.WithoutEdges(keys...))
	if err != nil {
		return nil, err
	}

	return &WaterCutSolution{
		objective:    sol.Objective,
		cut:          cut,
		disconnected: unreached(reach),
		nodes:        sol.Nodes,
	}, nil
}

// SolveWaterCut builds and solves the cut program of net in one call.
func SolveWaterCut(ctx context.Context, solver mip.Solver, net *network.Network) (*WaterCutSolution, error) {
	wm, err := BuildWaterCut(net)
	if err != nil {
		return nil, err
	}

	return wm.Solve(ctx, solver)
}

// WaterCutSolution is an optimal cut of a water network.
type WaterCutSolution struct {
	objective    float64
	cut          []network.Edge
	disconnected []int
	nodes        int
}

// Objective returns the number of cut pipes.
func (s *WaterCutSolution) Objective() float64 { return s.objective }

// EdgesToRemove returns the pipes of the cut, in network edge order.
func (s *WaterCutSolution) EdgesToRemove() []network.Edge {
	return append([]network.Edge(nil), s.cut...)
}

// DisconnectedVertices returns, ascending, the vertices no longer reached
// from the origin once the cut is removed. The destination is always among them.
func (s *WaterCutSolution) DisconnectedVertices() []int {
	return append([]int(nil), s.disconnected...)
}

// Nodes returns how many search nodes the solver explored.
func (s *WaterCutSolution) Nodes() int { return s.nodes }

// Apply removes the cut from net and clears Supplied on every vertex the
// origin no longer reaches. net must contain every cut pipe.
func (s *WaterCutSolution) Apply(net *network.Network) error {
	if err := checkKind(net, network.KindWater); err != nil {
		return err
	}
	keys := make([][2]int, len(s.cut))
	for i, e := range s.cut {
		keys[i] = e.Key()
	}
	if err := net.RemoveEdges(keys...); err != nil {
		return err
	}
	origin, _ := net.Origin()
	reach, err := net.Reachable(origin)
	if err != nil {
		return err
	}
	net.InterruptSupply(unreached(reach)...)

	return nil
}
