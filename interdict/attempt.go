package interdict

import (
	"fmt"

	"github.com/katalvlaran/graphy/network"
)

// Attempt grades a hand-picked removal against the optimal strategy.
type Attempt struct {
	// Success reports whether the attempt achieved anything: the
	// destination is cut off (water) or at least one vertex is
	// disconnected from headquarters (military).
	Success bool

	// Disconnected lists, ascending, the vertices no longer reached from
	// the origin or headquarters.
	Disconnected []int

	// Removed is the number of pipes or vertices taken out.
	Removed int

	// Cost is the endurance spent (military only).
	Cost int

	// Gap is the distance to the optimum: extra pipes cut beyond the
	// minimum (water), or vertices short of the maximum (military).
	// Zero means the attempt is optimal. Meaningful only on Success.
	Gap int

	// Result is a copy of the network with the attempt applied.
	Result *network.Network
}

// ScoreWaterAttempt removes pipes from a copy of net and reports whether the
// destination was cut off. optimum is the minimum cut size, usually
// WaterCutSolution.Objective().
// Returns ErrProtectedEdge for a red pipe and network.ErrEdgeNotFound for an
// unknown one; net is never modified.
func ScoreWaterAttempt(net *network.Network, pipes [][2]int, optimum int) (*Attempt, error) {
	if err := checkKind(net, network.KindWater); err != nil {
		return nil, err
	}
	seen := make(map[[2]int]struct{}, len(pipes))
	keys := make([][2]int, 0, len(pipes))
	for _, p := range pipes {
		e, err := net.EdgeBetween(p[0], p[1])
		if err != nil {
			return nil, err
		}
		if e.Color == network.ColorRed {
			return nil, fmt.Errorf("%w: {%d,%d}", ErrProtectedEdge, e.U, e.V)
		}
		if _, dup := seen[e.Key()]; !dup {
			seen[e.Key()] = struct{}{}
			keys = append(keys, e.Key())
		}
	}

	res := net.Clone()
	if err := res.RemoveEdges(keys...); err != nil {
		return nil, err
	}
	origin, _ := res.Origin()
	dest, _ := res.Destination()
	reach, err := res.Reachable(origin)
	if err != nil {
		return nil, err
	}
	lost := unreached(reach)
	res.InterruptSupply(lost...)

	a := &Attempt{
		Success:      !reach[dest],
		Disconnected: lost,
		Removed:      len(keys),
		Result:       res,
	}
	if a.Success {
		a.Gap = len(keys) - optimum
	}

	return a, nil
}

// ScoreMilitaryAttempt removes vertices from a copy of net within budget
// and counts the vertices cut off from headquarters, removed ones included.
// optimum is the best achievable count, usually MilitarySolution.Objective().
// Returns ErrProtectedVertex, ErrBudgetExceeded or network.ErrVertexNotFound;
// net is never modified.
func ScoreMilitaryAttempt(net *network.Network, vertices []int, budget, optimum int) (*Attempt, error) {
	if err := checkKind(net, network.KindMilitary); err != nil {
		return nil, err
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	seen := make(map[int]struct{}, len(vertices))
	ids := make([]int, 0, len(vertices))
	for _, v := range vertices {
		vx, err := net.Vertex(v)
		if err != nil {
			return nil, err
		}
		if protected(vx) {
			return nil, fmt.Errorf("%w: %d (%s)", ErrProtectedVertex, v, vx.Role)
		}
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			ids = append(ids, v)
		}
	}
	cost := net.TotalEndurance(ids)
	if cost > budget {
		return nil, fmt.Errorf("%w: endurance %d over budget %d", ErrBudgetExceeded, cost, budget)
	}

	res := net.Clone()
	if err := res.RemoveVertices(ids...); err != nil {
		return nil, err
	}
	hq, _ := res.Headquarters()
	reach, err := res.Reachable(hq)
	if err != nil {
		return nil, err
	}
	lost := unreached(reach)
	res.InterruptSupply(lost...)

	a := &Attempt{
		Success:      len(lost) > 0,
		Disconnected: lost,
		Removed:      len(ids),
		Cost:         cost,
		Result:       res,
	}
	if a.Success {
		a.Gap = optimum - len(lost)
	}

	return a, nil
}
