package generator

import (
	"fmt"

	"github.com/katalvlaran/graphy/gridgraph"
	"github.com/katalvlaran/graphy/network"
)

// WaterNetwork generates a water distribution network.
//
// Steps:
//  1. Create N vertices with RoleNone.
//  2. Draw the origin uniformly among vertices that admit at least one
//     destination outside the band [origin−step, origin+step].
//  3. Draw the destination uniformly among the indices outside that band.
//  4. Grow the spanning tree; an accepted edge is red iff one endpoint is
//     the origin or the destination, blue otherwise.
//
// Returns gridgraph.ErrInvalidTopology when no vertex admits a destination
// (every grid with N ≤ 9 under the default step).
func (g *Generator) WaterNetwork() (*network.Network, error) {
	n := g.topo.Order()
	step := g.Separation()

	admissible := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if farCount(v, step, n) > 0 {
			admissible = append(admissible, v)
		}
	}
	if len(admissible) == 0 {
		return nil, fmt.Errorf("%w: no origin/destination pair lies more than %d indices apart on %d cells",
			gridgraph.ErrInvalidTopology, step, n)
	}

	net := network.New(network.KindWater, g.topo.Side())
	origin := admissible[g.cfg.rng.Intn(len(admissible))]
	dest := farPick(origin, step, g.cfg.rng.Intn(farCount(origin, step, n)))
	if err := net.SetRole(origin, network.RoleOrigin); err != nil {
		return nil, err
	}
	if err := net.SetRole(dest, network.RoleDestination); err != nil {
		return nil, err
	}

	protected := func(v int) bool { return v == origin || v == dest }
	err := g.span(net, func(u, v int) network.Color {
		if protected(u) || protected(v) {
			return network.ColorRed
		}
		return network.ColorBlue
	})
	if err != nil {
		return nil, err
	}
	if err := g.stamp(net); err != nil {
		return nil, err
	}

	return net, nil
}

// farCount returns how many indices in 0..n-1 fall outside [v−step, v+step].
func farCount(v, step, n int) int {
	below := v - step // indices 0..v-step-1
	if below < 0 {
		below = 0
	}
	above := n - 1 - (v + step) // indices v+step+1..n-1
	if above < 0 {
		above = 0
	}

	return below + above
}

// farPick maps r in [0, farCount) to the r-th index outside the band,
// lower side first.
func farPick(v, step, r int) int {
	below := v - step
	if below < 0 {
		below = 0
	}
	if r < below {
		return r
	}

	return v + step + 1 + (r - below)
}
