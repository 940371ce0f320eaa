package generator

import (
	"github.com/katalvlaran/graphy/network"
)

// MilitaryNetwork generates a military supply network.
//
// Steps:
//  1. Create N vertices and draw each endurance independently from
//     {1,2,3} with the configured weights.
//  2. Draw the headquarters uniformly; its endurance becomes 10000.
//  3. Grow the spanning tree (edges carry no color).
//  4. Every neighbour of the headquarters in the finished tree becomes
//     RoleSecure with endurance 100. How many there are depends on the
//     random tree and varies between networks.
func (g *Generator) MilitaryNetwork() (*network.Network, error) {
	n := g.topo.Order()
	net := network.New(network.KindMilitary, g.topo.Side())
	for v := 0; v < n; v++ {
		if err := net.SetEndurance(v, g.cfg.drawEndurance()); err != nil {
			return nil, err
		}
	}

	hq := g.cfg.rng.Intn(n)
	if err := net.SetRole(hq, network.RoleHeadquarters); err != nil {
		return nil, err
	}
	if err := net.SetEndurance(hq, HeadquartersEndurance); err != nil {
		return nil, err
	}

	err := g.span(net, func(int, int) network.Color { return network.ColorNone })
	if err != nil {
		return nil, err
	}

	secure, err := net.Neighbors(hq)
	if err != nil {
		return nil, err
	}
	for _, v := range secure {
		if err := net.SetRole(v, network.RoleSecure); err != nil {
			return nil, err
		}
		if err := net.SetEndurance(v, SecureEndurance); err != nil {
			return nil, err
		}
	}
	if err := g.stamp(net); err != nil {
		return nil, err
	}

	return net, nil
}
