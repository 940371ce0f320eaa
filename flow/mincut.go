package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphy/network"
)

// MinCut computes a minimum removable cut of a water network by max flow:
// blue pipes have capacity 1, red pipes are unbounded.
//
// Returns ErrNilNetwork for a nil net, ErrProtectedPath when red pipes alone
// join origin and destination, and network.ErrRoleMismatch wrapped when net
// is not a valid water network.
func MinCut(ctx context.Context, net *network.Network) (*Cut, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if net.Kind() != network.KindWater {
		return nil, fmt.Errorf("%w: min cut needs a water network, got %s", network.ErrRoleMismatch, net.Kind())
	}
	if err := net.Validate(); err != nil {
		return nil, err
	}
	origin, _ := net.Origin()
	dest, _ := net.Destination()

	// More than every blue pipe together can carry.
	unbounded := int64(net.Size() + 1)
	capacity := func(e network.Edge) int64 {
		if e.Color == network.ColorRed {
			return unbounded
		}
		return 1
	}
	value, reach, err := EdmondsKarp(ctx, net, origin, dest, capacity, nil)
	if err != nil {
		return nil, err
	}
	if value >= unbounded {
		return nil, fmt.Errorf("%w: %d-%d", ErrProtectedPath, origin, dest)
	}

	cut := &Cut{Value: value}
	for _, e := range net.Edges() {
		if reach[e.U] != reach[e.V] {
			cut.Edges = append(cut.Edges, e)
		}
	}
	for v, ok := range reach {
		if ok {
			cut.SourceSide = append(cut.SourceSide, v)
		}
	}

	return cut, nil
}
