package generator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphy/dsu"
	"github.com/katalvlaran/graphy/gridgraph"
	"github.com/katalvlaran/graphy/network"
)

// Generator produces fresh networks over one cached grid topology.
// It owns its RNG and is not safe for concurrent use; run one per goroutine.
type Generator struct {
	topo *gridgraph.Topology
	cfg  genConfig
}

// New prepares a generator for an n-cell grid.
// Returns gridgraph.ErrInvalidTopology if n is not a positive perfect square.
// Complexity: O(n).
func New(n int, opts ...Option) (*Generator, error) {
	topo, err := gridgraph.NewTopology(n)
	if err != nil {
		return nil, err
	}

	return &Generator{topo: topo, cfg: newGenConfig(opts...)}, nil
}

// Topology returns the grid the generator draws candidate edges from.
func (g *Generator) Topology() *gridgraph.Topology { return g.topo }

// Separation returns the origin/destination band half-width in effect.
func (g *Generator) Separation() int {
	if g.cfg.separationSet {
		return g.cfg.separation
	}

	return 2*g.topo.Side() + 2
}

// Generate dispatches on kind.
func (g *Generator) Generate(kind network.Kind) (*network.Network, error) {
	switch kind {
	case network.KindWater:
		return g.WaterNetwork()
	case network.KindMilitary:
		return g.MilitaryNetwork()
	default:
		return nil, fmt.Errorf("generator: unknown network kind %d", int(kind))
	}
}

// span grows a random spanning tree over net by union-find acceptance.
// color decides the color of each accepted edge from its endpoints.
// Exactly N−1 edges are added.
func (g *Generator) span(net *network.Network, color func(u, v int) network.Color) error {
	candidates := g.topo.CandidateEdges()
	forest := dsu.New(g.topo.Order())
	for forest.Components() > 1 {
		if len(candidates) == 0 {
			// A square grid is connected, so this means a broken topology.
			return fmt.Errorf("%w: candidates exhausted with %d components left",
				gridgraph.ErrInvalidTopology, forest.Components())
		}
		// Pop a uniformly random candidate (swap with the tail, then shrink).
		i := g.cfg.rng.Intn(len(candidates))
		e := candidates[i]
		last := len(candidates) - 1
		candidates[i] = candidates[last]
		candidates = candidates[:last]

		if !forest.Union(e.U, e.V) {
			continue
		}
		if err := net.AddEdge(e.U, e.V, color(e.U, e.V)); err != nil {
			return err
		}
	}

	return nil
}

// stamp assigns a reproducible identifier drawn from the generator RNG.
func (g *Generator) stamp(net *network.Network) error {
	id, err := uuid.NewRandomFromReader(g.cfg.rng)
	if err != nil {
		return fmt.Errorf("generator: network id: %w", err)
	}
	net.ID = id

	return nil
}
