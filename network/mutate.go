package network

import (
	"fmt"
)

// Clone returns a deep copy that shares no state with n.
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	c := &Network{
		ID:       n.ID,
		kind:     n.kind,
		side:     n.side,
		vertices: make([]Vertex, len(n.vertices)),
		edges:    make([]Edge, len(n.edges)),
		index:    make(map[[2]int]int, len(n.index)),
		adj:      make([][]int, len(n.adj)),
	}
	copy(c.vertices, n.vertices)
	copy(c.edges, n.edges)
	for k, i := range n.index {
		c.index[k] = i
	}
	for v, nbrs := range n.adj {
		c.adj[v] = append([]int(nil), nbrs...)
	}

	return c
}

// RemoveEdges deletes the given endpoint pairs. Every pair must be present;
// otherwise nothing is removed and ErrEdgeNotFound is returned.
// Complexity: O(V + E).
func (n *Network) RemoveEdges(pairs ...[2]int) error {
	drop := make(map[[2]int]struct{}, len(pairs))
	for _, p := range pairs {
		key := pairKey(p[0], p[1])
		if _, ok := n.index[key]; !ok {
			return fmt.Errorf("%w: {%d,%d}", ErrEdgeNotFound, key[0], key[1])
		}
		drop[key] = struct{}{}
	}
	n.rebuild(func(e Edge) bool {
		_, gone := drop[e.Key()]
		return !gone
	})

	return nil
}

// RemoveVertices marks the given vertices Removed, clears their Supplied
// flag and deletes every incident edge. Vertex slots keep their index.
// All ids must be valid; otherwise nothing changes.
func (n *Network) RemoveVertices(ids ...int) error {
	for _, v := range ids {
		if !n.Has(v) {
			return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
		}
	}
	for _, v := range ids {
		n.vertices[v].Removed = true
		n.vertices[v].Supplied = false
	}
	n.rebuild(func(e Edge) bool {
		return !n.vertices[e.U].Removed && !n.vertices[e.V].Removed
	})

	return nil
}

// InterruptSupply clears the Supplied flag of the given vertices.
// Unknown ids are ignored.
func (n *Network) InterruptSupply(ids ...int) {
	for _, v := range ids {
		if n.Has(v) {
			n.vertices[v].Supplied = false
		}
	}
}

// Unsupplied returns the vertices whose Supplied flag is cleared, ascending.
func (n *Network) Unsupplied() []int {
	var out []int
	for _, vx := range n.vertices {
		if !vx.Supplied {
			out = append(out, vx.ID)
		}
	}

	return out
}

// rebuild keeps the edges for which keep returns true and regenerates the
// index and adjacency lists, preserving relative insertion order.
func (n *Network) rebuild(keep func(Edge) bool) {
	kept := n.edges[:0]
	for _, e := range n.edges {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	n.edges = kept
	n.index = make(map[[2]int]int, len(kept))
	for v := range n.adj {
		n.adj[v] = n.adj[v][:0]
	}
	for i, e := range kept {
		n.index[e.Key()] = i
		n.adj[e.U] = append(n.adj[e.U], e.V)
		n.adj[e.V] = append(n.adj[e.V], e.U)
	}
}
