package network

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

// TraverseOption narrows a traversal by hiding edges or vertices.
type TraverseOption func(*traverseConfig)

type traverseConfig struct {
	skipEdges    map[[2]int]struct{}
	skipVertices map[int]struct{}
}

// WithoutEdges hides the given endpoint pairs (in either order) from the traversal.
func WithoutEdges(pairs ...[2]int) TraverseOption {
	return func(c *traverseConfig) {
		for _, p := range pairs {
			c.skipEdges[pairKey(p[0], p[1])] = struct{}{}
		}
	}
}

// WithoutVertices hides the given vertices, and every edge touching them.
func WithoutVertices(ids ...int) TraverseOption {
	return func(c *traverseConfig) {
		for _, v := range ids {
			c.skipVertices[v] = struct{}{}
		}
	}
}

func newTraverseConfig(opts []TraverseOption) traverseConfig {
	c := traverseConfig{
		skipEdges:    make(map[[2]int]struct{}),
		skipVertices: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func (c traverseConfig) hidden(n *Network, v int) bool {
	if n.vertices[v].Removed {
		return true
	}
	_, skip := c.skipVertices[v]

	return skip
}

// Reachable runs a breadth-first search from src and returns, for every
// vertex slot, whether it can be reached. Removed vertices are never reached.
// If src itself is hidden the result is all false.
// Complexity: O(V + E).
func (n *Network) Reachable(src int, opts ...TraverseOption) ([]bool, error) {
	if !n.Has(src) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, src)
	}
	cfg := newTraverseConfig(opts)
	seen := make([]bool, len(n.vertices))
	if cfg.hidden(n, src) {
		return seen, nil
	}
	n.bfs(src, cfg, seen, nil)

	return seen, nil
}

// Connected reports whether every non-removed vertex is reachable from
// every other one. The empty network is connected.
func (n *Network) Connected() bool {
	comps := n.Components()

	return len(comps) <= 1
}

// Components returns the connected components of the visible vertices,
// each sorted ascending, ordered by their smallest member.
// Complexity: O(V + E).
func (n *Network) Components(opts ...TraverseOption) [][]int {
	cfg := newTraverseConfig(opts)
	seen := make([]bool, len(n.vertices))
	var comps [][]int
	for v := range n.vertices {
		if seen[v] || cfg.hidden(n, v) {
			continue
		}
		var members []int
		n.bfs(v, cfg, seen, func(u int) { members = append(members, u) })
		sort.Ints(members)
		comps = append(comps, members)
	}

	return comps
}

// bfs marks everything reachable from src in seen, calling visit (if set)
// once per newly reached vertex. src must be visible.
func (n *Network) bfs(src int, cfg traverseConfig, seen []bool, visit func(int)) {
	q := arrayqueue.New()
	seen[src] = true
	q.Enqueue(src)
	for !q.Empty() {
		item, _ := q.Dequeue()
		u := item.(int)
		if visit != nil {
			visit(u)
		}
		for _, w := range n.adj[u] {
			if seen[w] || cfg.hidden(n, w) {
				continue
			}
			if _, skip := cfg.skipEdges[pairKey(u, w)]; skip {
				continue
			}
			seen[w] = true
			q.Enqueue(w)
		}
	}
}
