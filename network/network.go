package network

import (
	"fmt"
	"sort"
)

// New returns a network of side×side vertices, all with RoleNone,
// endurance 0, no edges, and Supplied set.
// Complexity: O(N).
func New(kind Kind, side int) *Network {
	if side < 0 {
		side = 0
	}
	n := side * side
	net := &Network{
		kind:     kind,
		side:     side,
		vertices: make([]Vertex, n),
		edges:    make([]Edge, 0, n),
		index:    make(map[[2]int]int, n),
		adj:      make([][]int, n),
	}
	for v := range net.vertices {
		net.vertices[v] = Vertex{ID: v, Supplied: true}
	}

	return net
}

// Kind returns the network flavour.
func (n *Network) Kind() Kind { return n.kind }

// Side returns the grid width √N.
func (n *Network) Side() int { return n.side }

// Order returns the number of vertex slots N (removed vertices included).
func (n *Network) Order() int { return len(n.vertices) }

// Size returns the number of edges.
func (n *Network) Size() int { return len(n.edges) }

// Has reports whether v is a valid vertex index.
func (n *Network) Has(v int) bool { return v >= 0 && v < len(n.vertices) }

// Vertex returns a copy of vertex v.
func (n *Network) Vertex(v int) (Vertex, error) {
	if !n.Has(v) {
		return Vertex{}, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return n.vertices[v], nil
}

// Vertices returns a copy of all vertex slots in index order.
func (n *Network) Vertices() []Vertex {
	out := make([]Vertex, len(n.vertices))
	copy(out, n.vertices)

	return out
}

// Edges returns a copy of the edges in insertion order.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Neighbors returns the vertices adjacent to v, sorted ascending.
func (n *Network) Neighbors(v int) ([]int, error) {
	if !n.Has(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	out := make([]int, len(n.adj[v]))
	copy(out, n.adj[v])
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to v (0 for invalid v).
func (n *Network) Degree(v int) int {
	if !n.Has(v) {
		return 0
	}

	return len(n.adj[v])
}

// HasEdge reports whether the unordered pair {u,v} is an edge.
func (n *Network) HasEdge(u, v int) bool {
	_, ok := n.index[pairKey(u, v)]

	return ok
}

// EdgeBetween returns the edge joining u and v.
func (n *Network) EdgeBetween(u, v int) (Edge, error) {
	i, ok := n.index[pairKey(u, v)]
	if !ok {
		return Edge{}, fmt.Errorf("%w: {%d,%d}", ErrEdgeNotFound, u, v)
	}

	return n.edges[i], nil
}

// AddEdge inserts the undirected edge {u,v} with the given color.
// Returns ErrVertexNotFound, ErrSelfLoop or ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (n *Network) AddEdge(u, v int, c Color) error {
	if !n.Has(u) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	if !n.Has(v) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrSelfLoop, u)
	}
	key := pairKey(u, v)
	if _, dup := n.index[key]; dup {
		return fmt.Errorf("%w: {%d,%d}", ErrDuplicateEdge, key[0], key[1])
	}
	n.index[key] = len(n.edges)
	n.edges = append(n.edges, Edge{U: key[0], V: key[1], Color: c})
	n.adj[u] = append(n.adj[u], v)
	n.adj[v] = append(n.adj[v], u)

	return nil
}

// SetRole assigns r to vertex v.
func (n *Network) SetRole(v int, r Role) error {
	if !n.Has(v) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	n.vertices[v].Role = r

	return nil
}

// SetEndurance assigns the removal cost of vertex v.
func (n *Network) SetEndurance(v int, endurance int) error {
	if !n.Has(v) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	n.vertices[v].Endurance = endurance

	return nil
}

// WithRole returns the vertices holding role r, ascending.
func (n *Network) WithRole(r Role) []int {
	var out []int
	for _, vx := range n.vertices {
		if vx.Role == r {
			out = append(out, vx.ID)
		}
	}

	return out
}

// Origin returns the unique origin vertex, if any.
func (n *Network) Origin() (int, bool) { return n.unique(RoleOrigin) }

// Destination returns the unique destination vertex, if any.
func (n *Network) Destination() (int, bool) { return n.unique(RoleDestination) }

// Headquarters returns the unique headquarters vertex, if any.
func (n *Network) Headquarters() (int, bool) { return n.unique(RoleHeadquarters) }

func (n *Network) unique(r Role) (int, bool) {
	ids := n.WithRole(r)
	if len(ids) != 1 {
		return -1, false
	}

	return ids[0], true
}

// TotalEndurance sums the endurance of the given vertices; unknown ids are skipped.
func (n *Network) TotalEndurance(ids []int) int {
	total := 0
	for _, v := range ids {
		if n.Has(v) {
			total += n.vertices[v].Endurance
		}
	}

	return total
}

// Validate checks that role multiplicity matches the network kind:
// water networks hold exactly one origin and one destination and no
// military roles; military networks hold exactly one headquarters and
// no water roles.
func (n *Network) Validate() error {
	counts := make(map[Role]int, 5)
	for _, vx := range n.vertices {
		counts[vx.Role]++
	}
	switch n.kind {
	case KindWater:
		if counts[RoleOrigin] != 1 || counts[RoleDestination] != 1 {
			return fmt.Errorf("%w: water network has %d origin(s) and %d destination(s)",
				ErrRoleMismatch, counts[RoleOrigin], counts[RoleDestination])
		}
		if counts[RoleHeadquarters]+counts[RoleSecure] > 0 {
			return fmt.Errorf("%w: water network holds military roles", ErrRoleMismatch)
		}
	case KindMilitary:
		if counts[RoleHeadquarters] != 1 {
			return fmt.Errorf("%w: military network has %d headquarters",
				ErrRoleMismatch, counts[RoleHeadquarters])
		}
		if counts[RoleOrigin]+counts[RoleDestination] > 0 {
			return fmt.Errorf("%w: military network holds water roles", ErrRoleMismatch)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrRoleMismatch, int(n.kind))
	}

	return nil
}

// pairKey normalizes an unordered pair so that key[0] <= key[1].
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
