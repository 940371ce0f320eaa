package gridgraph

import (
	"fmt"
	"math"
)

// NewTopology builds the candidate edge list of an n-cell square grid.
// Returns ErrInvalidTopology if n < 1 or n is not a perfect square.
// Complexity: O(n) time and memory.
func NewTopology(n int) (*Topology, error) {
	side, ok := PerfectSquareRoot(n)
	if !ok {
		return nil, fmt.Errorf("%w: %d cells is not a positive perfect square", ErrInvalidTopology, n)
	}
	t := &Topology{
		n:     n,
		side:  side,
		edges: make([]Edge, 0, 2*side*(side-1)),
	}
	for v := 0; v < n; v++ {
		// Right neighbour, unless v is on the rightmost column.
		if (v+1)%side != 0 {
			t.edges = append(t.edges, Edge{U: v, V: v + 1})
		}
		// Down neighbour, unless v is on the last row.
		if v+side < n {
			t.edges = append(t.edges, Edge{U: v, V: v + side})
		}
	}

	return t, nil
}

// PerfectSquareRoot returns s with s*s == n, and whether such s >= 1 exists.
func PerfectSquareRoot(n int) (int, bool) {
	if n < 1 {
		return 0, false
	}
	// Float estimate, then correct any rounding by one step either way.
	s := int(math.Sqrt(float64(n)))
	for s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}

	return s, s*s == n
}

// Order returns the number of cells N.
func (t *Topology) Order() int { return t.n }

// Side returns the grid width (and height) √N.
func (t *Topology) Side() int { return t.side }

// NumCandidates returns the length of the candidate edge list.
func (t *Topology) NumCandidates() int { return len(t.edges) }

// CandidateEdges returns a fresh copy of the candidate edge list.
// Complexity: O(E).
func (t *Topology) CandidateEdges() []Edge {
	out := make([]Edge, len(t.edges))
	copy(out, t.edges)

	return out
}

// InBounds reports whether (x,y) lies within the grid.
func (t *Topology) InBounds(x, y int) bool {
	return x >= 0 && x < t.side && y >= 0 && y < t.side
}

// Coordinate converts a row-major index back to (x,y).
func (t *Topology) Coordinate(idx int) (x, y int) {
	return idx % t.side, idx / t.side
}

// Index maps (x,y) to its row-major index.
// Returns ErrCellOutOfRange if (x,y) is outside the grid.
func (t *Topology) Index(x, y int) (int, error) {
	if !t.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) on a %dx%d grid", ErrCellOutOfRange, x, y, t.side, t.side)
	}

	return y*t.side + x, nil
}

// Manhattan returns the grid distance between two cells.
func (t *Topology) Manhattan(a, b int) int {
	ax, ay := t.Coordinate(a)
	bx, by := t.Coordinate(b)

	return abs(ax-bx) + abs(ay-by)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
