package network

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors for network construction and queries.
var (
	// ErrVertexNotFound indicates a vertex index outside 0..N-1.
	ErrVertexNotFound = errors.New("network: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("network: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge that is already present.
	ErrDuplicateEdge = errors.New("network: duplicate edge")

	// ErrEdgeNotFound indicates a referenced edge is absent.
	ErrEdgeNotFound = errors.New("network: edge not found")

	// ErrRoleMismatch indicates the roles present do not fit the network kind.
	ErrRoleMismatch = errors.New("network: role assignment does not fit network kind")
)

// Kind selects which of the two network flavours a value represents.
type Kind int

const (
	// KindWater is a distribution network with an origin, a destination
	// and red (protected) / blue (removable) pipes.
	KindWater Kind = iota
	// KindMilitary is a supply network with a headquarters, a secure tier
	// around it and per-vertex removal endurance.
	KindMilitary
)

func (k Kind) String() string {
	switch k {
	case KindWater:
		return "water"
	case KindMilitary:
		return "military"
	default:
		return "unknown"
	}
}

// Role tags a vertex with its structural part in the network.
type Role int

const (
	// RoleNone marks an ordinary vertex.
	RoleNone Role = iota
	// RoleOrigin is the water source.
	RoleOrigin
	// RoleDestination is the water sink that must be cut off.
	RoleDestination
	// RoleHeadquarters is the military supply source.
	RoleHeadquarters
	// RoleSecure marks vertices adjacent to headquarters in the final network.
	RoleSecure
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleOrigin:
		return "origin"
	case RoleDestination:
		return "destination"
	case RoleHeadquarters:
		return "headquarters"
	case RoleSecure:
		return "secure"
	default:
		return "unknown"
	}
}

// Color marks whether a water pipe may be removed.
type Color int

const (
	// ColorNone is used by military networks, whose edges carry no attribute.
	ColorNone Color = iota
	// ColorBlue edges are removable.
	ColorBlue
	// ColorRed edges touch the origin or destination and are protected.
	ColorRed
)

func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	default:
		return "unknown"
	}
}

// Vertex is a grid cell of the network.
type Vertex struct {
	// ID is the row-major grid index.
	ID int

	// Role is the structural tag of the vertex.
	Role Role

	// Endurance is the cost of removing the vertex (military networks only).
	Endurance int

	// Supplied reports whether the vertex is still reached from its source
	// (origin or headquarters). It starts true and is cleared by consumers.
	Supplied bool

	// Removed is set once the vertex has been taken out by RemoveVertices.
	Removed bool
}

// Edge is an undirected connection with U < V.
type Edge struct {
	U, V  int
	Color Color
}

// Key returns the normalized endpoint pair of e.
func (e Edge) Key() [2]int { return [2]int{e.U, e.V} }

// Network is a role-tagged undirected graph over a square grid.
type Network struct {
	// ID identifies one generated instance.
	ID uuid.UUID

	kind     Kind
	side     int
	vertices []Vertex
	edges    []Edge
	index    map[[2]int]int // endpoint pair -> position in edges
	adj      [][]int        // neighbour lists, kept in insertion order
}
