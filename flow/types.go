package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphy/network"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink vertex not found")

// ErrSourceIsSink is returned when source and sink are the same vertex.
var ErrSourceIsSink = errors.New("flow: source and sink coincide")

// ErrNilNetwork is returned when no network is given.
var ErrNilNetwork = errors.New("flow: nil network")

// ErrProtectedPath is returned by MinCut when origin and destination are
// joined by red pipes alone, so no removable cut exists.
var ErrProtectedPath = errors.New("flow: origin and destination joined by protected pipes")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d-%d: %d", e.From, e.To, e.Cap)
}

// Capacity assigns an integral capacity to an undirected edge.
type Capacity func(e network.Edge) int64

// FlowOptions configures EdmondsKarp.
//   - Verbose: log each augmentation through klog at V(4).
type FlowOptions struct {
	Verbose bool
}

// Cut is a minimum cut of a water network.
type Cut struct {
	// Value is the number of removable pipes in the cut.
	Value int64

	// Edges are the pipes crossing from the origin side to the destination
	// side, in network edge order. All of them are blue.
	Edges []network.Edge

	// SourceSide lists, ascending, the vertices still reachable from the
	// origin in the final residual graph.
	SourceSide []int
}
