package gridgraph

import "errors"

var (
	// ErrInvalidTopology indicates a cell count that cannot form a square grid,
	// or a grid too small for the requested role placement.
	ErrInvalidTopology = errors.New("gridgraph: invalid grid topology")
	// ErrCellOutOfRange indicates a coordinate or index outside the grid.
	ErrCellOutOfRange = errors.New("gridgraph: cell out of range")
)
