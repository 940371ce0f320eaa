// Package gridgraph defines the candidate edge and topology types.
package gridgraph

// Edge is an undirected candidate edge between two grid cells, with U < V.
type Edge struct {
	U, V int
}

// Topology is an immutable √N×√N grid of N cells.
// Cell indices are row-major: index = y*Side + x.
type Topology struct {
	n     int    // number of cells
	side  int    // √n
	edges []Edge // right and down neighbours, in index order
}
