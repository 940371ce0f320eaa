// Package network holds the role-tagged grid networks that the generators
// produce and the interdiction models consume.
//
// What:
//
//   - Vertices are the integers 0..N-1 laid out on a √N×√N grid.
//   - Each vertex carries a closed Role, a removal Endurance (military
//     networks) and a Supplied flag that consumers clear once a vertex is
//     cut off from its source.
//   - Each undirected edge carries a closed Color (water networks): red
//     edges are protected, blue edges may be removed.
//
// Ownership:
//
//   - A *Network is a plain value owned by whoever holds the pointer. It is
//     not safe for concurrent mutation; Clone before handing it elsewhere.
//   - Models built from a network must not be reused after the network
//     has been mutated (RemoveEdges, RemoveVertices).
//
// Errors:
//
//   - ErrVertexNotFound: vertex index outside 0..N-1.
//   - ErrSelfLoop:       an edge with identical endpoints.
//   - ErrDuplicateEdge:  the same unordered pair added twice.
//   - ErrRoleMismatch:   role multiplicity does not fit the network kind.
package network
