// Package gridgraph enumerates the candidate edges of an implicit square grid.
//
// What:
//
//   - A Topology of N cells interprets indices 0..N-1 as a row-major
//     √N×√N grid.
//   - Cell v proposes the edge (v, v+1) unless it sits on the rightmost
//     column, and the edge (v, v+√N) unless that would pass the last row.
//   - The candidate list is computed once and handed out as copies, so
//     generators may consume (pop from) their own copy freely.
//
// Why:
//
//   - Random spanning networks are grown from this list by union-find
//     acceptance (see package generator); a fixed layout keeps vertex
//     positions meaningful for display and for separation heuristics.
//
// Preconditions:
//
//   - N must be a positive perfect square. Anything else is rejected by
//     NewTopology with ErrInvalidTopology; there is no silent rounding.
//
// Complexity:
//
//   - NewTopology: O(N) time and memory (2·√N·(√N−1) candidate edges).
//   - CandidateEdges: O(E) copy.
//
// Errors:
//
//   - ErrInvalidTopology: N < 1 or N is not a perfect square.
package gridgraph
