// Package flow computes maximum flows on network values and uses them as an
// independent certificate for water cuts.
//
// What:
//
//   - EdmondsKarp: shortest augmenting paths (BFS) on the undirected network,
//     each edge carrying the capacity returned by a Capacity function in
//     both directions.
//   - MinCut: the water instance of the max-flow/min-cut theorem. Blue pipes
//     have capacity 1 and red pipes are unbounded, so the flow value equals
//     the minimum number of removable pipes separating destination from
//     origin, and the source side of the final residual graph names them.
//
// Complexity:
//
//	Time:   O(V · E²) in the worst case; on a unit-capacity spanning tree a
//	        single augmentation saturates the cut.
//	Memory: O(V + E) for the arc list and BFS state.
//
// Errors:
//
//	ErrSourceNotFound / ErrSinkNotFound - endpoint outside the network.
//	ErrSourceIsSink                     - both endpoints coincide.
//	EdgeError                           - a Capacity function returned a negative value.
//	ErrProtectedPath                    - MinCut found an all-red route.
//	context.Canceled / DeadlineExceeded - ctx ended between augmentations.
package flow
