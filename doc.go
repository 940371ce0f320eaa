// Package graphy generates random grid networks and computes how to break
// them, optimally, with 0-1 integer programming.
//
// 🚀 What is graphy?
//
//	A small, deterministic core for two interdiction puzzles:
//		• Water distribution: cut the destination off its origin by removing
//		  the fewest blue pipes; red pipes next to either end are protected.
//		• Military supply: spend a firepower budget on vertex removals to cut
//		  off as many vertices from headquarters as possible; headquarters and
//		  the secure tier around it cannot be hit.
//
// ✨ How it fits together
//
//   - Seeded generation – every network is a random spanning tree of a √N×√N
//     grid, built by union-find over shuffled grid edges
//   - Closed vocabularies – roles and colors are enums, not string tags
//   - Exact answers – models are solved by branch and bound over LP bounds;
//     "no strategy exists" and "the solver gave up" are distinct errors
//   - Independent certificate – water cuts are cross-checked by max flow
//
// Packages:
//
//	dsu/        disjoint-set forest with component counting
//	gridgraph/  square-grid topology and candidate edges
//	network/    role-tagged vertices, colored edges, traversal, mutation
//	generator/  seeded water and military network generation
//	mip/        0-1 models and the branch-and-bound solver
//	interdict/  cut and disconnection models, solutions, attempt scoring
//	flow/       Edmonds–Karp max flow and water min-cut certificate
//	config/     YAML settings for the command
//	cmd/graphy  generate, solve and draw from the terminal
//
// Quick ASCII example (water, 2×3 corner of a grid):
//
//	O═══o───o
//	        │
//	D═══o───o
//
// Removing any one of the three blue pipes (───, │) separates D from O.
//
//	go install github.com/katalvlaran/graphy/cmd/graphy@latest
package graphy
