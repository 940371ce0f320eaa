// Package generator grows random, guaranteed-connected grid networks with
// role-tagged vertices and edges.
//
// What:
//
//   - WaterNetwork: an origin and a far-away destination; every pipe that
//     touches either is red (protected), all others are blue.
//   - MilitaryNetwork: a headquarters with endurance 10000, ordinary units
//     with endurance 1, 2 or 3 (weights 0.2/0.2/0.6 by default) and a
//     secure tier of endurance 100 around the headquarters.
//
// How:
//
//	Both flavours run the same acceptance loop over the candidate edges of
//	the √N×√N grid (package gridgraph): pop a uniformly random candidate,
//	keep it iff it joins two union-find components (package dsu), stop as
//	soon as one component remains. The result is a random spanning tree
//	with exactly N−1 edges; leftover candidates are discarded.
//
// Ordering constraints:
//
//   - Water roles are placed before the acceptance loop, because edge
//     color is decided at acceptance time.
//   - The secure tier is placed after the loop: which vertices are secure
//     depends on the random tree, so their count varies per network.
//
// Determinism:
//
//	All randomness flows through one *rand.Rand (WithSeed / WithRand).
//	Without options a fixed default seed is used; no time-based sources
//	are hidden anywhere. A Generator is not safe for concurrent use; give
//	each goroutine its own.
//
// Errors:
//
//   - gridgraph.ErrInvalidTopology: N is not a positive perfect square,
//     or (water) no vertex pair satisfies the separation band.
package generator
