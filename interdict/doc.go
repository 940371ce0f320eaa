// Package interdict turns generated networks into 0-1 integer programs and
// reads the optimal strategies back.
//
// What:
//
//   - Water networks: BuildWaterCut encodes the minimum edge cut separating
//     the destination from the origin. Red (protected) pipes are pinned out
//     of the cut, so a destination reachable only through red pipes yields
//     ErrModelInfeasible rather than a zero-cost answer.
//   - Military networks: BuildMilitaryDisconnect encodes the budgeted
//     vertex interdiction that maximizes the number of vertices separated
//     from headquarters. Among optimal strategies the cheapest one (by total
//     endurance) is preferred.
//   - ScoreWaterAttempt / ScoreMilitaryAttempt grade a hand-picked removal
//     against the optimum.
//
// Errors:
//
//	ErrModelInfeasible and ErrSolverFailure are distinct outcomes: the
//	first is a proof that no strategy exists, the second means the solver
//	stopped without an answer (node limit, time limit, cancellation).
//
// Ownership:
//
//	Builders read the network and never mutate it. Apply is the only call
//	that changes a caller's network.
package interdict
