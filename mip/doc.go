// Package mip models small 0-1 integer programs and solves them exactly.
//
// What:
//
//   - Model: binary variables, a linear objective with a sense, and linear
//     constraints (≤, ≥, =). Models are plain values built in one pass.
//   - Solver: the capability consumed by the interdiction builders:
//     "solve a model, report status, objective value and assignment".
//   - BranchAndBound: a depth-first branch-and-bound Solver whose bounds
//     come from the LP relaxation (gonum's simplex).
//
// Statuses:
//
//	StatusOptimal and StatusInfeasible are terminal answers and come back
//	with a nil error. Every other status (node limit, time limit,
//	cancellation, numerical trouble) returns a *StatusError that matches
//	ErrSolverFailure under errors.Is, so callers can tell "no solution
//	exists" apart from "the solver gave up".
//
// Presolve:
//
//	Single-variable equalities fix their variable, and in a ≤ row whose
//	coefficients are all non-negative any variable whose coefficient
//	alone exceeds the right-hand side is fixed to 0. Both rules are
//	applied to a fixpoint before the search starts.
//
// Relaxation:
//
//	Each node solves min cᵀx subject to the active rows, x ≥ 0. Only
//	variables with a negative (minimization) cost carry an explicit x ≤ 1
//	row; the others are bounded by the objective and the model rows.
//	The relaxation therefore stays a valid lower bound, and any value
//	outside {0,1} is branched on.
//
// Concurrency:
//
//	A BranchAndBound value holds only configuration and may be shared;
//	each Solve call allocates its own search state.
package mip
