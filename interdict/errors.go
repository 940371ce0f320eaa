package interdict

import "errors"

// Sentinel errors.
var (
	// ErrNilNetwork indicates a nil *network.Network argument.
	ErrNilNetwork = errors.New("interdict: nil network")

	// ErrWrongKind indicates a water operation on a military network or vice versa.
	ErrWrongKind = errors.New("interdict: wrong network kind")

	// ErrRoleMissing indicates the network lacks its unique origin,
	// destination or headquarters.
	ErrRoleMissing = errors.New("interdict: required role missing")

	// ErrNegativeBudget indicates a firepower budget below zero.
	ErrNegativeBudget = errors.New("interdict: budget must be non-negative")

	// ErrModelInfeasible indicates the program admits no feasible strategy.
	ErrModelInfeasible = errors.New("interdict: model infeasible")

	// ErrSolverFailure indicates the solver ended without proving
	// optimality or infeasibility.
	ErrSolverFailure = errors.New("interdict: solver failure")

	// ErrProtectedEdge indicates an attempt to remove a red pipe.
	ErrProtectedEdge = errors.New("interdict: edge is protected")

	// ErrProtectedVertex indicates an attempt to remove headquarters or a
	// secure vertex.
	ErrProtectedVertex = errors.New("interdict: vertex is protected")

	// ErrBudgetExceeded indicates an attempt whose endurance exceeds the budget.
	ErrBudgetExceeded = errors.New("interdict: budget exceeded")
)
