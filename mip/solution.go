package mip

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for modelling and solving.
var (
	// ErrSolverFailure matches every outcome that is neither optimal nor infeasible.
	ErrSolverFailure = errors.New("mip: solver failure")

	// ErrUnknownVar indicates a variable handle from another model or out of range.
	ErrUnknownVar = errors.New("mip: unknown variable")

	// ErrBadCoefficient indicates a NaN or infinite coefficient.
	ErrBadCoefficient = errors.New("mip: coefficient must be finite")

	// ErrNilModel indicates Solve was called without a model.
	ErrNilModel = errors.New("mip: nil model")
)

// Status is the terminal state of one Solve call.
type Status int

const (
	// StatusUnknown is the zero value; no solver returns it.
	StatusUnknown Status = iota
	// StatusOptimal means Values is a proven optimum.
	StatusOptimal
	// StatusInfeasible means no assignment satisfies every row.
	StatusInfeasible
	// StatusNodeLimit means the search hit its node budget.
	StatusNodeLimit
	// StatusTimeLimit means the search hit its wall-clock budget.
	StatusTimeLimit
	// StatusCanceled means the context was done before the search finished.
	StatusCanceled
	// StatusNumerical means an LP relaxation failed for numerical reasons.
	StatusNumerical
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusNodeLimit:
		return "node-limit"
	case StatusTimeLimit:
		return "time-limit"
	case StatusCanceled:
		return "canceled"
	case StatusNumerical:
		return "numerical"
	default:
		return "unknown"
	}
}

// StatusError reports a non-terminal solver outcome.
// errors.Is(err, ErrSolverFailure) holds for every StatusError.
type StatusError struct {
	Status Status
	Cause  error
}

func (e *StatusError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("mip: solver stopped with status %s: %v", e.Status, e.Cause)
	}

	return fmt.Sprintf("mip: solver stopped with status %s", e.Status)
}

// Is makes StatusError match ErrSolverFailure.
func (e *StatusError) Is(target error) bool { return target == ErrSolverFailure }

// Unwrap exposes the underlying cause, if any.
func (e *StatusError) Unwrap() error { return e.Cause }

// Solution is the outcome of a Solve call.
type Solution struct {
	// Status is the terminal state.
	Status Status

	// Objective is the objective value of Values, in the model's own sense.
	// Meaningful only for StatusOptimal (or an incumbent on early stop).
	Objective float64

	// Values holds one 0/1 value per variable. Nil when no assignment exists.
	Values []float64

	// Nodes counts explored branch-and-bound nodes.
	Nodes int

	// Elapsed is the wall time of the call.
	Elapsed time.Duration
}

// Value returns the value of v, or 0 if there is no assignment.
func (s *Solution) Value(v Var) float64 {
	if s == nil || int(v) < 0 || int(v) >= len(s.Values) {
		return 0
	}

	return s.Values[v]
}

// Bool reports whether v is set to 1.
func (s *Solution) Bool(v Var) bool { return s.Value(v) > 0.5 }

// Solver resolves a model. Implementations return StatusOptimal or
// StatusInfeasible with a nil error, and a *StatusError otherwise.
type Solver interface {
	Solve(ctx context.Context, m *Model) (*Solution, error)
}
