package interdict

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphy/mip"
	"github.com/katalvlaran/graphy/network"
)

// solve runs solver on m and maps the outcome onto this package's errors.
// A nil solver means a default mip.BranchAndBound.
func solve(ctx context.Context, solver mip.Solver, m *mip.Model) (*mip.Solution, error) {
	if solver == nil {
		solver = mip.NewBranchAndBound()
	}
	sol, err := solver.Solve(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSolverFailure, m.Name(), err)
	}
	if sol == nil {
		return nil, fmt.Errorf("%w: %s: no solution returned", ErrSolverFailure, m.Name())
	}
	switch sol.Status {
	case mip.StatusOptimal:
		return sol, nil
	case mip.StatusInfeasible:
		return nil, fmt.Errorf("%w: %s", ErrModelInfeasible, m.Name())
	default:
		return nil, fmt.Errorf("%w: %s ended with status %s", ErrSolverFailure, m.Name(), sol.Status)
	}
}

// checkKind rejects nil networks, networks of another kind and networks
// whose roles do not fit their kind.
func checkKind(net *network.Network, kind network.Kind) error {
	if net == nil {
		return ErrNilNetwork
	}
	if net.Kind() != kind {
		return fmt.Errorf("%w: want %s network, got %s", ErrWrongKind, kind, net.Kind())
	}
	if err := net.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrRoleMissing, err)
	}

	return nil
}

// rows accumulates constraints and keeps the first error.
type rows struct {
	m   *mip.Model
	err error
}

func (r *rows) add(name string, rel mip.Relation, rhs float64, terms ...mip.Term) {
	if r.err != nil {
		return
	}
	r.err = r.m.AddConstraint(name, rel, rhs, terms...)
}

// unreached lists the vertices for which reach is false, ascending.
func unreached(reach []bool) []int {
	var out []int
	for v, ok := range reach {
		if !ok {
			out = append(out, v)
		}
	}

	return out
}
