package mip

import (
	"fmt"
	"math"
)

// Sense is the optimization direction.
type Sense int

const (
	// Minimize the objective.
	Minimize Sense = iota
	// Maximize the objective.
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "max"
	}

	return "min"
}

// Relation is the comparison of a linear constraint.
type Relation int

const (
	// LessEq is Σ aᵢxᵢ ≤ b.
	LessEq Relation = iota
	// GreaterEq is Σ aᵢxᵢ ≥ b.
	GreaterEq
	// Equal is Σ aᵢxᵢ = b.
	Equal
)

func (r Relation) String() string {
	switch r {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "=="
	default:
		return "?"
	}
}

// Var is a handle to a binary variable of one Model.
type Var int

// Term is a coefficient applied to a variable.
type Term struct {
	Var  Var
	Coef float64
}

// T is shorthand for Term{Var: v, Coef: coef}.
func T(coef float64, v Var) Term { return Term{Var: v, Coef: coef} }

// Constraint is one linear row of a model.
type Constraint struct {
	Name  string
	Terms []Term
	Rel   Relation
	RHS   float64
}

// Model is a 0-1 integer program. The zero value is not usable; call NewModel.
type Model struct {
	name  string
	sense Sense
	names []string
	obj   []float64
	rows  []Constraint
}

// NewModel returns an empty model with the given optimization sense.
func NewModel(name string, sense Sense) *Model {
	return &Model{name: name, sense: sense}
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Sense returns the optimization direction.
func (m *Model) Sense() Sense { return m.sense }

// NumVars returns the number of variables.
func (m *Model) NumVars() int { return len(m.names) }

// NumConstraints returns the number of constraints.
func (m *Model) NumConstraints() int { return len(m.rows) }

// AddBinary adds a binary variable with objective coefficient obj.
func (m *Model) AddBinary(name string, obj float64) Var {
	m.names = append(m.names, name)
	m.obj = append(m.obj, obj)

	return Var(len(m.names) - 1)
}

// VarName returns the name given to v, or "" if v is unknown.
func (m *Model) VarName(v Var) string {
	if !m.valid(v) {
		return ""
	}

	return m.names[v]
}

// Objective returns the objective coefficient of v.
func (m *Model) Objective(v Var) float64 {
	if !m.valid(v) {
		return 0
	}

	return m.obj[v]
}

// SetObjective replaces the objective coefficient of v.
func (m *Model) SetObjective(v Var, coef float64) error {
	if !m.valid(v) {
		return fmt.Errorf("%w: %d", ErrUnknownVar, v)
	}
	if !finite(coef) {
		return fmt.Errorf("%w: objective of %s", ErrBadCoefficient, m.names[v])
	}
	m.obj[v] = coef

	return nil
}

// AddConstraint appends Σ terms rel rhs. Terms on the same variable are
// merged and zero coefficients dropped.
// Returns ErrUnknownVar or ErrBadCoefficient; the model is unchanged on error.
func (m *Model) AddConstraint(name string, rel Relation, rhs float64, terms ...Term) error {
	if rel < LessEq || rel > Equal {
		return fmt.Errorf("mip: constraint %q has unknown relation %d", name, int(rel))
	}
	if !finite(rhs) {
		return fmt.Errorf("%w: right-hand side of %q", ErrBadCoefficient, name)
	}
	merged := make(map[Var]float64, len(terms))
	order := make([]Var, 0, len(terms))
	for _, t := range terms {
		if !m.valid(t.Var) {
			return fmt.Errorf("%w: %d in constraint %q", ErrUnknownVar, t.Var, name)
		}
		if !finite(t.Coef) {
			return fmt.Errorf("%w: %s in constraint %q", ErrBadCoefficient, m.names[t.Var], name)
		}
		if _, seen := merged[t.Var]; !seen {
			order = append(order, t.Var)
		}
		merged[t.Var] += t.Coef
	}
	row := Constraint{Name: name, Rel: rel, RHS: rhs, Terms: make([]Term, 0, len(order))}
	for _, v := range order {
		if c := merged[v]; c != 0 {
			row.Terms = append(row.Terms, Term{Var: v, Coef: c})
		}
	}
	m.rows = append(m.rows, row)

	return nil
}

// Constraints returns a copy of the constraint rows.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.rows))
	for i, r := range m.rows {
		out[i] = r
		out[i].Terms = append([]Term(nil), r.Terms...)
	}

	return out
}

// Evaluate returns the objective value of a full assignment.
func (m *Model) Evaluate(values []float64) (float64, error) {
	if len(values) != len(m.names) {
		return 0, fmt.Errorf("mip: assignment has %d values, model has %d variables", len(values), len(m.names))
	}
	total := 0.0
	for j, c := range m.obj {
		total += c * values[j]
	}

	return total, nil
}

// Violation returns the largest amount by which values breaks a row, and
// the name of that row (0 and "" for a feasible assignment).
func (m *Model) Violation(values []float64) (float64, string) {
	worst, name := 0.0, ""
	for _, r := range m.rows {
		lhs := 0.0
		for _, t := range r.Terms {
			lhs += t.Coef * values[t.Var]
		}
		var v float64
		switch r.Rel {
		case LessEq:
			v = lhs - r.RHS
		case GreaterEq:
			v = r.RHS - lhs
		case Equal:
			v = math.Abs(lhs - r.RHS)
		}
		if v > worst {
			worst, name = v, r.Name
		}
	}

	return worst, name
}

func (m *Model) valid(v Var) bool { return v >= 0 && int(v) < len(m.names) }

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
