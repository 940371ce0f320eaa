package mip

import "math"

// Fixing states of a variable during search.
const (
	free   int8 = -1
	fixed0 int8 = 0
	fixed1 int8 = 1
)

// reduced is one row with fixed variables substituted out.
type reduced struct {
	terms []Term
	rel   Relation
	rhs   float64
}

// reduce substitutes the fixed variables of fix into r.
func reduce(r Constraint, fix []int8) reduced {
	out := reduced{rel: r.Rel, rhs: r.RHS, terms: make([]Term, 0, len(r.Terms))}
	for _, t := range r.Terms {
		switch fix[t.Var] {
		case free:
			out.terms = append(out.terms, t)
		case fixed1:
			out.rhs -= t.Coef
		}
	}

	return out
}

// satisfiedEmpty reports whether a row without free terms holds, i.e.
// whether 0 rel rhs.
func (r reduced) satisfiedEmpty(tol float64) bool {
	switch r.rel {
	case LessEq:
		return r.rhs >= -tol
	case GreaterEq:
		return r.rhs <= tol
	default:
		return math.Abs(r.rhs) <= tol
	}
}

// presolve fixes variables implied by single rows until nothing changes.
// It returns false if some row cannot be satisfied by any completion.
//
// Rules:
//  1. A row with no free terms must already hold.
//  2. An equality with one free term fixes that term (to 0 or 1; any other
//     value is infeasible for a binary).
//  3. In a ≤ row (≥ rows are negated) whose free coefficients are all
//     non-negative, a variable whose coefficient exceeds the right-hand
//     side cannot be 1 and is fixed to 0.
func presolve(m *Model, fix []int8, tol float64) bool {
	for changed := true; changed; {
		changed = false
		for _, row := range m.rows {
			r := reduce(row, fix)
			if len(r.terms) == 0 {
				if !r.satisfiedEmpty(tol) {
					return false
				}
				continue
			}
			if r.rel == Equal {
				if len(r.terms) != 1 {
					continue
				}
				val := r.rhs / r.terms[0].Coef
				switch {
				case math.Abs(val) <= tol:
					fix[r.terms[0].Var] = fixed0
				case math.Abs(val-1) <= tol:
					fix[r.terms[0].Var] = fixed1
				default:
					return false
				}
				changed = true
				continue
			}
			sign := 1.0
			if r.rel == GreaterEq {
				sign = -1
			}
			rhs := sign * r.rhs
			nonNeg := true
			for _, t := range r.terms {
				if sign*t.Coef < 0 {
					nonNeg = false
					break
				}
			}
			if !nonNeg {
				continue
			}
			if rhs < -tol {
				return false
			}
			for _, t := range r.terms {
				if sign*t.Coef > rhs+tol {
					fix[t.Var] = fixed0
					changed = true
				}
			}
		}
	}

	return true
}
