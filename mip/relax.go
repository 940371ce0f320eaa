package mip

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// relaxation is the outcome of one LP solve at a search node.
type relaxation struct {
	feasible bool
	obj      float64   // minimization objective, fixed part included
	x        []float64 // one value per model variable
}

// lpRow is a row of the standard-form LP before slack columns are added.
type lpRow struct {
	coef map[int]float64 // LP column -> coefficient
	rel  Relation        // LessEq or GreaterEq
	rhs  float64
}

// relax solves the LP relaxation under the fixings in fix.
//
// Standard form handed to the simplex: min cᵀz s.t. Az = b, z ≥ 0, where z
// holds the free variables that occur in some active row, one slack per
// row, and one upper-bound row x + u = 1 for each such variable with a
// negative cost. Every row owns a slack column, so A has full row rank and
// no zero rows or columns. Free variables that occur in no active row are
// set directly to their best bound.
func (e *engine) relax(fix []int8) (relaxation, error) {
	n := len(fix)
	x := make([]float64, n)
	constant := 0.0
	for j, f := range fix {
		if f == fixed1 {
			x[j] = 1
			constant += e.cost[j]
		}
	}

	// Reduce rows, keeping only those that still involve free variables.
	col := make([]int, n)
	for j := range col {
		col[j] = -1
	}
	var lpVars []int
	var rows []lpRow
	addRow := func(terms []Term, rel Relation, rhs float64) {
		row := lpRow{coef: make(map[int]float64, len(terms)), rel: rel, rhs: rhs}
		for _, t := range terms {
			j := int(t.Var)
			if col[j] < 0 {
				col[j] = len(lpVars)
				lpVars = append(lpVars, j)
			}
			row.coef[col[j]] += t.Coef
		}
		rows = append(rows, row)
	}
	for _, row := range e.model.rows {
		r := reduce(row, fix)
		if len(r.terms) == 0 {
			if !r.satisfiedEmpty(e.tol) {
				return relaxation{}, nil
			}
			continue
		}
		if r.rel == Equal {
			addRow(r.terms, LessEq, r.rhs)
			addRow(r.terms, GreaterEq, r.rhs)
			continue
		}
		addRow(r.terms, r.rel, r.rhs)
	}

	// Free variables outside every row go straight to their best bound.
	for j, f := range fix {
		if f == free && col[j] < 0 && e.cost[j] < 0 {
			x[j] = 1
			constant += e.cost[j]
		}
	}
	if len(lpVars) == 0 {
		return relaxation{feasible: true, obj: constant, x: x}, nil
	}

	var bounded []int // LP columns that need x <= 1
	for k, j := range lpVars {
		if e.cost[j] < 0 {
			bounded = append(bounded, k)
		}
	}

	nv := len(lpVars)
	m := len(rows) + len(bounded)
	cols := nv + m
	A := mat.NewDense(m, cols, nil)
	b := make([]float64, m)
	c := make([]float64, cols)
	for k, j := range lpVars {
		c[k] = e.cost[j]
	}
	for i, row := range rows {
		slack := 1.0
		if row.rel == GreaterEq {
			slack = -1
		}
		sign := 1.0
		if row.rhs < 0 {
			sign = -1
		}
		for k, a := range row.coef {
			A.Set(i, k, sign*a)
		}
		A.Set(i, nv+i, sign*slack)
		b[i] = sign * row.rhs
	}
	for r, k := range bounded {
		i := len(rows) + r
		A.Set(i, k, 1)
		A.Set(i, nv+i, 1)
		b[i] = 1
	}

	optF, optX, err := runSimplex(c, A, b)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return relaxation{}, nil
		}
		return relaxation{}, err
	}
	for k, j := range lpVars {
		x[j] = optX[k]
	}

	return relaxation{feasible: true, obj: optF + constant, x: x}, nil
}

// lpTolerance is handed to the simplex for its internal comparisons.
const lpTolerance = 1e-10

// simplex is the LP routine behind every relaxation.
var simplex = lp.Simplex

// runSimplex calls simplex and turns its panics (gonum panics on singular
// bases) into errors.
func runSimplex(c []float64, A mat.Matrix, b []float64) (optF float64, optX []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			optF, optX, err = 0, nil, fmt.Errorf("mip: simplex: %v", r)
		}
	}()

	return simplex(c, A, b, lpTolerance, nil)
}
