// Package mip: branch and bound (exact search over LP relaxation bounds).
//
// BranchAndBound explores a depth-first tree of partial 0-1 fixings.
//
// Rationale (succinct):
//  1. Presolve fixes what single rows already imply; at the root this
//     removes protected edges, pinned source/sink variables and any
//     vertex too expensive for the budget.
//  2. Each node solves the LP relaxation; its value is an admissible lower
//     bound (minimization form). When every objective coefficient is
//     integral the bound is rounded up before pruning.
//  3. Branching picks the free variable farthest from {0,1} and explores
//     the nearer side first, which tends to find incumbents early.
//  4. Integral relaxations are rounded and re-checked against the model
//     before they become the incumbent; a rounding that breaks a row
//     splits the node instead.
//
// Limits:
//   - Node budget, wall-clock budget and context cancellation stop the
//     search with a *StatusError; the best incumbent (if any) is still
//     returned in the Solution.

package mip

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// BranchAndBound is the default Solver.
type BranchAndBound struct {
	nodeLimit int
	timeLimit time.Duration
	tol       float64
	logLevel  int32
	metrics   *Metrics
}

// NewBranchAndBound returns a solver with deterministic defaults:
// DefaultNodeLimit nodes, no time limit, tolerance 1e-6, progress at klog V(2).
func NewBranchAndBound(opts ...Option) *BranchAndBound {
	s := &BranchAndBound{
		nodeLimit: DefaultNodeLimit,
		tol:       defaultTolerance,
		logLevel:  defaultLogLevel,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

var _ Solver = (*BranchAndBound)(nil)

// engine holds the state of one Solve call.
type engine struct {
	model      *Model
	cost       []float64 // minimization-form objective
	tol        float64
	integerObj bool // all costs integral: bounds may be rounded up

	bestX   []float64
	bestObj float64 // minimization form
	nodes   int
}

// node is a pending subproblem.
type node struct {
	fix   []int8
	depth int
}

// Solve runs the search. See the package documentation for the status contract.
func (s *BranchAndBound) Solve(ctx context.Context, m *Model) (*Solution, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	sol, err := s.search(ctx, m, start)
	sol.Elapsed = time.Since(start)

	if s.metrics != nil {
		s.metrics.observe(sol)
	}
	v := klog.V(klog.Level(s.logLevel))
	if err != nil {
		v.Infof("mip: %s stopped: status=%s nodes=%d elapsed=%s err=%v",
			m.name, sol.Status, sol.Nodes, sol.Elapsed, err)
	} else {
		v.Infof("mip: %s solved: status=%s objective=%g nodes=%d elapsed=%s",
			m.name, sol.Status, sol.Objective, sol.Nodes, sol.Elapsed)
	}

	return sol, err
}

func (s *BranchAndBound) search(ctx context.Context, m *Model, start time.Time) (*Solution, error) {
	n := m.NumVars()
	e := &engine{
		model:      m,
		cost:       make([]float64, n),
		tol:        s.tol,
		integerObj: true,
		bestObj:    math.Inf(1),
	}
	for j, c := range m.obj {
		if m.sense == Maximize {
			c = -c
		}
		e.cost[j] = c
		if c != math.Trunc(c) {
			e.integerObj = false
		}
	}

	root := make([]int8, n)
	for j := range root {
		root[j] = free
	}
	if !presolve(m, root, s.tol) {
		return &Solution{Status: StatusInfeasible}, nil
	}

	stack := []node{{fix: root}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return e.stopped(StatusCanceled, err), &StatusError{Status: StatusCanceled, Cause: err}
		}
		if s.timeLimit > 0 && time.Since(start) > s.timeLimit {
			return e.stopped(StatusTimeLimit, nil), &StatusError{Status: StatusTimeLimit}
		}
		if e.nodes >= s.nodeLimit {
			return e.stopped(StatusNodeLimit, nil), &StatusError{Status: StatusNodeLimit}
		}

		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e.nodes++

		rel, err := e.relax(nd.fix)
		if err != nil {
			cause := errors.Wrapf(err, "lp relaxation at node %d (depth %d)", e.nodes, nd.depth)
			// Without a bound the node is split blindly; leaves fix every
			// variable and never reach the simplex, so the search stays exact.
			j := firstFree(nd.fix)
			if j < 0 {
				return e.stopped(StatusNumerical, cause), &StatusError{Status: StatusNumerical, Cause: cause}
			}
			klog.Warningf("mip: %s: %v; branching on %s without a bound", m.name, cause, m.names[j])
			stack = append(stack, e.child(nd, j, fixed1), e.child(nd, j, fixed0))
			continue
		}
		if !rel.feasible {
			continue
		}
		bound := rel.obj
		if e.integerObj {
			bound = math.Ceil(bound - s.tol)
		}
		if bound >= e.bestObj-s.tol {
			continue
		}

		j := e.branchVar(nd.fix, rel.x)
		if j < 0 {
			if e.offer(rel.x, nd.depth) {
				continue
			}
			// The rounding broke a row, so the relaxation was not as
			// integral as it looked. Split the least integral free variable.
			if j = e.leastIntegral(nd.fix, rel.x); j < 0 {
				cause := errors.Errorf("rounded relaxation with every variable fixed at node %d", e.nodes)
				return e.stopped(StatusNumerical, cause), &StatusError{Status: StatusNumerical, Cause: cause}
			}
		}

		near := fixed0
		if rel.x[j] >= 0.5 {
			near = fixed1
		}
		far := fixed1 - near
		// LIFO: push the far side first so the near side is explored next.
		stack = append(stack, e.child(nd, j, far), e.child(nd, j, near))
	}

	if e.bestX == nil {
		return &Solution{Status: StatusInfeasible, Nodes: e.nodes}, nil
	}

	return e.solution(StatusOptimal), nil
}

// branchVar returns the free variable whose relaxed value is farthest from
// {0,1}, or -1 when every free variable is integral within tolerance.
func (e *engine) branchVar(fix []int8, x []float64) int {
	best, pick := e.tol, -1
	for j, f := range fix {
		if f != free {
			continue
		}
		d := math.Min(math.Abs(x[j]), math.Abs(x[j]-1))
		if d > best {
			best, pick = d, j
		}
	}

	return pick
}

// leastIntegral returns the free variable whose relaxed value is farthest
// from {0,1}, ignoring the tolerance, or -1 when nothing is free.
func (e *engine) leastIntegral(fix []int8, x []float64) int {
	best, pick := -1.0, -1
	for j, f := range fix {
		if f != free {
			continue
		}
		if d := math.Min(math.Abs(x[j]), math.Abs(x[j]-1)); d > best {
			best, pick = d, j
		}
	}

	return pick
}

// offer rounds an integral relaxation and keeps it if it improves the
// incumbent. It reports false when the rounding violates a row; the node
// must then be split rather than dropped.
func (e *engine) offer(x []float64, depth int) bool {
	vals := make([]float64, len(x))
	for j, v := range x {
		if v >= 0.5 {
			vals[j] = 1
		}
	}
	if viol, row := e.model.Violation(vals); viol > e.tol {
		klog.Warningf("mip: %s: rounded relaxation violates %q by %g at depth %d; branching",
			e.model.name, row, viol, depth)
		return false
	}
	obj := 0.0
	for j, v := range vals {
		obj += e.cost[j] * v
	}
	if obj < e.bestObj-e.tol {
		e.bestObj, e.bestX = obj, vals
		klog.V(3).Infof("mip: %s: incumbent %g at node %d depth %d", e.model.name, e.sensed(obj), e.nodes, depth)
	}

	return true
}

func firstFree(fix []int8) int {
	for j, f := range fix {
		if f == free {
			return j
		}
	}

	return -1
}

func (e *engine) child(parent node, j int, val int8) node {
	fix := make([]int8, len(parent.fix))
	copy(fix, parent.fix)
	fix[j] = val

	return node{fix: fix, depth: parent.depth + 1}
}

// sensed converts a minimization-form value back to the model's sense.
func (e *engine) sensed(v float64) float64 {
	if e.model.sense == Maximize {
		return -v
	}

	return v
}

func (e *engine) solution(st Status) *Solution {
	return &Solution{
		Status:    st,
		Objective: e.sensed(e.bestObj),
		Values:    e.bestX,
		Nodes:     e.nodes,
	}
}

// stopped reports an early stop, carrying the incumbent if one exists.
func (e *engine) stopped(st Status, cause error) *Solution {
	if cause != nil {
		klog.Errorf("mip: %s: %v", e.model.name, cause)
	}
	if e.bestX == nil {
		return &Solution{Status: st, Nodes: e.nodes}
	}

	return e.solution(st)
}
