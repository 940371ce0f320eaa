// SPDX-License-Identifier: MIT
// Package: graphy/mip
//
// options.go: functional options for BranchAndBound.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Solve never panics; limits surface as *StatusError.

package mip

import "time"

// DefaultNodeLimit is the node budget of a solver built without WithNodeLimit.
const DefaultNodeLimit = 200000

// Deterministic defaults.
const (
	defaultTolerance = 1e-6
	defaultLogLevel  = 2
)

// Option configures a BranchAndBound solver.
type Option func(*BranchAndBound)

// WithNodeLimit caps the number of explored nodes. Panics if n <= 0.
func WithNodeLimit(n int) Option {
	if n <= 0 {
		panic("mip: WithNodeLimit(n<=0)")
	}
	return func(s *BranchAndBound) { s.nodeLimit = n }
}

// WithTimeLimit caps wall-clock time per Solve; 0 disables the limit.
// Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("mip: WithTimeLimit(d<0)")
	}
	return func(s *BranchAndBound) { s.timeLimit = d }
}

// WithTolerance sets the integrality and pruning tolerance.
// Panics unless 0 < tol < 0.5.
func WithTolerance(tol float64) Option {
	if !(tol > 0 && tol < 0.5) {
		panic("mip: WithTolerance outside (0, 0.5)")
	}
	return func(s *BranchAndBound) { s.tol = tol }
}

// WithLogLevel sets the klog verbosity at which progress is logged.
func WithLogLevel(level int32) Option {
	return func(s *BranchAndBound) { s.logLevel = level }
}

// WithMetrics records every Solve into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("mip: WithMetrics(nil)")
	}
	return func(s *BranchAndBound) { s.metrics = m }
}
