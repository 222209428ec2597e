// SPDX-License-Identifier: MIT

// Package invcache: functional configuration for the Solver and for
// individual Solve calls. This file defines:
//   - SolverOption (construction-time: inversion routine, diagnostics),
//   - SolveOption (per-call: right-hand side, numeric policy),
//   - documented defaults and gather helpers.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on nonsensical parameters
//     (programmer error); user-triggered failures surface as errors.
//   - Per-call numeric options are forwarded verbatim to the matrix kernels.
package invcache

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/arkadven/matcache/matrix"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilInverter = "invcache: WithInverter: fn must be non-nil"
	panicNilLogger   = "invcache: WithLogger: logger must be non-nil"
	panicNilRHS      = "invcache: WithRHS: b must be non-nil"
)

// InvertFunc is the underlying dense-inversion routine a Solver delegates
// to on a cache miss. The default is matrix.Inverse; tests substitute
// counting stubs to observe recomputation.
type InvertFunc func(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error)

// ---------- Solver construction options ----------

// solverConfig carries the gathered Solver configuration.
type solverConfig struct {
	invert InvertFunc
	log    logrus.FieldLogger
}

// SolverOption configures a Solver at construction time.
type SolverOption func(*solverConfig)

// WithInverter substitutes the underlying inversion routine.
// Panics if fn is nil (programmer error).
func WithInverter(fn InvertFunc) SolverOption {
	if fn == nil {
		panic(panicNilInverter)
	}

	return func(c *solverConfig) {
		c.invert = fn
	}
}

// WithLogger injects a logger for the advisory cache hit/miss diagnostics.
// The diagnostics are emitted at Debug level; their wording is not part of
// the contract. Panics if logger is nil (programmer error).
func WithLogger(logger logrus.FieldLogger) SolverOption {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(c *solverConfig) {
		c.log = logger
	}
}

// discardLogger builds the default diagnostics sink: structured logging is
// wired but writes nowhere until a caller opts in via WithLogger.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// gatherSolverOptions folds opts over the defaults.
func gatherSolverOptions(opts ...SolverOption) solverConfig {
	c := solverConfig{invert: matrix.Inverse, log: discardLogger()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// ---------- Per-call solve options ----------

// solveConfig carries the gathered per-call configuration.
type solveConfig struct {
	rhs    matrix.Matrix   // nil ⇒ full inverse requested
	kernel []matrix.Option // forwarded verbatim to the kernel
}

// SolveOption configures a single Solve call.
type SolveOption func(*solveConfig)

// WithRHS requests the solution X of A·X = B instead of the full inverse.
// The result of an RHS solve is NOT stored in the inverse cache: the cache
// slot holds inverses only, so caching A⁻¹·B would make it stale by
// construction. A later plain Solve still computes and caches the true
// inverse. Panics if b is nil (programmer error); shape mismatches surface
// as matrix.ErrDimensionMismatch from the kernel.
func WithRHS(b matrix.Matrix) SolveOption {
	if b == nil {
		panic(panicNilRHS)
	}

	return func(c *solveConfig) {
		c.rhs = b
	}
}

// WithEpsilon forwards a pivot tolerance to the underlying kernel; see
// matrix.WithEpsilon for semantics and panics.
func WithEpsilon(eps float64) SolveOption {
	kernelOpt := matrix.WithEpsilon(eps) // validate eagerly, panic early

	return func(c *solveConfig) {
		c.kernel = append(c.kernel, kernelOpt)
	}
}

// gatherSolveOptions folds opts over the defaults.
func gatherSolveOptions(opts ...SolveOption) solveConfig {
	var c solveConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
