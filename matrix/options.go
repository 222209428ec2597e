// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy used by the
// LU/Inverse/Solve kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the pivot tolerance for LU/Inverse/Solve: a pivot p
	// with |p| <= epsilon is treated as zero and reported as ErrSingular.
	// Zero means exact-zero detection, the deterministic baseline.
	DefaultEpsilon = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options carries the gathered numeric policy. Fields stay unexported so the
// only way to build one is through gatherOptions and the WithX constructors.
type Options struct {
	epsilon float64 // pivot tolerance, >= 0, finite
}

// Epsilon exposes the gathered pivot tolerance to kernels.
// Complexity: O(1).
func (o Options) Epsilon() float64 {
	return o.epsilon
}

// WithEpsilon sets the pivot tolerance used by LU/Inverse/Solve.
// A pivot whose magnitude is <= eps is treated as zero (ErrSingular).
// Panics if eps is NaN, ±Inf, or negative (programmer error).
func WithEpsilon(eps float64) Option {
	// Reject nonsensical tolerances eagerly: a silent fallback here would
	// change which matrices count as singular.
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.epsilon = eps
	}
}

// gatherOptions folds opts over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
