// SPDX-License-Identifier: MIT
// Package invcache: the cached solving facade. Solve answers from the cache
// when it can, computes and populates on a miss, and never caches a failure.

package invcache

import (
	"github.com/sirupsen/logrus"

	"github.com/arkadven/matcache/matrix"
)

// Solver resolves inversion requests against a CacheableMatrix. It holds the
// underlying inversion routine (matrix.Inverse unless substituted) and an
// advisory diagnostics logger. The zero value is not usable; construct with
// NewSolver.
//
// A Solver is stateless between calls and safe for concurrent use; all
// per-matrix state lives in the CacheableMatrix.
type Solver struct {
	invert InvertFunc
	log    logrus.FieldLogger
}

// NewSolver builds a Solver from the given options. Defaults: the
// matrix.Inverse kernel and discarded diagnostics.
func NewSolver(opts ...SolverOption) *Solver {
	cfg := gatherSolverOptions(opts...)

	return &Solver{invert: cfg.invert, log: cfg.log}
}

// Solve returns the inverse of cm's current value.
//
// Plain form (no WithRHS):
//   - Cache hit: the stored inverse is returned unchanged — the identical
//     instance, no recomputation — and a "cache hit" diagnostic is emitted.
//   - Cache miss: the value is read, the underlying routine is invoked with
//     the forwarded kernel options, the result is stored in the cache, and
//     a "cache miss" diagnostic is emitted. The whole read/compute/store
//     sequence runs under one critical section, so an interleaved SetMatrix
//     cannot leave an inverse cached for a matrix that was already replaced.
//   - Failure: the kernel error (matrix.ErrSingular, matrix.ErrNonSquare,
//     matrix.ErrNilMatrix, ...) is returned unmodified and the cache stays
//     EMPTY, so a retry after a corrective SetMatrix can succeed.
//
// With WithRHS(b), the call solves A·X = B via matrix.Solve instead; the
// inverse cache is neither consulted nor populated on that path.
//
// Errors: ErrNilCacheable for a nil cm; everything else propagates from the
// matrix kernels.
// Complexity: O(1) on a hit; the kernel's O(n³) on a miss.
func (s *Solver) Solve(cm *CacheableMatrix, opts ...SolveOption) (matrix.Matrix, error) {
	// Validate the cache object itself; its contents are the kernels' job.
	if cm == nil {
		return nil, ErrNilCacheable
	}

	cfg := gatherSolveOptions(opts...)

	// Linear-system path: compute A⁻¹·B directly, leave the cache alone.
	if cfg.rhs != nil {
		cm.mu.RLock()
		value := cm.value
		cm.mu.RUnlock()

		return matrix.Solve(value, cfg.rhs, cfg.kernel...)
	}

	// Full-inverse path: one critical section around read/compute/store.
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.inverse != nil {
		s.log.WithFields(dimsFields(cm.value)).Debug("inverse cache hit")

		return cm.inverse, nil
	}

	inv, err := s.invert(cm.value, cfg.kernel...)
	if err != nil {
		// Failed computations never populate the cache.
		return nil, err
	}
	cm.inverse = inv
	s.log.WithFields(dimsFields(cm.value)).Debug("inverse cache miss, computed")

	return inv, nil
}

// dimsFields renders the value's dimensions for diagnostics; a nil
// placeholder logs as 0×0.
func dimsFields(m matrix.Matrix) logrus.Fields {
	if m == nil {
		return logrus.Fields{"rows": 0, "cols": 0}
	}

	return logrus.Fields{"rows": m.Rows(), "cols": m.Cols()}
}

// defaultSolver backs the package-level convenience facade.
var defaultSolver = NewSolver()

// Solve resolves cm with the default Solver (matrix.Inverse kernel,
// discarded diagnostics). See (*Solver).Solve for the full contract.
func Solve(cm *CacheableMatrix, opts ...SolveOption) (matrix.Matrix, error) {
	return defaultSolver.Solve(cm, opts...)
}
