// Package invcache memoizes dense matrix inversion: a CacheableMatrix pairs
// a matrix with an optional cached inverse, and a Solver answers inversion
// requests from the cache when it can.
//
// 🚀 What is invcache?
//
//	Inverting an n×n matrix costs O(n³). When the same matrix is inverted
//	repeatedly, that cost is pure waste. invcache wraps the matrix in a
//	small state machine:
//
//	  EMPTY ──successful Solve──▶ POPULATED
//	  POPULATED ──SetMatrix──▶ EMPTY
//
//	EMPTY means no inverse has been computed since the last replacement of
//	the value; POPULATED means the cached inverse is exactly the inverse of
//	the current value. There is no other transition and no terminal state.
//
// ✨ Guarantees:
//
//   - The cached inverse is never stale: SetMatrix unconditionally clears it
//     under the same lock that replaces the value (no equality check —
//     replacement always counts as a potential change).
//   - A failed inversion never populates the cache, so a later retry after
//     a corrective SetMatrix can succeed.
//   - Exactly one cache population per distinct value between replacements;
//     repeated Solve calls on a POPULATED instance return the identical
//     stored result without recomputation.
//   - The read-value / compute / store sequence runs in one critical
//     section, so a concurrent SetMatrix cannot strand an inverse computed
//     for an already-replaced matrix.
//
// ⚙️ Usage:
//
//	cm := invcache.New(m)
//	inv, err := invcache.Solve(cm)          // miss: computes and caches
//	inv, err = invcache.Solve(cm)           // hit: cached instance
//	x, err := invcache.Solve(cm,
//	    invcache.WithRHS(b))                // A·X = B, cache untouched
//	cm.SetMatrix(m2)                        // invalidates
//
// Cache hit/miss diagnostics are advisory: inject a logrus logger with
// NewSolver(WithLogger(...)) to observe them; by default they are discarded.
// Tests can replace the underlying routine via WithInverter to count
// invocations.
//
// Errors from the underlying kernels (matrix.ErrSingular, matrix.ErrNonSquare,
// matrix.ErrDimensionMismatch, ...) propagate unmodified; this package adds
// only ErrNilCacheable for a nil cache object.
package invcache
