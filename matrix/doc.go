// Package matrix offers dense float64 matrices and the linear-algebra
// kernels that the rest of the module builds on.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows/Cols/At/Set/Clone) with bounds
//     checking and explicit errors instead of panics.
//   - Dense, a row-major flat-slice implementation tuned for cache
//     friendliness, plus ingestion from 2-D slices and deterministic
//     random fills for harnesses.
//   - Element-wise Add/Sub, Mul, and Identity helpers.
//   - Doolittle LU factorization, Inverse, and Solve (A·X = B) with a
//     configurable pivot tolerance via WithEpsilon.
//
// All kernels validate fail-fast, return package sentinel errors matched
// with errors.Is, and never pivot: fixed loop orders trade numerical
// stability for bit-for-bit reproducibility.
//
// See the examples in this package and invcache for usage patterns.
package matrix
