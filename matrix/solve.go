// SPDX-License-Identifier: MIT
// Package matrix: LU-based kernels — factorization, inversion, and linear
// system solving. These are the "expensive" routines the invcache layer
// memoizes.
//
// Purpose:
//   - LU: Doolittle factorization A = L·U, unit diagonal on L, no pivoting.
//   - Inverse: A⁻¹ via LU + n triangular solves against basis columns.
//   - Solve: X with A·X = B via one LU + triangular solves per RHS column.
//
// Notes:
//   - No pivoting by design: fixed traversal orders give bit-for-bit
//     reproducible results for identical inputs. Stability-sensitive callers
//     should precondition upstream.
//   - Kernels operate on a Dense snapshot; generic Matrix inputs are copied
//     once (O(n²)) before the O(n³) work, so fallback indexing never sits in
//     the hot loops.
//   - Singularity is decided by the pivot tolerance from WithEpsilon:
//     |pivot| <= eps ⇒ ErrSingular.

package matrix

import "math"

// ZeroSum is the initial accumulator value for forward/backward substitution.
const ZeroSum = 0.0

// denseSnapshot returns m as *Dense, copying through the interface when m is
// some other implementation. The snapshot is never aliased to the input.
// Complexity: O(1) for *Dense (clone is O(n²)), O(n²) otherwise.
func denseSnapshot(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// luFactor performs the Doolittle factorization of a into fresh L and U.
// Assumes a is a non-nil square *Dense snapshot (callers validate).
// Returns ErrSingular when a pivot falls within eps of zero.
// Complexity: Time O(n³), Space O(n²).
func luFactor(a *Dense, eps float64) (l, u *Dense, err error) {
	n := a.r
	if l, err = NewDense(n, n); err != nil {
		return nil, nil, err
	}
	if u, err = NewDense(n, n); err != nil {
		return nil, nil, err
	}

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		// Row i of U: U[i][j] = A[i][j] - Σ_{k<i} L[i][k]·U[k][j]
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = a.data[i*n+j] - sum
		}

		// Pivot guard: a zero (within eps) diagonal of U means no unique LU.
		if math.Abs(u.data[i*n+i]) <= eps {
			return nil, nil, ErrSingular
		}

		// Unit diagonal on L, then column i below the diagonal.
		l.data[i*n+i] = 1
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (a.data[j*n+i] - sum) / u.data[i*n+i]
		}
	}

	return l, u, nil
}

// solveColumns solves A·X = B given the factors L, U of A, one RHS column at
// a time: forward L·y = b_col (top-down), then backward U·x = y (bottom-up).
// Pivots were already guarded during factorization.
// Complexity: Time O(n²) per column, Space O(n) workspace.
func solveColumns(l, u, b *Dense) (*Dense, error) {
	n, cols := l.r, b.c
	out, err := NewDense(n, cols)
	if err != nil {
		return nil, err
	}

	var col, i, k int
	var sum float64
	y := make([]float64, n) // forward substitution workspace
	x := make([]float64, n) // backward substitution workspace
	for col = 0; col < cols; col++ {
		// Forward substitution: L·y = b_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * y[k]
			}
			y[i] = b.data[i*cols+col] - sum
		}
		// Backward substitution: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += u.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / u.data[i*n+i]
		}
		// Write x into column col of the result
		for i = 0; i < n; i++ {
			out.data[i*cols+col] = x[i]
		}
	}

	return out, nil
}

// LU computes the Doolittle factorization A = L·U with unit diagonal on L
// (no pivoting). Produces fresh Dense factors; does not mutate the input.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//   - opts: numeric policy, see WithEpsilon.
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (pivot within eps of zero).
//
// Complexity: Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	o := gatherOptions(opts...)
	a, err := denseSnapshot(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	l, u, err := luFactor(a, o.Epsilon())
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return l, u, nil
}

// Inverse computes A⁻¹ via Doolittle LU factorization (deterministic, no
// pivoting). The input must be non-nil and square. Produces a fresh Dense;
// does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateSquare(m), snapshot, factorize.
//   - Stage 2: Solve L·U·X = I column by column via triangular solves.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//   - opts: numeric policy, see WithEpsilon.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	o := gatherOptions(opts...)
	a, err := denseSnapshot(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// LU decomposition (Doolittle)
	l, u, err := luFactor(a, o.Epsilon())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// A⁻¹ is the solution of A·X = I.
	eye, err := Identity(a.r)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := solveColumns(l, u, eye.(*Dense))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// Solve computes X such that A·X = B, factorizing A once and running
// triangular solves per RHS column. Cheaper than forming A⁻¹ when only
// A⁻¹·B is needed. Neither input is mutated.
//
// Inputs:
//   - a: non-nil square coefficient matrix (n×n).
//   - b: non-nil right-hand side (n×k); a column vector is the k=1 case.
//   - opts: numeric policy, see WithEpsilon.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (a), ErrDimensionMismatch (b rows != n),
//     ErrSingular.
//
// Complexity: Time O(n³ + n²k), Space O(n²).
func Solve(a, b Matrix, opts ...Option) (Matrix, error) {
	// Validate coefficient matrix and RHS conformability
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateRHS(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	o := gatherOptions(opts...)
	as, err := denseSnapshot(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	bs, err := denseSnapshot(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	l, u, err := luFactor(as, o.Epsilon())
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := solveColumns(l, u, bs)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}
