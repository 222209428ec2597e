// SPDX-License-Identifier: MIT
// Package matrix: element-wise and multiplicative kernels usable with any
// Matrix implementation. All functions perform strict fail-fast validation,
// return fresh Dense results, and never mutate their operands.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opIdentity = "Identity"
	opLU       = "LU"
	opInverse  = "Inverse"
	opSolve    = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes C = A + sign*B into a fresh Dense.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateNotNil(a,b), ValidateSameShape(a,b), allocate result.
//   - Stage 2: If both operands are *Dense, walk flat storage directly.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate operands
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result container
	out, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast-path: both operands are *Dense
	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	if okA && okB {
		for i := range ad.data {
			out.data[i] = ad.data[i] + sign*bd.data[i]
		}

		return out, nil
	}

	// Fallback: generic interface version with fixed traversal order
	var va, vb float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if va, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if vb, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*out.c+j] = va + sign*vb
		}
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateNotNil(a,b); require a.Cols == b.Rows; allocate result.
//   - Stage 2: Fixed i→k→j loop order; Dense fast-path walks flat storage.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(n*m*p), Space O(n*p).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate operands
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	n, inner, p := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(n, p)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast-path: both operands are *Dense
	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	if okA && okB {
		var aik float64
		for i := 0; i < n; i++ {
			for k := 0; k < inner; k++ {
				aik = ad.data[i*inner+k]
				if aik == 0 {
					continue // skip zero contributions
				}
				for j := 0; j < p; j++ {
					out.data[i*p+j] += aik * bd.data[k*p+j]
				}
			}
		}

		return out, nil
	}

	// Fallback: generic interface version
	var va, vb float64
	for i := 0; i < n; i++ {
		for k := 0; k < inner; k++ {
			if va, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
			}
			if va == 0 {
				continue
			}
			for j := 0; j < p; j++ {
				if vb, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				out.data[i*p+j] += va * vb
			}
		}
	}

	return out, nil
}

// Identity returns the n×n identity matrix as a fresh Dense.
// Errors: ErrInvalidDimensions if n <= 0.
// Complexity: O(n²) allocation, O(n) writes.
func Identity(n int) (Matrix, error) {
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		out.data[i*n+i] = 1
	}

	return out, nil
}
