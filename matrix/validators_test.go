// Package matrix_test contains unit tests for the central validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/arkadven/matcache/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil confirms nil matrices are rejected with ErrNilMatrix.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix) // nil must fail

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m)) // non-nil must pass
}

// TestValidateSquare confirms rectangular matrices are rejected with ErrNonSquare.
func TestValidateSquare(t *testing.T) {
	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq)) // square passes

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare) // 2x3 fails
}

// TestValidateSameShape covers both row and column mismatches.
func TestValidateSameShape(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSameShape(a, b)) // identical shapes pass

	c, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSameShape(a, c), matrix.ErrDimensionMismatch) // row mismatch

	d, err := matrix.NewDense(2, 4)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSameShape(a, d), matrix.ErrDimensionMismatch) // column mismatch
}

// TestValidateRHS checks right-hand-side conformability (b.Rows == a.Rows).
func TestValidateRHS(t *testing.T) {
	a, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	b, err := matrix.NewDense(3, 1) // column vector, conformable
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateRHS(a, b))

	bad, err := matrix.NewDense(2, 1) // wrong row count
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateRHS(a, bad), matrix.ErrDimensionMismatch)
}

// TestValidateFinite rejects NaN and both infinities.
func TestValidateFinite(t *testing.T) {
	require.NoError(t, matrix.ValidateFinite(0))                               // zero is finite
	require.NoError(t, matrix.ValidateFinite(-12.5))                           // negative finite
	require.ErrorIs(t, matrix.ValidateFinite(math.NaN()), matrix.ErrNaNInf)    // NaN fails
	require.ErrorIs(t, matrix.ValidateFinite(math.Inf(1)), matrix.ErrNaNInf)   // +Inf fails
	require.ErrorIs(t, matrix.ValidateFinite(math.Inf(-1)), matrix.ErrNaNInf)  // -Inf fails
}
