// Package invcache_test contains unit tests for the cached solving facade:
// cache correctness, hit idempotence, invalidation, error propagation, and
// the advisory diagnostics.
package invcache_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/arkadven/matcache/invcache"
	"github.com/arkadven/matcache/matrix"
)

const solveTol = 1e-9 // floating-point tolerance for inverse comparisons

// requireEqualApprox asserts element-wise equality within tol.
func requireEqualApprox(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.EqualApprox(want, got, tol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// countingInverter wraps matrix.Inverse and counts invocations, the
// instrumentation hook the cache contract is verified through.
func countingInverter(count *int) invcache.InvertFunc {
	return func(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error) {
		*count++

		return matrix.Inverse(m, opts...)
	}
}

// TestSolveMatchesDirectInverse: a cached solve of M equals matrix.Inverse(M).
func TestSolveMatchesDirectInverse(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{4, 7},
		{2, 6},
	})

	direct, err := matrix.Inverse(m)
	require.NoError(t, err)

	cached, err := invcache.Solve(invcache.New(m))
	require.NoError(t, err)
	requireEqualApprox(t, direct, cached, solveTol)
}

// TestSolveHitReturnsSameInstanceWithoutRecompute: two consecutive solves
// return the identical instance and invoke the inversion routine once.
func TestSolveHitReturnsSameInstanceWithoutRecompute(t *testing.T) {
	var count int
	solver := invcache.NewSolver(invcache.WithInverter(countingInverter(&count)))
	cm := invcache.New(mustFromRows(t, [][]float64{{2, 0}, {0, 2}}))

	first, err := solver.Solve(cm) // miss: computes
	require.NoError(t, err)
	second, err := solver.Solve(cm) // hit: cached
	require.NoError(t, err)

	require.Same(t, first, second) // bit-identical: the very same instance
	require.Equal(t, 1, count)     // exactly one computation
}

// TestSetMatrixInvalidatesCache: after replacement the cache reads absent
// and the next solve recomputes.
func TestSetMatrixInvalidatesCache(t *testing.T) {
	var count int
	solver := invcache.NewSolver(invcache.WithInverter(countingInverter(&count)))
	cm := invcache.New(mustFromRows(t, [][]float64{{2, 0}, {0, 2}}))

	_, err := solver.Solve(cm)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	cm.SetMatrix(mustFromRows(t, [][]float64{{4, 0}, {0, 4}}))

	_, ok := cm.CachedInverse()
	require.False(t, ok) // invalidated

	_, err = solver.Solve(cm)
	require.NoError(t, err)
	require.Equal(t, 2, count) // recomputed for the new value
}

// TestReplacementChangesResult: distinct matrices with distinct inverses
// yield distinct solve results (asserted, not just logged — the fixtures are
// chosen so their inverses provably differ).
func TestReplacementChangesResult(t *testing.T) {
	cm := invcache.New(mustFromRows(t, [][]float64{{2, 0}, {0, 2}}))

	invM1, err := invcache.Solve(cm)
	require.NoError(t, err)

	cm.SetMatrix(mustFromRows(t, [][]float64{{1, 0}, {0, 1}}))
	invM2, err := invcache.Solve(cm)
	require.NoError(t, err)

	same, err := matrix.EqualApprox(invM1, invM2, solveTol)
	require.NoError(t, err)
	require.False(t, same) // diag(0.5) vs identity
}

// TestSingularSolveLeavesCacheEmpty: a singular matrix surfaces ErrSingular
// and must not pollute the cache.
func TestSingularSolveLeavesCacheEmpty(t *testing.T) {
	s := mustFromRows(t, [][]float64{
		{1, 2},
		{2, 4}, // rank 1: no inverse exists
	})
	cm := invcache.New(s)

	_, err := invcache.Solve(cm)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, ok := cm.CachedInverse()
	require.False(t, ok) // still EMPTY, a corrected SetMatrix can retry
}

// TestNonSquareSolvePropagates: shape errors pass through unmodified and
// leave the cache untouched.
func TestNonSquareSolvePropagates(t *testing.T) {
	cm := invcache.New(mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))

	_, err := invcache.Solve(cm)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, ok := cm.CachedInverse()
	require.False(t, ok)
}

// TestNilPlaceholderSolvePropagates: solving a nil placeholder surfaces the
// kernel's ErrNilMatrix.
func TestNilPlaceholderSolvePropagates(t *testing.T) {
	_, err := invcache.Solve(invcache.New(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSolveNilCacheable rejects a nil cache object.
func TestSolveNilCacheable(t *testing.T) {
	_, err := invcache.Solve(nil)
	require.ErrorIs(t, err, invcache.ErrNilCacheable)
}

// TestRetryAfterCorrection: a failed solve followed by a corrective
// SetMatrix succeeds and populates.
func TestRetryAfterCorrection(t *testing.T) {
	cm := invcache.New(mustFromRows(t, [][]float64{{1, 2}, {2, 4}})) // singular

	_, err := invcache.Solve(cm)
	require.ErrorIs(t, err, matrix.ErrSingular)

	cm.SetMatrix(mustFromRows(t, [][]float64{{1, 2}, {2, 5}})) // now invertible
	inv, err := invcache.Solve(cm)
	require.NoError(t, err)

	got, ok := cm.CachedInverse()
	require.True(t, ok)
	require.Same(t, inv, got)
}

// TestSolveWithRHS solves A·X = B through the facade and verifies that the
// inverse cache is neither populated nor consulted on that path.
func TestSolveWithRHS(t *testing.T) {
	var count int
	solver := invcache.NewSolver(invcache.WithInverter(countingInverter(&count)))
	a := mustFromRows(t, [][]float64{
		{4, 0},
		{1, 2},
	})
	b := mustFromRows(t, [][]float64{{8}, {8}})
	cm := invcache.New(a)

	x, err := solver.Solve(cm, invcache.WithRHS(b))
	require.NoError(t, err)
	requireEqualApprox(t, mustFromRows(t, [][]float64{{2}, {3}}), x, solveTol)

	require.Equal(t, 0, count) // inversion routine never invoked
	_, ok := cm.CachedInverse()
	require.False(t, ok) // cache untouched by the RHS path
}

// TestSolveWithRHSMismatch propagates the kernel's dimension error.
func TestSolveWithRHSMismatch(t *testing.T) {
	cm := invcache.New(mustFromRows(t, [][]float64{{1, 0}, {0, 1}}))
	bad := mustFromRows(t, [][]float64{{1}, {2}, {3}})

	_, err := invcache.Solve(cm, invcache.WithRHS(bad))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSolveForwardsEpsilon shows per-call numeric options reach the kernel:
// a tiny pivot inverts by default but is singular under a larger tolerance.
func TestSolveForwardsEpsilon(t *testing.T) {
	tiny := mustFromRows(t, [][]float64{
		{1e-12, 0},
		{0, 1},
	})

	_, err := invcache.Solve(invcache.New(tiny))
	require.NoError(t, err) // default exact-zero policy accepts the pivot

	_, err = invcache.Solve(invcache.New(tiny), invcache.WithEpsilon(1e-9))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestDiagnosticsEmitted asserts presence of the hit/miss diagnostics via a
// logrus test hook — one entry per solve — without depending on wording.
func TestDiagnosticsEmitted(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	solver := invcache.NewSolver(invcache.WithLogger(logger))
	cm := invcache.New(mustFromRows(t, [][]float64{{2, 0}, {0, 2}}))

	_, err := solver.Solve(cm) // miss
	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)

	_, err = solver.Solve(cm) // hit
	require.NoError(t, err)
	require.Len(t, hook.Entries, 2)
}

// TestScenarioDiagonalTwo walks the concrete end-to-end scenario:
// diag(2) → diag(0.5), hit returns the same instance, replacement with the
// identity recomputes, invocation count lands at 2.
func TestScenarioDiagonalTwo(t *testing.T) {
	var count int
	solver := invcache.NewSolver(invcache.WithInverter(countingInverter(&count)))
	cm := invcache.New(mustFromRows(t, [][]float64{{2, 0}, {0, 2}}))

	inv, err := solver.Solve(cm)
	require.NoError(t, err)
	requireEqualApprox(t, mustFromRows(t, [][]float64{{0.5, 0}, {0, 0.5}}), inv, solveTol)

	again, err := solver.Solve(cm)
	require.NoError(t, err)
	require.Same(t, inv, again) // same array instance, no recomputation
	require.Equal(t, 1, count)

	cm.SetMatrix(mustFromRows(t, [][]float64{{1, 0}, {0, 1}}))
	inv2, err := solver.Solve(cm)
	require.NoError(t, err)
	requireEqualApprox(t, mustFromRows(t, [][]float64{{1, 0}, {0, 1}}), inv2, solveTol)
	require.Equal(t, 2, count) // exactly two computations in total
}
