// Package matrix: deterministic random generation for harnesses and
// benchmarks. Kept in the library (rather than test helpers) because the
// demonstration programs under examples/ need it too.

package matrix

import "math/rand"

// RandomDense returns an r×c Dense filled uniformly from [-1, 1).
// Passing a seeded rng makes the fill reproducible; rng must be non-nil.
// Random matrices of this form are invertible with probability 1, which is
// what timing harnesses for inversion want.
// Errors: ErrInvalidDimensions on non-positive dimensions.
// Complexity: O(r*c).
func RandomDense(rows, cols int, rng *rand.Rand) (*Dense, error) {
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range out.data {
		out.data[i] = 2*rng.Float64() - 1
	}

	return out, nil
}
