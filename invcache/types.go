// Package invcache defines the CacheableMatrix type: a matrix value paired
// with an optional cached inverse, guarded by a single RWMutex so that
// replacement and invalidation are one atomic step.
//
// This file declares CacheableMatrix, its four accessors, and the package
// sentinel error. The solving facade lives in solve.go; configuration in
// options.go.
//
// Errors:
//
//	ErrNilCacheable - a nil *CacheableMatrix was passed to a solver.
package invcache

import (
	"errors"
	"sync"

	"github.com/arkadven/matcache/matrix"
)

// ErrNilCacheable indicates that a nil *CacheableMatrix was passed to Solve.
var ErrNilCacheable = errors.New("invcache: nil CacheableMatrix")

// CacheableMatrix holds a matrix value and, when POPULATED, its inverse.
//
// The zero value is usable (nil value, empty cache), but New is the
// intended constructor. The cache field is nil exactly when the instance is
// in the EMPTY state: no inverse has been computed since the last
// replacement of the value.
//
// CacheableMatrix performs no validation of the matrices it stores — shape
// checking belongs to the solving kernels, and SetCachedInverse is a pure
// store that trusts its caller. Both fields are guarded by one mutex so the
// replace-and-invalidate step in SetMatrix is atomic.
type CacheableMatrix struct {
	mu      sync.RWMutex
	value   matrix.Matrix // the subject of inversion; may be nil (placeholder)
	inverse matrix.Matrix // nil ⇔ EMPTY; otherwise the inverse of value
}

// New creates a CacheableMatrix holding initial with an empty cache.
// A nil initial is a legal placeholder; the kernels reject it at solve time.
// Complexity: O(1) — the matrix is referenced, not copied.
func New(initial matrix.Matrix) *CacheableMatrix {
	return &CacheableMatrix{value: initial}
}

// Matrix returns the current value. Pure read, no side effect.
// The stored reference is handed out as-is; callers that need an isolated
// copy should Clone it.
// Complexity: O(1).
func (c *CacheableMatrix) Matrix() matrix.Matrix {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.value
}

// SetMatrix replaces the value with m and unconditionally clears the cached
// inverse, regardless of whether m equals the previous value (no
// deep-equality check — replacement is always treated as a potential
// change). Both writes happen under one lock.
// Complexity: O(1).
func (c *CacheableMatrix) SetMatrix(m matrix.Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = m
	c.inverse = nil // any replacement invalidates
}

// CachedInverse returns the cached inverse and whether one is present.
// The boolean is the EMPTY/POPULATED discriminator: (nil, false) in EMPTY,
// (inverse, true) in POPULATED. Pure read, no side effect.
// Complexity: O(1).
func (c *CacheableMatrix) CachedInverse() (matrix.Matrix, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.inverse == nil {
		return nil, false
	}

	return c.inverse, true
}

// SetCachedInverse stores inv as the cached inverse. The caller is
// responsible for inv actually being the inverse of the current value; no
// verification is performed (pure store). Storing nil returns the instance
// to the EMPTY state.
// Complexity: O(1).
func (c *CacheableMatrix) SetCachedInverse(inv matrix.Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inverse = inv
}
