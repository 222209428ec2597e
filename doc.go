// Package matcache is a small memoization layer over dense matrix inversion:
// compute an inverse once, keep it while the underlying matrix is unchanged,
// and recompute only after a replacement.
//
// 🚀 What is matcache?
//
//	A compact, thread-safe library built from two pieces:
//		• matrix/   — dense float64 matrices with LU-based inversion & solving
//		• invcache/ — CacheableMatrix (value + optional cached inverse) and a
//		  Solver that answers from cache on a hit and computes on a miss
//
// ✨ Why choose matcache?
//
//   - Minimal API – four accessors on the cache object, one Solve facade
//   - Rock-solid guarantees – the cached inverse is never stale: any matrix
//     replacement clears it atomically under one lock
//   - Pure Go numeric kernel – deterministic Doolittle LU, no cgo
//   - Observable – optional hit/miss diagnostics via an injected logger,
//     and an injectable inversion routine for instrumentation in tests
//
// Quick sketch:
//
//	cm := invcache.New(m)          // EMPTY: no inverse cached yet
//	inv, _ := invcache.Solve(cm)   // miss: computes, caches, returns
//	inv, _ = invcache.Solve(cm)    // hit: returns the cached instance
//	cm.SetMatrix(m2)               // replacement invalidates the cache
//
// See examples/ for a timing comparison of a cold solve versus a cache hit,
// and package invcache for the full contract.
//
//	go get github.com/arkadven/matcache
package matcache
