// Package testutil provides testing utilities for xvec.
//
// This package is intended for use in tests and benchmarks only.
//
// # Instrumented Elements
//
// Tracker hands out Tracked values and records every construction, copy,
// move, and destruction. It can inject a failure into the k-th copy or move,
// which is how the strong error-safety guarantees are exercised:
//
//	tr := testutil.NewTracker()
//	v, _ := xvec.New[testutil.Tracked]() // Clone/Destroy are discovered
//	_ = v.Adopt(tr.New(1))
//	tr.FailCopyAt(3)                     // third copy from now fails
//	...
//	v.Free()
//	assert.Zero(t, tr.Live())            // nothing leaked
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.Intn(100)
package testutil
