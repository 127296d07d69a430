// Package testutil provides testing utilities for nvec.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible component slices for property-style checks.
//
// # Random Components
//
//	rng := testutil.NewRNG(seed)
//	cs := rng.UniformComponents(8)     // uniform [-1, 1)
//	gs := rng.GaussianComponents(8)    // standard normal
//	ss := rng.SpecialComponents(8)     // mixes in ±0, ±Inf, NaN and extremes
package testutil
