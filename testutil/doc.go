// Package testutil provides testing utilities for seedselect.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random candidate pools, computing the
// exact closest-n selection with a full sort, and comparing selections.
//
// # Random Pools
//
//	rng := testutil.NewRNG(seed)
//	ids := rng.IDs(1000, 32)
//	perm := rng.Shuffled(ids)
//
// # Exact Selection (Ground Truth)
//
//	want, err := testutil.ExactSelection(ref, ids, n, digest.Sum256)
package testutil
