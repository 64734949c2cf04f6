// SPDX-License-Identifier: MIT

// Package netgen generates random capacity networks for demos, tests, and
// benchmarks.
//
// The model is Erdős–Rényi over ordered node pairs: every directed edge
// (i, j), i ≠ j, is included independently with probability p and receives
// an integer capacity drawn uniformly from [1, maxCap]. Self-loops are
// never generated (they can carry no source→sink flow).
//
// # Determinism
//
// Trials run in a fixed order — i ascending, then j ascending — and the
// caller injects the *rand.Rand, so a fixed seed always produces the same
// network. The degenerate probabilities p == 0 and p == 1 need no
// randomness for edge selection, but an RNG is still required whenever a
// capacity must be drawn.
//
// # Errors
//
//	ErrTooFewNodes        — n < matrix.MinNodes.
//	ErrInvalidProbability — p outside [0, 1].
//	ErrBadCapacity        — maxCap < 1.
//	ErrNilRand            — rng is nil but random draws are required.
//
// Sentinels only; netgen never panics at runtime.
package netgen
