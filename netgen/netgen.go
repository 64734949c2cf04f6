// SPDX-License-Identifier: MIT
// Package netgen: Erdős–Rényi capacity network sampler.

package netgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/YohanAvishke/Algorithms-coursework-sub001/matrix"
)

// Sentinel errors returned by Random. Match with errors.Is.
var (
	// ErrTooFewNodes indicates n < matrix.MinNodes.
	ErrTooFewNodes = errors.New("netgen: too few nodes")

	// ErrInvalidProbability indicates p outside the closed interval [0, 1].
	ErrInvalidProbability = errors.New("netgen: edge probability not in [0,1]")

	// ErrBadCapacity indicates maxCap < 1; every generated edge must be able
	// to carry at least one unit.
	ErrBadCapacity = errors.New("netgen: maximum capacity must be at least 1")

	// ErrNilRand indicates a nil RNG where random draws are required.
	ErrNilRand = errors.New("netgen: random source is required")
)

// Probability domain bounds.
const (
	probMin = 0.0
	probMax = 1.0
)

// Random samples an n-node directed capacity network: each ordered pair
// (i, j) with i ≠ j receives an edge with probability p, capacity uniform
// in [1, maxCap].
//
// Deterministic for a fixed seed: trials run with i ascending, j ascending.
// The rng may be nil only when p == 0, or when p == 1 and maxCap == 1
// (no random draws happen in either case).
func Random(n int, p float64, maxCap int64, rng *rand.Rand) (*matrix.Matrix, error) {
	// 1) Validate parameters early; no side effects on invalid input.
	if n < matrix.MinNodes {
		return nil, fmt.Errorf("n=%d < min=%d: %w", n, matrix.MinNodes, ErrTooFewNodes)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}
	if maxCap < 1 {
		return nil, fmt.Errorf("maxCap=%d: %w", maxCap, ErrBadCapacity)
	}
	needsDraws := p > probMin && (p < probMax || maxCap > 1)
	if rng == nil && needsDraws {
		return nil, fmt.Errorf("p=%.6f maxCap=%d: %w", p, maxCap, ErrNilRand)
	}

	m, err := matrix.New(n)
	if err != nil {
		return nil, err
	}
	if p == probMin {
		// empty network; nothing to sample
		return m, nil
	}

	// 2) Bernoulli trial per ordered pair, stable i-asc / j-asc order.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if p < probMax && rng.Float64() >= p {
				continue
			}
			c := int64(1)
			if maxCap > 1 {
				c = 1 + rng.Int63n(maxCap)
			}
			if err = m.Set(i, j, c); err != nil {
				return nil, fmt.Errorf("set (%d,%d)=%d: %w", i, j, c, err)
			}
		}
	}

	return m, nil
}
