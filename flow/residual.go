package flow

import (
	"fmt"
	"math"

	"github.com/YohanAvishke/Algorithms-coursework-sub001/matrix"
)

// applyPath pushes the path's bottleneck flow through the residual matrix:
// bottleneck = min residual over the path's edges, then every edge (u,v)
// loses bottleneck forward and gains it on the reverse entry (v,u).
// Returns the bottleneck.
//
// Precondition: every path edge has positive residual capacity, and the
// path is non-empty. The driver only ever passes paths freshly discovered
// by bfsParents, so a violation is a programming error — it panics rather
// than returning an error.
func applyPath(res *matrix.Matrix, path []Edge) int64 {
	if len(path) == 0 {
		panic("flow: applyPath called with empty path")
	}

	bottleneck := int64(math.MaxInt64)
	for _, e := range path {
		capUV := res.Row(e.From)[e.To]
		if capUV <= 0 {
			panic(fmt.Sprintf("flow: applyPath: non-positive residual %d on edge %d→%d", capUV, e.From, e.To))
		}
		if capUV < bottleneck {
			bottleneck = capUV
		}
	}

	for _, e := range path {
		res.Row(e.From)[e.To] -= bottleneck
		res.Row(e.To)[e.From] += bottleneck
	}

	return bottleneck
}

// Replay re-applies a recorded augmenting-path list, in order, to a fresh
// clone of the capacity matrix and returns the resulting residual matrix.
//
// Replaying the Paths of a Result obtained from the same capacity matrix
// reproduces Result.Residual exactly. Replay also verifies the records as
// it goes: each path's recorded Bottleneck must equal the minimum residual
// capacity along its edges at that step, every edge index must be in range,
// and every bottleneck must be positive. Any disagreement yields
// ErrReplayMismatch and no matrix.
func Replay(capacity *matrix.Matrix, paths []AugmentingPath) (*matrix.Matrix, error) {
	if capacity == nil || capacity.N() < matrix.MinNodes {
		return nil, ErrNilMatrix
	}

	res := capacity.Clone()
	n := res.N()
	for step, p := range paths {
		if len(p.Edges) == 0 {
			return nil, fmt.Errorf("step %d: empty path: %w", step+1, ErrReplayMismatch)
		}
		if p.Bottleneck <= 0 {
			return nil, fmt.Errorf("step %d: bottleneck %d: %w", step+1, p.Bottleneck, ErrReplayMismatch)
		}

		minCap := int64(math.MaxInt64)
		for _, e := range p.Edges {
			if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
				return nil, fmt.Errorf("step %d: edge %d→%d outside [0,%d): %w",
					step+1, e.From, e.To, n, ErrReplayMismatch)
			}
			if capUV := res.Row(e.From)[e.To]; capUV < minCap {
				minCap = capUV
			}
		}
		if minCap != p.Bottleneck {
			return nil, fmt.Errorf("step %d: recorded bottleneck %d, residual minimum %d: %w",
				step+1, p.Bottleneck, minCap, ErrReplayMismatch)
		}

		for _, e := range p.Edges {
			res.Row(e.From)[e.To] -= p.Bottleneck
			res.Row(e.To)[e.From] += p.Bottleneck
		}
	}

	return res, nil
}
