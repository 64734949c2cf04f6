package flow

import (
	"fmt"

	"github.com/YohanAvishke/Algorithms-coursework-sub001/matrix"
)

// EdmondsKarp computes the maximum flow from source to sink over the given
// capacity matrix and returns the flow value, the ordered list of
// augmenting paths used, and the final residual matrix.
//
// The capacity matrix is never mutated; the engine works on a private
// clone, returned as Result.Residual.
//
// Steps:
//  1. Validate inputs: nil matrix, index bounds, source ≠ sink (O(1)).
//     Validation failures are fatal to the computation; nothing partial
//     is returned.
//  2. Clone capacity into the residual matrix (O(V²)).
//  3. Repeat until the sink is unreachable (Ford–Fulkerson theorem: no
//     augmenting path ⇔ the flow is maximum):
//     a. Check the context for cancellation.
//     b. BFS for the fewest-edge augmenting path (bfsParents, O(V²)).
//     c. Reconstruct the path source→sink from the parent vector.
//     d. Push the bottleneck through the residual matrix (applyPath).
//     e. Record the path, accumulate the flow, fire OnAugment.
//
// Complexity:
//
//	Time:   O(V · E²) worst case; each BFS is O(V²) on the dense matrix.
//	Memory: O(V²) residual clone + O(V) per search.
//
// A graph with no source→sink path yields MaxFlow 0 and an empty Paths
// list — that is a valid result, not an error.
func EdmondsKarp(capacity *matrix.Matrix, source, sink int, opts ...Option) (*Result, error) {
	// 1) Build options and validate input before touching anything.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := capacity.N()
	if n < matrix.MinNodes {
		return nil, ErrNilMatrix
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("source=%d, n=%d: %w", source, n, ErrSourceOutOfRange)
	}
	if sink < 0 || sink >= n {
		return nil, fmt.Errorf("sink=%d, n=%d: %w", sink, n, ErrSinkOutOfRange)
	}
	if source == sink {
		return nil, fmt.Errorf("source=sink=%d: %w", source, ErrSourceIsSink)
	}

	// 2) The residual matrix starts as an exact copy of the capacities.
	result := &Result{Residual: capacity.Clone()}

	// 3) Main loop: augment along BFS-shortest paths until none remain.
	for {
		// 3a) Cancellation check once per iteration.
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		// 3b) Fresh BFS over the current residual state.
		parent, found := bfsParents(result.Residual, source, sink)
		if !found {
			break
		}

		// 3c-3d) Rebuild the path and push its bottleneck.
		path := rebuildPath(parent, source, sink)
		bottleneck := applyPath(result.Residual, path)

		// 3e) Record the augmentation in discovery order.
		record := AugmentingPath{Edges: path, Bottleneck: bottleneck}
		result.Paths = append(result.Paths, record)
		result.MaxFlow += bottleneck
		o.OnAugment(len(result.Paths), record)
	}

	return result, nil
}
