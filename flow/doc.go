// Package flow computes maximum flow on a dense capacity matrix using the
// Edmonds–Karp algorithm (Ford–Fulkerson with breadth-first shortest
// augmenting paths), and records every augmenting path it uses so a caller
// can replay the flow's construction step by step.
//
// # Algorithm
//
//   - Method: BFS over the residual matrix for the fewest-edge augmenting
//     path, push its bottleneck, repeat until the sink is unreachable.
//   - Time:   O(V · E²) worst case; V = N nodes, E = positive entries.
//   - Memory: O(V²) for the residual matrix, O(V) per search.
//
// Termination is guaranteed for integer capacities: every augmentation
// raises the total flow by at least 1 and the flow is bounded by the
// capacity out of the source.
//
// # Determinism
//
// The BFS expands neighbor columns strictly in ascending node index, so
// among several shortest paths the lexicographically smallest is always
// chosen. Two runs over the same matrix yield the same flow value and the
// same ordered path list.
//
// # API
//
//	result, err := flow.EdmondsKarp(capacity, source, sink)
//	// result.MaxFlow  — total flow value
//	// result.Paths    — augmenting paths in discovery order,
//	//                   each with its edges (source→sink) and bottleneck
//	// result.Residual — residual matrix after all augmentations
//
// Options follow the functional style: WithContext for cancellation,
// WithOnAugment for a per-path hook (step UIs, logging).
//
// Replay re-applies a recorded path list to a fresh clone of the capacity
// matrix and must reproduce result.Residual exactly; it returns
// ErrReplayMismatch if the records do not fit.
//
// # Errors
//
//	ErrNilMatrix        — nil capacity matrix.
//	ErrSourceOutOfRange — source index outside [0, N).
//	ErrSinkOutOfRange   — sink index outside [0, N).
//	ErrSourceIsSink     — source == sink.
//	ErrReplayMismatch   — Replay given records inconsistent with the matrix.
//	context errors      — if the configured context is canceled mid-run.
//
// All validation happens before any search; there is no partial result.
// Exhausting augmenting paths is the normal termination condition, never
// an error. A path edge without positive residual capacity inside the
// private applyPath is a programming error and panics.
package flow
