// Package maxflow is the root of a small maximum-flow toolkit built around
// dense capacity matrices.
//
// The module is organized as independent, focused packages:
//
//   - matrix — dense N×N non-negative integer capacity matrices with strict
//     shape and sign validation; the same type serves as the mutable
//     residual state of a flow computation.
//   - flow   — the Edmonds–Karp maximum-flow engine: shortest augmenting
//     paths by breadth-first search, residual bookkeeping, and an ordered
//     record of every augmenting path found, replayable step by step.
//   - netgen — deterministic Erdős–Rényi random capacity networks for
//     demos, tests, and benchmarks.
//
// The demo binary cmd/flowdemo generates a random network, computes its
// maximum flow, and replays the augmenting paths one by one.
//
// All packages report failures through package-prefixed sentinel errors
// matched with errors.Is; none of them panic on user input.
package maxflow
