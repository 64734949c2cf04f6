// SPDX-License-Identifier: MIT

// Package matrix provides a dense N×N non-negative integer capacity matrix,
// the single data structure shared by every stage of a max-flow computation.
//
// Entry (i, j) is the capacity of the directed edge i→j; zero means "no edge".
// The same type serves two roles:
//
//   - Capacity matrix — immutable input to the flow engine. Constructed once
//     via FromRows (which deep-copies and validates) and never written again.
//   - Residual matrix — a Clone of the capacity matrix that the engine
//     mutates as flow is pushed: residual(u,v) shrinks, residual(v,u) grows.
//
// # Validation
//
// FromRows enforces the full input contract up front:
//
//   - at least MinNodes rows (a flow network needs distinct source and sink),
//   - squareness: every row has exactly len(rows) entries,
//   - non-negativity of every entry.
//
// All failures are reported as package-prefixed sentinel errors
// (ErrTooFewNodes, ErrNonSquare, ErrNegativeCapacity, ErrOutOfRange,
// ErrNilMatrix) and MUST be checked with errors.Is. Accessors never panic.
//
// Complexity: At/Set are O(1); FromRows, Clone and Equal are O(N²).
package matrix
