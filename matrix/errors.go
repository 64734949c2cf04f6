// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", ...) for context); tests check them via errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil *Matrix receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrTooFewNodes indicates fewer than MinNodes rows; a capacity matrix
	// must describe at least a distinct source and sink.
	ErrTooFewNodes = errors.New("matrix: fewer than two nodes")

	// ErrNonSquare indicates that some row's length differs from the number
	// of rows.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeCapacity indicates a negative entry; capacities are
	// non-negative by definition.
	ErrNegativeCapacity = errors.New("matrix: negative capacity")

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")
)
