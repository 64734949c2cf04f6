// SPDX-License-Identifier: MIT
// Package matrix: dense square capacity matrix over int64.
//
// Representation: a single contiguous []int64 of length n*n in row-major
// order. Contiguity keeps Clone and Equal to one allocation / one linear
// scan and avoids per-row pointer chasing during BFS column sweeps.

package matrix

import "fmt"

// MinNodes is the smallest admissible dimension: a flow network needs a
// source and a sink that are distinct nodes.
const MinNodes = 2

// Matrix is a dense N×N matrix of non-negative int64 capacities.
// The zero value is not usable; construct via New or FromRows.
type Matrix struct {
	n    int
	data []int64 // row-major, len == n*n
}

// New returns an n×n zero matrix.
// Returns ErrTooFewNodes if n < MinNodes.
func New(n int) (*Matrix, error) {
	if n < MinNodes {
		return nil, fmt.Errorf("n=%d < min=%d: %w", n, MinNodes, ErrTooFewNodes)
	}

	return &Matrix{n: n, data: make([]int64, n*n)}, nil
}

// FromRows builds a matrix from a row slice, deep-copying the input so the
// caller retains ownership of rows.
//
// Validation (fail fast, zero side effects on invalid input):
//   - len(rows) ≥ MinNodes, else ErrTooFewNodes;
//   - every row has exactly len(rows) entries, else ErrNonSquare;
//   - every entry ≥ 0, else ErrNegativeCapacity.
func FromRows(rows [][]int64) (*Matrix, error) {
	n := len(rows)
	if n < MinNodes {
		return nil, fmt.Errorf("n=%d < min=%d: %w", n, MinNodes, ErrTooFewNodes)
	}

	m := &Matrix{n: n, data: make([]int64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		for j, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("entry (%d,%d)=%d: %w", i, j, c, ErrNegativeCapacity)
			}
			m.data[i*n+j] = c
		}
	}

	return m, nil
}

// N reports the matrix dimension (number of nodes).
func (m *Matrix) N() int {
	if m == nil {
		return 0
	}

	return m.n
}

// InRange reports whether i is a valid node index.
func (m *Matrix) InRange(i int) bool {
	return m != nil && i >= 0 && i < m.n
}

// At returns entry (i, j).
// Returns ErrNilMatrix or ErrOutOfRange on invalid access.
func (m *Matrix) At(i, j int) (int64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if !m.InRange(i) || !m.InRange(j) {
		return 0, fmt.Errorf("at (%d,%d), n=%d: %w", i, j, m.n, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Set assigns entry (i, j) = v.
// Returns ErrNilMatrix, ErrOutOfRange, or ErrNegativeCapacity (v < 0).
func (m *Matrix) Set(i, j int, v int64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.InRange(i) || !m.InRange(j) {
		return fmt.Errorf("set (%d,%d), n=%d: %w", i, j, m.n, ErrOutOfRange)
	}
	if v < 0 {
		return fmt.Errorf("set (%d,%d)=%d: %w", i, j, v, ErrNegativeCapacity)
	}
	m.data[i*m.n+j] = v

	return nil
}

// Clone returns a deep copy of m, or nil for a nil receiver.
// A flow computation clones its capacity matrix once to obtain the
// initial residual state.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	data := make([]int64, len(m.data))
	copy(data, m.data)

	return &Matrix{n: m.n, data: data}
}

// Equal reports whether m and other have identical dimension and entries.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for k, v := range m.data {
		if v != other.data[k] {
			return false
		}
	}

	return true
}

// Row returns row i as a view over the matrix's own storage: writes through
// the slice mutate the matrix. Algorithm kernels use it to sweep columns
// 0..N-1 in index order without per-entry bounds checks.
// Returns nil for a nil receiver or an out-of-range index.
func (m *Matrix) Row(i int) []int64 {
	if !m.InRange(i) {
		return nil
	}

	return m.data[i*m.n : (i+1)*m.n]
}
