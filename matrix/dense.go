// SPDX-License-Identifier: MIT

// Package matrix: Dense is the row-major working form of an integer matrix,
// storing elements in a flat slice for cache-friendly kernels.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of integers.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Integer] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape when rows or cols is not positive.
// Complexity: O(r*c) time and memory.
func NewDense[T Integer](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf("New", rows, cols, ErrBadShape)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows validates m with ValidateShape and copies it into a new Dense.
// The caller's slices are never retained.
// Complexity: O(r*c).
func FromRows[T Integer](m [][]T) (*Dense[T], error) {
	if err := ValidateShape(m); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	d := &Dense[T]{r: len(m), c: len(m[0])}
	d.data = make([]T, 0, d.r*d.c)
	for _, row := range m {
		d.data = append(d.data, row...)
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// ToRows returns the matrix as freshly allocated [row][col] slices.
// Rows share one backing array; each row is capped so appends do not bleed.
func (m *Dense[T]) ToRows() [][]T {
	flat := make([]T, len(m.data))
	copy(flat, m.data)
	out := make([][]T, m.r)
	for i := range out {
		out[i] = flat[i*m.c : (i+1)*m.c : (i+1)*m.c]
	}

	return out
}

// String implements fmt.Stringer for easy debugging: one bracketed row per line.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
