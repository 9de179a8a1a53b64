// SPDX-License-Identifier: MIT
// Package matrix: integer matrix product.
//
// Purpose:
//   - Mul is the caller-facing entry point on [][]T values.
//   - MulDense is the kernel on validated Dense operands.
//
// Contract:
//   - Validation always runs first; on failure nothing is allocated.
//   - Result shape is rows(left) × cols(right).
//   - Inputs are never mutated.
//
// Complexity: O(r·k·c) time, O(r·c) extra memory for the result.

package matrix

import "fmt"

// Operation tags for wrapped errors.
const (
	opMul      = "Mul"
	opMulDense = "MulDense"
)

// matrixErrorf wraps an error with the failing operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product left·right as a new [][]T.
//
// Stage 1 (Validate): Validate(left, right); its error is returned wrapped,
// still matching ErrBadShape / ErrDimensionMismatch under errors.Is.
// Stage 2 (Prepare): copy both operands into Dense form.
// Stage 3 (Execute): MulDense.
// Stage 4 (Finalize): return the r×c result as rows.
//
// Example:
//
//	out, err := matrix.Mul([][]int{{1, 2}, {3, 4}}, [][]int{{5, 6}, {7, 8}})
//	// out == [][]int{{19, 22}, {43, 50}}
func Mul[T Integer](left, right [][]T) ([][]T, error) {
	if err := Validate(left, right); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	a, err := FromRows(left)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	b, err := FromRows(right)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := MulDense(a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res.ToRows(), nil
}

// MulDense returns a·b as a new Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// The kernel walks i-k-j so both operands are read row-major, and skips
// zero entries of a.
func MulDense[T Integer](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulDense, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMulDense, err)
	}

	var (
		i, j, k                            int // loop iterators
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 T
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}
