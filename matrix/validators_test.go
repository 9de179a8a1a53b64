// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvarray/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateShape covers empty, empty-row, ragged and valid single matrices.
func TestValidateShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       [][]int
		wantErr error
	}{
		{"nil", nil, matrix.ErrBadShape},
		{"no rows", [][]int{}, matrix.ErrBadShape},
		{"empty first row", [][]int{{}, {1}}, matrix.ErrBadShape},
		{"empty later row", [][]int{{1, 2}, {}}, matrix.ErrBadShape},
		{"ragged", [][]int{{1, 2}, {3}}, matrix.ErrDimensionMismatch},
		{"1x1", [][]int{{7}}, nil},
		{"2x3", [][]int{{1, 2, 3}, {4, 5, 6}}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateShape(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidate covers operand order, raggedness and the inner dimension rule.
func TestValidate(t *testing.T) {
	t.Parallel()

	sq := [][]int{{1, 2}, {3, 4}}
	tests := []struct {
		name        string
		left, right [][]int
		wantErr     error
	}{
		{"left empty", [][]int{}, sq, matrix.ErrBadShape},
		{"right empty", sq, nil, matrix.ErrBadShape},
		{"right empty row", sq, [][]int{{1}, {}}, matrix.ErrBadShape},
		{"left ragged", [][]int{{1, 2}, {3}}, sq, matrix.ErrDimensionMismatch},
		{"right ragged", sq, [][]int{{1, 2}, {3, 4, 5}}, matrix.ErrDimensionMismatch},
		{"inner 3 vs 2", [][]int{{1, 2, 3}, {4, 5, 6}}, sq, matrix.ErrDimensionMismatch},
		{"2x2 by 2x2", sq, sq, nil},
		{"2x3 by 3x1", [][]int{{1, 2, 3}, {4, 5, 6}}, [][]int{{1}, {2}, {3}}, nil},
		{"1x1 by 1x4", [][]int{{2}}, [][]int{{1, 2, 3, 4}}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.Validate(tc.left, tc.right)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestValidate_EmptyBeatsRagged pins the error priority: an empty right
// operand is reported as a shape error even when left is ragged.
func TestValidate_EmptyBeatsRagged(t *testing.T) {
	t.Parallel()

	err := matrix.Validate([][]int{{1, 2}, {3}}, [][]int{})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestValidateMulCompatible covers nil operands and the cols/rows rule on Dense.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDense[int](2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense[int](3, 2)
	require.NoError(t, err)

	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(a, b))
}
