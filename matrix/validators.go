// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape checks.
//   - Keep kernels minimal by delegating empty/ragged/compatibility checks here.
//   - Return tagged sentinels so call sites can match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Rectangularity runs O(rows); nothing here touches cell values.
//
// Note:
//   - Each composite validator follows a fixed sequence
//     (NotEmpty(left) → NotEmpty(right) → Rectangular(left) → Rectangular(right) → Inner).
//   - Each validator states what it assumes (e.g. Rectangular assumes NotEmpty).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotEmpty ensures m has at least one row and no row of zero length.
//
// Returns ErrBadShape for either condition.
// Complexity: O(rows).
func ValidateNotEmpty[T Integer](m [][]T) error {
	if len(m) == 0 {
		return validatorErrorf("ValidateNotEmpty: no rows", ErrBadShape)
	}
	for i := range m {
		if len(m[i]) == 0 {
			return validatorErrorf(fmt.Sprintf("ValidateNotEmpty: row %d", i), ErrBadShape)
		}
	}

	return nil
}

// ValidateRectangular ensures every row of m has the length of the first row.
//
// Implementation: assumes len(m) > 0 (caller runs ValidateNotEmpty first).
// Returns ErrDimensionMismatch on the first ragged row.
// Complexity: O(rows).
func ValidateRectangular[T Integer](m [][]T) error {
	cols := len(m[0])
	for i := 1; i < len(m); i++ {
		if len(m[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d has %d cols, want %d", i, len(m[i]), cols), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateShape – Composite: NotEmpty → Rectangular for a single matrix.
//
// Errors: ErrBadShape, ErrDimensionMismatch.
func ValidateShape[T Integer](m [][]T) error {
	if err := ValidateNotEmpty(m); err != nil {
		return validatorErrorf("ValidateShape", err)
	}
	if err := ValidateRectangular(m); err != nil {
		return validatorErrorf("ValidateShape", err)
	}

	return nil
}

// Validate checks that left·right is a well-defined product.
//
// Both operands are checked for emptiness before either is checked for
// raggedness, so an empty right matrix is reported even if left is ragged.
// Finally the inner dimension must agree: len(left[0]) == len(right).
//
// Errors: ErrBadShape, ErrDimensionMismatch.
// Complexity: O(rows(left) + rows(right)).
func Validate[T Integer](left, right [][]T) error {
	if err := ValidateNotEmpty(left); err != nil {
		return validatorErrorf("Validate: left", err)
	}
	if err := ValidateNotEmpty(right); err != nil {
		return validatorErrorf("Validate: right", err)
	}
	if err := ValidateRectangular(left); err != nil {
		return validatorErrorf("Validate: left", err)
	}
	if err := ValidateRectangular(right); err != nil {
		return validatorErrorf("Validate: right", err)
	}
	if len(left[0]) != len(right) {
		return validatorErrorf(fmt.Sprintf("Validate: inner %d != %d", len(left[0]), len(right)), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Integer](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
