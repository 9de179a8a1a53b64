// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped) and
// tests MUST check them via errors.Is. No operation panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with validatorErrorf/matrixErrorf; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (empty matrix / empty row) -> ragged rows -> inner dimension.

var (
	// ErrBadShape is returned when a matrix has zero rows or a row of zero length.
	// It covers both "null-shape" conditions; the wrapping tag tells them apart.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates a non-rectangular matrix, or operands whose
	// inner dimensions disagree (left.Cols != right.Rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
