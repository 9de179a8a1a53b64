// Package matrix validates and multiplies integer matrices.
//
// The matrix package provides:
//
//   - Validators (ValidateNotEmpty, ValidateRectangular, ValidateShape,
//     Validate) that reject empty, ragged or incompatible operands with
//     sentinel errors before any arithmetic happens.
//   - Mul, the product of an r×k and a k×c matrix given as [][]T, returning
//     a freshly allocated r×c result.
//   - Dense, a row-major flat-backed form with bounds-checked At/Set, used by
//     the MulDense kernel and available to callers that multiply repeatedly.
//
// Elements are any Go integer type (see Integer). Arithmetic is done in that
// type, so overflow wraps silently.
//
// Errors:
//
//	ErrBadShape         : zero rows, or a row of zero length.
//	ErrDimensionMismatch: ragged rows, or cols(left) != rows(right).
//	ErrOutOfRange       : Dense.At/Set index outside the matrix.
//	ErrNilMatrix        : nil *Dense passed to MulDense.
//
// All functions are pure and hold no package state; they are safe for
// concurrent use as long as callers do not mutate the inputs meanwhile.
package matrix
