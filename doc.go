// Package lvarray is a small, dependency-light toolbox of integer array and
// integer matrix utilities.
//
// 🚀 What is inside?
//
//	matrix/: shape validation and the r×k · k×c integer product
//	          (Validate, Mul, Dense, MulDense)
//	arrays/: linear scans and rearrangements over integer slices
//	          (MergeSorted, Distinct, CopyRange, InsertAt, Rearrange, ...)
//
// ✨ Guarantees:
//
//   - Pure functions: inputs are read-only, results are freshly allocated.
//     The single exception is arrays.ReplaceInPlace, which is documented as
//     mutating and single-writer.
//   - No package state, no I/O, no goroutines.
//   - Failures are sentinel errors, matched with errors.Is; validation always
//     completes before any work, so there are no partial results.
//
// Quick example:
//
//	out, err := matrix.Mul([][]int{{1, 2}, {3, 4}}, [][]int{{5, 6}, {7, 8}})
//	// out == [[19 22] [43 50]]
//
//	go get github.com/katalvlaran/lvarray
package lvarray
