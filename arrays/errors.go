// SPDX-License-Identifier: MIT
// Package arrays: sentinel error set.
// Every operation that can fail returns one of these, wrapped with the
// operation name; callers match with errors.Is.

package arrays

import (
	"errors"
	"fmt"
)

var (
	// ErrRange indicates an index argument outside the bounds an operation accepts.
	ErrRange = errors.New("arrays: index out of range")

	// ErrNotSorted indicates an operand that is not non-decreasing where one is required.
	ErrNotSorted = errors.New("arrays: input not sorted")

	// ErrTooFewValues indicates the input has fewer distinct values than the operation needs.
	ErrTooFewValues = errors.New("arrays: too few distinct values")
)

// arraysErrorf wraps err with the failing operation and a short detail.
func arraysErrorf(op, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %s: %w", op, detail, err)
}
