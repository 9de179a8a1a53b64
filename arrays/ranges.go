// SPDX-License-Identifier: MIT

package arrays

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// CopyRange returns a new slice holding in[start:end].
//
// Both start and end must lie in [0, len(in)) and start <= end, otherwise
// ErrRange is returned. Note that end is exclusive yet may not equal len(in),
// so the last element can never be part of the copy; an empty input rejects
// every range.
func CopyRange[T Integer](in []T, start, end int) ([]T, error) {
	n := len(in)
	if start < 0 || end < 0 || start >= n || end >= n || start > end {
		return nil, arraysErrorf("CopyRange", fmt.Sprintf("[%d,%d) of len %d", start, end, n), ErrRange)
	}

	return slices.Clone(in[start:end]), nil
}

// InsertAt returns a copy of in with values inserted so that values[0]
// lands at index start. The input is not modified.
//
// start must lie in [0, len(in)); appending past the last element is not an
// insert and yields ErrRange, as does any start on an empty input.
func InsertAt[T Integer](in []T, start int, values ...T) ([]T, error) {
	if start < 0 || start >= len(in) {
		return nil, arraysErrorf("InsertAt", fmt.Sprintf("index %d of len %d", start, len(in)), ErrRange)
	}
	out := make([]T, len(in), len(in)+len(values))
	copy(out, in)

	return slices.Insert(out, start, values...), nil
}
