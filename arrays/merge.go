// SPDX-License-Identifier: MIT

package arrays

import "golang.org/x/exp/slices"

// MergeSorted merges two non-decreasing slices into a new non-decreasing
// slice holding every element of both; duplicates are kept.
//
// Stage 1 (Validate): a, then b, must be non-decreasing; the first one that
// is not fails with ErrNotSorted before any merge work.
// Stage 2 (Execute): two-pointer merge; on ties a's element goes first, so
// the result is stable with respect to operand order.
//
// Complexity: O(len(a) + len(b)) time, one allocation.
func MergeSorted[T Integer](a, b []T) ([]T, error) {
	if !slices.IsSorted(a) {
		return nil, arraysErrorf("MergeSorted", "first operand", ErrNotSorted)
	}
	if !slices.IsSorted(b) {
		return nil, arraysErrorf("MergeSorted", "second operand", ErrNotSorted)
	}

	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j] < a[i] {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out, nil
}
