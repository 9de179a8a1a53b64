// SPDX-License-Identifier: MIT

package arrays

import "golang.org/x/exp/slices"

// ReplaceInPlace doubles every element at an even index and negates every
// element at an odd index, writing into in, and returns in.
//
// This is the only mutating operation in the package. It performs no
// synchronization: callers must not share in with concurrent readers or
// writers while it runs. Use Replace for a copy.
func ReplaceInPlace[T Integer](in []T) []T {
	for i := range in {
		if i%2 == 0 {
			in[i] *= 2
		} else {
			in[i] = -in[i]
		}
	}

	return in
}

// Replace is the pure form of ReplaceInPlace: in is left untouched and the
// transformed values are returned in a new slice.
func Replace[T Integer](in []T) []T {
	return ReplaceInPlace(slices.Clone(in))
}

// Rearrange returns the negative elements of in, last to first, followed by
// the positive elements, last to first. Zeros are neither and are dropped.
//
// Example: [3, -5, 4, -7, 2, 9] → [-7, -5, 9, 2, 4, 3].
func Rearrange[T Integer](in []T) []T {
	out := make([]T, 0, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		if in[i] < 0 {
			out = append(out, in[i])
		}
	}
	for i := len(in) - 1; i >= 0; i-- {
		if in[i] > 0 {
			out = append(out, in[i])
		}
	}

	return out
}
