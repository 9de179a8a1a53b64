// SPDX-License-Identifier: MIT

package arrays

// NoneMatch reports whether no element of in is divisible by the divisor
// (DefaultDivisor unless WithDivisor is given). Zero is divisible by
// anything, so any zero makes NoneMatch false. An empty input yields true.
//
// Complexity: O(n), stops at the first divisible element.
func NoneMatch[T Integer](in []T, opts ...Option) bool {
	d := T(gatherOptions(opts...).divisor)
	for _, v := range in {
		if v%d == 0 {
			return false
		}
	}

	return true
}

// SomeMatch reports whether at least one element satisfies pred.
// An empty input yields false.
func SomeMatch[T Integer](in []T, pred func(T) bool) bool {
	for _, v := range in {
		if pred(v) {
			return true
		}
	}

	return false
}

// AllMatch reports whether fn(v) satisfies pred for every element v of in.
// The input need not be numeric: the usual case maps strings to ints
// (length, parsed value) and tests the result. An empty input yields true.
func AllMatch[S, V any](in []S, fn func(S) V, pred func(V) bool) bool {
	for _, s := range in {
		if !pred(fn(s)) {
			return false
		}
	}

	return true
}
