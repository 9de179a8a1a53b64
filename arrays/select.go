// SPDX-License-Identifier: MIT

package arrays

// SecondMax returns the second-largest distinct value of in.
// Duplicates of the maximum do not count: SecondMax([5, 5, 3]) is 3.
//
// Returns ErrTooFewValues when in holds fewer than two distinct values.
// Complexity: O(n) single pass, O(1) memory.
func SecondMax[T Integer](in []T) (T, error) {
	var first, second T
	haveFirst, haveSecond := false, false
	for _, v := range in {
		switch {
		case !haveFirst:
			first, haveFirst = v, true
		case v > first:
			second, haveSecond = first, true
			first = v
		case v < first && (!haveSecond || v > second):
			second, haveSecond = v, true
		}
	}
	if !haveSecond {
		return 0, arraysErrorf("SecondMax", "", ErrTooFewValues)
	}

	return second, nil
}

// FilterNearMax returns, in their original order, the elements v of in with
// v > max(in) - window, where window is DefaultWindow unless WithWindow is
// given. An empty input yields an empty result.
//
// The comparison is done as max - v < window so that a low maximum does not
// underflow the threshold; a difference too large for T is treated as far.
func FilterNearMax[T Integer](in []T, opts ...Option) []T {
	out := make([]T, 0, len(in))
	if len(in) == 0 {
		return out
	}
	w := T(gatherOptions(opts...).window)

	top := in[0]
	for _, v := range in[1:] {
		if v > top {
			top = v
		}
	}
	for _, v := range in {
		if d := top - v; d >= 0 && d < w {
			out = append(out, v)
		}
	}

	return out
}

// Distinct returns the unique values of in in first-occurrence order.
// The result is a new slice; Distinct(Distinct(x)) equals Distinct(x).
func Distinct[T Integer](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
