package arrays_test

import "golang.org/x/exp/rand"

// randInts returns n values drawn uniformly from [-spread, spread].
func randInts(rng *rand.Rand, n, spread int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(2*spread+1) - spread
	}
	return out
}

// sortedInts returns n non-decreasing values built from random steps in [0, maxStep].
func sortedInts(rng *rand.Rand, n, maxStep int) []int {
	out := make([]int, n)
	cur := rng.Intn(21) - 10
	for i := range out {
		cur += rng.Intn(maxStep + 1)
		out[i] = cur
	}
	return out
}
