// Package arrays provides pure, single-pass utilities over integer slices.
//
// ✨ What's inside:
//   - Scans: NoneMatch, SomeMatch, AllMatch
//   - Ranges: CopyRange, InsertAt (bounds-checked, ErrRange)
//   - Reordering: Replace / ReplaceInPlace, Rearrange
//   - Selection: SecondMax, FilterNearMax, Distinct
//   - MergeSorted: linear merge of two non-decreasing slices (ErrNotSorted)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvarray/arrays"
//
//	merged, err := arrays.MergeSorted([]int{1, 3, 5}, []int{2, 2, 4})
//	// merged == [1 2 2 3 4 5]
//
//	near := arrays.FilterNearMax([]int{1, 15, 20, 9}, arrays.WithWindow(6))
//	// near == [15 20]
//
// Every function returns a fresh slice and leaves its input alone, except
// ReplaceInPlace, which writes into the caller's slice and is single-writer.
// No function keeps state between calls.
package arrays
