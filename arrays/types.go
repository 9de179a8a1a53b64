// SPDX-License-Identifier: MIT

// Package arrays: element constraint shared by every operation.
package arrays

import "golang.org/x/exp/constraints"

// Integer is the element constraint for arrays handled by this package.
// Arithmetic (Replace, FilterNearMax) happens in the element type and wraps
// on overflow like any Go integer.
type Integer interface {
	constraints.Integer
}
