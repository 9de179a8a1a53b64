// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by validators and kernels.
package matrix

import "golang.org/x/exp/constraints"

// Integer is the element constraint for every matrix in this package.
// Callers pass matrices as [][]T indexed [row][col]; a valid one is non-empty,
// has no empty row and is rectangular.
//
// Products are computed in T itself, so overflow wraps like any Go integer.
type Integer interface {
	constraints.Integer
}
