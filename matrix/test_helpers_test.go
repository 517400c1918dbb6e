// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small site fixtures and a go-cmp option for complex entries.

package matrix_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/quantops/matrix"
)

// z0 is Z on qubit 0, x0 is X on qubit 0, and so on.
var (
	x0  = []matrix.Site{{Index: 0, Op: matrix.OpX}}
	y0  = []matrix.Site{{Index: 0, Op: matrix.OpY}}
	z0  = []matrix.Site{{Index: 0, Op: matrix.OpZ}}
	iy0 = []matrix.Site{{Index: 0, Op: matrix.OpIY}}
	x1  = []matrix.Site{{Index: 1, Op: matrix.OpX}}
)

// approx compares complex entries up to 1e-12.
var approx = cmp.Comparer(func(a, b complex128) bool {
	d := a - b

	return real(d)*real(d)+imag(d)*imag(d) < 1e-24
})
