// SPDX-License-Identifier: MIT
// Package spins_test contains test helpers.
//
// Purpose:
//   - Parse helpers that fail the test instead of returning errors.
//   - A go-cmp option for complex matrix entries.

package spins_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/spins"
	"github.com/stretchr/testify/require"
)

func pauli(t *testing.T, s string) spins.PauliProduct {
	t.Helper()
	p, err := spins.ParsePauliProduct(s)
	require.NoError(t, err)

	return p
}

func deco(t *testing.T, s string) spins.DecoherenceProduct {
	t.Helper()
	d, err := spins.ParseDecoherenceProduct(s)
	require.NoError(t, err)

	return d
}

func re(v float64) calc.Complex { return calc.NewComplex(v, 0) }

// approx compares complex entries up to 1e-12.
var approx = cmp.Comparer(func(a, b complex128) bool {
	d := a - b

	return real(d)*real(d)+imag(d)*imag(d) < 1e-24
})
