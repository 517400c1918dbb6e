// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for quantops/core.
//
// Purpose:
//   - Provide a minimal Key implementation and fixtures for Map contract tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/stretchr/testify/require"
)

// label is the simplest Key: its canonical string is itself.
type label string

func (l label) String() string { return string(l) }

// conjLabel maps "x" to "x+" and back, with prefactor -1 on the way in.
func conjLabel(l label) (label, float64) {
	s := string(l)
	if len(s) > 0 && s[len(s)-1] == '+' {
		return label(s[:len(s)-1]), -1
	}

	return label(s + "+"), -1
}

// newFixture RETURNS the map {a: 1, b: 2i, c: 3 - 1i} in that insertion order.
func newFixture(t *testing.T) *core.Map[label, calc.Complex] {
	t.Helper()
	m := core.NewMap[label, calc.Complex](3)
	m.Set("a", calc.NewComplex(1, 0))
	m.Set("b", calc.NewComplex(0, 2))
	m.Set("c", calc.NewComplex(3, -1))
	require.Equal(t, 3, m.Len())

	return m
}
