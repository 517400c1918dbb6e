// SPDX-License-Identifier: MIT

package mixed_test

import (
	"testing"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/mixed"
	"github.com/stretchr/testify/require"
)

const (
	one      = "(1e0 + i * 0e0)"
	minusOne = "(-1e0 + i * 0e0)"
)

func product(t *testing.T, s string) mixed.MixedProduct {
	t.Helper()
	p, err := mixed.ParseMixedProduct(s)
	require.NoError(t, err)

	return p
}

func hproduct(t *testing.T, s string) mixed.HermitianMixedProduct {
	t.Helper()
	h, err := mixed.ParseHermitianMixedProduct(s)
	require.NoError(t, err)

	return h
}

func dproduct(t *testing.T, s string) mixed.MixedDecoherenceProduct {
	t.Helper()
	d, err := mixed.ParseMixedDecoherenceProduct(s)
	require.NoError(t, err)

	return d
}

func re(v float64) calc.Complex { return calc.NewComplex(v, 0) }

func termMap[K core.Key](terms []core.Term[K]) map[string]string {
	out := make(map[string]string, len(terms))
	for _, t := range terms {
		out[t.Product.String()] = t.Coefficient.String()
	}

	return out
}
