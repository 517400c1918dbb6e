// SPDX-License-Identifier: MIT

package bosons_test

import (
	"testing"

	"github.com/katalvlaran/quantops/bosons"
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/stretchr/testify/require"
)

func boson(t *testing.T, s string) bosons.BosonProduct {
	t.Helper()
	p, err := bosons.ParseBosonProduct(s)
	require.NoError(t, err)

	return p
}

func hboson(t *testing.T, s string) bosons.HermitianBosonProduct {
	t.Helper()
	h, err := bosons.ParseHermitianBosonProduct(s)
	require.NoError(t, err)

	return h
}

func re(v float64) calc.Complex { return calc.NewComplex(v, 0) }

// termMap flattens product terms into canonical string -> coefficient text.
func termMap[K core.Key](terms []core.Term[K]) map[string]string {
	out := make(map[string]string, len(terms))
	for _, t := range terms {
		out[t.Product.String()] = t.Coefficient.String()
	}

	return out
}
