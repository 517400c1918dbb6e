// SPDX-License-Identifier: MIT

package fermions_test

import (
	"testing"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/fermions"
	"github.com/stretchr/testify/require"
)

func fermion(t *testing.T, s string) fermions.FermionProduct {
	t.Helper()
	p, err := fermions.ParseFermionProduct(s)
	require.NoError(t, err)

	return p
}

func hfermion(t *testing.T, s string) fermions.HermitianFermionProduct {
	t.Helper()
	h, err := fermions.ParseHermitianFermionProduct(s)
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
