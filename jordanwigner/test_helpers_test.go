// SPDX-License-Identifier: MIT

package jordanwigner_test

import (
	"testing"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/fermions"
	"github.com/katalvlaran/quantops/spins"
	"github.com/stretchr/testify/require"
)

func pauli(t *testing.T, s string) spins.PauliProduct {
	t.Helper()
	p, err := spins.ParsePauliProduct(s)
	require.NoError(t, err)

	return p
}

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

func value(z complex128) calc.Complex { return calc.FromComplex128(z) }

// pauliOperator builds an unbounded operator from canonical strings.
func pauliOperator(t *testing.T, terms map[string]complex128) *spins.PauliOperator {
	t.Helper()
	op := spins.NewPauliOperator()
	for s, z := range terms {
		require.NoError(t, op.AddTerm(pauli(t, s), value(z)))
	}

	return op
}

func fermionOperator(t *testing.T, terms map[string]complex128) *fermions.FermionOperator {
	t.Helper()
	op := fermions.NewFermionOperator()
	for s, z := range terms {
		require.NoError(t, op.AddTerm(fermion(t, s), value(z)))
	}

	return op
}

func pauliHamiltonian(t *testing.T, terms map[string]float64) *spins.PauliHamiltonian {
	t.Helper()
	h := spins.NewPauliHamiltonian()
	for s, v := range terms {
		require.NoError(t, h.AddTerm(pauli(t, s), calc.NewFloat(v)))
	}

	return h
}
