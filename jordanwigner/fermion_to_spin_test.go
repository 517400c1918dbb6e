// SPDX-License-Identifier: MIT

package jordanwigner_test

import (
	"testing"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/fermions"
	"github.com/katalvlaran/quantops/jordanwigner"
	"github.com/katalvlaran/quantops/spins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFermionProductToSpin(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want map[string]complex128
	}{
		{"I", map[string]complex128{"I": 1}},
		{"c0", map[string]complex128{"0X": 0.5, "0Y": -0.5i}},
		{"a1", map[string]complex128{"0Z1X": 0.5, "0Z1Y": 0.5i}},
		{"c0a0", map[string]complex128{"I": 0.5, "0Z": -0.5}},
		{"c1a2", map[string]complex128{"1Y2X": -0.25i, "1X2Y": 0.25i, "1Y2Y": 0.25, "1X2X": 0.25}},
	}
	for _, tc := range cases {
		got := jordanwigner.FermionProductToSpin(fermion(t, tc.in))
		want := pauliOperator(t, tc.want)
		assert.True(t, got.Equal(want), "%s: got %s, want %s", tc.in, got, want)
	}
}

func TestHermitianFermionProductToSpin(t *testing.T) {
	t.Parallel()
	got := jordanwigner.HermitianFermionProductToSpin(hfermion(t, "c1a2"))
	want := pauliHamiltonian(t, map[string]float64{"1X2X": 0.5, "1Y2Y": 0.5})
	assert.True(t, got.Equal(want), got.String())

	got = jordanwigner.HermitianFermionProductToSpin(hfermion(t, "I"))
	assert.True(t, got.Equal(pauliHamiltonian(t, map[string]float64{"I": 1})), got.String())
}

func TestFermionHamiltonianToSpin(t *testing.T) {
	t.Parallel()
	h := fermions.NewFermionHamiltonian()
	require.NoError(t, h.AddTerm(hfermion(t, "a1a2"), calc.NewComplex(1, 2)))
	got := jordanwigner.FermionHamiltonianToSpin(h)
	want := pauliHamiltonian(t, map[string]float64{"1X2X": -0.5, "1X2Y": 1, "1Y2X": 1, "1Y2Y": 0.5})
	assert.True(t, got.Equal(want), got.String())

	number := fermions.NewFermionHamiltonian(core.WithNumberModes(3))
	require.NoError(t, number.AddTerm(hfermion(t, "c2a2"), calc.NewComplex(3, 0)))
	got = jordanwigner.FermionHamiltonianToSpin(number)
	assert.Equal(t, 3, got.NumberSpins())
	assert.True(t, got.Get(pauli(t, "I")).Equal(calc.NewFloat(1.5)))
	assert.True(t, got.Get(pauli(t, "2Z")).Equal(calc.NewFloat(-1.5)))
	assert.Equal(t, 2, got.Len())
}

func TestFermionOperatorToSpinIsLinear(t *testing.T) {
	t.Parallel()
	op := fermions.NewFermionOperator(core.WithNumberModes(6))
	require.NoError(t, op.AddTerm(fermion(t, "c1c2a2a3"), calc.NewComplex(1, 2)))
	require.NoError(t, op.AddTerm(fermion(t, "c3c4a2a5"), calc.NewComplex(2, 1)))
	got := jordanwigner.FermionOperatorToSpin(op)
	assert.Equal(t, 6, got.NumberSpins())

	first := jordanwigner.FermionProductToSpin(fermion(t, "c1c2a2a3")).Scale(calc.NewComplex(1, 2))
	second := jordanwigner.FermionProductToSpin(fermion(t, "c3c4a2a5")).Scale(calc.NewComplex(2, 1))
	sum, err := first.Add(second)
	require.NoError(t, err)
	bounded := spins.NewPauliOperator(spins.WithNumberSpins(6))
	for k, v := range sum.All() {
		require.NoError(t, bounded.AddTerm(k, v))
	}
	assert.True(t, got.Equal(bounded))

	assert.True(t, jordanwigner.FermionOperatorToSpin(fermions.NewFermionOperator()).IsEmpty())
}

func TestFermionNoiseToSpin(t *testing.T) {
	t.Parallel()
	n := fermions.NewFermionLindbladNoiseOperator()
	require.NoError(t, n.AddTerm(core.NewPair(fermion(t, "c0a0"), fermion(t, "c0a0")), calc.NewComplex(1, 0)))
	got := jordanwigner.FermionNoiseToSpin(n)

	z, err := spins.ParseDecoherenceProduct("0Z")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	assert.True(t, got.Get(core.NewPair(z, z)).Equal(calc.NewComplex(0.25, 0)))
}

func TestFermionOperatorRoundTrip(t *testing.T) {
	t.Parallel()
	op := fermionOperator(t, map[string]complex128{"c0c1a2": 1 + 1i, "c0a1": 2, "a0": -0.5i})
	back := jordanwigner.PauliOperatorToFermion(jordanwigner.FermionOperatorToSpin(op))
	assert.True(t, back.Equal(op), back.String())
}
