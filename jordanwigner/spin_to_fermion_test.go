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
	"github.com/stretchr/testify/suite"
)

func TestPlusMinusProductToFermion(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want map[string]complex128
	}{
		{"I", map[string]complex128{"I": 1}},
		{"0+", map[string]complex128{"a0": 1}},
		{"1-", map[string]complex128{"c1": 1, "c0c1a0": 2}},
		{"0Z", map[string]complex128{"I": 1, "c0a0": -2}},
		{"0+1-2Z", map[string]complex128{"c1a0": 1, "c1c2a0a2": 2}},
	}
	for _, tc := range cases {
		p, err := spins.ParsePlusMinusProduct(tc.in)
		require.NoError(t, err)
		got := jordanwigner.PlusMinusProductToFermion(p)
		want := fermionOperator(t, tc.want)
		assert.True(t, got.Equal(want), "%s: got %s, want %s", tc.in, got, want)
	}
}

func TestPauliProductToFermion(t *testing.T) {
	t.Parallel()
	got := jordanwigner.PauliProductToFermion(pauli(t, "0X1Y2Z"))
	want := fermionOperator(t, map[string]complex128{
		"a0a1":     1i,
		"c1a0":     1i,
		"c0a1":     -1i,
		"c0c1":     1i,
		"c2a0a1a2": -2i,
		"c1c2a0a2": 2i,
		"c0c2a1a2": -2i,
		"c0c1c2a2": -2i,
	})
	assert.True(t, got.Equal(want), got.String())

	got = jordanwigner.PauliProductToFermion(pauli(t, "I"))
	assert.True(t, got.Equal(fermionOperator(t, map[string]complex128{"I": 1})))
}

func TestDecoherenceToFermion(t *testing.T) {
	t.Parallel()
	d, err := spins.ParseDecoherenceProduct("0iY")
	require.NoError(t, err)
	got := jordanwigner.DecoherenceProductToFermion(d)
	assert.True(t, got.Equal(fermionOperator(t, map[string]complex128{"a0": 1, "c0": -1})), got.String())

	op := spins.NewDecoherenceOperator(spins.WithNumberSpins(2))
	require.NoError(t, op.AddTerm(d, calc.NewComplex(0, 2)))
	mapped := jordanwigner.DecoherenceOperatorToFermion(op)
	assert.Equal(t, 2, mapped.NumberModes())
	assert.True(t, mapped.Get(fermion(t, "c0")).Equal(calc.NewComplex(0, -2)))

	// The Pauli form of the same operator maps to the same fermion operator.
	viaPauli := jordanwigner.PauliOperatorToFermion(op.ToPauli())
	assert.True(t, viaPauli.Equal(mapped))
	viaLadder := jordanwigner.PlusMinusOperatorToFermion(op.ToPlusMinus())
	assert.True(t, viaLadder.Equal(mapped))
}

func TestPauliHamiltonianToFermion(t *testing.T) {
	t.Parallel()
	h := pauliHamiltonian(t, map[string]float64{"1X": 1})
	got := jordanwigner.PauliHamiltonianToFermion(h)

	want := fermions.NewFermionHamiltonian()
	require.NoError(t, want.AddTerm(hfermion(t, "a1"), calc.NewComplex(1, 0)))
	require.NoError(t, want.AddTerm(hfermion(t, "c0a0a1"), calc.NewComplex(-2, 0)))
	assert.True(t, got.Equal(want), got.String())

	back := jordanwigner.FermionHamiltonianToSpin(got)
	assert.True(t, back.Equal(h), back.String())

	ising := pauliHamiltonian(t, map[string]float64{"0Z1Z": 0.5, "0Z": -1})
	assert.True(t, jordanwigner.FermionHamiltonianToSpin(jordanwigner.PauliHamiltonianToFermion(ising)).Equal(ising))
}

func TestNoiseToFermion(t *testing.T) {
	t.Parallel()
	z, err := spins.ParseDecoherenceProduct("0Z")
	require.NoError(t, err)
	noise := spins.NewPauliLindbladNoiseOperator()
	require.NoError(t, noise.AddTerm(core.NewPair(z, z), calc.NewComplex(0.25, 0)))
	got := jordanwigner.PauliNoiseToFermion(noise)
	assert.Equal(t, 1, got.Len())
	assert.True(t, got.Get(core.NewPair(fermion(t, "c0a0"), fermion(t, "c0a0"))).Equal(calc.NewComplex(1, 0)))

	plus, err := spins.ParsePlusMinusProduct("0+")
	require.NoError(t, err)
	pm := spins.NewPlusMinusLindbladNoiseOperator()
	require.NoError(t, pm.AddTerm(core.NewPair(plus, plus), calc.NewComplex(1, 0)))
	mapped := jordanwigner.PlusMinusNoiseToFermion(pm)
	assert.Equal(t, 1, mapped.Len())
	assert.True(t, mapped.Get(core.NewPair(fermion(t, "a0"), fermion(t, "a0"))).Equal(calc.NewComplex(1, 0)))
}

type OpenSystemSuite struct {
	suite.Suite
	spin *spins.PauliLindbladOpenSystem
}

func (s *OpenSystemSuite) SetupTest() {
	t := s.T()
	s.spin = spins.NewPauliLindbladOpenSystem(spins.WithNumberSpins(3))
	require.NoError(t, s.spin.System().AddTerm(pauli(t, "1X"), calc.NewFloat(1)))
	z, err := spins.ParseDecoherenceProduct("0Z")
	require.NoError(t, err)
	require.NoError(t, s.spin.Noise().AddTerm(core.NewPair(z, z), calc.NewComplex(0.25, 0)))
}

func (s *OpenSystemSuite) TestToFermion() {
	open, err := jordanwigner.PauliOpenSystemToFermion(s.spin)
	s.Require().NoError(err)
	s.Equal(3, open.NumberModes())
	s.Equal(2, open.System().Len())
	s.True(open.System().Get(hfermion(s.T(), "c0a0a1")).Equal(calc.NewComplex(-2, 0)))
	s.True(open.Noise().Get(core.NewPair(fermion(s.T(), "c0a0"), fermion(s.T(), "c0a0"))).Equal(calc.NewComplex(1, 0)))
}

func (s *OpenSystemSuite) TestRoundTrip() {
	open, err := jordanwigner.PauliOpenSystemToFermion(s.spin)
	s.Require().NoError(err)
	back, err := jordanwigner.FermionOpenSystemToSpin(open)
	s.Require().NoError(err)
	s.True(back.Equal(s.spin), back.String())
}

func TestOpenSystemSuite(t *testing.T) {
	suite.Run(t, new(OpenSystemSuite))
}
