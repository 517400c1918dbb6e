// SPDX-License-Identifier: MIT

package fermions_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/fermions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TestOperatorMul checks the anticommutator signs on whole operators.
func TestOperatorMul(t *testing.T) {
	t.Parallel()
	a := fermions.NewFermionOperator()
	require.NoError(t, a.AddTerm(fermion(t, "a0"), re(2)))
	c := fermions.NewFermionOperator()
	require.NoError(t, c.AddTerm(fermion(t, "c0"), calc.NewComplex(0, 1)))

	prod, err := a.Mul(c)
	require.NoError(t, err)
	assert.Equal(t, 2, prod.Len())
	assert.True(t, prod.Get(fermion(t, "c0a0")).Equal(calc.NewComplex(0, -2)))
	assert.True(t, prod.Get(fermion(t, "I")).Equal(calc.NewComplex(0, 2)))

	sq, err := c.Mul(c)
	require.NoError(t, err)
	assert.True(t, sq.IsEmpty(), "c0·c0 vanishes")

	_, err = a.Mul(fermions.NewFermionOperator(core.WithNumberModes(1)))
	assert.ErrorIs(t, err, core.ErrMismatchedNumberModes)
}

// TestOperatorConjugateAndRemap checks signs picked up by reordering.
func TestOperatorConjugateAndRemap(t *testing.T) {
	t.Parallel()
	op := fermions.NewFermionOperator(core.WithNumberModes(3))
	require.NoError(t, op.AddTerm(fermion(t, "c0c1a2"), calc.NewComplex(1, 1)))
	require.ErrorIs(t, op.AddTerm(fermion(t, "c3"), re(1)), core.ErrNumberModesExceeded)

	conj := op.HermitianConjugate()
	assert.True(t, conj.Get(fermion(t, "c2a0a1")).Equal(calc.NewComplex(-1, 1)))
	assert.True(t, conj.HermitianConjugate().Equal(op))

	swapped, err := op.RemapModes(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	assert.True(t, swapped.Get(fermion(t, "c0c1a2")).Equal(calc.NewComplex(-1, -1)))

	sep, rem := op.SeparateIntoNTerms(core.LadderShape{Creators: 2, Annihilators: 1})
	assert.Equal(t, 1, sep.Len())
	assert.True(t, rem.IsEmpty())
}

// TestHamiltonianString renders a natural-hermitian interaction.
func TestHamiltonianString(t *testing.T) {
	t.Parallel()
	h := fermions.NewFermionHamiltonian()
	key, err := fermions.NewHermitianFermionProduct([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	require.NoError(t, h.AddTerm(key, re(0.1)))
	assert.Equal(t, "FermionHamiltonian(2){\nc0c1a0a1: (1e-1 + i * 0e0),\n}", h.String())

	assert.ErrorIs(t, h.AddTerm(key, calc.NewComplex(0, 1)), core.ErrNonHermitianOperator)
}

// TestHamiltonianToOperator expands keys with the reordering sign.
func TestHamiltonianToOperator(t *testing.T) {
	t.Parallel()
	h := fermions.NewFermionHamiltonian()
	require.NoError(t, h.AddTerm(hfermion(t, "c0a1"), calc.NewComplex(1, 1)))
	require.NoError(t, h.AddTerm(hfermion(t, "c0c1a2"), re(1)))

	op := h.ToOperator()
	assert.Equal(t, 4, op.Len())
	assert.True(t, op.Get(fermion(t, "c1a0")).Equal(calc.NewComplex(1, -1)))
	assert.True(t, op.Get(fermion(t, "c2a0a1")).Equal(re(-1)))
	assert.True(t, op.HermitianConjugate().Equal(op), "expanded Hamiltonian is hermitian")

	_, err := fermions.FermionHamiltonianFromOperator(op)
	var mErr *core.MinimumIndexError
	assert.ErrorAs(t, err, &mErr)

	remapped, err := h.RemapModes(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	assert.True(t, remapped.Get(hfermion(t, "c0a1")).Equal(calc.NewComplex(1, -1)))
	assert.True(t, remapped.Get(hfermion(t, "c0c1a2")).Equal(re(-1)))
}

// TestHamiltonianCodec round-trips through both formats.
func TestHamiltonianCodec(t *testing.T) {
	t.Parallel()
	h := fermions.NewFermionHamiltonian(core.WithNumberModes(3))
	require.NoError(t, h.AddTerm(hfermion(t, "c0a2"), calc.FromParts(calc.Symbol("t"), calc.NewFloat(0.5))))
	for _, format := range []core.Format{core.FormatJSON, core.FormatYAML} {
		codec := core.NewCodec(core.WithFormat(format))
		data, err := h.Encode(codec)
		require.NoError(t, err)
		back, err := fermions.DecodeFermionHamiltonian(codec, data)
		require.NoError(t, err, string(data))
		assert.True(t, back.Equal(h), format)
	}
}

type OpenSystemSuite struct {
	suite.Suite
	open *fermions.FermionLindbladOpenSystem
}

func (s *OpenSystemSuite) SetupTest() {
	s.open = fermions.NewFermionLindbladOpenSystem()
	s.Require().NoError(s.open.System().AddTerm(hfermion(s.T(), "c0a0"), re(1)))
	s.Require().NoError(s.open.Noise().AddTerm(core.NewPair(fermion(s.T(), "c0c1"), fermion(s.T(), "a0")), re(0.5)))
}

func (s *OpenSystemSuite) TestNoiseRemapSign() {
	noise, err := s.open.Noise().RemapModes(map[int]int{0: 1, 1: 0})
	s.Require().NoError(err)
	s.True(noise.Get(core.NewPair(fermion(s.T(), "c0c1"), fermion(s.T(), "a1"))).Equal(re(-0.5)))
}

func (s *OpenSystemSuite) TestNoiseRejectsIdentity() {
	err := s.open.Noise().AddTerm(core.NewPair(fermion(s.T(), "c0"), fermion(s.T(), "I")), re(1))
	s.ErrorIs(err, core.ErrInvalidLindbladTerms)
}

func (s *OpenSystemSuite) TestString() {
	s.Equal("FermionLindbladOpenSystem(2){\nSystem: {\nc0a0: (1e0 + i * 0e0),\n}\nNoise: {\n(c0c1, a0): (5e-1 + i * 0e0),\n}\n}", s.open.String())
}

func (s *OpenSystemSuite) TestJSONRoundTrip() {
	data, err := json.Marshal(s.open)
	s.Require().NoError(err)
	var back fermions.FermionLindbladOpenSystem
	s.Require().NoError(json.Unmarshal(data, &back))
	s.True(back.Equal(s.open))

	neg := s.open.Neg()
	sum, err := neg.Add(s.open)
	s.Require().NoError(err)
	system, noise := sum.Ungroup()
	s.True(system.IsEmpty())
	s.True(noise.IsEmpty())
}

func TestOpenSystemSuite(t *testing.T) {
	suite.Run(t, new(OpenSystemSuite))
}
