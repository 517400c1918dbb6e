// SPDX-License-Identifier: MIT

package spins_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
	"github.com/katalvlaran/quantops/spins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TestNoiseRejectsIdentity checks that traceless operands are enforced.
func TestNoiseRejectsIdentity(t *testing.T) {
	t.Parallel()
	noise := spins.NewPauliLindbladNoiseOperator()
	_, _, err := noise.Set(core.NewPair(deco(t, "I"), deco(t, "0Z")), re(1))
	require.ErrorIs(t, err, core.ErrInvalidLindbladTerms)
	err = noise.AddTerm(core.NewPair(deco(t, "0X"), deco(t, "I")), re(1))
	require.ErrorIs(t, err, core.ErrInvalidLindbladTerms)
	assert.True(t, noise.IsEmpty())
}

// TestAddNoiseFromFullOperators checks the conj(vr)·vl weighting and the
// identity skip.
func TestAddNoiseFromFullOperators(t *testing.T) {
	t.Parallel()
	left := spins.NewDecoherenceOperator()
	require.NoError(t, left.AddTerm(deco(t, "0X"), re(1)))
	require.NoError(t, left.AddTerm(deco(t, "I"), re(2)))
	right := spins.NewDecoherenceOperator()
	require.NoError(t, right.AddTerm(deco(t, "0Z"), calc.NewComplex(0, 1)))

	noise := spins.NewPauliLindbladNoiseOperator()
	require.NoError(t, noise.AddNoiseFromFullOperators(left, right, re(2)))
	assert.Equal(t, 1, noise.Len())
	assert.True(t, noise.Get(core.NewPair(deco(t, "0X"), deco(t, "0Z"))).Equal(calc.NewComplex(0, -2)))

	err := noise.AddNoiseFromFullOperators(spins.NewDecoherenceOperator(), right, re(1))
	assert.ErrorIs(t, err, core.ErrInvalidLindbladTerms)
	assert.Equal(t, 1, noise.Len(), "failed call leaves the receiver unchanged")
}

// TestDephasingSuperoperator is the pure dephasing scenario: (Z, Z) with
// rate 1 on one qubit gives Z⊗Z - I⊗I.
func TestDephasingSuperoperator(t *testing.T) {
	t.Parallel()
	noise := spins.NewPauliLindbladNoiseOperator()
	require.NoError(t, noise.AddTerm(core.NewPair(deco(t, "0Z"), deco(t, "0Z")), re(1)))

	got, err := noise.SparseMatrixSuperoperatorCOO(1)
	require.NoError(t, err)
	want := matrix.COO{Values: []complex128{-2, -2}, Rows: []int{1, 2}, Cols: []int{1, 2}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("superoperator mismatch (-want +got):\n%s", diff)
	}

	_, err = noise.SparseMatrixSuperoperatorCOO(0)
	assert.ErrorIs(t, err, core.ErrNumberSpinsExceeded)
}

// TestAmplitudeDampingTrace checks that every dissipator preserves the trace:
// the columns of the trace row (ρ00 + ρ11) sum to zero.
func TestAmplitudeDampingTrace(t *testing.T) {
	t.Parallel()
	lowering := spins.NewDecoherenceOperator()
	require.NoError(t, lowering.AddTerm(deco(t, "0X"), re(0.5)))
	require.NoError(t, lowering.AddTerm(deco(t, "0iY"), re(0.5)))
	noise := spins.NewPauliLindbladNoiseOperator()
	require.NoError(t, noise.AddNoiseFromFullOperators(lowering, lowering, re(1)))

	coo, err := noise.SparseMatrixSuperoperatorCOO(1)
	require.NoError(t, err)
	dense := coo.Dense(4)
	for col := 0; col < 4; col++ {
		trace := dense[0][col] + dense[3][col]
		assert.InDelta(t, 0, real(trace), 1e-12, "column %d", col)
		assert.InDelta(t, 0, imag(trace), 1e-12, "column %d", col)
	}
}

// TestPlusMinusNoiseRoundTrip converts noise to the ladder basis and back.
func TestPlusMinusNoiseRoundTrip(t *testing.T) {
	t.Parallel()
	noise := spins.NewPauliLindbladNoiseOperator()
	require.NoError(t, noise.AddTerm(core.NewPair(deco(t, "0X"), deco(t, "0iY")), calc.NewComplex(1, 0.5)))
	back := noise.ToPlusMinus().ToDecoherence().Truncate(1e-15)
	assert.True(t, back.Equal(noise), "got %s", back)
}

// OpenSystemSuite exercises grouping and the combined Liouvillian.
type OpenSystemSuite struct {
	suite.Suite
	system *spins.PauliLindbladOpenSystem
}

func (s *OpenSystemSuite) SetupTest() {
	h := spins.NewPauliHamiltonian()
	s.Require().NoError(h.AddTerm(spins.NewPauliProduct().X(0), calc.NewFloat(1)))
	noise := spins.NewPauliLindbladNoiseOperator()
	s.Require().NoError(noise.AddTerm(core.NewPair(spins.NewDecoherenceProduct().Z(0), spins.NewDecoherenceProduct().Z(0)), calc.NewComplex(1, 0)))
	sys, err := spins.GroupPauliLindbladOpenSystem(h, noise)
	s.Require().NoError(err)
	s.system = sys
}

func (s *OpenSystemSuite) TestGroupShapeMismatch() {
	_, err := spins.GroupPauliLindbladOpenSystem(spins.NewPauliHamiltonian(spins.WithNumberSpins(2)), spins.NewPauliLindbladNoiseOperator())
	s.ErrorIs(err, core.ErrMismatchedNumberSpins)
}

func (s *OpenSystemSuite) TestLiouvillian() {
	coo, err := s.system.SparseMatrixSuperoperatorCOO(1)
	s.Require().NoError(err)
	s.Equal(complex(0, 1), coo.At(0, 1), "-i(X⊗I) + i(I⊗X)")
	s.Equal(complex(0, -1), coo.At(0, 2))
	s.Equal(complex(-2, 0), coo.At(1, 1), "dephasing diagonal")

	h, noise := s.system.Ungroup()
	hc, err := h.SparseMatrixSuperoperatorCOO(1)
	s.Require().NoError(err)
	nc, err := noise.SparseMatrixSuperoperatorCOO(1)
	s.Require().NoError(err)
	s.Equal(coo.Len(), hc.Len()+nc.Len(), "parts do not overlap")
}

func (s *OpenSystemSuite) TestArithmetic() {
	double, err := s.system.Add(s.system)
	s.Require().NoError(err)
	s.True(double.System().Get(spins.NewPauliProduct().X(0)).Equal(calc.NewFloat(2)))
	zero, err := double.Sub(s.system.Scale(calc.NewFloat(2)))
	s.Require().NoError(err)
	s.True(zero.Equal(s.system.EmptyClone()))
	s.True(s.system.Neg().Neg().Equal(s.system))
}

func (s *OpenSystemSuite) TestString() {
	want := "PauliLindbladOpenSystem(1){\nSystem: {\n0X: 1e0,\n}\nNoise: {\n(0Z, 0Z): (1e0 + i * 0e0),\n}\n}"
	s.Equal(want, s.system.String())
}

func TestOpenSystemSuite(t *testing.T) {
	suite.Run(t, new(OpenSystemSuite))
}
