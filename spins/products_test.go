// SPDX-License-Identifier: MIT

package spins_test

import (
	"testing"

	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/spins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseRoundTrip checks canonical ordering and string round trips.
func TestParseRoundTrip(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, want string }{
		{"I", "I"},
		{"", "I"},
		{"0X", "0X"},
		{"1X0Z", "0Z1X"},
		{"3Y10Z", "3Y10Z"},
		{"0I2X", "2X"},
	}
	for _, tc := range cases {
		p := pauli(t, tc.in)
		assert.Equal(t, tc.want, p.String(), tc.in)
		again := pauli(t, p.String())
		assert.True(t, again.Equal(p))
	}

	d := deco(t, "2Z0iY1X")
	assert.Equal(t, "0iY1X2Z", d.String())

	pm, err := spins.ParsePlusMinusProduct("1-0+2Z")
	require.NoError(t, err)
	assert.Equal(t, "0+1-2Z", pm.String())
}

// TestParseErrors checks the error taxonomy of the product grammar.
func TestParseErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want error
	}{
		{"X0", core.ErrFromStringFailed},
		{"0A", core.ErrIncorrectPauliEntry},
		{"0X0Z", core.ErrFromStringFailed},
		{"0X1", core.ErrFromStringFailed},
	}
	for _, tc := range cases {
		_, err := spins.ParsePauliProduct(tc.in)
		assert.ErrorIs(t, err, tc.want, tc.in)
	}
	_, err := spins.ParseDecoherenceProduct("0Y")
	assert.ErrorIs(t, err, core.ErrIncorrectPauliEntry, "Y is not a decoherence operator")
}

// TestHermitianConjugate covers Pauli self-adjointness and the iY sign.
func TestHermitianConjugate(t *testing.T) {
	t.Parallel()
	p := pauli(t, "0Z1X")
	conj, sign := p.HermitianConjugate()
	assert.True(t, conj.Equal(p))
	assert.Equal(t, 1.0, sign)

	d := deco(t, "0iY")
	dc, dsign := d.HermitianConjugate()
	assert.True(t, dc.Equal(d))
	assert.Equal(t, -1.0, dsign)
	assert.False(t, d.IsNaturalHermitian())
	assert.True(t, deco(t, "0iY1iY").IsNaturalHermitian())

	pm := spins.NewPlusMinusProduct().Plus(0).Z(1)
	pmc, _ := pm.HermitianConjugate()
	assert.Equal(t, "0-1Z", pmc.String())
	back, _ := pmc.HermitianConjugate()
	assert.True(t, back.Equal(pm), "conjugation is an involution")
	assert.False(t, pm.IsNaturalHermitian())
}

// TestMultiply spot-checks both multiplication tables.
func TestMultiply(t *testing.T) {
	t.Parallel()
	prod, phase := pauli(t, "0X1Z").Multiply(pauli(t, "0Y"))
	assert.Equal(t, "0Z1Z", prod.String())
	assert.Equal(t, 1i, phase)

	prod, phase = pauli(t, "0Z").Multiply(pauli(t, "0Z"))
	assert.Equal(t, "I", prod.String())
	assert.Equal(t, complex(1, 0), phase)

	dprod, dphase := deco(t, "0X").Multiply(deco(t, "0iY"))
	assert.Equal(t, "0Z", dprod.String())
	assert.Equal(t, complex(-1, 0), dphase)

	dprod, dphase = deco(t, "0iY").Multiply(deco(t, "0iY"))
	assert.Equal(t, "I", dprod.String())
	assert.Equal(t, complex(-1, 0), dphase)
}

// TestOrderingRemapConcatenate covers the remaining product utilities.
func TestOrderingRemapConcatenate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, pauli(t, "0X").Compare(pauli(t, "0X1Z")), "shorter first")
	assert.Equal(t, -1, pauli(t, "0X").Compare(pauli(t, "0Y")))
	assert.Equal(t, -1, pauli(t, "0Z").Compare(pauli(t, "1X")))
	assert.Equal(t, 2, pauli(t, "1X").CurrentNumberSpins())
	assert.Equal(t, 0, pauli(t, "I").CurrentNumberSpins())

	swapped, err := pauli(t, "0X1Z").RemapQubits(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	assert.Equal(t, "0Z1X", swapped.String())
	_, err = pauli(t, "0X1Z").RemapQubits(map[int]int{0: 1})
	assert.ErrorIs(t, err, core.ErrRemappingFailed)

	joined, err := pauli(t, "0X").Concatenate(pauli(t, "1Z"))
	require.NoError(t, err)
	assert.Equal(t, "0X1Z", joined.String())
	_, err = pauli(t, "0X").Concatenate(pauli(t, "0Z"))
	assert.ErrorIs(t, err, core.ErrProductIndexAlreadyOccupied)
}

// TestBasisConversions checks the single-product basis changes.
func TestBasisConversions(t *testing.T) {
	t.Parallel()
	p, f := deco(t, "0iY1X").ToPauli()
	assert.Equal(t, "0Y1X", p.String())
	assert.Equal(t, 1i, f)

	d, g := p.ToDecoherence()
	assert.Equal(t, "0iY1X", d.String())
	assert.Equal(t, complex(1, 0), f*g, "round trip factors cancel")

	terms := spins.NewPlusMinusProduct().Plus(0).ToPauli()
	require.Len(t, terms, 2)
	got := map[string]string{}
	for _, term := range terms {
		got[term.Product.String()] = term.Coefficient.String()
	}
	assert.Equal(t, map[string]string{"0X": "(5e-1 + i * 0e0)", "0Y": "(0e0 + i * 5e-1)"}, got)

	ladder := pauli(t, "0X").ToPlusMinus()
	require.Len(t, ladder, 2)
	assert.Equal(t, "0+", ladder[0].Product.String())
	assert.Equal(t, "0-", ladder[1].Product.String())
}

// TestTextMarshaling checks the encoding.TextMarshaler round trip.
func TestTextMarshaling(t *testing.T) {
	t.Parallel()
	text, err := deco(t, "0X3iY").MarshalText()
	require.NoError(t, err)
	var d spins.DecoherenceProduct
	require.NoError(t, d.UnmarshalText(text))
	assert.Equal(t, "0X3iY", d.String())
	assert.Error(t, d.UnmarshalText([]byte("Q")))
}

// recoverError runs f and returns the error it panicked with.
func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "no panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
	}()
	f()

	return nil
}

// TestNegativeSiteIndex checks that no product can hold a negative site.
func TestNegativeSiteIndex(t *testing.T) {
	t.Parallel()
	builders := map[string]func(){
		"pauli X":         func() { spins.NewPauliProduct().X(-1) },
		"pauli Set":       func() { spins.NewPauliProduct().Set(-3, spins.PauliZ) },
		"decoherence IY":  func() { spins.NewDecoherenceProduct().IY(-1) },
		"plus-minus plus": func() { spins.NewPlusMinusProduct().Plus(-2) },
	}
	for name, build := range builders {
		assert.ErrorIs(t, recoverError(t, build), core.ErrNegativeIndex, name)
	}
	// Identity still panics: the index is rejected before the operator.
	assert.ErrorIs(t, recoverError(t, func() { spins.NewPauliProduct().Set(-1, spins.PauliI) }), core.ErrNegativeIndex)

	_, err := pauli(t, "0X1Z").RemapQubits(map[int]int{1: -1})
	assert.ErrorIs(t, err, core.ErrRemappingFailed)
	assert.ErrorIs(t, err, core.ErrNegativeIndex)

	_, err = spins.ParsePauliProduct("-1X")
	assert.ErrorIs(t, err, core.ErrFromStringFailed)
}
