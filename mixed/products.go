// SPDX-License-Identifier: MIT

// Package mixed: MixedProduct, HermitianMixedProduct and
// MixedDecoherenceProduct.
package mixed

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/quantops/bosons"
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/fermions"
	"github.com/katalvlaran/quantops/spins"
)

// MixedProduct is a tuple of Pauli, boson and fermion products, one per
// subsystem.
type MixedProduct struct {
	t tuple[spins.PauliProduct]
}

// NewMixedProduct builds a product from its subsystem operands.
func NewMixedProduct(s []spins.PauliProduct, b []bosons.BosonProduct, f []fermions.FermionProduct) MixedProduct {
	return MixedProduct{t: newTuple(s, b, f)}
}

// ParseMixedProduct reads the "S..:B..:F..:" form.
func ParseMixedProduct(s string) (MixedProduct, error) {
	t, err := parseTuple(s, spins.ParsePauliProduct)
	if err != nil {
		return MixedProduct{}, err
	}

	return MixedProduct{t: t}, nil
}

// Spins returns the spin operands.
func (p MixedProduct) Spins() []spins.PauliProduct { return slices.Clone(p.t.spins) }

// Bosons returns the boson operands.
func (p MixedProduct) Bosons() []bosons.BosonProduct { return slices.Clone(p.t.bosons) }

// Fermions returns the fermion operands.
func (p MixedProduct) Fermions() []fermions.FermionProduct { return slices.Clone(p.t.fermions) }

// Counts returns the number of spin, boson and fermion subsystems.
func (p MixedProduct) Counts() [3]int { return p.t.counts() }

// Extents returns the current number of spins or modes per subsystem.
func (p MixedProduct) Extents() core.Subsystems { return p.t.extents() }

// IsIdentity reports whether every operand is the identity.
func (p MixedProduct) IsIdentity() bool { return p.t.isIdentity() }

// String renders the canonical form.
func (p MixedProduct) String() string { return p.t.String() }

// MarshalText implements encoding.TextMarshaler.
func (p MixedProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *MixedProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseMixedProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// HermitianConjugate conjugates every subsystem.
func (p MixedProduct) HermitianConjugate() (MixedProduct, float64) {
	t, sign := p.t.conjugate()
	return MixedProduct{t: t}, sign
}

// IsNaturalHermitian reports whether every subsystem is its own conjugate.
func (p MixedProduct) IsNaturalHermitian() bool { return p.t.isNaturalHermitian() }

// Compare orders products subsystem by subsystem.
func (p MixedProduct) Compare(other MixedProduct) int { return p.t.compare(other.t) }

// Equal reports whether both products are identical.
func (p MixedProduct) Equal(other MixedProduct) bool { return p.Compare(other) == 0 }

// Multiply returns the expansion of p·other. Operands must have the same
// subsystem counts (*core.SubsystemError otherwise).
func (p MixedProduct) Multiply(other MixedProduct) ([]core.Term[MixedProduct], error) {
	branches, err := p.t.multiply(other.t)
	if err != nil {
		return nil, err
	}

	return collect(branches, func(t tuple[spins.PauliProduct]) MixedProduct { return MixedProduct{t: t} }), nil
}

func collect[S spinPart[S], K core.Key](branches []tupleTerm[S], wrap func(tuple[S]) K) []core.Term[K] {
	terms := make([]core.Term[K], len(branches))
	for i, br := range branches {
		terms[i] = core.Term[K]{Product: wrap(br.t), Coefficient: br.c}
	}

	return core.MergeTerms(terms)
}

// HermitianMixedProduct stands for h + h†. The canonical member is decided by
// the first boson subsystem that is not its own conjugate, then by the
// fermion subsystems.
type HermitianMixedProduct struct {
	t tuple[spins.PauliProduct]
}

// NewHermitianMixedProduct validates that the operands form the canonical
// member of their pair (*core.MinimumIndexError otherwise).
func NewHermitianMixedProduct(s []spins.PauliProduct, b []bosons.BosonProduct, f []fermions.FermionProduct) (HermitianMixedProduct, error) {
	t := newTuple(s, b, f)
	if err := t.hermitianOrder(); err != nil {
		return HermitianMixedProduct{}, err
	}

	return HermitianMixedProduct{t: t}, nil
}

// CreateValidHermitianPair returns the canonical member for the operands
// with value adjusted: when the operands are the conjugate member, every
// subsystem is conjugated and value becomes conj(value) times the prefactor.
// A non-real value on a natural-hermitian result fails with
// core.ErrNonHermitianOperator.
func CreateValidHermitianPair(s []spins.PauliProduct, b []bosons.BosonProduct, f []fermions.FermionProduct, value calc.Complex) (HermitianMixedProduct, calc.Complex, error) {
	t := newTuple(s, b, f)
	if t.hermitianOrder() != nil {
		var sign float64
		t, sign = t.conjugate()
		value = value.Conj().Scale(sign)
	}
	if t.isNaturalHermitian() && !value.IsReal() {
		return HermitianMixedProduct{}, calc.Complex{}, fmt.Errorf("%w: %s is its own conjugate but has coefficient %s", core.ErrNonHermitianOperator, t, value)
	}

	return HermitianMixedProduct{t: t}, value, nil
}

// ParseHermitianMixedProduct reads the canonical form.
func ParseHermitianMixedProduct(s string) (HermitianMixedProduct, error) {
	t, err := parseTuple(s, spins.ParsePauliProduct)
	if err != nil {
		return HermitianMixedProduct{}, err
	}
	if err := t.hermitianOrder(); err != nil {
		return HermitianMixedProduct{}, err
	}

	return HermitianMixedProduct{t: t}, nil
}

// Spins returns the spin operands.
func (h HermitianMixedProduct) Spins() []spins.PauliProduct { return slices.Clone(h.t.spins) }

// Bosons returns the boson operands.
func (h HermitianMixedProduct) Bosons() []bosons.BosonProduct { return slices.Clone(h.t.bosons) }

// Fermions returns the fermion operands.
func (h HermitianMixedProduct) Fermions() []fermions.FermionProduct {
	return slices.Clone(h.t.fermions)
}

// Counts returns the number of spin, boson and fermion subsystems.
func (h HermitianMixedProduct) Counts() [3]int { return h.t.counts() }

// Extents returns the current number of spins or modes per subsystem.
func (h HermitianMixedProduct) Extents() core.Subsystems { return h.t.extents() }

// IsIdentity reports whether every operand is the identity.
func (h HermitianMixedProduct) IsIdentity() bool { return h.t.isIdentity() }

// String renders the canonical form.
func (h HermitianMixedProduct) String() string { return h.t.String() }

// MarshalText implements encoding.TextMarshaler.
func (h HermitianMixedProduct) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HermitianMixedProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseHermitianMixedProduct(string(text))
	if err != nil {
		return err
	}
	*h = parsed

	return nil
}

// HermitianConjugate returns h itself.
func (h HermitianMixedProduct) HermitianConjugate() (HermitianMixedProduct, float64) { return h, 1 }

// IsNaturalHermitian reports whether the canonical member is its own conjugate.
func (h HermitianMixedProduct) IsNaturalHermitian() bool { return h.t.isNaturalHermitian() }

// Plain returns the canonical member as a MixedProduct.
func (h HermitianMixedProduct) Plain() MixedProduct {
	return MixedProduct{t: newTuple(h.t.spins, h.t.bosons, h.t.fermions)}
}

// Expand returns (h, 1) and, unless natural hermitian, (h†, prefactor).
func (h HermitianMixedProduct) Expand() []core.Term[MixedProduct] {
	p := h.Plain()
	out := []core.Term[MixedProduct]{{Product: p, Coefficient: calc.NewComplex(1, 0)}}
	if !h.IsNaturalHermitian() {
		conj, sign := p.HermitianConjugate()
		out = append(out, core.Term[MixedProduct]{Product: conj, Coefficient: calc.NewComplex(sign, 0)})
	}

	return out
}

// Compare orders products subsystem by subsystem.
func (h HermitianMixedProduct) Compare(other HermitianMixedProduct) int { return h.t.compare(other.t) }

// Equal reports whether both products are identical.
func (h HermitianMixedProduct) Equal(other HermitianMixedProduct) bool { return h.Compare(other) == 0 }

// Multiply expands both keys and multiplies every combination.
func (h HermitianMixedProduct) Multiply(other HermitianMixedProduct) ([]core.Term[MixedProduct], error) {
	var terms []core.Term[MixedProduct]
	for _, l := range h.Expand() {
		for _, r := range other.Expand() {
			prod, err := l.Product.Multiply(r.Product)
			if err != nil {
				return nil, err
			}
			for _, t := range prod {
				t.Coefficient = t.Coefficient.Mul(l.Coefficient).Mul(r.Coefficient)
				terms = append(terms, t)
			}
		}
	}

	return core.MergeTerms(terms), nil
}

// MixedDecoherenceProduct is a tuple of decoherence, boson and fermion
// products. It keys mixed noise operators.
type MixedDecoherenceProduct struct {
	t tuple[spins.DecoherenceProduct]
}

// NewMixedDecoherenceProduct builds a product from its subsystem operands.
func NewMixedDecoherenceProduct(s []spins.DecoherenceProduct, b []bosons.BosonProduct, f []fermions.FermionProduct) MixedDecoherenceProduct {
	return MixedDecoherenceProduct{t: newTuple(s, b, f)}
}

// ParseMixedDecoherenceProduct reads the "S..:B..:F..:" form with
// decoherence spin operands.
func ParseMixedDecoherenceProduct(s string) (MixedDecoherenceProduct, error) {
	t, err := parseTuple(s, spins.ParseDecoherenceProduct)
	if err != nil {
		return MixedDecoherenceProduct{}, err
	}

	return MixedDecoherenceProduct{t: t}, nil
}

// Spins returns the spin operands.
func (d MixedDecoherenceProduct) Spins() []spins.DecoherenceProduct { return slices.Clone(d.t.spins) }

// Bosons returns the boson operands.
func (d MixedDecoherenceProduct) Bosons() []bosons.BosonProduct { return slices.Clone(d.t.bosons) }

// Fermions returns the fermion operands.
func (d MixedDecoherenceProduct) Fermions() []fermions.FermionProduct {
	return slices.Clone(d.t.fermions)
}

// Counts returns the number of spin, boson and fermion subsystems.
func (d MixedDecoherenceProduct) Counts() [3]int { return d.t.counts() }

// Extents returns the current number of spins or modes per subsystem.
func (d MixedDecoherenceProduct) Extents() core.Subsystems { return d.t.extents() }

// IsIdentity reports whether every operand is the identity.
func (d MixedDecoherenceProduct) IsIdentity() bool { return d.t.isIdentity() }

// String renders the canonical form.
func (d MixedDecoherenceProduct) String() string { return d.t.String() }

// MarshalText implements encoding.TextMarshaler.
func (d MixedDecoherenceProduct) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *MixedDecoherenceProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseMixedDecoherenceProduct(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// HermitianConjugate conjugates every subsystem.
func (d MixedDecoherenceProduct) HermitianConjugate() (MixedDecoherenceProduct, float64) {
	t, sign := d.t.conjugate()
	return MixedDecoherenceProduct{t: t}, sign
}

// IsNaturalHermitian reports whether every subsystem is its own conjugate.
func (d MixedDecoherenceProduct) IsNaturalHermitian() bool { return d.t.isNaturalHermitian() }

// Compare orders products subsystem by subsystem.
func (d MixedDecoherenceProduct) Compare(other MixedDecoherenceProduct) int {
	return d.t.compare(other.t)
}

// Equal reports whether both products are identical.
func (d MixedDecoherenceProduct) Equal(other MixedDecoherenceProduct) bool {
	return d.Compare(other) == 0
}

// Multiply returns the expansion of d·other.
func (d MixedDecoherenceProduct) Multiply(other MixedDecoherenceProduct) ([]core.Term[MixedDecoherenceProduct], error) {
	branches, err := d.t.multiply(other.t)
	if err != nil {
		return nil, err
	}

	return collect(branches, func(t tuple[spins.DecoherenceProduct]) MixedDecoherenceProduct {
		return MixedDecoherenceProduct{t: t}
	}), nil
}
