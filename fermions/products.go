// SPDX-License-Identifier: MIT

// Package fermions: FermionProduct and HermitianFermionProduct.
//
// Fermionic ladder operators anticommute, so every reordering of indices is
// tracked as a sign and a repeated index within creators or annihilators
// makes the product vanish.
package fermions

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

// FermionProduct is c†_{i1}...c†_{ik} a_{j1}...a_{jl} with strictly
// increasing creators and annihilators. The zero value is the identity.
type FermionProduct struct {
	ladder core.Ladder
}

// NewFermionProduct validates that both lists are strictly increasing and
// non-negative.
func NewFermionProduct(creators, annihilators []int) (FermionProduct, error) {
	l := core.Ladder{Creators: creators, Annihilators: annihilators}.Clone()
	if err := checkIncreasing(l); err != nil {
		return FermionProduct{}, err
	}

	return FermionProduct{ladder: l}, nil
}

func checkIncreasing(l core.Ladder) error {
	if err := l.CheckNonNegative(); err != nil {
		return err
	}
	for _, idx := range [][]int{l.Creators, l.Annihilators} {
		for k := 1; k < len(idx); k++ {
			if idx[k-1] >= idx[k] {
				return fmt.Errorf("%w: %v", core.ErrIncorrectlyOrderedIndices, idx)
			}
		}
	}

	return nil
}

// sortSigned sorts both lists, returning the sign of the permutation.
// A repeated index fails with core.ErrIndicesContainDoubles.
func sortSigned(l core.Ladder) (core.Ladder, float64, error) {
	if err := l.CheckNonNegative(); err != nil {
		return core.Ladder{}, 0, err
	}
	sign := 1.0
	out := l.Clone()
	for _, idx := range [][]int{out.Creators, out.Annihilators} {
		for i := 1; i < len(idx); i++ {
			for j := i; j > 0 && idx[j-1] >= idx[j]; j-- {
				if idx[j-1] == idx[j] {
					return core.Ladder{}, 0, fmt.Errorf("%w: mode %d", core.ErrIndicesContainDoubles, idx[j])
				}
				idx[j-1], idx[j] = idx[j], idx[j-1]
				sign = -sign
			}
		}
	}

	return out, sign, nil
}

// CreateValidPair sorts both lists and negates value for an odd permutation.
func CreateValidPair(creators, annihilators []int, value calc.Complex) (FermionProduct, calc.Complex, error) {
	l, sign, err := sortSigned(core.Ladder{Creators: creators, Annihilators: annihilators})
	if err != nil {
		return FermionProduct{}, calc.Complex{}, err
	}

	return FermionProduct{ladder: l}, value.Scale(sign), nil
}

// ParseFermionProduct reads the canonical "c{i}...a{j}..." form.
func ParseFermionProduct(s string) (FermionProduct, error) {
	l, err := core.ParseLadder(s)
	if err != nil {
		return FermionProduct{}, err
	}

	return NewFermionProduct(l.Creators, l.Annihilators)
}

// Creators returns the creator modes in increasing order.
func (p FermionProduct) Creators() []int { return slices.Clone(p.ladder.Creators) }

// Annihilators returns the annihilator modes in increasing order.
func (p FermionProduct) Annihilators() []int { return slices.Clone(p.ladder.Annihilators) }

// Ladder returns a copy of the underlying index lists.
func (p FermionProduct) Ladder() core.Ladder { return p.ladder.Clone() }

// Shape counts creators and annihilators.
func (p FermionProduct) Shape() core.LadderShape { return p.ladder.Shape() }

// Len returns the total number of ladder operators.
func (p FermionProduct) Len() int { return p.ladder.Len() }

// CurrentNumberModes returns the highest mode + 1.
func (p FermionProduct) CurrentNumberModes() int { return p.ladder.Extent() }

// String renders the canonical form, "I" for the identity.
func (p FermionProduct) String() string { return p.ladder.String() }

// MarshalText implements encoding.TextMarshaler.
func (p FermionProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *FermionProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseFermionProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// HermitianConjugate returns p† in sorted form and the sign picked up by
// reversing both lists.
func (p FermionProduct) HermitianConjugate() (FermionProduct, float64) {
	conj := p.ladder.Swapped()
	slices.Reverse(conj.Creators)
	slices.Reverse(conj.Annihilators)
	l, sign, err := sortSigned(conj)
	if err != nil {
		panic("fermions: internal invariant violated: " + err.Error())
	}

	return FermionProduct{ladder: l}, sign
}

// IsNaturalHermitian reports whether p equals its conjugate.
func (p FermionProduct) IsNaturalHermitian() bool { return p.ladder.IsNaturalHermitian() }

// RemapModes relabels modes through mapping and returns the sign of the
// reordering.
func (p FermionProduct) RemapModes(mapping map[int]int) (FermionProduct, float64, error) {
	l, err := p.ladder.Remap(mapping)
	if err != nil {
		return FermionProduct{}, 0, err
	}
	l, sign, err := sortSigned(l)
	if err != nil {
		return FermionProduct{}, 0, err
	}

	return FermionProduct{ladder: l}, sign, nil
}

// Compare orders products by length, then creators, then annihilators.
func (p FermionProduct) Compare(other FermionProduct) int { return p.ladder.Compare(other.ladder) }

// Equal reports whether both products are identical.
func (p FermionProduct) Equal(other FermionProduct) bool { return p.Compare(other) == 0 }

// Multiply normal-orders p·other with {a_i, c†_j} = δ_ij. Branches with a
// repeated index vanish; equal branches are merged.
func (p FermionProduct) Multiply(other FermionProduct) []core.Term[FermionProduct] {
	branches := core.NormalOrder(p.ladder, other.ladder, -1)
	terms := make([]core.Term[FermionProduct], 0, len(branches))
	for _, b := range branches {
		l, sign, err := sortSigned(b.Ladder)
		if err != nil {
			continue
		}
		terms = append(terms, core.Term[FermionProduct]{
			Product:     FermionProduct{ladder: l},
			Coefficient: calc.NewComplex(b.Factor*sign, 0),
		})
	}

	return core.MergeTerms(terms)
}

// HermitianFermionProduct stands for h + h† with h the canonical member of
// the pair (see core.Ladder.CheckHermitianOrder).
type HermitianFermionProduct struct {
	ladder core.Ladder
}

// NewHermitianFermionProduct validates strict ordering and the canonical
// member rule.
func NewHermitianFermionProduct(creators, annihilators []int) (HermitianFermionProduct, error) {
	l := core.Ladder{Creators: creators, Annihilators: annihilators}.Clone()
	if err := checkIncreasing(l); err != nil {
		return HermitianFermionProduct{}, err
	}
	if err := l.CheckHermitianOrder(); err != nil {
		return HermitianFermionProduct{}, err
	}

	return HermitianFermionProduct{ladder: l}, nil
}

// CreateValidHermitianPair sorts both lists with sign tracking and, when the
// result is the non-canonical member p = s·h†, returns h with conj(value)·s.
func CreateValidHermitianPair(creators, annihilators []int, value calc.Complex) (HermitianFermionProduct, calc.Complex, error) {
	p, v, err := CreateValidPair(creators, annihilators, value)
	if err != nil {
		return HermitianFermionProduct{}, calc.Complex{}, err
	}

	return canonical(p, v)
}

func canonical(p FermionProduct, v calc.Complex) (HermitianFermionProduct, calc.Complex, error) {
	if !p.ladder.NeedsConjugation() {
		return HermitianFermionProduct{ladder: p.ladder}, v, nil
	}
	conj, sign := p.HermitianConjugate()

	return HermitianFermionProduct{ladder: conj.ladder}, v.Conj().Scale(sign), nil
}

// ParseHermitianFermionProduct reads the canonical form.
func ParseHermitianFermionProduct(s string) (HermitianFermionProduct, error) {
	l, err := core.ParseLadder(s)
	if err != nil {
		return HermitianFermionProduct{}, err
	}

	return NewHermitianFermionProduct(l.Creators, l.Annihilators)
}

// Creators returns the creator modes in increasing order.
func (h HermitianFermionProduct) Creators() []int { return slices.Clone(h.ladder.Creators) }

// Annihilators returns the annihilator modes in increasing order.
func (h HermitianFermionProduct) Annihilators() []int { return slices.Clone(h.ladder.Annihilators) }

// Shape counts creators and annihilators.
func (h HermitianFermionProduct) Shape() core.LadderShape { return h.ladder.Shape() }

// Len returns the total number of ladder operators.
func (h HermitianFermionProduct) Len() int { return h.ladder.Len() }

// CurrentNumberModes returns the highest mode + 1.
func (h HermitianFermionProduct) CurrentNumberModes() int { return h.ladder.Extent() }

// String renders the canonical form.
func (h HermitianFermionProduct) String() string { return h.ladder.String() }

// MarshalText implements encoding.TextMarshaler.
func (h HermitianFermionProduct) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HermitianFermionProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseHermitianFermionProduct(string(text))
	if err != nil {
		return err
	}
	*h = parsed

	return nil
}

// HermitianConjugate returns h itself.
func (h HermitianFermionProduct) HermitianConjugate() (HermitianFermionProduct, float64) { return h, 1 }

// IsNaturalHermitian reports whether the canonical member is its own conjugate.
func (h HermitianFermionProduct) IsNaturalHermitian() bool { return h.ladder.IsNaturalHermitian() }

// Plain returns the canonical member as a FermionProduct.
func (h HermitianFermionProduct) Plain() FermionProduct {
	return FermionProduct{ladder: h.ladder.Clone()}
}

// Expand returns the plain terms h stands for: (h, 1) and, unless natural
// hermitian, (h†, sign).
func (h HermitianFermionProduct) Expand() []core.Term[FermionProduct] {
	p := h.Plain()
	out := []core.Term[FermionProduct]{{Product: p, Coefficient: calc.NewComplex(1, 0)}}
	if !h.IsNaturalHermitian() {
		conj, sign := p.HermitianConjugate()
		out = append(out, core.Term[FermionProduct]{Product: conj, Coefficient: calc.NewComplex(sign, 0)})
	}

	return out
}

// RemapModes relabels modes and re-canonicalizes with value.
func (h HermitianFermionProduct) RemapModes(mapping map[int]int, value calc.Complex) (HermitianFermionProduct, calc.Complex, error) {
	p, sign, err := h.Plain().RemapModes(mapping)
	if err != nil {
		return HermitianFermionProduct{}, calc.Complex{}, err
	}

	return canonical(p, value.Scale(sign))
}

// Compare orders products by length, then creators, then annihilators.
func (h HermitianFermionProduct) Compare(other HermitianFermionProduct) int {
	return h.ladder.Compare(other.ladder)
}

// Equal reports whether both products are identical.
func (h HermitianFermionProduct) Equal(other HermitianFermionProduct) bool {
	return h.Compare(other) == 0
}

// Multiply expands both keys and multiplies every combination.
func (h HermitianFermionProduct) Multiply(other HermitianFermionProduct) []core.Term[FermionProduct] {
	var terms []core.Term[FermionProduct]
	for _, l := range h.Expand() {
		for _, r := range other.Expand() {
			for _, t := range l.Product.Multiply(r.Product) {
				t.Coefficient = t.Coefficient.Mul(l.Coefficient).Mul(r.Coefficient)
				terms = append(terms, t)
			}
		}
	}

	return core.MergeTerms(terms)
}
