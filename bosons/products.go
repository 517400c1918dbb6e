// SPDX-License-Identifier: MIT

// Package bosons: BosonProduct and HermitianBosonProduct.
//
// Both products keep creators and annihilators sorted; bosonic indices may
// repeat (c0c0 creates two quanta in mode 0).
package bosons

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

// BosonProduct is a normal-ordered product c†_{i1}...c†_{ik} a_{j1}...a_{jl}.
// The zero value is the identity.
type BosonProduct struct {
	ladder core.Ladder
}

// NewBosonProduct sorts both index lists. A negative mode fails with
// core.ErrNegativeIndex.
func NewBosonProduct(creators, annihilators []int) (BosonProduct, error) {
	l := core.Ladder{Creators: creators, Annihilators: annihilators}
	if err := l.CheckNonNegative(); err != nil {
		return BosonProduct{}, fmt.Errorf("NewBosonProduct: %w", err)
	}

	return BosonProduct{ladder: sorted(l)}, nil
}

// CreateValidPair builds the product of the given lists; bosonic reordering
// never changes value.
func CreateValidPair(creators, annihilators []int, value calc.Complex) (BosonProduct, calc.Complex, error) {
	p, err := NewBosonProduct(creators, annihilators)
	if err != nil {
		return BosonProduct{}, calc.Complex{}, err
	}

	return p, value, nil
}

func sorted(l core.Ladder) core.Ladder {
	l = l.Clone()
	slices.Sort(l.Creators)
	slices.Sort(l.Annihilators)

	return l
}

// ParseBosonProduct reads the canonical "c{i}...a{j}..." form.
func ParseBosonProduct(s string) (BosonProduct, error) {
	l, err := core.ParseLadder(s)
	if err != nil {
		return BosonProduct{}, err
	}

	return BosonProduct{ladder: sorted(l)}, nil
}

// Creators returns the creator modes in increasing order.
func (p BosonProduct) Creators() []int { return slices.Clone(p.ladder.Creators) }

// Annihilators returns the annihilator modes in increasing order.
func (p BosonProduct) Annihilators() []int { return slices.Clone(p.ladder.Annihilators) }

// Ladder returns a copy of the underlying index lists.
func (p BosonProduct) Ladder() core.Ladder { return p.ladder.Clone() }

// Shape counts creators and annihilators.
func (p BosonProduct) Shape() core.LadderShape { return p.ladder.Shape() }

// Len returns the total number of ladder operators.
func (p BosonProduct) Len() int { return p.ladder.Len() }

// CurrentNumberModes returns the highest mode + 1.
func (p BosonProduct) CurrentNumberModes() int { return p.ladder.Extent() }

// String renders the canonical form, "I" for the identity.
func (p BosonProduct) String() string { return p.ladder.String() }

// MarshalText implements encoding.TextMarshaler.
func (p BosonProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *BosonProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseBosonProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// HermitianConjugate swaps creators and annihilators.
func (p BosonProduct) HermitianConjugate() (BosonProduct, float64) {
	return BosonProduct{ladder: p.ladder.Swapped()}, 1
}

// IsNaturalHermitian reports whether p equals its conjugate.
func (p BosonProduct) IsNaturalHermitian() bool { return p.ladder.IsNaturalHermitian() }

// RemapModes relabels modes through mapping.
func (p BosonProduct) RemapModes(mapping map[int]int) (BosonProduct, error) {
	l, err := p.ladder.Remap(mapping)
	if err != nil {
		return BosonProduct{}, err
	}

	return BosonProduct{ladder: sorted(l)}, nil
}

// Compare orders products by length, then creators, then annihilators.
func (p BosonProduct) Compare(other BosonProduct) int { return p.ladder.Compare(other.ladder) }

// Equal reports whether both products are identical.
func (p BosonProduct) Equal(other BosonProduct) bool { return p.Compare(other) == 0 }

// Multiply normal-orders p·other with [a_i, c†_j] = δ_ij. Branches that
// land on the same product are merged, so coefficients count multiplicity.
func (p BosonProduct) Multiply(other BosonProduct) []core.Term[BosonProduct] {
	branches := core.NormalOrder(p.ladder, other.ladder, 1)
	terms := make([]core.Term[BosonProduct], 0, len(branches))
	for _, b := range branches {
		terms = append(terms, core.Term[BosonProduct]{
			Product:     BosonProduct{ladder: sorted(b.Ladder)},
			Coefficient: calc.NewComplex(b.Factor, 0),
		})
	}

	return core.MergeTerms(terms)
}

// HermitianBosonProduct stands for p + p† with p the canonical member: the
// first differing zipped (creator, annihilator) pair has the smaller creator,
// and creators never outlast equal annihilators.
type HermitianBosonProduct struct {
	ladder core.Ladder
}

// NewHermitianBosonProduct sorts both lists and rejects a non-canonical pair
// with a *core.MinimumIndexError.
func NewHermitianBosonProduct(creators, annihilators []int) (HermitianBosonProduct, error) {
	l := sorted(core.Ladder{Creators: creators, Annihilators: annihilators})
	if err := l.CheckNonNegative(); err != nil {
		return HermitianBosonProduct{}, fmt.Errorf("NewHermitianBosonProduct: %w", err)
	}
	if err := l.CheckHermitianOrder(); err != nil {
		return HermitianBosonProduct{}, err
	}

	return HermitianBosonProduct{ladder: l}, nil
}

// CreateValidHermitianPair returns the canonical member of the pair given by
// the lists, conjugating value when the lists describe the other member.
func CreateValidHermitianPair(creators, annihilators []int, value calc.Complex) (HermitianBosonProduct, calc.Complex, error) {
	l := sorted(core.Ladder{Creators: creators, Annihilators: annihilators})
	if err := l.CheckNonNegative(); err != nil {
		return HermitianBosonProduct{}, calc.Complex{}, fmt.Errorf("CreateValidHermitianPair: %w", err)
	}
	if l.NeedsConjugation() {
		return HermitianBosonProduct{ladder: l.Swapped()}, value.Conj(), nil
	}

	return HermitianBosonProduct{ladder: l}, value, nil
}

// ParseHermitianBosonProduct reads the canonical form.
func ParseHermitianBosonProduct(s string) (HermitianBosonProduct, error) {
	l, err := core.ParseLadder(s)
	if err != nil {
		return HermitianBosonProduct{}, err
	}

	return NewHermitianBosonProduct(l.Creators, l.Annihilators)
}

// Creators returns the creator modes in increasing order.
func (h HermitianBosonProduct) Creators() []int { return slices.Clone(h.ladder.Creators) }

// Annihilators returns the annihilator modes in increasing order.
func (h HermitianBosonProduct) Annihilators() []int { return slices.Clone(h.ladder.Annihilators) }

// Shape counts creators and annihilators.
func (h HermitianBosonProduct) Shape() core.LadderShape { return h.ladder.Shape() }

// Len returns the total number of ladder operators.
func (h HermitianBosonProduct) Len() int { return h.ladder.Len() }

// CurrentNumberModes returns the highest mode + 1.
func (h HermitianBosonProduct) CurrentNumberModes() int { return h.ladder.Extent() }

// String renders the canonical form.
func (h HermitianBosonProduct) String() string { return h.ladder.String() }

// MarshalText implements encoding.TextMarshaler.
func (h HermitianBosonProduct) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HermitianBosonProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseHermitianBosonProduct(string(text))
	if err != nil {
		return err
	}
	*h = parsed

	return nil
}

// HermitianConjugate returns h itself: the key already includes h†.
func (h HermitianBosonProduct) HermitianConjugate() (HermitianBosonProduct, float64) { return h, 1 }

// IsNaturalHermitian reports whether the canonical member is its own conjugate.
func (h HermitianBosonProduct) IsNaturalHermitian() bool { return h.ladder.IsNaturalHermitian() }

// Plain returns the canonical member as a BosonProduct.
func (h HermitianBosonProduct) Plain() BosonProduct { return BosonProduct{ladder: h.ladder.Clone()} }

// Expand returns the plain products h stands for: the canonical member and,
// unless natural hermitian, its conjugate.
func (h HermitianBosonProduct) Expand() []BosonProduct {
	p := h.Plain()
	if h.IsNaturalHermitian() {
		return []BosonProduct{p}
	}
	conj, _ := p.HermitianConjugate()

	return []BosonProduct{p, conj}
}

// RemapModes relabels modes and re-canonicalizes, conjugating value when the
// relabelled product becomes the other member of its pair.
func (h HermitianBosonProduct) RemapModes(mapping map[int]int, value calc.Complex) (HermitianBosonProduct, calc.Complex, error) {
	l, err := h.ladder.Remap(mapping)
	if err != nil {
		return HermitianBosonProduct{}, calc.Complex{}, err
	}
	return CreateValidHermitianPair(l.Creators, l.Annihilators, value)
}

// Compare orders products by length, then creators, then annihilators.
func (h HermitianBosonProduct) Compare(other HermitianBosonProduct) int {
	return h.ladder.Compare(other.ladder)
}

// Equal reports whether both products are identical.
func (h HermitianBosonProduct) Equal(other HermitianBosonProduct) bool { return h.Compare(other) == 0 }

// Multiply expands both keys into their plain members and multiplies every
// combination.
func (h HermitianBosonProduct) Multiply(other HermitianBosonProduct) []core.Term[BosonProduct] {
	var terms []core.Term[BosonProduct]
	for _, l := range h.Expand() {
		for _, r := range other.Expand() {
			terms = append(terms, l.Multiply(r)...)
		}
	}

	return core.MergeTerms(terms)
}
