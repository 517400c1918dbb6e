// SPDX-License-Identifier: MIT

// Package spins: PlusMinusProduct, a tensor product of ladder operators.
package spins

import (
	"iter"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

// PlusMinusProduct is a product of σ+, σ- and Z on distinct qubits,
// e.g. "0+1-2Z". The zero value is the identity.
type PlusMinusProduct struct {
	sites siteList[PlusMinus]
}

// NewPlusMinusProduct returns the identity product.
func NewPlusMinusProduct() PlusMinusProduct { return PlusMinusProduct{} }

// Set returns p with op on qubit index; PlusMinusI removes the qubit.
// Panics on a negative index.
func (p PlusMinusProduct) Set(index int, op PlusMinus) PlusMinusProduct {
	return PlusMinusProduct{sites: p.sites.set(index, op)}
}

// Plus returns p with σ+ on qubit index.
func (p PlusMinusProduct) Plus(index int) PlusMinusProduct { return p.Set(index, PlusMinusPlus) }

// Minus returns p with σ- on qubit index.
func (p PlusMinusProduct) Minus(index int) PlusMinusProduct { return p.Set(index, PlusMinusMinus) }

// Z returns p with Z on qubit index.
func (p PlusMinusProduct) Z(index int) PlusMinusProduct { return p.Set(index, PlusMinusZ) }

// Get returns the operator on qubit index.
func (p PlusMinusProduct) Get(index int) PlusMinus { return p.sites.get(index) }

// Len returns the number of non-identity sites.
func (p PlusMinusProduct) Len() int { return len(p.sites) }

// Indices returns the occupied qubits in increasing order.
func (p PlusMinusProduct) Indices() []int { return p.sites.indices() }

// All iterates over (qubit, operator) in increasing qubit order.
func (p PlusMinusProduct) All() iter.Seq2[int, PlusMinus] {
	return func(yield func(int, PlusMinus) bool) {
		for _, e := range p.sites {
			if !yield(e.index, e.op) {
				return
			}
		}
	}
}

// CurrentNumberSpins returns the highest occupied qubit + 1.
func (p PlusMinusProduct) CurrentNumberSpins() int { return p.sites.extent() }

// String renders the canonical form, "I" for the identity.
func (p PlusMinusProduct) String() string { return p.sites.format() }

// ParsePlusMinusProduct reads the canonical form.
func ParsePlusMinusProduct(s string) (PlusMinusProduct, error) {
	sites, err := parseSites(s, parsePlusMinus)
	if err != nil {
		return PlusMinusProduct{}, err
	}

	return PlusMinusProduct{sites: sites}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PlusMinusProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PlusMinusProduct) UnmarshalText(text []byte) error {
	parsed, err := ParsePlusMinusProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// HermitianConjugate swaps σ+ and σ- on every site.
func (p PlusMinusProduct) HermitianConjugate() (PlusMinusProduct, float64) {
	out := PlusMinusProduct{sites: make(siteList[PlusMinus], len(p.sites))}
	for i, e := range p.sites {
		out.sites[i] = site[PlusMinus]{index: e.index, op: e.op.conjugate()}
	}

	return out, 1
}

// IsNaturalHermitian reports whether p holds only Z sites.
func (p PlusMinusProduct) IsNaturalHermitian() bool {
	for _, e := range p.sites {
		if e.op != PlusMinusZ {
			return false
		}
	}

	return true
}

// RemapQubits relabels qubits through mapping.
func (p PlusMinusProduct) RemapQubits(mapping map[int]int) (PlusMinusProduct, error) {
	sites, err := p.sites.remap(mapping)
	if err != nil {
		return PlusMinusProduct{}, err
	}

	return PlusMinusProduct{sites: sites}, nil
}

// Concatenate returns the product acting as p and other on disjoint qubits.
func (p PlusMinusProduct) Concatenate(other PlusMinusProduct) (PlusMinusProduct, error) {
	sites, err := p.sites.concat(other.sites)
	if err != nil {
		return PlusMinusProduct{}, err
	}

	return PlusMinusProduct{sites: sites}, nil
}

// Compare orders products by number of sites, then lexicographically.
func (p PlusMinusProduct) Compare(other PlusMinusProduct) int { return p.sites.compare(other.sites) }

// Equal reports whether both products are identical.
func (p PlusMinusProduct) Equal(other PlusMinusProduct) bool { return p.Compare(other) == 0 }

// ToPauli expands p into Pauli products.
func (p PlusMinusProduct) ToPauli() []core.Term[PauliProduct] {
	branches := expandSites(p.sites, PlusMinus.toPauli)
	out := make([]core.Term[PauliProduct], len(branches))
	for i, b := range branches {
		out[i] = core.Term[PauliProduct]{Product: PauliProduct{sites: b.sites}, Coefficient: calc.FromComplex128(b.factor)}
	}

	return out
}

// ToDecoherence expands p into decoherence products.
func (p PlusMinusProduct) ToDecoherence() []core.Term[DecoherenceProduct] {
	branches := expandSites(p.sites, PlusMinus.toDecoherence)
	out := make([]core.Term[DecoherenceProduct], len(branches))
	for i, b := range branches {
		out[i] = core.Term[DecoherenceProduct]{Product: DecoherenceProduct{sites: b.sites}, Coefficient: calc.FromComplex128(b.factor)}
	}

	return out
}
