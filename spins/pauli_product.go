// SPDX-License-Identifier: MIT

// Package spins: PauliProduct, a tensor product of Pauli operators.
package spins

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
)

// PauliProduct is a product of Pauli operators on distinct qubits, e.g.
// "0X2Z". The zero value is the identity.
type PauliProduct struct {
	sites siteList[Pauli]
}

// NewPauliProduct returns the identity product.
func NewPauliProduct() PauliProduct { return PauliProduct{} }

// Set returns p with op on qubit index; PauliI removes the qubit. Panics on
// a negative index.
func (p PauliProduct) Set(index int, op Pauli) PauliProduct {
	return PauliProduct{sites: p.sites.set(index, op)}
}

// X returns p with X on qubit index.
func (p PauliProduct) X(index int) PauliProduct { return p.Set(index, PauliX) }

// Y returns p with Y on qubit index.
func (p PauliProduct) Y(index int) PauliProduct { return p.Set(index, PauliY) }

// Z returns p with Z on qubit index.
func (p PauliProduct) Z(index int) PauliProduct { return p.Set(index, PauliZ) }

// Get returns the operator on qubit index (PauliI when absent).
func (p PauliProduct) Get(index int) Pauli { return p.sites.get(index) }

// Len returns the number of non-identity sites.
func (p PauliProduct) Len() int { return len(p.sites) }

// Indices returns the occupied qubits in increasing order.
func (p PauliProduct) Indices() []int { return p.sites.indices() }

// All iterates over (qubit, operator) in increasing qubit order.
func (p PauliProduct) All() iter.Seq2[int, Pauli] {
	return func(yield func(int, Pauli) bool) {
		for _, e := range p.sites {
			if !yield(e.index, e.op) {
				return
			}
		}
	}
}

// CurrentNumberSpins returns the highest occupied qubit + 1.
func (p PauliProduct) CurrentNumberSpins() int { return p.sites.extent() }

// String renders the canonical form, "I" for the identity.
func (p PauliProduct) String() string { return p.sites.format() }

// ParsePauliProduct reads the canonical form.
func ParsePauliProduct(s string) (PauliProduct, error) {
	sites, err := parseSites(s, parsePauli)
	if err != nil {
		return PauliProduct{}, err
	}

	return PauliProduct{sites: sites}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PauliProduct) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PauliProduct) UnmarshalText(text []byte) error {
	parsed, err := ParsePauliProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// HermitianConjugate returns p itself: Pauli strings are self-adjoint.
func (p PauliProduct) HermitianConjugate() (PauliProduct, float64) { return p, 1 }

// IsNaturalHermitian is always true.
func (p PauliProduct) IsNaturalHermitian() bool { return true }

// RemapQubits relabels qubits through mapping.
func (p PauliProduct) RemapQubits(mapping map[int]int) (PauliProduct, error) {
	sites, err := p.sites.remap(mapping)
	if err != nil {
		return PauliProduct{}, err
	}

	return PauliProduct{sites: sites}, nil
}

// Concatenate returns the product acting as p and other on disjoint qubits.
func (p PauliProduct) Concatenate(other PauliProduct) (PauliProduct, error) {
	sites, err := p.sites.concat(other.sites)
	if err != nil {
		return PauliProduct{}, err
	}

	return PauliProduct{sites: sites}, nil
}

// Compare orders products by number of sites, then lexicographically.
func (p PauliProduct) Compare(other PauliProduct) int { return p.sites.compare(other.sites) }

// Equal reports whether both products are identical.
func (p PauliProduct) Equal(other PauliProduct) bool { return p.Compare(other) == 0 }

// Multiply returns p·other and the accumulated phase.
func (p PauliProduct) Multiply(other PauliProduct) (PauliProduct, complex128) {
	sites, phase := multiplySites(p.sites, other.sites, Pauli.Multiply)
	return PauliProduct{sites: sites}, phase
}

// ToDecoherence rewrites p in the decoherence basis: each Y becomes -i·iY.
func (p PauliProduct) ToDecoherence() (DecoherenceProduct, complex128) {
	out := DecoherenceProduct{}
	factor := complex(1, 0)
	for _, e := range p.sites {
		d, f := pauliToDecoherence(e.op)
		out.sites = out.sites.with(e.index, d)
		factor *= f
	}

	return out, factor
}

// ToPlusMinus expands p into ladder products.
func (p PauliProduct) ToPlusMinus() []core.Term[PlusMinusProduct] {
	branches := expandSites(p.sites, Pauli.toPlusMinus)
	out := make([]core.Term[PlusMinusProduct], len(branches))
	for i, b := range branches {
		out[i] = core.Term[PlusMinusProduct]{Product: PlusMinusProduct{sites: b.sites}, Coefficient: calc.FromComplex128(b.factor)}
	}

	return out
}

// COO returns the 2^n × 2^n matrix of p.
func (p PauliProduct) COO(n int, opts ...matrix.Option) (matrix.COO, error) {
	if p.CurrentNumberSpins() > n {
		return matrix.COO{}, fmt.Errorf("%w: %s needs %d qubits, got %d",
			core.ErrNumberSpinsExceeded, p, p.CurrentNumberSpins(), n)
	}

	return matrix.OperatorCOO([]matrix.OperatorTerm{{Sites: p.matrixSites(), Coefficient: 1}}, n, opts...)
}

func (p PauliProduct) matrixSites() []matrix.Site { return toMatrixSites(p.sites, Pauli.matrixOp) }
