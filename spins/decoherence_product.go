// SPDX-License-Identifier: MIT

// Package spins: DecoherenceProduct, a tensor product of real decoherence
// operators {X, iY, Z}. Lindblad noise keys are pairs of these.
package spins

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
)

// DecoherenceProduct is a product of decoherence operators on distinct
// qubits, e.g. "0X1iY". The zero value is the identity.
type DecoherenceProduct struct {
	sites siteList[Decoherence]
}

// NewDecoherenceProduct returns the identity product.
func NewDecoherenceProduct() DecoherenceProduct { return DecoherenceProduct{} }

// Set returns d with op on qubit index; DecoherenceI removes the qubit.
// Panics on a negative index.
func (d DecoherenceProduct) Set(index int, op Decoherence) DecoherenceProduct {
	return DecoherenceProduct{sites: d.sites.set(index, op)}
}

// X returns d with X on qubit index.
func (d DecoherenceProduct) X(index int) DecoherenceProduct { return d.Set(index, DecoherenceX) }

// IY returns d with iY on qubit index.
func (d DecoherenceProduct) IY(index int) DecoherenceProduct { return d.Set(index, DecoherenceIY) }

// Z returns d with Z on qubit index.
func (d DecoherenceProduct) Z(index int) DecoherenceProduct { return d.Set(index, DecoherenceZ) }

// Get returns the operator on qubit index.
func (d DecoherenceProduct) Get(index int) Decoherence { return d.sites.get(index) }

// Len returns the number of non-identity sites.
func (d DecoherenceProduct) Len() int { return len(d.sites) }

// IsIdentity reports whether d acts trivially on every qubit.
func (d DecoherenceProduct) IsIdentity() bool { return len(d.sites) == 0 }

// Indices returns the occupied qubits in increasing order.
func (d DecoherenceProduct) Indices() []int { return d.sites.indices() }

// All iterates over (qubit, operator) in increasing qubit order.
func (d DecoherenceProduct) All() iter.Seq2[int, Decoherence] {
	return func(yield func(int, Decoherence) bool) {
		for _, e := range d.sites {
			if !yield(e.index, e.op) {
				return
			}
		}
	}
}

// CurrentNumberSpins returns the highest occupied qubit + 1.
func (d DecoherenceProduct) CurrentNumberSpins() int { return d.sites.extent() }

// String renders the canonical form, "I" for the identity.
func (d DecoherenceProduct) String() string { return d.sites.format() }

// ParseDecoherenceProduct reads the canonical form.
func ParseDecoherenceProduct(s string) (DecoherenceProduct, error) {
	sites, err := parseSites(s, parseDecoherence)
	if err != nil {
		return DecoherenceProduct{}, err
	}

	return DecoherenceProduct{sites: sites}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d DecoherenceProduct) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DecoherenceProduct) UnmarshalText(text []byte) error {
	parsed, err := ParseDecoherenceProduct(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// HermitianConjugate returns d and (-1)^(number of iY sites).
func (d DecoherenceProduct) HermitianConjugate() (DecoherenceProduct, float64) {
	sign := 1.0
	for _, e := range d.sites {
		sign *= e.op.conjugatePrefactor()
	}

	return d, sign
}

// IsNaturalHermitian reports whether d has an even number of iY sites.
func (d DecoherenceProduct) IsNaturalHermitian() bool {
	_, sign := d.HermitianConjugate()
	return sign > 0
}

// RemapQubits relabels qubits through mapping.
func (d DecoherenceProduct) RemapQubits(mapping map[int]int) (DecoherenceProduct, error) {
	sites, err := d.sites.remap(mapping)
	if err != nil {
		return DecoherenceProduct{}, err
	}

	return DecoherenceProduct{sites: sites}, nil
}

// Concatenate returns the product acting as d and other on disjoint qubits.
func (d DecoherenceProduct) Concatenate(other DecoherenceProduct) (DecoherenceProduct, error) {
	sites, err := d.sites.concat(other.sites)
	if err != nil {
		return DecoherenceProduct{}, err
	}

	return DecoherenceProduct{sites: sites}, nil
}

// Compare orders products by number of sites, then lexicographically.
func (d DecoherenceProduct) Compare(other DecoherenceProduct) int { return d.sites.compare(other.sites) }

// Equal reports whether both products are identical.
func (d DecoherenceProduct) Equal(other DecoherenceProduct) bool { return d.Compare(other) == 0 }

// Multiply returns d·other and the accumulated real phase.
func (d DecoherenceProduct) Multiply(other DecoherenceProduct) (DecoherenceProduct, complex128) {
	sites, phase := multiplySites(d.sites, other.sites, Decoherence.Multiply)
	return DecoherenceProduct{sites: sites}, phase
}

// ToPauli rewrites d in the Pauli basis: each iY becomes i·Y.
func (d DecoherenceProduct) ToPauli() (PauliProduct, complex128) {
	out := PauliProduct{}
	factor := complex(1, 0)
	for _, e := range d.sites {
		p, f := decoherenceToPauli(e.op)
		out.sites = out.sites.with(e.index, p)
		factor *= f
	}

	return out, factor
}

// ToPlusMinus expands d into ladder products.
func (d DecoherenceProduct) ToPlusMinus() []core.Term[PlusMinusProduct] {
	branches := expandSites(d.sites, Decoherence.toPlusMinus)
	out := make([]core.Term[PlusMinusProduct], len(branches))
	for i, b := range branches {
		out[i] = core.Term[PlusMinusProduct]{Product: PlusMinusProduct{sites: b.sites}, Coefficient: calc.FromComplex128(b.factor)}
	}

	return out
}

// COO returns the 2^n × 2^n matrix of d.
func (d DecoherenceProduct) COO(n int, opts ...matrix.Option) (matrix.COO, error) {
	if d.CurrentNumberSpins() > n {
		return matrix.COO{}, fmt.Errorf("%w: %s needs %d qubits, got %d",
			core.ErrNumberSpinsExceeded, d, d.CurrentNumberSpins(), n)
	}

	return matrix.OperatorCOO([]matrix.OperatorTerm{{Sites: d.matrixSites(), Coefficient: 1}}, n, opts...)
}

func (d DecoherenceProduct) matrixSites() []matrix.Site {
	return toMatrixSites(d.sites, Decoherence.matrixOp)
}
