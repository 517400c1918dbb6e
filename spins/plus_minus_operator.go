// SPDX-License-Identifier: MIT

// Package spins: PlusMinusOperator, a linear combination of ladder products.
package spins

import (
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
)

const plusMinusOperatorType = "PlusMinusOperator"

// PlusMinusOperator maps ladder products to complex coefficients.
type PlusMinusOperator struct {
	core.Operator[PlusMinusProduct, calc.Complex]
}

// NewPlusMinusOperator returns an empty operator. Keys are limited by
// WithNumberSpins when given.
func NewPlusMinusOperator(opts ...core.Option) *PlusMinusOperator {
	return &PlusMinusOperator{core.NewOperator(fitsSpins[PlusMinusProduct, calc.Complex], core.ErrMismatchedNumberSpins, opts...)}
}

func wrapPlusMinusOperator(op core.Operator[PlusMinusProduct, calc.Complex]) *PlusMinusOperator {
	return &PlusMinusOperator{op}
}

// CurrentNumberSpins returns the largest extent of any stored product.
func (o *PlusMinusOperator) CurrentNumberSpins() int { return currentSpins(o.Operator) }

// NumberSpins returns the declared number of qubits, or the current extent.
func (o *PlusMinusOperator) NumberSpins() int { return o.Options().Extent(o.CurrentNumberSpins()) }

// EmptyClone returns an operator of the same shape without terms.
func (o *PlusMinusOperator) EmptyClone() *PlusMinusOperator { return wrapPlusMinusOperator(o.Empty()) }

// Clone returns an independent copy.
func (o *PlusMinusOperator) Clone() *PlusMinusOperator { return wrapPlusMinusOperator(o.Operator.Clone()) }

// Add returns o + other.
func (o *PlusMinusOperator) Add(other *PlusMinusOperator) (*PlusMinusOperator, error) {
	sum, err := o.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapPlusMinusOperator(sum), nil
}

// Sub returns o - other.
func (o *PlusMinusOperator) Sub(other *PlusMinusOperator) (*PlusMinusOperator, error) {
	diff, err := o.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapPlusMinusOperator(diff), nil
}

// Neg returns -o.
func (o *PlusMinusOperator) Neg() *PlusMinusOperator { return wrapPlusMinusOperator(o.Operator.Neg()) }

// Scale returns factor·o.
func (o *PlusMinusOperator) Scale(factor calc.Complex) *PlusMinusOperator {
	return wrapPlusMinusOperator(o.Operator.Scale(factor))
}

// Truncate drops numeric terms below threshold.
func (o *PlusMinusOperator) Truncate(threshold float64) *PlusMinusOperator {
	return wrapPlusMinusOperator(o.Operator.Truncate(threshold))
}

// HermitianConjugate returns o†, swapping σ+ and σ- on every term.
func (o *PlusMinusOperator) HermitianConjugate() *PlusMinusOperator {
	out := o.EmptyClone()
	for k, v := range o.All() {
		conj, sign := k.HermitianConjugate()
		mustAdd(out.AddTerm(conj, v.Conj().Scale(sign)))
	}

	return out
}

// Equal reports whether shapes and terms agree.
func (o *PlusMinusOperator) Equal(other *PlusMinusOperator) bool { return o.Operator.Equal(other.Operator) }

// RemapQubits relabels qubits of every term through mapping.
func (o *PlusMinusOperator) RemapQubits(mapping map[int]int) (*PlusMinusOperator, error) {
	out := NewPlusMinusOperator()
	for k, v := range o.All() {
		mapped, err := k.RemapQubits(mapping)
		if err != nil {
			return nil, err
		}
		if err := out.AddTerm(mapped, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SeparateIntoNTerms splits o into the terms acting on exactly n qubits and
// the rest.
func (o *PlusMinusOperator) SeparateIntoNTerms(n int) (separated, remainder *PlusMinusOperator) {
	matched, rest := o.Terms().Partition(func(k PlusMinusProduct) bool { return k.Len() == n })
	sep, err := o.WithTerms(matched)
	mustAdd(err)
	rem, err := o.WithTerms(rest)
	mustAdd(err)

	return wrapPlusMinusOperator(sep), wrapPlusMinusOperator(rem)
}

// ToPauli expands o into Pauli products.
func (o *PlusMinusOperator) ToPauli() *PauliOperator {
	out := NewPauliOperator(o.Options().Replay()...)
	for k, v := range o.All() {
		for _, t := range k.ToPauli() {
			mustAdd(out.AddTerm(t.Product, v.Mul(t.Coefficient)))
		}
	}

	return out
}

// ToDecoherence expands o into decoherence products.
func (o *PlusMinusOperator) ToDecoherence() *DecoherenceOperator {
	out := NewDecoherenceOperator(o.Options().Replay()...)
	for k, v := range o.All() {
		for _, t := range k.ToDecoherence() {
			mustAdd(out.AddTerm(t.Product, v.Mul(t.Coefficient)))
		}
	}

	return out
}

// ToPauliHamiltonian converts o when its Pauli expansion has real
// coefficients; residues below 1e-16 are dropped first.
func (o *PlusMinusOperator) ToPauliHamiltonian() (*PauliHamiltonian, error) {
	return PauliHamiltonianFromOperator(o.ToPauli().Truncate(1e-16))
}

// SparseMatrixCOO returns the 2^n × 2^n matrix of o.
func (o *PlusMinusOperator) SparseMatrixCOO(n int, opts ...matrix.Option) (matrix.COO, error) {
	return o.ToPauli().SparseMatrixCOO(n, opts...)
}

// String renders "PlusMinusOperator(n){...}".
func (o *PlusMinusOperator) String() string {
	return o.Format(title(plusMinusOperatorType, o.Options(), o.CurrentNumberSpins()))
}

// Encode writes o with codec c.
func (o *PlusMinusOperator) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, plusMinusOperatorType, o.Operator, core.NewItem[PlusMinusProduct]))
}

// DecodePlusMinusOperator reads an operator written by Encode.
func DecodePlusMinusOperator(c core.Codec, data []byte) (*PlusMinusOperator, error) {
	var rec core.Record[core.Item[PlusMinusProduct]]
	if err := c.Decode(data, plusMinusOperatorType, &rec); err != nil {
		return nil, err
	}
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewPlusMinusOperator(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Key, it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes o with the default codec.
func (o *PlusMinusOperator) MarshalJSON() ([]byte, error) { return o.Encode(core.NewCodec()) }

// UnmarshalJSON decodes o with the default codec.
func (o *PlusMinusOperator) UnmarshalJSON(data []byte) error {
	decoded, err := DecodePlusMinusOperator(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*o = *decoded

	return nil
}
