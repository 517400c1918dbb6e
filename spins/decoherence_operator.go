// SPDX-License-Identifier: MIT

// Package spins: DecoherenceOperator, a linear combination of decoherence
// products. It is the operand of Lindblad noise built from full operators.
package spins

import (
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
)

const decoherenceOperatorType = "DecoherenceOperator"

// DecoherenceOperator maps decoherence products to complex coefficients.
type DecoherenceOperator struct {
	core.Operator[DecoherenceProduct, calc.Complex]
}

// NewDecoherenceOperator returns an empty operator. Keys are limited by
// WithNumberSpins when given.
func NewDecoherenceOperator(opts ...core.Option) *DecoherenceOperator {
	return &DecoherenceOperator{core.NewOperator(fitsSpins[DecoherenceProduct, calc.Complex], core.ErrMismatchedNumberSpins, opts...)}
}

func wrapDecoherenceOperator(op core.Operator[DecoherenceProduct, calc.Complex]) *DecoherenceOperator {
	return &DecoherenceOperator{op}
}

// CurrentNumberSpins returns the largest extent of any stored product.
func (o *DecoherenceOperator) CurrentNumberSpins() int { return currentSpins(o.Operator) }

// NumberSpins returns the declared number of qubits, or the current extent.
func (o *DecoherenceOperator) NumberSpins() int { return o.Options().Extent(o.CurrentNumberSpins()) }

// EmptyClone returns an operator of the same shape without terms.
func (o *DecoherenceOperator) EmptyClone() *DecoherenceOperator { return wrapDecoherenceOperator(o.Empty()) }

// Clone returns an independent copy.
func (o *DecoherenceOperator) Clone() *DecoherenceOperator { return wrapDecoherenceOperator(o.Operator.Clone()) }

// Add returns o + other.
func (o *DecoherenceOperator) Add(other *DecoherenceOperator) (*DecoherenceOperator, error) {
	sum, err := o.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapDecoherenceOperator(sum), nil
}

// Sub returns o - other.
func (o *DecoherenceOperator) Sub(other *DecoherenceOperator) (*DecoherenceOperator, error) {
	diff, err := o.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapDecoherenceOperator(diff), nil
}

// Neg returns -o.
func (o *DecoherenceOperator) Neg() *DecoherenceOperator { return wrapDecoherenceOperator(o.Operator.Neg()) }

// Scale returns factor·o.
func (o *DecoherenceOperator) Scale(factor calc.Complex) *DecoherenceOperator {
	return wrapDecoherenceOperator(o.Operator.Scale(factor))
}

// Truncate drops numeric terms below threshold.
func (o *DecoherenceOperator) Truncate(threshold float64) *DecoherenceOperator {
	return wrapDecoherenceOperator(o.Operator.Truncate(threshold))
}

// Mul returns the operator product o·other.
func (o *DecoherenceOperator) Mul(other *DecoherenceOperator) (*DecoherenceOperator, error) {
	if err := checkSameShape(o.Options(), other.Options()); err != nil {
		return nil, err
	}
	out := o.EmptyClone()
	if err := multiplyOperators(out.Operator, o.Operator, other.Operator, DecoherenceProduct.Multiply); err != nil {
		return nil, err
	}

	return out, nil
}

// HermitianConjugate returns o†; each iY contributes a sign.
func (o *DecoherenceOperator) HermitianConjugate() *DecoherenceOperator {
	out := o.EmptyClone()
	for k, v := range o.All() {
		conj, sign := k.HermitianConjugate()
		mustAdd(out.AddTerm(conj, v.Conj().Scale(sign)))
	}

	return out
}

// Equal reports whether shapes and terms agree.
func (o *DecoherenceOperator) Equal(other *DecoherenceOperator) bool { return o.Operator.Equal(other.Operator) }

// RemapQubits relabels qubits of every term through mapping.
func (o *DecoherenceOperator) RemapQubits(mapping map[int]int) (*DecoherenceOperator, error) {
	out := NewDecoherenceOperator()
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
func (o *DecoherenceOperator) SeparateIntoNTerms(n int) (separated, remainder *DecoherenceOperator) {
	matched, rest := o.Terms().Partition(func(k DecoherenceProduct) bool { return k.Len() == n })
	sep, err := o.WithTerms(matched)
	mustAdd(err)
	rem, err := o.WithTerms(rest)
	mustAdd(err)

	return wrapDecoherenceOperator(sep), wrapDecoherenceOperator(rem)
}

// ToPauli rewrites o in the Pauli basis.
func (o *DecoherenceOperator) ToPauli() *PauliOperator {
	out := NewPauliOperator(o.Options().Replay()...)
	for k, v := range o.All() {
		p, f := k.ToPauli()
		mustAdd(out.AddTerm(p, v.MulComplex128(f)))
	}

	return out
}

// ToPlusMinus rewrites o in the ladder basis.
func (o *DecoherenceOperator) ToPlusMinus() *PlusMinusOperator {
	out := NewPlusMinusOperator(o.Options().Replay()...)
	for k, v := range o.All() {
		for _, t := range k.ToPlusMinus() {
			mustAdd(out.AddTerm(t.Product, v.Mul(t.Coefficient)))
		}
	}

	return out
}

// SparseMatrixCOO returns the 2^n × 2^n matrix of o.
func (o *DecoherenceOperator) SparseMatrixCOO(n int, opts ...matrix.Option) (matrix.COO, error) {
	if err := checkQubits(o.CurrentNumberSpins(), n); err != nil {
		return matrix.COO{}, err
	}
	terms, err := operatorTerms(o.Operator)
	if err != nil {
		return matrix.COO{}, err
	}

	return matrix.OperatorCOO(terms, n, opts...)
}

// String renders "DecoherenceOperator(n){...}".
func (o *DecoherenceOperator) String() string {
	return o.Format(title(decoherenceOperatorType, o.Options(), o.CurrentNumberSpins()))
}

// Encode writes o with codec c.
func (o *DecoherenceOperator) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, decoherenceOperatorType, o.Operator, core.NewItem[DecoherenceProduct]))
}

// DecodeDecoherenceOperator reads an operator written by Encode.
func DecodeDecoherenceOperator(c core.Codec, data []byte) (*DecoherenceOperator, error) {
	var rec core.Record[core.Item[DecoherenceProduct]]
	if err := c.Decode(data, decoherenceOperatorType, &rec); err != nil {
		return nil, err
	}
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewDecoherenceOperator(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Key, it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes o with the default codec.
func (o *DecoherenceOperator) MarshalJSON() ([]byte, error) { return o.Encode(core.NewCodec()) }

// UnmarshalJSON decodes o with the default codec.
func (o *DecoherenceOperator) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeDecoherenceOperator(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*o = *decoded

	return nil
}
