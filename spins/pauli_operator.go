// SPDX-License-Identifier: MIT

// Package spins: PauliOperator, a general linear combination of Pauli
// products with complex coefficients.
package spins

import (
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
)

const pauliOperatorType = "PauliOperator"

// PauliOperator maps Pauli products to complex coefficients.
type PauliOperator struct {
	core.Operator[PauliProduct, calc.Complex]
}

// NewPauliOperator returns an empty operator. Keys are limited by
// WithNumberSpins when given.
func NewPauliOperator(opts ...core.Option) *PauliOperator {
	return &PauliOperator{core.NewOperator(fitsSpins[PauliProduct, calc.Complex], core.ErrMismatchedNumberSpins, opts...)}
}

func wrapPauliOperator(op core.Operator[PauliProduct, calc.Complex]) *PauliOperator {
	return &PauliOperator{op}
}

// CurrentNumberSpins returns the largest extent of any stored product.
func (o *PauliOperator) CurrentNumberSpins() int { return currentSpins(o.Operator) }

// NumberSpins returns the declared number of qubits, or the current extent.
func (o *PauliOperator) NumberSpins() int { return o.Options().Extent(o.CurrentNumberSpins()) }

// EmptyClone returns an operator of the same shape without terms.
func (o *PauliOperator) EmptyClone() *PauliOperator { return wrapPauliOperator(o.Empty()) }

// Clone returns an independent copy.
func (o *PauliOperator) Clone() *PauliOperator { return wrapPauliOperator(o.Operator.Clone()) }

// Add returns o + other.
func (o *PauliOperator) Add(other *PauliOperator) (*PauliOperator, error) {
	sum, err := o.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapPauliOperator(sum), nil
}

// Sub returns o - other.
func (o *PauliOperator) Sub(other *PauliOperator) (*PauliOperator, error) {
	diff, err := o.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapPauliOperator(diff), nil
}

// Neg returns -o.
func (o *PauliOperator) Neg() *PauliOperator { return wrapPauliOperator(o.Operator.Neg()) }

// Scale returns factor·o.
func (o *PauliOperator) Scale(factor calc.Complex) *PauliOperator {
	return wrapPauliOperator(o.Operator.Scale(factor))
}

// Truncate drops numeric terms below threshold.
func (o *PauliOperator) Truncate(threshold float64) *PauliOperator {
	return wrapPauliOperator(o.Operator.Truncate(threshold))
}

// Mul returns the operator product o·other.
func (o *PauliOperator) Mul(other *PauliOperator) (*PauliOperator, error) {
	if err := checkSameShape(o.Options(), other.Options()); err != nil {
		return nil, err
	}
	out := o.EmptyClone()
	if err := multiplyOperators(out.Operator, o.Operator, other.Operator, PauliProduct.Multiply); err != nil {
		return nil, err
	}

	return out, nil
}

// HermitianConjugate returns o† (every coefficient conjugated).
func (o *PauliOperator) HermitianConjugate() *PauliOperator {
	out := o.EmptyClone()
	for k, v := range o.All() {
		conj, sign := k.HermitianConjugate()
		mustAdd(out.AddTerm(conj, v.Conj().Scale(sign)))
	}

	return out
}

// Equal reports whether shapes and terms agree.
func (o *PauliOperator) Equal(other *PauliOperator) bool { return o.Operator.Equal(other.Operator) }

// RemapQubits relabels qubits of every term through mapping.
func (o *PauliOperator) RemapQubits(mapping map[int]int) (*PauliOperator, error) {
	out := NewPauliOperator()
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
func (o *PauliOperator) SeparateIntoNTerms(n int) (separated, remainder *PauliOperator) {
	matched, rest := o.Terms().Partition(func(k PauliProduct) bool { return k.Len() == n })
	sep, err := o.WithTerms(matched)
	mustAdd(err)
	rem, err := o.WithTerms(rest)
	mustAdd(err)

	return wrapPauliOperator(sep), wrapPauliOperator(rem)
}

// ToDecoherence rewrites o in the decoherence basis.
func (o *PauliOperator) ToDecoherence() *DecoherenceOperator {
	out := NewDecoherenceOperator(o.Options().Replay()...)
	for k, v := range o.All() {
		d, f := k.ToDecoherence()
		mustAdd(out.AddTerm(d, v.MulComplex128(f)))
	}

	return out
}

// ToPlusMinus rewrites o in the ladder basis.
func (o *PauliOperator) ToPlusMinus() *PlusMinusOperator {
	out := NewPlusMinusOperator(o.Options().Replay()...)
	for k, v := range o.All() {
		for _, t := range k.ToPlusMinus() {
			mustAdd(out.AddTerm(t.Product, v.Mul(t.Coefficient)))
		}
	}

	return out
}

// SparseMatrixCOO returns the 2^n × 2^n matrix of o.
func (o *PauliOperator) SparseMatrixCOO(n int, opts ...matrix.Option) (matrix.COO, error) {
	if err := checkQubits(o.CurrentNumberSpins(), n); err != nil {
		return matrix.COO{}, err
	}
	terms, err := operatorTerms(o.Operator)
	if err != nil {
		return matrix.COO{}, err
	}

	return matrix.OperatorCOO(terms, n, opts...)
}

// String renders "PauliOperator(n){...}".
func (o *PauliOperator) String() string {
	return o.Format(title(pauliOperatorType, o.Options(), o.CurrentNumberSpins()))
}

// Encode writes o with codec c.
func (o *PauliOperator) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, pauliOperatorType, o.Operator, core.NewItem[PauliProduct]))
}

// DecodePauliOperator reads an operator written by Encode.
func DecodePauliOperator(c core.Codec, data []byte) (*PauliOperator, error) {
	var rec core.Record[core.Item[PauliProduct]]
	if err := c.Decode(data, pauliOperatorType, &rec); err != nil {
		return nil, err
	}
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewPauliOperator(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Key, it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes o with the default codec.
func (o *PauliOperator) MarshalJSON() ([]byte, error) { return o.Encode(core.NewCodec()) }

// UnmarshalJSON decodes o with the default codec.
func (o *PauliOperator) UnmarshalJSON(data []byte) error {
	decoded, err := DecodePauliOperator(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*o = *decoded

	return nil
}
