// SPDX-License-Identifier: MIT

// Package spins: PlusMinusLindbladNoiseOperator, spin noise keyed by
// (left, right) ladder products.
package spins

import (
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
)

const plusMinusNoiseType = "PlusMinusLindbladNoiseOperator"

// PlusMinusNoiseKey is the (left, right) key of a ladder noise operator.
type PlusMinusNoiseKey = core.Pair[PlusMinusProduct]

// PlusMinusLindbladNoiseOperator represents Σ rate·(L ρ R† - ½{R†L, ρ}).
// Neither L nor R may be the identity.
type PlusMinusLindbladNoiseOperator struct {
	core.Operator[PlusMinusNoiseKey, calc.Complex]
}

// NewPlusMinusLindbladNoiseOperator returns an empty noise operator.
func NewPlusMinusLindbladNoiseOperator(opts ...core.Option) *PlusMinusLindbladNoiseOperator {
	return &PlusMinusLindbladNoiseOperator{core.NewOperator(validNoise[PlusMinusProduct], core.ErrMismatchedNumberSpins, opts...)}
}

func wrapPlusMinusNoise(op core.Operator[PlusMinusNoiseKey, calc.Complex]) *PlusMinusLindbladNoiseOperator {
	return &PlusMinusLindbladNoiseOperator{op}
}

// CurrentNumberSpins returns the largest extent of any stored operand.
func (o *PlusMinusLindbladNoiseOperator) CurrentNumberSpins() int {
	return currentNoiseSpins(o.Operator)
}

// NumberSpins returns the declared number of qubits, or the current extent.
func (o *PlusMinusLindbladNoiseOperator) NumberSpins() int {
	return o.Options().Extent(o.CurrentNumberSpins())
}

// EmptyClone returns a noise operator of the same shape without terms.
func (o *PlusMinusLindbladNoiseOperator) EmptyClone() *PlusMinusLindbladNoiseOperator {
	return wrapPlusMinusNoise(o.Empty())
}

// Clone returns an independent copy.
func (o *PlusMinusLindbladNoiseOperator) Clone() *PlusMinusLindbladNoiseOperator {
	return wrapPlusMinusNoise(o.Operator.Clone())
}

// Add returns o + other.
func (o *PlusMinusLindbladNoiseOperator) Add(other *PlusMinusLindbladNoiseOperator) (*PlusMinusLindbladNoiseOperator, error) {
	sum, err := o.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapPlusMinusNoise(sum), nil
}

// Sub returns o - other.
func (o *PlusMinusLindbladNoiseOperator) Sub(other *PlusMinusLindbladNoiseOperator) (*PlusMinusLindbladNoiseOperator, error) {
	diff, err := o.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapPlusMinusNoise(diff), nil
}

// Neg returns -o.
func (o *PlusMinusLindbladNoiseOperator) Neg() *PlusMinusLindbladNoiseOperator {
	return wrapPlusMinusNoise(o.Operator.Neg())
}

// Scale returns factor·o.
func (o *PlusMinusLindbladNoiseOperator) Scale(factor calc.Complex) *PlusMinusLindbladNoiseOperator {
	return wrapPlusMinusNoise(o.Operator.Scale(factor))
}

// Truncate drops numeric rates below threshold.
func (o *PlusMinusLindbladNoiseOperator) Truncate(threshold float64) *PlusMinusLindbladNoiseOperator {
	return wrapPlusMinusNoise(o.Operator.Truncate(threshold))
}

// Equal reports whether shapes and terms agree.
func (o *PlusMinusLindbladNoiseOperator) Equal(other *PlusMinusLindbladNoiseOperator) bool {
	return o.Operator.Equal(other.Operator)
}

// RemapQubits relabels both operands of every term through mapping.
func (o *PlusMinusLindbladNoiseOperator) RemapQubits(mapping map[int]int) (*PlusMinusLindbladNoiseOperator, error) {
	out := NewPlusMinusLindbladNoiseOperator()
	for k, v := range o.All() {
		l, err := k.Left.RemapQubits(mapping)
		if err != nil {
			return nil, err
		}
		r, err := k.Right.RemapQubits(mapping)
		if err != nil {
			return nil, err
		}
		if err := out.AddTerm(core.NewPair(l, r), v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SeparateIntoNTerms splits o into the terms whose left and right operands
// act on exactly nLeft and nRight qubits, and the rest.
func (o *PlusMinusLindbladNoiseOperator) SeparateIntoNTerms(nLeft, nRight int) (separated, remainder *PlusMinusLindbladNoiseOperator) {
	matched, rest := o.Terms().Partition(func(k PlusMinusNoiseKey) bool {
		return k.Left.Len() == nLeft && k.Right.Len() == nRight
	})
	sep, err := o.WithTerms(matched)
	mustAdd(err)
	rem, err := o.WithTerms(rest)
	mustAdd(err)

	return wrapPlusMinusNoise(sep), wrapPlusMinusNoise(rem)
}

// ToDecoherence expands both operands into decoherence products, giving the
// noise operator the superoperator builder consumes.
func (o *PlusMinusLindbladNoiseOperator) ToDecoherence() *PauliLindbladNoiseOperator {
	out := NewPauliLindbladNoiseOperator(o.Options().Replay()...)
	for k, v := range o.All() {
		rights := k.Right.ToDecoherence()
		for _, l := range k.Left.ToDecoherence() {
			for _, r := range rights {
				mustAdd(out.AddTerm(core.NewPair(l.Product, r.Product), v.Mul(l.Coefficient).Mul(r.Coefficient.Conj())))
			}
		}
	}

	return out
}

// SparseMatrixSuperoperatorCOO returns the 4^n × 4^n dissipator.
func (o *PlusMinusLindbladNoiseOperator) SparseMatrixSuperoperatorCOO(n int, opts ...matrix.Option) (matrix.COO, error) {
	return o.ToDecoherence().SparseMatrixSuperoperatorCOO(n, opts...)
}

// String renders "PlusMinusLindbladNoiseOperator(n){...}".
func (o *PlusMinusLindbladNoiseOperator) String() string {
	return o.Format(title(plusMinusNoiseType, o.Options(), o.CurrentNumberSpins()))
}

// Encode writes o with codec c.
func (o *PlusMinusLindbladNoiseOperator) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, plusMinusNoiseType, o.Operator, core.NewPairItem[PlusMinusProduct]))
}

// DecodePlusMinusLindbladNoiseOperator reads a noise operator written by Encode.
func DecodePlusMinusLindbladNoiseOperator(c core.Codec, data []byte) (*PlusMinusLindbladNoiseOperator, error) {
	var rec core.Record[core.PairItem[PlusMinusProduct]]
	if err := c.Decode(data, plusMinusNoiseType, &rec); err != nil {
		return nil, err
	}
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewPlusMinusLindbladNoiseOperator(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Pair(), it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes o with the default codec.
func (o *PlusMinusLindbladNoiseOperator) MarshalJSON() ([]byte, error) { return o.Encode(core.NewCodec()) }

// UnmarshalJSON decodes o with the default codec.
func (o *PlusMinusLindbladNoiseOperator) UnmarshalJSON(data []byte) error {
	decoded, err := DecodePlusMinusLindbladNoiseOperator(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*o = *decoded

	return nil
}
