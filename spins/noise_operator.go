// SPDX-License-Identifier: MIT

// Package spins: PauliLindbladNoiseOperator, the dissipator of a spin open
// system, keyed by (left, right) decoherence products.
package spins

import (
	"fmt"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
)

const pauliNoiseType = "PauliLindbladNoiseOperator"

// NoiseKey is the (left, right) key of a spin noise operator.
type NoiseKey = core.Pair[DecoherenceProduct]

// PauliLindbladNoiseOperator represents Σ rate·(L ρ R† - ½{R†L, ρ}).
// Neither L nor R may be the identity.
type PauliLindbladNoiseOperator struct {
	core.Operator[NoiseKey, calc.Complex]
}

// NewPauliLindbladNoiseOperator returns an empty noise operator.
func NewPauliLindbladNoiseOperator(opts ...core.Option) *PauliLindbladNoiseOperator {
	return &PauliLindbladNoiseOperator{core.NewOperator(validNoise[DecoherenceProduct], core.ErrMismatchedNumberSpins, opts...)}
}

func wrapPauliNoise(op core.Operator[NoiseKey, calc.Complex]) *PauliLindbladNoiseOperator {
	return &PauliLindbladNoiseOperator{op}
}

// CurrentNumberSpins returns the largest extent of any stored operand.
func (o *PauliLindbladNoiseOperator) CurrentNumberSpins() int {
	return currentNoiseSpins(o.Operator)
}

// NumberSpins returns the declared number of qubits, or the current extent.
func (o *PauliLindbladNoiseOperator) NumberSpins() int {
	return o.Options().Extent(o.CurrentNumberSpins())
}

// EmptyClone returns a noise operator of the same shape without terms.
func (o *PauliLindbladNoiseOperator) EmptyClone() *PauliLindbladNoiseOperator {
	return wrapPauliNoise(o.Empty())
}

// Clone returns an independent copy.
func (o *PauliLindbladNoiseOperator) Clone() *PauliLindbladNoiseOperator {
	return wrapPauliNoise(o.Operator.Clone())
}

// AddNoiseFromFullOperators adds the dissipator of the operators left and
// right: every pair of terms (l, vl), (r, vr) contributes value·conj(vr)·vl
// to (l, r). Identity terms are skipped; empty operands fail with
// core.ErrInvalidLindbladTerms.
func (o *PauliLindbladNoiseOperator) AddNoiseFromFullOperators(left, right *DecoherenceOperator, value calc.Complex) error {
	if left.IsEmpty() || right.IsEmpty() {
		return fmt.Errorf("%w: noise operands must not be empty", core.ErrInvalidLindbladTerms)
	}
	scratch := o.Operator.Clone()
	for l, vl := range left.All() {
		if l.IsIdentity() {
			continue
		}
		for r, vr := range right.All() {
			if r.IsIdentity() {
				continue
			}
			if err := scratch.AddTerm(core.NewPair(l, r), vr.Conj().Mul(vl).Mul(value)); err != nil {
				return err
			}
		}
	}
	o.Operator = scratch

	return nil
}

// Add returns o + other.
func (o *PauliLindbladNoiseOperator) Add(other *PauliLindbladNoiseOperator) (*PauliLindbladNoiseOperator, error) {
	sum, err := o.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapPauliNoise(sum), nil
}

// Sub returns o - other.
func (o *PauliLindbladNoiseOperator) Sub(other *PauliLindbladNoiseOperator) (*PauliLindbladNoiseOperator, error) {
	diff, err := o.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapPauliNoise(diff), nil
}

// Neg returns -o.
func (o *PauliLindbladNoiseOperator) Neg() *PauliLindbladNoiseOperator {
	return wrapPauliNoise(o.Operator.Neg())
}

// Scale returns factor·o.
func (o *PauliLindbladNoiseOperator) Scale(factor calc.Complex) *PauliLindbladNoiseOperator {
	return wrapPauliNoise(o.Operator.Scale(factor))
}

// Truncate drops numeric rates below threshold.
func (o *PauliLindbladNoiseOperator) Truncate(threshold float64) *PauliLindbladNoiseOperator {
	return wrapPauliNoise(o.Operator.Truncate(threshold))
}

// Equal reports whether shapes and terms agree.
func (o *PauliLindbladNoiseOperator) Equal(other *PauliLindbladNoiseOperator) bool {
	return o.Operator.Equal(other.Operator)
}

// RemapQubits relabels both operands of every term through mapping.
func (o *PauliLindbladNoiseOperator) RemapQubits(mapping map[int]int) (*PauliLindbladNoiseOperator, error) {
	out := NewPauliLindbladNoiseOperator()
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
func (o *PauliLindbladNoiseOperator) SeparateIntoNTerms(nLeft, nRight int) (separated, remainder *PauliLindbladNoiseOperator) {
	matched, rest := o.Terms().Partition(func(k NoiseKey) bool {
		return k.Left.Len() == nLeft && k.Right.Len() == nRight
	})
	sep, err := o.WithTerms(matched)
	mustAdd(err)
	rem, err := o.WithTerms(rest)
	mustAdd(err)

	return wrapPauliNoise(sep), wrapPauliNoise(rem)
}

// ToPlusMinus expands both operands into ladder products.
func (o *PauliLindbladNoiseOperator) ToPlusMinus() *PlusMinusLindbladNoiseOperator {
	out := NewPlusMinusLindbladNoiseOperator(o.Options().Replay()...)
	for k, v := range o.All() {
		rights := k.Right.ToPlusMinus()
		for _, l := range k.Left.ToPlusMinus() {
			for _, r := range rights {
				mustAdd(out.AddTerm(core.NewPair(l.Product, r.Product), v.Mul(l.Coefficient).Mul(r.Coefficient.Conj())))
			}
		}
	}

	return out
}

// SparseMatrixSuperoperatorCOO returns the 4^n × 4^n dissipator.
func (o *PauliLindbladNoiseOperator) SparseMatrixSuperoperatorCOO(n int, opts ...matrix.Option) (matrix.COO, error) {
	if err := checkQubits(o.CurrentNumberSpins(), n); err != nil {
		return matrix.COO{}, err
	}
	terms, err := noiseTerms(o.Operator)
	if err != nil {
		return matrix.COO{}, err
	}

	return matrix.SuperoperatorCOO(nil, terms, n, opts...)
}

// String renders "PauliLindbladNoiseOperator(n){...}".
func (o *PauliLindbladNoiseOperator) String() string {
	return o.Format(title(pauliNoiseType, o.Options(), o.CurrentNumberSpins()))
}

// Encode writes o with codec c.
func (o *PauliLindbladNoiseOperator) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, pauliNoiseType, o.Operator, core.NewPairItem[DecoherenceProduct]))
}

// DecodePauliLindbladNoiseOperator reads a noise operator written by Encode.
func DecodePauliLindbladNoiseOperator(c core.Codec, data []byte) (*PauliLindbladNoiseOperator, error) {
	var rec core.Record[core.PairItem[DecoherenceProduct]]
	if err := c.Decode(data, pauliNoiseType, &rec); err != nil {
		return nil, err
	}
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewPauliLindbladNoiseOperator(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Pair(), it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes o with the default codec.
func (o *PauliLindbladNoiseOperator) MarshalJSON() ([]byte, error) { return o.Encode(core.NewCodec()) }

// UnmarshalJSON decodes o with the default codec.
func (o *PauliLindbladNoiseOperator) UnmarshalJSON(data []byte) error {
	decoded, err := DecodePauliLindbladNoiseOperator(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*o = *decoded

	return nil
}
