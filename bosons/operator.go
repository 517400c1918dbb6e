// SPDX-License-Identifier: MIT

// Package bosons: BosonOperator, a general combination of boson products.
package bosons

import (
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

const bosonOperatorType = "BosonOperator"

// BosonOperator maps boson products to complex coefficients.
type BosonOperator struct {
	core.Operator[BosonProduct, calc.Complex]
}

// NewBosonOperator returns an empty operator. Keys are limited by
// core.WithNumberModes when given.
func NewBosonOperator(opts ...core.Option) *BosonOperator {
	return &BosonOperator{core.NewOperator(core.FitsModes[BosonProduct, calc.Complex], core.ErrMismatchedNumberModes, opts...)}
}

func wrapOperator(op core.Operator[BosonProduct, calc.Complex]) *BosonOperator {
	return &BosonOperator{op}
}

// CurrentNumberModes returns the largest extent of any stored product.
func (o *BosonOperator) CurrentNumberModes() int { return core.CurrentModes(o.Operator) }

// NumberModes returns the declared number of modes, or the current extent.
func (o *BosonOperator) NumberModes() int { return o.Options().Extent(o.CurrentNumberModes()) }

// EmptyClone returns an operator of the same shape without terms.
func (o *BosonOperator) EmptyClone() *BosonOperator { return wrapOperator(o.Empty()) }

// Clone returns an independent copy.
func (o *BosonOperator) Clone() *BosonOperator { return wrapOperator(o.Operator.Clone()) }

// Add returns o + other.
func (o *BosonOperator) Add(other *BosonOperator) (*BosonOperator, error) {
	sum, err := o.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapOperator(sum), nil
}

// Sub returns o - other.
func (o *BosonOperator) Sub(other *BosonOperator) (*BosonOperator, error) {
	diff, err := o.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapOperator(diff), nil
}

// Neg returns -o.
func (o *BosonOperator) Neg() *BosonOperator { return wrapOperator(o.Operator.Neg()) }

// Scale returns factor·o.
func (o *BosonOperator) Scale(factor calc.Complex) *BosonOperator {
	return wrapOperator(o.Operator.Scale(factor))
}

// Truncate drops numeric terms below threshold.
func (o *BosonOperator) Truncate(threshold float64) *BosonOperator {
	return wrapOperator(o.Operator.Truncate(threshold))
}

// Equal reports whether shapes and terms agree.
func (o *BosonOperator) Equal(other *BosonOperator) bool { return o.Operator.Equal(other.Operator) }

// Mul returns the normal-ordered operator product o·other.
func (o *BosonOperator) Mul(other *BosonOperator) (*BosonOperator, error) {
	if err := core.CheckSameModes(o.Options(), other.Options()); err != nil {
		return nil, err
	}
	out := o.EmptyClone()
	for kl, vl := range o.All() {
		for kr, vr := range other.All() {
			for _, t := range kl.Multiply(kr) {
				if err := out.AddTerm(t.Product, vl.Mul(vr).Mul(t.Coefficient)); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// HermitianConjugate returns o†.
func (o *BosonOperator) HermitianConjugate() *BosonOperator {
	out := o.EmptyClone()
	for k, v := range o.All() {
		conj, sign := k.HermitianConjugate()
		mustAdd(out.AddTerm(conj, v.Conj().Scale(sign)))
	}

	return out
}

// RemapModes relabels the modes of every term through mapping.
func (o *BosonOperator) RemapModes(mapping map[int]int) (*BosonOperator, error) {
	out := NewBosonOperator()
	for k, v := range o.All() {
		mapped, err := k.RemapModes(mapping)
		if err != nil {
			return nil, err
		}
		if err := out.AddTerm(mapped, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SeparateIntoNTerms splits o into the terms with exactly the given numbers
// of creators and annihilators, and the rest.
func (o *BosonOperator) SeparateIntoNTerms(shape core.LadderShape) (separated, remainder *BosonOperator) {
	matched, rest := o.Terms().Partition(func(k BosonProduct) bool { return k.Shape() == shape })
	sep, err := o.WithTerms(matched)
	mustAdd(err)
	rem, err := o.WithTerms(rest)
	mustAdd(err)

	return wrapOperator(sep), wrapOperator(rem)
}

// String renders "BosonOperator(n){...}".
func (o *BosonOperator) String() string {
	return o.Format(core.Title(bosonOperatorType, o.Options(), o.CurrentNumberModes()))
}

// Encode writes o with codec c.
func (o *BosonOperator) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, bosonOperatorType, o.Operator, core.NewItem[BosonProduct]))
}

// DecodeBosonOperator reads an operator written by Encode.
func DecodeBosonOperator(c core.Codec, data []byte) (*BosonOperator, error) {
	var rec core.Record[core.Item[BosonProduct]]
	if err := c.Decode(data, bosonOperatorType, &rec); err != nil {
		return nil, err
	}
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewBosonOperator(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Key, it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes o with the default codec.
func (o *BosonOperator) MarshalJSON() ([]byte, error) { return o.Encode(core.NewCodec()) }

// UnmarshalJSON decodes o with the default codec.
func (o *BosonOperator) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeBosonOperator(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*o = *decoded

	return nil
}

// mustAdd panics on an error that valid operands cannot produce.
func mustAdd(err error) {
	if err != nil {
		panic("bosons: internal invariant violated: " + err.Error())
	}
}
