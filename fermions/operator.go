// SPDX-License-Identifier: MIT

// Package fermions: FermionOperator, a general combination of fermion products.
package fermions

import (
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

const fermionOperatorType = "FermionOperator"

// FermionOperator maps fermion products to complex coefficients.
type FermionOperator struct {
	core.Operator[FermionProduct, calc.Complex]
}

// NewFermionOperator returns an empty operator. Keys are limited by
// core.WithNumberModes when given.
func NewFermionOperator(opts ...core.Option) *FermionOperator {
	return &FermionOperator{core.NewOperator(core.FitsModes[FermionProduct, calc.Complex], core.ErrMismatchedNumberModes, opts...)}
}

func wrapOperator(op core.Operator[FermionProduct, calc.Complex]) *FermionOperator {
	return &FermionOperator{op}
}

// CurrentNumberModes returns the largest extent of any stored product.
func (o *FermionOperator) CurrentNumberModes() int { return core.CurrentModes(o.Operator) }

// NumberModes returns the declared number of modes, or the current extent.
func (o *FermionOperator) NumberModes() int { return o.Options().Extent(o.CurrentNumberModes()) }

// EmptyClone returns an operator of the same shape without terms.
func (o *FermionOperator) EmptyClone() *FermionOperator { return wrapOperator(o.Empty()) }

// Clone returns an independent copy.
func (o *FermionOperator) Clone() *FermionOperator { return wrapOperator(o.Operator.Clone()) }

// Add returns o + other.
func (o *FermionOperator) Add(other *FermionOperator) (*FermionOperator, error) {
	sum, err := o.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapOperator(sum), nil
}

// Sub returns o - other.
func (o *FermionOperator) Sub(other *FermionOperator) (*FermionOperator, error) {
	diff, err := o.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapOperator(diff), nil
}

// Neg returns -o.
func (o *FermionOperator) Neg() *FermionOperator { return wrapOperator(o.Operator.Neg()) }

// Scale returns factor·o.
func (o *FermionOperator) Scale(factor calc.Complex) *FermionOperator {
	return wrapOperator(o.Operator.Scale(factor))
}

// Truncate drops numeric terms below threshold.
func (o *FermionOperator) Truncate(threshold float64) *FermionOperator {
	return wrapOperator(o.Operator.Truncate(threshold))
}

// Equal reports whether shapes and terms agree.
func (o *FermionOperator) Equal(other *FermionOperator) bool { return o.Operator.Equal(other.Operator) }

// Mul returns the normal-ordered operator product o·other, with the signs
// of the anticommutation relations.
func (o *FermionOperator) Mul(other *FermionOperator) (*FermionOperator, error) {
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
func (o *FermionOperator) HermitianConjugate() *FermionOperator {
	out := o.EmptyClone()
	for k, v := range o.All() {
		conj, sign := k.HermitianConjugate()
		mustAdd(out.AddTerm(conj, v.Conj().Scale(sign)))
	}

	return out
}

// RemapModes relabels the modes of every term through mapping.
func (o *FermionOperator) RemapModes(mapping map[int]int) (*FermionOperator, error) {
	out := NewFermionOperator()
	for k, v := range o.All() {
		mapped, sign, err := k.RemapModes(mapping)
		if err != nil {
			return nil, err
		}
		if err := out.AddTerm(mapped, v.Scale(sign)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SeparateIntoNTerms splits o into the terms with exactly the given numbers
// of creators and annihilators, and the rest.
func (o *FermionOperator) SeparateIntoNTerms(shape core.LadderShape) (separated, remainder *FermionOperator) {
	matched, rest := o.Terms().Partition(func(k FermionProduct) bool { return k.Shape() == shape })
	sep, err := o.WithTerms(matched)
	mustAdd(err)
	rem, err := o.WithTerms(rest)
	mustAdd(err)

	return wrapOperator(sep), wrapOperator(rem)
}

// String renders "FermionOperator(n){...}".
func (o *FermionOperator) String() string {
	return o.Format(core.Title(fermionOperatorType, o.Options(), o.CurrentNumberModes()))
}

// Encode writes o with codec c.
func (o *FermionOperator) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, fermionOperatorType, o.Operator, core.NewItem[FermionProduct]))
}

// DecodeFermionOperator reads an operator written by Encode.
func DecodeFermionOperator(c core.Codec, data []byte) (*FermionOperator, error) {
	var rec core.Record[core.Item[FermionProduct]]
	if err := c.Decode(data, fermionOperatorType, &rec); err != nil {
		return nil, err
	}
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewFermionOperator(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Key, it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes o with the default codec.
func (o *FermionOperator) MarshalJSON() ([]byte, error) { return o.Encode(core.NewCodec()) }

// UnmarshalJSON decodes o with the default codec.
func (o *FermionOperator) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeFermionOperator(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*o = *decoded

	return nil
}

// mustAdd panics on an error that valid operands cannot produce.
func mustAdd(err error) {
	if err != nil {
		panic("fermions: internal invariant violated: " + err.Error())
	}
}
