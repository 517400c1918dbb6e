// SPDX-License-Identifier: MIT

// Package mixed: MixedOperator, a general combination of mixed products.
package mixed

import (
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

const mixedOperatorType = "MixedOperator"

// MixedOperator maps mixed products to complex coefficients. Every key has
// the subsystem counts of the declared layout.
type MixedOperator struct {
	core.Operator[MixedProduct, calc.Complex]
}

// NewMixedOperator returns an empty operator with the given layout.
func NewMixedOperator(layout core.Subsystems) *MixedOperator {
	return newOperator(core.WithSubsystems(layout))
}

func newOperator(opts ...core.Option) *MixedOperator {
	return &MixedOperator{core.NewOperator(core.FitsSubsystems[MixedProduct, calc.Complex], core.ErrMismatchedNumberSubsystems, opts...)}
}

func wrapOperator(op core.Operator[MixedProduct, calc.Complex]) *MixedOperator {
	return &MixedOperator{op}
}

// Layout returns the declared subsystem layout.
func (o *MixedOperator) Layout() core.Subsystems { return o.Options().Subsystems() }

// CurrentExtents returns the largest extent of any stored product per subsystem.
func (o *MixedOperator) CurrentExtents() core.Subsystems { return core.CurrentSubsystems(o.Operator) }

// Extents returns declared capacities, falling back to current extents.
func (o *MixedOperator) Extents() core.Subsystems { return o.Layout().Extents(o.CurrentExtents()) }

// EmptyClone returns an operator of the same layout without terms.
func (o *MixedOperator) EmptyClone() *MixedOperator { return wrapOperator(o.Empty()) }

// Clone returns an independent copy.
func (o *MixedOperator) Clone() *MixedOperator { return wrapOperator(o.Operator.Clone()) }

// Add returns o + other.
func (o *MixedOperator) Add(other *MixedOperator) (*MixedOperator, error) {
	sum, err := o.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapOperator(sum), nil
}

// Sub returns o - other.
func (o *MixedOperator) Sub(other *MixedOperator) (*MixedOperator, error) {
	diff, err := o.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapOperator(diff), nil
}

// Neg returns -o.
func (o *MixedOperator) Neg() *MixedOperator { return wrapOperator(o.Operator.Neg()) }

// Scale returns factor·o.
func (o *MixedOperator) Scale(factor calc.Complex) *MixedOperator {
	return wrapOperator(o.Operator.Scale(factor))
}

// Truncate drops numeric terms below threshold.
func (o *MixedOperator) Truncate(threshold float64) *MixedOperator {
	return wrapOperator(o.Operator.Truncate(threshold))
}

// Equal reports whether layouts and terms agree.
func (o *MixedOperator) Equal(other *MixedOperator) bool { return o.Operator.Equal(other.Operator) }

// Mul returns o·other, multiplying subsystem by subsystem.
func (o *MixedOperator) Mul(other *MixedOperator) (*MixedOperator, error) {
	if err := core.CheckSameSubsystems(o.Options(), other.Options()); err != nil {
		return nil, err
	}
	out := o.EmptyClone()
	for kl, vl := range o.All() {
		for kr, vr := range other.All() {
			terms, err := kl.Multiply(kr)
			if err != nil {
				return nil, err
			}
			for _, t := range terms {
				if err := out.AddTerm(t.Product, vl.Mul(vr).Mul(t.Coefficient)); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// HermitianConjugate returns o†.
func (o *MixedOperator) HermitianConjugate() *MixedOperator {
	out := o.EmptyClone()
	for k, v := range o.All() {
		conj, sign := k.HermitianConjugate()
		mustAdd(out.AddTerm(conj, v.Conj().Scale(sign)))
	}

	return out
}

// String renders "MixedOperator(S[..],B[..],F[..]){...}".
func (o *MixedOperator) String() string {
	return o.Format(core.SubsystemTitle(mixedOperatorType, o.Options(), o.CurrentExtents()))
}

// Encode writes o with codec c.
func (o *MixedOperator) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, mixedOperatorType, o.Operator, core.NewItem[MixedProduct]))
}

// DecodeMixedOperator reads an operator written by Encode.
func DecodeMixedOperator(c core.Codec, data []byte) (*MixedOperator, error) {
	var rec core.Record[core.Item[MixedProduct]]
	if err := c.Decode(data, mixedOperatorType, &rec); err != nil {
		return nil, err
	}
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := newOperator(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Key, it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes o with the default codec.
func (o *MixedOperator) MarshalJSON() ([]byte, error) { return o.Encode(core.NewCodec()) }

// UnmarshalJSON decodes o with the default codec.
func (o *MixedOperator) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeMixedOperator(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*o = *decoded

	return nil
}

// mustAdd panics on an error that valid operands cannot produce.
func mustAdd(err error) {
	if err != nil {
		panic("mixed: internal invariant violated: " + err.Error())
	}
}
