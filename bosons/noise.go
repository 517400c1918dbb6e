// SPDX-License-Identifier: MIT

// Package bosons: BosonLindbladNoiseOperator and BosonLindbladOpenSystem.
package bosons

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

const (
	bosonNoiseType      = "BosonLindbladNoiseOperator"
	bosonOpenSystemType = "BosonLindbladOpenSystem"
)

// NoiseKey is the (left, right) key of a bosonic noise operator.
type NoiseKey = core.Pair[BosonProduct]

// BosonLindbladNoiseOperator represents Σ rate·(L ρ R† - ½{R†L, ρ}) over
// boson products. Neither L nor R may be the identity.
type BosonLindbladNoiseOperator struct {
	core.Operator[NoiseKey, calc.Complex]
}

// NewBosonLindbladNoiseOperator returns an empty noise operator.
func NewBosonLindbladNoiseOperator(opts ...core.Option) *BosonLindbladNoiseOperator {
	return &BosonLindbladNoiseOperator{core.NewOperator(core.ModeNoise[BosonProduct], core.ErrMismatchedNumberModes, opts...)}
}

func wrapNoise(op core.Operator[NoiseKey, calc.Complex]) *BosonLindbladNoiseOperator {
	return &BosonLindbladNoiseOperator{op}
}

// CurrentNumberModes returns the largest extent of any stored operand.
func (o *BosonLindbladNoiseOperator) CurrentNumberModes() int { return core.CurrentNoiseModes(o.Operator) }

// NumberModes returns the declared number of modes, or the current extent.
func (o *BosonLindbladNoiseOperator) NumberModes() int {
	return o.Options().Extent(o.CurrentNumberModes())
}

// EmptyClone returns a noise operator of the same shape without terms.
func (o *BosonLindbladNoiseOperator) EmptyClone() *BosonLindbladNoiseOperator {
	return wrapNoise(o.Empty())
}

// Clone returns an independent copy.
func (o *BosonLindbladNoiseOperator) Clone() *BosonLindbladNoiseOperator {
	return wrapNoise(o.Operator.Clone())
}

// AddNoiseFromFullOperators adds value·conj(vr)·vl to (l, r) for every pair
// of non-identity terms of left and right. Empty operands fail with
// core.ErrInvalidLindbladTerms; on error o is unchanged.
func (o *BosonLindbladNoiseOperator) AddNoiseFromFullOperators(left, right *BosonOperator, value calc.Complex) error {
	if left.IsEmpty() || right.IsEmpty() {
		return fmt.Errorf("%w: noise operands must not be empty", core.ErrInvalidLindbladTerms)
	}
	scratch := o.Operator.Clone()
	for l, vl := range left.All() {
		if l.Len() == 0 {
			continue
		}
		for r, vr := range right.All() {
			if r.Len() == 0 {
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
func (o *BosonLindbladNoiseOperator) Add(other *BosonLindbladNoiseOperator) (*BosonLindbladNoiseOperator, error) {
	sum, err := o.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapNoise(sum), nil
}

// Sub returns o - other.
func (o *BosonLindbladNoiseOperator) Sub(other *BosonLindbladNoiseOperator) (*BosonLindbladNoiseOperator, error) {
	diff, err := o.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapNoise(diff), nil
}

// Neg returns -o.
func (o *BosonLindbladNoiseOperator) Neg() *BosonLindbladNoiseOperator {
	return wrapNoise(o.Operator.Neg())
}

// Scale returns factor·o.
func (o *BosonLindbladNoiseOperator) Scale(factor calc.Complex) *BosonLindbladNoiseOperator {
	return wrapNoise(o.Operator.Scale(factor))
}

// Truncate drops numeric rates below threshold.
func (o *BosonLindbladNoiseOperator) Truncate(threshold float64) *BosonLindbladNoiseOperator {
	return wrapNoise(o.Operator.Truncate(threshold))
}

// Equal reports whether shapes and terms agree.
func (o *BosonLindbladNoiseOperator) Equal(other *BosonLindbladNoiseOperator) bool {
	return o.Operator.Equal(other.Operator)
}

// RemapModes relabels both operands of every term through mapping.
func (o *BosonLindbladNoiseOperator) RemapModes(mapping map[int]int) (*BosonLindbladNoiseOperator, error) {
	out := NewBosonLindbladNoiseOperator()
	for k, v := range o.All() {
		l, err := k.Left.RemapModes(mapping)
		if err != nil {
			return nil, err
		}
		r, err := k.Right.RemapModes(mapping)
		if err != nil {
			return nil, err
		}
		if err := out.AddTerm(core.NewPair(l, r), v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SeparateIntoNTerms splits o by the shapes of the left and right operands.
func (o *BosonLindbladNoiseOperator) SeparateIntoNTerms(left, right core.LadderShape) (separated, remainder *BosonLindbladNoiseOperator) {
	matched, rest := o.Terms().Partition(func(k NoiseKey) bool {
		return k.Left.Shape() == left && k.Right.Shape() == right
	})
	sep, err := o.WithTerms(matched)
	mustAdd(err)
	rem, err := o.WithTerms(rest)
	mustAdd(err)

	return wrapNoise(sep), wrapNoise(rem)
}

// String renders "BosonLindbladNoiseOperator(n){...}".
func (o *BosonLindbladNoiseOperator) String() string {
	return o.Format(core.Title(bosonNoiseType, o.Options(), o.CurrentNumberModes()))
}

// Encode writes o with codec c.
func (o *BosonLindbladNoiseOperator) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, bosonNoiseType, o.Operator, core.NewPairItem[BosonProduct]))
}

// DecodeBosonLindbladNoiseOperator reads a noise operator written by Encode.
func DecodeBosonLindbladNoiseOperator(c core.Codec, data []byte) (*BosonLindbladNoiseOperator, error) {
	var rec core.Record[core.PairItem[BosonProduct]]
	if err := c.Decode(data, bosonNoiseType, &rec); err != nil {
		return nil, err
	}

	return noiseFromRecord(rec)
}

func noiseFromRecord(rec core.Record[core.PairItem[BosonProduct]]) (*BosonLindbladNoiseOperator, error) {
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewBosonLindbladNoiseOperator(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Pair(), it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes o with the default codec.
func (o *BosonLindbladNoiseOperator) MarshalJSON() ([]byte, error) { return o.Encode(core.NewCodec()) }

// UnmarshalJSON decodes o with the default codec.
func (o *BosonLindbladNoiseOperator) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeBosonLindbladNoiseOperator(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*o = *decoded

	return nil
}

// BosonLindbladOpenSystem pairs a BosonHamiltonian with bosonic noise.
type BosonLindbladOpenSystem struct {
	system *BosonHamiltonian
	noise  *BosonLindbladNoiseOperator
}

// NewBosonLindbladOpenSystem returns an empty open system; opts apply to
// both parts.
func NewBosonLindbladOpenSystem(opts ...core.Option) *BosonLindbladOpenSystem {
	return &BosonLindbladOpenSystem{system: NewBosonHamiltonian(opts...), noise: NewBosonLindbladNoiseOperator(opts...)}
}

// GroupBosonLindbladOpenSystem combines system and noise declaring the same
// number of modes.
func GroupBosonLindbladOpenSystem(system *BosonHamiltonian, noise *BosonLindbladNoiseOperator) (*BosonLindbladOpenSystem, error) {
	if err := core.CheckSameModes(system.Options(), noise.Options()); err != nil {
		return nil, err
	}

	return &BosonLindbladOpenSystem{system: system.Clone(), noise: noise.Clone()}, nil
}

// Ungroup returns copies of both parts.
func (s *BosonLindbladOpenSystem) Ungroup() (*BosonHamiltonian, *BosonLindbladNoiseOperator) {
	return s.system.Clone(), s.noise.Clone()
}

// System returns the Hamiltonian part for in-place edits.
func (s *BosonLindbladOpenSystem) System() *BosonHamiltonian { return s.system }

// Noise returns the noise part for in-place edits.
func (s *BosonLindbladOpenSystem) Noise() *BosonLindbladNoiseOperator { return s.noise }

// CurrentNumberModes returns the larger extent of both parts.
func (s *BosonLindbladOpenSystem) CurrentNumberModes() int {
	return max(s.system.CurrentNumberModes(), s.noise.CurrentNumberModes())
}

// NumberModes returns the declared number of modes, or the current extent.
func (s *BosonLindbladOpenSystem) NumberModes() int {
	return s.system.Options().Extent(s.CurrentNumberModes())
}

// Add returns the termwise sum of both parts.
func (s *BosonLindbladOpenSystem) Add(other *BosonLindbladOpenSystem) (*BosonLindbladOpenSystem, error) {
	system, err := s.system.Add(other.system)
	if err != nil {
		return nil, err
	}
	noise, err := s.noise.Add(other.noise)
	if err != nil {
		return nil, err
	}

	return &BosonLindbladOpenSystem{system: system, noise: noise}, nil
}

// Sub returns the termwise difference of both parts.
func (s *BosonLindbladOpenSystem) Sub(other *BosonLindbladOpenSystem) (*BosonLindbladOpenSystem, error) {
	system, err := s.system.Sub(other.system)
	if err != nil {
		return nil, err
	}
	noise, err := s.noise.Sub(other.noise)
	if err != nil {
		return nil, err
	}

	return &BosonLindbladOpenSystem{system: system, noise: noise}, nil
}

// Neg negates both parts.
func (s *BosonLindbladOpenSystem) Neg() *BosonLindbladOpenSystem {
	return &BosonLindbladOpenSystem{system: s.system.Neg(), noise: s.noise.Neg()}
}

// Scale multiplies both parts by a real factor.
func (s *BosonLindbladOpenSystem) Scale(factor calc.Float) *BosonLindbladOpenSystem {
	return &BosonLindbladOpenSystem{system: s.system.Scale(factor), noise: s.noise.Scale(calc.FromFloat(factor))}
}

// Truncate truncates both parts.
func (s *BosonLindbladOpenSystem) Truncate(threshold float64) *BosonLindbladOpenSystem {
	return &BosonLindbladOpenSystem{system: s.system.Truncate(threshold), noise: s.noise.Truncate(threshold)}
}

// Equal reports whether both parts agree.
func (s *BosonLindbladOpenSystem) Equal(other *BosonLindbladOpenSystem) bool {
	return s.system.Equal(other.system) && s.noise.Equal(other.noise)
}

// String renders both parts under "BosonLindbladOpenSystem(n){".
func (s *BosonLindbladOpenSystem) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(%d){\n", bosonOpenSystemType, s.NumberModes())
	b.WriteString(s.system.Format("System: "))
	b.WriteString("\n")
	b.WriteString(s.noise.Format("Noise: "))
	b.WriteString("\n}")

	return b.String()
}

type openSystemRecord struct {
	System core.Record[core.Item[HermitianBosonProduct]] `json:"system" yaml:"system"`
	Noise  core.Record[core.PairItem[BosonProduct]]      `json:"noise" yaml:"noise"`
	Meta   core.SerialisationMeta                        `json:"serialisation_meta" yaml:"serialisation_meta"`
}

// Encode writes s with codec c.
func (s *BosonLindbladOpenSystem) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(openSystemRecord{
		System: core.RecordOf(c, bosonHamiltonianType, s.system.Operator, core.NewItem[HermitianBosonProduct]),
		Noise:  core.RecordOf(c, bosonNoiseType, s.noise.Operator, core.NewPairItem[BosonProduct]),
		Meta:   c.Meta(bosonOpenSystemType),
	})
}

// DecodeBosonLindbladOpenSystem reads an open system written by Encode.
func DecodeBosonLindbladOpenSystem(c core.Codec, data []byte) (*BosonLindbladOpenSystem, error) {
	var rec openSystemRecord
	if err := c.Decode(data, bosonOpenSystemType, &rec); err != nil {
		return nil, err
	}
	systemOpts, err := rec.System.Options()
	if err != nil {
		return nil, err
	}
	system := NewBosonHamiltonian(systemOpts...)
	for _, it := range rec.System.Items {
		if err := system.AddTerm(it.Key, it.Value()); err != nil {
			return nil, err
		}
	}
	noise, err := noiseFromRecord(rec.Noise)
	if err != nil {
		return nil, err
	}

	return GroupBosonLindbladOpenSystem(system, noise)
}

// MarshalJSON encodes s with the default codec.
func (s *BosonLindbladOpenSystem) MarshalJSON() ([]byte, error) { return s.Encode(core.NewCodec()) }

// UnmarshalJSON decodes s with the default codec.
func (s *BosonLindbladOpenSystem) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeBosonLindbladOpenSystem(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*s = *decoded

	return nil
}
