// SPDX-License-Identifier: MIT

// Package fermions: FermionLindbladNoiseOperator and FermionLindbladOpenSystem.
package fermions

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

const (
	fermionNoiseType      = "FermionLindbladNoiseOperator"
	fermionOpenSystemType = "FermionLindbladOpenSystem"
)

// NoiseKey is the (left, right) key of a fermionic noise operator.
type NoiseKey = core.Pair[FermionProduct]

// FermionLindbladNoiseOperator represents Σ rate·(L ρ R† - ½{R†L, ρ}) over
// fermion products. Neither L nor R may be the identity.
type FermionLindbladNoiseOperator struct {
	core.Operator[NoiseKey, calc.Complex]
}

// NewFermionLindbladNoiseOperator returns an empty noise operator.
func NewFermionLindbladNoiseOperator(opts ...core.Option) *FermionLindbladNoiseOperator {
	return &FermionLindbladNoiseOperator{core.NewOperator(core.ModeNoise[FermionProduct], core.ErrMismatchedNumberModes, opts...)}
}

func wrapNoise(op core.Operator[NoiseKey, calc.Complex]) *FermionLindbladNoiseOperator {
	return &FermionLindbladNoiseOperator{op}
}

// CurrentNumberModes returns the largest extent of any stored operand.
func (o *FermionLindbladNoiseOperator) CurrentNumberModes() int { return core.CurrentNoiseModes(o.Operator) }

// NumberModes returns the declared number of modes, or the current extent.
func (o *FermionLindbladNoiseOperator) NumberModes() int {
	return o.Options().Extent(o.CurrentNumberModes())
}

// EmptyClone returns a noise operator of the same shape without terms.
func (o *FermionLindbladNoiseOperator) EmptyClone() *FermionLindbladNoiseOperator {
	return wrapNoise(o.Empty())
}

// Clone returns an independent copy.
func (o *FermionLindbladNoiseOperator) Clone() *FermionLindbladNoiseOperator {
	return wrapNoise(o.Operator.Clone())
}

// AddNoiseFromFullOperators adds value·conj(vr)·vl to (l, r) for every pair
// of non-identity terms of left and right. Empty operands fail with
// core.ErrInvalidLindbladTerms; on error o is unchanged.
func (o *FermionLindbladNoiseOperator) AddNoiseFromFullOperators(left, right *FermionOperator, value calc.Complex) error {
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
func (o *FermionLindbladNoiseOperator) Add(other *FermionLindbladNoiseOperator) (*FermionLindbladNoiseOperator, error) {
	sum, err := o.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapNoise(sum), nil
}

// Sub returns o - other.
func (o *FermionLindbladNoiseOperator) Sub(other *FermionLindbladNoiseOperator) (*FermionLindbladNoiseOperator, error) {
	diff, err := o.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapNoise(diff), nil
}

// Neg returns -o.
func (o *FermionLindbladNoiseOperator) Neg() *FermionLindbladNoiseOperator {
	return wrapNoise(o.Operator.Neg())
}

// Scale returns factor·o.
func (o *FermionLindbladNoiseOperator) Scale(factor calc.Complex) *FermionLindbladNoiseOperator {
	return wrapNoise(o.Operator.Scale(factor))
}

// Truncate drops numeric rates below threshold.
func (o *FermionLindbladNoiseOperator) Truncate(threshold float64) *FermionLindbladNoiseOperator {
	return wrapNoise(o.Operator.Truncate(threshold))
}

// Equal reports whether shapes and terms agree.
func (o *FermionLindbladNoiseOperator) Equal(other *FermionLindbladNoiseOperator) bool {
	return o.Operator.Equal(other.Operator)
}

// RemapModes relabels both operands of every term through mapping.
func (o *FermionLindbladNoiseOperator) RemapModes(mapping map[int]int) (*FermionLindbladNoiseOperator, error) {
	out := NewFermionLindbladNoiseOperator()
	for k, v := range o.All() {
		l, sl, err := k.Left.RemapModes(mapping)
		if err != nil {
			return nil, err
		}
		r, sr, err := k.Right.RemapModes(mapping)
		if err != nil {
			return nil, err
		}
		if err := out.AddTerm(core.NewPair(l, r), v.Scale(sl*sr)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SeparateIntoNTerms splits o by the shapes of the left and right operands.
func (o *FermionLindbladNoiseOperator) SeparateIntoNTerms(left, right core.LadderShape) (separated, remainder *FermionLindbladNoiseOperator) {
	matched, rest := o.Terms().Partition(func(k NoiseKey) bool {
		return k.Left.Shape() == left && k.Right.Shape() == right
	})
	sep, err := o.WithTerms(matched)
	mustAdd(err)
	rem, err := o.WithTerms(rest)
	mustAdd(err)

	return wrapNoise(sep), wrapNoise(rem)
}

// String renders "FermionLindbladNoiseOperator(n){...}".
func (o *FermionLindbladNoiseOperator) String() string {
	return o.Format(core.Title(fermionNoiseType, o.Options(), o.CurrentNumberModes()))
}

// Encode writes o with codec c.
func (o *FermionLindbladNoiseOperator) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, fermionNoiseType, o.Operator, core.NewPairItem[FermionProduct]))
}

// DecodeFermionLindbladNoiseOperator reads a noise operator written by Encode.
func DecodeFermionLindbladNoiseOperator(c core.Codec, data []byte) (*FermionLindbladNoiseOperator, error) {
	var rec core.Record[core.PairItem[FermionProduct]]
	if err := c.Decode(data, fermionNoiseType, &rec); err != nil {
		return nil, err
	}

	return noiseFromRecord(rec)
}

func noiseFromRecord(rec core.Record[core.PairItem[FermionProduct]]) (*FermionLindbladNoiseOperator, error) {
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewFermionLindbladNoiseOperator(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Pair(), it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes o with the default codec.
func (o *FermionLindbladNoiseOperator) MarshalJSON() ([]byte, error) { return o.Encode(core.NewCodec()) }

// UnmarshalJSON decodes o with the default codec.
func (o *FermionLindbladNoiseOperator) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeFermionLindbladNoiseOperator(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*o = *decoded

	return nil
}

// FermionLindbladOpenSystem pairs a FermionHamiltonian with fermionic noise.
type FermionLindbladOpenSystem struct {
	system *FermionHamiltonian
	noise  *FermionLindbladNoiseOperator
}

// NewFermionLindbladOpenSystem returns an empty open system; opts apply to
// both parts.
func NewFermionLindbladOpenSystem(opts ...core.Option) *FermionLindbladOpenSystem {
	return &FermionLindbladOpenSystem{system: NewFermionHamiltonian(opts...), noise: NewFermionLindbladNoiseOperator(opts...)}
}

// GroupFermionLindbladOpenSystem combines system and noise declaring the same
// number of modes.
func GroupFermionLindbladOpenSystem(system *FermionHamiltonian, noise *FermionLindbladNoiseOperator) (*FermionLindbladOpenSystem, error) {
	if err := core.CheckSameModes(system.Options(), noise.Options()); err != nil {
		return nil, err
	}

	return &FermionLindbladOpenSystem{system: system.Clone(), noise: noise.Clone()}, nil
}

// Ungroup returns copies of both parts.
func (s *FermionLindbladOpenSystem) Ungroup() (*FermionHamiltonian, *FermionLindbladNoiseOperator) {
	return s.system.Clone(), s.noise.Clone()
}

// System returns the Hamiltonian part for in-place edits.
func (s *FermionLindbladOpenSystem) System() *FermionHamiltonian { return s.system }

// Noise returns the noise part for in-place edits.
func (s *FermionLindbladOpenSystem) Noise() *FermionLindbladNoiseOperator { return s.noise }

// CurrentNumberModes returns the larger extent of both parts.
func (s *FermionLindbladOpenSystem) CurrentNumberModes() int {
	return max(s.system.CurrentNumberModes(), s.noise.CurrentNumberModes())
}

// NumberModes returns the declared number of modes, or the current extent.
func (s *FermionLindbladOpenSystem) NumberModes() int {
	return s.system.Options().Extent(s.CurrentNumberModes())
}

// Add returns the termwise sum of both parts.
func (s *FermionLindbladOpenSystem) Add(other *FermionLindbladOpenSystem) (*FermionLindbladOpenSystem, error) {
	system, err := s.system.Add(other.system)
	if err != nil {
		return nil, err
	}
	noise, err := s.noise.Add(other.noise)
	if err != nil {
		return nil, err
	}

	return &FermionLindbladOpenSystem{system: system, noise: noise}, nil
}

// Sub returns the termwise difference of both parts.
func (s *FermionLindbladOpenSystem) Sub(other *FermionLindbladOpenSystem) (*FermionLindbladOpenSystem, error) {
	system, err := s.system.Sub(other.system)
	if err != nil {
		return nil, err
	}
	noise, err := s.noise.Sub(other.noise)
	if err != nil {
		return nil, err
	}

	return &FermionLindbladOpenSystem{system: system, noise: noise}, nil
}

// Neg negates both parts.
func (s *FermionLindbladOpenSystem) Neg() *FermionLindbladOpenSystem {
	return &FermionLindbladOpenSystem{system: s.system.Neg(), noise: s.noise.Neg()}
}

// Scale multiplies both parts by a real factor.
func (s *FermionLindbladOpenSystem) Scale(factor calc.Float) *FermionLindbladOpenSystem {
	return &FermionLindbladOpenSystem{system: s.system.Scale(factor), noise: s.noise.Scale(calc.FromFloat(factor))}
}

// Truncate truncates both parts.
func (s *FermionLindbladOpenSystem) Truncate(threshold float64) *FermionLindbladOpenSystem {
	return &FermionLindbladOpenSystem{system: s.system.Truncate(threshold), noise: s.noise.Truncate(threshold)}
}

// Equal reports whether both parts agree.
func (s *FermionLindbladOpenSystem) Equal(other *FermionLindbladOpenSystem) bool {
	return s.system.Equal(other.system) && s.noise.Equal(other.noise)
}

// String renders both parts under "FermionLindbladOpenSystem(n){".
func (s *FermionLindbladOpenSystem) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(%d){\n", fermionOpenSystemType, s.NumberModes())
	b.WriteString(s.system.Format("System: "))
	b.WriteString("\n")
	b.WriteString(s.noise.Format("Noise: "))
	b.WriteString("\n}")

	return b.String()
}

type openSystemRecord struct {
	System core.Record[core.Item[HermitianFermionProduct]] `json:"system" yaml:"system"`
	Noise  core.Record[core.PairItem[FermionProduct]]      `json:"noise" yaml:"noise"`
	Meta   core.SerialisationMeta                        `json:"serialisation_meta" yaml:"serialisation_meta"`
}

// Encode writes s with codec c.
func (s *FermionLindbladOpenSystem) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(openSystemRecord{
		System: core.RecordOf(c, fermionHamiltonianType, s.system.Operator, core.NewItem[HermitianFermionProduct]),
		Noise:  core.RecordOf(c, fermionNoiseType, s.noise.Operator, core.NewPairItem[FermionProduct]),
		Meta:   c.Meta(fermionOpenSystemType),
	})
}

// DecodeFermionLindbladOpenSystem reads an open system written by Encode.
func DecodeFermionLindbladOpenSystem(c core.Codec, data []byte) (*FermionLindbladOpenSystem, error) {
	var rec openSystemRecord
	if err := c.Decode(data, fermionOpenSystemType, &rec); err != nil {
		return nil, err
	}
	systemOpts, err := rec.System.Options()
	if err != nil {
		return nil, err
	}
	system := NewFermionHamiltonian(systemOpts...)
	for _, it := range rec.System.Items {
		if err := system.AddTerm(it.Key, it.Value()); err != nil {
			return nil, err
		}
	}
	noise, err := noiseFromRecord(rec.Noise)
	if err != nil {
		return nil, err
	}

	return GroupFermionLindbladOpenSystem(system, noise)
}

// MarshalJSON encodes s with the default codec.
func (s *FermionLindbladOpenSystem) MarshalJSON() ([]byte, error) { return s.Encode(core.NewCodec()) }

// UnmarshalJSON decodes s with the default codec.
func (s *FermionLindbladOpenSystem) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeFermionLindbladOpenSystem(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*s = *decoded

	return nil
}
