// SPDX-License-Identifier: MIT

// Package mixed: MixedLindbladNoiseOperator and MixedLindbladOpenSystem.
package mixed

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

const (
	mixedNoiseType      = "MixedLindbladNoiseOperator"
	mixedOpenSystemType = "MixedLindbladOpenSystem"
)

// NoiseKey is the (left, right) key of a mixed noise operator.
type NoiseKey = core.Pair[MixedDecoherenceProduct]

// MixedLindbladNoiseOperator holds Lindblad rates over pairs of mixed
// decoherence products. Neither operand may be the identity.
type MixedLindbladNoiseOperator struct {
	core.Operator[NoiseKey, calc.Complex]
}

// NewMixedLindbladNoiseOperator returns an empty noise operator with the
// given layout.
func NewMixedLindbladNoiseOperator(layout core.Subsystems) *MixedLindbladNoiseOperator {
	return newNoise(core.WithSubsystems(layout))
}

func newNoise(opts ...core.Option) *MixedLindbladNoiseOperator {
	return &MixedLindbladNoiseOperator{core.NewOperator(core.SubsystemNoise[MixedDecoherenceProduct], core.ErrMismatchedNumberSubsystems, opts...)}
}

func wrapNoise(op core.Operator[NoiseKey, calc.Complex]) *MixedLindbladNoiseOperator {
	return &MixedLindbladNoiseOperator{op}
}

// Layout returns the declared subsystem layout.
func (o *MixedLindbladNoiseOperator) Layout() core.Subsystems { return o.Options().Subsystems() }

// CurrentExtents returns the largest extent of any operand per subsystem.
func (o *MixedLindbladNoiseOperator) CurrentExtents() core.Subsystems {
	return core.CurrentNoiseSubsystems(o.Operator)
}

// EmptyClone returns a noise operator of the same layout without terms.
func (o *MixedLindbladNoiseOperator) EmptyClone() *MixedLindbladNoiseOperator {
	return wrapNoise(o.Empty())
}

// Clone returns an independent copy.
func (o *MixedLindbladNoiseOperator) Clone() *MixedLindbladNoiseOperator {
	return wrapNoise(o.Operator.Clone())
}

// Add returns o + other.
func (o *MixedLindbladNoiseOperator) Add(other *MixedLindbladNoiseOperator) (*MixedLindbladNoiseOperator, error) {
	sum, err := o.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapNoise(sum), nil
}

// Sub returns o - other.
func (o *MixedLindbladNoiseOperator) Sub(other *MixedLindbladNoiseOperator) (*MixedLindbladNoiseOperator, error) {
	diff, err := o.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapNoise(diff), nil
}

// Neg returns -o.
func (o *MixedLindbladNoiseOperator) Neg() *MixedLindbladNoiseOperator {
	return wrapNoise(o.Operator.Neg())
}

// Scale returns factor·o.
func (o *MixedLindbladNoiseOperator) Scale(factor calc.Complex) *MixedLindbladNoiseOperator {
	return wrapNoise(o.Operator.Scale(factor))
}

// Truncate drops numeric rates below threshold.
func (o *MixedLindbladNoiseOperator) Truncate(threshold float64) *MixedLindbladNoiseOperator {
	return wrapNoise(o.Operator.Truncate(threshold))
}

// Equal reports whether layouts and terms agree.
func (o *MixedLindbladNoiseOperator) Equal(other *MixedLindbladNoiseOperator) bool {
	return o.Operator.Equal(other.Operator)
}

// String renders "MixedLindbladNoiseOperator(S[..],B[..],F[..]){...}".
func (o *MixedLindbladNoiseOperator) String() string {
	return o.Format(core.SubsystemTitle(mixedNoiseType, o.Options(), o.CurrentExtents()))
}

// Encode writes o with codec c.
func (o *MixedLindbladNoiseOperator) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, mixedNoiseType, o.Operator, core.NewPairItem[MixedDecoherenceProduct]))
}

// DecodeMixedLindbladNoiseOperator reads a noise operator written by Encode.
func DecodeMixedLindbladNoiseOperator(c core.Codec, data []byte) (*MixedLindbladNoiseOperator, error) {
	var rec core.Record[core.PairItem[MixedDecoherenceProduct]]
	if err := c.Decode(data, mixedNoiseType, &rec); err != nil {
		return nil, err
	}

	return noiseFromRecord(rec)
}

func noiseFromRecord(rec core.Record[core.PairItem[MixedDecoherenceProduct]]) (*MixedLindbladNoiseOperator, error) {
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := newNoise(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Pair(), it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes o with the default codec.
func (o *MixedLindbladNoiseOperator) MarshalJSON() ([]byte, error) { return o.Encode(core.NewCodec()) }

// UnmarshalJSON decodes o with the default codec.
func (o *MixedLindbladNoiseOperator) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeMixedLindbladNoiseOperator(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*o = *decoded

	return nil
}

// MixedLindbladOpenSystem pairs a MixedHamiltonian with mixed noise of the
// same layout.
type MixedLindbladOpenSystem struct {
	system *MixedHamiltonian
	noise  *MixedLindbladNoiseOperator
}

// NewMixedLindbladOpenSystem returns an empty open system with the given layout.
func NewMixedLindbladOpenSystem(layout core.Subsystems) *MixedLindbladOpenSystem {
	return &MixedLindbladOpenSystem{system: NewMixedHamiltonian(layout), noise: NewMixedLindbladNoiseOperator(layout)}
}

// GroupMixedLindbladOpenSystem combines system and noise declaring the same
// layout.
func GroupMixedLindbladOpenSystem(system *MixedHamiltonian, noise *MixedLindbladNoiseOperator) (*MixedLindbladOpenSystem, error) {
	if err := core.CheckSameSubsystems(system.Options(), noise.Options()); err != nil {
		return nil, err
	}

	return &MixedLindbladOpenSystem{system: system.Clone(), noise: noise.Clone()}, nil
}

// Ungroup returns copies of both parts.
func (s *MixedLindbladOpenSystem) Ungroup() (*MixedHamiltonian, *MixedLindbladNoiseOperator) {
	return s.system.Clone(), s.noise.Clone()
}

// System returns the Hamiltonian part for in-place edits.
func (s *MixedLindbladOpenSystem) System() *MixedHamiltonian { return s.system }

// Noise returns the noise part for in-place edits.
func (s *MixedLindbladOpenSystem) Noise() *MixedLindbladNoiseOperator { return s.noise }

// CurrentExtents returns the entrywise larger extent of both parts.
func (s *MixedLindbladOpenSystem) CurrentExtents() core.Subsystems {
	return s.system.CurrentExtents().Max(s.noise.CurrentExtents())
}

// Add returns the termwise sum of both parts.
func (s *MixedLindbladOpenSystem) Add(other *MixedLindbladOpenSystem) (*MixedLindbladOpenSystem, error) {
	system, err := s.system.Add(other.system)
	if err != nil {
		return nil, err
	}
	noise, err := s.noise.Add(other.noise)
	if err != nil {
		return nil, err
	}

	return &MixedLindbladOpenSystem{system: system, noise: noise}, nil
}

// Sub returns the termwise difference of both parts.
func (s *MixedLindbladOpenSystem) Sub(other *MixedLindbladOpenSystem) (*MixedLindbladOpenSystem, error) {
	system, err := s.system.Sub(other.system)
	if err != nil {
		return nil, err
	}
	noise, err := s.noise.Sub(other.noise)
	if err != nil {
		return nil, err
	}

	return &MixedLindbladOpenSystem{system: system, noise: noise}, nil
}

// Neg negates both parts.
func (s *MixedLindbladOpenSystem) Neg() *MixedLindbladOpenSystem {
	return &MixedLindbladOpenSystem{system: s.system.Neg(), noise: s.noise.Neg()}
}

// Scale multiplies both parts by a real factor.
func (s *MixedLindbladOpenSystem) Scale(factor calc.Float) *MixedLindbladOpenSystem {
	return &MixedLindbladOpenSystem{system: s.system.Scale(factor), noise: s.noise.Scale(calc.FromFloat(factor))}
}

// Truncate truncates both parts.
func (s *MixedLindbladOpenSystem) Truncate(threshold float64) *MixedLindbladOpenSystem {
	return &MixedLindbladOpenSystem{system: s.system.Truncate(threshold), noise: s.noise.Truncate(threshold)}
}

// Equal reports whether both parts agree.
func (s *MixedLindbladOpenSystem) Equal(other *MixedLindbladOpenSystem) bool {
	return s.system.Equal(other.system) && s.noise.Equal(other.noise)
}

// String renders both parts under "MixedLindbladOpenSystem(S[..],B[..],F[..]){".
func (s *MixedLindbladOpenSystem) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s{\n", core.SubsystemTitle(mixedOpenSystemType, s.system.Options(), s.CurrentExtents()))
	b.WriteString(s.system.Format("System: "))
	b.WriteString("\n")
	b.WriteString(s.noise.Format("Noise: "))
	b.WriteString("\n}")

	return b.String()
}

type openSystemRecord struct {
	System core.Record[core.Item[HermitianMixedProduct]]        `json:"system" yaml:"system"`
	Noise  core.Record[core.PairItem[MixedDecoherenceProduct]] `json:"noise" yaml:"noise"`
	Meta   core.SerialisationMeta                              `json:"serialisation_meta" yaml:"serialisation_meta"`
}

// Encode writes s with codec c.
func (s *MixedLindbladOpenSystem) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(openSystemRecord{
		System: core.RecordOf(c, mixedHamiltonianType, s.system.Operator, core.NewItem[HermitianMixedProduct]),
		Noise:  core.RecordOf(c, mixedNoiseType, s.noise.Operator, core.NewPairItem[MixedDecoherenceProduct]),
		Meta:   c.Meta(mixedOpenSystemType),
	})
}

// DecodeMixedLindbladOpenSystem reads an open system written by Encode.
func DecodeMixedLindbladOpenSystem(c core.Codec, data []byte) (*MixedLindbladOpenSystem, error) {
	var rec openSystemRecord
	if err := c.Decode(data, mixedOpenSystemType, &rec); err != nil {
		return nil, err
	}
	system, err := hamiltonianFromRecord(rec.System)
	if err != nil {
		return nil, err
	}
	noise, err := noiseFromRecord(rec.Noise)
	if err != nil {
		return nil, err
	}

	return GroupMixedLindbladOpenSystem(system, noise)
}

// MarshalJSON encodes s with the default codec.
func (s *MixedLindbladOpenSystem) MarshalJSON() ([]byte, error) { return s.Encode(core.NewCodec()) }

// UnmarshalJSON decodes s with the default codec.
func (s *MixedLindbladOpenSystem) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeMixedLindbladOpenSystem(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*s = *decoded

	return nil
}
