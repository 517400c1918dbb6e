// SPDX-License-Identifier: MIT

// Package spins: PauliLindbladOpenSystem pairs a Hamiltonian with Lindblad
// noise over the same qubits.
package spins

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
)

const pauliOpenSystemType = "PauliLindbladOpenSystem"

// PauliLindbladOpenSystem is the generator dρ/dt = -i[H, ρ] + D(ρ).
type PauliLindbladOpenSystem struct {
	system *PauliHamiltonian
	noise  *PauliLindbladNoiseOperator
}

// NewPauliLindbladOpenSystem returns an empty open system; opts apply to both
// parts.
func NewPauliLindbladOpenSystem(opts ...core.Option) *PauliLindbladOpenSystem {
	return &PauliLindbladOpenSystem{system: NewPauliHamiltonian(opts...), noise: NewPauliLindbladNoiseOperator(opts...)}
}

// GroupPauliLindbladOpenSystem combines system and noise. Both must declare
// the same number of spins.
func GroupPauliLindbladOpenSystem(system *PauliHamiltonian, noise *PauliLindbladNoiseOperator) (*PauliLindbladOpenSystem, error) {
	if err := checkSameShape(system.Options(), noise.Options()); err != nil {
		return nil, err
	}

	return &PauliLindbladOpenSystem{system: system.Clone(), noise: noise.Clone()}, nil
}

// Ungroup returns copies of the Hamiltonian and the noise.
func (s *PauliLindbladOpenSystem) Ungroup() (*PauliHamiltonian, *PauliLindbladNoiseOperator) {
	return s.system.Clone(), s.noise.Clone()
}

// System returns the Hamiltonian part for in-place edits.
func (s *PauliLindbladOpenSystem) System() *PauliHamiltonian { return s.system }

// Noise returns the noise part for in-place edits.
func (s *PauliLindbladOpenSystem) Noise() *PauliLindbladNoiseOperator { return s.noise }

// CurrentNumberSpins returns the larger extent of both parts.
func (s *PauliLindbladOpenSystem) CurrentNumberSpins() int {
	return max(s.system.CurrentNumberSpins(), s.noise.CurrentNumberSpins())
}

// NumberSpins returns the declared number of qubits, or the current extent.
func (s *PauliLindbladOpenSystem) NumberSpins() int {
	return s.system.Options().Extent(s.CurrentNumberSpins())
}

// EmptyClone returns an open system of the same shape without terms.
func (s *PauliLindbladOpenSystem) EmptyClone() *PauliLindbladOpenSystem {
	return &PauliLindbladOpenSystem{system: s.system.EmptyClone(), noise: s.noise.EmptyClone()}
}

// Add returns the termwise sum of both parts.
func (s *PauliLindbladOpenSystem) Add(other *PauliLindbladOpenSystem) (*PauliLindbladOpenSystem, error) {
	system, err := s.system.Add(other.system)
	if err != nil {
		return nil, err
	}
	noise, err := s.noise.Add(other.noise)
	if err != nil {
		return nil, err
	}

	return &PauliLindbladOpenSystem{system: system, noise: noise}, nil
}

// Sub returns the termwise difference of both parts.
func (s *PauliLindbladOpenSystem) Sub(other *PauliLindbladOpenSystem) (*PauliLindbladOpenSystem, error) {
	system, err := s.system.Sub(other.system)
	if err != nil {
		return nil, err
	}
	noise, err := s.noise.Sub(other.noise)
	if err != nil {
		return nil, err
	}

	return &PauliLindbladOpenSystem{system: system, noise: noise}, nil
}

// Neg negates both parts.
func (s *PauliLindbladOpenSystem) Neg() *PauliLindbladOpenSystem {
	return &PauliLindbladOpenSystem{system: s.system.Neg(), noise: s.noise.Neg()}
}

// Scale multiplies both parts by a real factor.
func (s *PauliLindbladOpenSystem) Scale(factor calc.Float) *PauliLindbladOpenSystem {
	return &PauliLindbladOpenSystem{system: s.system.Scale(factor), noise: s.noise.Scale(calc.FromFloat(factor))}
}

// Truncate truncates both parts.
func (s *PauliLindbladOpenSystem) Truncate(threshold float64) *PauliLindbladOpenSystem {
	return &PauliLindbladOpenSystem{system: s.system.Truncate(threshold), noise: s.noise.Truncate(threshold)}
}

// Equal reports whether both parts agree.
func (s *PauliLindbladOpenSystem) Equal(other *PauliLindbladOpenSystem) bool {
	return s.system.Equal(other.system) && s.noise.Equal(other.noise)
}

// SparseMatrixSuperoperatorCOO returns the 4^n × 4^n Liouvillian of the
// commutator plus the dissipator.
func (s *PauliLindbladOpenSystem) SparseMatrixSuperoperatorCOO(n int, opts ...matrix.Option) (matrix.COO, error) {
	if err := checkQubits(s.CurrentNumberSpins(), n); err != nil {
		return matrix.COO{}, err
	}
	hamiltonian, err := hamiltonianTerms(s.system.Operator)
	if err != nil {
		return matrix.COO{}, err
	}
	noise, err := noiseTerms(s.noise.Operator)
	if err != nil {
		return matrix.COO{}, err
	}

	return matrix.SuperoperatorCOO(hamiltonian, noise, n, opts...)
}

// String renders both parts under "PauliLindbladOpenSystem(n){".
func (s *PauliLindbladOpenSystem) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(%d){\n", pauliOpenSystemType, s.NumberSpins())
	b.WriteString(s.system.Format("System: "))
	b.WriteString("\n")
	b.WriteString(s.noise.Format("Noise: "))
	b.WriteString("\n}")

	return b.String()
}

type pauliOpenSystemRecord struct {
	System core.Record[core.Item[PauliProduct]]           `json:"system" yaml:"system"`
	Noise  core.Record[core.PairItem[DecoherenceProduct]] `json:"noise" yaml:"noise"`
	Meta   core.SerialisationMeta                         `json:"serialisation_meta" yaml:"serialisation_meta"`
}

// Encode writes s with codec c.
func (s *PauliLindbladOpenSystem) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(pauliOpenSystemRecord{
		System: core.RecordOf(c, pauliHamiltonianType, s.system.Operator, core.NewRealItem[PauliProduct]),
		Noise:  core.RecordOf(c, pauliNoiseType, s.noise.Operator, core.NewPairItem[DecoherenceProduct]),
		Meta:   c.Meta(pauliOpenSystemType),
	})
}

// DecodePauliLindbladOpenSystem reads an open system written by Encode.
func DecodePauliLindbladOpenSystem(c core.Codec, data []byte) (*PauliLindbladOpenSystem, error) {
	var rec pauliOpenSystemRecord
	if err := c.Decode(data, pauliOpenSystemType, &rec); err != nil {
		return nil, err
	}
	systemOpts, err := rec.System.Options()
	if err != nil {
		return nil, err
	}
	system := NewPauliHamiltonian(systemOpts...)
	for _, it := range rec.System.Items {
		if !it.Im.IsZero() {
			return nil, fmt.Errorf("%w: %s has imaginary part %s", core.ErrNonHermitianOperator, it.Key, it.Im)
		}
		if err := system.AddTerm(it.Key, it.Re); err != nil {
			return nil, err
		}
	}
	noiseOpts, err := rec.Noise.Options()
	if err != nil {
		return nil, err
	}
	noise := NewPauliLindbladNoiseOperator(noiseOpts...)
	for _, it := range rec.Noise.Items {
		if err := noise.AddTerm(it.Pair(), it.Value()); err != nil {
			return nil, err
		}
	}

	return GroupPauliLindbladOpenSystem(system, noise)
}

// MarshalJSON encodes s with the default codec.
func (s *PauliLindbladOpenSystem) MarshalJSON() ([]byte, error) { return s.Encode(core.NewCodec()) }

// UnmarshalJSON decodes s with the default codec.
func (s *PauliLindbladOpenSystem) UnmarshalJSON(data []byte) error {
	decoded, err := DecodePauliLindbladOpenSystem(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*s = *decoded

	return nil
}
