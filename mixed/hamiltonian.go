// SPDX-License-Identifier: MIT

// Package mixed: MixedHamiltonian, keyed by HermitianMixedProduct.
package mixed

import (
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

const mixedHamiltonianType = "MixedHamiltonian"

// MixedHamiltonian maps hermitian mixed products to complex coefficients.
// A term (h, v) stands for v·h + conj(v)·h†.
type MixedHamiltonian struct {
	core.Operator[HermitianMixedProduct, calc.Complex]
}

// NewMixedHamiltonian returns an empty Hamiltonian with the given layout.
func NewMixedHamiltonian(layout core.Subsystems) *MixedHamiltonian {
	return newHamiltonian(core.WithSubsystems(layout))
}

func newHamiltonian(opts ...core.Option) *MixedHamiltonian {
	return &MixedHamiltonian{core.NewOperator(core.HermitianSubsystemValue[HermitianMixedProduct], core.ErrMismatchedNumberSubsystems, opts...)}
}

func wrapHamiltonian(op core.Operator[HermitianMixedProduct, calc.Complex]) *MixedHamiltonian {
	return &MixedHamiltonian{op}
}

// MixedHamiltonianFromOperator reinterprets every key of op as a hermitian
// key. Non-canonical keys fail with a *core.MinimumIndexError.
func MixedHamiltonianFromOperator(op *MixedOperator) (*MixedHamiltonian, error) {
	out := newHamiltonian(op.Options().Replay()...)
	for k, v := range op.All() {
		h, err := NewHermitianMixedProduct(k.t.spins, k.t.bosons, k.t.fermions)
		if err != nil {
			return nil, err
		}
		if err := out.AddTerm(h, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ToOperator expands every non-natural key into h and h†.
func (h *MixedHamiltonian) ToOperator() *MixedOperator {
	out := newOperator(h.Options().Replay()...)
	for k, v := range h.All() {
		p := k.Plain()
		mustAdd(out.AddTerm(p, v))
		if !k.IsNaturalHermitian() {
			conj, sign := p.HermitianConjugate()
			mustAdd(out.AddTerm(conj, v.Conj().Scale(sign)))
		}
	}

	return out
}

// Layout returns the declared subsystem layout.
func (h *MixedHamiltonian) Layout() core.Subsystems { return h.Options().Subsystems() }

// CurrentExtents returns the largest extent of any stored product per subsystem.
func (h *MixedHamiltonian) CurrentExtents() core.Subsystems { return core.CurrentSubsystems(h.Operator) }

// EmptyClone returns a Hamiltonian of the same layout without terms.
func (h *MixedHamiltonian) EmptyClone() *MixedHamiltonian { return wrapHamiltonian(h.Empty()) }

// Clone returns an independent copy.
func (h *MixedHamiltonian) Clone() *MixedHamiltonian { return wrapHamiltonian(h.Operator.Clone()) }

// Add returns h + other.
func (h *MixedHamiltonian) Add(other *MixedHamiltonian) (*MixedHamiltonian, error) {
	sum, err := h.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapHamiltonian(sum), nil
}

// Sub returns h - other.
func (h *MixedHamiltonian) Sub(other *MixedHamiltonian) (*MixedHamiltonian, error) {
	diff, err := h.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapHamiltonian(diff), nil
}

// Neg returns -h.
func (h *MixedHamiltonian) Neg() *MixedHamiltonian { return wrapHamiltonian(h.Operator.Neg()) }

// Scale returns factor·h.
func (h *MixedHamiltonian) Scale(factor calc.Float) *MixedHamiltonian {
	return wrapHamiltonian(h.Operator.Scale(calc.FromFloat(factor)))
}

// Truncate drops numeric terms below threshold.
func (h *MixedHamiltonian) Truncate(threshold float64) *MixedHamiltonian {
	return wrapHamiltonian(h.Operator.Truncate(threshold))
}

// Equal reports whether layouts and terms agree.
func (h *MixedHamiltonian) Equal(other *MixedHamiltonian) bool {
	return h.Operator.Equal(other.Operator)
}

// Mul returns the plain operator h·other.
func (h *MixedHamiltonian) Mul(other *MixedHamiltonian) (*MixedOperator, error) {
	return h.ToOperator().Mul(other.ToOperator())
}

// String renders "MixedHamiltonian(S[..],B[..],F[..]){...}".
func (h *MixedHamiltonian) String() string {
	return h.Format(core.SubsystemTitle(mixedHamiltonianType, h.Options(), h.CurrentExtents()))
}

// Encode writes h with codec c.
func (h *MixedHamiltonian) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, mixedHamiltonianType, h.Operator, core.NewItem[HermitianMixedProduct]))
}

// DecodeMixedHamiltonian reads a Hamiltonian written by Encode.
func DecodeMixedHamiltonian(c core.Codec, data []byte) (*MixedHamiltonian, error) {
	var rec core.Record[core.Item[HermitianMixedProduct]]
	if err := c.Decode(data, mixedHamiltonianType, &rec); err != nil {
		return nil, err
	}

	return hamiltonianFromRecord(rec)
}

func hamiltonianFromRecord(rec core.Record[core.Item[HermitianMixedProduct]]) (*MixedHamiltonian, error) {
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := newHamiltonian(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Key, it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes h with the default codec.
func (h *MixedHamiltonian) MarshalJSON() ([]byte, error) { return h.Encode(core.NewCodec()) }

// UnmarshalJSON decodes h with the default codec.
func (h *MixedHamiltonian) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeMixedHamiltonian(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*h = *decoded

	return nil
}
