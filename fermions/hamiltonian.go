// SPDX-License-Identifier: MIT

// Package fermions: FermionHamiltonian, a hermitian combination keyed by
// HermitianFermionProduct. A term (h, v) stands for v·h + conj(v)·h†.
package fermions

import (
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

const fermionHamiltonianType = "FermionHamiltonian"

// FermionHamiltonian maps hermitian fermion products to complex coefficients.
// Natural-hermitian keys only accept real coefficients.
type FermionHamiltonian struct {
	core.Operator[HermitianFermionProduct, calc.Complex]
}

// NewFermionHamiltonian returns an empty Hamiltonian.
func NewFermionHamiltonian(opts ...core.Option) *FermionHamiltonian {
	return &FermionHamiltonian{core.NewOperator(core.HermitianModeValue[HermitianFermionProduct], core.ErrMismatchedNumberModes, opts...)}
}

func wrapHamiltonian(op core.Operator[HermitianFermionProduct, calc.Complex]) *FermionHamiltonian {
	return &FermionHamiltonian{op}
}

// FermionHamiltonianFromOperator reinterprets every key of op as a hermitian
// key. Keys that are not the canonical member of their pair fail with a
// *core.MinimumIndexError; complex coefficients on natural-hermitian keys fail
// with core.ErrNonHermitianOperator.
func FermionHamiltonianFromOperator(op *FermionOperator) (*FermionHamiltonian, error) {
	out := NewFermionHamiltonian(op.Options().Replay()...)
	for k, v := range op.All() {
		h, err := NewHermitianFermionProduct(k.ladder.Creators, k.ladder.Annihilators)
		if err != nil {
			return nil, err
		}
		if err := out.AddTerm(h, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ToOperator expands every term into h with v and, for keys that are not
// natural hermitian, h† with conj(v) times the reordering sign.
func (h *FermionHamiltonian) ToOperator() *FermionOperator {
	out := NewFermionOperator(h.Options().Replay()...)
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

// CurrentNumberModes returns the largest extent of any stored product.
func (h *FermionHamiltonian) CurrentNumberModes() int { return core.CurrentModes(h.Operator) }

// NumberModes returns the declared number of modes, or the current extent.
func (h *FermionHamiltonian) NumberModes() int { return h.Options().Extent(h.CurrentNumberModes()) }

// EmptyClone returns a Hamiltonian of the same shape without terms.
func (h *FermionHamiltonian) EmptyClone() *FermionHamiltonian { return wrapHamiltonian(h.Empty()) }

// Clone returns an independent copy.
func (h *FermionHamiltonian) Clone() *FermionHamiltonian { return wrapHamiltonian(h.Operator.Clone()) }

// Add returns h + other.
func (h *FermionHamiltonian) Add(other *FermionHamiltonian) (*FermionHamiltonian, error) {
	sum, err := h.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapHamiltonian(sum), nil
}

// Sub returns h - other.
func (h *FermionHamiltonian) Sub(other *FermionHamiltonian) (*FermionHamiltonian, error) {
	diff, err := h.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapHamiltonian(diff), nil
}

// Neg returns -h.
func (h *FermionHamiltonian) Neg() *FermionHamiltonian { return wrapHamiltonian(h.Operator.Neg()) }

// Scale returns factor·h. Real factors keep h hermitian; use ToOperator
// before scaling by a complex number.
func (h *FermionHamiltonian) Scale(factor calc.Float) *FermionHamiltonian {
	return wrapHamiltonian(h.Operator.Scale(calc.FromFloat(factor)))
}

// Truncate drops numeric terms below threshold.
func (h *FermionHamiltonian) Truncate(threshold float64) *FermionHamiltonian {
	return wrapHamiltonian(h.Operator.Truncate(threshold))
}

// Equal reports whether shapes and terms agree.
func (h *FermionHamiltonian) Equal(other *FermionHamiltonian) bool {
	return h.Operator.Equal(other.Operator)
}

// HermitianConjugate returns a copy of h.
func (h *FermionHamiltonian) HermitianConjugate() *FermionHamiltonian { return h.Clone() }

// Mul returns the plain operator h·other.
func (h *FermionHamiltonian) Mul(other *FermionHamiltonian) (*FermionOperator, error) {
	if err := core.CheckSameModes(h.Options(), other.Options()); err != nil {
		return nil, err
	}

	return h.ToOperator().Mul(other.ToOperator())
}

// RemapModes relabels modes of every term, re-canonicalizing keys.
func (h *FermionHamiltonian) RemapModes(mapping map[int]int) (*FermionHamiltonian, error) {
	out := NewFermionHamiltonian()
	for k, v := range h.All() {
		mapped, value, err := k.RemapModes(mapping, v)
		if err != nil {
			return nil, err
		}
		if err := out.AddTerm(mapped, value); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SeparateIntoNTerms splits h into the terms with exactly the given numbers
// of creators and annihilators, and the rest.
func (h *FermionHamiltonian) SeparateIntoNTerms(shape core.LadderShape) (separated, remainder *FermionHamiltonian) {
	matched, rest := h.Terms().Partition(func(k HermitianFermionProduct) bool { return k.Shape() == shape })
	sep, err := h.WithTerms(matched)
	mustAdd(err)
	rem, err := h.WithTerms(rest)
	mustAdd(err)

	return wrapHamiltonian(sep), wrapHamiltonian(rem)
}

// String renders "FermionHamiltonian(n){...}".
func (h *FermionHamiltonian) String() string {
	return h.Format(core.Title(fermionHamiltonianType, h.Options(), h.CurrentNumberModes()))
}

// Encode writes h with codec c.
func (h *FermionHamiltonian) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, fermionHamiltonianType, h.Operator, core.NewItem[HermitianFermionProduct]))
}

// DecodeFermionHamiltonian reads a Hamiltonian written by Encode.
func DecodeFermionHamiltonian(c core.Codec, data []byte) (*FermionHamiltonian, error) {
	var rec core.Record[core.Item[HermitianFermionProduct]]
	if err := c.Decode(data, fermionHamiltonianType, &rec); err != nil {
		return nil, err
	}
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewFermionHamiltonian(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Key, it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes h with the default codec.
func (h *FermionHamiltonian) MarshalJSON() ([]byte, error) { return h.Encode(core.NewCodec()) }

// UnmarshalJSON decodes h with the default codec.
func (h *FermionHamiltonian) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeFermionHamiltonian(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*h = *decoded

	return nil
}
