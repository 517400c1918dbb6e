// SPDX-License-Identifier: MIT

// Package bosons: BosonHamiltonian, a hermitian combination keyed by
// HermitianBosonProduct. A term (h, v) stands for v·h + conj(v)·h†.
package bosons

import (
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

const bosonHamiltonianType = "BosonHamiltonian"

// BosonHamiltonian maps hermitian boson products to complex coefficients.
// Natural-hermitian keys only accept real coefficients.
type BosonHamiltonian struct {
	core.Operator[HermitianBosonProduct, calc.Complex]
}

// NewBosonHamiltonian returns an empty Hamiltonian.
func NewBosonHamiltonian(opts ...core.Option) *BosonHamiltonian {
	return &BosonHamiltonian{core.NewOperator(core.HermitianModeValue[HermitianBosonProduct], core.ErrMismatchedNumberModes, opts...)}
}

func wrapHamiltonian(op core.Operator[HermitianBosonProduct, calc.Complex]) *BosonHamiltonian {
	return &BosonHamiltonian{op}
}

// BosonHamiltonianFromOperator reinterprets every key of op as a hermitian
// key. Keys that are not the canonical member of their pair fail with a
// *core.MinimumIndexError; complex coefficients on natural-hermitian keys fail
// with core.ErrNonHermitianOperator.
func BosonHamiltonianFromOperator(op *BosonOperator) (*BosonHamiltonian, error) {
	out := NewBosonHamiltonian(op.Options().Replay()...)
	for k, v := range op.All() {
		h, err := NewHermitianBosonProduct(k.ladder.Creators, k.ladder.Annihilators)
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
// natural hermitian, h† with conj(v).
func (h *BosonHamiltonian) ToOperator() *BosonOperator {
	out := NewBosonOperator(h.Options().Replay()...)
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
func (h *BosonHamiltonian) CurrentNumberModes() int { return core.CurrentModes(h.Operator) }

// NumberModes returns the declared number of modes, or the current extent.
func (h *BosonHamiltonian) NumberModes() int { return h.Options().Extent(h.CurrentNumberModes()) }

// EmptyClone returns a Hamiltonian of the same shape without terms.
func (h *BosonHamiltonian) EmptyClone() *BosonHamiltonian { return wrapHamiltonian(h.Empty()) }

// Clone returns an independent copy.
func (h *BosonHamiltonian) Clone() *BosonHamiltonian { return wrapHamiltonian(h.Operator.Clone()) }

// Add returns h + other.
func (h *BosonHamiltonian) Add(other *BosonHamiltonian) (*BosonHamiltonian, error) {
	sum, err := h.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapHamiltonian(sum), nil
}

// Sub returns h - other.
func (h *BosonHamiltonian) Sub(other *BosonHamiltonian) (*BosonHamiltonian, error) {
	diff, err := h.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapHamiltonian(diff), nil
}

// Neg returns -h.
func (h *BosonHamiltonian) Neg() *BosonHamiltonian { return wrapHamiltonian(h.Operator.Neg()) }

// Scale returns factor·h. Real factors keep h hermitian; use ToOperator
// before scaling by a complex number.
func (h *BosonHamiltonian) Scale(factor calc.Float) *BosonHamiltonian {
	return wrapHamiltonian(h.Operator.Scale(calc.FromFloat(factor)))
}

// Truncate drops numeric terms below threshold.
func (h *BosonHamiltonian) Truncate(threshold float64) *BosonHamiltonian {
	return wrapHamiltonian(h.Operator.Truncate(threshold))
}

// Equal reports whether shapes and terms agree.
func (h *BosonHamiltonian) Equal(other *BosonHamiltonian) bool {
	return h.Operator.Equal(other.Operator)
}

// HermitianConjugate returns a copy of h.
func (h *BosonHamiltonian) HermitianConjugate() *BosonHamiltonian { return h.Clone() }

// Mul returns the plain operator h·other.
func (h *BosonHamiltonian) Mul(other *BosonHamiltonian) (*BosonOperator, error) {
	if err := core.CheckSameModes(h.Options(), other.Options()); err != nil {
		return nil, err
	}

	return h.ToOperator().Mul(other.ToOperator())
}

// RemapModes relabels modes of every term, re-canonicalizing keys.
func (h *BosonHamiltonian) RemapModes(mapping map[int]int) (*BosonHamiltonian, error) {
	out := NewBosonHamiltonian()
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
func (h *BosonHamiltonian) SeparateIntoNTerms(shape core.LadderShape) (separated, remainder *BosonHamiltonian) {
	matched, rest := h.Terms().Partition(func(k HermitianBosonProduct) bool { return k.Shape() == shape })
	sep, err := h.WithTerms(matched)
	mustAdd(err)
	rem, err := h.WithTerms(rest)
	mustAdd(err)

	return wrapHamiltonian(sep), wrapHamiltonian(rem)
}

// String renders "BosonHamiltonian(n){...}".
func (h *BosonHamiltonian) String() string {
	return h.Format(core.Title(bosonHamiltonianType, h.Options(), h.CurrentNumberModes()))
}

// Encode writes h with codec c.
func (h *BosonHamiltonian) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, bosonHamiltonianType, h.Operator, core.NewItem[HermitianBosonProduct]))
}

// DecodeBosonHamiltonian reads a Hamiltonian written by Encode.
func DecodeBosonHamiltonian(c core.Codec, data []byte) (*BosonHamiltonian, error) {
	var rec core.Record[core.Item[HermitianBosonProduct]]
	if err := c.Decode(data, bosonHamiltonianType, &rec); err != nil {
		return nil, err
	}
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewBosonHamiltonian(opts...)
	for _, it := range rec.Items {
		if err := out.AddTerm(it.Key, it.Value()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes h with the default codec.
func (h *BosonHamiltonian) MarshalJSON() ([]byte, error) { return h.Encode(core.NewCodec()) }

// UnmarshalJSON decodes h with the default codec.
func (h *BosonHamiltonian) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeBosonHamiltonian(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*h = *decoded

	return nil
}
