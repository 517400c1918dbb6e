// SPDX-License-Identifier: MIT

// Package spins: PauliHamiltonian, a hermitian combination of Pauli products.
// Pauli products are self-adjoint, so hermiticity reduces to real
// coefficients and the map stores calc.Float values directly.
package spins

import (
	"fmt"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
)

const pauliHamiltonianType = "PauliHamiltonian"

// PauliHamiltonian maps Pauli products to real coefficients.
type PauliHamiltonian struct {
	core.Operator[PauliProduct, calc.Float]
}

// NewPauliHamiltonian returns an empty Hamiltonian.
func NewPauliHamiltonian(opts ...core.Option) *PauliHamiltonian {
	return &PauliHamiltonian{core.NewOperator(fitsSpins[PauliProduct, calc.Float], core.ErrMismatchedNumberSpins, opts...)}
}

func wrapPauliHamiltonian(op core.Operator[PauliProduct, calc.Float]) *PauliHamiltonian {
	return &PauliHamiltonian{op}
}

// PauliHamiltonianFromOperator converts an operator with real coefficients.
// A coefficient with a non-zero imaginary part fails with
// core.ErrNonHermitianOperator.
func PauliHamiltonianFromOperator(op *PauliOperator) (*PauliHamiltonian, error) {
	out := NewPauliHamiltonian(op.Options().Replay()...)
	for k, v := range op.All() {
		if !v.IsReal() {
			return nil, fmt.Errorf("%w: %s has coefficient %s", core.ErrNonHermitianOperator, k, v)
		}
		if err := out.AddTerm(k, v.Re()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// CurrentNumberSpins returns the largest extent of any stored product.
func (h *PauliHamiltonian) CurrentNumberSpins() int { return currentSpins(h.Operator) }

// NumberSpins returns the declared number of qubits, or the current extent.
func (h *PauliHamiltonian) NumberSpins() int { return h.Options().Extent(h.CurrentNumberSpins()) }

// EmptyClone returns a Hamiltonian of the same shape without terms.
func (h *PauliHamiltonian) EmptyClone() *PauliHamiltonian { return wrapPauliHamiltonian(h.Empty()) }

// Clone returns an independent copy.
func (h *PauliHamiltonian) Clone() *PauliHamiltonian {
	return wrapPauliHamiltonian(h.Operator.Clone())
}

// Add returns h + other.
func (h *PauliHamiltonian) Add(other *PauliHamiltonian) (*PauliHamiltonian, error) {
	sum, err := h.Combine(other.Operator, false)
	if err != nil {
		return nil, err
	}

	return wrapPauliHamiltonian(sum), nil
}

// Sub returns h - other.
func (h *PauliHamiltonian) Sub(other *PauliHamiltonian) (*PauliHamiltonian, error) {
	diff, err := h.Combine(other.Operator, true)
	if err != nil {
		return nil, err
	}

	return wrapPauliHamiltonian(diff), nil
}

// Neg returns -h.
func (h *PauliHamiltonian) Neg() *PauliHamiltonian { return wrapPauliHamiltonian(h.Operator.Neg()) }

// Scale returns factor·h. Only real factors keep h hermitian.
func (h *PauliHamiltonian) Scale(factor calc.Float) *PauliHamiltonian {
	return wrapPauliHamiltonian(h.Operator.Scale(factor))
}

// Truncate drops numeric terms below threshold.
func (h *PauliHamiltonian) Truncate(threshold float64) *PauliHamiltonian {
	return wrapPauliHamiltonian(h.Operator.Truncate(threshold))
}

// Mul returns the operator product h·other, which is in general not hermitian.
func (h *PauliHamiltonian) Mul(other *PauliHamiltonian) (*PauliOperator, error) {
	return h.ToOperator().Mul(other.ToOperator())
}

// Equal reports whether shapes and terms agree.
func (h *PauliHamiltonian) Equal(other *PauliHamiltonian) bool {
	return h.Operator.Equal(other.Operator)
}

// ToOperator returns h as a general operator.
func (h *PauliHamiltonian) ToOperator() *PauliOperator {
	out := NewPauliOperator(h.Options().Replay()...)
	for k, v := range h.All() {
		mustAdd(out.AddTerm(k, calc.FromFloat(v)))
	}

	return out
}

// RemapQubits relabels qubits of every term through mapping.
func (h *PauliHamiltonian) RemapQubits(mapping map[int]int) (*PauliHamiltonian, error) {
	out := NewPauliHamiltonian()
	for k, v := range h.All() {
		mapped, err := k.RemapQubits(mapping)
		if err != nil {
			return nil, err
		}
		if err := out.AddTerm(mapped, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SeparateIntoNTerms splits h into the terms acting on exactly n qubits and
// the rest.
func (h *PauliHamiltonian) SeparateIntoNTerms(n int) (separated, remainder *PauliHamiltonian) {
	matched, rest := h.Terms().Partition(func(k PauliProduct) bool { return k.Len() == n })
	sep, err := h.WithTerms(matched)
	mustAdd(err)
	rem, err := h.WithTerms(rest)
	mustAdd(err)

	return wrapPauliHamiltonian(sep), wrapPauliHamiltonian(rem)
}

// SparseMatrixCOO returns the 2^n × 2^n matrix of h.
func (h *PauliHamiltonian) SparseMatrixCOO(n int, opts ...matrix.Option) (matrix.COO, error) {
	if err := checkQubits(h.CurrentNumberSpins(), n); err != nil {
		return matrix.COO{}, err
	}
	terms, err := hamiltonianTerms(h.Operator)
	if err != nil {
		return matrix.COO{}, err
	}

	return matrix.OperatorCOO(terms, n, opts...)
}

// SparseMatrixSuperoperatorCOO returns the 4^n × 4^n commutator
// superoperator -i[h, ·].
func (h *PauliHamiltonian) SparseMatrixSuperoperatorCOO(n int, opts ...matrix.Option) (matrix.COO, error) {
	if err := checkQubits(h.CurrentNumberSpins(), n); err != nil {
		return matrix.COO{}, err
	}
	terms, err := hamiltonianTerms(h.Operator)
	if err != nil {
		return matrix.COO{}, err
	}

	return matrix.SuperoperatorCOO(terms, nil, n, opts...)
}

// String renders "PauliHamiltonian(n){...}".
func (h *PauliHamiltonian) String() string {
	return h.Format(title(pauliHamiltonianType, h.Options(), h.CurrentNumberSpins()))
}

// Encode writes h with codec c.
func (h *PauliHamiltonian) Encode(c core.Codec) ([]byte, error) {
	return c.Encode(core.RecordOf(c, pauliHamiltonianType, h.Operator, core.NewRealItem[PauliProduct]))
}

// DecodePauliHamiltonian reads a Hamiltonian written by Encode.
func DecodePauliHamiltonian(c core.Codec, data []byte) (*PauliHamiltonian, error) {
	var rec core.Record[core.Item[PauliProduct]]
	if err := c.Decode(data, pauliHamiltonianType, &rec); err != nil {
		return nil, err
	}
	opts, err := rec.Options()
	if err != nil {
		return nil, err
	}
	out := NewPauliHamiltonian(opts...)
	for _, it := range rec.Items {
		if !it.Im.IsZero() {
			return nil, fmt.Errorf("%w: %s has imaginary part %s", core.ErrNonHermitianOperator, it.Key, it.Im)
		}
		if err := out.AddTerm(it.Key, it.Re); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MarshalJSON encodes h with the default codec.
func (h *PauliHamiltonian) MarshalJSON() ([]byte, error) { return h.Encode(core.NewCodec()) }

// UnmarshalJSON decodes h with the default codec.
func (h *PauliHamiltonian) UnmarshalJSON(data []byte) error {
	decoded, err := DecodePauliHamiltonian(core.NewCodec(), data)
	if err != nil {
		return err
	}
	*h = *decoded

	return nil
}
