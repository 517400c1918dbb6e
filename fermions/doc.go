// SPDX-License-Identifier: MIT

// Package fermions implements operators on fermionic modes.
//
// A FermionProduct is a normal-ordered word of creators c† and annihilators a
// printed as "c{i}...a{j}...", "I" for the identity. Both index lists are
// strictly increasing; CreateValidPair sorts arbitrary lists and returns the
// sign of the permutation:
//
//	p, v, err := fermions.CreateValidPair([]int{1, 0}, nil, calc.NewComplex(1, 0)) // c0c1, -1
//
// Multiplication uses {a_i, c†_j} = δ_ij, so branches with a repeated index
// vanish. HermitianFermionProduct keys FermionHamiltonian: each key stands
// for itself plus its conjugate, and only the canonical member of the pair is
// accepted. FermionLindbladNoiseOperator keys are (left, right) pairs of
// FermionProduct. core.WithNumberModes bounds the modes a map accepts.
package fermions
