// SPDX-License-Identifier: MIT

// Package bosons implements operators on bosonic modes.
//
// A BosonProduct is a normal-ordered word of creators c† and annihilators a
// printed as "c{i}...a{j}...", "I" for the identity. Indices are sorted and
// may repeat:
//
//	p, _ := bosons.ParseBosonProduct("c0c0a1")
//	q, _ := bosons.NewBosonProduct([]int{1}, nil)
//	terms := p.Multiply(q) // a1·c1 = c1a1 + 1
//
// HermitianBosonProduct keys BosonHamiltonian: each key stands for itself plus
// its conjugate, and only the canonical member of the pair is accepted.
// BosonLindbladNoiseOperator keys are (left, right) pairs of BosonProduct.
// core.WithNumberModes bounds the modes a map accepts.
package bosons
