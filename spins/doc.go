// SPDX-License-Identifier: MIT

// Package spins implements operators on qubits.
//
// Three single-site bases are supported:
//
//	Pauli        {I, X, Y, Z}    general operators and Hamiltonians
//	Decoherence  {I, X, iY, Z}   real basis of Lindblad noise operands
//	PlusMinus    {I, +, -, Z}    ladder operators
//
// A product places at most one operator on each qubit and prints as
// "{index}{op}..." sorted by index, "I" for the identity:
//
//	p, _ := spins.ParsePauliProduct("0X2Z")
//	q := spins.NewPauliProduct().Y(0)
//	r, phase := p.Multiply(q) // "0Z2Z", -i
//
// Operator maps (PauliOperator, PauliHamiltonian, DecoherenceOperator,
// PlusMinusOperator) and noise maps (PauliLindbladNoiseOperator,
// PlusMinusLindbladNoiseOperator) embed core.Operator. WithNumberSpins bounds
// the keys a map accepts; without it maps are unbounded.
//
// PauliLindbladOpenSystem groups a Hamiltonian with noise and builds the
// sparse Liouvillian through package matrix.
package spins
