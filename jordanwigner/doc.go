// SPDX-License-Identifier: MIT

// Package jordanwigner maps qubit operators to fermion operators and back.
//
// The qubit state |0> is the empty mode and |1> the occupied one. With
// σ± = (X ± iY)/2 the mapping reads
//
//	c†_p = Z_0 ... Z_{p-1} σ-_p
//	a_p  = Z_0 ... Z_{p-1} σ+_p
//	Z_p  = 1 - 2 c†_p a_p
//
// Every conversion keeps the declared capacity, so a map over n qubits
// becomes a map over n modes and vice versa. Hamiltonians stay
// Hamiltonians: the fermion side keeps the canonical member of every
// conjugate pair, the spin side the real part of h + h†.
//
// Conversions live in their own package because spins and fermions do not
// import each other.
package jordanwigner
