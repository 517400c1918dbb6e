// SPDX-License-Identifier: MIT

// Package matrix builds sparse (COO) matrices of qubit operators and of the
// Lindblad superoperator (Liouvillian) acting on flattened density matrices.
//
// What:
//
//   - OperatorCOO: the 2^n × 2^n matrix of Σ c·P for Pauli/decoherence products P.
//   - SuperoperatorCOO: the 4^n × 4^n matrix of
//
//     L(ρ) = -i[H, ρ] + Σ rate·(L ρ R† - ½{R†L, ρ})
//
//     acting on the row-major flattening of ρ.
//
// How:
//
//   - Builder visits rows in increasing order; each row is filled by walking
//     every term's sites over the row's basis index (bit flips for X/Y/iY,
//     phases for Y/iY/Z), accumulated into a column map and emitted sorted.
//   - Exact zeros produced by cancellation are pruned (WithEpsilon relaxes this).
//
// The package knows nothing about products or coefficients: callers (the
// spins package) translate their operators into []Site terms with numeric
// complex128 coefficients.
//
// Complexity: O(4^n · T · s) for T terms of at most s sites.
package matrix
