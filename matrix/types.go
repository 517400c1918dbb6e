// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the row walks and the builder.
// This file contains ONLY data types; errors and options live in dedicated
// files (errors.go, options.go).
package matrix

// Op is a single-qubit operator as seen by the row walks.
// IY is the real matrix i·Y = [[0,1],[-1,0]] of the decoherence basis.
type Op uint8

const (
	OpI Op = iota
	OpX
	OpY
	OpIY
	OpZ
)

// Site places an operator on qubit Index. Sites of one product are sorted
// by Index and each qubit appears at most once.
type Site struct {
	Index int
	Op    Op
}

// OperatorTerm is one term c·P of a plain operator or Hamiltonian.
type OperatorTerm struct {
	Sites       []Site
	Coefficient complex128
}

// NoiseTerm is one Lindblad term rate·(L ρ R† - ½{R†L, ρ}).
//
// Product is R†·L as a single decoherence product and Phase the product of
// the conjugation prefactor of R and the multiplication phase of R†·L.
// ProductDagger is (R†L)† and DaggerPhase its conjugation prefactor.
type NoiseTerm struct {
	Left, Right   []Site
	Product       []Site
	Phase         complex128
	ProductDagger []Site
	DaggerPhase   float64
	Rate          complex128
}

// COO is a sparse matrix in coordinate form: entry k is
// (Rows[k], Cols[k]) = Values[k]. Entries are sorted by row, then column.
type COO struct {
	Values []complex128
	Rows   []int
	Cols   []int
}

// Len returns the number of stored entries.
func (c COO) Len() int { return len(c.Values) }

// At returns the entry at (row, col), or 0 when absent.
// Complexity: O(nnz).
func (c COO) At(row, col int) complex128 {
	for k := range c.Values {
		if c.Rows[k] == row && c.Cols[k] == col {
			return c.Values[k]
		}
	}

	return 0
}

// Dense expands the matrix to a dim×dim slice of rows. Intended for tests and
// small inspection outputs only.
func (c COO) Dense(dim int) [][]complex128 {
	out := make([][]complex128, dim)
	for i := range out {
		out[i] = make([]complex128, dim)
	}
	for k, v := range c.Values {
		out[c.Rows[k]][c.Cols[k]] += v
	}

	return out
}
