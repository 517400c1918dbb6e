// SPDX-License-Identifier: MIT

// Package matrix: row walks of qubit operators and Lindblad superoperators.
//
// Basis conventions:
//   - An operator on n qubits acts on dim = 2^n basis states; bit k of a basis
//     index is the state of qubit k.
//   - A density matrix ρ is flattened row-major into 4^n entries: index
//     r = r_div·dim + r_mod addresses ρ[r_div][r_mod]. Operators acting from the
//     left of ρ touch r_div (bits shifted by n), operators acting from the
//     right touch r_mod (no shift) and appear transposed.
//
// Every walk starts at column = row and flips or phases one bit per site.
package matrix

// walk applies the sites of one product to the basis index rowAdj, moving
// column by ±2^(index+shift) for bit flips and returning the accumulated phase.
// conjY replaces Y by its transpose (= complex conjugate) -Y.
// Complexity: O(len(sites)).
func walk(sites []Site, rowAdj, shift, column int, conjY bool) (int, complex128) {
	prefac := complex(1, 0)
	for _, s := range sites {
		bit := (rowAdj >> s.Index) & 1
		step := 1 << (s.Index + shift)
		switch s.Op {
		case OpX:
			column += flip(bit, step)
		case OpY:
			column += flip(bit, step)
			if bit == 0 {
				prefac *= -1i
			} else {
				prefac *= 1i
			}
			if conjY {
				prefac = -prefac
			}
		case OpIY:
			column += flip(bit, step)
			if bit == 1 {
				prefac = -prefac
			}
		case OpZ:
			if bit == 1 {
				prefac = -prefac
			}
		}
	}

	return column, prefac
}

// flip returns the column offset that toggles a bit currently equal to bit.
func flip(bit, step int) int {
	if bit == 0 {
		return step
	}

	return -step
}

// addOperatorRow accumulates Σ c·P on one row of a dim = 2^n operator.
func addOperatorRow(acc Row, row int, terms []OperatorTerm) {
	for _, t := range terms {
		col, p := walk(t.Sites, row, 0, row, false)
		acc.Add(col, p*t.Coefficient)
	}
}

// addCommutatorRow accumulates -i·c·(H⊗I - I⊗Hᵀ) on one superoperator row.
func addCommutatorRow(acc Row, row, n int, terms []OperatorTerm) {
	dim := 1 << n
	for _, t := range terms {
		if t.Coefficient == 0 {
			continue
		}
		col, p := walk(t.Sites, row/dim, n, row, false)
		acc.Add(col, -1i*p*t.Coefficient)
		col, p = walk(t.Sites, row%dim, 0, row, true)
		acc.Add(col, 1i*p*t.Coefficient)
	}
}

// addDissipatorRow accumulates rate·(L⊗R̄ - ½(R†L)⊗I - ½I⊗(R†L)ᵀ) on one
// superoperator row.
func addDissipatorRow(acc Row, row, n int, terms []NoiseTerm) {
	dim := 1 << n
	for _, t := range terms {
		// L ρ R†
		col, pl := walk(t.Left, row/dim, n, row, false)
		col, pr := walk(t.Right, row%dim, 0, col, true)
		acc.Add(col, t.Rate*pl*pr)

		// -½ R†L ρ
		col, p := walk(t.Product, row/dim, n, row, false)
		acc.Add(col, -0.5*t.Rate*t.Phase*p)

		// -½ ρ R†L
		col, p = walk(t.ProductDagger, row%dim, 0, row, false)
		acc.Add(col, -0.5*t.Rate*t.Phase*complex(t.DaggerPhase, 0)*p)
	}
}

// OperatorCOO builds the 2^n × 2^n matrix of Σ c·P.
func OperatorCOO(terms []OperatorTerm, n int, opts ...Option) (COO, error) {
	if err := validateTerms(terms, n); err != nil {
		return COO{}, err
	}
	b := NewBuilder(opts...)

	return b.Build(1<<n, func(row int, acc Row) { addOperatorRow(acc, row, terms) }), nil
}

// SuperoperatorCOO builds the 4^n × 4^n Liouvillian of a Hamiltonian (the
// commutator part) plus Lindblad noise (the dissipator part). Either slice
// may be empty; both empty yields an empty COO.
func SuperoperatorCOO(hamiltonian []OperatorTerm, noise []NoiseTerm, n int, opts ...Option) (COO, error) {
	if err := validateTerms(hamiltonian, n); err != nil {
		return COO{}, err
	}
	for _, t := range noise {
		for _, s := range [][]Site{t.Left, t.Right, t.Product, t.ProductDagger} {
			if err := ValidateSites(s, n); err != nil {
				return COO{}, err
			}
		}
	}
	b := NewBuilder(opts...)
	rows := 1 << (2 * n)

	return b.Build(rows, func(row int, acc Row) {
		addCommutatorRow(acc, row, n, hamiltonian)
		addDissipatorRow(acc, row, n, noise)
	}), nil
}

func validateTerms(terms []OperatorTerm, n int) error {
	if err := ValidateQubits(n); err != nil {
		return err
	}
	for _, t := range terms {
		if err := ValidateSites(t.Sites, n); err != nil {
			return err
		}
	}

	return nil
}
