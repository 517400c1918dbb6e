// SPDX-License-Identifier: MIT

// Package spins: single-site operators of the three spin bases.
//
// Every enum reserves its zero value for the identity so a missing site reads
// as identity. Multiplication tables return the product operator and the
// phase it picks up; conversion tables return the expansion of one operator
// into another basis.
package spins

import "github.com/katalvlaran/quantops/matrix"

// Pauli is a single-qubit operator of the Pauli basis {I, X, Y, Z}.
type Pauli uint8

const (
	PauliI Pauli = iota
	PauliX
	PauliY
	PauliZ
)

// String returns the grammar letter of p.
func (p Pauli) String() string {
	switch p {
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	default:
		return "I"
	}
}

func parsePauli(s string) (Pauli, bool) {
	switch s {
	case "I":
		return PauliI, true
	case "X":
		return PauliX, true
	case "Y":
		return PauliY, true
	case "Z":
		return PauliZ, true
	}

	return PauliI, false
}

// pauliTable[l][r] is l·r as (operator, phase).
var pauliTable = [4][4]struct {
	op    Pauli
	phase complex128
}{
	PauliI: {{PauliI, 1}, {PauliX, 1}, {PauliY, 1}, {PauliZ, 1}},
	PauliX: {{PauliX, 1}, {PauliI, 1}, {PauliZ, 1i}, {PauliY, -1i}},
	PauliY: {{PauliY, 1}, {PauliZ, -1i}, {PauliI, 1}, {PauliX, 1i}},
	PauliZ: {{PauliZ, 1}, {PauliY, 1i}, {PauliX, -1i}, {PauliI, 1}},
}

// Multiply returns p·q and the phase of the product.
func (p Pauli) Multiply(q Pauli) (Pauli, complex128) {
	e := pauliTable[p][q]
	return e.op, e.phase
}

func (p Pauli) matrixOp() matrix.Op {
	switch p {
	case PauliX:
		return matrix.OpX
	case PauliY:
		return matrix.OpY
	case PauliZ:
		return matrix.OpZ
	default:
		return matrix.OpI
	}
}

// Decoherence is a single-qubit operator of the real decoherence basis
// {I, X, iY, Z}, where iY = i·Y.
type Decoherence uint8

const (
	DecoherenceI Decoherence = iota
	DecoherenceX
	DecoherenceIY
	DecoherenceZ
)

// String returns the grammar token of d.
func (d Decoherence) String() string {
	switch d {
	case DecoherenceX:
		return "X"
	case DecoherenceIY:
		return "iY"
	case DecoherenceZ:
		return "Z"
	default:
		return "I"
	}
}

func parseDecoherence(s string) (Decoherence, bool) {
	switch s {
	case "I":
		return DecoherenceI, true
	case "X":
		return DecoherenceX, true
	case "iY":
		return DecoherenceIY, true
	case "Z":
		return DecoherenceZ, true
	}

	return DecoherenceI, false
}

// decoherenceTable[l][r] is l·r; every phase is real.
var decoherenceTable = [4][4]struct {
	op    Decoherence
	phase complex128
}{
	DecoherenceI:  {{DecoherenceI, 1}, {DecoherenceX, 1}, {DecoherenceIY, 1}, {DecoherenceZ, 1}},
	DecoherenceX:  {{DecoherenceX, 1}, {DecoherenceI, 1}, {DecoherenceZ, -1}, {DecoherenceIY, -1}},
	DecoherenceIY: {{DecoherenceIY, 1}, {DecoherenceZ, 1}, {DecoherenceI, -1}, {DecoherenceX, -1}},
	DecoherenceZ:  {{DecoherenceZ, 1}, {DecoherenceIY, 1}, {DecoherenceX, 1}, {DecoherenceI, 1}},
}

// Multiply returns d·e and the (real) phase of the product.
func (d Decoherence) Multiply(e Decoherence) (Decoherence, complex128) {
	t := decoherenceTable[d][e]
	return t.op, t.phase
}

// conjugatePrefactor is the sign of d† relative to d.
func (d Decoherence) conjugatePrefactor() float64 {
	if d == DecoherenceIY {
		return -1
	}

	return 1
}

func (d Decoherence) matrixOp() matrix.Op {
	switch d {
	case DecoherenceX:
		return matrix.OpX
	case DecoherenceIY:
		return matrix.OpIY
	case DecoherenceZ:
		return matrix.OpZ
	default:
		return matrix.OpI
	}
}

// PlusMinus is a single-qubit operator of the ladder basis {I, +, -, Z} with
// σ+ = (X + iY)/2 and σ- = (X - iY)/2.
type PlusMinus uint8

const (
	PlusMinusI PlusMinus = iota
	PlusMinusPlus
	PlusMinusMinus
	PlusMinusZ
)

// String returns the grammar token of p.
func (p PlusMinus) String() string {
	switch p {
	case PlusMinusPlus:
		return "+"
	case PlusMinusMinus:
		return "-"
	case PlusMinusZ:
		return "Z"
	default:
		return "I"
	}
}

func parsePlusMinus(s string) (PlusMinus, bool) {
	switch s {
	case "I":
		return PlusMinusI, true
	case "+":
		return PlusMinusPlus, true
	case "-":
		return PlusMinusMinus, true
	case "Z":
		return PlusMinusZ, true
	}

	return PlusMinusI, false
}

// conjugate swaps σ+ and σ-.
func (p PlusMinus) conjugate() PlusMinus {
	switch p {
	case PlusMinusPlus:
		return PlusMinusMinus
	case PlusMinusMinus:
		return PlusMinusPlus
	default:
		return p
	}
}

type expansion[O any] struct {
	op     O
	factor complex128
}

func (p Pauli) toPlusMinus() []expansion[PlusMinus] {
	switch p {
	case PauliX:
		return []expansion[PlusMinus]{{PlusMinusPlus, 1}, {PlusMinusMinus, 1}}
	case PauliY:
		return []expansion[PlusMinus]{{PlusMinusPlus, -1i}, {PlusMinusMinus, 1i}}
	case PauliZ:
		return []expansion[PlusMinus]{{PlusMinusZ, 1}}
	default:
		return []expansion[PlusMinus]{{PlusMinusI, 1}}
	}
}

func (d Decoherence) toPlusMinus() []expansion[PlusMinus] {
	switch d {
	case DecoherenceX:
		return []expansion[PlusMinus]{{PlusMinusPlus, 1}, {PlusMinusMinus, 1}}
	case DecoherenceIY:
		return []expansion[PlusMinus]{{PlusMinusPlus, 1}, {PlusMinusMinus, -1}}
	case DecoherenceZ:
		return []expansion[PlusMinus]{{PlusMinusZ, 1}}
	default:
		return []expansion[PlusMinus]{{PlusMinusI, 1}}
	}
}

func (p PlusMinus) toPauli() []expansion[Pauli] {
	switch p {
	case PlusMinusPlus:
		return []expansion[Pauli]{{PauliX, 0.5}, {PauliY, 0.5i}}
	case PlusMinusMinus:
		return []expansion[Pauli]{{PauliX, 0.5}, {PauliY, -0.5i}}
	case PlusMinusZ:
		return []expansion[Pauli]{{PauliZ, 1}}
	default:
		return []expansion[Pauli]{{PauliI, 1}}
	}
}

func (p PlusMinus) toDecoherence() []expansion[Decoherence] {
	switch p {
	case PlusMinusPlus:
		return []expansion[Decoherence]{{DecoherenceX, 0.5}, {DecoherenceIY, 0.5}}
	case PlusMinusMinus:
		return []expansion[Decoherence]{{DecoherenceX, 0.5}, {DecoherenceIY, -0.5}}
	case PlusMinusZ:
		return []expansion[Decoherence]{{DecoherenceZ, 1}}
	default:
		return []expansion[Decoherence]{{DecoherenceI, 1}}
	}
}

// pauliToDecoherence maps Y to iY with factor -i.
func pauliToDecoherence(p Pauli) (Decoherence, complex128) {
	switch p {
	case PauliX:
		return DecoherenceX, 1
	case PauliY:
		return DecoherenceIY, -1i
	case PauliZ:
		return DecoherenceZ, 1
	default:
		return DecoherenceI, 1
	}
}

// decoherenceToPauli maps iY to Y with factor i.
func decoherenceToPauli(d Decoherence) (Pauli, complex128) {
	switch d {
	case DecoherenceX:
		return PauliX, 1
	case DecoherenceIY:
		return PauliY, 1i
	case DecoherenceZ:
		return PauliZ, 1
	default:
		return PauliI, 1
	}
}
