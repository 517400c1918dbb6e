// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Callers match with errors.Is; context is added with fmt.Errorf("ctx: %w", ErrX).

package matrix

import "errors"

var (
	// ErrBadQubitCount is returned when the requested number of qubits is
	// negative or too large for the index arithmetic.
	ErrBadQubitCount = errors.New("matrix: invalid number of qubits")

	// ErrSiteOutOfRange indicates that a product acts on a qubit at or beyond
	// the requested number of qubits.
	ErrSiteOutOfRange = errors.New("matrix: site index out of range")
)
