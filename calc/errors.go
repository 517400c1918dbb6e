// SPDX-License-Identifier: MIT

package calc

import "errors"

var (
	// ErrSymbolicValue is returned when a numeric value is required but the
	// scalar holds a symbolic expression.
	ErrSymbolicValue = errors.New("calc: value is symbolic")

	// ErrBadEncoding is returned when an encoded scalar is neither a number nor a string.
	ErrBadEncoding = errors.New("calc: invalid scalar encoding")
)
