// SPDX-License-Identifier: MIT

// Package calc implements the scalar coefficients of operator maps.
//
// A Float is a tagged union holding either a numeric float64 or an opaque
// symbolic expression; a Complex is a pair of Floats. Arithmetic between
// numeric values is computed directly, while any symbolic operand produces a
// textual expression. The expression grammar is opaque: symbols are combined
// as strings and never evaluated.
//
// Display follows the scientific notation used by the canonical operator
// strings:
//
//	0.1   -> 1e-1
//	0.0   -> 0e0
//	1.5   -> 1.5e0
//	(1,0) -> (1e0 + i * 0e0)
//
// Both types encode to JSON and YAML as plain scalars (numbers or strings);
// a Complex encodes as the two-element list [re, im].
package calc
