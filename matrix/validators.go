// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the guards run before any row walk.
//  - Return wrapped sentinels so call sites can match with errors.Is.

package matrix

import "fmt"

// MaxQubits bounds n so that 4^n row indices fit in an int.
const MaxQubits = 31

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: "+format, append([]any{tag, err}, args...)...)
}

// ValidateQubits ensures 0 <= n <= MaxQubits.
// Complexity: O(1).
func ValidateQubits(n int) error {
	if n < 0 || n > MaxQubits {
		return validatorErrorf("ValidateQubits", ErrBadQubitCount, "n=%d", n)
	}

	return nil
}

// ValidateSites ensures every site acts on a qubit below n.
// Complexity: O(len(sites)).
func ValidateSites(sites []Site, n int) error {
	for _, s := range sites {
		if s.Index < 0 || s.Index >= n {
			return validatorErrorf("ValidateSites", ErrSiteOutOfRange, "site %d, n=%d", s.Index, n)
		}
	}

	return nil
}
