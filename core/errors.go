// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by every operator package.
// Product constructors, parsers and operator maps return these sentinels,
// usually wrapped with context via fmt.Errorf("...: %w", ErrX); callers match
// them with errors.Is. Panics are reserved for internal invariant violations.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrFromStringFailed is returned when a product string is malformed
	// (missing leading index, non-integer index, duplicated index).
	ErrFromStringFailed = errors.New("core: product string could not be parsed")

	// ErrIncorrectPauliEntry is returned for an unknown single-site operator symbol.
	ErrIncorrectPauliEntry = errors.New("core: unknown single-site operator")

	// ErrParsing is returned when a composite string carries an unknown subsystem tag.
	ErrParsing = errors.New("core: parsing error")

	// ErrIndicesNotNormalOrdered is returned when a creator follows an annihilator.
	ErrIndicesNotNormalOrdered = errors.New("core: indices are not normal ordered")

	// ErrIndicesContainDoubles is returned when a fermionic index repeats.
	ErrIndicesContainDoubles = errors.New("core: indices contain a double")

	// ErrIncorrectlyOrderedIndices is returned when fermionic indices are not strictly increasing.
	ErrIncorrectlyOrderedIndices = errors.New("core: indices are not strictly increasing")

	// ErrCreatorsAnnihilatorsMinimumIndex is returned when a hermitian product
	// is not its own canonical representative.
	ErrCreatorsAnnihilatorsMinimumIndex = errors.New("core: minimum annihilator index precedes minimum creator index")

	// ErrNegativeIndex is returned when a site or mode index is below zero.
	ErrNegativeIndex = errors.New("core: index must be non-negative")

	// ErrProductIndexAlreadyOccupied is returned when concatenation reuses a site.
	ErrProductIndexAlreadyOccupied = errors.New("core: product index already occupied")

	// ErrRemappingFailed is returned when an index mapping is not a bijection.
	ErrRemappingFailed = errors.New("core: index remapping failed")

	// ErrMismatchedNumberSubsystems is returned when subsystem counts differ.
	ErrMismatchedNumberSubsystems = errors.New("core: mismatched number of subsystems")

	// ErrNumberSpinsExceeded is returned when a key uses more spins than declared.
	ErrNumberSpinsExceeded = errors.New("core: number of spins exceeded")

	// ErrNumberModesExceeded is returned when a key uses more modes than declared.
	ErrNumberModesExceeded = errors.New("core: number of modes exceeded")

	// ErrMismatchedNumberSpins is returned when two spin shapes must agree but do not.
	ErrMismatchedNumberSpins = errors.New("core: mismatched number of spins")

	// ErrMismatchedNumberModes is returned when two mode shapes must agree but do not.
	ErrMismatchedNumberModes = errors.New("core: mismatched number of modes")

	// ErrNonHermitianOperator is returned when a natural-hermitian key would
	// carry a non-real coefficient.
	ErrNonHermitianOperator = errors.New("core: operator is not hermitian")

	// ErrInvalidLindbladTerms is returned when a noise term uses the identity product.
	ErrInvalidLindbladTerms = errors.New("core: invalid Lindblad terms")

	// ErrVersionMismatch is returned when serialised data is incompatible with the library.
	ErrVersionMismatch = errors.New("core: version mismatch")

	// ErrTypeMismatch is returned when serialised data names another type.
	ErrTypeMismatch = errors.New("core: type mismatch")

	// ErrGeneric is the catch-all for malformed records.
	ErrGeneric = errors.New("core: generic error")
)

// NoIndex marks an absent minimum index in MinimumIndexError.
const NoIndex = -1

// MinimumIndexError reports the deciding creator/annihilator pair of a
// non-canonical hermitian product. AnnihilatorMin is NoIndex when the
// creators outlast the annihilators.
type MinimumIndexError struct {
	CreatorMin     int
	AnnihilatorMin int
}

func (e *MinimumIndexError) Error() string {
	if e.AnnihilatorMin == NoIndex {
		return fmt.Sprintf("%v: creator %d has no matching annihilator", ErrCreatorsAnnihilatorsMinimumIndex, e.CreatorMin)
	}

	return fmt.Sprintf("%v: creator %d, annihilator %d", ErrCreatorsAnnihilatorsMinimumIndex, e.CreatorMin, e.AnnihilatorMin)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *MinimumIndexError) Unwrap() error { return ErrCreatorsAnnihilatorsMinimumIndex }

// SubsystemError reports subsystem counts (spins, bosons, fermions) of a
// target shape against the offending key or operand.
type SubsystemError struct {
	Target [3]int
	Actual [3]int
}

func (e *SubsystemError) Error() string {
	return fmt.Sprintf("%v: target S%d/B%d/F%d, actual S%d/B%d/F%d", ErrMismatchedNumberSubsystems,
		e.Target[0], e.Target[1], e.Target[2], e.Actual[0], e.Actual[1], e.Actual[2])
}

// Unwrap exposes the sentinel to errors.Is.
func (e *SubsystemError) Unwrap() error { return ErrMismatchedNumberSubsystems }

// VersionError reports an incompatible data version.
type VersionError struct {
	TypeName     string
	LibraryMajor int
	LibraryMinor int
	DataMajor    int
	DataMinor    int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%v: %s data requires %d.%d, library is %d.%d", ErrVersionMismatch,
		e.TypeName, e.DataMajor, e.DataMinor, e.LibraryMajor, e.LibraryMinor)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *VersionError) Unwrap() error { return ErrVersionMismatch }
