// SPDX-License-Identifier: MIT
//
// File: modes.go
// Role: Key validation and shape helpers shared by bosonic and fermionic maps.

package core

import (
	"fmt"

	"github.com/katalvlaran/quantops/calc"
)

// WithNumberModes declares the number of modes available to keys.
// Panics when n is negative.
func WithNumberModes(n int) Option { return WithCapacity(n) }

// ModeKey is a product spanning a number of bosonic or fermionic modes.
type ModeKey interface {
	Key
	CurrentNumberModes() int
	Len() int
}

// HermitianModeKey is a mode product that stands for itself plus its conjugate.
type HermitianModeKey interface {
	ModeKey
	IsNaturalHermitian() bool
}

// FitsModes rejects keys spanning more modes than declared.
func FitsModes[K ModeKey, V Scalar[V]](opts Options, key K, _ V) error {
	return opts.CheckExtent(key.CurrentNumberModes(), ErrNumberModesExceeded)
}

// HermitianModeValue additionally rejects a non-real coefficient on a
// natural-hermitian key.
func HermitianModeValue[K HermitianModeKey](opts Options, key K, value calc.Complex) error {
	if key.IsNaturalHermitian() && !value.IsReal() {
		return fmt.Errorf("%w: %s is its own conjugate but has coefficient %s", ErrNonHermitianOperator, key, value)
	}

	return FitsModes[K, calc.Complex](opts, key, value)
}

// ModeNoise rejects identity operands and keys spanning more modes than
// declared.
func ModeNoise[K ModeKey](opts Options, key Pair[K], _ calc.Complex) error {
	if key.Left.Len() == 0 || key.Right.Len() == 0 {
		return fmt.Errorf("%w: %s contains an identity operand", ErrInvalidLindbladTerms, key)
	}
	extent := max(key.Left.CurrentNumberModes(), key.Right.CurrentNumberModes())

	return opts.CheckExtent(extent, ErrNumberModesExceeded)
}

// CurrentModes is the largest key extent of a map.
func CurrentModes[K ModeKey, V Scalar[V]](op Operator[K, V]) int {
	n := 0
	for k := range op.All() {
		n = max(n, k.CurrentNumberModes())
	}

	return n
}

// CurrentNoiseModes is the largest operand extent of a noise map.
func CurrentNoiseModes[K ModeKey](op Operator[Pair[K], calc.Complex]) int {
	n := 0
	for k := range op.All() {
		n = max(n, k.Left.CurrentNumberModes(), k.Right.CurrentNumberModes())
	}

	return n
}

// CheckSameModes fails with ErrMismatchedNumberModes when the shapes differ.
func CheckSameModes(a, b Options) error {
	if !a.SameShape(b) {
		return fmt.Errorf("%w: operands declare different numbers of modes", ErrMismatchedNumberModes)
	}

	return nil
}

// Title renders "name(n)" with the declared capacity or current extent.
func Title(name string, opts Options, current int) string {
	return fmt.Sprintf("%s(%d)", name, opts.Extent(current))
}

// MergeTerms sums the coefficients of equal products, keeping first-seen
// order and dropping zero sums.
func MergeTerms[K Key](terms []Term[K]) []Term[K] {
	pos := make(map[string]int, len(terms))
	out := make([]Term[K], 0, len(terms))
	for _, t := range terms {
		key := t.Product.String()
		if i, ok := pos[key]; ok {
			out[i].Coefficient = out[i].Coefficient.Add(t.Coefficient)
			continue
		}
		pos[key] = len(out)
		out = append(out, t)
	}
	kept := out[:0]
	for _, t := range out {
		if !t.Coefficient.IsZero() {
			kept = append(kept, t)
		}
	}

	return kept
}
