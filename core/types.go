// SPDX-License-Identifier: MIT

// Package core defines the generic operator map shared by every system type:
// an insertion-ordered collection of (product, coefficient) pairs keyed by the
// canonical string of the product.
//
// This file declares the contracts a key and a coefficient must satisfy,
// the Term produced by product multiplication and the Pair key of noise maps.
package core

import "github.com/katalvlaran/quantops/calc"

// Key is a product index. Its canonical String is the identity of the key:
// two keys are the same map entry iff their strings are equal.
type Key interface {
	String() string
}

// Scalar is the coefficient contract (implemented by calc.Float and calc.Complex).
// The zero value of V must be the additive identity.
type Scalar[V any] interface {
	IsZero() bool
	Add(V) V
	Sub(V) V
	Mul(V) V
	Neg() V
	Conj() V
	Scale(float64) V
	Truncate(threshold float64) (V, bool)
	Equal(V) bool
	String() string
}

// Term is one branch of a product multiplication: a plain product and the
// coefficient it picks up.
type Term[K any] struct {
	Product     K
	Coefficient calc.Complex
}

// Pair is the key of a Lindblad noise map: the operators acting left and
// right of the density matrix.
type Pair[K Key] struct {
	Left  K
	Right K
}

// NewPair builds a noise key.
func NewPair[K Key](left, right K) Pair[K] {
	return Pair[K]{Left: left, Right: right}
}

// String renders the pair as "(left, right)".
func (p Pair[K]) String() string {
	return "(" + p.Left.String() + ", " + p.Right.String() + ")"
}
