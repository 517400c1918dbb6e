// SPDX-License-Identifier: MIT

// Package spins: construction options and key validation shared by every
// spin operator map.
package spins

import (
	"fmt"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
)

// WithNumberSpins declares the number of qubits available to keys.
// Panics when n is negative.
func WithNumberSpins(n int) core.Option { return core.WithCapacity(n) }

type spinKey interface {
	core.Key
	CurrentNumberSpins() int
}

// fitsSpins rejects keys spanning more qubits than declared.
func fitsSpins[K spinKey, V core.Scalar[V]](opts core.Options, key K, _ V) error {
	return opts.CheckExtent(key.CurrentNumberSpins(), core.ErrNumberSpinsExceeded)
}

type noiseKey interface {
	spinKey
	Len() int
}

// validNoise rejects identity operands and keys spanning more qubits than
// declared.
func validNoise[K noiseKey](opts core.Options, key core.Pair[K], _ calc.Complex) error {
	if key.Left.Len() == 0 || key.Right.Len() == 0 {
		return fmt.Errorf("%w: %s contains an identity operand", core.ErrInvalidLindbladTerms, key)
	}
	extent := max(key.Left.CurrentNumberSpins(), key.Right.CurrentNumberSpins())

	return opts.CheckExtent(extent, core.ErrNumberSpinsExceeded)
}

// currentSpins is the largest key extent of a map.
func currentSpins[K spinKey, V core.Scalar[V]](op core.Operator[K, V]) int {
	n := 0
	for k := range op.All() {
		n = max(n, k.CurrentNumberSpins())
	}

	return n
}

func currentNoiseSpins[K spinKey](op core.Operator[core.Pair[K], calc.Complex]) int {
	n := 0
	for k := range op.All() {
		n = max(n, k.Left.CurrentNumberSpins(), k.Right.CurrentNumberSpins())
	}

	return n
}

// title renders "name(n)" with the declared or current number of qubits.
func title(name string, opts core.Options, current int) string {
	return fmt.Sprintf("%s(%d)", name, opts.Extent(current))
}

// multiplyOperators accumulates Σ phase·vl·vr·(kl·kr) into out.
func multiplyOperators[K core.Key](out, l, r core.Operator[K, calc.Complex], mul func(K, K) (K, complex128)) error {
	for kl, vl := range l.All() {
		for kr, vr := range r.All() {
			k, phase := mul(kl, kr)
			if err := out.AddTerm(k, vl.Mul(vr).MulComplex128(phase)); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkSameShape(a, b core.Options) error {
	if !a.SameShape(b) {
		return fmt.Errorf("%w: operands declare different numbers of spins", core.ErrMismatchedNumberSpins)
	}

	return nil
}

// mustAdd panics on an error that valid operands cannot produce.
func mustAdd(err error) {
	if err != nil {
		panic("spins: internal invariant violated: " + err.Error())
	}
}
