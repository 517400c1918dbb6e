// SPDX-License-Identifier: MIT
//
// File: operator.go
// Role: Shape-validated operator map embedded by every specialization.
// Policy:
//   - Validation always runs before mutation; a failed call leaves the
//     receiver unmodified.
//   - Binary operations work on a scratch EmptyClone/Clone and return it only
//     on full success.

package core

import (
	"fmt"
	"iter"
)

// Validator checks that key may carry value in a map of shape opts.
type Validator[K Key, V Scalar[V]] func(opts Options, key K, value V) error

// Operator is a Map plus its declared shape and key validator.
// Specializations embed it and add their typed arithmetic.
type Operator[K Key, V Scalar[V]] struct {
	terms    *Map[K, V]
	opts     Options
	validate Validator[K, V]
	mismatch error
}

// NewOperator builds an empty operator. validate may be nil (accept all);
// mismatch is the sentinel returned when two operands' shapes differ.
func NewOperator[K Key, V Scalar[V]](validate Validator[K, V], mismatch error, opts ...Option) Operator[K, V] {
	if validate == nil {
		validate = func(Options, K, V) error { return nil }
	}

	return Operator[K, V]{
		terms:    NewMap[K, V](0),
		opts:     GatherOptions(opts...),
		validate: validate,
		mismatch: mismatch,
	}
}

// Options returns the declared shape.
func (o Operator[K, V]) Options() Options { return o.opts }

// Terms returns the underlying map. Callers must not mutate it.
func (o Operator[K, V]) Terms() *Map[K, V] { return o.terms }

// Len returns the number of stored terms.
func (o Operator[K, V]) Len() int { return o.terms.Len() }

// IsEmpty reports whether no term is stored.
func (o Operator[K, V]) IsEmpty() bool { return o.terms.IsEmpty() }

// Get returns the coefficient of key, zero when absent.
func (o Operator[K, V]) Get(key K) V { return o.terms.Get(key) }

// Keys returns the keys in insertion order.
func (o Operator[K, V]) Keys() []K { return o.terms.Keys() }

// All iterates over (key, coefficient) pairs in insertion order.
func (o Operator[K, V]) All() iter.Seq2[K, V] { return o.terms.All() }

// Set validates key and value, then stores value (or removes key when value
// is zero). It returns the previous coefficient and whether one existed.
func (o Operator[K, V]) Set(key K, value V) (V, bool, error) {
	if err := o.validate(o.opts, key, value); err != nil {
		var zero V
		return zero, false, err
	}
	old, ok := o.terms.Set(key, value)

	return old, ok, nil
}

// AddTerm adds value to the coefficient of key after validating the sum.
func (o Operator[K, V]) AddTerm(key K, value V) error {
	sum := o.terms.Get(key).Add(value)
	if err := o.validate(o.opts, key, sum); err != nil {
		return err
	}
	o.terms.Set(key, sum)

	return nil
}

// Remove deletes key.
func (o Operator[K, V]) Remove(key K) (V, bool) { return o.terms.Remove(key) }

// Empty returns an operator with the same shape and validator and no terms.
func (o Operator[K, V]) Empty() Operator[K, V] {
	out := o
	out.terms = o.terms.EmptyClone(0)

	return out
}

// Clone returns an independent copy.
func (o Operator[K, V]) Clone() Operator[K, V] {
	out := o
	out.terms = o.terms.Clone()

	return out
}

// WithTerms returns an operator with o's shape holding m. The terms are
// revalidated so shape invariants propagate.
func (o Operator[K, V]) WithTerms(m *Map[K, V]) (Operator[K, V], error) {
	out := o.Empty()
	for k, v := range m.All() {
		if _, _, err := out.Set(k, v); err != nil {
			return Operator[K, V]{}, err
		}
	}

	return out, nil
}

// Combine returns o + other (or o - other when subtract is set).
// Operands must declare the same shape.
func (o Operator[K, V]) Combine(other Operator[K, V], subtract bool) (Operator[K, V], error) {
	if !o.opts.SameShape(other.opts) {
		return Operator[K, V]{}, fmt.Errorf("%w: operands declare different capacities", o.mismatch)
	}
	out := o.Clone()
	for k, v := range other.terms.All() {
		if subtract {
			v = v.Neg()
		}
		if err := out.AddTerm(k, v); err != nil {
			return Operator[K, V]{}, err
		}
	}

	return out, nil
}

// Truncate drops terms below threshold. Never fails.
func (o Operator[K, V]) Truncate(threshold float64) Operator[K, V] {
	out := o
	out.terms = o.terms.Truncate(threshold)

	return out
}

// Neg negates every coefficient. Never fails.
func (o Operator[K, V]) Neg() Operator[K, V] {
	out := o
	out.terms = o.terms.Neg()

	return out
}

// Scale multiplies every coefficient by factor. Keys are unchanged, so the
// result needs no revalidation; specializations restrict factor where a
// coefficient constraint depends on it.
func (o Operator[K, V]) Scale(factor V) Operator[K, V] {
	out := o
	out.terms = o.terms.Scale(factor)

	return out
}

// Equal reports whether shapes and terms agree.
func (o Operator[K, V]) Equal(other Operator[K, V]) bool {
	return o.opts.SameShape(other.opts) && o.terms.Equal(other.terms)
}

// Format renders the terms under title.
func (o Operator[K, V]) Format(title string) string { return o.terms.Format(title) }
