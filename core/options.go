// SPDX-License-Identifier: MIT

// Package core: functional configuration of operator-map shapes.
//
// Every specialization (Operator, Hamiltonian, noise operator) accepts
// ...Option at construction. The shape parameter of single-system maps is the
// declared capacity: the largest number of spins or modes a key may span.
// Mixed maps declare a Subsystems layout instead. The zero configuration is
// unbounded.
package core

import "fmt"

// Unbounded is the capacity of a map that accepts keys of any extent.
const Unbounded = -1

// DefaultCapacity is the capacity of maps built without WithCapacity.
const DefaultCapacity = Unbounded

const panicCapacityInvalid = "core: WithCapacity: capacity must be >= 0"

// Option mutates map options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective shape after applying Option setters.
type Options struct {
	capacity   int
	subsystems Subsystems
}

// WithCapacity declares the number of spins or modes available to keys.
// Panics when n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithUnbounded removes a previously declared capacity.
func WithUnbounded() Option {
	return func(o *Options) { o.capacity = Unbounded }
}

// GatherOptions applies opts over the defaults.
func GatherOptions(opts ...Option) Options {
	o := Options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Capacity returns the declared capacity and whether one is set.
func (o Options) Capacity() (int, bool) {
	return o.capacity, o.capacity != Unbounded
}

// Replay returns the options that rebuild o, used by empty clones.
func (o Options) Replay() []Option {
	var out []Option
	if o.capacity != Unbounded {
		out = append(out, WithCapacity(o.capacity))
	}
	if o.subsystems.declared() {
		out = append(out, WithSubsystems(o.subsystems))
	}

	return out
}

// CheckExtent validates that a key spanning extent sites fits the capacity.
// exceeded is the sentinel to wrap (ErrNumberSpinsExceeded or ErrNumberModesExceeded).
func (o Options) CheckExtent(extent int, exceeded error) error {
	if c, ok := o.Capacity(); ok && extent > c {
		return fmt.Errorf("%w: key spans %d, capacity is %d", exceeded, extent, c)
	}

	return nil
}

// Extent returns the capacity if declared, otherwise current.
func (o Options) Extent(current int) int {
	if c, ok := o.Capacity(); ok {
		return c
	}

	return current
}

// SameShape reports whether two option sets declare the same capacity and
// subsystem layout.
func (o Options) SameShape(other Options) bool {
	return o.capacity == other.capacity && o.subsystems.Equal(other.subsystems)
}
