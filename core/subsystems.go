// SPDX-License-Identifier: MIT
//
// File: subsystems.go
// Role: Subsystem layout of mixed maps and the validators that enforce it.
// Policy:
//   - A layout lists one capacity per spin, boson and fermion subsystem in
//     declared order; Unbounded entries accept any extent.
//   - Every key of a mixed map has exactly the layout's subsystem counts.

package core

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/quantops/calc"
)

const panicSubsystemInvalid = "core: WithSubsystems: capacities must be >= 0 or Unbounded"

// Subsystems is the layout of a mixed system.
type Subsystems struct {
	Spins    []int `json:"spins" yaml:"spins"`
	Bosons   []int `json:"bosons" yaml:"bosons"`
	Fermions []int `json:"fermions" yaml:"fermions"`
}

// UnboundedSubsystems declares the given subsystem counts without capacities.
func UnboundedSubsystems(spins, bosons, fermions int) Subsystems {
	fill := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = Unbounded
		}
		return out
	}

	return Subsystems{Spins: fill(spins), Bosons: fill(bosons), Fermions: fill(fermions)}
}

// WithSubsystems declares the layout of a mixed map. Panics on capacities
// below Unbounded.
func WithSubsystems(layout Subsystems) Option {
	if layout.validate() != nil {
		panic(panicSubsystemInvalid)
	}
	layout = layout.Clone()

	return func(o *Options) { o.subsystems = layout }
}

// Subsystems returns the declared layout.
func (o Options) Subsystems() Subsystems { return o.subsystems.Clone() }

// Counts returns the number of spin, boson and fermion subsystems.
func (s Subsystems) Counts() [3]int {
	return [3]int{len(s.Spins), len(s.Bosons), len(s.Fermions)}
}

// Clone returns a copy that shares no storage with s.
func (s Subsystems) Clone() Subsystems {
	return Subsystems{Spins: slices.Clone(s.Spins), Bosons: slices.Clone(s.Bosons), Fermions: slices.Clone(s.Fermions)}
}

// Equal reports whether both layouts agree entry by entry.
func (s Subsystems) Equal(other Subsystems) bool {
	return slices.Equal(s.Spins, other.Spins) &&
		slices.Equal(s.Bosons, other.Bosons) &&
		slices.Equal(s.Fermions, other.Fermions)
}

// validate fails with ErrGeneric on a capacity below Unbounded.
func (s Subsystems) validate() error {
	for _, list := range [][]int{s.Spins, s.Bosons, s.Fermions} {
		for _, c := range list {
			if c < Unbounded {
				return fmt.Errorf("%w: subsystem capacity %d must be >= 0 or Unbounded", ErrGeneric, c)
			}
		}
	}

	return nil
}

func (s Subsystems) declared() bool {
	return len(s.Spins)+len(s.Bosons)+len(s.Fermions) > 0
}

// Extents replaces every Unbounded capacity by the matching entry of current.
func (s Subsystems) Extents(current Subsystems) Subsystems {
	pick := func(declared, cur []int) []int {
		out := make([]int, len(declared))
		for i, c := range declared {
			if c != Unbounded {
				out[i] = c
			} else if i < len(cur) {
				out[i] = cur[i]
			}
		}
		return out
	}

	return Subsystems{
		Spins:    pick(s.Spins, current.Spins),
		Bosons:   pick(s.Bosons, current.Bosons),
		Fermions: pick(s.Fermions, current.Fermions),
	}
}

// Max returns the entrywise maximum of two layouts of equal counts.
func (s Subsystems) Max(other Subsystems) Subsystems {
	merge := func(a, b []int) []int {
		out := slices.Clone(a)
		for i := range min(len(a), len(b)) {
			out[i] = max(a[i], b[i])
		}
		return out
	}

	return Subsystems{
		Spins:    merge(s.Spins, other.Spins),
		Bosons:   merge(s.Bosons, other.Bosons),
		Fermions: merge(s.Fermions, other.Fermions),
	}
}

// String renders "S[a,b],B[c],F[]".
func (s Subsystems) String() string {
	list := func(tag byte, v []int) string {
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return string(tag) + "[" + strings.Join(parts, ",") + "]"
	}

	return list('S', s.Spins) + "," + list('B', s.Bosons) + "," + list('F', s.Fermions)
}

// CheckFits validates a key whose subsystem extents are extents: the counts
// must match and every extent must fit its capacity.
func (s Subsystems) CheckFits(extents Subsystems) error {
	if s.Counts() != extents.Counts() {
		return &SubsystemError{Target: s.Counts(), Actual: extents.Counts()}
	}
	check := func(kind string, capacities, used []int, exceeded error) error {
		for i, c := range capacities {
			if c != Unbounded && used[i] > c {
				return fmt.Errorf("%w: %s subsystem %d spans %d, capacity is %d", exceeded, kind, i, used[i], c)
			}
		}
		return nil
	}
	if err := check("spin", s.Spins, extents.Spins, ErrNumberSpinsExceeded); err != nil {
		return err
	}
	if err := check("boson", s.Bosons, extents.Bosons, ErrNumberModesExceeded); err != nil {
		return err
	}

	return check("fermion", s.Fermions, extents.Fermions, ErrNumberModesExceeded)
}

// SubsystemKey is a mixed product.
type SubsystemKey interface {
	Key
	Extents() Subsystems
	IsIdentity() bool
}

// HermitianSubsystemKey is a mixed product standing for itself plus its
// conjugate.
type HermitianSubsystemKey interface {
	SubsystemKey
	IsNaturalHermitian() bool
}

// FitsSubsystems rejects keys that do not match the declared layout.
func FitsSubsystems[K SubsystemKey, V Scalar[V]](opts Options, key K, _ V) error {
	return opts.subsystems.CheckFits(key.Extents())
}

// HermitianSubsystemValue additionally rejects a non-real coefficient on a
// natural-hermitian key.
func HermitianSubsystemValue[K HermitianSubsystemKey](opts Options, key K, value calc.Complex) error {
	if key.IsNaturalHermitian() && !value.IsReal() {
		return fmt.Errorf("%w: %s is its own conjugate but has coefficient %s", ErrNonHermitianOperator, key, value)
	}

	return FitsSubsystems[K, calc.Complex](opts, key, value)
}

// SubsystemNoise rejects identity operands and operands that do not match
// the declared layout.
func SubsystemNoise[K SubsystemKey](opts Options, key Pair[K], _ calc.Complex) error {
	if key.Left.IsIdentity() || key.Right.IsIdentity() {
		return fmt.Errorf("%w: %s contains an identity operand", ErrInvalidLindbladTerms, key)
	}
	if err := opts.subsystems.CheckFits(key.Left.Extents()); err != nil {
		return err
	}

	return opts.subsystems.CheckFits(key.Right.Extents())
}

// CurrentSubsystems is the entrywise largest key extent of a mixed map.
func CurrentSubsystems[K SubsystemKey, V Scalar[V]](op Operator[K, V]) Subsystems {
	out := zeroLayout(op.Options().subsystems)
	for k := range op.All() {
		out = out.Max(k.Extents())
	}

	return out
}

// CurrentNoiseSubsystems is CurrentSubsystems over both operands.
func CurrentNoiseSubsystems[K SubsystemKey](op Operator[Pair[K], calc.Complex]) Subsystems {
	out := zeroLayout(op.Options().subsystems)
	for k := range op.All() {
		out = out.Max(k.Left.Extents()).Max(k.Right.Extents())
	}

	return out
}

func zeroLayout(s Subsystems) Subsystems {
	return Subsystems{
		Spins:    make([]int, len(s.Spins)),
		Bosons:   make([]int, len(s.Bosons)),
		Fermions: make([]int, len(s.Fermions)),
	}
}

// CheckSameSubsystems compares the layouts of two mixed maps.
func CheckSameSubsystems(a, b Options) error {
	if a.subsystems.Counts() != b.subsystems.Counts() {
		return &SubsystemError{Target: a.subsystems.Counts(), Actual: b.subsystems.Counts()}
	}
	if !a.subsystems.Equal(b.subsystems) {
		return fmt.Errorf("%w: capacities %s and %s differ", ErrMismatchedNumberSubsystems, a.subsystems, b.subsystems)
	}

	return nil
}

// SubsystemTitle renders "name(S[..],B[..],F[..])" with declared capacities
// or current extents.
func SubsystemTitle(name string, opts Options, current Subsystems) string {
	return name + "(" + opts.subsystems.Extents(current).String() + ")"
}
