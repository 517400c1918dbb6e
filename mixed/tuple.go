// SPDX-License-Identifier: MIT
//
// File: tuple.go
// Role: Subsystem tuple shared by the mixed product types.
// Grammar:
//   - One "S{spin}:" segment per spin subsystem, then "B{boson}:" and
//     "F{fermion}:" segments, each operand in its own package's grammar.
//     Empty segments are skipped when parsing.

package mixed

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/quantops/bosons"
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/fermions"
)

// spinPart is the per-subsystem spin product (Pauli or decoherence).
type spinPart[S any] interface {
	core.Key
	Len() int
	CurrentNumberSpins() int
	Compare(S) int
	IsNaturalHermitian() bool
	HermitianConjugate() (S, float64)
	Multiply(S) (S, complex128)
}

// tuple holds one product per subsystem. Values are never mutated in place.
type tuple[S spinPart[S]] struct {
	spins    []S
	bosons   []bosons.BosonProduct
	fermions []fermions.FermionProduct
}

func newTuple[S spinPart[S]](s []S, b []bosons.BosonProduct, f []fermions.FermionProduct) tuple[S] {
	return tuple[S]{spins: slices.Clone(s), bosons: slices.Clone(b), fermions: slices.Clone(f)}
}

func parseTuple[S spinPart[S]](s string, parseSpin func(string) (S, error)) (tuple[S], error) {
	var t tuple[S]
	for _, segment := range strings.Split(s, ":") {
		if segment == "" {
			continue
		}
		rest := segment[1:]
		switch segment[0] {
		case 'S':
			p, err := parseSpin(rest)
			if err != nil {
				return tuple[S]{}, err
			}
			t.spins = append(t.spins, p)
		case 'B':
			p, err := bosons.ParseBosonProduct(rest)
			if err != nil {
				return tuple[S]{}, err
			}
			t.bosons = append(t.bosons, p)
		case 'F':
			p, err := fermions.ParseFermionProduct(rest)
			if err != nil {
				return tuple[S]{}, err
			}
			t.fermions = append(t.fermions, p)
		default:
			return tuple[S]{}, fmt.Errorf("%w: subsystem %q of %q is neither spin, boson nor fermion", core.ErrParsing, segment, s)
		}
	}

	return t, nil
}

func (t tuple[S]) String() string {
	var b strings.Builder
	for _, p := range t.spins {
		b.WriteString("S" + p.String() + ":")
	}
	for _, p := range t.bosons {
		b.WriteString("B" + p.String() + ":")
	}
	for _, p := range t.fermions {
		b.WriteString("F" + p.String() + ":")
	}

	return b.String()
}

func (t tuple[S]) counts() [3]int {
	return [3]int{len(t.spins), len(t.bosons), len(t.fermions)}
}

func (t tuple[S]) extents() core.Subsystems {
	out := core.Subsystems{
		Spins:    make([]int, len(t.spins)),
		Bosons:   make([]int, len(t.bosons)),
		Fermions: make([]int, len(t.fermions)),
	}
	for i, p := range t.spins {
		out.Spins[i] = p.CurrentNumberSpins()
	}
	for i, p := range t.bosons {
		out.Bosons[i] = p.CurrentNumberModes()
	}
	for i, p := range t.fermions {
		out.Fermions[i] = p.CurrentNumberModes()
	}

	return out
}

func (t tuple[S]) isIdentity() bool {
	for _, p := range t.spins {
		if p.Len() > 0 {
			return false
		}
	}
	for _, p := range t.bosons {
		if p.Len() > 0 {
			return false
		}
	}
	for _, p := range t.fermions {
		if p.Len() > 0 {
			return false
		}
	}

	return true
}

func (t tuple[S]) compare(o tuple[S]) int {
	if c := slices.CompareFunc(t.spins, o.spins, func(a, b S) int { return a.Compare(b) }); c != 0 {
		return c
	}
	if c := slices.CompareFunc(t.bosons, o.bosons, bosons.BosonProduct.Compare); c != 0 {
		return c
	}

	return slices.CompareFunc(t.fermions, o.fermions, fermions.FermionProduct.Compare)
}

func (t tuple[S]) isNaturalHermitian() bool {
	for _, p := range t.spins {
		if !p.IsNaturalHermitian() {
			return false
		}
	}
	for _, p := range t.bosons {
		if !p.IsNaturalHermitian() {
			return false
		}
	}
	for _, p := range t.fermions {
		if !p.IsNaturalHermitian() {
			return false
		}
	}

	return true
}

// conjugate conjugates every subsystem and multiplies their prefactors.
func (t tuple[S]) conjugate() (tuple[S], float64) {
	out := tuple[S]{
		spins:    make([]S, len(t.spins)),
		bosons:   make([]bosons.BosonProduct, len(t.bosons)),
		fermions: make([]fermions.FermionProduct, len(t.fermions)),
	}
	sign := 1.0
	for i, p := range t.spins {
		var s float64
		out.spins[i], s = p.HermitianConjugate()
		sign *= s
	}
	for i, p := range t.bosons {
		var s float64
		out.bosons[i], s = p.HermitianConjugate()
		sign *= s
	}
	for i, p := range t.fermions {
		var s float64
		out.fermions[i], s = p.HermitianConjugate()
		sign *= s
	}

	return out, sign
}

// hermitianOrder checks the first boson subsystem that is not its own
// conjugate, falling back to the fermion subsystems. A tuple where no
// subsystem decides is natural hermitian and always canonical.
// A subsystem decides once it is not self-conjugate, even when its zipped
// pairs all tie (c0a0a1), so exactly one member of every pair passes.
func (t tuple[S]) hermitianOrder() error {
	for _, p := range t.bosons {
		if !p.IsNaturalHermitian() {
			return p.Ladder().CheckHermitianOrder()
		}
	}
	for _, p := range t.fermions {
		if !p.IsNaturalHermitian() {
			return p.Ladder().CheckHermitianOrder()
		}
	}

	return nil
}

type tupleTerm[S spinPart[S]] struct {
	t tuple[S]
	c calc.Complex
}

// multiply takes the Cartesian product of the per-subsystem expansions.
func (t tuple[S]) multiply(o tuple[S]) ([]tupleTerm[S], error) {
	if t.counts() != o.counts() {
		return nil, &core.SubsystemError{Target: t.counts(), Actual: o.counts()}
	}
	phase := complex(1, 0)
	spins := make([]S, len(t.spins))
	for i := range t.spins {
		var ph complex128
		spins[i], ph = t.spins[i].Multiply(o.spins[i])
		phase *= ph
	}
	branches := []tupleTerm[S]{{t: tuple[S]{spins: spins}, c: calc.FromComplex128(phase)}}
	for i := range t.bosons {
		terms := t.bosons[i].Multiply(o.bosons[i])
		next := make([]tupleTerm[S], 0, len(branches)*len(terms))
		for _, br := range branches {
			for _, term := range terms {
				nt := br.t
				nt.bosons = append(slices.Clone(br.t.bosons), term.Product)
				next = append(next, tupleTerm[S]{t: nt, c: br.c.Mul(term.Coefficient)})
			}
		}
		branches = next
	}
	for i := range t.fermions {
		terms := t.fermions[i].Multiply(o.fermions[i])
		next := make([]tupleTerm[S], 0, len(branches)*len(terms))
		for _, br := range branches {
			for _, term := range terms {
				nt := br.t
				nt.fermions = append(slices.Clone(br.t.fermions), term.Product)
				next = append(next, tupleTerm[S]{t: nt, c: br.c.Mul(term.Coefficient)})
			}
		}
		branches = next
	}

	return branches, nil
}
