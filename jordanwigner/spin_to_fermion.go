// SPDX-License-Identifier: MIT
//
// File: spin_to_fermion.go
// Role: Qubit -> fermion direction.
// Method:
//   - Every spin product is rewritten in the ladder basis {I, σ+, σ-, Z},
//     then each site is replaced by its string of parity operators times
//     the ladder operator, multiplied left to right in increasing site order.

package jordanwigner

import (
	"iter"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/fermions"
	"github.com/katalvlaran/quantops/spins"
)

type fermionTerms = []core.Term[fermions.FermionProduct]

// PlusMinusProductToFermion returns the fermion form of p.
func PlusMinusProductToFermion(p spins.PlusMinusProduct) *fermions.FermionOperator {
	return fermionOperator(plusMinusTerms(p))
}

// PauliProductToFermion returns the fermion form of p.
func PauliProductToFermion(p spins.PauliProduct) *fermions.FermionOperator {
	return fermionOperator(pauliToFermion(p))
}

// DecoherenceProductToFermion returns the fermion form of d.
func DecoherenceProductToFermion(d spins.DecoherenceProduct) *fermions.FermionOperator {
	return fermionOperator(decoherenceToFermion(d))
}

// PauliOperatorToFermion maps every term of op.
func PauliOperatorToFermion(op *spins.PauliOperator) *fermions.FermionOperator {
	return operatorToFermion(op.All(), op.Options(), pauliToFermion)
}

// DecoherenceOperatorToFermion maps every term of op.
func DecoherenceOperatorToFermion(op *spins.DecoherenceOperator) *fermions.FermionOperator {
	return operatorToFermion(op.All(), op.Options(), decoherenceToFermion)
}

// PlusMinusOperatorToFermion maps every term of op.
func PlusMinusOperatorToFermion(op *spins.PlusMinusOperator) *fermions.FermionOperator {
	return operatorToFermion(op.All(), op.Options(), plusMinusTerms)
}

// PauliHamiltonianToFermion maps h and keeps the canonical member of every
// conjugate pair of the result.
func PauliHamiltonianToFermion(h *spins.PauliHamiltonian) *fermions.FermionHamiltonian {
	full := fermions.NewFermionOperator(h.Options().Replay()...)
	for k, v := range h.All() {
		for _, t := range pauliToFermion(k) {
			mustAdd(full.AddTerm(t.Product, t.Coefficient.MulFloat(v)))
		}
	}

	return canonicalHamiltonian(full)
}

// PauliNoiseToFermion maps both operands of every noise term and spreads the
// rate over all pairs of their non-identity terms.
func PauliNoiseToFermion(n *spins.PauliLindbladNoiseOperator) *fermions.FermionLindbladNoiseOperator {
	out := fermions.NewFermionLindbladNoiseOperator(n.Options().Replay()...)
	for k, rate := range n.All() {
		left := fermionOperator(decoherenceToFermion(k.Left))
		right := fermionOperator(decoherenceToFermion(k.Right))
		mustAdd(out.AddNoiseFromFullOperators(left, right, rate))
	}

	return out
}

// PlusMinusNoiseToFermion is PauliNoiseToFermion for ladder-basis noise.
func PlusMinusNoiseToFermion(n *spins.PlusMinusLindbladNoiseOperator) *fermions.FermionLindbladNoiseOperator {
	out := fermions.NewFermionLindbladNoiseOperator(n.Options().Replay()...)
	for k, rate := range n.All() {
		left := fermionOperator(plusMinusTerms(k.Left))
		right := fermionOperator(plusMinusTerms(k.Right))
		mustAdd(out.AddNoiseFromFullOperators(left, right, rate))
	}

	return out
}

// PauliOpenSystemToFermion maps the Hamiltonian and the noise of s.
func PauliOpenSystemToFermion(s *spins.PauliLindbladOpenSystem) (*fermions.FermionLindbladOpenSystem, error) {
	return fermions.GroupFermionLindbladOpenSystem(PauliHamiltonianToFermion(s.System()), PauliNoiseToFermion(s.Noise()))
}

// canonicalHamiltonian drops the conjugate member of every pair of a
// hermitian operator. Self-conjugate keys keep their real part.
func canonicalHamiltonian(full *fermions.FermionOperator) *fermions.FermionHamiltonian {
	out := fermions.NewFermionHamiltonian(full.Options().Replay()...)
	for k, v := range full.All() {
		if k.Ladder().NeedsConjugation() {
			continue
		}
		h, err := fermions.NewHermitianFermionProduct(k.Creators(), k.Annihilators())
		mustAdd(err)
		if h.IsNaturalHermitian() {
			v = calc.FromFloat(v.Re())
		}
		mustAdd(out.AddTerm(h, v))
	}

	return out
}

func operatorToFermion[K any](all iter.Seq2[K, calc.Complex], opts core.Options, one func(K) fermionTerms) *fermions.FermionOperator {
	out := fermions.NewFermionOperator(opts.Replay()...)
	for k, v := range all {
		for _, t := range one(k) {
			mustAdd(out.AddTerm(t.Product, t.Coefficient.Mul(v)))
		}
	}

	return out
}

func fermionOperator(terms fermionTerms) *fermions.FermionOperator {
	out := fermions.NewFermionOperator()
	for _, t := range terms {
		mustAdd(out.AddTerm(t.Product, t.Coefficient))
	}

	return out
}

func pauliToFermion(p spins.PauliProduct) fermionTerms {
	return expand(p.ToPlusMinus(), plusMinusTerms)
}

func decoherenceToFermion(d spins.DecoherenceProduct) fermionTerms {
	return expand(d.ToPlusMinus(), plusMinusTerms)
}

// expand maps every term through one and sums the images.
func expand[K any, P core.Key](terms []core.Term[K], one func(K) []core.Term[P]) []core.Term[P] {
	var out []core.Term[P]
	for _, t := range terms {
		for _, u := range one(t.Product) {
			out = append(out, core.Term[P]{Product: u.Product, Coefficient: u.Coefficient.Mul(t.Coefficient)})
		}
	}

	return core.MergeTerms(out)
}

// plusMinusTerms multiplies the images of the sites of p in increasing
// order. σ+ annihilates and σ- creates.
func plusMinusTerms(p spins.PlusMinusProduct) fermionTerms {
	out := unitFermion(ladder(nil, nil))
	for site, op := range p.All() {
		switch op {
		case spins.PlusMinusPlus:
			out = mulFermion(withParityString(out, site), unitFermion(ladder(nil, []int{site})))
		case spins.PlusMinusMinus:
			out = mulFermion(withParityString(out, site), unitFermion(ladder([]int{site}, nil)))
		case spins.PlusMinusZ:
			out = mulFermion(out, parity(site))
		}
	}

	return out
}

// parity is Z on site: 1 - 2 c†a.
func parity(site int) fermionTerms {
	return fermionTerms{
		{Product: ladder(nil, nil), Coefficient: calc.NewComplex(1, 0)},
		{Product: ladder([]int{site}, []int{site}), Coefficient: calc.NewComplex(-2, 0)},
	}
}

func withParityString(terms fermionTerms, site int) fermionTerms {
	for i := range site {
		terms = mulFermion(terms, parity(i))
	}

	return terms
}

func mulFermion(left, right fermionTerms) fermionTerms {
	var out fermionTerms
	for _, l := range left {
		for _, r := range right {
			for _, t := range l.Product.Multiply(r.Product) {
				t.Coefficient = t.Coefficient.Mul(l.Coefficient).Mul(r.Coefficient)
				out = append(out, t)
			}
		}
	}

	return core.MergeTerms(out)
}

func unitFermion(p fermions.FermionProduct) fermionTerms {
	return fermionTerms{{Product: p, Coefficient: calc.NewComplex(1, 0)}}
}

// ladder builds a product from lists the caller keeps strictly increasing.
func ladder(creators, annihilators []int) fermions.FermionProduct {
	p, err := fermions.NewFermionProduct(creators, annihilators)
	mustAdd(err)

	return p
}
