// SPDX-License-Identifier: MIT
//
// File: fermion_to_spin.go
// Role: Fermion -> qubit direction.
// Method:
//   - c†_p and a_p become Z_0...Z_{p-1}(X_p ∓ iY_p)/2; a product multiplies
//     the images of its creators, then of its annihilators, in the order the
//     product stores them.

package jordanwigner

import (
	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/fermions"
	"github.com/katalvlaran/quantops/spins"
)

type pauliTerms = []core.Term[spins.PauliProduct]

// FermionProductToSpin returns the qubit form of p.
func FermionProductToSpin(p fermions.FermionProduct) *spins.PauliOperator {
	out := spins.NewPauliOperator()
	for _, t := range fermionToPauli(p) {
		mustAdd(out.AddTerm(t.Product, t.Coefficient))
	}

	return out
}

// HermitianFermionProductToSpin returns the qubit form of h + h† (of h alone
// when h is its own conjugate).
func HermitianFermionProductToSpin(h fermions.HermitianFermionProduct) *spins.PauliHamiltonian {
	out := spins.NewPauliHamiltonian()
	addHermitian(out, h, calc.NewComplex(1, 0))

	return out
}

// FermionOperatorToSpin maps every term of op.
func FermionOperatorToSpin(op *fermions.FermionOperator) *spins.PauliOperator {
	out := spins.NewPauliOperator(op.Options().Replay()...)
	for k, v := range op.All() {
		for _, t := range fermionToPauli(k) {
			mustAdd(out.AddTerm(t.Product, t.Coefficient.Mul(v)))
		}
	}

	return out
}

// FermionHamiltonianToSpin maps v·h + conj(v)·h† for every term (h, v).
func FermionHamiltonianToSpin(h *fermions.FermionHamiltonian) *spins.PauliHamiltonian {
	out := spins.NewPauliHamiltonian(h.Options().Replay()...)
	for k, v := range h.All() {
		addHermitian(out, k, v)
	}

	return out
}

// FermionNoiseToSpin maps both operands of every noise term into the
// decoherence basis and spreads the rate over all pairs of their
// non-identity terms.
func FermionNoiseToSpin(n *fermions.FermionLindbladNoiseOperator) *spins.PauliLindbladNoiseOperator {
	out := spins.NewPauliLindbladNoiseOperator(n.Options().Replay()...)
	for k, rate := range n.All() {
		left := FermionProductToSpin(k.Left).ToDecoherence()
		right := FermionProductToSpin(k.Right).ToDecoherence()
		mustAdd(out.AddNoiseFromFullOperators(left, right, rate))
	}

	return out
}

// FermionOpenSystemToSpin maps the Hamiltonian and the noise of s.
func FermionOpenSystemToSpin(s *fermions.FermionLindbladOpenSystem) (*spins.PauliLindbladOpenSystem, error) {
	return spins.GroupPauliLindbladOpenSystem(FermionHamiltonianToSpin(s.System()), FermionNoiseToSpin(s.Noise()))
}

// addHermitian adds the image of v·h + conj(v)·h†. Pauli strings are
// hermitian, so the pair contributes 2·Re(c·v) to every string with
// coefficient c in the image of h.
func addHermitian(out *spins.PauliHamiltonian, h fermions.HermitianFermionProduct, v calc.Complex) {
	factor := 2.0
	if h.IsNaturalHermitian() {
		factor = 1
	}
	for _, t := range fermionToPauli(h.Plain()) {
		mustAdd(out.AddTerm(t.Product, t.Coefficient.Mul(v).Re().Scale(factor)))
	}
}

func fermionToPauli(p fermions.FermionProduct) pauliTerms {
	out := pauliTerms{{Product: spins.NewPauliProduct(), Coefficient: calc.NewComplex(1, 0)}}
	for _, site := range p.Creators() {
		out = mulPauli(out, ladderImage(site, -0.5))
	}
	for _, site := range p.Annihilators() {
		out = mulPauli(out, ladderImage(site, 0.5))
	}

	return out
}

// ladderImage is Z_0...Z_{site-1}(X_site/2 + i·y·Y_site).
func ladderImage(site int, y float64) pauliTerms {
	str := spins.NewPauliProduct()
	for i := range site {
		str = str.Z(i)
	}
	x, _ := str.Multiply(spins.NewPauliProduct().X(site))
	yy, _ := str.Multiply(spins.NewPauliProduct().Y(site))

	return pauliTerms{
		{Product: x, Coefficient: calc.NewComplex(0.5, 0)},
		{Product: yy, Coefficient: calc.NewComplex(0, y)},
	}
}

func mulPauli(left, right pauliTerms) pauliTerms {
	out := make(pauliTerms, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			p, phase := l.Product.Multiply(r.Product)
			out = append(out, core.Term[spins.PauliProduct]{
				Product:     p,
				Coefficient: l.Coefficient.Mul(r.Coefficient).MulComplex128(phase),
			})
		}
	}

	return core.MergeTerms(out)
}

// mustAdd panics on an error that valid operands cannot produce.
func mustAdd(err error) {
	if err != nil {
		panic("jordanwigner: internal invariant violated: " + err.Error())
	}
}
