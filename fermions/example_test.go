// SPDX-License-Identifier: MIT

package fermions_test

import (
	"fmt"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/fermions"
)

// ExampleFermionHamiltonian builds a density-density interaction.
func ExampleFermionHamiltonian() {
	key, err := fermions.NewHermitianFermionProduct([]int{0, 1}, []int{0, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	h := fermions.NewFermionHamiltonian()
	if err := h.AddTerm(key, calc.NewComplex(0.1, 0)); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(h)
	// Output:
	// FermionHamiltonian(2){
	// c0c1a0a1: (1e-1 + i * 0e0),
	// }
}

// ExampleFermionProduct_HermitianConjugate reverses the annihilators of the
// conjugate and reports the sign of that reordering.
func ExampleFermionProduct_HermitianConjugate() {
	p, _ := fermions.ParseFermionProduct("c0c1a2")
	c, prefactor := p.HermitianConjugate()
	fmt.Println(c, prefactor)
	// Output: c2a0a1 -1
}
