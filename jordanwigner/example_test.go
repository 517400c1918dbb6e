// SPDX-License-Identifier: MIT

package jordanwigner_test

import (
	"fmt"

	"github.com/katalvlaran/quantops/fermions"
	"github.com/katalvlaran/quantops/jordanwigner"
	"github.com/katalvlaran/quantops/spins"
)

// ExampleFermionProductToSpin maps a number operator to qubits.
func ExampleFermionProductToSpin() {
	n, _ := fermions.ParseFermionProduct("c1a1")
	op := jordanwigner.FermionProductToSpin(n)
	identity, _ := spins.ParsePauliProduct("I")
	z, _ := spins.ParsePauliProduct("1Z")
	fmt.Println(op.Len(), op.Get(identity), op.Get(z))
	// Output: 2 (5e-1 + i * 0e0) (-5e-1 + i * 0e0)
}

// ExamplePlusMinusProductToFermion maps σ+ on qubit 0 to an annihilator.
func ExamplePlusMinusProductToFermion() {
	p, _ := spins.ParsePlusMinusProduct("0+")
	fmt.Println(jordanwigner.PlusMinusProductToFermion(p))
	// Output:
	// FermionOperator(1){
	// a0: (1e0 + i * 0e0),
	// }
}
