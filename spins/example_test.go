// SPDX-License-Identifier: MIT

package spins_test

import (
	"fmt"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/spins"
)

// ExamplePauliProduct_Multiply multiplies X by Y on the same qubit.
func ExamplePauliProduct_Multiply() {
	x, _ := spins.ParsePauliProduct("0X")
	y, _ := spins.ParsePauliProduct("0Y")
	p, phase := x.Multiply(y)
	fmt.Println(p, phase)
	// Output: 0Z (0+1i)
}

// ExampleDecoherenceProduct_HermitianConjugate shows the sign picked up by iY.
func ExampleDecoherenceProduct_HermitianConjugate() {
	d, _ := spins.ParseDecoherenceProduct("0iY1Z")
	c, prefactor := d.HermitianConjugate()
	fmt.Println(c, prefactor)
	// Output: 0iY1Z -1
}

// ExamplePauliLindbladNoiseOperator_SparseMatrixSuperoperatorCOO builds the
// pure dephasing dissipator of a single qubit.
func ExamplePauliLindbladNoiseOperator_SparseMatrixSuperoperatorCOO() {
	z, _ := spins.ParseDecoherenceProduct("0Z")
	noise := spins.NewPauliLindbladNoiseOperator()
	if err := noise.AddTerm(core.NewPair(z, z), calc.NewComplex(1, 0)); err != nil {
		fmt.Println(err)
		return
	}
	coo, err := noise.SparseMatrixSuperoperatorCOO(1)
	if err != nil {
		fmt.Println(err)
		return
	}
	for k, v := range coo.Values {
		fmt.Println(coo.Rows[k], coo.Cols[k], real(v))
	}
	// Output:
	// 1 1 -2
	// 2 2 -2
}
