// SPDX-License-Identifier: MIT

// Package spins: translation of spin operator maps into matrix row-walk terms.
package spins

import (
	"fmt"

	"github.com/katalvlaran/quantops/calc"
	"github.com/katalvlaran/quantops/core"
	"github.com/katalvlaran/quantops/matrix"
)

// matrixKey is a product the row walks can apply.
type matrixKey interface {
	spinKey
	matrixSites() []matrix.Site
}

func checkQubits(current, n int) error {
	if current > n {
		return fmt.Errorf("%w: operator acts on %d qubits, matrix has %d", core.ErrNumberSpinsExceeded, current, n)
	}

	return nil
}

func operatorTerms[K matrixKey](op core.Operator[K, calc.Complex]) ([]matrix.OperatorTerm, error) {
	out := make([]matrix.OperatorTerm, 0, op.Len())
	for k, v := range op.All() {
		c, err := v.Complex128()
		if err != nil {
			return nil, fmt.Errorf("term %s: %w", k, err)
		}
		out = append(out, matrix.OperatorTerm{Sites: k.matrixSites(), Coefficient: c})
	}

	return out, nil
}

func hamiltonianTerms(op core.Operator[PauliProduct, calc.Float]) ([]matrix.OperatorTerm, error) {
	out := make([]matrix.OperatorTerm, 0, op.Len())
	for k, v := range op.All() {
		c, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("term %s: %w", k, err)
		}
		out = append(out, matrix.OperatorTerm{Sites: k.matrixSites(), Coefficient: complex(c, 0)})
	}

	return out, nil
}

// noiseTerms prepares rate·(L ρ R† - ½{R†L, ρ}) for every stored (L, R).
func noiseTerms(op core.Operator[core.Pair[DecoherenceProduct], calc.Complex]) ([]matrix.NoiseTerm, error) {
	out := make([]matrix.NoiseTerm, 0, op.Len())
	for k, v := range op.All() {
		rate, err := v.Complex128()
		if err != nil {
			return nil, fmt.Errorf("term %s: %w", k, err)
		}
		_, rightSign := k.Right.HermitianConjugate()
		product, phase := k.Right.Multiply(k.Left)
		_, daggerSign := product.HermitianConjugate()
		out = append(out, matrix.NoiseTerm{
			Left:          k.Left.matrixSites(),
			Right:         k.Right.matrixSites(),
			Product:       product.matrixSites(),
			Phase:         complex(rightSign, 0) * phase,
			ProductDagger: product.matrixSites(),
			DaggerPhase:   daggerSign,
			Rate:          rate,
		})
	}

	return out, nil
}
