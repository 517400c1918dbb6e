// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/quantops/fermions"
	"github.com/katalvlaran/quantops/jordanwigner"
	"github.com/katalvlaran/quantops/spins"
	"github.com/spf13/cobra"
)

// jordanWigner maps a spin document to its fermion form and back.
func jordanWigner(doc document) (document, error) {
	switch d := doc.(type) {
	case *spins.PauliOperator:
		return jordanwigner.PauliOperatorToFermion(d), nil
	case *spins.DecoherenceOperator:
		return jordanwigner.DecoherenceOperatorToFermion(d), nil
	case *spins.PlusMinusOperator:
		return jordanwigner.PlusMinusOperatorToFermion(d), nil
	case *spins.PauliHamiltonian:
		return jordanwigner.PauliHamiltonianToFermion(d), nil
	case *spins.PauliLindbladNoiseOperator:
		return jordanwigner.PauliNoiseToFermion(d), nil
	case *spins.PlusMinusLindbladNoiseOperator:
		return jordanwigner.PlusMinusNoiseToFermion(d), nil
	case *spins.PauliLindbladOpenSystem:
		return openSystem(jordanwigner.PauliOpenSystemToFermion(d))
	case *fermions.FermionOperator:
		return jordanwigner.FermionOperatorToSpin(d), nil
	case *fermions.FermionHamiltonian:
		return jordanwigner.FermionHamiltonianToSpin(d), nil
	case *fermions.FermionLindbladNoiseOperator:
		return jordanwigner.FermionNoiseToSpin(d), nil
	case *fermions.FermionLindbladOpenSystem:
		return openSystem(jordanwigner.FermionOpenSystemToSpin(d))
	}

	return nil, fmt.Errorf("%T has no Jordan-Wigner image", doc)
}

func openSystem[T document](s T, err error) (document, error) {
	if err != nil {
		return nil, err
	}

	return s, nil
}

func newJWCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "jw [file]",
		Short: "Apply the Jordan-Wigner mapping to a spin or fermion document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(cmd, args, from)
			if err != nil {
				return err
			}
			mapped, err := jordanWigner(doc)
			if err != nil {
				return err
			}

			return a.write(cmd, mapped, to)
		},
	}
	cmd.Flags().StringVar(&from, "from", "json", "input format: json or yaml")
	cmd.Flags().StringVar(&to, "to", "json", "output format: json or yaml")

	return cmd
}
