// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quantops/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCOOCmd(a *app) *cobra.Command {
	var (
		from          string
		qubits        int
		epsilon       float64
		superoperator bool
	)
	cmd := &cobra.Command{
		Use:   "coo [file]",
		Short: "Print the sparse matrix of a spin document",
		Long: `Prints one "row col re im" line per stored entry. Plain spin
operators and Hamiltonians print their operator matrix; with
--superoperator, Hamiltonians, noise operators and open systems print
their Liouville superoperator.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon < 0 {
				return fmt.Errorf("--epsilon must be finite and non-negative, got %g", epsilon)
			}
			doc, err := a.load(cmd, args, from)
			if err != nil {
				return err
			}
			opts := []matrix.Option{matrix.WithEpsilon(epsilon), matrix.WithLogger(a.logger)}

			var coo matrix.COO
			if superoperator {
				m, ok := doc.(superoperatorMatrix)
				if !ok {
					return fmt.Errorf("%T has no superoperator form", doc)
				}
				coo, err = m.SparseMatrixSuperoperatorCOO(qubits, opts...)
			} else {
				m, ok := doc.(operatorMatrix)
				if !ok {
					return fmt.Errorf("%T has no operator matrix form", doc)
				}
				coo, err = m.SparseMatrixCOO(qubits, opts...)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("writing sparse matrix", zap.Int("qubits", qubits), zap.Int("entries", coo.Len()))

			out := cmd.OutOrStdout()
			for k, v := range coo.Values {
				if _, err := fmt.Fprintf(out, "%d %d %g %g\n", coo.Rows[k], coo.Cols[k], real(v), imag(v)); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "json", "input format: json or yaml")
	cmd.Flags().IntVarP(&qubits, "qubits", "n", 0, "number of qubits of the matrix")
	cmd.Flags().Float64Var(&epsilon, "epsilon", matrix.DefaultEpsilon, "drop entries with modulus at or below epsilon")
	cmd.Flags().BoolVar(&superoperator, "superoperator", false, "print the Liouville superoperator")
	_ = cmd.MarkFlagRequired("qubits")

	return cmd
}
