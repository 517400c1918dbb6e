// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/quantops/bosons"
	"github.com/katalvlaran/quantops/fermions"
	"github.com/katalvlaran/quantops/mixed"
	"github.com/katalvlaran/quantops/spins"
	"github.com/spf13/cobra"
)

type conjugable[P any] interface {
	String() string
	HermitianConjugate() (P, float64)
}

// parsed is the canonical form of a product and of its conjugate.
type parsed struct {
	product, conjugate string
	prefactor          float64
}

type productParser func(string) (parsed, error)

func parserFor[P conjugable[P]](parse func(string) (P, error)) productParser {
	return func(s string) (parsed, error) {
		p, err := parse(s)
		if err != nil {
			return parsed{}, err
		}
		c, f := p.HermitianConjugate()

		return parsed{product: p.String(), conjugate: c.String(), prefactor: f}, nil
	}
}

var productKinds = map[string]productParser{
	"pauli":             parserFor(spins.ParsePauliProduct),
	"decoherence":       parserFor(spins.ParseDecoherenceProduct),
	"plusminus":         parserFor(spins.ParsePlusMinusProduct),
	"boson":             parserFor(bosons.ParseBosonProduct),
	"hermitian-boson":   parserFor(bosons.ParseHermitianBosonProduct),
	"fermion":           parserFor(fermions.ParseFermionProduct),
	"hermitian-fermion": parserFor(fermions.ParseHermitianFermionProduct),
	"mixed":             parserFor(mixed.ParseMixedProduct),
	"hermitian-mixed":   parserFor(mixed.ParseHermitianMixedProduct),
	"mixed-decoherence": parserFor(mixed.ParseMixedDecoherenceProduct),
}

func newParseCmd() *cobra.Command {
	kinds := slices.Sorted(maps.Keys(productKinds))

	return &cobra.Command{
		Use:   "parse [kind] [product]",
		Short: "Print the canonical form of a product and its hermitian conjugate",
		Long:  "Kinds: " + strings.Join(kinds, ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse, ok := productKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown product kind %q (want one of %s)", args[0], strings.Join(kinds, ", "))
			}
			p, err := parse(args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "product: %s\nconjugate: %s\nprefactor: %g\n",
				p.product, p.conjugate, p.prefactor)

			return err
		},
	}
}
