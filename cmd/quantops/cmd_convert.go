// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Re-encode an operator document in another format",
		Long: `Reads a document (stdin when no file is given), checks its
serialisation stamp and writes it back in the target format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(cmd, args, from)
			if err != nil {
				return err
			}

			return a.write(cmd, doc, to)
		},
	}
	cmd.Flags().StringVar(&from, "from", "json", "input format: json or yaml")
	cmd.Flags().StringVar(&to, "to", "yaml", "output format: json or yaml")

	return cmd
}
