// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/katalvlaran/quantops/core"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

// syncLogger flushes l. Terminals and pipes reject fsync with EINVAL or
// ENOTTY; those are not failures of the command.
func syncLogger(l *zap.Logger) error {
	err := l.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}

	return err
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "quantops",
		Short: "Inspect and convert quantum operator documents",
		Long: `quantops works on the JSON and YAML documents written by the
quantops library: it parses product strings, converts documents between
formats, prints sparse matrices of spin operators and applies the
Jordan-Wigner mapping.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return syncLogger(a.logger)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug records to stderr")

	root.AddCommand(
		newParseCmd(),
		newConvertCmd(a),
		newCOOCmd(a),
		newJWCmd(a),
	)

	return root
}

// codec builds a codec for the named format that logs through the app logger.
func (a *app) codec(format string) (core.Codec, error) {
	f, err := core.ParseFormat(format)
	if err != nil {
		return core.Codec{}, err
	}

	return core.NewCodec(core.WithFormat(f), core.WithLogger(a.logger)), nil
}

// readInput reads the file named by args, or stdin when args is empty or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}

	return data, nil
}

// load reads and decodes the input document.
func (a *app) load(cmd *cobra.Command, args []string, format string) (document, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	c, err := a.codec(format)
	if err != nil {
		return nil, err
	}
	doc, err := decode(c, data)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded document", zap.String("type", fmt.Sprintf("%T", doc)), zap.Int("bytes", len(data)))

	return doc, nil
}

// write encodes doc in format to the command output.
func (a *app) write(cmd *cobra.Command, doc document, format string) error {
	c, err := a.codec(format)
	if err != nil {
		return err
	}
	data, err := doc.Encode(c)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err = out.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(out, "\n")
	}

	return err
}
