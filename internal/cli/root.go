// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the logicsim command line interface.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "yaml"}

// NewRootCommand creates the root command for the logicsim CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "logicsim",
		Short: "Event driven digital logic simulator",
		Long: `Simulate gate level digital logic circuits with tri-state signals (H, L, X).

Signals propagate one event at a time until the circuit settles or the
iteration limit is reached, in which case the circuit is reported unstable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return exitErrorf(ExitCommandError, "invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "trace propagation on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|yaml)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewGateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// logger returns a debug logger writing to w if verbose is set, nil otherwise.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	if !o.Verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
