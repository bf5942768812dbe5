// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	sim "github.com/db47h/logicsim"
)

// NewGateCommand creates the gate command.
func NewGateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gate <kind> <value>...",
		Short: "Evaluate a gate function",
		Long: `Evaluate a gate function over the given input values.

Kind is one of AND, OR, XOR, NAND, NOR, XNOR. Values are H, L or X.

Example:
  logicsim gate nand H X L`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := sim.ParseKind(args[0])
			if err != nil {
				return exitWrap(ExitCommandError, err, "invalid gate")
			}
			vs := make([]sim.Signal, len(args)-1)
			pins := make([]int, len(vs))
			for i, a := range args[1:] {
				if vs[i], err = sim.ParseSignal(a); err != nil {
					return exitWrap(ExitCommandError, err, "invalid value")
				}
				pins[i] = i
			}
			out := sim.NewOperation(k, pins...).Execute(vs)
			if rootOpts.Format == "yaml" {
				return writeYAML(cmd.OutOrStdout(), map[string]interface{}{
					"gate":   k.String(),
					"inputs": vs,
					"output": out,
				})
			}
			names := make([]string, len(vs))
			for i, v := range vs {
				names[i] = v.String()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v(%s) = %v\n", k, strings.Join(names, ", "), out)
			return nil
		},
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in circuits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, n := range circuitNames() {
				fmt.Fprintf(w, "%-10s %s\n", n, circuits[n].desc)
			}
			return nil
		},
	}
}
