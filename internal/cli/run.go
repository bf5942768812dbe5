// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	sim "github.com/db47h/logicsim"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Limit int
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <circuit> [input=value ...]",
		Short: "Run a built-in circuit until it settles",
		Long: `Build one of the built-in circuits, drive its inputs and propagate signals
until the circuit settles or the iteration limit is reached.

Input values default to the circuit's demo values and can be overridden with
name=value arguments where value is one of H, L or X. Inputs that are not
driven stay X. The reported step count includes the power-on events.

Example:
  logicsim run simple a=H b=L
  logicsim run unstable --limit 20`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCircuit(opts, cmd, args[0], args[1:])
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", sim.DefaultLimit, "maximum number of propagation steps")

	return cmd
}

func parseAssignments(args []string) (map[string]sim.Signal, error) {
	m := make(map[string]sim.Signal, len(args))
	for _, a := range args {
		i := strings.IndexByte(a, '=')
		if i <= 0 {
			return nil, errors.Errorf("invalid input assignment %q", a)
		}
		v, err := sim.ParseSignal(a[i+1:])
		if err != nil {
			return nil, err
		}
		m[strings.TrimSpace(a[:i])] = v
	}
	return m, nil
}

func runCircuit(opts *RunOptions, cmd *cobra.Command, name string, args []string) error {
	c, ok := circuits[name]
	if !ok {
		return exitErrorf(ExitCommandError, "unknown circuit %q, must be one of %v", name, circuitNames())
	}
	vals, err := parseAssignments(args)
	if err != nil {
		return exitWrap(ExitCommandError, err, "invalid arguments")
	}
	if opts.Limit < 0 {
		return exitErrorf(ExitCommandError, "limit must be positive")
	}

	var simOpts []sim.Option
	if l := opts.logger(cmd.ErrOrStderr()); l != nil {
		simOpts = append(simOpts, sim.WithLogger(l))
	}
	s := sim.New(simOpts...)
	ins, outs := c.build(s)
	s.PowerOn()

	r := &Report{Circuit: c.name}
	for _, in := range ins {
		v := in.def
		if nv, ok := vals[in.name]; ok {
			v = nv
			delete(vals, in.name)
		}
		s.SetInput(in.port.C, v)
		r.Inputs = append(r.Inputs, Probe{Name: in.name, Value: v})
	}
	if len(vals) > 0 {
		extra := make([]string, 0, len(vals))
		for n := range vals {
			extra = append(extra, n)
		}
		sort.Strings(extra)
		return exitErrorf(ExitCommandError, "circuit %s has no input %q", c.name, extra[0])
	}

	n, err := s.StepUntilStable(opts.Limit)
	r.Steps = n
	r.Stable = err == nil
	r.Pending = s.Pending()
	for _, o := range outs {
		r.Outputs = append(r.Outputs, Probe{Name: o.name, Value: o.port.Value(s)})
	}
	if werr := writeReport(cmd.OutOrStdout(), opts.Format, r); werr != nil {
		return exitWrap(ExitCommandError, werr, "failed to write report")
	}
	if err != nil {
		return exitWrap(ExitUnstable, err, "circuit "+c.name)
	}
	return nil
}
