// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	sim "github.com/db47h/logicsim"
)

// Process exit status of the logicsim command.
const (
	ExitSuccess      = 0
	ExitUnstable     = 1 // the circuit did not settle within --limit
	ExitCommandError = 2
)

// An ExitError is returned by commands that must terminate the process with a
// status other than ExitCommandError.
type ExitError struct {
	Code int
	err  error
}

func (e *ExitError) Error() string { return e.err.Error() }

// Cause returns the underlying error.
func (e *ExitError) Cause() error { return e.err }

func (e *ExitError) Unwrap() error { return e.err }

func exitErrorf(code int, format string, args ...interface{}) error {
	return &ExitError{Code: code, err: errors.Errorf(format, args...)}
}

func exitWrap(code int, err error, msg string) error {
	return &ExitError{Code: code, err: errors.Wrap(err, msg)}
}

// ExitCode returns the process exit status for the error returned by a
// command: ExitSuccess for nil, the Code of the outermost ExitError in the
// chain, ExitCommandError otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *ExitError
	if errors.As(err, &e) {
		return e.Code
	}
	return ExitCommandError
}

// Probe is a named signal value.
type Probe struct {
	Name  string     `yaml:"name"`
	Value sim.Signal `yaml:"value"`
}

// Report is the result of a circuit run.
type Report struct {
	Circuit string  `yaml:"circuit"`
	Inputs  []Probe `yaml:"inputs"`
	Steps   int     `yaml:"steps"`
	Stable  bool    `yaml:"stable"`
	Pending int     `yaml:"pending,omitempty"`
	Outputs []Probe `yaml:"outputs"`
}

func probeList(ps []Probe) string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(p.Value.String())
	}
	return b.String()
}

// writeReport writes r to w in the given format.
func writeReport(w io.Writer, format string, r *Report) error {
	if format == "yaml" {
		return writeYAML(w, r)
	}
	fmt.Fprintf(w, "circuit: %s\n", r.Circuit)
	fmt.Fprintf(w, "inputs: %s\n", probeList(r.Inputs))
	if r.Stable {
		fmt.Fprintf(w, "settled in %d steps\n", r.Steps)
	} else {
		fmt.Fprintf(w, "unstable: %d events pending after %d steps\n", r.Pending, r.Steps)
	}
	fmt.Fprintf(w, "outputs: %s\n", probeList(r.Outputs))
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
