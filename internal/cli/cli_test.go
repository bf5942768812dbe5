package cli

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	sim "github.com/db47h/logicsim"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "logicsim", cmd.Use)

	for _, name := range []string{"run", "gate", "list"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "command %s should exist", name)
		assert.Equal(t, name, sub.Name())
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	run, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)
	limit := run.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "1000", limit.DefValue)
}

func TestGolden(t *testing.T) {
	td := []struct {
		name string
		args []string
		code int
	}{
		{"list", []string{"list"}, ExitSuccess},
		{"run_simple", []string{"run", "simple"}, ExitSuccess},
		{"run_unstable", []string{"run", "unstable", "--limit", "20"}, ExitUnstable},
		{"gate_nand", []string{"gate", "nand", "H", "X", "L"}, ExitSuccess},
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			out, _, err := execute(t, d.args...)
			assert.Equal(t, d.code, ExitCode(err))
			g.Assert(t, d.name, []byte(out))
		})
	}
}

func runYAML(t *testing.T, args ...string) *Report {
	t.Helper()
	out, _, err := execute(t, append([]string{"--format", "yaml", "run"}, args...)...)
	require.NoError(t, err)
	var r Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	return &r
}

func outputsOf(r *Report) map[string]sim.Signal {
	m := make(map[string]sim.Signal, len(r.Outputs))
	for _, p := range r.Outputs {
		m[p.Name] = p.Value
	}
	return m
}

func TestRun_circuits(t *testing.T) {
	td := []struct {
		args []string
		outs map[string]sim.Signal
	}{
		{[]string{"simple", "a=H", "b=L"}, map[string]sim.Signal{"out": sim.Low}},
		{[]string{"simple", "b=x"}, map[string]sim.Signal{"out": sim.Undefined}},
		{[]string{"adder"}, map[string]sim.Signal{"s": sim.Low, "cout": sim.High}},
		{[]string{"adder", "cin=H"}, map[string]sim.Signal{"s": sim.High, "cout": sim.High}},
		{[]string{"adder", "a=L", "b=L", "cin=H"}, map[string]sim.Signal{"s": sim.High, "cout": sim.Low}},
		{[]string{"mux"}, map[string]sim.Signal{"out": sim.High}},
		{[]string{"mux", "sel=L"}, map[string]sim.Signal{"out": sim.Low}},
		{[]string{"latch"}, map[string]sim.Signal{"q": sim.High, "qn": sim.Low}},
		{[]string{"latch", "set=L", "reset=H"}, map[string]sim.Signal{"q": sim.Low, "qn": sim.High}},
		{[]string{"unstable", "in=L"}, map[string]sim.Signal{"out": sim.High}},
	}
	for _, d := range td {
		r := runYAML(t, d.args...)
		assert.True(t, r.Stable, "%v", d.args)
		assert.Zero(t, r.Pending, "%v", d.args)
		assert.Equal(t, d.args[0], r.Circuit)
		assert.Equal(t, d.outs, outputsOf(r), "%v", d.args)
	}
}

func TestRun_yamlUnstable(t *testing.T) {
	out, _, err := execute(t, "--format", "yaml", "run", "unstable", "--limit", "7")
	assert.Equal(t, ExitUnstable, ExitCode(err))
	assert.ErrorIs(t, err, sim.ErrUnstable)
	var r Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.False(t, r.Stable)
	assert.Equal(t, 7, r.Steps)
	assert.Equal(t, 1, r.Pending)
	assert.Equal(t, []Probe{{Name: "in", Value: sim.High}}, r.Inputs)
}

func TestRun_errors(t *testing.T) {
	td := [][]string{
		{"run", "nope"},
		{"run", "simple", "a"},
		{"run", "simple", "a=Z"},
		{"run", "simple", "c=H"},
		{"run", "simple", "--limit", "-1"},
		{"--format", "json", "list"},
		{"gate", "mux", "H"},
		{"gate", "and", "Z"},
	}
	for _, args := range td {
		_, _, err := execute(t, args...)
		require.Error(t, err, "%v", args)
		assert.Equal(t, ExitCommandError, ExitCode(err), "%v", args)
	}
}

func TestRun_verbose(t *testing.T) {
	_, errOut, err := execute(t, "run", "-v", "simple")
	require.NoError(t, err)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "msg=step")
}

func TestGate_yaml(t *testing.T) {
	out, _, err := execute(t, "--format", "yaml", "gate", "xor", "H", "H", "H")
	require.NoError(t, err)
	var r struct {
		Gate   string       `yaml:"gate"`
		Inputs []sim.Signal `yaml:"inputs"`
		Output sim.Signal   `yaml:"output"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "XOR", r.Gate)
	assert.Equal(t, []sim.Signal{sim.High, sim.High, sim.High}, r.Inputs)
	assert.Equal(t, sim.High, r.Output)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitCommandError, ExitCode(assert.AnError))
	err := exitWrap(ExitUnstable, sim.ErrUnstable, "x")
	assert.Equal(t, ExitUnstable, ExitCode(err))
	assert.Equal(t, sim.ErrUnstable, errors.Cause(err))
	assert.Equal(t, ExitUnstable, ExitCode(errors.Wrap(err, "run")))
	assert.Equal(t, "x: boom", exitWrap(1, exitErrorf(2, "boom"), "x").Error())
}
