package logicsim_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/db47h/logicsim"
)

func TestInput_default(t *testing.T) {
	in := sim.NewInput()
	assert.Equal(t, X, in.Value())
	assert.Equal(t, 1, in.NumOutputs())
	assert.Equal(t, X, in.Output(0))
	assert.Panics(t, func() { in.Output(1) })
}

func TestNewLogic(t *testing.T) {
	l := sim.NewLogic(sim.And, 3)
	assert.Equal(t, 3, l.NumInputs())
	assert.Equal(t, 1, l.NumOutputs())
	assert.Equal(t, []int{0, 1, 2}, l.Operation(0).Pins)
	for i := 0; i < l.NumInputs(); i++ {
		assert.Equal(t, L, l.Input(i))
	}
	assert.Equal(t, L, l.Output(0))

	assert.Panics(t, func() { sim.NewLogic(sim.Or, 0) })
}

func TestNewLogicOps_errors(t *testing.T) {
	td := []struct {
		name   string
		inputs int
		ops    []sim.Operation
		cause  error
	}{
		{"no inputs", 0, []sim.Operation{sim.NewOperation(sim.And, 0)}, sim.ErrConfig},
		{"no ops", 2, nil, sim.ErrConfig},
		{"empty op", 2, []sim.Operation{sim.NewOperation(sim.And)}, sim.ErrArity},
		{"pin out of range", 2, []sim.Operation{sim.NewOperation(sim.Or, 0, 2)}, sim.ErrArity},
		{"negative pin", 2, []sim.Operation{sim.NewOperation(sim.Or, -1)}, sim.ErrArity},
		{"bad kind", 1, []sim.Operation{{Kind: sim.Kind(42), Pins: []int{0}}}, sim.ErrConfig},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			l, err := sim.NewLogicOps(d.inputs, d.ops...)
			assert.Nil(t, l)
			require.Error(t, err)
			assert.Equal(t, d.cause, errors.Cause(err))
		})
	}
}

func TestLogic_SetInput(t *testing.T) {
	l := sim.NewLogic(sim.And, 2)
	l.SetInput(0, H)
	l.SetInput(1, H)
	// no recomputation until EvaluateOutputs.
	assert.Equal(t, L, l.Output(0))
	assert.Equal(t, H, l.Input(0))
	assert.Equal(t, []int{0}, l.EvaluateOutputs(1))
	assert.Equal(t, H, l.Output(0))
}

func TestLogic_EvaluateOutputs_idempotent(t *testing.T) {
	for _, k := range []sim.Kind{sim.And, sim.Or, sim.Xor, sim.Nand, sim.Nor, sim.Xnor} {
		t.Run(k.String(), func(t *testing.T) {
			l := sim.NewLogic(k, 2)
			for _, a := range allSignals {
				for _, b := range allSignals {
					l.SetInput(0, a)
					l.SetInput(1, b)
					l.EvaluateOutputs(0)
					assert.Empty(t, l.EvaluateOutputs(0), "%v %v %v", a, k, b)
					assert.Empty(t, l.EvaluateOutputs(1), "%v %v %v", a, k, b)
				}
			}
		})
	}

	// NAND(L, L) = H, changed from the power-up value.
	l := sim.NewLogic(sim.Nand, 2)
	assert.Equal(t, []int{0}, l.EvaluateOutputs(0))
	assert.Empty(t, l.EvaluateOutputs(0))
	assert.Equal(t, H, l.Output(0))
}

func TestLogic_EvaluateOutputs_sparse(t *testing.T) {
	// out0 = a AND b, out1 = NOT(c OR c), out2 = b XOR c
	l, err := sim.NewLogicOps(3,
		sim.NewOperation(sim.And, 0, 1),
		sim.NewOperation(sim.Nor, 2, 2),
		sim.NewOperation(sim.Xor, 1, 2),
	)
	require.NoError(t, err)
	require.Equal(t, 3, l.NumOutputs())

	l.SetInput(2, H)
	// changing pin 2 without evaluating it leaves everything alone
	assert.Equal(t, []sim.Signal{L, L, L}, outputs(l))
	// pin 0 only feeds the AND
	assert.Empty(t, l.EvaluateOutputs(0))
	assert.Equal(t, []sim.Signal{L, L, L}, outputs(l))

	// pin 2 feeds the NOR and the XOR, once each
	assert.Equal(t, []int{2}, l.EvaluateOutputs(2))
	assert.Equal(t, []sim.Signal{L, L, H}, outputs(l))

	l.SetInput(2, L)
	assert.Equal(t, []int{1, 2}, l.EvaluateOutputs(2))
	assert.Equal(t, []sim.Signal{L, H, L}, outputs(l))

	l.SetInput(0, H)
	l.SetInput(1, H)
	assert.Equal(t, []int{0, 2}, l.EvaluateOutputs(1))
	assert.Equal(t, []sim.Signal{H, H, H}, outputs(l))
}

func TestLogic_undefinedPropagation(t *testing.T) {
	l := sim.NewLogic(sim.Xor, 2)
	l.SetInput(0, X)
	assert.Equal(t, []int{0}, l.EvaluateOutputs(0))
	assert.Equal(t, X, l.Output(0))

	a := sim.NewLogic(sim.And, 2)
	a.SetInput(0, X)
	// X AND L = L
	assert.Empty(t, a.EvaluateOutputs(0))
	assert.Equal(t, L, a.Output(0))
}

func outputs(l *sim.Logic) []sim.Signal {
	vs := make([]sim.Signal, l.NumOutputs())
	for i := range vs {
		vs[i] = l.Output(i)
	}
	return vs
}

func TestLogic_EvaluateAll(t *testing.T) {
	l, err := sim.NewLogicOps(2,
		sim.NewOperation(sim.And, 0, 1),
		sim.NewOperation(sim.Nand, 0, 1),
		sim.NewOperation(sim.Xnor, 1),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, l.EvaluateAll())
	assert.Empty(t, l.EvaluateAll())
	assert.Equal(t, []sim.Signal{L, H, H}, outputs(l))
}
