package logicsim_test

import (
	"testing"
	"testing/quick"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/db47h/logicsim"
)

func Test_complements(t *testing.T) {
	td := []struct {
		k, not sim.Kind
	}{
		{sim.And, sim.Nand},
		{sim.Or, sim.Nor},
		{sim.Xor, sim.Xnor},
	}
	for _, d := range td {
		t.Run(d.not.String(), func(t *testing.T) {
			op, nop := sim.NewOperation(d.k, 0, 1), sim.NewOperation(d.not, 0, 1)
			for _, a := range allSignals {
				for _, b := range allSignals {
					vs := []sim.Signal{a, b}
					assert.Equal(t, op.Execute(vs).Not(), nop.Execute(vs), "%v %v %v", a, d.not, b)
				}
			}
		})
	}
}

func TestOperation_binary(t *testing.T) {
	td := []struct {
		k  sim.Kind
		fn func(a, b sim.Signal) sim.Signal
	}{
		{sim.And, sim.Signal.And},
		{sim.Or, sim.Signal.Or},
		{sim.Xor, sim.Signal.Xor},
	}
	for _, d := range td {
		op := sim.NewOperation(d.k, 0, 1)
		for _, a := range allSignals {
			for _, b := range allSignals {
				assert.Equal(t, d.fn(a, b), op.Execute([]sim.Signal{a, b}), "%v %v %v", a, d.k, b)
			}
		}
	}
}

func TestOperation_arity(t *testing.T) {
	f := func(k uint8, arity, n uint8) bool {
		arity, n = arity%8+1, n%10
		op := sim.NewOperation(sim.Kind(k%6), make([]int, arity)...)
		_, err := op.Eval(make([]sim.Signal, n))
		if int(n) == op.Arity() {
			return err == nil
		}
		return errors.Is(err, sim.ErrArity)
	}
	require.NoError(t, quick.Check(f, nil))

	op := sim.NewOperation(sim.Nand, 0, 1, 2)
	assert.Panics(t, func() { op.Execute([]sim.Signal{H, H}) })
	assert.Panics(t, func() { op.Execute(nil) })
	assert.NotPanics(t, func() { op.Execute([]sim.Signal{H, H, H}) })
}

func TestOperation_Reads(t *testing.T) {
	op := sim.NewOperation(sim.Or, 3, 1)
	assert.True(t, op.Reads(1))
	assert.True(t, op.Reads(3))
	assert.False(t, op.Reads(0))
	assert.False(t, op.Reads(2))
}

func TestParseKind(t *testing.T) {
	for _, k := range []sim.Kind{sim.And, sim.Or, sim.Xor, sim.Nand, sim.Nor, sim.Xnor} {
		p, err := sim.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, p)
	}
	p, err := sim.ParseKind(" nand")
	require.NoError(t, err)
	assert.Equal(t, sim.Nand, p)

	_, err = sim.ParseKind("mux")
	assert.True(t, errors.Is(err, sim.ErrConfig))
}
