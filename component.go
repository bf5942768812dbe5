// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// A Component is a node in a circuit. The set of components is closed: a
// Component is either an *Input or a *Logic.
//
type Component interface {
	// NumOutputs returns the number of output pins.
	NumOutputs() int
	// Output returns the current value of output pin.
	Output(pin int) Signal

	component()
}

// An Input is a component with a single output pin (0) driven by the caller
// through Simulator.SetInput.
//
type Input struct {
	value Signal
	owned bool
}

// NewInput returns a new Input. Its value is Undefined until driven.
//
func NewInput() *Input { return &Input{} }

func (*Input) component() {}

// NumOutputs always returns 1.
//
func (*Input) NumOutputs() int { return 1 }

// Output returns the driven value. The only valid pin is 0.
//
func (i *Input) Output(pin int) Signal {
	if pin != 0 {
		panic(errors.Errorf("input has no output pin %d", pin))
	}
	return i.value
}

// Value returns the driven value.
//
func (i *Input) Value() Signal { return i.value }

// setValue sets the driven value and returns true if it changed.
//
func (i *Input) setValue(v Signal) bool {
	if i.value == v {
		return false
	}
	i.value = v
	return true
}

// A Logic is a component computing one output pin per operation; operation
// i drives output pin i.
//
type Logic struct {
	ins  []Signal
	outs []Signal
	ops  []Operation
	deps [][]int // input pin -> indices of the operations reading it
	buf  []Signal

	owned bool
}

// NewLogic returns a single output gate of the given kind where the
// operation reads input pins 0 to arity-1. It panics if arity < 1.
//
func NewLogic(k Kind, arity int) *Logic {
	pins := make([]int, arity)
	for i := range pins {
		pins[i] = i
	}
	return MustLogic(NewLogicOps(arity, NewOperation(k, pins...)))
}

// NewLogicOps returns a Logic component with the given number of input pins
// and one output pin per operation.
//
// Every pin read by an operation must be in the range [0, inputs) and each
// operation must read at least one pin.
//
// Input and output pins power up Low.
//
func NewLogicOps(inputs int, ops ...Operation) (*Logic, error) {
	if inputs < 1 {
		return nil, errors.Wrapf(ErrConfig, "logic with %d input pins", inputs)
	}
	if len(ops) == 0 {
		return nil, errors.Wrap(ErrConfig, "logic with no operation")
	}
	l := &Logic{
		ins:  make([]Signal, inputs),
		outs: make([]Signal, len(ops)),
		ops:  make([]Operation, len(ops)),
		deps: make([][]int, inputs),
	}
	maxArity := 0
	for i, op := range ops {
		if op.Kind > Xnor {
			return nil, errors.Wrapf(ErrConfig, "operation %d: invalid gate kind %d", i, uint8(op.Kind))
		}
		if op.Arity() == 0 {
			return nil, errors.Wrapf(ErrArity, "operation %d (%v) reads no pin", i, op.Kind)
		}
		if op.Arity() > maxArity {
			maxArity = op.Arity()
		}
		pins := append([]int(nil), op.Pins...)
		for _, p := range pins {
			if p < 0 || p >= inputs {
				return nil, errors.Wrapf(ErrArity, "operation %d (%v) reads pin %d, logic has %d input pins", i, op.Kind, p, inputs)
			}
			// a pin listed twice must only trigger the operation once.
			if d := l.deps[p]; len(d) == 0 || d[len(d)-1] != i {
				l.deps[p] = append(l.deps[p], i)
			}
		}
		l.ops[i] = Operation{Kind: op.Kind, Pins: pins}
	}
	for i := range l.ins {
		l.ins[i] = Low
	}
	for i := range l.outs {
		l.outs[i] = Low
	}
	l.buf = make([]Signal, maxArity)
	return l, nil
}

// MustLogic is a helper that wraps a call to NewLogicOps and panics if err is
// not nil.
//
func MustLogic(l *Logic, err error) *Logic {
	if err != nil {
		panic(err)
	}
	return l
}

func (*Logic) component() {}

// NumInputs returns the number of input pins.
//
func (l *Logic) NumInputs() int { return len(l.ins) }

// NumOutputs returns the number of output pins.
//
func (l *Logic) NumOutputs() int { return len(l.outs) }

// Operation returns the operation driving output pin i.
//
func (l *Logic) Operation(i int) Operation { return l.ops[i] }

// Input returns the current value of input pin.
//
func (l *Logic) Input(pin int) Signal { return l.ins[pin] }

// Output returns the current value of output pin.
//
func (l *Logic) Output(pin int) Signal { return l.outs[pin] }

// SetInput overwrites input pin. Outputs are not recomputed.
//
func (l *Logic) SetInput(pin int, v Signal) {
	l.ins[pin] = v
}

// EvaluateAll re-evaluates every operation and returns the indices of the
// output pins whose value changed.
//
func (l *Logic) EvaluateAll() []int {
	var changed []int
	for i := range l.ops {
		if l.evaluate(i) {
			changed = append(changed, i)
		}
	}
	return changed
}

// EvaluateOutputs re-evaluates the operations reading input pin and returns
// the indices of the output pins whose value changed, in increasing order.
// Operations that do not read pin are left alone.
//
func (l *Logic) EvaluateOutputs(pin int) []int {
	var changed []int
	for _, i := range l.deps[pin] {
		if l.evaluate(i) {
			changed = append(changed, i)
		}
	}
	return changed
}

// evaluate recomputes output i and returns true if it changed.
func (l *Logic) evaluate(i int) bool {
	op := &l.ops[i]
	vs := l.buf[:len(op.Pins)]
	for j, p := range op.Pins {
		vs[j] = l.ins[p]
	}
	v := op.Execute(vs)
	if v == l.outs[i] {
		return false
	}
	l.outs[i] = v
	return true
}
