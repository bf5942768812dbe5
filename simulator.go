// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Simulator is an event driven circuit simulation.
//
// Components and wires are added once and never removed. Changes to output
// pins are queued as Events and propagated one Event per call to Step.
//
// A Simulator is not safe for concurrent use.
//
type Simulator struct {
	cs    []Component
	ws    []edge
	out   [][]WireID // component -> outgoing wires, in insertion order
	q     eventQueue
	steps uint64
	limit int
	log   *slog.Logger
}

// New returns a new, empty Simulator.
//
func New(opts ...Option) *Simulator {
	s := &Simulator{limit: DefaultLimit}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = discardLogger()
	}
	return s
}

// AddComponent adds c to the circuit and returns its handle. The Simulator
// takes ownership of c: from then on it must only be accessed through the
// returned handle.
//
// It panics if c is nil or has already been added to a Simulator.
//
func (s *Simulator) AddComponent(c Component) ComponentID {
	switch c := c.(type) {
	case *Input:
		if c == nil {
			panic(errors.Wrap(ErrConfig, "nil input"))
		}
		if c.owned {
			panic(errors.Wrap(ErrConfig, "input already added to a circuit"))
		}
		c.owned = true
	case *Logic:
		if c == nil {
			panic(errors.Wrap(ErrConfig, "nil logic"))
		}
		if c.owned {
			panic(errors.Wrap(ErrConfig, "logic already added to a circuit"))
		}
		c.owned = true
	default:
		panic(errors.Errorf("unsupported component type %T", c))
	}
	id := ComponentID(len(s.cs))
	s.cs = append(s.cs, c)
	s.out = append(s.out, nil)
	return id
}

// AddWire connects output pin w.SourcePin of src to input pin w.TargetPin of
// dst and returns the wire handle. src and dst may be the same component.
//
// It panics if either handle is invalid, if a pin is out of range or if dst
// is an Input.
//
func (s *Simulator) AddWire(src, dst ComponentID, w Wire) WireID {
	sc := s.component(src)
	if w.SourcePin < 0 || w.SourcePin >= sc.NumOutputs() {
		panic(errors.Wrapf(ErrConfig, "component %d has no output pin %d", src, w.SourcePin))
	}
	switch dc := s.component(dst).(type) {
	case *Input:
		panic(errors.Wrapf(ErrConfig, "component %d is an input and cannot be wired to", dst))
	case *Logic:
		if w.TargetPin < 0 || w.TargetPin >= dc.NumInputs() {
			panic(errors.Wrapf(ErrConfig, "component %d has no input pin %d", dst, w.TargetPin))
		}
	default:
		panic(errors.Errorf("unsupported component type %T", dc))
	}
	id := WireID(len(s.ws))
	s.ws = append(s.ws, edge{src: src, dst: dst, w: w})
	s.out[src] = append(s.out[src], id)
	return id
}

// SetInput drives Input id to v. If the value changes, an Event is queued for
// its output pin. It panics if id is not an Input.
//
func (s *Simulator) SetInput(id ComponentID, v Signal) {
	switch c := s.component(id).(type) {
	case *Input:
		if c.setValue(v) {
			s.q.push(Event{Component: id, Pin: 0})
			s.log.Debug("input driven", "component", int(id), "value", v.String())
		}
	case *Logic:
		panic(errors.Errorf("component %d is not an input", id))
	default:
		panic(errors.Errorf("unsupported component type %T", c))
	}
}

// PowerOn queues an Event for the output of every Input and for each output
// of a Logic component that changes when all its operations are evaluated
// against its current inputs, in component order.
//
// Gates power up with all pins Low while Inputs start Undefined. Once the
// queued events are resolved, every wired input pin holds the value of its
// source, including Inputs that were never driven, and gates whose output is
// not Low for all Low inputs (NAND, NOR, XNOR) agree with their inputs.
//
func (s *Simulator) PowerOn() {
	for i, c := range s.cs {
		switch c := c.(type) {
		case *Logic:
			for _, p := range c.EvaluateAll() {
				s.q.push(Event{Component: ComponentID(i), Pin: p})
			}
		case *Input:
			s.q.push(Event{Component: ComponentID(i), Pin: 0})
		default:
			panic(errors.Errorf("unsupported component type %T", c))
		}
	}
	s.log.Debug("power on", "pending", s.q.len())
}

// Step resolves the next queued Event: the value of the event's output pin
// is written to every wired input pin, in wire insertion order, and each
// target re-evaluates the operations reading that pin. Changed outputs are
// queued as new Events.
//
// Step returns false if the queue was empty.
//
func (s *Simulator) Step() bool {
	e, ok := s.q.pop()
	if !ok {
		return false
	}
	s.steps++
	v := s.component(e.Component).Output(e.Pin)
	for _, wid := range s.out[e.Component] {
		wr := &s.ws[wid]
		if wr.w.SourcePin != e.Pin {
			continue
		}
		switch t := s.cs[wr.dst].(type) {
		case *Logic:
			t.SetInput(wr.w.TargetPin, v)
			for _, p := range t.EvaluateOutputs(wr.w.TargetPin) {
				s.q.push(Event{Component: wr.dst, Pin: p})
			}
		case *Input:
			panic(errors.Errorf("wire %d drives input component %d", wid, wr.dst))
		default:
			panic(errors.Errorf("unsupported component type %T", t))
		}
	}
	s.log.Debug("step", "n", s.steps, "component", int(e.Component), "pin", e.Pin, "value", v.String(), "pending", s.q.len())
	return true
}

// StepUntilStable calls Step until the event queue is empty and returns the
// number of steps used. If events are still pending after limit steps, it
// returns an *UnstableError. The circuit state remains valid in that case and
// further calls resume propagation where it stopped.
//
func (s *Simulator) StepUntilStable(limit int) (int, error) {
	n := 0
	for s.q.len() > 0 {
		if n >= limit {
			s.log.Debug("unstable", "limit", limit, "pending", s.q.len())
			return n, &UnstableError{Limit: limit, Pending: s.q.len()}
		}
		s.Step()
		n++
	}
	return n, nil
}

// Settle is StepUntilStable using the limit set with WithLimit, or
// DefaultLimit.
//
func (s *Simulator) Settle() (int, error) {
	return s.StepUntilStable(s.limit)
}

// Output returns the value of output pin of component id.
//
func (s *Simulator) Output(id ComponentID, pin int) Signal {
	c := s.component(id)
	if pin < 0 || pin >= c.NumOutputs() {
		panic(errors.Errorf("component %d has no output pin %d", id, pin))
	}
	return c.Output(pin)
}

// InputPin returns the value of input pin of Logic component id.
//
func (s *Simulator) InputPin(id ComponentID, pin int) Signal {
	switch c := s.component(id).(type) {
	case *Logic:
		if pin < 0 || pin >= c.NumInputs() {
			panic(errors.Errorf("component %d has no input pin %d", id, pin))
		}
		return c.Input(pin)
	case *Input:
		panic(errors.Errorf("component %d is an input and has no input pin", id))
	default:
		panic(errors.Errorf("unsupported component type %T", c))
	}
}

// IsInput returns true if id is an Input component.
//
func (s *Simulator) IsInput(id ComponentID) bool {
	_, ok := s.component(id).(*Input)
	return ok
}

// Wire returns the endpoints of wire id.
//
func (s *Simulator) Wire(id WireID) (src, dst ComponentID, w Wire) {
	if id < 0 || int(id) >= len(s.ws) {
		panic(errors.Errorf("invalid wire handle %d", id))
	}
	e := s.ws[id]
	return e.src, e.dst, e.w
}

// Pending returns the number of queued events.
//
func (s *Simulator) Pending() int { return s.q.len() }

// Queue returns a copy of the queued events, oldest first.
//
func (s *Simulator) Queue() []Event { return s.q.snapshot() }

// Steps returns the total number of events resolved so far.
//
func (s *Simulator) Steps() uint64 { return s.steps }

// NumComponents returns the component count.
//
func (s *Simulator) NumComponents() int { return len(s.cs) }

// NumWires returns the wire count.
//
func (s *Simulator) NumWires() int { return len(s.ws) }

func (s *Simulator) component(id ComponentID) Component {
	if id < 0 || int(id) >= len(s.cs) {
		panic(errors.Errorf("invalid component handle %d", id))
	}
	return s.cs[id]
}
