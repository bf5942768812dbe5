// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package logicsim provides an event driven simulator for gate level digital
logic circuits using tri-state signals (High, Low and Undefined).

A circuit is built by adding components (Inputs and Logic gates) to a
Simulator and connecting their pins with wires:

	s := logicsim.New()
	a := s.AddComponent(logicsim.NewInput())
	b := s.AddComponent(logicsim.NewInput())
	and := s.AddComponent(logicsim.NewLogic(logicsim.And, 2))
	s.AddWire(a, and, logicsim.NewWire(0, 0))
	s.AddWire(b, and, logicsim.NewWire(0, 1))

	s.SetInput(a, logicsim.High)
	s.SetInput(b, logicsim.High)
	if _, err := s.StepUntilStable(100); err != nil {
		// the circuit oscillates
	}
	out := s.Output(and, 0) // High

Driving an Input or changing a gate output queues an Event. Each call to Step
resolves exactly one Event: the new value is copied along every wire leaving
the changed pin, in the order the wires were added, and only the gate
operations reading the updated input pins are re-evaluated.

There is no propagation delay model. A combinational loop that never settles,
like a NAND gate with its output wired back to one of its inputs, keeps the
event queue busy forever; StepUntilStable detects it and returns an
*UnstableError.

Programming errors (invalid handles, wiring to a missing pin, driving a Logic
component with SetInput) cause a panic.
*/
package logicsim
