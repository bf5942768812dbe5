// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatelib provides a library of reusable sub-circuits for logicsim.
//
// Builders add their components to a Simulator, wire them to the given
// source ports and return the ports of their outputs.
//
package gatelib

import (
	sim "github.com/db47h/logicsim"
)

// A Port designates output pin Pin of component C.
//
type Port struct {
	C   sim.ComponentID
	Pin int
}

// Out returns the port for output pin 0 of c.
//
func Out(c sim.ComponentID) Port { return Port{C: c} }

// Value returns the current value of p.
//
func (p Port) Value(s *sim.Simulator) sim.Signal { return s.Output(p.C, p.Pin) }

// connect wires each port in ins to the input pin of dst with the same index.
func connect(s *sim.Simulator, dst sim.ComponentID, ins ...Port) {
	for i, p := range ins {
		s.AddWire(p.C, dst, sim.NewWire(p.Pin, i))
	}
}

// Inputs adds n Input components and returns their ports.
//
func Inputs(s *sim.Simulator, n int) []Port {
	ps := make([]Port, n)
	for i := range ps {
		ps[i] = Out(s.AddComponent(sim.NewInput()))
	}
	return ps
}

// Gate adds a gate of kind k reading ins.
//
//	Inputs: ins[0], ins[1], ..., ins[n-1]
//	Outputs: out
//	Function: out = k(ins[0], ins[1], ...)
//
func Gate(s *sim.Simulator, k sim.Kind, ins ...Port) Port {
	g := s.AddComponent(sim.NewLogic(k, len(ins)))
	connect(s, g, ins...)
	return Out(g)
}

// Not adds a NOT gate, implemented as a single input NAND.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(s *sim.Simulator, in Port) Port { return Gate(s, sim.Nand, in) }

// And adds a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And(s *sim.Simulator, a, b Port) Port { return Gate(s, sim.And, a, b) }

// Nand adds a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
func Nand(s *sim.Simulator, a, b Port) Port { return Gate(s, sim.Nand, a, b) }

// Or adds a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(s *sim.Simulator, a, b Port) Port { return Gate(s, sim.Or, a, b) }

// Nor adds a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
func Nor(s *sim.Simulator, a, b Port) Port { return Gate(s, sim.Nor, a, b) }

// Xor adds a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
//
func Xor(s *sim.Simulator, a, b Port) Port { return Gate(s, sim.Xor, a, b) }

// Xnor adds a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//
func Xnor(s *sim.Simulator, a, b Port) Port { return Gate(s, sim.Xnor, a, b) }

// GateN adds a N-bits gate. a and b must have the same length.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = k(a[i], b[i]) }
//
// All bits are computed by a single Logic component with one operation per
// bit.
//
func GateN(s *sim.Simulator, k sim.Kind, a, b []Port) []Port {
	if len(a) != len(b) {
		panic("gatelib: bus width mismatch")
	}
	bits := len(a)
	ops := make([]sim.Operation, bits)
	for i := range ops {
		ops[i] = sim.NewOperation(k, i, bits+i)
	}
	g := s.AddComponent(sim.MustLogic(sim.NewLogicOps(2*bits, ops...)))
	connect(s, g, append(append([]Port(nil), a...), b...)...)
	out := make([]Port, bits)
	for i := range out {
		out[i] = Port{C: g, Pin: i}
	}
	return out
}

// OrNWay adds a N-Way OR gate.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] || in[1] || in[2] || ... || in[n-1]
//
func OrNWay(s *sim.Simulator, in ...Port) Port { return Gate(s, sim.Or, in...) }

// AndNWay adds a N-Way AND gate.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] && in[1] && in[2] && ... && in[n-1]
//
func AndNWay(s *sim.Simulator, in ...Port) Port { return Gate(s, sim.And, in...) }
