// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	sim "github.com/db47h/logicsim"
)

// SRLatch adds a set/reset latch made of two cross-coupled NOR gates.
//
//	Inputs: set, reset
//	Outputs: q, qn
//	Function: set=1 => q=1, reset=1 => q=0, set=reset=0 => q holds.
//
// With set and reset both High, q and qn are both Low. The state reached after
// releasing both at once depends on the order in which they are driven.
//
func SRLatch(s *sim.Simulator, set, reset Port) (q, qn Port) {
	nq := s.AddComponent(sim.NewLogic(sim.Nor, 2))
	nqn := s.AddComponent(sim.NewLogic(sim.Nor, 2))
	q, qn = Out(nq), Out(nqn)
	connect(s, nq, reset, qn)
	connect(s, nqn, set, q)
	return q, qn
}

// RingOscillator adds a NAND gate with its output wired back to its second
// input. While enable is High, the circuit never settles.
//
//	Inputs: enable
//	Outputs: out
//	Function: out(t+1) = !(enable && out(t))
//
func RingOscillator(s *sim.Simulator, enable Port) Port {
	g := s.AddComponent(sim.NewLogic(sim.Nand, 2))
	out := Out(g)
	connect(s, g, enable, out)
	return out
}
