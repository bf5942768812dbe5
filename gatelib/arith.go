// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	sim "github.com/db47h/logicsim"
)

var halfAdderOps = []sim.Operation{
	sim.NewOperation(sim.Xor, 0, 1),
	sim.NewOperation(sim.And, 0, 1),
}

// HalfAdder adds a half adder built as a single Logic component with two
// outputs.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b), c = msb(a + b)
//
func HalfAdder(s *sim.Simulator, a, b Port) (sum, carry Port) {
	h := s.AddComponent(sim.MustLogic(sim.NewLogicOps(2, halfAdderOps...)))
	connect(s, h, a, b)
	return Port{C: h, Pin: 0}, Port{C: h, Pin: 1}
}

// FullAdder adds a full adder made of two half adders and an OR gate.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin), cout = msb(a + b + cin)
//
func FullAdder(s *sim.Simulator, a, b, cin Port) (sum, cout Port) {
	s0, c0 := HalfAdder(s, a, b)
	sum, c1 := HalfAdder(s, s0, cin)
	return sum, Or(s, c0, c1)
}

// AdderN adds a ripple carry adder. a and b must have the same length.
// Bit 0 is the least significant.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//	Function: out = (a + b) % 2**bits, c = (a + b) / 2**bits
//
func AdderN(s *sim.Simulator, a, b []Port) (out []Port, carry Port) {
	if len(a) != len(b) || len(a) == 0 {
		panic("gatelib: bus width mismatch")
	}
	out = make([]Port, len(a))
	out[0], carry = HalfAdder(s, a[0], b[0])
	for i := 1; i < len(a); i++ {
		out[i], carry = FullAdder(s, a[i], b[i], carry)
	}
	return out, carry
}
