// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	sim "github.com/db47h/logicsim"
)

// Mux adds a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(s *sim.Simulator, a, b, sel Port) Port {
	notSel := Not(s, sel)
	return Or(s, And(s, a, notSel), And(s, b, sel))
}

// DMux adds a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(s *sim.Simulator, in, sel Port) (a, b Port) {
	return And(s, in, Not(s, sel)), And(s, in, sel)
}
