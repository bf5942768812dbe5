// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"sort"

	sim "github.com/db47h/logicsim"
	gl "github.com/db47h/logicsim/gatelib"
)

// a pin is a named port of a demo circuit.
type pin struct {
	name string
	port gl.Port
	def  sim.Signal // default drive value for inputs
}

// A circuit is a built-in demo circuit.
type circuit struct {
	name  string
	desc  string
	build func(s *sim.Simulator) (ins, outs []pin)
}

var circuits = map[string]*circuit{}

func register(c *circuit) { circuits[c.name] = c }

func circuitNames() []string {
	names := make([]string, 0, len(circuits))
	for n := range circuits {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func input(s *sim.Simulator, name string, def sim.Signal) pin {
	return pin{name: name, port: gl.Inputs(s, 1)[0], def: def}
}

func init() {
	register(&circuit{
		name: "simple",
		desc: "two inputs feeding a 2-input AND gate",
		build: func(s *sim.Simulator) (ins, outs []pin) {
			a, b := input(s, "a", sim.High), input(s, "b", sim.High)
			return []pin{a, b}, []pin{{name: "out", port: gl.And(s, a.port, b.port)}}
		},
	})
	register(&circuit{
		name: "unstable",
		desc: "a NAND gate with its output wired back to its second input",
		build: func(s *sim.Simulator) (ins, outs []pin) {
			in := input(s, "in", sim.High)
			return []pin{in}, []pin{{name: "out", port: gl.RingOscillator(s, in.port)}}
		},
	})
	register(&circuit{
		name: "adder",
		desc: "a full adder made of two half adders",
		build: func(s *sim.Simulator) (ins, outs []pin) {
			a, b, cin := input(s, "a", sim.High), input(s, "b", sim.High), input(s, "cin", sim.Low)
			sum, cout := gl.FullAdder(s, a.port, b.port, cin.port)
			return []pin{a, b, cin}, []pin{{name: "s", port: sum}, {name: "cout", port: cout}}
		},
	})
	register(&circuit{
		name: "mux",
		desc: "a 2 to 1 multiplexer",
		build: func(s *sim.Simulator) (ins, outs []pin) {
			a, b, sel := input(s, "a", sim.Low), input(s, "b", sim.High), input(s, "sel", sim.High)
			return []pin{a, b, sel}, []pin{{name: "out", port: gl.Mux(s, a.port, b.port, sel.port)}}
		},
	})
	register(&circuit{
		name: "latch",
		desc: "a SR latch made of two cross-coupled NOR gates",
		build: func(s *sim.Simulator) (ins, outs []pin) {
			set, reset := input(s, "set", sim.High), input(s, "reset", sim.Low)
			q, qn := gl.SRLatch(s, set.port, reset.port)
			return []pin{set, reset}, []pin{{name: "q", port: q}, {name: "qn", port: qn}}
		},
	})
}
