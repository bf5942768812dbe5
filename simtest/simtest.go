// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing circuits.
//
package simtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	sim "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/gatelib"
)

// Limit is the iteration limit used by the functions of this package.
//
var Limit = 10000

// A Builder adds a circuit reading ins to s and returns its outputs.
//
type Builder func(s *sim.Simulator, ins []gatelib.Port) []gatelib.Port

// Settle calls s.StepUntilStable(limit) and fails the test if the circuit does
// not settle. It returns the number of steps used.
//
func Settle(t testing.TB, s *sim.Simulator, limit int) int {
	t.Helper()
	n, err := s.StepUntilStable(limit)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// Drive sets the Input components designated by ins to vs.
//
func Drive(s *sim.Simulator, ins []gatelib.Port, vs []sim.Signal) {
	for i, p := range ins {
		s.SetInput(p.C, vs[i])
	}
}

// Values returns the current values of ps.
//
func Values(s *sim.Simulator, ps []gatelib.Port) []sim.Signal {
	vs := make([]sim.Signal, len(ps))
	for i, p := range ps {
		vs[i] = p.Value(s)
	}
	return vs
}

var tristate = [...]sim.Signal{sim.Low, sim.High, sim.Undefined}

// TruthTable checks a gate of kind k with the given arity against ref for
// every assignment of Low, High and Undefined to its inputs.
//
func TruthTable(t testing.TB, k sim.Kind, arity int, ref func([]sim.Signal) sim.Signal) {
	t.Helper()

	s := sim.New()
	ins := gatelib.Inputs(s, arity)
	out := gatelib.Gate(s, k, ins...)
	s.PowerOn()
	Settle(t, s, Limit)

	vs := make([]sim.Signal, arity)
	tot := 1
	for i := 0; i < arity; i++ {
		tot *= len(tristate)
	}
	for i := 0; i < tot; i++ {
		n := i
		for j := range vs {
			vs[j] = tristate[n%len(tristate)]
			n /= len(tristate)
		}
		Drive(s, ins, vs)
		Settle(t, s, Limit)
		if exp, got := ref(vs), out.Value(s); exp != got {
			t.Errorf("%v%v = %v, got %v", k, vs, exp, got)
		}
	}
}

func errString(vs []sim.Signal, o int, ex, got sim.Signal) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "in[%d]=%v", i, v)
	}
	return fmt.Sprintf("\nExpected %s => out[%d]=%v\nGot %v", b.String(), o, ex, got)
}

// Compare builds two circuits fed by the same inputs and compares their
// outputs given the same binary inputs. Inputs are enumerated exhaustively up
// to 12 inputs, randomly chosen beyond.
//
func Compare(t testing.TB, inputs int, b1, b2 Builder) {
	t.Helper()

	s := sim.New()
	ins := gatelib.Inputs(s, inputs)
	o1, o2 := b1(s, ins), b2(s, ins)
	if len(o1) != len(o2) {
		t.Fatalf("output count mismatch: %d != %d", len(o1), len(o2))
	}
	s.PowerOn()

	vs := make([]sim.Signal, inputs)
	check := func() {
		t.Helper()
		Drive(s, ins, vs)
		Settle(t, s, Limit)
		for i := range o1 {
			if ex, got := o1[i].Value(s), o2[i].Value(s); ex != got {
				t.Fatal(errString(vs, i, ex, got))
			}
		}
	}

	start := time.Now()

	// try all 0, then all 1
	for i := range vs {
		vs[i] = sim.Low
	}
	check()
	for i := range vs {
		vs[i] = sim.High
	}
	check()

	if inputs <= 12 {
		for n := 0; n < 1<<uint(inputs); n++ {
			for i := range vs {
				vs[i] = sim.FromBool(n&(1<<uint(i)) != 0)
			}
			check()
		}
	} else {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for n := 0; n < 1<<12; n++ {
			for i := range vs {
				vs[i] = sim.FromBool(rnd.Int63()&(1<<62) != 0)
			}
			check()
		}
	}

	elapsed := time.Since(start)
	t.Logf("%d components. %d steps in %v.", s.NumComponents(), s.Steps(), elapsed)
}
