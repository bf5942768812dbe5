// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Kind identifies a gate function.
//
type Kind uint8

// Gate kinds. Nand, Nor and Xnor are the complements of And, Or and Xor.
//
const (
	And Kind = iota
	Or
	Xor
	Nand
	Nor
	Xnor
)

var kindNames = [...]string{
	And:  "AND",
	Or:   "OR",
	Xor:  "XOR",
	Nand: "NAND",
	Nor:  "NOR",
	Xnor: "XNOR",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the gate Kind with the given name (case insensitive).
//
func ParseKind(name string) (Kind, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for k, kn := range kindNames {
		if kn == n {
			return Kind(k), nil
		}
	}
	return 0, errors.Wrapf(ErrConfig, "unknown gate kind %q", name)
}

// reduce applies the gate function of kind k to vs.
//
func (k Kind) reduce(vs []Signal) Signal {
	switch k {
	case And:
		return AndAll(vs)
	case Or:
		return OrAll(vs)
	case Xor:
		return XorAll(vs)
	case Nand:
		return AndAll(vs).Not()
	case Nor:
		return OrAll(vs).Not()
	case Xnor:
		return XorAll(vs).Not()
	}
	panic(errors.Errorf("invalid gate kind %d", uint8(k)))
}

// An Operation is a gate function reading an ordered set of input pins of its
// Logic component. Its arity is the number of pins it reads.
//
type Operation struct {
	Kind Kind
	Pins []int
}

// NewOperation returns an operation of the given kind reading pins.
//
func NewOperation(k Kind, pins ...int) Operation {
	return Operation{Kind: k, Pins: pins}
}

// Arity returns the number of input values the operation expects.
//
func (o Operation) Arity() int { return len(o.Pins) }

// Reads returns true if o reads input pin.
//
func (o Operation) Reads(pin int) bool {
	for _, p := range o.Pins {
		if p == pin {
			return true
		}
	}
	return false
}

// Eval evaluates o over vs. It returns an error wrapping ErrArity if the
// value count does not match o's arity.
//
func (o Operation) Eval(vs []Signal) (Signal, error) {
	if len(vs) != len(o.Pins) {
		return Undefined, errors.Wrapf(ErrArity, "%v: got %d values, want %d", o.Kind, len(vs), len(o.Pins))
	}
	return o.Kind.reduce(vs), nil
}

// Execute is like Eval but panics on arity mismatch.
//
func (o Operation) Execute(vs []Signal) Signal {
	r, err := o.Eval(vs)
	if err != nil {
		panic(err)
	}
	return r
}
