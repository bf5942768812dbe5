// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Signal is a tri-state logic value.
//
// The zero value is Undefined.
//
type Signal uint8

// Signal values.
//
const (
	Undefined Signal = iota
	Low
	High
)

// FromBool returns High for true and Low for false.
//
func FromBool(b bool) Signal {
	if b {
		return High
	}
	return Low
}

// Bool returns the boolean value of s. ok is false if s is Undefined.
//
func (s Signal) Bool() (v bool, ok bool) {
	switch s {
	case High:
		return true, true
	case Low:
		return false, true
	}
	return false, false
}

// Defined returns true if s is either High or Low.
//
func (s Signal) Defined() bool { return s == High || s == Low }

// And returns s AND t. Low dominates Undefined.
//
func (s Signal) And(t Signal) Signal {
	switch {
	case s == High && t == High:
		return High
	case s == Low || t == Low:
		return Low
	}
	return Undefined
}

// Or returns s OR t. High dominates Undefined.
//
func (s Signal) Or(t Signal) Signal {
	switch {
	case s == Low && t == Low:
		return Low
	case s == High || t == High:
		return High
	}
	return Undefined
}

// Xor returns s XOR t. The result is Undefined if either operand is.
//
func (s Signal) Xor(t Signal) Signal {
	if !s.Defined() || !t.Defined() {
		return Undefined
	}
	if s != t {
		return High
	}
	return Low
}

// Not returns the complement of s. Undefined stays Undefined.
//
func (s Signal) Not() Signal {
	switch s {
	case High:
		return Low
	case Low:
		return High
	}
	return Undefined
}

// AndAll reduces vs with AND, left to right, starting from High.
//
func AndAll(vs []Signal) Signal {
	r := High
	for _, v := range vs {
		r = r.And(v)
	}
	return r
}

// OrAll reduces vs with OR, left to right, starting from Low.
//
func OrAll(vs []Signal) Signal {
	r := Low
	for _, v := range vs {
		r = r.Or(v)
	}
	return r
}

// XorAll reduces vs with XOR, left to right, starting from Low.
//
func XorAll(vs []Signal) Signal {
	r := Low
	for _, v := range vs {
		r = r.Xor(v)
	}
	return r
}

func (s Signal) String() string {
	switch s {
	case High:
		return "H"
	case Low:
		return "L"
	case Undefined:
		return "X"
	}
	return "Signal(" + strconv.Itoa(int(s)) + ")"
}

// ParseSignal parses a signal name. Accepted values (case insensitive) are
// "h", "high", "1" and "true" for High, "l", "low", "0" and "false" for Low,
// "x", "u" and "undefined" for Undefined.
//
func ParseSignal(v string) (Signal, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "h", "high", "1", "true":
		return High, nil
	case "l", "low", "0", "false":
		return Low, nil
	case "x", "u", "undefined":
		return Undefined, nil
	}
	return Undefined, errors.Errorf("invalid signal value %q", v)
}

// MarshalText implements encoding.TextMarshaler.
//
func (s Signal) MarshalText() ([]byte, error) {
	if s > High {
		return nil, errors.Errorf("invalid signal %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (s *Signal) UnmarshalText(text []byte) error {
	v, err := ParseSignal(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
