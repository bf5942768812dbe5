// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"io"
	"log/slog"
)

// DefaultLimit is the iteration limit used by Settle.
//
const DefaultLimit = 1000

// An Option configures a Simulator.
//
type Option func(s *Simulator)

// WithLogger sets the logger used to trace propagation at debug level.
// By default, nothing is logged.
//
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCapacity preallocates room for n components and n wires.
//
func WithCapacity(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.cs = make([]Component, 0, n)
			s.ws = make([]edge, 0, n)
			s.out = make([][]WireID, 0, n)
		}
	}
}

// WithLimit sets the iteration limit used by Settle.
//
func WithLimit(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.limit = n
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
