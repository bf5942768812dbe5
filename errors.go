// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors. Use errors.Cause or errors.Is to test against them.
//
var (
	// ErrConfig reports a malformed component or wire.
	ErrConfig = errors.New("invalid circuit configuration")
	// ErrArity reports a gate evaluated with the wrong number of values.
	ErrArity = errors.New("gate arity mismatch")
	// ErrUnstable reports a circuit that did not settle within the
	// iteration limit given to StepUntilStable.
	ErrUnstable = errors.New("circuit unstable")
)

// UnstableError is returned by StepUntilStable when the event queue is not
// empty after Limit steps.
//
type UnstableError struct {
	Limit   int // iteration limit
	Pending int // events left in the queue
}

func (e *UnstableError) Error() string {
	return fmt.Sprintf("%v: %d events pending after %d steps", ErrUnstable, e.Pending, e.Limit)
}

// Is makes errors.Is(err, ErrUnstable) true.
//
func (e *UnstableError) Is(target error) bool { return target == ErrUnstable }

// Cause returns ErrUnstable so that errors.Cause works as well.
//
func (e *UnstableError) Cause() error { return ErrUnstable }
