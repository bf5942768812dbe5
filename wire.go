// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// A ComponentID is a handle to a component in a Simulator. Handles are never
// invalidated.
//
type ComponentID int

// A WireID is a handle to a wire in a Simulator.
//
type WireID int

// A Wire connects output pin SourcePin of a component to input pin TargetPin
// of another (or the same) component. Both are zero-based offsets into the
// fixed pin arrays of their respective components.
//
type Wire struct {
	SourcePin int
	TargetPin int
}

// NewWire returns a wire from output pin source to input pin target.
//
func NewWire(source, target int) Wire {
	return Wire{SourcePin: source, TargetPin: target}
}

// an edge is a wire together with its endpoints.
type edge struct {
	src, dst ComponentID
	w        Wire
}

// An Event notifies that output pin Pin of Component changed.
//
type Event struct {
	Component ComponentID
	Pin       int
}

// eventQueue is a FIFO queue of events.
//
type eventQueue struct {
	events []Event
	head   int
}

func (q *eventQueue) len() int { return len(q.events) - q.head }

func (q *eventQueue) push(e Event) {
	q.events = append(q.events, e)
}

func (q *eventQueue) pop() (Event, bool) {
	if q.head == len(q.events) {
		return Event{}, false
	}
	e := q.events[q.head]
	q.head++
	// reclaim space once the consumed prefix dominates.
	if q.head == len(q.events) {
		q.events, q.head = q.events[:0], 0
	} else if q.head > 64 && q.head*2 > len(q.events) {
		n := copy(q.events, q.events[q.head:])
		q.events, q.head = q.events[:n], 0
	}
	return e, true
}

func (q *eventQueue) snapshot() []Event {
	return append([]Event(nil), q.events[q.head:]...)
}
