// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Queue is a FIFO event queue decoupling driver callbacks from event
// dispatch. Drivers Send events from their callbacks; the main loop
// drains them with Poll between frames.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Send adds an event to the back of the queue.
// MouseMove, MouseDrag, and Scroll events are compressed: if the most
// recent queued event has the same type, it is replaced rather than
// appended, to keep dispatch from lagging behind a fast device.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.events); n > 0 && compressible(ev.Type()) {
		if q.events[n-1].Type() == ev.Type() {
			q.events[n-1] = ev
			return
		}
	}
	q.events = append(q.events, ev)
}

// SendFirst adds an event to the front of the queue,
// ahead of any pending events.
func (q *Queue) SendFirst(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append([]Event{ev}, q.events...)
}

// Poll removes and returns the front event, or nil if the queue is empty.
func (q *Queue) Poll() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

func compressible(typ Types) bool {
	return typ == MouseMove || typ == MouseDrag || typ == Scroll
}
