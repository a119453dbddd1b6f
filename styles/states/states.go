// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states defines the interaction states that a GUI element
// can be in, which drive styling and behavior.
package states

// States are bitflags for the current interaction states of an element.
type States int64

const (
	// Disabled means the element is not enabled and does not respond
	// to interaction. It renders in a visually muted style.
	Disabled States = 1 << iota

	// Selected means the element is selected, e.g., a list item in the
	// current selection set.
	Selected

	// Hovered means the cursor is currently within the element.
	Hovered

	// Active means the element is being interacted with, e.g., a button
	// currently pressed down.
	Active

	// Focused means the element has keyboard focus.
	Focused

	// Dragging means the element is the source of an active drag.
	Dragging
)

// HasFlag returns whether all of the given state flags are set.
func (st States) HasFlag(f States) bool {
	return st&f == f
}

// SetFlag sets the given state flags to the given value.
func (st *States) SetFlag(on bool, flags ...States) {
	for _, f := range flags {
		if on {
			*st |= f
		} else {
			*st &^= f
		}
	}
}
