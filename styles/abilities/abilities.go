// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abilities defines the abilities of GUI elements to take on
// different states and participate in different interactions.
package abilities

// Abilities are bitflags for what interactions an element supports.
// They are aligned with the states flags: an element only takes on a
// state whose corresponding ability it has.
type Abilities int64

const (
	// Selectable means it can be Selected.
	Selectable Abilities = 1 << iota

	// Activatable means it can be made Active by pressing down on it.
	Activatable

	// Clickable means it receives click events, without changing its
	// rendering when pressed as Activatable does.
	Clickable

	// Draggable means it can initiate a drag gesture, becoming the
	// source of a drag-and-drop transfer.
	Draggable

	// Droppable means it can receive drop-tracking notifications and
	// accept dropped payloads.
	Droppable

	// Focusable means it can receive keyboard focus.
	Focusable
)

// HasFlag returns whether all of the given ability flags are set.
func (ab Abilities) HasFlag(f Abilities) bool {
	return ab&f == f
}

// SetFlag sets the given ability flags to the given value.
func (ab *Abilities) SetFlag(on bool, flags ...Abilities) {
	for _, f := range flags {
		if on {
			*ab |= f
		} else {
			*ab &^= f
		}
	}
}
