// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the typed GUI events delivered by platform
// drivers and consumed by the element layer.
package events

import (
	"fmt"
	"time"

	"github.com/emberui/ember/events/key"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/mimedata"
)

// Event is the interface satisfied by all event types,
// allowing them to be queued and dispatched generically.
type Event interface {
	// Type returns the type of the event.
	Type() Types
}

// Base is the base event type embedded by all concrete events.
type Base struct {
	// Typ is the type of the event.
	Typ Types

	// Time is when the event was generated.
	Time time.Time
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) init(typ Types) {
	ev.Typ = typ
	ev.Time = time.Now()
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Mouse is a mouse event for all mouse events except [Scroll].
type Mouse struct {
	Base

	// Button is the mouse button involved, if any.
	Button Buttons

	// Where is the position of the cursor, in view coordinates.
	Where math32.Vector2

	// Start is the position where the active button was first pressed,
	// for MouseDrag events.
	Start math32.Vector2

	// Clicks counts rapid consecutive presses near the same position:
	// 1 for a plain press, 2 for a double click.
	Clicks int

	// Mods are the active modifier keys.
	Mods key.Modifiers
}

// NewMouse returns a new [Mouse] event of the given type.
func NewMouse(typ Types, but Buttons, where math32.Vector2, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.init(typ)
	ev.Button = but
	ev.Where = where
	ev.Mods = mods
	if typ == MouseDown || typ == MouseUp {
		ev.Clicks = 1
	}
	return ev
}

// NewMouseDrag returns a new [MouseDrag] event with the given
// current and start positions.
func NewMouseDrag(but Buttons, where, start math32.Vector2, mods key.Modifiers) *Mouse {
	ev := NewMouse(MouseDrag, but, where, mods)
	ev.Start = start
	return ev
}

// IsDown returns whether this is a MouseDown event.
func (ev *Mouse) IsDown() bool {
	return ev.Typ == MouseDown
}

// SelectMode returns the selection mode implied by this
// event's modifier keys.
func (ev *Mouse) SelectMode() SelectModes {
	return SelectModeBits(ev.Mods)
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods.ModifiersString())
}

// MouseScroll is for mouse scrolling, recording the delta of the scroll.
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis.
	Delta math32.Vector2
}

// NewScroll returns a new [Scroll] event with the given position and delta.
func NewScroll(where, delta math32.Vector2, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.init(Scroll)
	ev.Where = where
	ev.Delta = delta
	ev.Mods = mods
	return ev
}

// Key is a key press or release event.
type Key struct {
	Base

	// Rune is the character rune for the key, if printable.
	Rune rune

	// Code is the physical key code.
	Code key.Codes

	// Mods are the active modifier keys.
	Mods key.Modifiers
}

// NewKey returns a new [KeyDown] or [KeyUp] event.
func NewKey(typ Types, rn rune, code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.init(typ)
	ev.Rune = rn
	ev.Code = code
	ev.Mods = mods
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %d, Rune: %q, Mods: %v}", ev.Type(), ev.Code, ev.Rune, ev.Mods.ModifiersString())
}

// Text is a text input event carrying a typed character.
type Text struct {
	Base

	// Rune is the typed character.
	Rune rune

	// Mods are the active modifier keys.
	Mods key.Modifiers
}

// NewText returns a new [TextInput] event for the given rune.
func NewText(rn rune, mods key.Modifiers) *Text {
	ev := &Text{}
	ev.init(TextInput)
	ev.Rune = rn
	ev.Mods = mods
	return ev
}

// Drop carries a MIME-typed payload being dragged over or dropped
// onto elements. It is used both for drop-tracking notifications and
// for the final drop delivery.
type Drop struct {
	Base

	// Where is the current cursor position, in view coordinates.
	Where math32.Vector2

	// Data is the payload.
	Data mimedata.Mimes
}

// NewDrop returns a new [Drop] carrier with the given position and payload.
func NewDrop(where math32.Vector2, data mimedata.Mimes) *Drop {
	ev := &Drop{}
	ev.init(DropExternal)
	ev.Where = where
	ev.Data = data
	return ev
}

// WindowEvent reports window-level changes: resize, paint, focus, close.
type WindowEvent struct {
	Base

	// Size is the new window size, for [WindowResize].
	Size math32.Vector2
}

// NewWindow returns a new window event of the given type.
func NewWindow(typ Types) *WindowEvent {
	ev := &WindowEvent{}
	ev.init(typ)
	return ev
}

// NewWindowResize returns a new [WindowResize] event with the given size.
func NewWindowResize(size math32.Vector2) *WindowEvent {
	ev := NewWindow(WindowResize)
	ev.Size = size
	return ev
}
