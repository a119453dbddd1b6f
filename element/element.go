// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element implements the interactive element layer of the
// toolkit: hit testing and context propagation, the pointer-tracking
// protocol, drop targets with MIME-type payload matching, draggable
// and selectable list items, and popup menu buttons. Layout and
// rendering are consumed through the [Limits] / Layout / Draw calls
// and the [paint.Canvas] interface; platform input arrives through
// the abstract event methods, normally routed by a view.
package element

import (
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/styles/abilities"
	"github.com/emberui/ember/styles/states"
)

// FullExtent is the maximum size an element can request along a
// dimension. It is large but finite so size arithmetic stays finite.
const FullExtent float32 = 1e30

// Limits are the minimum and maximum sizes an element can take.
type Limits struct {
	Min math32.Vector2
	Max math32.Vector2
}

// Element is the interface satisfied by all elements. The base
// functionality is provided by [Base], which implements every method
// as a no-op; element types embed it and override what they need.
//
// The boolean returns on the event methods report whether the element
// handled the event; the platform adapter uses them to decide on
// OS-level fallback behavior.
type Element interface {
	// Limits returns the minimum and maximum sizes for the element.
	Limits(ctx *Context) Limits

	// Layout assigns geometry to the element's content within the
	// context bounds.
	Layout(ctx *Context)

	// Draw renders the element onto the context canvas.
	Draw(ctx *Context)

	// HitTest returns the element at the given point, or nil.
	HitTest(ctx *Context, p math32.Vector2) Element

	// Walk calls fun for the element and all elements below it,
	// with a context carrying each element's bounds. It stops and
	// returns false if fun returns false.
	Walk(ctx *Context, fun func(cctx *Context) bool) bool

	// WantsControl returns whether the element intercepts control
	// events (such as drop tracking) even when not the deepest hit.
	WantsControl() bool

	// WantsFocus returns whether the element accepts keyboard focus.
	WantsFocus() bool

	// Click handles a mouse button press or release.
	Click(ctx *Context, e *events.Mouse) bool

	// Drag handles mouse motion while a button is held.
	Drag(ctx *Context, e *events.Mouse)

	// Cursor handles mouse motion with no button held.
	Cursor(ctx *Context, p math32.Vector2, status events.TrackingStatus) bool

	// Scroll handles a scroll event at the given point.
	Scroll(ctx *Context, delta, p math32.Vector2) bool

	// Key handles a key press or release.
	Key(ctx *Context, e *events.Key) bool

	// Text handles typed text input.
	Text(ctx *Context, e *events.Text) bool

	// BeginFocus notifies the element that it gained keyboard focus.
	BeginFocus() bool

	// EndFocus notifies the element that it lost keyboard focus.
	EndFocus() bool

	// Poll is called periodically for time-based updates.
	Poll(ctx *Context)

	// TrackDrop notifies the element of a payload being dragged over
	// it, with the given tracking status.
	TrackDrop(ctx *Context, info *events.Drop, status events.TrackingStatus)

	// Drop delivers a payload dropped on the element, returning
	// whether the element accepted it.
	Drop(ctx *Context, info *events.Drop) bool
}

// Base implements [Element] with no-op defaults and holds the
// interaction states and abilities shared by all elements.
// All element types must embed it.
type Base struct {
	state states.States
	able  abilities.Abilities
}

// StateIs returns whether the element has all the given state flags set.
func (eb *Base) StateIs(f states.States) bool {
	return eb.state.HasFlag(f)
}

// SetState sets the given state flags to the given value.
func (eb *Base) SetState(on bool, f ...states.States) {
	eb.state.SetFlag(on, f...)
}

// AbilityIs returns whether the element has all the given abilities.
func (eb *Base) AbilityIs(f abilities.Abilities) bool {
	return eb.able.HasFlag(f)
}

// SetAbilities sets the given ability flags to the given value.
func (eb *Base) SetAbilities(on bool, f ...abilities.Abilities) {
	eb.able.SetFlag(on, f...)
}

// IsDisabled returns whether the element is disabled.
func (eb *Base) IsDisabled() bool {
	return eb.StateIs(states.Disabled)
}

// SetEnabled sets whether the element is enabled.
func (eb *Base) SetEnabled(on bool) {
	eb.SetState(!on, states.Disabled)
}

// IsSelected returns whether the element is selected.
func (eb *Base) IsSelected() bool {
	return eb.StateIs(states.Selected)
}

// SetSelected sets whether the element is selected.
func (eb *Base) SetSelected(on bool) {
	eb.SetState(on, states.Selected)
}

func (eb *Base) Limits(ctx *Context) Limits {
	return Limits{Max: math32.Vec2(FullExtent, FullExtent)}
}

func (eb *Base) Layout(ctx *Context) {}

func (eb *Base) Draw(ctx *Context) {}

func (eb *Base) HitTest(ctx *Context, p math32.Vector2) Element {
	return nil
}

func (eb *Base) Walk(ctx *Context, fun func(cctx *Context) bool) bool {
	return fun(ctx)
}

func (eb *Base) WantsControl() bool { return false }

func (eb *Base) WantsFocus() bool { return false }

func (eb *Base) Click(ctx *Context, e *events.Mouse) bool { return false }

func (eb *Base) Drag(ctx *Context, e *events.Mouse) {}

func (eb *Base) Cursor(ctx *Context, p math32.Vector2, status events.TrackingStatus) bool {
	return false
}

func (eb *Base) Scroll(ctx *Context, delta, p math32.Vector2) bool { return false }

func (eb *Base) Key(ctx *Context, e *events.Key) bool { return false }

func (eb *Base) Text(ctx *Context, e *events.Text) bool { return false }

func (eb *Base) BeginFocus() bool { return false }

func (eb *Base) EndFocus() bool { return false }

func (eb *Base) Poll(ctx *Context) {}

func (eb *Base) TrackDrop(ctx *Context, info *events.Drop, status events.TrackingStatus) {}

func (eb *Base) Drop(ctx *Context, info *events.Drop) bool { return false }
