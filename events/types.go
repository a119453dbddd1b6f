// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of GUI event, including both the source /
// nature of the event and the "action" type (e.g., MouseDown and MouseUp
// are separate event types).
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button for which.
	MouseUp

	// MouseMove is sent when the mouse is moving with no button down.
	MouseMove

	// MouseDrag is sent when the mouse is moving with a button down.
	// The start position indicates where the button was first pressed.
	MouseDrag

	// Scroll is for scroll wheel or other scrolling events.
	Scroll

	// KeyDown is when a key is pressed down (including repeats).
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// TextInput is when printable text has been typed, after any
	// system-level character composition.
	TextInput

	// DropExternal is when the OS drops data (e.g., files) onto the window.
	DropExternal

	// WindowResize happens when the window has been resized.
	WindowResize

	// WindowPaint is sent when the window contents need to be redrawn.
	WindowPaint

	// WindowFocus is when the window gains input focus.
	WindowFocus

	// WindowFocusLost is when the window loses input focus.
	WindowFocusLost

	// WindowClose is when the window is being closed.
	WindowClose
)

var typeNames = map[Types]string{
	UnknownType:     "Unknown",
	MouseDown:       "MouseDown",
	MouseUp:         "MouseUp",
	MouseMove:       "MouseMove",
	MouseDrag:       "MouseDrag",
	Scroll:          "Scroll",
	KeyDown:         "KeyDown",
	KeyUp:           "KeyUp",
	TextInput:       "TextInput",
	DropExternal:    "DropExternal",
	WindowResize:    "WindowResize",
	WindowPaint:     "WindowPaint",
	WindowFocus:     "WindowFocus",
	WindowFocusLost: "WindowFocusLost",
	WindowClose:     "WindowClose",
}

func (tp Types) String() string {
	if nm, ok := typeNames[tp]; ok {
		return nm
	}
	return "Unknown"
}

// TrackingStatus describes where the cursor is, relative to an element,
// during cursor and drop tracking.
type TrackingStatus int32

const (
	// Entering means the cursor just entered the element's bounds.
	Entering TrackingStatus = iota

	// Hovering means the cursor remains within the element's bounds.
	Hovering

	// Leaving means the cursor just left the element's bounds, or the
	// interaction it was part of is ending.
	Leaving
)

func (ts TrackingStatus) String() string {
	switch ts {
	case Entering:
		return "Entering"
	case Hovering:
		return "Hovering"
	case Leaving:
		return "Leaving"
	}
	return "Unknown"
}
