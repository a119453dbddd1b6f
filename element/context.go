// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/paint"
)

// View is the window-side surface elements talk back to: repaint
// requests, overlay management, the live cursor position, and
// drop-tracking fan-out. It is implemented by the view package.
type View interface {
	// Refresh requests a repaint of the whole view.
	Refresh()

	// RefreshBounds requests a repaint of the given region.
	RefreshBounds(b math32.Box2)

	// CursorPos returns the current cursor position in view coordinates.
	CursorPos() math32.Vector2

	// AddOverlay adds a floating element above the content.
	AddOverlay(o Overlay)

	// RemoveOverlay removes a previously added floating element.
	// Removing an overlay that is not present is a no-op.
	RemoveOverlay(o Overlay)

	// TrackDrop distributes drag-over notifications to the drop
	// targets in the view. A Leaving status ends tracking for all
	// currently engaged targets.
	TrackDrop(info *events.Drop, status events.TrackingStatus)
}

// Overlay is an element floating above the view content in the
// overlay stack, positioned by its own bounds.
type Overlay interface {
	Element
	Bounds() math32.Box2
	SetBounds(b math32.Box2)
}

// Context carries the per-call environment an element operates in:
// the owning view, the canvas being drawn to, the element itself, its
// assigned bounds, and a link to the parent element's context. Event
// routing rebuilds the chain on every dispatch, so parent links are
// always current for the call at hand.
type Context struct {
	View   View
	Canvas paint.Canvas
	Elem   Element
	Bounds math32.Box2
	Parent *Context
}

// NewContext returns a root context for the given element and bounds.
func NewContext(v View, cv paint.Canvas, e Element, bounds math32.Box2) *Context {
	return &Context{View: v, Canvas: cv, Elem: e, Bounds: bounds}
}

// SubContext returns a child context for the given element and
// bounds, linked to ctx as its parent.
func (ctx *Context) SubContext(child Element, bounds math32.Box2) *Context {
	return &Context{View: ctx.View, Canvas: ctx.Canvas, Elem: child, Bounds: bounds, Parent: ctx}
}

// CursorPos returns the current cursor position from the view.
func (ctx *Context) CursorPos() math32.Vector2 {
	return ctx.View.CursorPos()
}

// FindParent returns the nearest element implementing T, starting at
// the context's own element and walking up the parent chain.
func FindParent[T any](ctx *Context) (T, bool) {
	for c := ctx; c != nil; c = c.Parent {
		if t, ok := c.Elem.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Subjecter is implemented by wrapper elements that delegate to a
// single subject, such as [Proxy].
type Subjecter interface {
	Subject() Element
}

// FindSubject returns the nearest element implementing T, starting at
// e and following the chain of wrapped subjects.
func FindSubject[T any](e Element) (T, bool) {
	for e != nil {
		if t, ok := e.(T); ok {
			return t, true
		}
		s, ok := e.(Subjecter)
		if !ok {
			break
		}
		e = s.Subject()
	}
	var zero T
	return zero, false
}
