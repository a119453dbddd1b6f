// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view hosts an element tree inside a platform window: it
// routes abstract input events into the tree, maintains the overlay
// stack, fans drag-over notifications out to drop targets, and
// coalesces repaint requests for the host.
package view

import (
	"github.com/emberui/ember/element"
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/paint"
)

// Host is the window-side surface a view invalidates into.
type Host interface {
	// Invalidate schedules a repaint of the window.
	Invalidate()
}

// View owns an element tree and implements [element.View] for it.
// Events enter through the abstract entry points (Click, Drag,
// Cursor, Scroll, Key, Text, Drop, Resize) and are routed to the
// overlays, topmost first, then the content.
//
// A View is not safe for concurrent use; the platform driver calls
// it from its event loop goroutine only.
type View struct {
	content  element.Element
	overlays []element.Overlay
	bounds   math32.Box2
	cursor   math32.Vector2
	host     Host

	// clickTarget captures the receiver of the last button press so
	// the matching drags and release reach the same element.
	clickTarget element.Element

	// engaged tracks the drop targets a dragged payload has entered
	// and not yet left.
	engaged map[element.Element]bool

	dirty bool
}

// New returns a view over the given content, invalidating into the
// given host. A nil host is allowed for offscreen use.
func New(host Host, content element.Element) *View {
	return &View{host: host, content: content, engaged: map[element.Element]bool{}}
}

// Content returns the root content element.
func (v *View) Content() element.Element { return v.content }

// Bounds returns the view bounds.
func (v *View) Bounds() math32.Box2 { return v.bounds }

// Refresh implements [element.View].
func (v *View) Refresh() {
	v.dirty = true
	if v.host != nil {
		v.host.Invalidate()
	}
}

// RefreshBounds implements [element.View]. The region is folded into
// a whole-view repaint.
func (v *View) RefreshBounds(b math32.Box2) {
	v.Refresh()
}

// NeedsRedraw returns whether a repaint has been requested since the
// last Draw.
func (v *View) NeedsRedraw() bool { return v.dirty }

// CursorPos implements [element.View], returning the last pointer
// position routed through the view.
func (v *View) CursorPos() math32.Vector2 { return v.cursor }

// AddOverlay implements [element.View].
func (v *View) AddOverlay(o element.Overlay) {
	for _, have := range v.overlays {
		if have == o {
			return
		}
	}
	v.overlays = append(v.overlays, o)
	v.Refresh()
}

// RemoveOverlay implements [element.View]. Removing an overlay that
// is not present is a no-op.
func (v *View) RemoveOverlay(o element.Overlay) {
	for i, have := range v.overlays {
		if have == o {
			v.overlays = append(v.overlays[:i], v.overlays[i+1:]...)
			v.Refresh()
			return
		}
	}
}

// Overlays returns the overlay stack, bottom first.
func (v *View) Overlays() []element.Overlay { return v.overlays }

func (v *View) contentContext(cv paint.Canvas) *element.Context {
	return element.NewContext(v, cv, v.content, v.bounds)
}

func (v *View) overlayContext(cv paint.Canvas, o element.Overlay) *element.Context {
	return element.NewContext(v, cv, o, o.Bounds())
}

// targetContext returns a routing context for a previously captured
// click target, which is either an overlay or the content.
func (v *View) targetContext(t element.Element) *element.Context {
	if o, ok := t.(element.Overlay); ok {
		for _, have := range v.overlays {
			if have == o {
				return v.overlayContext(nil, o)
			}
		}
	}
	return element.NewContext(v, nil, t, v.bounds)
}

// Click routes a button press to the topmost overlay under the
// pointer, or the content, capturing the receiver; the matching
// release goes to the captured receiver regardless of position.
func (v *View) Click(e *events.Mouse) bool {
	v.cursor = e.Where
	if e.IsDown() {
		var target element.Element = v.content
		for i := len(v.overlays) - 1; i >= 0; i-- {
			if v.overlays[i].Bounds().ContainsPoint(e.Where) {
				target = v.overlays[i]
				break
			}
		}
		v.clickTarget = target
		return target.Click(v.targetContext(target), e)
	}
	t := v.clickTarget
	v.clickTarget = nil
	if t == nil {
		return false
	}
	return t.Click(v.targetContext(t), e)
}

// Drag routes held-button motion to the captured click receiver.
func (v *View) Drag(e *events.Mouse) {
	v.cursor = e.Where
	if v.clickTarget == nil {
		return
	}
	v.clickTarget.Drag(v.targetContext(v.clickTarget), e)
}

// Cursor routes free pointer motion to the overlays and the content.
// Overlays the pointer is not over receive a leaving status so they
// can drop hover highlights.
func (v *View) Cursor(p math32.Vector2, status events.TrackingStatus) bool {
	v.cursor = p
	handled := false
	for i := len(v.overlays) - 1; i >= 0; i-- {
		o := v.overlays[i]
		st := status
		if !o.Bounds().ContainsPoint(p) {
			st = events.Leaving
		}
		if o.Cursor(v.overlayContext(nil, o), p, st) {
			handled = true
		}
	}
	if v.content.Cursor(v.contentContext(nil), p, status) {
		handled = true
	}
	return handled
}

// Scroll routes a scroll event to the content.
func (v *View) Scroll(delta, p math32.Vector2) bool {
	v.cursor = p
	return v.content.Scroll(v.contentContext(nil), delta, p)
}

// Key routes a key event to the overlays, topmost first, then the
// content.
func (v *View) Key(e *events.Key) bool {
	for i := len(v.overlays) - 1; i >= 0; i-- {
		o := v.overlays[i]
		if o.Key(v.overlayContext(nil, o), e) {
			return true
		}
	}
	return v.content.Key(v.contentContext(nil), e)
}

// Text routes a text input event to the content.
func (v *View) Text(e *events.Text) bool {
	return v.content.Text(v.contentContext(nil), e)
}

// Poll forwards the periodic poll to the content and overlays.
func (v *View) Poll() {
	v.content.Poll(v.contentContext(nil))
	for _, o := range v.overlays {
		o.Poll(v.overlayContext(nil, o))
	}
}

// BeginFocus notifies the content that the window gained focus.
func (v *View) BeginFocus() bool { return v.content.BeginFocus() }

// EndFocus notifies the content that the window lost focus.
func (v *View) EndFocus() bool { return v.content.EndFocus() }

// Resize sets the view bounds. Layout happens on the next Draw.
func (v *View) Resize(size math32.Vector2) {
	v.bounds = math32.B2(0, 0, size.X, size.Y)
	v.Refresh()
}

// Draw lays out and draws the content, then the overlays bottom to
// top, onto the given canvas.
func (v *View) Draw(cv paint.Canvas) {
	ctx := v.contentContext(cv)
	v.content.Layout(ctx)
	v.content.Draw(ctx)
	for _, o := range v.overlays {
		octx := v.overlayContext(cv, o)
		o.Layout(octx)
		o.Draw(octx)
	}
	v.dirty = false
}

// forEachControl walks the content and overlays, visiting every
// element that intercepts control events, with its bounds context.
func (v *View) forEachControl(fun func(cctx *element.Context)) {
	visit := func(cctx *element.Context) bool {
		if cctx.Elem.WantsControl() {
			fun(cctx)
		}
		return true
	}
	v.content.Walk(v.contentContext(nil), visit)
	for _, o := range v.overlays {
		o.Walk(v.overlayContext(nil, o), visit)
	}
}

// TrackDrop implements [element.View]: it distributes a drag-over
// notification to the control elements, computing a per-target
// status. A target first containing the payload position gets an
// entering status, then hovering while it keeps containing it, and
// leaving once it stops. An incoming leaving status ends tracking
// for every engaged target.
func (v *View) TrackDrop(info *events.Drop, status events.TrackingStatus) {
	if status == events.Leaving {
		v.forEachControl(func(cctx *element.Context) {
			if v.engaged[cctx.Elem] {
				cctx.Elem.TrackDrop(cctx, info, events.Leaving)
			}
		})
		clear(v.engaged)
		return
	}
	current := map[element.Element]bool{}
	v.forEachControl(func(cctx *element.Context) {
		el := cctx.Elem
		switch {
		case cctx.Bounds.ContainsPoint(info.Where):
			st := events.Entering
			if v.engaged[el] {
				st = events.Hovering
			}
			el.TrackDrop(cctx, info, st)
			current[el] = true
		case v.engaged[el]:
			el.TrackDrop(cctx, info, events.Leaving)
		}
	})
	v.engaged = current
}

// Drop delivers a dropped payload to the first control element under
// the drop position that accepts it.
func (v *View) Drop(info *events.Drop) bool {
	handled := false
	visit := func(cctx *element.Context) bool {
		if !cctx.Elem.WantsControl() || !cctx.Bounds.ContainsPoint(info.Where) {
			return true
		}
		if cctx.Elem.Drop(cctx, info) {
			handled = true
			return false
		}
		return true
	}
	v.content.Walk(v.contentContext(nil), visit)
	if !handled {
		for _, o := range v.overlays {
			if !o.Walk(v.overlayContext(nil, o), visit) {
				break
			}
		}
	}
	clear(v.engaged)
	return handled
}
