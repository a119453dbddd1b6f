// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/emberui/ember/colors"
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/events/key"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/mimedata"
	"github.com/emberui/ember/styles"
	"github.com/emberui/ember/styles/abilities"
)

// Draggable makes a list item selectable and draggable. A press on a
// selected item begins a drag gesture: a floating drag image follows
// the cursor and the enclosing [InsertionTarget] is notified of the
// payload's movement. Release within [ClickThreshold] classifies as
// a click; farther classifies as a drag and commits a move of the
// selection to the insertion position. Escape cancels an active
// drag; backspace or delete erases the selection.
type Draggable struct {
	Proxy
	Tracker
	dragImage *Floating
}

// NewDraggable returns a draggable wrapping the given subject.
func NewDraggable(subject Element) *Draggable {
	d := &Draggable{}
	d.SetSubject(subject)
	d.SetAbilities(true, abilities.Selectable, abilities.Clickable, abilities.Draggable)
	return d
}

// Limits widens the subject horizontally so items span the full row.
func (d *Draggable) Limits(ctx *Context) Limits {
	el := d.Subject().Limits(d.SubjectContext(ctx))
	return Limits{Min: el.Min, Max: math32.Vec2(FullExtent, el.Max.Y)}
}

func (d *Draggable) Draw(ctx *Context) {
	if d.IsSelected() && !d.IsDisabled() {
		cv := ctx.Canvas
		cv.BeginPath()
		cv.AddRoundRect(ctx.Bounds, 2)
		cv.FillStyle(colors.ApplyOpacity(styles.TheTheme.IndicatorColor, 0.6))
		cv.Fill()
	}
	if d.IsDisabled() {
		defer styles.Scope(&styles.TheTheme.LabelFontColor, styles.TheTheme.InactiveFontColor)()
		d.Proxy.Draw(ctx)
		return
	}
	d.Proxy.Draw(ctx)
}

func (d *Draggable) HitTest(ctx *Context, p math32.Vector2) Element {
	if !d.IsDisabled() && ctx.Bounds.ContainsPoint(p) {
		return d
	}
	return nil
}

func (d *Draggable) Click(ctx *Context, e *events.Mouse) bool {
	return d.TrackClick(ctx, e, d)
}

func (d *Draggable) Drag(ctx *Context, e *events.Mouse) {
	d.TrackDrag(ctx, e, d)
}

func (d *Draggable) Key(ctx *Context, e *events.Key) bool {
	if e.Typ != events.KeyDown {
		return false
	}
	switch e.Code {
	case key.CodeEscape:
		if d.dragImage == nil {
			return false
		}
		d.ReleaseDragImage(ctx.View)
		d.CancelTracking()
		if di, ok := FindParent[InsertionTarget](ctx); ok {
			ctx.View.TrackDrop(events.NewDrop(ctx.CursorPos(), targetPayload(di)), events.Leaving)
		}
		ctx.View.Refresh()
	case key.CodeBackspace, key.CodeDelete:
		if di, ok := FindParent[InsertionTarget](ctx); ok {
			if s, ok := FindParent[SelectionProvider](ctx); ok {
				if indices := s.GetSelection(); len(indices) > 0 {
					di.Erase(indices)
					return true
				}
			}
		}
	}
	return false
}

// BeginTracking starts a drag when the item is selected and no
// selection-altering modifier is held; otherwise it declines and the
// press falls through to selection handling.
func (d *Draggable) BeginTracking(ctx *Context, ti *TrackerInfo) {
	ti.Processed = false
	if ti.HasModifiers() {
		return
	}
	s, ok := FindParent[SelectionProvider](ctx)
	if !ok || !d.IsSelected() {
		return
	}
	numBoxes := min(len(s.GetSelection()), maxDragBoxes)
	bounds := ctx.Bounds
	off := float32(dragImageOffset * numBoxes)
	bounds.Max.X += off
	bounds.Max.Y += off

	d.dragImage = NewFloating(bounds, newDragImage(d.Subject(), numBoxes))
	ctx.View.AddOverlay(d.dragImage)
	ctx.View.Refresh()

	if di, ok := FindParent[InsertionTarget](ctx); ok {
		ctx.View.TrackDrop(events.NewDrop(ti.Current, targetPayload(di)), events.Entering)
	}
	ti.Processed = true
}

func (d *Draggable) KeepTracking(ctx *Context, ti *TrackerInfo) {
	ti.Processed = false
	if ti.HasModifiers() {
		return
	}
	if d.dragImage == nil {
		return
	}
	d.dragImage.SetBounds(d.dragImage.Bounds().MoveTo(ti.Current))
	if di, ok := FindParent[InsertionTarget](ctx); ok {
		// not debounced: the target recomputes its insertion point
		// against the current layout on every notification
		ctx.View.TrackDrop(events.NewDrop(ti.Current, targetPayload(di)), events.Hovering)
		ti.Processed = true
	}
	ctx.View.Refresh()
}

func (d *Draggable) EndTracking(ctx *Context, ti *TrackerInfo) {
	ti.Processed = false
	if ti.HasModifiers() {
		return
	}
	dist := ti.Distance()
	dragged := math32.Abs(dist.X) > ClickThreshold || math32.Abs(dist.Y) > ClickThreshold

	if d.dragImage == nil {
		return
	}
	d.ReleaseDragImage(ctx.View)
	ctx.View.Refresh()

	di, hasTarget := FindParent[InsertionTarget](ctx)
	if hasTarget {
		ctx.View.TrackDrop(events.NewDrop(ti.Current, targetPayload(di)), events.Leaving)
	}
	if !dragged || !hasTarget {
		return
	}
	if s, ok := FindParent[SelectionProvider](ctx); ok {
		if indices := s.GetSelection(); len(indices) > 0 {
			di.Move(indices)
			ti.Processed = true
		}
	}
}

// ReleaseDragImage removes the floating drag image from the view, if
// present. Containers must call it when tearing down an item whose
// drag may still be active.
func (d *Draggable) ReleaseDragImage(v View) {
	if d.dragImage == nil {
		return
	}
	v.RemoveOverlay(d.dragImage)
	d.dragImage = nil
}

// targetPayload returns a payload addressing only the given target,
// via an empty membership token of its identity type.
func targetPayload(di InsertionTarget) mimedata.Mimes {
	return mimedata.Mimes{mimedata.NewToken(string(di.ID()))}
}
