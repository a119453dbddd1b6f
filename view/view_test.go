// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"testing"

	"github.com/emberui/ember/colors"
	"github.com/emberui/ember/element"
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/mimedata"
	"github.com/emberui/ember/paint"
	"github.com/stretchr/testify/assert"
)

type testHost struct {
	invalidates int
}

func (h *testHost) Invalidate() { h.invalidates++ }

// clickEl records the pointer events routed to it.
type clickEl struct {
	element.Base
	downs, ups int
}

func (ce *clickEl) Limits(ctx *element.Context) element.Limits {
	return element.Limits{Min: math32.Vec2(100, 50), Max: math32.Vec2(element.FullExtent, 50)}
}

func (ce *clickEl) Click(ctx *element.Context, e *events.Mouse) bool {
	if e.IsDown() {
		ce.downs++
	} else {
		ce.ups++
	}
	return true
}

func TestViewRedrawFlag(t *testing.T) {
	h := &testHost{}
	v := New(h, element.NewBox(math32.Vec2(10, 10), colors.Surface))
	v.Resize(math32.Vec2(100, 100))
	assert.True(t, v.NeedsRedraw())
	assert.Equal(t, 1, h.invalidates)

	v.Draw(paint.NewRecorder())
	assert.False(t, v.NeedsRedraw())

	v.Refresh()
	v.RefreshBounds(math32.B2(0, 0, 10, 10))
	assert.True(t, v.NeedsRedraw())
	assert.Equal(t, 3, h.invalidates)
}

func TestViewClickCapture(t *testing.T) {
	a, b := &clickEl{}, &clickEl{}
	v := New(nil, element.NewComposite(a, b))
	v.Resize(math32.Vec2(100, 100))
	v.Draw(paint.NewRecorder())

	assert.True(t, v.Click(events.NewMouse(events.MouseDown, events.Left, math32.Vec2(10, 25), 0)))
	// the release happens over b but must still go to a
	assert.True(t, v.Click(events.NewMouse(events.MouseUp, events.Left, math32.Vec2(10, 75), 0)))
	assert.Equal(t, 1, a.downs)
	assert.Equal(t, 1, a.ups)
	assert.Equal(t, 0, b.downs)
	assert.Equal(t, 0, b.ups)

	// a stray release with no press captured goes nowhere
	assert.False(t, v.Click(events.NewMouse(events.MouseUp, events.Left, math32.Vec2(10, 25), 0)))
}

func TestViewOverlayClickPriority(t *testing.T) {
	content := &clickEl{}
	over := &clickEl{}
	v := New(nil, content)
	v.Resize(math32.Vec2(100, 100))

	fl := element.NewFloating(math32.B2(0, 0, 50, 50), over)
	v.AddOverlay(fl)

	v.Click(events.NewMouse(events.MouseDown, events.Left, math32.Vec2(10, 10), 0))
	v.Click(events.NewMouse(events.MouseUp, events.Left, math32.Vec2(10, 10), 0))
	assert.Equal(t, 1, over.downs)
	assert.Equal(t, 1, over.ups)
	assert.Equal(t, 0, content.downs)

	// outside the overlay the content gets the click
	v.Click(events.NewMouse(events.MouseDown, events.Left, math32.Vec2(80, 80), 0))
	assert.Equal(t, 1, content.downs)

	v.RemoveOverlay(fl)
	assert.Empty(t, v.Overlays())
	v.RemoveOverlay(fl)
}

func TestViewDropTrackingStatuses(t *testing.T) {
	db1 := element.NewDropBox(element.NewBox(math32.Vec2(100, 50), colors.Surface), mimedata.TextPlain)
	db2 := element.NewDropBox(element.NewBox(math32.Vec2(100, 50), colors.Surface), mimedata.TextPlain)
	v := New(nil, element.NewComposite(db1, db2))
	v.Resize(math32.Vec2(100, 100))
	v.Draw(paint.NewRecorder())

	payload := mimedata.NewText("x")
	v.TrackDrop(events.NewDrop(math32.Vec2(10, 25), payload), events.Hovering)
	assert.True(t, db1.IsTracking())
	assert.False(t, db2.IsTracking())

	// crossing into the second target leaves the first
	v.TrackDrop(events.NewDrop(math32.Vec2(10, 75), payload), events.Hovering)
	assert.False(t, db1.IsTracking())
	assert.True(t, db2.IsTracking())

	v.TrackDrop(events.NewDrop(math32.Vec2(10, 75), payload), events.Leaving)
	assert.False(t, db2.IsTracking())
}

func TestViewDropDelivery(t *testing.T) {
	var got string
	db1 := element.NewDropBox(element.NewBox(math32.Vec2(100, 50), colors.Surface), mimedata.TextPlain)
	db2 := element.NewDropBox(element.NewBox(math32.Vec2(100, 50), colors.Surface), mimedata.TextPlain)
	db2.OnDrop = func(data mimedata.Mimes) bool {
		got = data.Text()
		return true
	}
	v := New(nil, element.NewComposite(db1, db2))
	v.Resize(math32.Vec2(100, 100))
	v.Draw(paint.NewRecorder())

	assert.True(t, v.Drop(events.NewDrop(math32.Vec2(10, 75), mimedata.NewText("payload"))))
	assert.Equal(t, "payload", got)

	// outside both targets nothing accepts
	assert.False(t, v.Drop(events.NewDrop(math32.Vec2(10, 75), mimedata.Mimes{mimedata.NewToken("application/x-other")})))
}

func TestViewDragAndDropEndToEnd(t *testing.T) {
	items := make([]element.Element, 5)
	for i := range items {
		items[i] = element.NewDraggable(element.NewBox(math32.Vec2(60, 20), colors.Indicator))
	}
	sl := element.NewSelectionList(items...)
	di := element.NewDropInserter(sl, mimedata.TextPlain)

	v := New(&testHost{}, di)
	v.Resize(math32.Vec2(100, 100))
	rec := paint.NewRecorder()
	v.Draw(rec)

	sl.UpdateSelection(3, 4)

	assert.True(t, v.Click(events.NewMouse(events.MouseDown, events.Left, math32.Vec2(10, 70), 0)))
	assert.Len(t, v.Overlays(), 1, "the drag image floats above the content")
	assert.True(t, di.IsTracking())

	v.Drag(events.NewMouseDrag(events.Left, math32.Vec2(10, 21), math32.Vec2(10, 70), 0))
	rec.Reset()
	v.Draw(rec)
	assert.Equal(t, 1, di.InsertionPos())

	assert.True(t, v.Click(events.NewMouse(events.MouseUp, events.Left, math32.Vec2(10, 21), 0)))
	assert.Empty(t, v.Overlays())
	assert.False(t, di.IsTracking())
	assert.Equal(t, []int{1, 2}, sl.GetSelection())
	assert.Same(t, items[3], sl.Child(1))
	assert.Same(t, items[4], sl.Child(2))
}
