// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"testing"

	"github.com/emberui/ember/colors"
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/events/key"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/mimedata"
	"github.com/emberui/ember/paint"
	"github.com/stretchr/testify/assert"
)

// testView records the calls elements make back into their view.
type testView struct {
	refreshes int
	cursor    math32.Vector2
	overlays  []Overlay
	statuses  []events.TrackingStatus

	// dropSink, when set, receives forwarded TrackDrop notifications,
	// standing in for the view's fan-out to drop targets.
	dropSink func(info *events.Drop, status events.TrackingStatus)
}

func (tv *testView) Refresh()                      { tv.refreshes++ }
func (tv *testView) RefreshBounds(b math32.Box2)   { tv.refreshes++ }
func (tv *testView) CursorPos() math32.Vector2     { return tv.cursor }
func (tv *testView) AddOverlay(o Overlay)          { tv.overlays = append(tv.overlays, o) }

func (tv *testView) RemoveOverlay(o Overlay) {
	for i, have := range tv.overlays {
		if have == o {
			tv.overlays = append(tv.overlays[:i], tv.overlays[i+1:]...)
			return
		}
	}
}

func (tv *testView) TrackDrop(info *events.Drop, status events.TrackingStatus) {
	tv.statuses = append(tv.statuses, status)
	if tv.dropSink != nil {
		tv.dropSink(info, status)
	}
}

func (tv *testView) countStatus(status events.TrackingStatus) int {
	n := 0
	for _, st := range tv.statuses {
		if st == status {
			n++
		}
	}
	return n
}

// dragFixture is a laid-out drop inserter around a selection list of
// draggable rows, 20 units tall each, in a 100x100 view.
type dragFixture struct {
	tv  *testView
	rec *paint.Recorder
	di  *DropInserter
	sl  *SelectionList
	ctx *Context
}

func newDragFixture(t *testing.T, numItems int) *dragFixture {
	t.Helper()
	f := &dragFixture{tv: &testView{}, rec: paint.NewRecorder()}
	items := make([]Element, numItems)
	for i := range items {
		items[i] = NewDraggable(NewBox(math32.Vec2(60, 20), colors.Indicator))
	}
	f.sl = NewSelectionList(items...)
	f.di = NewDropInserter(f.sl, mimedata.TextPlain)
	f.ctx = NewContext(f.tv, f.rec, f.di, math32.B2(0, 0, 100, 100))
	f.di.Layout(f.ctx)
	f.tv.dropSink = func(info *events.Drop, status events.TrackingStatus) {
		f.di.TrackDrop(f.ctx, info, status)
	}
	return f
}

func (f *dragFixture) press(p math32.Vector2, mods key.Modifiers) bool {
	return f.di.Click(f.ctx, events.NewMouse(events.MouseDown, events.Left, p, mods))
}

func (f *dragFixture) release(p math32.Vector2) bool {
	return f.di.Click(f.ctx, events.NewMouse(events.MouseUp, events.Left, p, 0))
}

func (f *dragFixture) drag(p, start math32.Vector2) {
	f.di.Drag(f.ctx, events.NewMouseDrag(events.Left, p, start, 0))
}

// draw redraws the fixture with the cursor at the given position, so
// the inserter recomputes its insertion point.
func (f *dragFixture) draw(cursor math32.Vector2) {
	f.tv.cursor = cursor
	f.rec.Reset()
	f.di.Draw(f.ctx)
}

func TestDropBoxAcceptsMatchingPayloadOnly(t *testing.T) {
	tv := &testView{}
	db := NewDropBox(NewBox(math32.Vec2(50, 50), colors.Surface), mimedata.TextPlain)
	ctx := NewContext(tv, nil, db, math32.B2(0, 0, 50, 50))

	var got mimedata.Mimes
	db.OnDrop = func(data mimedata.Mimes) bool {
		got = data
		return true
	}

	bad := events.NewDrop(math32.Vec2(10, 10), mimedata.Mimes{mimedata.NewToken("application/x-other")})
	assert.False(t, db.Drop(ctx, bad))
	assert.Nil(t, got)

	good := events.NewDrop(math32.Vec2(10, 10), mimedata.NewText("hello"))
	assert.True(t, db.Drop(ctx, good))
	assert.Equal(t, "hello", got.Text())
}

func TestDropBoxIdentityToken(t *testing.T) {
	db := NewDropBox(NewBox(math32.Vec2(10, 10), colors.Surface), mimedata.TextPlain)
	other := NewDropBox(NewBox(math32.Vec2(10, 10), colors.Surface), mimedata.TextPlain)
	assert.NotEqual(t, db.ID(), other.ID())

	addressed := mimedata.Mimes{mimedata.NewToken(string(db.ID()))}
	assert.True(t, db.Matches(addressed))
	assert.False(t, other.Matches(addressed))
}

func TestDropTrackingRefreshesOnStateFlipOnly(t *testing.T) {
	tv := &testView{}
	db := NewDropBox(NewBox(math32.Vec2(50, 50), colors.Surface), mimedata.TextPlain)
	ctx := NewContext(tv, nil, db, math32.B2(0, 0, 50, 50))
	info := events.NewDrop(math32.Vec2(10, 10), mimedata.NewText("x"))

	db.TrackDrop(ctx, info, events.Entering)
	assert.True(t, db.IsTracking())
	assert.Equal(t, 1, tv.refreshes)

	for i := 0; i < 3; i++ {
		db.TrackDrop(ctx, info, events.Hovering)
	}
	assert.Equal(t, 1, tv.refreshes, "hovering with unchanged state must not repaint")

	db.TrackDrop(ctx, info, events.Leaving)
	assert.False(t, db.IsTracking())
	assert.Equal(t, 2, tv.refreshes)

	db.TrackDrop(ctx, info, events.Leaving)
	assert.Equal(t, 2, tv.refreshes)
}

func TestDropTrackingIgnoresNonMatchingPayload(t *testing.T) {
	tv := &testView{}
	db := NewDropBox(NewBox(math32.Vec2(50, 50), colors.Surface), mimedata.TextPlain)
	ctx := NewContext(tv, nil, db, math32.B2(0, 0, 50, 50))

	bad := events.NewDrop(math32.Vec2(10, 10), mimedata.Mimes{mimedata.NewToken("application/x-other")})
	db.TrackDrop(ctx, bad, events.Entering)
	assert.False(t, db.IsTracking())
	assert.Equal(t, 0, tv.refreshes)
}

func TestInsertionPointAroundMidline(t *testing.T) {
	f := newDragFixture(t, 5)
	info := events.NewDrop(math32.Vec2(10, 25), mimedata.NewText("x"))
	f.di.TrackDrop(f.ctx, info, events.Entering)

	// row 1 spans y 20..40 with its midline at 30
	f.draw(math32.Vec2(10, 25))
	assert.Equal(t, 1, f.di.InsertionPos(), "above the midline inserts before the row")

	f.draw(math32.Vec2(10, 35))
	assert.Equal(t, 2, f.di.InsertionPos(), "below the midline inserts after the row")

	f.draw(math32.Vec2(10, 30))
	assert.Equal(t, 2, f.di.InsertionPos(), "exactly on the midline inserts after the row")

	lines := f.rec.OpsOfKind(paint.OpMoveTo)
	assert.Len(t, lines, 1)
	assert.Equal(t, float32(40), lines[0].Point.Y, "indicator sits on the row boundary")
}

func TestInsertionPointEmptyList(t *testing.T) {
	f := newDragFixture(t, 0)
	assert.Equal(t, -1, f.di.InsertionPos())

	info := events.NewDrop(math32.Vec2(10, 50), mimedata.NewText("x"))
	f.di.TrackDrop(f.ctx, info, events.Entering)
	f.draw(math32.Vec2(10, 50))

	assert.Equal(t, 0, f.di.InsertionPos())
	lines := f.rec.OpsOfKind(paint.OpMoveTo)
	assert.Len(t, lines, 1)
	assert.Equal(t, float32(0), lines[0].Point.Y, "indicator sits at the top edge")
}

func TestDragMovesSelectionToInsertionPoint(t *testing.T) {
	f := newDragFixture(t, 5)
	f.sl.UpdateSelection(3, 4)

	var movedPos int
	var movedIndices, selected []int
	f.di.OnMove = func(pos int, indices []int) {
		movedPos = pos
		movedIndices = indices
	}
	f.di.OnSelect = func(indices []int, latest int) {
		selected = indices
	}

	// press on selected row 3 begins the drag
	assert.True(t, f.press(math32.Vec2(10, 70), 0))
	assert.Len(t, f.tv.overlays, 1)
	assert.Equal(t, 1, f.tv.countStatus(events.Entering))
	assert.True(t, f.di.IsTracking())

	// drag up to just below the top of row 1
	f.drag(math32.Vec2(10, 21), math32.Vec2(10, 70))
	f.draw(math32.Vec2(10, 21))
	assert.Equal(t, 1, f.di.InsertionPos())

	assert.True(t, f.release(math32.Vec2(10, 21)))
	assert.Empty(t, f.tv.overlays)
	assert.Equal(t, 1, f.tv.countStatus(events.Leaving))

	assert.Equal(t, 1, movedPos)
	assert.Equal(t, []int{3, 4}, movedIndices)
	assert.Equal(t, []int{1, 2}, f.sl.GetSelection(), "moved rows stay selected at their new position")
	assert.Equal(t, []int{1, 2}, selected, "selection change is republished")
}

func TestClickThresholdSeparatesClickFromDrag(t *testing.T) {
	f := newDragFixture(t, 5)
	f.sl.UpdateSelection(4, 4)
	item4 := f.sl.Child(4)

	// travel of exactly the threshold classifies as a click
	assert.True(t, f.press(math32.Vec2(10, 90), 0))
	f.drag(math32.Vec2(10, 80), math32.Vec2(10, 90))
	f.draw(math32.Vec2(10, 5))
	assert.Equal(t, 0, f.di.InsertionPos())
	f.release(math32.Vec2(10, 80))
	assert.Same(t, item4, f.sl.Child(4), "a click must not reorder")
	assert.Equal(t, []int{4}, f.sl.GetSelection())

	// one more unit of travel classifies as a drag
	assert.True(t, f.press(math32.Vec2(10, 90), 0))
	f.drag(math32.Vec2(10, 79), math32.Vec2(10, 90))
	f.draw(math32.Vec2(10, 5))
	assert.Equal(t, 0, f.di.InsertionPos())
	f.release(math32.Vec2(10, 79))
	assert.Same(t, item4, f.sl.Child(0), "a drag reorders to the insertion point")
	assert.Equal(t, []int{0}, f.sl.GetSelection())
}

func TestEscapeCancelsDrag(t *testing.T) {
	f := newDragFixture(t, 5)
	f.sl.UpdateSelection(2, 2)

	assert.True(t, f.press(math32.Vec2(10, 50), 0))
	f.drag(math32.Vec2(10, 25), math32.Vec2(10, 50))
	assert.Len(t, f.tv.overlays, 1)

	f.di.Key(f.ctx, events.NewKey(events.KeyDown, 0, key.CodeEscape, 0))
	assert.Empty(t, f.tv.overlays, "cancel releases the drag image")
	assert.Equal(t, 1, f.tv.countStatus(events.Leaving), "cancel notifies leaving exactly once")
	assert.False(t, f.di.IsTracking())

	// the release after a cancel is inert
	order := append([]Element{}, f.sl.Children()...)
	f.release(math32.Vec2(10, 25))
	assert.Equal(t, order, f.sl.Children())
	assert.Equal(t, 1, f.tv.countStatus(events.Leaving))
}

func TestBackspaceErasesSelection(t *testing.T) {
	f := newDragFixture(t, 5)
	f.sl.UpdateSelection(1, 2)

	var erased []int
	onSelectCalls := 0
	f.di.OnErase = func(indices []int) { erased = indices }
	f.di.OnSelect = func(indices []int, latest int) { onSelectCalls++ }

	assert.True(t, f.di.Key(f.ctx, events.NewKey(events.KeyDown, 0, key.CodeBackspace, 0)))
	assert.Equal(t, []int{1, 2}, erased)
	assert.Equal(t, 3, f.sl.ChildCount())
	assert.Empty(t, f.sl.GetSelection())
	assert.Equal(t, 0, onSelectCalls, "an empty selection is not republished")
}

func TestModifiersDeclineDragAndExtendSelection(t *testing.T) {
	f := newDragFixture(t, 5)

	f.press(math32.Vec2(10, 30), 0)
	f.release(math32.Vec2(10, 30))
	assert.Equal(t, []int{1}, f.sl.GetSelection())

	// a shift-press on a selected row must extend, not start a drag
	f.press(math32.Vec2(10, 70), key.Shift)
	assert.Empty(t, f.tv.overlays)
	assert.Equal(t, []int{1, 2, 3}, f.sl.GetSelection())
	f.release(math32.Vec2(10, 70))

	f.press(math32.Vec2(10, 10), key.Action())
	assert.Equal(t, []int{0, 1, 2, 3}, f.sl.GetSelection())
	f.release(math32.Vec2(10, 10))

	f.press(math32.Vec2(10, 10), key.Action())
	assert.Equal(t, []int{1, 2, 3}, f.sl.GetSelection(), "action-click toggles one row")
}

func TestExternalDropInsertsAtComputedPosition(t *testing.T) {
	f := newDragFixture(t, 5)

	var gotPos int
	var gotText string
	f.di.OnDrop = func(data mimedata.Mimes, pos int) bool {
		gotPos = pos
		gotText = data.Text()
		return true
	}

	info := events.NewDrop(math32.Vec2(10, 45), mimedata.NewText("dropped"))
	f.di.TrackDrop(f.ctx, info, events.Entering)
	f.draw(math32.Vec2(10, 45))

	assert.True(t, f.di.Drop(f.ctx, info))
	assert.Equal(t, 2, gotPos)
	assert.Equal(t, "dropped", gotText)
	assert.False(t, f.di.IsTracking())
	assert.Equal(t, -1, f.di.InsertionPos())
}

func TestDropWithoutInsertionPointIsIgnored(t *testing.T) {
	f := newDragFixture(t, 5)
	called := false
	f.di.OnDrop = func(data mimedata.Mimes, pos int) bool {
		called = true
		return true
	}
	info := events.NewDrop(math32.Vec2(10, 45), mimedata.NewText("x"))
	assert.False(t, f.di.Drop(f.ctx, info))
	assert.False(t, called)
}
