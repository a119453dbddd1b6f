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
	"github.com/emberui/ember/paint"
	"github.com/stretchr/testify/assert"
)

// menuFixture is a laid-out popup button with a three item menu.
type menuFixture struct {
	tv      *testView
	pb      *PopupButton
	ctx     *Context
	clicked []int
}

func newMenuFixture(t *testing.T) *menuFixture {
	t.Helper()
	f := &menuFixture{tv: &testView{}}
	items := make([]Element, 3)
	for i := range items {
		i := i
		items[i] = NewMenuItem(NewBox(math32.Vec2(80, 20), colors.Surface), func() {
			f.clicked = append(f.clicked, i)
		})
	}
	f.pb = NewPopupButton(NewBox(math32.Vec2(60, 20), colors.Surface), NewComposite(items...))
	f.ctx = NewContext(f.tv, paint.NewRecorder(), f.pb, math32.B2(0, 0, 60, 20))
	f.pb.Layout(f.ctx)
	return f
}

func (f *menuFixture) press(p math32.Vector2) bool {
	return f.pb.Click(f.ctx, events.NewMouse(events.MouseDown, events.Left, p, 0))
}

func (f *menuFixture) release(p math32.Vector2) bool {
	return f.pb.Click(f.ctx, events.NewMouse(events.MouseUp, events.Left, p, 0))
}

func TestPopupButtonLayout(t *testing.T) {
	f := newMenuFixture(t)
	b := f.pb.Popup().Bounds()
	assert.Equal(t, float32(3), b.Min.X)
	assert.Equal(t, float32(20), b.Min.Y, "the menu hangs below the button")
	assert.Equal(t, float32(83), b.Max.X, "the menu takes its minimum width")
	assert.Equal(t, FullExtent, b.Max.Y)
}

func TestPopupButtonOpensOnPress(t *testing.T) {
	f := newMenuFixture(t)
	assert.False(t, f.pb.Popup().IsOpen())

	assert.True(t, f.press(math32.Vec2(10, 10)))
	assert.True(t, f.pb.Popup().IsOpen())
	assert.Len(t, f.tv.overlays, 1)

	// a second press while open does not toggle
	assert.True(t, f.press(math32.Vec2(10, 10)))
	assert.True(t, f.pb.Popup().IsOpen())
	assert.Len(t, f.tv.overlays, 1)
}

func TestPopupReleaseOverItemActivatesIt(t *testing.T) {
	f := newMenuFixture(t)
	f.press(math32.Vec2(10, 10))

	// items stack below the button: item 1 spans y 40..60
	assert.True(t, f.release(math32.Vec2(10, 45)))
	assert.Equal(t, []int{1}, f.clicked)
	assert.False(t, f.pb.Popup().IsOpen(), "activating an item closes the menu")
	assert.Empty(t, f.tv.overlays)
}

func TestPopupReleaseOverButtonKeepsMenuOpen(t *testing.T) {
	f := newMenuFixture(t)
	f.press(math32.Vec2(10, 10))

	assert.True(t, f.release(math32.Vec2(10, 10)))
	assert.True(t, f.pb.Popup().IsOpen())
	assert.Empty(t, f.clicked)
}

func TestPopupReleaseOutsideDismisses(t *testing.T) {
	f := newMenuFixture(t)
	f.press(math32.Vec2(10, 10))

	// inside the popup's column but below the items
	assert.True(t, f.release(math32.Vec2(10, 200)))
	assert.False(t, f.pb.Popup().IsOpen())
	assert.Empty(t, f.clicked)
	assert.Empty(t, f.tv.overlays)
}

func TestPopupEscapeCloses(t *testing.T) {
	f := newMenuFixture(t)
	f.press(math32.Vec2(10, 10))
	assert.True(t, f.pb.Popup().IsOpen())

	esc := events.NewKey(events.KeyDown, 0, key.CodeEscape, 0)
	assert.True(t, f.pb.Key(f.ctx, esc))
	assert.False(t, f.pb.Popup().IsOpen())
	assert.Empty(t, f.tv.overlays)

	other := events.NewKey(events.KeyDown, 'a', key.CodeA, 0)
	assert.False(t, f.pb.Key(f.ctx, other))
}

func TestMenuItemHoverHighlight(t *testing.T) {
	tv := &testView{}
	rec := paint.NewRecorder()
	mi := NewMenuItem(NewBox(math32.Vec2(80, 20), colors.Surface), nil)
	ctx := NewContext(tv, rec, mi, math32.B2(0, 0, 80, 20))

	tv.cursor = math32.Vec2(40, 10)
	mi.Draw(ctx)
	assert.Len(t, rec.OpsOfKind(paint.OpRoundRect), 1, "hovered item draws a highlight")

	rec.Reset()
	tv.cursor = math32.Vec2(200, 200)
	mi.Draw(ctx)
	assert.Empty(t, rec.OpsOfKind(paint.OpRoundRect))
}

func TestMenuItemCursorRefresh(t *testing.T) {
	tv := &testView{}
	mi := NewMenuItem(NewBox(math32.Vec2(80, 20), colors.Surface), nil)
	ctx := NewContext(tv, nil, mi, math32.B2(0, 0, 80, 20))

	assert.True(t, mi.Cursor(ctx, math32.Vec2(10, 10), events.Hovering))
	assert.Equal(t, 1, tv.refreshes)

	// motion far away with no leaving status does not repaint
	assert.False(t, mi.Cursor(ctx, math32.Vec2(200, 200), events.Hovering))
	assert.Equal(t, 1, tv.refreshes)

	assert.False(t, mi.Cursor(ctx, math32.Vec2(200, 200), events.Leaving))
	assert.Equal(t, 2, tv.refreshes)
}
