// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/emberui/ember/colors"
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/events/key"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/styles"
	"github.com/emberui/ember/styles/abilities"
)

// Popup is a floating menu panel: it lives in the overlay stack
// while open and reports any handled click inside it to the callback
// registered at open time, so the owning button can dismiss it.
type Popup struct {
	Floating
	onClick func()
	open    bool
}

// NewPopup returns a popup around the given menu content.
func NewPopup(content Element) *Popup {
	pu := &Popup{}
	pu.SetSubject(content)
	return pu
}

// IsOpen returns whether the popup is in the overlay stack.
func (pu *Popup) IsOpen() bool { return pu.open }

// Open adds the popup to the view's overlays. onClick is invoked
// after any handled click inside the popup.
func (pu *Popup) Open(v View, onClick func()) {
	if pu.open {
		return
	}
	pu.onClick = onClick
	pu.open = true
	v.AddOverlay(pu)
}

// Close removes the popup from the view's overlays.
func (pu *Popup) Close(v View) {
	if !pu.open {
		return
	}
	pu.open = false
	pu.onClick = nil
	v.RemoveOverlay(pu)
}

// Draw fills the panel background behind the menu content.
func (pu *Popup) Draw(ctx *Context) {
	cv := ctx.Canvas
	cv.BeginPath()
	cv.AddRoundRect(pu.contentBounds(ctx), 4)
	cv.FillStyle(styles.TheTheme.PanelColor)
	cv.Fill()
	pu.Floating.Draw(ctx)
}

// contentBounds trims the open-ended popup bounds to the content's
// minimum height.
func (pu *Popup) contentBounds(ctx *Context) math32.Box2 {
	b := ctx.Bounds
	h := pu.Subject().Limits(pu.SubjectContext(ctx)).Min.Y
	b.Max.Y = math32.Min(b.Max.Y, b.Min.Y+h)
	return b
}

// Click routes a click into the menu content, then fires the open
// callback: any click delivered to an open menu dismisses it, with
// or without activating an item.
func (pu *Popup) Click(ctx *Context, e *events.Mouse) bool {
	r := pu.Floating.Click(ctx, e)
	if pu.onClick != nil {
		pu.onClick()
	}
	return r
}

// PopupButton opens a popup menu below itself. A press opens the
// menu; releasing over an item, or a later click on one, activates
// it and closes the menu. A release or click outside both the button
// and the items dismisses the menu, and escape always closes it.
type PopupButton struct {
	Proxy
	popup *Popup
}

// NewPopupButton returns a popup button with the given face and menu
// content.
func NewPopupButton(face, menu Element) *PopupButton {
	pb := &PopupButton{popup: NewPopup(menu)}
	pb.SetSubject(face)
	pb.SetAbilities(true, abilities.Clickable, abilities.Focusable)
	return pb
}

// Popup returns the button's popup.
func (pb *PopupButton) Popup() *Popup { return pb.popup }

// Layout positions the popup just below the button, slightly
// indented, at the menu's minimum width and open-ended height.
func (pb *PopupButton) Layout(ctx *Context) {
	pb.Proxy.Layout(ctx)
	pl := pb.popup.Limits(ctx.SubContext(pb.popup, ctx.Bounds))
	bounds := math32.B2(
		ctx.Bounds.Min.X+3, ctx.Bounds.Max.Y,
		ctx.Bounds.Min.X+3+pl.Min.X, FullExtent,
	)
	pb.popup.SetBounds(bounds)
	pb.popup.Layout(ctx.SubContext(pb.popup, bounds))
}

func (pb *PopupButton) Click(ctx *Context, e *events.Mouse) bool {
	if e.IsDown() {
		if !pb.popup.IsOpen() {
			v := ctx.View
			pb.popup.Open(v, func() {
				pb.popup.Close(v)
				v.Refresh()
			})
			v.Refresh()
		}
		return true
	}
	if !pb.popup.IsOpen() || !ctx.Bounds.ContainsPoint(e.Where) {
		// simulate a menu click at the release position
		se := events.NewMouse(events.MouseDown, e.Button, e.Where, e.Mods)
		pctx := NewContext(ctx.View, ctx.Canvas, pb.popup, pb.popup.Bounds())
		pb.popup.Click(pctx, se)
	}
	return true
}

func (pb *PopupButton) Drag(ctx *Context, e *events.Mouse) {
	ctx.View.Refresh()
}

func (pb *PopupButton) Key(ctx *Context, e *events.Key) bool {
	if e.Typ == events.KeyDown && e.Code == key.CodeEscape {
		pb.popup.Close(ctx.View)
		ctx.View.Refresh()
		return true
	}
	return false
}

func (pb *PopupButton) HitTest(ctx *Context, p math32.Vector2) Element {
	if ctx.Bounds.ContainsPoint(p) {
		return pb
	}
	return nil
}

func (pb *PopupButton) WantsFocus() bool { return true }

// MenuItem is a single activatable row in a popup menu, highlighted
// while the cursor is over it.
type MenuItem struct {
	Proxy

	// OnClick is invoked when the item is activated.
	OnClick func()
}

// NewMenuItem returns a menu item wrapping the given content.
func NewMenuItem(content Element, onClick func()) *MenuItem {
	mi := &MenuItem{OnClick: onClick}
	mi.SetSubject(content)
	mi.SetAbilities(true, abilities.Clickable, abilities.Activatable)
	return mi
}

// Draw highlights the item when the live cursor is over it, then
// draws the content.
func (mi *MenuItem) Draw(ctx *Context) {
	if ctx.Bounds.ContainsPoint(ctx.CursorPos()) {
		cv := ctx.Canvas
		cv.BeginPath()
		cv.AddRoundRect(ctx.Bounds, 2)
		cv.FillStyle(colors.ApplyOpacity(styles.TheTheme.IndicatorColor, 0.6))
		cv.Fill()
	}
	mi.Proxy.Draw(ctx)
}

func (mi *MenuItem) HitTest(ctx *Context, p math32.Vector2) Element {
	if ctx.Bounds.ContainsPoint(p) {
		return mi
	}
	return nil
}

func (mi *MenuItem) Click(ctx *Context, e *events.Mouse) bool {
	if mi.OnClick != nil {
		mi.OnClick()
	}
	mi.Proxy.Click(ctx, e)
	return true
}

func (mi *MenuItem) Cursor(ctx *Context, p math32.Vector2, status events.TrackingStatus) bool {
	hit := ctx.Bounds.ContainsPoint(p)
	if status == events.Leaving || hit {
		ctx.View.RefreshBounds(ctx.Bounds)
	}
	mi.Proxy.Cursor(ctx, p, status)
	return hit
}

func (mi *MenuItem) WantsControl() bool { return true }
