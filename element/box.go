// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"image/color"

	"github.com/emberui/ember/math32"
)

// Box is a fixed-minimum-size colored rectangle, the basic leaf
// element used for item faces and panels.
type Box struct {
	Base

	// Color fills the box. A zero alpha draws nothing.
	Color color.RGBA

	// MinSize is the minimum size of the box.
	MinSize math32.Vector2
}

// NewBox returns a box with the given minimum size and fill color.
func NewBox(minSize math32.Vector2, clr color.RGBA) *Box {
	return &Box{Color: clr, MinSize: minSize}
}

func (bx *Box) Limits(ctx *Context) Limits {
	return Limits{Min: bx.MinSize, Max: math32.Vec2(FullExtent, bx.MinSize.Y)}
}

func (bx *Box) Draw(ctx *Context) {
	if bx.Color.A == 0 {
		return
	}
	cv := ctx.Canvas
	cv.BeginPath()
	cv.AddRect(ctx.Bounds)
	cv.FillStyle(bx.Color)
	cv.Fill()
}

func (bx *Box) HitTest(ctx *Context, p math32.Vector2) Element {
	if ctx.Bounds.ContainsPoint(p) {
		return bx
	}
	return nil
}
