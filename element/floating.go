// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/emberui/ember/colors"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/styles"
)

// Floating positions its subject at its own bounds, independent of
// the surrounding layout. Floating elements live in the view's
// overlay stack, above the content.
type Floating struct {
	Proxy
	bounds math32.Box2
}

// NewFloating returns a floating element wrapping the given subject
// at the given bounds.
func NewFloating(bounds math32.Box2, subject Element) *Floating {
	f := &Floating{bounds: bounds}
	f.SetSubject(subject)
	return f
}

// Bounds returns the floating bounds.
func (f *Floating) Bounds() math32.Box2 { return f.bounds }

// SetBounds repositions the floating element.
func (f *Floating) SetBounds(b math32.Box2) { f.bounds = b }

const (
	dragImageOffset = 10
	maxDragBoxes    = 20
)

// dragImage draws a stack of translucent boxes behind its subject,
// one per dragged item, each offset down-right from the previous
// with decaying opacity.
type dragImage struct {
	Proxy
	numBoxes int
}

func newDragImage(subject Element, numBoxes int) *dragImage {
	di := &dragImage{numBoxes: numBoxes}
	di.SetSubject(subject)
	return di
}

func (di *dragImage) Limits(ctx *Context) Limits {
	r := di.Subject().Limits(di.SubjectContext(ctx))
	off := float32(dragImageOffset * di.numBoxes)
	r.Min.X = 32
	r.Max.X = math32.Min(r.Max.X+off, FullExtent)
	r.Min.Y += off
	r.Max.Y = math32.Min(r.Max.Y+off, FullExtent)
	return r
}

// subjectBounds shrinks the drag-image bounds back to the subject's
// own footprint, leaving room for the box stack.
func (di *dragImage) subjectBounds(b math32.Box2) math32.Box2 {
	off := float32(dragImageOffset * di.numBoxes)
	b.Max.X -= off
	b.Max.Y -= off
	return b
}

func (di *dragImage) Draw(ctx *Context) {
	cv := ctx.Canvas
	bounds := di.subjectBounds(ctx.Bounds).Inset(-8, -2)
	opacity := float32(0.6)
	for i := 0; i < di.numBoxes; i++ {
		cv.BeginPath()
		cv.AddRoundRect(bounds, 4)
		cv.FillStyle(colors.ApplyOpacity(styles.TheTheme.IndicatorColor, opacity))
		cv.Fill()
		opacity *= 0.6
		bounds = bounds.Translate(math32.Vec2(dragImageOffset, dragImageOffset))
	}
	sctx := ctx.SubContext(di.Subject(), di.subjectBounds(ctx.Bounds))
	di.Subject().Draw(sctx)
}

func (di *dragImage) Layout(ctx *Context) {
	di.Subject().Layout(ctx.SubContext(di.Subject(), di.subjectBounds(ctx.Bounds)))
}
