// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"

	"github.com/emberui/ember/math32"
)

// OpKinds is the kind of a recorded draw command.
type OpKinds int32

const (
	OpBeginPath OpKinds = iota
	OpMoveTo
	OpLineTo
	OpRect
	OpRoundRect
	OpFill
	OpStroke
)

// Op is one recorded draw command.
type Op struct {
	// Kind is the command kind.
	Kind OpKinds

	// Point is the point for MoveTo / LineTo commands.
	Point math32.Vector2

	// Box is the rectangle for Rect / RoundRect commands.
	Box math32.Box2

	// Radius is the corner radius for RoundRect commands.
	Radius float32

	// Color is the active fill or stroke color at the time of a
	// Fill or Stroke command.
	Color color.RGBA

	// LineWidth is the active line width at the time of a Stroke command.
	LineWidth float32
}

// Recorder is a [Canvas] that records draw commands instead of
// rendering them. It is used by tests and headless tools to verify
// what elements draw.
type Recorder struct {
	// Ops is the list of recorded commands, in order.
	Ops []Op

	fill   color.RGBA
	stroke color.RGBA
	width  float32
}

// NewRecorder returns a new empty [Recorder].
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset discards all recorded commands.
func (rc *Recorder) Reset() {
	rc.Ops = rc.Ops[:0]
}

func (rc *Recorder) BeginPath() {
	rc.Ops = append(rc.Ops, Op{Kind: OpBeginPath})
}

func (rc *Recorder) MoveTo(p math32.Vector2) {
	rc.Ops = append(rc.Ops, Op{Kind: OpMoveTo, Point: p})
}

func (rc *Recorder) LineTo(p math32.Vector2) {
	rc.Ops = append(rc.Ops, Op{Kind: OpLineTo, Point: p})
}

func (rc *Recorder) AddRect(b math32.Box2) {
	rc.Ops = append(rc.Ops, Op{Kind: OpRect, Box: b})
}

func (rc *Recorder) AddRoundRect(b math32.Box2, radius float32) {
	rc.Ops = append(rc.Ops, Op{Kind: OpRoundRect, Box: b, Radius: radius})
}

func (rc *Recorder) FillStyle(c color.RGBA) {
	rc.fill = c
}

func (rc *Recorder) StrokeStyle(c color.RGBA) {
	rc.stroke = c
}

func (rc *Recorder) LineWidth(w float32) {
	rc.width = w
}

func (rc *Recorder) Fill() {
	rc.Ops = append(rc.Ops, Op{Kind: OpFill, Color: rc.fill})
}

func (rc *Recorder) Stroke() {
	rc.Ops = append(rc.Ops, Op{Kind: OpStroke, Color: rc.stroke, LineWidth: rc.width})
}

// OpsOfKind returns all recorded commands of the given kind, in order.
func (rc *Recorder) OpsOfKind(kind OpKinds) []Op {
	var ops []Op
	for _, op := range rc.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}
