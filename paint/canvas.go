// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the canvas drawing interface consumed by
// elements. Concrete rendering backends implement [Canvas]; the
// package also provides [Recorder], a canvas that records draw
// commands for testing and headless use.
package paint

import (
	"image/color"

	"github.com/emberui/ember/math32"
)

// Canvas is the path-based drawing surface that elements draw onto.
// Implementations are provided by rendering backends; this layer only
// consumes the interface.
type Canvas interface {
	// BeginPath starts a new path, discarding any current path.
	BeginPath()

	// MoveTo starts a new subpath at the given point.
	MoveTo(p math32.Vector2)

	// LineTo adds a line from the current point to the given point.
	LineTo(p math32.Vector2)

	// AddRect adds the given rectangle to the current path.
	AddRect(b math32.Box2)

	// AddRoundRect adds the given rectangle with rounded corners of
	// the given radius to the current path.
	AddRoundRect(b math32.Box2, radius float32)

	// FillStyle sets the color used by subsequent Fill calls.
	FillStyle(c color.RGBA)

	// StrokeStyle sets the color used by subsequent Stroke calls.
	StrokeStyle(c color.RGBA)

	// LineWidth sets the width used by subsequent Stroke calls.
	LineWidth(w float32)

	// Fill fills the current path.
	Fill()

	// Stroke strokes the current path.
	Stroke()
}
