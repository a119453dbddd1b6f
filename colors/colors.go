// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color helpers and the standard toolkit palette.
package colors

import "image/color"

// Standard toolkit palette colors.
var (
	// Indicator is the base color for selection highlights, insertion
	// indicators, and drag feedback.
	Indicator = color.RGBA{R: 0x00, G: 0x78, B: 0xd7, A: 0xff}

	// IndicatorHighlight is the brighter variant of [Indicator] used
	// for tracking borders and insertion lines.
	IndicatorHighlight = color.RGBA{R: 0x41, G: 0xa9, B: 0xff, A: 0xff}

	// Label is the standard foreground color for text labels.
	Label = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}

	// Inactive is the muted foreground color for disabled content.
	Inactive = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

	// Surface is the standard popup / panel background color.
	Surface = color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
)

// ApplyOpacity returns the given color with its alpha multiplied by
// the given opacity factor, clamped to [0, 1]. The color components
// are scaled along with alpha, keeping the result alpha-premultiplied.
func ApplyOpacity(c color.RGBA, opacity float32) color.RGBA {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * opacity),
		G: uint8(float32(c.G) * opacity),
		B: uint8(float32(c.B) * opacity),
		A: uint8(float32(c.A) * opacity),
	}
}
