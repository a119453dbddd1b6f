// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles defines the styling parameters shared by all elements,
// including the active theme.
package styles

import (
	"image/color"

	"github.com/emberui/ember/colors"
)

// Theme holds the styling parameters consulted by elements at draw time.
type Theme struct {
	// IndicatorColor is the fill color for selection highlights and
	// drag-image boxes.
	IndicatorColor color.RGBA

	// IndicatorHighlightColor is the stroke color for drop-tracking
	// borders and insertion-line indicators.
	IndicatorHighlightColor color.RGBA

	// LabelFontColor is the foreground color for label text.
	LabelFontColor color.RGBA

	// InactiveFontColor is the muted foreground color used when
	// drawing disabled content.
	InactiveFontColor color.RGBA

	// PanelColor is the background color for popups and panels.
	PanelColor color.RGBA

	// IndicatorLineWidth is the stroke width for indicator lines
	// and tracking borders.
	IndicatorLineWidth float32
}

// TheTheme is the active theme consulted by elements at draw time.
var TheTheme = &Theme{
	IndicatorColor:          colors.Indicator,
	IndicatorHighlightColor: colors.IndicatorHighlight,
	LabelFontColor:          colors.Label,
	InactiveFontColor:       colors.Inactive,
	PanelColor:              colors.Surface,
	IndicatorLineWidth:      2,
}

// Scope temporarily sets the given theme field (or any other styling
// variable) to the given value, returning a restore function. The
// returned function must be deferred so the override is undone on
// every exit path from the drawing code that applied it:
//
//	defer styles.Scope(&styles.TheTheme.LabelFontColor, styles.TheTheme.InactiveFontColor)()
func Scope[T any](field *T, value T) func() {
	old := *field
	*field = value
	return func() {
		*field = old
	}
}
