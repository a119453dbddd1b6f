// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/events/key"
	"github.com/emberui/ember/math32"
)

// ClickThreshold is the maximum per-axis pointer travel, in view
// units, for a press-release gesture to classify as a click instead
// of a drag. Travel of exactly this amount still counts as a click.
var ClickThreshold float32 = 10

// TrackerInfo carries the state of an in-progress pointer gesture
// through the tracking protocol.
type TrackerInfo struct {
	// Start is the position of the initial button press.
	Start math32.Vector2

	// Current is the latest pointer position.
	Current math32.Vector2

	// Previous is the pointer position before the latest update.
	Previous math32.Vector2

	// Mods are the modifier keys held at the latest update.
	Mods key.Modifiers

	// Processed reports whether the element consumed the latest
	// tracking callback. Each callback must set it.
	Processed bool
}

// Distance returns the total pointer travel since the press.
func (ti *TrackerInfo) Distance() math32.Vector2 {
	return ti.Current.Sub(ti.Start)
}

// IsClick reports whether the gesture has stayed within
// [ClickThreshold] on both axes.
func (ti *TrackerInfo) IsClick() bool {
	d := ti.Distance().Abs()
	return d.X <= ClickThreshold && d.Y <= ClickThreshold
}

// HasModifiers reports whether any selection-altering modifier is
// held. Elements decline gesture tracking when one is, deferring to
// selection extension.
func (ti *TrackerInfo) HasModifiers() bool {
	return ti.Mods.HasAny(key.Shift, key.Action())
}

// Trackable is the tracking protocol: a button press begins a
// gesture, held-button motion continues it, and release ends it.
// Each callback reports consumption through TrackerInfo.Processed.
type Trackable interface {
	BeginTracking(ctx *Context, ti *TrackerInfo)
	KeepTracking(ctx *Context, ti *TrackerInfo)
	EndTracking(ctx *Context, ti *TrackerInfo)
}

// Tracker drives the tracking protocol from raw click and drag
// events. Elements embed it and implement [Trackable]; their Click
// and Drag methods delegate to TrackClick and TrackDrag.
type Tracker struct {
	Info     TrackerInfo
	tracking bool
}

// IsTracking reports whether a gesture is in progress.
func (tr *Tracker) IsTracking() bool { return tr.tracking }

// TrackClick handles a button press or release for the given
// trackable, returning whether it was consumed. A release with no
// gesture in progress is ignored.
func (tr *Tracker) TrackClick(ctx *Context, e *events.Mouse, t Trackable) bool {
	if e.IsDown() {
		tr.tracking = true
		tr.Info = TrackerInfo{Start: e.Where, Current: e.Where, Previous: e.Where, Mods: e.Mods}
		t.BeginTracking(ctx, &tr.Info)
		return tr.Info.Processed
	}
	if !tr.tracking {
		return false
	}
	tr.advance(e)
	tr.tracking = false
	t.EndTracking(ctx, &tr.Info)
	return tr.Info.Processed
}

// TrackDrag handles held-button motion for the given trackable,
// returning whether it was consumed. Motion with no gesture in
// progress is ignored.
func (tr *Tracker) TrackDrag(ctx *Context, e *events.Mouse, t Trackable) bool {
	if !tr.tracking {
		return false
	}
	tr.advance(e)
	t.KeepTracking(ctx, &tr.Info)
	return tr.Info.Processed
}

// CancelTracking abandons the gesture in progress, if any, without
// classifying it.
func (tr *Tracker) CancelTracking() { tr.tracking = false }

func (tr *Tracker) advance(e *events.Mouse) {
	tr.Info.Previous = tr.Info.Current
	tr.Info.Current = e.Where
	tr.Info.Mods = e.Mods
}
