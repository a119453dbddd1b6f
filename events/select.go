// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"github.com/emberui/ember/events/key"
)

// SelectModes interprets the modifier keys to determine what type of
// selection mode to use. It also has modes not directly activated by
// modifier keys, used programmatically.
type SelectModes int32

const (
	// SelectOne selects a single item, and is the default when no
	// modifier key is pressed.
	SelectOne SelectModes = iota

	// ExtendContinuous, activated by the Shift key, extends the
	// selection to a continuous region of selected items, with no gaps.
	ExtendContinuous

	// ExtendOne, activated by the platform action modifier
	// (Command on macOS, Control elsewhere), toggles one additional
	// item, creating a potentially discontinuous set of selected items.
	ExtendOne

	// NoSelect means do not update selection; this is used
	// programmatically and not available via modifier key.
	NoSelect

	// SelectQuiet means select without signaling, for bulk updates
	// with a final update at the end; used programmatically.
	SelectQuiet
)

// SelectModeBits returns the selection mode based on the given modifiers.
func SelectModeBits(mods key.Modifiers) SelectModes {
	if mods.HasAny(key.Shift) {
		return ExtendContinuous
	}
	if mods.HasAny(key.Action()) {
		return ExtendOne
	}
	return SelectOne
}
