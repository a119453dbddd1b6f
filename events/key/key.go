// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines keyboard modifiers and physical key codes
// for the event system.
package key

import (
	"runtime"
	"strings"
)

// Modifiers are bitflags for the active modifier keys on an input event.
type Modifiers int64

const (
	// Shift is the shift key.
	Shift Modifiers = 1 << iota

	// Control is the control key.
	Control

	// Alt is the alt / option key.
	Alt

	// Meta is the system meta key: command on macOS, windows key elsewhere.
	Meta
)

// HasFlag returns whether all the given modifier flags are set.
func (mo Modifiers) HasFlag(f Modifiers) bool {
	return mo&f == f
}

// HasAny returns whether any of the given modifier flags are set.
func (mo Modifiers) HasAny(flags ...Modifiers) bool {
	for _, f := range flags {
		if mo&f != 0 {
			return true
		}
	}
	return false
}

// SetFlag sets the given modifier flags to the given state.
func (mo *Modifiers) SetFlag(on bool, flags ...Modifiers) {
	for _, f := range flags {
		if on {
			*mo |= f
		} else {
			*mo &^= f
		}
	}
}

// ModifiersString returns a + separated list of the active modifiers.
func (mo Modifiers) ModifiersString() string {
	ms := []string{}
	if mo.HasFlag(Shift) {
		ms = append(ms, "Shift")
	}
	if mo.HasFlag(Control) {
		ms = append(ms, "Control")
	}
	if mo.HasFlag(Alt) {
		ms = append(ms, "Alt")
	}
	if mo.HasFlag(Meta) {
		ms = append(ms, "Meta")
	}
	return strings.Join(ms, "+")
}

// Action returns the platform "action" modifier used for extending
// selections and similar chords: [Meta] (command) on macOS and
// [Control] everywhere else.
func Action() Modifiers {
	if runtime.GOOS == "darwin" {
		return Meta
	}
	return Control
}

// Codes is the identity of a physical key relative to a notional
// "standard" keyboard, independent of current layout.
type Codes uint32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeReturnEnter
	CodeEscape
	CodeBackspace
	CodeDelete
	CodeTab
	CodeSpacebar

	CodeRightArrow
	CodeLeftArrow
	CodeDownArrow
	CodeUpArrow

	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	CodeLeftControl
	CodeLeftShift
	CodeLeftAlt
	CodeLeftMeta
	CodeRightControl
	CodeRightShift
	CodeRightAlt
	CodeRightMeta
)

// IsModifier returns whether the code is one of the modifier keys.
func (c Codes) IsModifier() bool {
	return c >= CodeLeftControl && c <= CodeRightMeta
}
