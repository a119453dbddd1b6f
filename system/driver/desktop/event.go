// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwMods translates a glfw modifier bitmask.
func glfwMods(mods glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mods&glfw.ModShift != 0 {
		m.SetFlag(true, key.Shift)
	}
	if mods&glfw.ModControl != 0 {
		m.SetFlag(true, key.Control)
	}
	if mods&glfw.ModAlt != 0 {
		m.SetFlag(true, key.Alt)
	}
	if mods&glfw.ModSuper != 0 {
		m.SetFlag(true, key.Meta)
	}
	return m
}

// glfwButton translates a glfw mouse button.
func glfwButton(button glfw.MouseButton) events.Buttons {
	switch button {
	case glfw.MouseButtonLeft:
		return events.Left
	case glfw.MouseButtonMiddle:
		return events.Middle
	case glfw.MouseButtonRight:
		return events.Right
	}
	return events.NoButton
}

// glfwKeyCodes maps glfw keys to physical key codes.
var glfwKeyCodes = map[glfw.Key]key.Codes{
	glfw.KeyA: key.CodeA,
	glfw.KeyB: key.CodeB,
	glfw.KeyC: key.CodeC,
	glfw.KeyD: key.CodeD,
	glfw.KeyE: key.CodeE,
	glfw.KeyF: key.CodeF,
	glfw.KeyG: key.CodeG,
	glfw.KeyH: key.CodeH,
	glfw.KeyI: key.CodeI,
	glfw.KeyJ: key.CodeJ,
	glfw.KeyK: key.CodeK,
	glfw.KeyL: key.CodeL,
	glfw.KeyM: key.CodeM,
	glfw.KeyN: key.CodeN,
	glfw.KeyO: key.CodeO,
	glfw.KeyP: key.CodeP,
	glfw.KeyQ: key.CodeQ,
	glfw.KeyR: key.CodeR,
	glfw.KeyS: key.CodeS,
	glfw.KeyT: key.CodeT,
	glfw.KeyU: key.CodeU,
	glfw.KeyV: key.CodeV,
	glfw.KeyW: key.CodeW,
	glfw.KeyX: key.CodeX,
	glfw.KeyY: key.CodeY,
	glfw.KeyZ: key.CodeZ,

	glfw.Key0: key.Code0,
	glfw.Key1: key.Code1,
	glfw.Key2: key.Code2,
	glfw.Key3: key.Code3,
	glfw.Key4: key.Code4,
	glfw.Key5: key.Code5,
	glfw.Key6: key.Code6,
	glfw.Key7: key.Code7,
	glfw.Key8: key.Code8,
	glfw.Key9: key.Code9,

	glfw.KeyEnter:     key.CodeReturnEnter,
	glfw.KeyEscape:    key.CodeEscape,
	glfw.KeyBackspace: key.CodeBackspace,
	glfw.KeyDelete:    key.CodeDelete,
	glfw.KeyTab:       key.CodeTab,
	glfw.KeySpace:     key.CodeSpacebar,

	glfw.KeyRight: key.CodeRightArrow,
	glfw.KeyLeft:  key.CodeLeftArrow,
	glfw.KeyDown:  key.CodeDownArrow,
	glfw.KeyUp:    key.CodeUpArrow,

	glfw.KeyHome:     key.CodeHome,
	glfw.KeyEnd:      key.CodeEnd,
	glfw.KeyPageUp:   key.CodePageUp,
	glfw.KeyPageDown: key.CodePageDown,

	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyLeftSuper:    key.CodeLeftMeta,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyRightSuper:   key.CodeRightMeta,
}

// glfwKeyCode translates a glfw key, returning CodeUnknown for keys
// the toolkit does not handle.
func glfwKeyCode(k glfw.Key) key.Codes {
	if code, ok := glfwKeyCodes[k]; ok {
		return code
	}
	return key.CodeUnknown
}
