// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the desktop platform driver on top of
// glfw: window creation, input event translation into the toolkit
// event types, and the main event loop.
package desktop

import (
	"runtime"

	"github.com/emberui/ember/base/errors"
	"github.com/emberui/ember/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw must stay on the thread that calls glfw.Init
	runtime.LockOSThread()
}

// TheApp is the single desktop app instance.
var TheApp = &App{}

// App is the desktop implementation of [system.App].
type App struct {
	windows []*Window
	quit    bool
}

// Init initializes the underlying platform layer. It must be called
// on the main goroutine before any window is created.
func (a *App) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Log(err)
	}
	system.TheDeviceSettings.Apply()
	return nil
}

func (a *App) Platform() system.Platforms {
	return system.Platform()
}

// MainLoop runs the event loop until Quit is called or the last
// window closes. It must be called on the main goroutine.
func (a *App) MainLoop() {
	for !a.quit && len(a.windows) > 0 {
		glfw.WaitEventsTimeout(0.1)
		live := a.windows[:0]
		for _, w := range a.windows {
			w.drain()
			if w.Glw.ShouldClose() {
				w.destroy()
				continue
			}
			w.paintIfNeeded()
			live = append(live, w)
		}
		a.windows = live
	}
	glfw.Terminate()
}

// Quit ends the event loop after the current iteration.
func (a *App) Quit() {
	a.quit = true
	glfw.PostEmptyEvent()
}
