// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system defines the platform abstraction consumed by the
// toolkit: the application interface implemented by the platform
// drivers, the platform enum, and persisted device settings.
package system

import "runtime"

// Platforms is the supported platform type.
type Platforms int32

const (
	// MacOS is the macOS platform.
	MacOS Platforms = iota

	// Linux is the Linux platform.
	Linux

	// Windows is the Windows platform.
	Windows
)

func (p Platforms) String() string {
	switch p {
	case MacOS:
		return "MacOS"
	case Linux:
		return "Linux"
	case Windows:
		return "Windows"
	}
	return "Unknown"
}

// Platform returns the platform the process is running on.
func Platform() Platforms {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	default:
		return Linux
	}
}

// App is the interface implemented by platform drivers.
type App interface {
	// Platform returns the platform the app is running on.
	Platform() Platforms

	// MainLoop runs the app's event loop. It must be called from the
	// main goroutine and does not return until the app quits.
	MainLoop()

	// Quit ends the event loop, closing all windows.
	Quit()
}
