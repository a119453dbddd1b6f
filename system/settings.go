// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"os"
	"time"

	"github.com/emberui/ember/base/errors"
	"github.com/emberui/ember/element"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
)

// DeviceSettings are the input device parameters persisted across
// sessions, as a TOML file.
type DeviceSettings struct {
	// ScrollWheelSpeed multiplies scroll wheel deltas from the device.
	ScrollWheelSpeed float32 `toml:"scroll-wheel-speed"`

	// DoubleClickInterval is the maximum time between clicks for a
	// double click.
	DoubleClickInterval time.Duration `toml:"double-click-interval"`

	// DragStartDistance is the per-axis pointer travel, in view
	// units, past which a press-release gesture is a drag instead of
	// a click.
	DragStartDistance float32 `toml:"drag-start-distance"`
}

// TheDeviceSettings are the active device settings.
var TheDeviceSettings = &DeviceSettings{}

func init() {
	TheDeviceSettings.Defaults()
}

// Defaults sets the standard values.
func (ds *DeviceSettings) Defaults() {
	ds.ScrollWheelSpeed = 1
	ds.DoubleClickInterval = 500 * time.Millisecond
	ds.DragStartDistance = 10
}

// Apply pushes the settings into the toolkit parameters they control.
func (ds *DeviceSettings) Apply() {
	element.ClickThreshold = ds.DragStartDistance
}

// Open loads the settings from the given TOML file. Fields absent
// from the file keep their current values.
func (ds *DeviceSettings) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return errors.Log(err)
	}
	return errors.Log(toml.Unmarshal(b, ds))
}

// Save writes the settings to the given TOML file.
func (ds *DeviceSettings) Save(filename string) error {
	b, err := toml.Marshal(ds)
	if err != nil {
		return errors.Log(err)
	}
	return errors.Log(os.WriteFile(filename, b, 0666))
}

// Reset restores the defaults, field by field, preserving any values
// set through pointers others may hold.
func (ds *DeviceSettings) Reset() error {
	def := &DeviceSettings{}
	def.Defaults()
	return errors.Log(copier.Copy(ds, def))
}
