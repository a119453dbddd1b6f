// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"time"

	"github.com/emberui/ember/element"
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/mimedata"
	"github.com/emberui/ember/paint"
	"github.com/emberui/ember/system"
	"github.com/emberui/ember/view"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is one desktop window hosting a [view.View]. Driver
// callbacks push translated events onto the queue; the app's main
// loop drains them into the view.
type Window struct {
	// Glw is the underlying platform window.
	Glw *glfw.Window

	// View hosts the window's element tree.
	View *view.View

	// Queue buffers translated events between the platform callbacks
	// and dispatch.
	Queue events.Queue

	// Canvas, when set, receives the view's drawing on each paint.
	Canvas paint.Canvas

	// OnPaint, when set, runs instead of the default draw-to-Canvas
	// paint step, for apps driving their own render backend.
	OnPaint func(v *view.View)

	// DevicePixelRatio converts window coordinates to view units.
	DevicePixelRatio float32

	lastCursor   math32.Vector2
	buttonDown   events.Buttons
	lastPress    time.Time
	lastPressPos math32.Vector2
	needsPaint   bool
}

// NewWindow creates a desktop window of the given size hosting the
// given content, and registers it with [TheApp].
func NewWindow(title string, width, height int, content element.Element) (*Window, error) {
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glw, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	w := &Window{Glw: glw, DevicePixelRatio: 1}
	if TheApp.Platform() == system.MacOS {
		xs, _ := glw.GetContentScale()
		if xs > 0 {
			w.DevicePixelRatio = xs
		}
	}
	w.View = view.New(w, content)
	w.View.Resize(w.viewSize())

	glw.SetKeyCallback(w.keyEvent)
	glw.SetCharCallback(w.charEvent)
	glw.SetMouseButtonCallback(w.mouseButtonEvent)
	glw.SetScrollCallback(w.scrollEvent)
	glw.SetCursorPosCallback(w.cursorPosEvent)
	glw.SetDropCallback(w.dropEvent)
	glw.SetSizeCallback(w.sizeEvent)
	glw.SetRefreshCallback(w.refreshEvent)
	glw.SetFocusCallback(w.focusEvent)
	glw.SetCloseCallback(w.closeEvent)

	TheApp.windows = append(TheApp.windows, w)
	return w, nil
}

// Invalidate implements [view.Host].
func (w *Window) Invalidate() {
	w.needsPaint = true
	glfw.PostEmptyEvent()
}

func (w *Window) viewSize() math32.Vector2 {
	width, height := w.Glw.GetSize()
	return math32.Vec2(float32(width), float32(height)).MulScalar(w.DevicePixelRatio)
}

// curPos returns the given window position in view units.
func (w *Window) curPos(x, y float64) math32.Vector2 {
	return math32.Vec2(float32(x), float32(y)).MulScalar(w.DevicePixelRatio)
}

func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	typ := events.KeyDown
	if action == glfw.Release {
		typ = events.KeyUp
	}
	w.Queue.Send(events.NewKey(typ, 0, glfwKeyCode(ky), glfwMods(mods)))
}

func (w *Window) charEvent(gw *glfw.Window, char rune) {
	w.Queue.Send(events.NewText(char, 0))
}

func (w *Window) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	typ := events.MouseDown
	but := glfwButton(button)
	if action == glfw.Release {
		typ = events.MouseUp
		w.buttonDown = events.NoButton
	} else {
		w.buttonDown = but
	}
	ev := events.NewMouse(typ, but, w.lastCursor, glfwMods(mods))
	if typ == events.MouseDown {
		d := w.lastCursor.Sub(w.lastPressPos).Abs()
		th := element.ClickThreshold
		if ev.Time.Sub(w.lastPress) <= system.TheDeviceSettings.DoubleClickInterval &&
			d.X <= th && d.Y <= th {
			ev.Clicks = 2
		}
		w.lastPress = ev.Time
		w.lastPressPos = w.lastCursor
	}
	w.Queue.Send(ev)
}

func (w *Window) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	speed := system.TheDeviceSettings.ScrollWheelSpeed
	delta := math32.Vec2(float32(xoff), float32(yoff)).MulScalar(speed)
	w.Queue.Send(events.NewScroll(w.lastCursor, delta, 0))
}

func (w *Window) cursorPosEvent(gw *glfw.Window, x, y float64) {
	pos := w.curPos(x, y)
	if w.buttonDown != events.NoButton {
		w.Queue.Send(events.NewMouseDrag(w.buttonDown, pos, w.lastCursor, 0))
	} else {
		w.Queue.Send(events.NewMouse(events.MouseMove, events.NoButton, pos, 0))
	}
	w.lastCursor = pos
}

func (w *Window) dropEvent(gw *glfw.Window, names []string) {
	data := mimedata.NewMimes(0, len(names))
	for _, n := range names {
		data = append(data, mimedata.NewTextData(n))
	}
	w.Queue.Send(events.NewDrop(w.lastCursor, data))
}

func (w *Window) sizeEvent(gw *glfw.Window, width, height int) {
	w.Queue.Send(events.NewWindowResize(w.curPos(float64(width), float64(height))))
}

func (w *Window) refreshEvent(gw *glfw.Window) {
	w.Queue.Send(events.NewWindow(events.WindowPaint))
}

func (w *Window) focusEvent(gw *glfw.Window, focused bool) {
	if focused {
		w.Queue.Send(events.NewWindow(events.WindowFocus))
	} else {
		w.Queue.Send(events.NewWindow(events.WindowFocusLost))
	}
}

func (w *Window) closeEvent(gw *glfw.Window) {
	w.Queue.Send(events.NewWindow(events.WindowClose))
}

// drain dispatches all queued events into the view.
func (w *Window) drain() {
	for {
		ev := w.Queue.Poll()
		if ev == nil {
			return
		}
		w.dispatch(ev)
	}
}

func (w *Window) dispatch(ev events.Event) {
	switch e := ev.(type) {
	case *events.Mouse:
		switch e.Typ {
		case events.MouseDown, events.MouseUp:
			w.View.Click(e)
		case events.MouseMove:
			w.View.Cursor(e.Where, events.Hovering)
		case events.MouseDrag:
			w.View.Drag(e)
		}
	case *events.MouseScroll:
		w.View.Scroll(e.Delta, e.Where)
	case *events.Key:
		w.View.Key(e)
	case *events.Text:
		w.View.Text(e)
	case *events.Drop:
		w.View.Drop(e)
	case *events.WindowEvent:
		switch e.Typ {
		case events.WindowResize:
			w.View.Resize(e.Size)
		case events.WindowPaint:
			w.needsPaint = true
		case events.WindowFocus:
			w.View.BeginFocus()
		case events.WindowFocusLost:
			w.View.EndFocus()
		case events.WindowClose:
			w.Glw.SetShouldClose(true)
		}
	}
}

// paintIfNeeded runs one paint step when the view or the platform
// asked for one.
func (w *Window) paintIfNeeded() {
	if !w.needsPaint && !w.View.NeedsRedraw() {
		return
	}
	w.needsPaint = false
	if w.OnPaint != nil {
		w.OnPaint(w.View)
		return
	}
	if w.Canvas != nil {
		w.View.Draw(w.Canvas)
	}
}

func (w *Window) destroy() {
	w.Glw.Destroy()
}
