package main

import (
	"fmt"

	"cube-rain/internal/app"
	"cube-rain/internal/config"
	"cube-rain/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// windowContainer reports the window's logical size.
type windowContainer struct {
	window *glfw.Window
}

func (c windowContainer) Size() (int, int) {
	return c.window.GetSize()
}

// host pumps GLFW events and turns key actions into app commands.
type host struct {
	window *glfw.Window
	input  *input.InputManager
	app    *app.App
}

func (h *host) ShouldClose() bool {
	return h.window.ShouldClose()
}

func (h *host) PollEvents() {
	glfw.PollEvents()

	if h.input.JustPressed(input.ActionQuit) {
		h.window.SetShouldClose(true)
	}
	if h.input.JustPressed(input.ActionToggleOverlay) {
		config.ToggleOverlay()
	}
	if h.input.JustPressed(input.ActionFullscreen) && h.app != nil {
		h.app.RequestFullscreen()
	}

	h.input.PostUpdate()
}

func (h *host) SwapBuffers() {
	h.window.SwapBuffers()
}

// glfwCall turns a panic raised by a GLFW binding into an error.
func glfwCall(name string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", name, r)
		}
	}()
	fn()
	return nil
}

// containingMonitor takes over the monitor under the window's centre.
type containingMonitor struct {
	window *glfw.Window
}

func (m containingMonitor) Name() string { return "containing monitor" }

func (m containingMonitor) monitor() *glfw.Monitor {
	x, y := m.window.GetPos()
	w, h := m.window.GetSize()
	cx, cy := x+w/2, y+h/2
	for _, mon := range glfw.GetMonitors() {
		mx, my, mw, mh := mon.GetWorkarea()
		if cx >= mx && cx < mx+mw && cy >= my && cy < my+mh {
			return mon
		}
	}
	return nil
}

func (m containingMonitor) Available() bool {
	return m.window.GetMonitor() == nil && m.monitor() != nil
}

func (m containingMonitor) Request() error {
	return glfwCall(m.Name(), func() { takeMonitor(m.window, m.monitor()) })
}

// primaryMonitor takes over the primary monitor.
type primaryMonitor struct {
	window *glfw.Window
}

func (m primaryMonitor) Name() string { return "primary monitor" }

func (m primaryMonitor) Available() bool {
	return m.window.GetMonitor() == nil && glfw.GetPrimaryMonitor() != nil
}

func (m primaryMonitor) Request() error {
	return glfwCall(m.Name(), func() { takeMonitor(m.window, glfw.GetPrimaryMonitor()) })
}

func takeMonitor(window *glfw.Window, mon *glfw.Monitor) {
	mode := mon.GetVideoMode()
	window.SetMonitor(mon, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}

// borderless strips decorations and stretches the window over the primary
// monitor's work area; used where exclusive fullscreen is refused.
type borderless struct {
	window *glfw.Window
}

func (b borderless) Name() string { return "borderless window" }

func (b borderless) Available() bool {
	return b.window.GetMonitor() == nil && glfw.GetPrimaryMonitor() != nil
}

func (b borderless) Request() error {
	return glfwCall(b.Name(), func() {
		x, y, w, h := glfw.GetPrimaryMonitor().GetWorkarea()
		b.window.SetAttrib(glfw.Decorated, glfw.False)
		b.window.SetPos(x, y)
		b.window.SetSize(w, h)
	})
}
