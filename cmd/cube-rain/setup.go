package main

import (
	"fmt"

	"cube-rain/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(width, height int) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	window, err := glfw.CreateWindow(width, height, "cube-rain", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("graphics context unavailable: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("graphics context unavailable: %w", err)
	}

	// With no FPS limit the loop is paced by vsync
	if config.GetFPSLimit() > 0 {
		glfw.SwapInterval(0)
	} else {
		glfw.SwapInterval(1)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	return window, nil
}

// pixelRatio is the framebuffer-to-window scale, 0 when the window has no area.
func pixelRatio(window *glfw.Window) float32 {
	w, _ := window.GetSize()
	fw, _ := window.GetFramebufferSize()
	if w <= 0 || fw <= 0 {
		return 0
	}
	return float32(fw) / float32(w)
}
