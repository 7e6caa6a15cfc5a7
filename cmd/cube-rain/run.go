package main

import (
	"context"
	"fmt"

	"cube-rain/internal/app"
	"cube-rain/internal/graphics/renderables/lines"
	"cube-rain/internal/graphics/renderables/overlay"
	renderer "cube-rain/internal/graphics/renderer"
	"cube-rain/internal/input"
	"cube-rain/internal/sensor"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// feedBuffer bounds the readings queued between frames.
const feedBuffer = 64

func run(ctx context.Context, opts options) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(opts.width, opts.height)
	if err != nil {
		return err
	}
	defer window.Destroy()

	var a *app.App
	status := func() []string {
		if a == nil {
			return nil
		}
		return a.Status()
	}

	r, err := renderer.NewRenderer(lines.NewLines(), overlay.NewOverlay(status))
	if err != nil {
		return fmt.Errorf("graphics context unavailable: %w", err)
	}
	defer r.Dispose()

	im := input.NewInputManager()
	im.SetCallbacks(window)

	appOpts := app.Options{
		Container:  windowContainer{window: window},
		Surface:    r,
		PixelRatio: pixelRatio(window),
		Pointer:    im,
	}
	if rng := opts.random(); rng != nil {
		appOpts.Rand = rng
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.orientationAddr != "" {
		feed := sensor.NewFeed(feedBuffer)
		appOpts.Orientation = feed
		go func() {
			if err := feed.Serve(ctx, opts.orientationAddr); err != nil {
				fmt.Println("orientation feed stopped:", err)
			}
		}()
	}

	a = app.New(appOpts)
	a.Viewport.SetFullscreenMethods(
		containingMonitor{window: window},
		primaryMonitor{window: window},
		borderless{window: window},
	)

	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		a.Viewport.Resize()
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if ratio := pixelRatio(w); ratio > 0 {
			r.SetPixelRatio(ratio)
		}
	})

	return a.Run(ctx, &host{window: window, input: im, app: a})
}
