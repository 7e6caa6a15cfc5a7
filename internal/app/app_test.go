package app

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"cube-rain/internal/clock"
	"cube-rain/internal/controls"
	"cube-rain/internal/rain"
	"cube-rain/internal/scene"
	"cube-rain/internal/sensor"
)

type fakeSurface struct {
	w, h    int
	ratio   float32
	clear   scene.Color
	renders int
	calls   []string
}

func (s *fakeSurface) SetSize(w, h int)           { s.w, s.h = w, h; s.calls = append(s.calls, "size") }
func (s *fakeSurface) Size() (int, int)           { return s.w, s.h }
func (s *fakeSurface) SetViewport(x, y, w, h int) {}
func (s *fakeSurface) SetScissor(x, y, w, h int)  {}
func (s *fakeSurface) SetScissorTest(bool)        {}
func (s *fakeSurface) Clear()                     { s.calls = append(s.calls, "clear") }
func (s *fakeSurface) SetClearColor(c scene.Color) {
	s.clear = c
	s.calls = append(s.calls, "clear-color")
}
func (s *fakeSurface) SetPixelRatio(r float32)                       { s.ratio = r; s.calls = append(s.calls, "ratio") }
func (s *fakeSurface) Render(*scene.Scene, *scene.PerspectiveCamera) { s.renders++ }

type window struct{ w, h int }

func (c *window) Size() (int, int) { return c.w, c.h }

type queue struct{ readings []sensor.Reading }

func (q *queue) Drain(fn func(sensor.Reading)) int {
	n := len(q.readings)
	for _, r := range q.readings {
		fn(r)
	}
	q.readings = nil
	return n
}

type pointer struct {
	dx, dy float64
	taps   int
}

func (p *pointer) ConsumeDrag() (float64, float64) {
	dx, dy := p.dx, p.dy
	p.dx, p.dy = 0, 0
	return dx, dy
}

func (p *pointer) ConsumeTap() bool {
	if p.taps == 0 {
		return false
	}
	p.taps--
	return true
}

type fullscreen struct{ requests int }

func (f *fullscreen) Name() string    { return "test" }
func (f *fullscreen) Available() bool { return true }
func (f *fullscreen) Request() error  { f.requests++; return nil }

type host struct {
	frames, limit int
	swaps         int
}

func (h *host) ShouldClose() bool { return h.frames >= h.limit }
func (h *host) PollEvents()       { h.frames++ }
func (h *host) SwapBuffers()      { h.swaps++ }

func newTestApp(opts Options) (*App, *fakeSurface) {
	s := &fakeSurface{}
	opts.Surface = s
	if opts.Container == nil {
		opts.Container = &window{w: 1280, h: 720}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}
	return New(opts), s
}

func TestBootstrap(t *testing.T) {
	a, s := newTestApp(Options{PixelRatio: 2})

	if got := len(a.Pool.Outlines); got != rain.PoolSize {
		t.Fatalf("pool: got %d cubes, want %d", got, rain.PoolSize)
	}
	// camera + cubes + grid
	if got, want := len(a.Scene.Children), rain.PoolSize+2; got != want {
		t.Fatalf("scene children: got %d, want %d", got, want)
	}
	if a.Scene.Children[0] != scene.Node(a.Camera) {
		t.Fatalf("camera should be the first scene child")
	}
	if a.Camera.Position[1] != CameraY || a.Camera.FOV != CameraFOV {
		t.Fatalf("camera: got pos %v fov %v", a.Camera.Position, a.Camera.FOV)
	}
	if a.Camera.Aspect != float32(1280)/720 {
		t.Fatalf("aspect: got %v", a.Camera.Aspect)
	}
	if s.ratio != 2 || s.clear != ClearColor || s.w != 1280 || s.h != 720 {
		t.Fatalf("surface not configured: %+v", s)
	}
	if s.calls[0] != "clear-color" || s.calls[1] != "ratio" {
		t.Fatalf("surface setup order: %v", s.calls)
	}
	if a.Controls.Mode() != controls.ModeOrbit {
		t.Fatalf("should start in orbit mode")
	}
	for _, o := range a.Pool.Outlines {
		if a.Driver.State(o) != rain.StateFalling {
			t.Fatalf("every cube should be falling after bootstrap")
		}
	}
}

func TestZeroPixelRatioLeavesDefault(t *testing.T) {
	_, s := newTestApp(Options{})
	for _, c := range s.calls {
		if c == "ratio" {
			t.Fatalf("pixel ratio set without a positive host ratio")
		}
	}
}

func TestStepRendersBothEyes(t *testing.T) {
	a, s := newTestApp(Options{})
	a.Step(0.016)
	if s.renders != 2 {
		t.Fatalf("renders per frame: got %d, want 2", s.renders)
	}
}

func TestStepAdvancesCubes(t *testing.T) {
	a, _ := newTestApp(Options{PoolSize: 1})
	o := a.Pool.Outlines[0]

	for i := 0; i < 8*60; i++ {
		a.Step(1.0 / 60)
	}
	if a.Driver.State(o) == rain.StateIdle {
		t.Fatalf("cube went idle")
	}
	if a.Driver.Drops(o) < 2 {
		t.Fatalf("cube should have restarted after resting, drops=%d", a.Driver.Drops(o))
	}
	if o.Matrix.Col(3)[1] != o.Position[1] {
		t.Fatalf("matrix not refreshed from position")
	}
}

func TestTapFullscreenOnlyAfterOrientation(t *testing.T) {
	q := &queue{}
	p := &pointer{taps: 1}
	a, _ := newTestApp(Options{Orientation: q, Pointer: p, PoolSize: 1})
	fs := &fullscreen{}
	a.Viewport.SetFullscreenMethods(fs)

	a.Step(0.016)
	if fs.requests != 0 || a.TapRegistered() {
		t.Fatalf("tap in orbit mode requested fullscreen")
	}

	q.readings = []sensor.Reading{sensor.NewReading(30, 80, 0, 0)}
	p.taps = 1
	a.Step(0.016)
	if a.Controls.Mode() != controls.ModeOrientation || !a.TapRegistered() {
		t.Fatalf("valid reading should switch to orientation")
	}
	if fs.requests != 1 {
		t.Fatalf("tap after switch: got %d requests, want 1", fs.requests)
	}

	p.taps = 1
	a.Step(0.016)
	if fs.requests != 2 {
		t.Fatalf("tap handler should persist, got %d requests", fs.requests)
	}
}

func TestDragIgnoredAfterSwitch(t *testing.T) {
	q := &queue{readings: []sensor.Reading{sensor.NewReading(10, 90, 0, 0)}}
	p := &pointer{}
	a, _ := newTestApp(Options{Orientation: q, Pointer: p, PoolSize: 1})
	a.Step(0.016)
	before := a.Camera.Quaternion

	p.dx = 300
	a.Step(0.016)
	if a.Camera.Quaternion != before {
		t.Fatalf("drag moved the camera in orientation mode")
	}
}

func TestRunStopsOnClose(t *testing.T) {
	a, s := newTestApp(Options{PoolSize: 1})
	h := &host{limit: 3}
	if err := a.Run(context.Background(), h); err != nil {
		t.Fatalf("run: %v", err)
	}
	if h.swaps != 3 || s.renders != 6 {
		t.Fatalf("frames: swaps=%d renders=%d", h.swaps, s.renders)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _ := newTestApp(Options{PoolSize: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx, &host{limit: 1 << 30}) }()
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run ignored a cancelled context")
	}
}

func TestTickUsesClock(t *testing.T) {
	now := time.Unix(0, 0)
	c := clock.NewWithSource(func() time.Time { return now })
	a, _ := newTestApp(Options{Clock: c, PoolSize: 1})

	a.Tick()
	now = now.Add(500 * time.Millisecond)
	a.Tick()
	if got := a.Scheduler.Now(); got != 500*time.Millisecond {
		t.Fatalf("scheduler time: got %v, want 500ms", got)
	}
}

func TestStatusLines(t *testing.T) {
	a, _ := newTestApp(Options{PoolSize: 1})
	a.Step(0.016)
	lines := a.Status()
	if len(lines) < 2 || !strings.HasPrefix(lines[0], "FPS:") || lines[1] != "Control: orbit" {
		t.Fatalf("status: %q", lines)
	}
}

func BenchmarkStep(b *testing.B) {
	a, _ := newTestApp(Options{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Step(1.0 / 60)
	}
}
