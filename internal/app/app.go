package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"cube-rain/internal/clock"
	"cube-rain/internal/config"
	"cube-rain/internal/controls"
	"cube-rain/internal/profiling"
	"cube-rain/internal/rain"
	"cube-rain/internal/scene"
	"cube-rain/internal/sensor"
	"cube-rain/internal/stereo"
	"cube-rain/internal/tween"
	"cube-rain/internal/viewport"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	CameraFOV  = 90
	CameraNear = 1
	CameraFar  = 3000
	CameraY    = 700

	ClearColor scene.Color = 0x000000
)

// Surface is the drawing surface the app renders through.
type Surface interface {
	stereo.Renderer
	SetClearColor(c scene.Color)
	SetPixelRatio(ratio float32)
}

// Host owns the window: event pumping, presentation and the close flag.
type Host interface {
	ShouldClose() bool
	PollEvents()
	SwapBuffers()
}

// OrientationSource delivers queued device readings to fn and returns how many
// it delivered.
type OrientationSource interface {
	Drain(fn func(sensor.Reading)) int
}

// Pointer reports pointer input gathered since the previous frame.
type Pointer interface {
	ConsumeDrag() (dx, dy float64)
	ConsumeTap() bool
}

// Options carries everything the bootstrap needs from the platform. Only
// Container and Surface are required.
type Options struct {
	Container  viewport.Container
	Surface    Surface
	PixelRatio float32

	Orientation OrientationSource
	Pointer     Pointer
	Rand        rain.Random
	Clock       *clock.Clock
	PoolSize    int
}

// App holds the state of one running demo.
type App struct {
	Scene     *scene.Scene
	Camera    *scene.PerspectiveCamera
	Surface   Surface
	Effect    *stereo.Effect
	Controls  *controls.Selector
	Viewport  *viewport.Responder
	Scheduler *tween.Scheduler
	Driver    *rain.Driver
	Pool      *rain.Pool
	Ground    *scene.LineSegments
	Clock     *clock.Clock

	orientation OrientationSource
	pointer     Pointer

	// set once the orientation switch has registered the tap handler
	tapFullscreen bool

	limiter *FPSLimiter
	fps     int
}

// New builds the scene graph, camera, stereo effect and controls, sizes
// everything to the container and starts the cube rain.
func New(opts Options) *App {
	a := &App{
		orientation: opts.Orientation,
		pointer:     opts.Pointer,
		limiter:     NewFPSLimiter(),
		Clock:       opts.Clock,
	}
	if a.Clock == nil {
		a.Clock = clock.New()
	}

	a.Scene = scene.New()

	w, h := opts.Container.Size()
	aspect := float32(1)
	if w > 0 && h > 0 {
		aspect = float32(w) / float32(h)
	}
	a.Camera = scene.NewPerspectiveCamera(CameraFOV, aspect, CameraNear, CameraFar)
	a.Camera.Position = mgl32.Vec3{0, CameraY, 0}
	a.Scene.Add(a.Camera)

	a.Surface = opts.Surface
	a.Surface.SetClearColor(ClearColor)
	if opts.PixelRatio > 0 {
		a.Surface.SetPixelRatio(opts.PixelRatio)
	}
	a.Surface.SetSize(w, h)

	a.Effect = stereo.NewEffect(a.Surface, config.GetEyeSeparation(), config.GetStereoFocus())
	a.Effect.Mono = !config.GetStereo()

	a.Controls = controls.NewSelector(a.Camera)
	a.Controls.OnOrientation = func() { a.tapFullscreen = true }

	a.Viewport = viewport.NewResponder(opts.Container, a.Camera, a.Surface, a.Effect)
	a.Viewport.Resize()

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	n := opts.PoolSize
	if n <= 0 {
		n = rain.PoolSize
	}
	a.Scheduler = tween.NewScheduler()
	a.Driver = rain.NewDriver(a.Scheduler, rng)
	a.Pool = rain.BuildPool(a.Scene, n, a.Driver)
	a.Ground = rain.BuildGround(a.Scene)

	return a
}

// TapRegistered reports whether a tap now requests fullscreen.
func (a *App) TapRegistered() bool {
	return a.tapFullscreen
}

// Tick advances one frame with the clock's delta.
func (a *App) Tick() {
	a.Step(a.Clock.GetDelta())
}

// Step advances one frame of dt seconds and draws it.
func (a *App) Step(dt float64) {
	profiling.ResetFrame()

	if a.orientation != nil {
		func() {
			defer profiling.Track("sensor.Drain")()
			a.orientation.Drain(func(r sensor.Reading) { a.Controls.Dispatch(r) })
		}()
	}
	a.handlePointer()

	func() {
		defer profiling.Track("rain.Advance")()
		a.Scheduler.Advance(time.Duration(dt * float64(time.Second)))
	}()
	func() { defer profiling.Track("rain.UpdateMatrices")(); a.Pool.UpdateMatrices() }()

	a.Camera.UpdateProjectionMatrix()
	func() { defer profiling.Track("controls.Advance")(); a.Controls.Advance(dt) }()

	func() { defer profiling.Track("stereo.Render")(); a.Effect.Render(a.Scene, a.Camera) }()
}

func (a *App) handlePointer() {
	if a.pointer == nil {
		return
	}
	if dx, dy := a.pointer.ConsumeDrag(); dx != 0 || dy != 0 {
		w, h := a.Surface.Size()
		a.Controls.Drag(dx, dy, w, h)
	}
	if a.pointer.ConsumeTap() && a.tapFullscreen {
		a.RequestFullscreen()
	}
}

// RequestFullscreen asks the viewport for fullscreen, logging the outcome.
func (a *App) RequestFullscreen() {
	name, err := a.Viewport.RequestFullscreen()
	if err != nil {
		fmt.Printf("fullscreen via %s failed: %v\n", name, err)
		return
	}
	if name != "" {
		fmt.Println("fullscreen via", name)
	}
}

// FPS is the frame count of the last full second of Run.
func (a *App) FPS() int {
	return a.fps
}

// Status lines for the overlay.
func (a *App) Status() []string {
	lines := []string{
		fmt.Sprintf("FPS: %d", a.fps),
		fmt.Sprintf("Control: %s", a.Controls.Mode()),
	}
	if top := profiling.TopN(3); top != "" {
		lines = append(lines, top)
	}
	return lines
}

// Run loops until ctx is cancelled or the host asks to close.
func (a *App) Run(ctx context.Context, host Host) error {
	frames := 0
	lastFPSCheck := time.Now()

	for !host.ShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		start := time.Now()
		host.PollEvents()
		a.Tick()
		func() { defer profiling.Track("glfw.SwapBuffers")(); host.SwapBuffers() }()

		if limit := config.GetFPSLimit(); limit > 0 {
			if d := time.Since(start); d > time.Second/time.Duration(limit) {
				fmt.Printf("Slow frame: %v. Top tasks: %s\n", d, profiling.TopN(5))
			}
		}

		frames++
		if time.Since(lastFPSCheck) >= time.Second {
			a.fps = frames
			fmt.Printf("FPS: %d\n", frames)
			frames = 0
			lastFPSCheck = time.Now()
		}

		a.limiter.Wait()
	}
	return nil
}
