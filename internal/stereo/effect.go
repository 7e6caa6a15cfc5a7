package stereo

import "cube-rain/internal/scene"

// Renderer is the drawing surface the effect wraps. Sizes are in logical pixels.
type Renderer interface {
	SetSize(width, height int)
	Size() (width, height int)
	SetViewport(x, y, width, height int)
	SetScissor(x, y, width, height int)
	SetScissorTest(enabled bool)
	Clear()
	Render(sc *scene.Scene, cam *scene.PerspectiveCamera)
}

// Effect splits the renderer's surface into a left and right eye viewport.
type Effect struct {
	renderer Renderer
	Stereo   *Camera

	// Mono draws the centre camera over the whole surface instead.
	Mono bool
}

func NewEffect(r Renderer, eyeSep, focus float32) *Effect {
	return &Effect{
		renderer: r,
		Stereo:   NewCamera(eyeSep, focus),
	}
}

// SetSize resizes the wrapped renderer.
func (e *Effect) SetSize(width, height int) {
	e.renderer.SetSize(width, height)
}

// Size reports the wrapped renderer's size.
func (e *Effect) Size() (int, int) {
	return e.renderer.Size()
}

// Render draws sc from both eyes of cam.
func (e *Effect) Render(sc *scene.Scene, cam *scene.PerspectiveCamera) {
	cam.UpdateMatrix()
	w, h := e.renderer.Size()

	e.renderer.Clear()

	if e.Mono {
		e.renderer.SetViewport(0, 0, w, h)
		e.renderer.Render(sc, cam)
		return
	}

	e.Stereo.Update(cam)
	half := w / 2

	e.renderer.SetScissorTest(true)

	e.renderer.SetScissor(0, 0, half, h)
	e.renderer.SetViewport(0, 0, half, h)
	e.renderer.Render(sc, e.Stereo.Left)

	e.renderer.SetScissor(half, 0, half, h)
	e.renderer.SetViewport(half, 0, half, h)
	e.renderer.Render(sc, e.Stereo.Right)

	e.renderer.SetScissorTest(false)
}
