// Package viewport keeps the camera and render surfaces in step with the window
// and switches the window to fullscreen on request.
package viewport

import "cube-rain/internal/scene"

// Container is the element the rendering surface lives in.
type Container interface {
	Size() (width, height int)
}

// Sizer is anything that is resized along with the container.
type Sizer interface {
	SetSize(width, height int)
}

// FullscreenMethod is one way of taking the container fullscreen.
type FullscreenMethod interface {
	Name() string
	Available() bool
	Request() error
}

// Responder reacts to container resizes and fullscreen requests.
type Responder struct {
	container Container
	camera    *scene.PerspectiveCamera
	renderer  Sizer
	effect    Sizer

	fullscreen []FullscreenMethod
}

func NewResponder(c Container, cam *scene.PerspectiveCamera, renderer, effect Sizer) *Responder {
	return &Responder{container: c, camera: cam, renderer: renderer, effect: effect}
}

// SetFullscreenMethods replaces the candidate list; earlier entries are preferred.
func (r *Responder) SetFullscreenMethods(methods ...FullscreenMethod) {
	r.fullscreen = methods
}

// Resize matches the camera aspect and both surfaces to the container. It reports
// false and changes nothing when the container has no area, e.g. when minimized.
func (r *Responder) Resize() bool {
	w, h := r.container.Size()
	if w <= 0 || h <= 0 {
		return false
	}

	r.camera.Aspect = float32(w) / float32(h)
	r.camera.UpdateProjectionMatrix()

	r.renderer.SetSize(w, h)
	r.effect.SetSize(w, h)
	return true
}

// RequestFullscreen uses the first available method. With none available it does
// nothing and returns an empty name.
func (r *Responder) RequestFullscreen() (string, error) {
	for _, m := range r.fullscreen {
		if !m.Available() {
			continue
		}
		return m.Name(), m.Request()
	}
	return "", nil
}
