package renderer

import (
	"cube-rain/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-pass context for all renderables
type RenderContext struct {
	Scene  *scene.Scene
	Camera *scene.PerspectiveCamera
	View   mgl32.Mat4
	Proj   mgl32.Mat4

	// Viewport is the current pass rectangle in framebuffer pixels: x, y, w, h.
	Viewport [4]int32
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
