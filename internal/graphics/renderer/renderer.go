package renderer

import (
	"fmt"

	"cube-rain/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer draws scenes into the current GL context through its renderables.
// Sizes passed in are logical pixels; the pixel ratio maps them to the framebuffer
type Renderer struct {
	renderables []Renderable

	width, height int
	pixelRatio    float32
	clearColor    scene.Color
	viewport      [4]int32
}

// NewRenderer configures GL state and initializes every renderable in order
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{
		renderables: rs,
		pixelRatio:  1,
	}

	for i, rd := range rs {
		if err := rd.Init(); err != nil {
			// Release what was already set up
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}

	return r, nil
}

// SetClearColor sets the colour Clear fills with
func (r *Renderer) SetClearColor(c scene.Color) {
	r.clearColor = c
}

// SetPixelRatio sets framebuffer pixels per logical pixel
func (r *Renderer) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	r.pixelRatio = ratio
}

// PixelRatio returns framebuffer pixels per logical pixel
func (r *Renderer) PixelRatio() float32 {
	return r.pixelRatio
}

// SetSize sets the logical output size and resets the viewport to cover it
func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = width, height
	r.SetViewport(0, 0, width, height)
}

// Size returns the logical output size
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *Renderer) scaled(v int) int32 {
	return int32(float32(v)*r.pixelRatio + 0.5)
}

// SetViewport sets the GL viewport from logical coordinates
func (r *Renderer) SetViewport(x, y, width, height int) {
	r.viewport = [4]int32{r.scaled(x), r.scaled(y), r.scaled(width), r.scaled(height)}
	gl.Viewport(r.viewport[0], r.viewport[1], r.viewport[2], r.viewport[3])
}

// SetScissor sets the scissor box from logical coordinates
func (r *Renderer) SetScissor(x, y, width, height int) {
	gl.Scissor(r.scaled(x), r.scaled(y), r.scaled(width), r.scaled(height))
}

// SetScissorTest enables or disables the scissor test
func (r *Renderer) SetScissorTest(enabled bool) {
	if enabled {
		gl.Enable(gl.SCISSOR_TEST)
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}
}

// Clear fills colour and depth for the scissored region
func (r *Renderer) Clear() {
	cr, cg, cb := r.clearColor.RGB()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Render draws sc from cam into the current viewport
func (r *Renderer) Render(sc *scene.Scene, cam *scene.PerspectiveCamera) {
	// Depth is per eye; colour was cleared once for the whole frame
	gl.Clear(gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Scene:    sc,
		Camera:   cam,
		View:     cam.View(),
		Proj:     cam.Projection,
		Viewport: r.viewport,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
