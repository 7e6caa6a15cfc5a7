package overlay

import (
	"image/color"
	"strings"

	"cube-rain/internal/config"
	"cube-rain/internal/graphics"
	renderer "cube-rain/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vertexShader = `#version 410 core
layout(location = 0) in vec2 position;
layout(location = 1) in vec2 uv;
uniform mat4 proj;
out vec2 texCoord;
void main() {
	texCoord = uv;
	gl_Position = proj * vec4(position, 0.0, 1.0);
}
`

const fragmentShader = `#version 410 core
in vec2 texCoord;
uniform sampler2D text;
out vec4 outColor;
void main() {
	outColor = texture(text, texCoord);
}
`

// Margin is the gap between the panel and the viewport's top-left corner.
const Margin = 8

// Overlay draws a small text panel in the corner of every viewport it is rendered
// into, so each eye gets its own copy. Hidden unless config.GetShowOverlay().
type Overlay struct {
	shader  *graphics.Shader
	vao     uint32
	vbo     uint32
	texture uint32
	texW    int
	texH    int

	text func() []string
	last string
}

// NewOverlay creates an overlay showing whatever text returns each frame
func NewOverlay(text func() []string) *Overlay {
	return &Overlay{text: text}
}

// Init compiles the textured-quad shader and allocates the quad buffer
func (o *Overlay) Init() error {
	var err error
	o.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render draws the panel into the current viewport
func (o *Overlay) Render(ctx renderer.RenderContext) {
	if !config.GetShowOverlay() || o.text == nil {
		return
	}
	o.refresh(o.text())
	if o.texture == 0 || o.texW == 0 {
		return
	}

	vw, vh := float32(ctx.Viewport[2]), float32(ctx.Viewport[3])
	proj := mgl32.Ortho2D(0, vw, vh, 0)
	quad := Quad(Margin, Margin, float32(o.texW), float32(o.texH))

	gl.Disable(gl.DEPTH_TEST)
	o.shader.Use()
	o.shader.SetMatrix4("proj", &proj[0])
	o.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, gl.Ptr(&quad[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Enable(gl.DEPTH_TEST)
}

// refresh re-rasterizes only when the text changed
func (o *Overlay) refresh(lines []string) {
	key := strings.Join(lines, "\n")
	if key == o.last && o.texture != 0 {
		return
	}
	o.last = key

	img := graphics.RasterizeText(lines, color.RGBA{0xE0, 0xE0, 0xE0, 0xFF})
	if img == nil {
		o.texW, o.texH = 0, 0
		return
	}
	o.texture = graphics.UploadRGBA(o.texture, img)
	o.texW, o.texH = img.Rect.Dx(), img.Rect.Dy()
}

// Quad returns two triangles covering (x,y)-(x+w,y+h) in top-left pixel space,
// interleaved as position.xy, uv.xy. Image row 0 maps to the top edge.
func Quad(x, y, w, h float32) [24]float32 {
	return [24]float32{
		x, y, 0, 0,
		x + w, y, 1, 0,
		x + w, y + h, 1, 1,
		x, y, 0, 0,
		x + w, y + h, 1, 1,
		x, y + h, 0, 1,
	}
}

// Dispose cleans up OpenGL resources
func (o *Overlay) Dispose() {
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.shader != nil {
		o.shader.Delete()
	}
}
