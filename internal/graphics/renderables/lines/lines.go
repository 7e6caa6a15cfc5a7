package lines

import (
	"cube-rain/internal/graphics"
	renderer "cube-rain/internal/graphics/renderer"
	"cube-rain/internal/profiling"
	"cube-rain/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShader = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 vertexColor;
uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;
uniform vec3 color;
uniform bool useVertexColor;
out vec3 fragColor;
void main() {
	fragColor = useVertexColor ? vertexColor : color;
	gl_Position = proj * view * model * vec4(position, 1.0);
}
`

const fragmentShader = `#version 410 core
in vec3 fragColor;
out vec4 outColor;
void main() {
	outColor = vec4(fragColor, 1.0);
}
`

type buffers struct {
	vao, vbo, cbo uint32
	count         int32
}

// Lines draws every LineSegments node in the scene. Geometry is uploaded once per
// distinct LineGeometry, so outlines sharing edges share one vertex array.
type Lines struct {
	shader  *graphics.Shader
	uploads map[*scene.LineGeometry]*buffers
}

// NewLines creates a new line renderable
func NewLines() *Lines {
	return &Lines{uploads: make(map[*scene.LineGeometry]*buffers)}
}

// Init compiles the line shader
func (l *Lines) Init() error {
	var err error
	l.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	return err
}

// Render draws all line nodes for the current eye
func (l *Lines) Render(ctx renderer.RenderContext) {
	defer profiling.Track("lines.Render")()

	l.shader.Use()
	l.shader.SetMatrix4("proj", &ctx.Proj[0])
	l.shader.SetMatrix4("view", &ctx.View[0])

	var lastWidth float32
	ctx.Scene.Each(func(ls *scene.LineSegments) {
		if ls.Geometry == nil || ls.Material == nil || ls.Geometry.VertexCount() == 0 {
			return
		}
		b := l.upload(ls.Geometry)

		l.shader.SetMatrix4("model", &ls.Matrix[0])
		cr, cg, cb := ls.Material.Color.RGB()
		l.shader.SetVector3("color", cr, cg, cb)
		l.shader.SetBool("useVertexColor", ls.Material.VertexColors && b.cbo != 0)

		// Core profiles only guarantee width 1; skip the call when unchanged
		if ls.Material.LineWidth != lastWidth {
			gl.LineWidth(ls.Material.LineWidth)
			lastWidth = ls.Material.LineWidth
		}

		gl.BindVertexArray(b.vao)
		gl.DrawArrays(gl.LINES, 0, b.count)
	})
	gl.BindVertexArray(0)
}

func (l *Lines) upload(g *scene.LineGeometry) *buffers {
	if b, ok := l.uploads[g]; ok {
		return b
	}
	b := &buffers{count: int32(g.VertexCount())}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*4, gl.Ptr(g.Vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	if len(g.Colors) == len(g.Vertices) {
		gl.GenBuffers(1, &b.cbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.cbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(g.Colors)*4, gl.Ptr(g.Colors), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 3*4, 0)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	l.uploads[g] = b
	return b
}

// Dispose cleans up OpenGL resources
func (l *Lines) Dispose() {
	for g, b := range l.uploads {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		if b.cbo != 0 {
			gl.DeleteBuffers(1, &b.cbo)
		}
		delete(l.uploads, g)
	}
	if l.shader != nil {
		l.shader.Delete()
	}
}
