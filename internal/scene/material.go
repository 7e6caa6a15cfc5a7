package scene

// Color is a 0xRRGGBB value.
type Color uint32

// RGB returns the channels in [0,1].
func (c Color) RGB() (r, g, b float32) {
	return float32((c>>16)&0xFF) / 255, float32((c>>8)&0xFF) / 255, float32(c&0xFF) / 255
}

// BasicMaterial is an unlit single-colour surface.
type BasicMaterial struct {
	Color Color
}

func NewBasicMaterial(color Color) *BasicMaterial {
	return &BasicMaterial{Color: color}
}

// LineMaterial colours line segments.
type LineMaterial struct {
	Color     Color
	LineWidth float32
	// VertexColors draws with the geometry's per-vertex colours instead of Color.
	VertexColors bool
}

func NewLineMaterial(color Color, width float32) *LineMaterial {
	return &LineMaterial{Color: color, LineWidth: width}
}
