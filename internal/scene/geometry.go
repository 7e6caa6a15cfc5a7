package scene

// BoxGeometry is an axis-aligned box centred on the origin.
type BoxGeometry struct {
	Width, Height, Depth float32
}

func NewBoxGeometry(width, height, depth float32) *BoxGeometry {
	return &BoxGeometry{Width: width, Height: height, Depth: depth}
}

// Corners returns the eight box corners; bit 0 selects +X, bit 1 +Y, bit 2 +Z.
func (b *BoxGeometry) Corners() [8][3]float32 {
	hx, hy, hz := b.Width/2, b.Height/2, b.Depth/2
	var out [8][3]float32
	for i := range out {
		x, y, z := -hx, -hy, -hz
		if i&1 != 0 {
			x = hx
		}
		if i&2 != 0 {
			y = hy
		}
		if i&4 != 0 {
			z = hz
		}
		out[i] = [3]float32{x, y, z}
	}
	return out
}

// LineGeometry is a list of independent segments, two xyz vertices per segment.
type LineGeometry struct {
	Vertices []float32
	// Colors is optional, one rgb triple per vertex.
	Colors []float32
}

// SegmentCount returns the number of segments.
func (g *LineGeometry) SegmentCount() int {
	return len(g.Vertices) / 6
}

// VertexCount returns the number of vertices.
func (g *LineGeometry) VertexCount() int {
	return len(g.Vertices) / 3
}

// NewEdgesGeometry derives the twelve box edges.
func NewEdgesGeometry(box *BoxGeometry) *LineGeometry {
	c := box.Corners()
	verts := make([]float32, 0, 12*6)
	// Two corners share an edge when they differ in exactly one axis bit
	for a := 0; a < 8; a++ {
		for _, bit := range [3]int{1, 2, 4} {
			if a&bit != 0 {
				continue
			}
			b := a | bit
			verts = append(verts, c[a][0], c[a][1], c[a][2], c[b][0], c[b][1], c[b][2])
		}
	}
	return &LineGeometry{Vertices: verts}
}
