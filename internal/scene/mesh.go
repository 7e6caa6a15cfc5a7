package scene

// Mesh binds a box geometry to a surface material. Meshes are never drawn directly
// here; they are the source an outline is derived from.
type Mesh struct {
	Object3D
	Geometry *BoxGeometry
	Material *BasicMaterial
}

func NewMesh(geometry *BoxGeometry, material *BasicMaterial) *Mesh {
	return &Mesh{Object3D: newObject3D(), Geometry: geometry, Material: material}
}

// LineSegments draws each pair of vertices as one segment.
type LineSegments struct {
	Object3D
	Geometry *LineGeometry
	Material *LineMaterial

	// Source is the mesh an outline was derived from; nil for helpers.
	Source *Mesh
}

// NewOutline wraps mesh in a wireframe of its edges. edges and material are
// usually shared across many outlines.
func NewOutline(mesh *Mesh, edges *LineGeometry, material *LineMaterial) *LineSegments {
	return &LineSegments{
		Object3D: newObject3D(),
		Geometry: edges,
		Material: material,
		Source:   mesh,
	}
}

// NewGrid builds a floor grid on the XZ plane with lines every step from -size to
// +size. The two centre lines use centerColor, the rest gridColor.
func NewGrid(size, step float32, centerColor, gridColor Color) *LineSegments {
	n := int(size / step)
	verts := make([]float32, 0, (2*n+1)*12)
	colors := make([]float32, 0, (2*n+1)*12)
	for i := -n; i <= n; i++ {
		k := float32(i) * step
		verts = append(verts,
			-size, 0, k, size, 0, k,
			k, 0, -size, k, 0, size,
		)
		c := gridColor
		if i == 0 {
			c = centerColor
		}
		r, g, b := c.RGB()
		for v := 0; v < 4; v++ {
			colors = append(colors, r, g, b)
		}
	}
	mat := NewLineMaterial(gridColor, 1)
	mat.VertexColors = true
	return &LineSegments{
		Object3D: newObject3D(),
		Geometry: &LineGeometry{Vertices: verts, Colors: colors},
		Material: mat,
	}
}
