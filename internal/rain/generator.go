package rain

import "cube-rain/internal/scene"

// Pool is the fixed set of cube outlines plus the instances they share.
type Pool struct {
	Outlines []*scene.LineSegments

	Geometry     *scene.BoxGeometry
	Material     *scene.BasicMaterial
	Edges        *scene.LineGeometry
	LineMaterial *scene.LineMaterial
}

// BuildPool creates n cube outlines, adds each to sc and starts its first fall.
func BuildPool(sc *scene.Scene, n int, d *Driver) *Pool {
	geometry := scene.NewBoxGeometry(Step, Step, Step)
	p := &Pool{
		Outlines:     make([]*scene.LineSegments, 0, n),
		Geometry:     geometry,
		Material:     scene.NewBasicMaterial(CubeColor),
		Edges:        scene.NewEdgesGeometry(geometry),
		LineMaterial: scene.NewLineMaterial(OutlineColor, 1),
	}

	for i := 0; i < n; i++ {
		mesh := scene.NewMesh(p.Geometry, p.Material)
		outline := scene.NewOutline(mesh, p.Edges, p.LineMaterial)
		outline.UpdateMatrix()
		sc.Add(outline)
		p.Outlines = append(p.Outlines, outline)

		d.StartDrop(outline)
	}

	return p
}

// UpdateMatrices refreshes every outline's transform from its current position.
func (p *Pool) UpdateMatrices() {
	for _, o := range p.Outlines {
		o.UpdateMatrix()
	}
}

// BuildGround adds the floor grid to sc.
func BuildGround(sc *scene.Scene) *scene.LineSegments {
	grid := scene.NewGrid(GridSize, Step, GridColor, GridColor)
	sc.Add(grid)
	return grid
}
