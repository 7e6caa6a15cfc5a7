package scene

import "github.com/go-gl/mathgl/mgl32"

// PerspectiveCamera holds the view transform and projection parameters.
type PerspectiveCamera struct {
	Object3D

	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32

	// Projection is rebuilt by UpdateProjectionMatrix; eye cameras set it directly.
	Projection mgl32.Mat4
}

func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Object3D: newObject3D(),
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
	c.UpdateProjectionMatrix()
	return c
}

func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// View returns the inverse of the camera's world matrix.
func (c *PerspectiveCamera) View() mgl32.Mat4 {
	return c.Matrix.Inv()
}
