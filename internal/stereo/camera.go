// Package stereo renders a scene twice, side by side, from two horizontally offset
// eye cameras for cardboard-style viewers.
package stereo

import (
	"math"

	"cube-rain/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera derives left and right eye cameras from a centre camera. Each eye sees half
// the surface, so the eye frusta use Aspect times the camera aspect, and they are
// skewed so both converge at Focus.
type Camera struct {
	Aspect        float32
	EyeSeparation float32
	Focus         float32

	Left  *scene.PerspectiveCamera
	Right *scene.PerspectiveCamera
}

// NewCamera leaves the eyes blank; Update fills in their lens and pose.
func NewCamera(eyeSep, focus float32) *Camera {
	return &Camera{
		Aspect:        0.5,
		EyeSeparation: eyeSep,
		Focus:         focus,
		Left:          &scene.PerspectiveCamera{},
		Right:         &scene.PerspectiveCamera{},
	}
}

// Update rebuilds both eyes from cam's current world matrix and lens.
func (s *Camera) Update(cam *scene.PerspectiveCamera) {
	aspect := cam.Aspect * s.Aspect
	half := s.EyeSeparation / 2
	onProjection := half * cam.Near / s.Focus
	ymax := cam.Near * float32(math.Tan(float64(mgl32.DegToRad(cam.FOV)/2)))

	s.updateEye(s.Left, cam, -half, -ymax*aspect+onProjection, ymax*aspect+onProjection, ymax)
	s.updateEye(s.Right, cam, half, -ymax*aspect-onProjection, ymax*aspect-onProjection, ymax)
}

func (s *Camera) updateEye(eye, cam *scene.PerspectiveCamera, offset, xmin, xmax, ymax float32) {
	eye.FOV = cam.FOV
	eye.Aspect = cam.Aspect * s.Aspect
	eye.Near = cam.Near
	eye.Far = cam.Far
	eye.Projection = mgl32.Frustum(xmin, xmax, -ymax, ymax, cam.Near, cam.Far)

	eye.Matrix = cam.Matrix.Mul4(mgl32.Translate3D(offset, 0, 0))
	eye.Position = eye.Matrix.Col(3).Vec3()
	eye.Quaternion = cam.Quaternion
	eye.Scale = cam.Scale
}
