package controls

import (
	"math"

	"cube-rain/internal/config"
	"cube-rain/internal/scene"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	polarEpsilon  = 1e-6
	settleEpsilon = 1e-7
)

// OrbitControls rotates the camera around Target on a sphere. Dragging across the
// full surface width turns the camera by 2*pi*RotateSpeed.
type OrbitControls struct {
	Camera *scene.PerspectiveCamera
	Target mgl32.Vec3

	NoZoom      bool
	NoPan       bool
	RotateSpeed float32
	ZoomSpeed   float32

	MinPolarAngle float64
	MaxPolarAngle float64

	// Damping keeps rotating after a drag and eases the angular velocity to zero.
	Damping bool

	thetaDelta float64
	phiDelta   float64
	scale      float64
	pan        mgl32.Vec3

	// Damped rotation: the spring walks pos toward goal, and each frame applies
	// only the distance pos moved, so the total turn equals the requested one.
	thetaGoal, thetaPos, thetaVel float64
	phiGoal, phiPos, phiVel       float64
	spring                        harmonica.Spring
}

func NewOrbitControls(cam *scene.PerspectiveCamera) *OrbitControls {
	return &OrbitControls{
		Camera:        cam,
		RotateSpeed:   config.GetOrbitRotateSpeed(),
		ZoomSpeed:     1,
		MinPolarAngle: 0,
		MaxPolarAngle: math.Pi,
		Damping:       config.GetOrbitDamping(),
		scale:         1,
		// Frequency 6, critically damped: momentum fades in well under a second
		spring: harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0),
	}
}

// RotateLeft turns the camera around the vertical axis through Target.
func (o *OrbitControls) RotateLeft(angle float64) {
	o.thetaDelta -= angle
}

// RotateUp tilts the camera over Target.
func (o *OrbitControls) RotateUp(angle float64) {
	o.phiDelta -= angle
}

// Drag applies a pointer move of (dx,dy) pixels on a width x height surface.
func (o *OrbitControls) Drag(dx, dy float64, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	speed := float64(o.RotateSpeed)
	o.RotateLeft(2 * math.Pi * dx / float64(width) * speed)
	o.RotateUp(2 * math.Pi * dy / float64(height) * speed)
}

// Zoom scales the orbit radius; positive delta moves closer. Ignored with NoZoom.
func (o *OrbitControls) Zoom(delta float64) {
	if o.NoZoom || delta == 0 {
		return
	}
	factor := math.Pow(0.95, float64(o.ZoomSpeed)*math.Abs(delta))
	if delta > 0 {
		o.scale *= factor
	} else {
		o.scale /= factor
	}
}

// Pan shifts camera and target along the camera's right/up axes. Ignored with NoPan.
func (o *OrbitControls) Pan(dx, dy float32) {
	if o.NoPan {
		return
	}
	right := o.Camera.Quaternion.Rotate(mgl32.Vec3{1, 0, 0})
	up := o.Camera.Quaternion.Rotate(mgl32.Vec3{0, 1, 0})
	o.pan = o.pan.Add(right.Mul(-dx)).Add(up.Mul(dy))
}

// Update applies pending rotation and points the camera at Target.
func (o *OrbitControls) Update(dt float64) {
	offset := o.Camera.Position.Sub(o.Target)
	x, y, z := float64(offset[0]), float64(offset[1]), float64(offset[2])

	theta := math.Atan2(x, z)
	phi := math.Atan2(math.Sqrt(x*x+z*z), y)

	if o.Damping {
		theta += o.dampedStep(&o.thetaGoal, &o.thetaPos, &o.thetaVel, o.thetaDelta)
		phi += o.dampedStep(&o.phiGoal, &o.phiPos, &o.phiVel, o.phiDelta)
	} else {
		theta += o.thetaDelta
		phi += o.phiDelta
	}

	phi = max(o.MinPolarAngle, min(o.MaxPolarAngle, phi))
	phi = max(polarEpsilon, min(math.Pi-polarEpsilon, phi))

	radius := math.Sqrt(x*x+y*y+z*z) * o.scale

	o.Target = o.Target.Add(o.pan)

	offset = mgl32.Vec3{
		float32(radius * math.Sin(phi) * math.Sin(theta)),
		float32(radius * math.Cos(phi)),
		float32(radius * math.Sin(phi) * math.Cos(theta)),
	}
	o.Camera.Position = o.Target.Add(offset)
	o.Camera.LookAt(o.Target)

	o.thetaDelta = 0
	o.phiDelta = 0
	o.scale = 1
	o.pan = mgl32.Vec3{}
}

// dampedStep adds delta to goal, advances the spring one frame and returns how far
// pos moved. Once settled the remainder is applied and the state resets.
func (o *OrbitControls) dampedStep(goal, pos, vel *float64, delta float64) float64 {
	*goal += delta
	next, v := o.spring.Update(*pos, *vel, *goal)
	if math.Abs(*goal-next) < settleEpsilon && math.Abs(v) < settleEpsilon {
		step := *goal - *pos
		*goal, *pos, *vel = 0, 0, 0
		return step
	}
	step := next - *pos
	*pos, *vel = next, v
	return step
}
