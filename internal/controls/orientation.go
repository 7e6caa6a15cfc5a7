package controls

import (
	"math"

	"cube-rain/internal/scene"
	"cube-rain/internal/sensor"

	"github.com/go-gl/mathgl/mgl32"
)

// OrientationControls aims the camera with the device's physical orientation.
type OrientationControls struct {
	Camera  *scene.PerspectiveCamera
	Enabled bool

	// AlphaOffset is added to alpha, in radians.
	AlphaOffset float64

	last sensor.Reading
	has  bool
}

func NewOrientationControls(cam *scene.PerspectiveCamera) *OrientationControls {
	return &OrientationControls{Camera: cam}
}

// Connect starts accepting readings.
func (c *OrientationControls) Connect() {
	c.Enabled = true
}

// Disconnect stops accepting readings; the camera keeps its last orientation.
func (c *OrientationControls) Disconnect() {
	c.Enabled = false
}

// OnReading records the latest device orientation.
func (c *OrientationControls) OnReading(r sensor.Reading) {
	if !c.Enabled {
		return
	}
	c.last = r
	c.has = true
}

// Update writes the latest orientation into the camera.
func (c *OrientationControls) Update() {
	if !c.Enabled || !c.has {
		return
	}
	alpha, beta, gamma := c.last.Angles()
	c.Camera.Quaternion = DeviceQuaternion(
		mgl32.DegToRad(float32(alpha))+float32(c.AlphaOffset),
		mgl32.DegToRad(float32(beta)),
		mgl32.DegToRad(float32(gamma)),
		mgl32.DegToRad(float32(c.last.ScreenOrientation)),
	)
}

// minusHalfPiX looks out the back of the device instead of its top.
var minusHalfPiX = mgl32.Quat{W: float32(math.Sqrt(0.5)), V: mgl32.Vec3{-float32(math.Sqrt(0.5)), 0, 0}}

// DeviceQuaternion converts device angles (radians, intrinsic Z-X-Y order) into a
// camera rotation for a screen rotated by orient.
func DeviceQuaternion(alpha, beta, gamma, orient float32) mgl32.Quat {
	q := mgl32.QuatRotate(alpha, mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(beta, mgl32.Vec3{1, 0, 0})).
		Mul(mgl32.QuatRotate(-gamma, mgl32.Vec3{0, 0, 1}))
	q = q.Mul(minusHalfPiX)
	q = q.Mul(mgl32.QuatRotate(-orient, mgl32.Vec3{0, 0, 1}))
	return q.Normalize()
}
