// Package controls turns pointer drags and device orientation into camera motion.
package controls

import (
	"math"

	"cube-rain/internal/scene"
	"cube-rain/internal/sensor"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode names the active controller.
type Mode int

const (
	ModeOrbit Mode = iota
	ModeOrientation
)

func (m Mode) String() string {
	if m == ModeOrientation {
		return "orientation"
	}
	return "orbit"
}

// Selector holds exactly one active controller. It starts in orbit mode and
// switches to orientation mode on the first reading with a usable alpha. The
// switch never reverts.
type Selector struct {
	mode        Mode
	orbit       *OrbitControls
	orientation *OrientationControls
	camera      *scene.PerspectiveCamera

	// OnOrientation runs once, right after the switch.
	OnOrientation func()
}

// NewSelector sets up orbit control for cam: tilted up by 45 degrees around a
// target just in front of the camera, zoom and pan disabled.
func NewSelector(cam *scene.PerspectiveCamera) *Selector {
	orbit := NewOrbitControls(cam)
	orbit.RotateUp(math.Pi / 4)
	orbit.Target = cam.Position.Add(mgl32.Vec3{0.15, 0, 0})
	orbit.NoZoom = true
	orbit.NoPan = true

	return &Selector{
		mode:   ModeOrbit,
		orbit:  orbit,
		camera: cam,
	}
}

func (s *Selector) Mode() Mode {
	return s.mode
}

// Orbit returns the orbit controller; it stays allocated after the switch but is
// no longer advanced.
func (s *Selector) Orbit() *OrbitControls {
	return s.orbit
}

// Orientation returns the orientation controller, nil before the switch.
func (s *Selector) Orientation() *OrientationControls {
	return s.orientation
}

// Dispatch routes a device reading. It reports whether this reading caused the switch.
func (s *Selector) Dispatch(r sensor.Reading) bool {
	if s.mode == ModeOrientation {
		s.orientation.OnReading(r)
		return false
	}
	if !r.HasAlpha() {
		return false
	}

	s.orientation = NewOrientationControls(s.camera)
	s.orientation.Connect()
	s.orientation.OnReading(r)
	s.orientation.Update()
	s.mode = ModeOrientation

	if s.OnOrientation != nil {
		s.OnOrientation()
	}
	return true
}

// Drag forwards pointer drags to orbit control; ignored in orientation mode.
func (s *Selector) Drag(dx, dy float64, width, height int) {
	if s.mode == ModeOrbit {
		s.orbit.Drag(dx, dy, width, height)
	}
}

// Advance updates the active controller.
func (s *Selector) Advance(dt float64) {
	switch s.mode {
	case ModeOrbit:
		s.orbit.Update(dt)
	case ModeOrientation:
		s.orientation.Update()
	}
}
