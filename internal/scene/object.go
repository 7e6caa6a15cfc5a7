package scene

import "github.com/go-gl/mathgl/mgl32"

// Object3D is a transform node. There is no hierarchy; Matrix is both local and world.
type Object3D struct {
	Position   mgl32.Vec3
	Quaternion mgl32.Quat
	Scale      mgl32.Vec3
	Matrix     mgl32.Mat4
}

func newObject3D() Object3D {
	return Object3D{
		Quaternion: mgl32.QuatIdent(),
		Scale:      mgl32.Vec3{1, 1, 1},
		Matrix:     mgl32.Ident4(),
	}
}

// Object returns the node itself so embedding types satisfy Node.
func (o *Object3D) Object() *Object3D {
	return o
}

// UpdateMatrix recomposes Matrix from position, rotation and scale.
func (o *Object3D) UpdateMatrix() {
	o.Matrix = mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2]).
		Mul4(o.Quaternion.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2]))
}

// LookAt rotates the object so its -Z axis points at target.
func (o *Object3D) LookAt(target mgl32.Vec3) {
	if target.Sub(o.Position).Len() < 1e-6 {
		return
	}
	up := mgl32.Vec3{0, 1, 0}
	dir := target.Sub(o.Position).Normalize()
	// Looking straight up or down: pick another up to keep the basis valid
	if abs32(dir.Dot(up)) > 0.9999 {
		up = mgl32.Vec3{0, 0, -1}
	}
	view := mgl32.LookAtV(o.Position, target, up)
	o.Quaternion = mgl32.Mat4ToQuat(view).Inverse().Normalize()
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
