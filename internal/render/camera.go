package render

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera maps world coordinates into painter space: x to the right, y down
// the screen and z into the screen.
type Camera struct {
	view     mgl64.Mat4
	position mgl64.Vec3
}

// NewCamera builds a camera at position whose local -Z axis is the view
// direction after applying orientation.
func NewCamera(position mgl64.Vec3, orientation mgl64.Quat) *Camera {
	rot := orientation.Normalize().Conjugate().Mat4()
	trans := mgl64.Translate3D(-position.X(), -position.Y(), -position.Z())
	return &Camera{
		view:     rot.Mul4(trans),
		position: position,
	}
}

func NewCameraLookAt(camPos, lookAt mgl64.Vec3) *Camera {
	return &Camera{
		view:     mgl64.LookAtV(camPos, lookAt, mgl64.Vec3{0, 1, 0}),
		position: camPos,
	}
}

func (c *Camera) GetPosition() mgl64.Vec3 {
	return c.position
}

func (c *Camera) GetCameraMatrix() mgl64.Mat4 {
	return c.view
}

func (c *Camera) ToCameraSpace(p mgl64.Vec3) mgl64.Vec3 {
	v := c.view.Mul4x1(p.Vec4(1))
	return mgl64.Vec3{v[0], -v[1], -v[2]}
}

// RotateNormal rotates a world direction into painter space, ignoring the
// camera position.
func (c *Camera) RotateNormal(n mgl64.Vec3) mgl64.Vec3 {
	v := c.view.Mul4x1(n.Vec4(0))
	return mgl64.Vec3{v[0], -v[1], -v[2]}
}
