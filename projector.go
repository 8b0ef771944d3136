package walkthrough

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	upAxis      = mgl64.Vec3{0, 1, 0}
	forwardAxis = mgl64.Vec3{0, 0, -1}
)

// Placement is where one exhibit hangs. Position.Y is the eye height.
type Placement struct {
	Index    int
	Wall     WallID
	Position mgl64.Vec3
	RotY     float64
}

// Project places exhibit index at offset along wall and derives the waypoint
// that views it from ViewingDistance along the wall normal.
func Project(index int, wall WallSpec, offset float64, cfg LayoutConfig) (Placement, Waypoint) {
	x, z := wall.PointAt(offset)
	p := Placement{
		Index:    index,
		Wall:     wall.ID,
		Position: mgl64.Vec3{x, cfg.EyeHeight, z},
		RotY:     wall.RotY,
	}

	eye := p.Position.Add(wall.Normal.Mul(cfg.ViewingDistance))
	eye[1] = cfg.EyeHeight

	return p, Waypoint{
		Position:    eye,
		Orientation: ViewOrientation(eye, p.Position),
		Exhibit:     index,
	}
}

// IntroWaypoint looks at the front face of the alcove at the room centre.
func IntroWaypoint(cfg LayoutConfig) Waypoint {
	eye := mgl64.Vec3{0, cfg.EyeHeight, cfg.IntroDistance}
	target := IntroTarget(cfg)
	return Waypoint{
		Position:    eye,
		Orientation: ViewOrientation(eye, target),
		Exhibit:     NoExhibit,
	}
}

func IntroTarget(cfg LayoutConfig) mgl64.Vec3 {
	return mgl64.Vec3{0, cfg.EyeHeight, cfg.AlcoveDepth/2 + 0.01}
}

// ViewOrientation orients an object at eye so its +Z axis points at target,
// then turns it half a revolution about the vertical. The camera looks down
// its -Z axis, so the result faces the target. Every waypoint goes through
// here; the half turn must not be repeated anywhere else.
func ViewOrientation(eye, target mgl64.Vec3) mgl64.Quat {
	return lookRotation(eye, target, upAxis).Mul(mgl64.QuatRotate(math.Pi, upAxis)).Normalize()
}

func lookRotation(eye, target, up mgl64.Vec3) mgl64.Quat {
	z := target.Sub(eye)
	if z.Len() == 0 {
		z = mgl64.Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Len() < 1e-9 {
		if math.Abs(up.Z()) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize()
}

// Forward is the direction a camera with orientation q looks along.
func Forward(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(forwardAxis)
}
