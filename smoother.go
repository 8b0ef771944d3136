package walkthrough

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraPose is the camera's actual transform, as opposed to the fixed
// transform of the waypoint it is heading for.
type CameraPose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

func PoseOf(w Waypoint) CameraPose {
	return CameraPose{Position: w.Position, Orientation: w.Orientation}
}

func (p CameraPose) Forward() mgl64.Vec3 {
	return Forward(p.Orientation)
}

// Smoother eases a pose toward a waypoint with a per-frame exponential
// filter, and snaps once the remaining distance and angle are both inside
// tolerance so the pose ends exactly on the target.
type Smoother struct {
	factor   float64
	distTol  float64
	angleTol float64
	rate     float64
}

func NewSmoother(cfg SmoothingConfig) *Smoother {
	return &Smoother{
		factor:   cfg.Factor,
		distTol:  cfg.DistanceTolerance,
		angleTol: cfg.AngleTolerance,
		rate:     cfg.ReferenceRate,
	}
}

// Step moves pose one frame of dt seconds toward target and reports whether
// the pose now equals the target.
func (s *Smoother) Step(pose *CameraPose, target Waypoint, dt float64) bool {
	dist := pose.Position.Sub(target.Position).Len()
	angle := AngleBetween(pose.Orientation, target.Orientation)

	if dist < s.distTol && angle < s.angleTol {
		pose.Position = target.Position
		pose.Orientation = target.Orientation
		return true
	}

	alpha := s.alpha(dt)
	pose.Position = pose.Position.Add(target.Position.Sub(pose.Position).Mul(alpha))
	pose.Orientation = slerpShortest(pose.Orientation, target.Orientation, alpha)
	return false
}

// alpha is the fraction of the remaining distance covered in dt. At the
// reference rate it is exactly the configured factor.
func (s *Smoother) alpha(dt float64) float64 {
	if dt <= 0 {
		return s.factor
	}
	return 1 - math.Pow(1-s.factor, dt*s.rate)
}

// Remaining returns the distance and angle still to cover.
func (s *Smoother) Remaining(pose CameraPose, target Waypoint) (dist, angle float64) {
	return pose.Position.Sub(target.Position).Len(), AngleBetween(pose.Orientation, target.Orientation)
}

// AngleBetween is the angle of the shortest rotation taking a to b.
func AngleBetween(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Normalize().Dot(b.Normalize()))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

func slerpShortest(from, to mgl64.Quat, amount float64) mgl64.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatSlerp(from, to, amount).Normalize()
}
