package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultFieldOfView is the vertical field of view in degrees.
	DefaultFieldOfView = 75.0
	DefaultNear        = 0.1
)

// Viewport is the perspective projection from painter space onto a screen.
type Viewport struct {
	Width, Height float64
	Focal         float64
	Near          float64
}

func NewViewport(width, height int, fovDegrees float64) Viewport {
	if fovDegrees <= 0 || fovDegrees >= 180 {
		fovDegrees = DefaultFieldOfView
	}
	h := float64(height)
	return Viewport{
		Width:  float64(width),
		Height: h,
		Focal:  (h / 2) / math.Tan(mgl64.DegToRad(fovDegrees)/2),
		Near:   DefaultNear,
	}
}

func (v Viewport) ConvertToScreenX(x, z float64) float64 {
	return v.Focal*x/z + v.Width/2
}

func (v Viewport) ConvertToScreenY(y, z float64) float64 {
	return v.Focal*y/z + v.Height/2
}

// ConvertFromScreen is the inverse of ConvertToScreenX/Y at depth z.
func (v Viewport) ConvertFromScreen(screenX, screenY, z float64) (x, y float64) {
	x = (screenX - v.Width/2) * z / v.Focal
	y = (screenY - v.Height/2) * z / v.Focal
	return x, y
}
