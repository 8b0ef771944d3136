package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// The minimum brightness for any surface.
	ambientLight = 0.65
	// Higher values create a sharper, more focused spotlight cone.
	spotlightConePower   = 10.0
	spotlightLightAmount = 1.0 - ambientLight
	minChannel           = 7
)

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// brightness lights a surface with a spotlight carried by the camera.
// point is in painter space; facing is the face normal turned away from
// the viewer, so a head-on face has facing = (0, 0, 1).
func brightness(point, facing mgl64.Vec3) float64 {
	diffuseFactor := facing.Z()
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}

	spotlightFactor := 1.0
	if l := point.Len(); l > 0 {
		cosAngle := point.Z() / l
		if cosAngle < 0 {
			cosAngle = 0
		}
		spotlightFactor = math.Pow(cosAngle, spotlightConePower)
	}

	return ambientLight + diffuseFactor*spotlightFactor*spotlightLightAmount
}

// darkening is how much is taken off each channel: 0 at full brightness,
// 240 in the dark.
func darkening(b float64) int {
	return 240 - int(b*240)
}

func calcColor(base color.RGBA, point, facing mgl64.Vec3) color.RGBA {
	c := darkening(brightness(point, facing))
	return color.RGBA{
		R: uint8(clamp(int(base.R)-c, minChannel, 255)),
		G: uint8(clamp(int(base.G)-c, minChannel, 255)),
		B: uint8(clamp(int(base.B)-c, minChannel, 255)),
		A: base.A,
	}
}

// tint is the per-channel scale that lights a texture the way calcColor
// lights a white surface.
func tint(point, facing mgl64.Vec3) float32 {
	return float32(clamp(255-darkening(brightness(point, facing)), minChannel, 255)) / 255
}
