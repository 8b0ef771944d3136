package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Frame dimensions in meters.
const (
	landscapeHeight = 2.2
	landscapeMaxW   = 4.5
	portraitHeight  = 2.8
	portraitMaxH    = 3.5

	FrameBorder = 0.15
	FrameDepth  = 0.1
	// ImageInset is how far the picture sits in front of the frame's centre
	// plane, just clear of its front face.
	ImageInset = 0.051

	PanelSize = 0.6
	panelGap  = 0.2
)

// FrameSize returns the picture size for an image of the given aspect
// ratio (width / height). Landscape images hang 2.2 m tall unless that makes
// them wider than 4.5 m; portrait images hang 2.8 m tall, at most 3.5 m.
func FrameSize(aspect float64) (width, height float64) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		aspect = 1
	}
	if aspect >= 1 {
		height = landscapeHeight
		width = height * aspect
		if width > landscapeMaxW {
			width = landscapeMaxW
			height = width / aspect
		}
		return width, height
	}

	height = portraitHeight
	width = height * aspect
	if height > portraitMaxH {
		height = portraitMaxH
		width = height * aspect
	}
	return width, height
}

// basis returns the front normal and right vector of an exhibit turned
// rotY about the vertical.
func basis(rotY float64) (normal, right mgl64.Vec3) {
	sin, cos := math.Sincos(rotY)
	return mgl64.Vec3{sin, 0, cos}, mgl64.Vec3{cos, 0, -sin}
}

// coverUV crops the texture so an image of imageAspect fills a plane of
// planeAspect without distortion, trimming the overflowing sides equally.
// The corners are in NewQuad order: bottom-left, bottom-right, top-right,
// top-left.
func coverUV(imageAspect, planeAspect float64) [][2]float64 {
	u0, u1, v0, v1 := 0.0, 1.0, 0.0, 1.0
	if imageAspect > 0 && planeAspect > 0 {
		if imageAspect > planeAspect {
			repeat := planeAspect / imageAspect
			u0 = (1 - repeat) / 2
			u1 = u0 + repeat
		} else {
			repeat := imageAspect / planeAspect
			v0 = (1 - repeat) / 2
			v1 = v0 + repeat
		}
	}
	return [][2]float64{{u0, v1}, {u1, v1}, {u1, v0}, {u0, v0}}
}
