package render

import (
	"github.com/go-gl/mathgl/mgl64"
)

// projected is a face after culling and clipping, ready to fill.
type projected struct {
	points []Point
	// mid and facing are in painter space and drive the shading.
	mid    mgl64.Vec3
	facing mgl64.Vec3
}

// projectFace culls faces turned away from the camera, clips the rest
// against the near plane and the screen, and projects them. ok is false
// when nothing is left to draw.
func projectFace(f *Face, cam *Camera, vp Viewport) (projected, bool) {
	if len(f.Points) < 3 {
		return projected{}, false
	}

	poly := make([][]float64, len(f.Points))
	var mid mgl64.Vec3
	for i, p := range f.Points {
		c := cam.ToCameraSpace(p)
		mid = mid.Add(c)
		var u, v float64
		if i < len(f.UV) {
			u, v = f.UV[i][0], f.UV[i][1]
		}
		poly[i] = []float64{c[0], c[1], c[2], u, v}
	}
	mid = mid.Mul(1 / float64(len(f.Points)))

	normal := cam.RotateNormal(f.Normal)
	if normal.Dot(mid) >= 0 {
		return projected{}, false
	}

	poly = clipPolygonAgainstNearPlane(poly, vp.Near)
	if len(poly) < 3 {
		return projected{}, false
	}

	points := make([]Point, len(poly))
	for i, p := range poly {
		points[i] = Point{
			X: float32(vp.ConvertToScreenX(p[0], p[2])),
			Y: float32(vp.ConvertToScreenY(p[1], p[2])),
			U: float32(p[3]),
			V: float32(p[4]),
		}
	}
	points = clipPolygon(points, float32(vp.Width), float32(vp.Height))
	if len(points) < 3 {
		return projected{}, false
	}

	return projected{points: points, mid: mid, facing: normal.Mul(-1)}, true
}
