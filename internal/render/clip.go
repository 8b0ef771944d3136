package render

// Point is a projected vertex with its texture coordinates.
type Point struct {
	X, Y float32
	U, V float32
}

// intersectNearPlane returns where segment p1-p2 crosses z = near. Components
// after z (texture coordinates) are interpolated too. A segment parallel to
// the plane yields a copy of p1.
func intersectNearPlane(p1, p2 []float64, near float64) []float64 {
	out := make([]float64, len(p1))
	dz := p2[2] - p1[2]
	if dz == 0 {
		copy(out, p1)
		return out
	}
	t := (near - p1[2]) / dz
	for i := range out {
		out[i] = p1[i] + t*(p2[i]-p1[i])
	}
	out[2] = near
	return out
}

// clipPolygonAgainstNearPlane keeps the part of poly with z >= near.
func clipPolygonAgainstNearPlane(poly [][]float64, near float64) [][]float64 {
	if len(poly) == 0 {
		return nil
	}
	out := make([][]float64, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	prevIn := prev[2] >= near
	for _, cur := range poly {
		curIn := cur[2] >= near
		if curIn != prevIn {
			out = append(out, intersectNearPlane(prev, cur, near))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// clipPolygon clips a screen polygon to the rectangle (0,0)-(w+1,h+1).
func clipPolygon(points []Point, screenWidth, screenHeight float32) []Point {
	points = clipAgainst(points, 0, true, true)
	points = clipAgainst(points, float64(screenWidth)+1, true, false)
	points = clipAgainst(points, 0, false, true)
	points = clipAgainst(points, float64(screenHeight)+1, false, false)
	return points
}

func clipAgainst(points []Point, bound float64, onX, keepAbove bool) []Point {
	if len(points) == 0 {
		return points
	}
	inside := func(p Point) bool {
		c := float64(p.Y)
		if onX {
			c = float64(p.X)
		}
		if keepAbove {
			return c >= bound
		}
		return c <= bound
	}

	out := make([]Point, 0, len(points)+2)
	prev := points[len(points)-1]
	for _, cur := range points {
		if inside(cur) != inside(prev) {
			out = append(out, crossing(prev, cur, bound, onX))
		}
		if inside(cur) {
			out = append(out, cur)
		}
		prev = cur
	}
	return out
}

func crossing(a, b Point, bound float64, onX bool) Point {
	num, den := bound-float64(a.Y), float64(b.Y)-float64(a.Y)
	if onX {
		num, den = bound-float64(a.X), float64(b.X)-float64(a.X)
	}
	lerp := func(from, to float32) float32 {
		return float32(float64(from) + num*(float64(to)-float64(from))/den)
	}
	p := Point{X: lerp(a.X, b.X), Y: lerp(a.Y, b.Y), U: lerp(a.U, b.U), V: lerp(a.V, b.V)}
	if onX {
		p.X = float32(bound)
	} else {
		p.Y = float32(bound)
	}
	return p
}
