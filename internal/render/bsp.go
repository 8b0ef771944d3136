package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Points closer to a plane than this count as lying on it.
const planeThickness = 1e-4

type plane struct {
	normal mgl64.Vec3
	d      float64
}

func planeOf(f *Face) plane {
	return plane{normal: f.Normal, d: -f.Normal.Dot(f.Points[0])}
}

// distance is the signed distance of v from the plane, positive on the side
// the normal points to.
func (p plane) distance(v mgl64.Vec3) float64 {
	n := p.normal.Dot(v) + p.d
	if math.Abs(n) < planeThickness {
		return 0
	}
	return n
}

type side int

const (
	sideCoplanar side = iota
	sideFront
	sideBack
	sideSpanning
)

func (p plane) classify(f *Face) side {
	var front, back bool
	for _, v := range f.Points {
		switch d := p.distance(v); {
		case d > 0:
			front = true
		case d < 0:
			back = true
		}
	}
	switch {
	case front && back:
		return sideSpanning
	case front:
		return sideFront
	case back:
		return sideBack
	}
	return sideCoplanar
}

// split cuts f in two along the plane. Points on the plane go to both
// halves; texture coordinates are interpolated at the cut.
func (p plane) split(f *Face) (front, back *Face) {
	hasUV := len(f.UV) == len(f.Points)
	var fp, bp []mgl64.Vec3
	var fuv, buv [][2]float64

	n := len(f.Points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := f.Points[i], f.Points[j]
		da, db := p.distance(a), p.distance(b)
		var uva, uvb [2]float64
		if hasUV {
			uva, uvb = f.UV[i], f.UV[j]
		}

		if da >= 0 {
			fp = append(fp, a)
			fuv = append(fuv, uva)
		}
		if da <= 0 {
			bp = append(bp, a)
			buv = append(buv, uva)
		}
		if (da > 0 && db < 0) || (da < 0 && db > 0) {
			t := da / (da - db)
			m := a.Add(b.Sub(a).Mul(t))
			uvm := [2]float64{uva[0] + (uvb[0]-uva[0])*t, uva[1] + (uvb[1]-uva[1])*t}
			fp = append(fp, m)
			fuv = append(fuv, uvm)
			bp = append(bp, m)
			buv = append(buv, uvm)
		}
	}

	front = &Face{Points: fp, Normal: f.Normal, Material: f.Material}
	back = &Face{Points: bp, Normal: f.Normal, Material: f.Material}
	if hasUV {
		front.UV, back.UV = fuv, buv
	}
	return front, back
}

// bspNode partitions the faces of one object so they can be painted back to
// front from any eye position without sorting. Faces lying in the node's
// plane are kept in insertion order.
type bspNode struct {
	plane       plane
	faces       []*Face
	front, back *bspNode
}

// buildBSP uses each remaining first face as the splitter, splitting faces
// that straddle it.
func buildBSP(faces []*Face) *bspNode {
	if len(faces) == 0 {
		return nil
	}
	n := &bspNode{plane: planeOf(faces[0]), faces: []*Face{faces[0]}}

	var front, back []*Face
	for _, f := range faces[1:] {
		switch n.plane.classify(f) {
		case sideCoplanar:
			n.faces = append(n.faces, f)
		case sideFront:
			front = append(front, f)
		case sideBack:
			back = append(back, f)
		default:
			ff, bf := n.plane.split(f)
			front = append(front, ff)
			back = append(back, bf)
		}
	}
	n.front = buildBSP(front)
	n.back = buildBSP(back)
	return n
}

// walk calls paint for every face, the side of each plane away from eye
// first.
func (n *bspNode) walk(eye mgl64.Vec3, paint func(*Face)) {
	if n == nil {
		return
	}
	near, far := n.front, n.back
	if n.plane.distance(eye) <= 0 {
		near, far = far, near
	}
	far.walk(eye, paint)
	for _, f := range n.faces {
		paint(f)
	}
	near.walk(eye, paint)
}

func (n *bspNode) count() int {
	if n == nil {
		return 0
	}
	return len(n.faces) + n.front.count() + n.back.count()
}
