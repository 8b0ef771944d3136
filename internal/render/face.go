package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Material is shared by the faces of one surface. Swapping Texture changes
// every face that uses it on the next paint.
type Material struct {
	Color   color.RGBA
	Texture *ebiten.Image
	// Unlit materials skip the spotlight shading.
	Unlit bool
}

// Face is a convex planar polygon in world space. Points wind
// counter-clockwise when seen from the front.
type Face struct {
	Points   []mgl64.Vec3
	UV       [][2]float64
	Normal   mgl64.Vec3
	Material *Material
}

func NewFace(points []mgl64.Vec3, m *Material) *Face {
	f := &Face{Points: points, Material: m}
	f.createNormal()
	return f
}

// NewQuad returns a width x height rectangle centred on center, facing
// right x up. UV (0,0) is the top-left corner.
func NewQuad(center, right, up mgl64.Vec3, width, height float64, m *Material) *Face {
	r := right.Normalize().Mul(width / 2)
	u := up.Normalize().Mul(height / 2)
	f := NewFace([]mgl64.Vec3{
		center.Sub(r).Sub(u),
		center.Add(r).Sub(u),
		center.Add(r).Add(u),
		center.Sub(r).Add(u),
	}, m)
	f.UV = [][2]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	return f
}

func (f *Face) createNormal() {
	if len(f.Points) < 3 {
		f.Normal = mgl64.Vec3{0, 0, 1}
		return
	}
	u := f.Points[1].Sub(f.Points[0])
	v := f.Points[2].Sub(f.Points[1])
	f.Normal = u.Cross(v).Normalize()
}

// GetMidPoint returns the average of the face's points.
func (f *Face) GetMidPoint() mgl64.Vec3 {
	if len(f.Points) == 0 {
		return mgl64.Vec3{}
	}
	var sum mgl64.Vec3
	for _, p := range f.Points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(f.Points)))
}

func (f *Face) GetDistanceToPoint(p mgl64.Vec3) float64 {
	return f.GetMidPoint().Sub(p).Len()
}

// Subdivide splits a quad into cols x rows smaller quads sharing its
// material. Textures are mapped affinely per triangle, so splitting a large
// textured quad keeps the image from warping under perspective. Faces that
// are not quads are returned unchanged.
func (f *Face) Subdivide(cols, rows int) []*Face {
	if len(f.Points) != 4 || cols < 1 || rows < 1 || (cols == 1 && rows == 1) {
		return []*Face{f}
	}
	uv := f.UV
	if len(uv) != 4 {
		uv = [][2]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	}

	at := func(s, t float64) (mgl64.Vec3, [2]float64) {
		bottom := f.Points[0].Add(f.Points[1].Sub(f.Points[0]).Mul(s))
		top := f.Points[3].Add(f.Points[2].Sub(f.Points[3]).Mul(s))
		p := bottom.Add(top.Sub(bottom).Mul(t))

		ub := lerp2(uv[0], uv[1], s)
		ut := lerp2(uv[3], uv[2], s)
		return p, lerp2(ub, ut, t)
	}

	out := make([]*Face, 0, cols*rows)
	for j := 0; j < rows; j++ {
		t0, t1 := float64(j)/float64(rows), float64(j+1)/float64(rows)
		for i := 0; i < cols; i++ {
			s0, s1 := float64(i)/float64(cols), float64(i+1)/float64(cols)
			p0, uv0 := at(s0, t0)
			p1, uv1 := at(s1, t0)
			p2, uv2 := at(s1, t1)
			p3, uv3 := at(s0, t1)
			out = append(out, &Face{
				Points:   []mgl64.Vec3{p0, p1, p2, p3},
				UV:       [][2]float64{uv0, uv1, uv2, uv3},
				Normal:   f.Normal,
				Material: f.Material,
			})
		}
	}
	return out
}

func lerp2(a, b [2]float64, t float64) [2]float64 {
	return [2]float64{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}
