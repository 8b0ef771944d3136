package render

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Object is a group of faces sorted and painted together, such as one
// framed exhibit.
type Object struct {
	Position mgl64.Vec3
	Hidden   bool
	faces    *FaceStore
	tree     *bspNode
}

func NewObject(position mgl64.Vec3, faces ...*Face) *Object {
	o := &Object{Position: position, faces: NewFaceStore()}
	o.faces.AddFace(faces...)
	return o
}

func (o *Object) AddFace(f ...*Face) {
	o.faces.AddFace(f...)
	o.tree = nil
}

func (o *Object) Faces() *FaceStore {
	return o.faces
}

// paint calls paint for each face, back to front as seen from eye. The BSP
// tree is built on first use after the faces change.
func (o *Object) paint(eye mgl64.Vec3, paint func(*Face)) {
	if o.tree == nil {
		o.tree = buildBSP(o.faces.faces)
	}
	o.tree.walk(eye, paint)
}

// World paints its faces with the painter's algorithm. Draw-first faces
// (the inside of the room) never overlap each other from inside, so they
// are painted unsorted before the objects. Objects go farthest first, and
// the faces of each object in BSP order.
type World struct {
	drawFirst   []*Face
	objects     []*Object
	FieldOfView float64
	// Outline strokes every painted polygon.
	Outline bool
}

func NewWorld() *World {
	return &World{FieldOfView: DefaultFieldOfView}
}

func (w *World) AddObjectDrawFirst(f ...*Face) {
	w.drawFirst = append(w.drawFirst, f...)
}

func (w *World) AddObject(o *Object) {
	w.objects = append(w.objects, o)
}

func (w *World) ObjectCount() int {
	return len(w.objects)
}

// paintOrder returns object indices farthest from camPos first.
func (w *World) paintOrder(camPos mgl64.Vec3) []int {
	sortedIndices := make([]int, 0, len(w.objects))
	dist := make([]float64, len(w.objects))
	for i, o := range w.objects {
		if o.Hidden {
			continue
		}
		sortedIndices = append(sortedIndices, i)
		dist[i] = o.Position.Sub(camPos).Len()
	}
	sort.SliceStable(sortedIndices, func(i, j int) bool {
		return dist[sortedIndices[i]] > dist[sortedIndices[j]]
	})
	return sortedIndices
}

func (w *World) PaintObjects(screen *ebiten.Image, cam *Camera) {
	b := screen.Bounds()
	vp := NewViewport(b.Dx(), b.Dy(), w.FieldOfView)

	for _, f := range w.drawFirst {
		w.paintFace(screen, f, cam, vp)
	}
	eye := cam.GetPosition()
	for _, i := range w.paintOrder(eye) {
		w.objects[i].paint(eye, func(f *Face) {
			w.paintFace(screen, f, cam, vp)
		})
	}
}

var outlineColor = color.RGBA{R: 100, G: 100, B: 100, A: 20}

func (w *World) paintFace(screen *ebiten.Image, f *Face, cam *Camera, vp Viewport) {
	p, ok := projectFace(f, cam, vp)
	if !ok {
		return
	}
	m := f.Material
	if m == nil {
		m = &Material{Color: color.RGBA{R: 255, G: 0, B: 255, A: 255}}
	}

	switch {
	case m.Texture != nil && m.Unlit:
		drawTexturedPolygon(screen, p.points, m.Texture, 1)
	case m.Texture != nil:
		drawTexturedPolygon(screen, p.points, m.Texture, tint(p.mid, p.facing))
	case m.Unlit:
		fillConvexPolygon(screen, p.points, m.Color)
	default:
		fillConvexPolygon(screen, p.points, calcColor(m.Color, p.mid, p.facing))
	}

	if w.Outline {
		drawPolygonOutline(screen, p.points, 1.0, outlineColor)
	}
}
