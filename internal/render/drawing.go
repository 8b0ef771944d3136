package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

func fanIndices(n int) []uint16 {
	indices := make([]uint16, 0, (n-2)*3)
	for i := 2; i < n; i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}
	return indices
}

func fillConvexPolygon(screen *ebiten.Image, pts []Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX:   p.X,
			DstY:   p.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vertices, fanIndices(len(pts)), whitePixel(), op)
}

// drawTexturedPolygon maps tex onto the polygon through the points' U/V,
// scaling every channel by shade.
func drawTexturedPolygon(screen *ebiten.Image, pts []Point, tex *ebiten.Image, shade float32) {
	if len(pts) < 3 {
		return
	}
	b := tex.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	ox, oy := float32(b.Min.X), float32(b.Min.Y)

	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX:   p.X,
			DstY:   p.Y,
			SrcX:   ox + p.U*w,
			SrcY:   oy + p.V*h,
			ColorR: shade,
			ColorG: shade,
			ColorB: shade,
			ColorA: 1,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.Filter = ebiten.FilterLinear
	op.Address = ebiten.AddressClampToZero
	screen.DrawTriangles(vertices, fanIndices(len(pts)), tex, op)
}

// drawPolygonOutline strokes the closed outline of a polygon.
func drawPolygonOutline(screen *ebiten.Image, pts []Point, strokeWidth float32, clr color.RGBA) {
	if len(pts) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{
		Width: strokeWidth,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	// SrcX/SrcY of 1 samples the solid white pixel.
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	drawOp := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	}
	screen.DrawTriangles(vertices, indices, whitePixel(), drawOp)
}
