package scene

import (
	"github.com/smasonuk/walkthrough"
	"github.com/smasonuk/walkthrough/internal/catalog"
	"github.com/smasonuk/walkthrough/internal/render"
)

// Artwork is one framed exhibit. It starts with its placeholder texture
// and swaps in the full image after TriggerHighDetailLoad.
type Artwork struct {
	Index     int
	Item      catalog.Item
	Placement walkthrough.Placement
	Width     float64
	Height    float64

	scene        *Scene
	object       *render.Object
	picture      *render.Material
	detailPath   string
	requested    bool
	detailLoaded bool
}

func newArtwork(s *Scene, p walkthrough.Placement, src Source) *Artwork {
	aspect := 1.0
	picture := &render.Material{Color: blankColor}
	if src.Placeholder != nil {
		aspect = catalog.Aspect(src.Placeholder)
		picture = &render.Material{Texture: s.newTexture(src.Placeholder), Unlit: true}
	}
	w, h := FrameSize(aspect)

	a := &Artwork{
		Index:      p.Index,
		Item:       src.Item,
		Placement:  p,
		Width:      w,
		Height:     h,
		scene:      s,
		picture:    picture,
		detailPath: src.DetailPath,
	}

	normal, right := basis(p.RotY)
	c := p.Position
	a.object = render.NewObject(c,
		render.NewQuad(c.Add(normal.Mul(FrameDepth/2)), right, up, w+FrameBorder, h+FrameBorder,
			&render.Material{Color: frameColor}),
		render.NewQuad(c.Add(right.Mul(w/2+PanelSize/2+panelGap)).Add(up.Mul(-h/3)).Add(normal.Mul(FrameDepth/2)),
			right, up, PanelSize, PanelSize, &render.Material{Color: panelColor}),
	)
	a.object.AddFace(render.NewQuad(c.Add(normal.Mul(ImageInset)), right, up, w, h, picture).Subdivide(4, 4)...)
	return a
}

// TriggerHighDetailLoad starts loading the full image in the background.
// Only the first call does anything.
func (a *Artwork) TriggerHighDetailLoad() {
	if a.requested || a.detailPath == "" {
		return
	}
	a.requested = true
	a.scene.loadAsync(a)
}

func (a *Artwork) Requested() bool       { return a.requested }
func (a *Artwork) HasDetail() bool       { return a.detailLoaded }
func (a *Artwork) Object() *render.Object { return a.object }
