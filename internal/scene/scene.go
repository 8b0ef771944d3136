package scene

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/walkthrough"
	"github.com/smasonuk/walkthrough/internal/catalog"
	"github.com/smasonuk/walkthrough/internal/render"
)

// DetailMaxSize bounds the longest side of a high-detail texture.
const DetailMaxSize = 4096

const (
	alcoveWidth  = 3.5
	alcoveHeight = 4.0
)

var (
	Background   = color.RGBA{R: 0xFF, G: 0xF8, B: 0xE1, A: 255}
	wallColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	floorColor   = color.RGBA{R: 139, G: 94, B: 60, A: 255}
	ceilingColor = color.RGBA{R: 245, G: 245, B: 240, A: 255}
	frameColor   = color.RGBA{R: 0x5c, G: 0x3a, B: 0x21, A: 255}
	panelColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	blankColor   = color.RGBA{R: 210, G: 210, B: 205, A: 255}
)

var up = mgl64.Vec3{0, 1, 0}

// Source is what the scene knows about one exhibit before it is placed.
type Source struct {
	Item catalog.Item
	// Placeholder is shown until the high-detail image arrives. It may be
	// nil, in which case the picture is a blank canvas.
	Placeholder image.Image
	DetailPath  string
}

type Option func(*Scene)

func WithLogger(l *log.Logger) Option {
	return func(s *Scene) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTextureFunc replaces ebiten.NewImageFromImage for turning decoded
// images into textures.
func WithTextureFunc(f func(image.Image) *ebiten.Image) Option {
	return func(s *Scene) { s.newTexture = f }
}

// WithDetailLoader replaces catalog.DecodeImage for high-detail loads.
func WithDetailLoader(f func(path string) (image.Image, error)) Option {
	return func(s *Scene) { s.loadDetail = f }
}

type detailResult struct {
	art *Artwork
	img image.Image
	err error
}

// Scene builds the gallery geometry and owns the exhibits. It is the
// engine's ExhibitFactory. Everything except the detail loads runs on the
// frame goroutine; loads finish in the background and are applied by
// Update.
type Scene struct {
	World *render.World

	sources  []Source
	intro    image.Image
	artworks []*Artwork
	logger   *log.Logger

	newTexture func(image.Image) *ebiten.Image
	loadDetail func(path string) (image.Image, error)

	mu      sync.Mutex
	done    []detailResult
	pending sync.WaitGroup
}

// New returns a scene for the given exhibits. intro, if not nil, covers the
// front of the central alcove.
func New(sources []Source, intro image.Image, opts ...Option) *Scene {
	s := &Scene{
		World:      render.NewWorld(),
		sources:    sources,
		intro:      intro,
		logger:     log.Default(),
		newTexture: func(img image.Image) *ebiten.Image { return ebiten.NewImageFromImage(img) },
		loadDetail: catalog.DecodeImage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceExhibit hangs exhibit p.Index. Placements arrive in index order;
// placing an index again starts a new layout from that index on.
func (s *Scene) PlaceExhibit(p walkthrough.Placement) walkthrough.ExhibitHandle {
	if p.Index < len(s.artworks) {
		s.artworks = s.artworks[:p.Index]
	}
	var src Source
	if p.Index >= 0 && p.Index < len(s.sources) {
		src = s.sources[p.Index]
	}
	a := newArtwork(s, p, src)
	s.artworks = append(s.artworks, a)
	return a
}

func (s *Scene) Artworks() []*Artwork {
	return s.artworks
}

// Build rebuilds the world for room: the room shell, the intro alcove and
// every placed exhibit.
func (s *Scene) Build(room walkthrough.RoomDimensions, cfg walkthrough.LayoutConfig) {
	outline := s.World.Outline
	s.World = render.NewWorld()
	s.World.Outline = outline

	s.World.AddObjectDrawFirst(shell(room)...)
	s.World.AddObject(s.alcove(cfg.AlcoveDepth))
	for _, a := range s.artworks {
		s.World.AddObject(a.object)
	}
	s.logger.Debug("scene built", "exhibits", len(s.artworks), "objects", s.World.ObjectCount())
}

func shell(room walkthrough.RoomDimensions) []*render.Face {
	w, l, h := room.Width, room.Length, room.WallHeight
	hw, hl := room.HalfWidth(), room.HalfLength()

	walls := &render.Material{Color: wallColor}
	var faces []*render.Face
	faces = append(faces, render.NewQuad(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}, w, l,
		&render.Material{Color: floorColor}).Subdivide(8, 8)...)
	faces = append(faces, render.NewQuad(mgl64.Vec3{0, h, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}, w, l,
		&render.Material{Color: ceilingColor}).Subdivide(4, 4)...)

	for _, wall := range []struct {
		center mgl64.Vec3
		rotY   float64
		length float64
	}{
		{mgl64.Vec3{0, h / 2, -hl}, 0, w},
		{mgl64.Vec3{0, h / 2, hl}, math.Pi, w},
		{mgl64.Vec3{-hw, h / 2, 0}, math.Pi / 2, l},
		{mgl64.Vec3{hw, h / 2, 0}, -math.Pi / 2, l},
	} {
		_, right := basis(wall.rotY)
		faces = append(faces, render.NewQuad(wall.center, right, up, wall.length, h, walls).Subdivide(8, 2)...)
	}
	return faces
}

// alcove is the free-standing wall at the room centre that the intro
// waypoint faces, with the intro image on its front.
func (s *Scene) alcove(depth float64) *render.Object {
	center := mgl64.Vec3{0, alcoveHeight / 2, 0}
	obj := render.NewObject(center)
	mat := &render.Material{Color: wallColor}

	hw, hh, hd := alcoveWidth/2, alcoveHeight/2, depth/2
	obj.AddFace(
		render.NewQuad(center.Add(mgl64.Vec3{0, 0, hd}), mgl64.Vec3{1, 0, 0}, up, alcoveWidth, alcoveHeight, mat),
		render.NewQuad(center.Add(mgl64.Vec3{0, 0, -hd}), mgl64.Vec3{-1, 0, 0}, up, alcoveWidth, alcoveHeight, mat),
		render.NewQuad(center.Add(mgl64.Vec3{-hw, 0, 0}), mgl64.Vec3{0, 0, -1}, up, depth, alcoveHeight, mat),
		render.NewQuad(center.Add(mgl64.Vec3{hw, 0, 0}), mgl64.Vec3{0, 0, 1}, up, depth, alcoveHeight, mat),
		render.NewQuad(center.Add(mgl64.Vec3{0, hh, 0}), mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}, alcoveWidth, depth, mat),
	)

	if s.intro == nil {
		return obj
	}
	front := &render.Material{Texture: s.newTexture(s.intro), Unlit: true}
	img := render.NewQuad(mgl64.Vec3{0, alcoveHeight / 2, hd + 0.01}, mgl64.Vec3{1, 0, 0}, up, alcoveWidth, alcoveHeight, front)
	img.UV = coverUV(catalog.Aspect(s.intro), alcoveWidth/alcoveHeight)
	obj.AddFace(img.Subdivide(4, 4)...)
	return obj
}

// Update applies finished high-detail loads. Call it once per frame from
// the goroutine that draws.
func (s *Scene) Update() {
	s.mu.Lock()
	done := s.done
	s.done = nil
	s.mu.Unlock()

	for _, r := range done {
		if r.err != nil {
			s.logger.Warn("high detail load failed, keeping placeholder",
				"exhibit", r.art.Index, "path", r.art.detailPath, "err", r.err)
			continue
		}
		r.art.picture.Texture = s.newTexture(r.img)
		r.art.detailLoaded = true
		s.logger.Debug("high detail ready", "exhibit", r.art.Index)
	}
}

// Wait blocks until every started detail load has finished. The results
// still need an Update to show.
func (s *Scene) Wait() {
	s.pending.Wait()
}

func (s *Scene) loadAsync(a *Artwork) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		img, err := s.loadDetail(a.detailPath)
		if err == nil {
			img = catalog.Downscale(img, DetailMaxSize)
		}
		s.mu.Lock()
		s.done = append(s.done, detailResult{art: a, img: img, err: err})
		s.mu.Unlock()
	}()
}
