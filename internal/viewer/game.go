// Package viewer runs a gallery walkthrough in an ebiten window.
package viewer

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/walkthrough"
	"github.com/smasonuk/walkthrough/internal/catalog"
	"github.com/smasonuk/walkthrough/internal/render"
	"github.com/smasonuk/walkthrough/internal/scene"
	"github.com/smasonuk/walkthrough/internal/session"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

type Options struct {
	CatalogPath string
	Config      walkthrough.Config

	// Cache holds downscaled placeholders between runs. nil decodes every
	// image on each load.
	Cache *catalog.PlaceholderCache
	// Store records progress. nil disables resume and saving.
	Store  *session.Store
	Resume bool

	// Watch reloads the gallery when the catalog file changes.
	Watch   bool
	Outline bool

	Width, Height int
	Logger        *log.Logger
}

type Game struct {
	ctx    context.Context
	opts   Options
	logger *log.Logger
	loader *loader

	gallery    *gallery
	ctl        controller
	reload     <-chan struct{}
	savedIndex int

	width, height int
}

// New loads the catalog and lays out the gallery. The game stops when ctx
// is done.
func New(ctx context.Context, opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}

	g := &Game{
		ctx:    ctx,
		opts:   opts,
		logger: opts.Logger,
		loader: &loader{cfg: opts.Config, cache: opts.Cache, logger: opts.Logger},
		width:  opts.Width,
		height: opts.Height,
	}

	gal, err := g.loader.load(ctx, opts.CatalogPath)
	if err != nil {
		return nil, err
	}
	if opts.Resume && opts.Store != nil {
		gal.resume(opts.Store, g.logger)
	}
	gal.scene.World.Outline = opts.Outline
	g.setGallery(gal)

	if opts.Watch {
		ch, err := watchFile(ctx, opts.CatalogPath, g.logger)
		if err != nil {
			g.logger.Warn("catalog will not be watched", "err", err)
		} else {
			g.reload = ch
		}
	}
	return g, nil
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, opts Options) error {
	g, err := New(ctx, opts)
	if err != nil {
		return err
	}
	title := g.gallery.catalog.Title
	if title == "" {
		title = "Gallery"
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(g)
	g.saveProgress(true)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) setGallery(gal *gallery) {
	g.gallery = gal
	g.ctl = controller{engine: gal.engine}
	g.savedIndex = gal.engine.CurrentWaypointIndex()
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	select {
	case <-g.reload:
		g.reloadCatalog()
	default:
	}

	g.handleInput()
	g.gallery.scene.Update()

	var dt float64
	if tps := ebiten.TPS(); tps > 0 {
		dt = 1 / float64(tps)
	}
	g.gallery.engine.Advance(dt)
	g.saveProgress(false)
	return nil
}

func (g *Game) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.ctl.next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.ctl.previous()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.ctl.openDetail()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.ctl.closeDetail()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.gallery.scene.World.Outline = !g.gallery.scene.World.Outline
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.ctl.click(x, y, g.width, g.height)
	}
}

// reloadCatalog swaps in a freshly loaded gallery, keeping the waypoint
// index where it still exists. A catalog that fails to load leaves the
// current gallery in place.
func (g *Game) reloadCatalog() {
	gal, err := g.loader.load(g.ctx, g.opts.CatalogPath)
	if err != nil {
		g.logger.Warn("catalog reload failed, keeping current gallery", "err", err)
		return
	}
	gal.engine.JumpTo(g.gallery.engine.CurrentWaypointIndex(), true)
	gal.scene.World.Outline = g.gallery.scene.World.Outline
	g.setGallery(gal)
}

func (g *Game) saveProgress(force bool) {
	if g.opts.Store == nil {
		return
	}
	idx := g.gallery.engine.CurrentWaypointIndex()
	if idx == g.savedIndex && !force {
		return
	}
	g.savedIndex = idx
	if err := g.gallery.save(g.opts.Store); err != nil {
		g.logger.Warn("progress not saved", "err", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(scene.Background)
	pose := g.gallery.engine.Pose()
	g.gallery.scene.World.PaintObjects(screen, render.NewCamera(pose.Position, pose.Orientation))

	eng := g.gallery.engine
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nFPS: %0.2f",
		hudText(eng.CurrentWaypointIndex(), eng.WaypointCount(), g.gallery.catalog.Title), ebiten.ActualFPS()))

	b := screen.Bounds()
	prev, next := navButtons(b.Dx(), b.Dy())
	if g.ctl.showPrevious() {
		drawNavButton(screen, prev.Min.X, prev.Min.Y, "<")
	}
	if g.ctl.showNext() {
		drawNavButton(screen, next.Min.X, next.Min.Y, ">")
	}

	if g.ctl.overlayOpen {
		if item, ok := g.gallery.item(); ok {
			drawOverlay(screen, item)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
