package viewer

import (
	"context"
	"image"

	"github.com/charmbracelet/log"

	"github.com/smasonuk/walkthrough"
	"github.com/smasonuk/walkthrough/internal/catalog"
	"github.com/smasonuk/walkthrough/internal/scene"
	"github.com/smasonuk/walkthrough/internal/session"
)

// gallery is one loaded catalog with the engine and scene built from it.
type gallery struct {
	catalog *catalog.Catalog
	engine  *walkthrough.Engine
	scene   *scene.Scene
}

type loader struct {
	cfg       walkthrough.Config
	cache     *catalog.PlaceholderCache
	logger    *log.Logger
	sceneOpts []scene.Option
}

// load reads the catalog at path and lays out its gallery. Images that fail
// to load are logged and shown blank; only a bad catalog or a canceled ctx
// is an error.
func (l *loader) load(ctx context.Context, path string) (*gallery, error) {
	c, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}

	placeholders, err := catalog.LoadPlaceholders(ctx, c, l.cache)
	if placeholders == nil {
		return nil, err
	}
	if err != nil {
		l.logger.Warn("some placeholders failed to load", "err", err)
	}

	var intro image.Image
	if p := c.IntroPath(); p != "" {
		img, err := catalog.DecodeImage(p)
		if err != nil {
			l.logger.Warn("intro image failed to load", "path", p, "err", err)
		} else {
			intro = catalog.Downscale(img, scene.DetailMaxSize)
		}
	}

	sources := make([]scene.Source, c.Len())
	for i, item := range c.Items {
		sources[i] = scene.Source{Item: item, Placeholder: placeholders[i], DetailPath: c.ImagePath(i)}
	}

	opts := append([]scene.Option{scene.WithLogger(l.logger)}, l.sceneOpts...)
	sc := scene.New(sources, intro, opts...)
	eng := walkthrough.New(l.cfg, sc, walkthrough.WithLogger(l.logger))
	eng.Initialize(c.Len())
	sc.Build(eng.Room(), eng.Config().Layout)

	l.logger.Info("catalog loaded", "path", c.Path(), "title", c.Title, "items", c.Len())
	return &gallery{catalog: c, engine: eng, scene: sc}, nil
}

// resume puts the camera back where the last session on this catalog left
// it. Progress saved against a different item count still applies, clamped.
func (g *gallery) resume(store *session.Store, logger *log.Logger) {
	p, ok, err := store.Load(g.catalog.Path())
	if err != nil {
		logger.Warn("saved progress unreadable", "err", err)
		return
	}
	if !ok {
		return
	}
	if p.Exhibits != g.catalog.Len() {
		logger.Info("catalog changed since last visit", "was", p.Exhibits, "now", g.catalog.Len())
	}
	idx := g.engine.JumpTo(p.Waypoint, true)
	logger.Info("resumed", "waypoint", idx, "saved", p.SavedAt)
}

func (g *gallery) save(store *session.Store) error {
	return store.Save(session.Progress{
		Catalog:  g.catalog.Path(),
		Waypoint: g.engine.CurrentWaypointIndex(),
		Exhibits: g.catalog.Len(),
	})
}

// item returns the catalog entry the camera is on, if any.
func (g *gallery) item() (catalog.Item, bool) {
	wp := g.engine.CurrentTarget()
	if !wp.HasExhibit() {
		return catalog.Item{}, false
	}
	return g.catalog.Item(wp.Exhibit)
}
