package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smasonuk/walkthrough/internal/catalog"
	"github.com/smasonuk/walkthrough/internal/session"
	"github.com/smasonuk/walkthrough/internal/viewer"
)

type viewOptions struct {
	catalog  string
	config   string
	noResume bool
	noCache  bool
	watch    bool
	outline  bool
	width    int
	height   int
}

// viewCommand opens a catalog in the gallery window.
func (c *CLI) viewCommand() *cobra.Command {
	var opts viewOptions

	cmd := &cobra.Command{
		Use:   "view --catalog gallery.yaml",
		Short: "Open a catalog in the 3D gallery",
		Long: `Open a catalog in the 3D gallery.

Use the arrow keys (or A/D) or the on-screen buttons to step between
exhibits. Click an exhibit, or press Enter, to read about it; Escape closes
the panel. The last exhibit viewed is remembered per catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.catalog, "catalog", "c", "", "catalog file (YAML)")
	cmd.Flags().StringVar(&opts.config, "config", "", "layout config file (TOML)")
	cmd.Flags().BoolVar(&opts.noResume, "no-resume", false, "start at the intro instead of the last exhibit viewed")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "decode placeholders without the on-disk cache")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload the gallery when the catalog changes")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "outline every polygon")
	cmd.Flags().IntVar(&opts.width, "width", viewer.DefaultWidth, "window width")
	cmd.Flags().IntVar(&opts.height, "height", viewer.DefaultHeight, "window height")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

func (c *CLI) runView(ctx context.Context, opts viewOptions) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	store, err := session.Open(appName, c.Logger)
	if err != nil {
		c.Logger.Warn("progress will not be kept between runs", "err", err)
	}

	err = viewer.Run(ctx, viewer.Options{
		CatalogPath: opts.catalog,
		Config:      cfg,
		Cache:       c.newCache(opts.noCache),
		Store:       store,
		Resume:      !opts.noResume,
		Watch:       opts.watch,
		Outline:     opts.outline,
		Width:       opts.width,
		Height:      opts.height,
		Logger:      c.Logger,
	})
	if err != nil {
		return fmt.Errorf("view %s: %w", opts.catalog, err)
	}
	return nil
}

// newCache opens the placeholder cache. Any failure means running without
// one.
func (c *CLI) newCache(disabled bool) *catalog.PlaceholderCache {
	if disabled {
		return nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory", "err", err)
		return nil
	}
	cache, err := catalog.NewPlaceholderCache(dir, catalog.DefaultPlaceholderSize, c.Logger)
	if err != nil {
		c.Logger.Warn("placeholder cache disabled", "err", err)
		return nil
	}
	c.Logger.Debug("placeholder cache", "dir", cache.Dir())
	return cache
}
