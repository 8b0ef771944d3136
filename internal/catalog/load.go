package catalog

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LoadPlaceholders loads the placeholder of every catalog item in parallel.
// Items without an image, or whose image fails to load, get a nil entry;
// their errors are joined into the returned error and the rest still load.
// Only cancellation of ctx aborts the whole load.
func LoadPlaceholders(ctx context.Context, c *Catalog, cache *PlaceholderCache) ([]image.Image, error) {
	images := make([]image.Image, c.Len())
	errs := make([]error, c.Len())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range c.Items {
		path := c.ImagePath(i)
		if path == "" {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := cache.Load(path)
			if err != nil {
				errs[i] = fmt.Errorf("item %d: %w", i, err)
				return nil
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, errors.Join(errs...)
}
