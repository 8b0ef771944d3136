package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoItems means the file has no items list at all, which usually
	// means it is not a catalog. An explicit empty list is valid.
	ErrNoItems          = errors.New("catalog: no items list")
	ErrUnsupportedImage = errors.New("catalog: unsupported image format")
)

// Item is one exhibit as listed in the catalog file.
type Item struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// Catalog is the ordered exhibit list. Item i becomes exhibit i.
type Catalog struct {
	Title string `yaml:"title"`
	Intro string `yaml:"intro"`
	Items []Item `yaml:"items"`

	path string
	dir  string
}

// Load reads a YAML catalog. Relative image paths are resolved against the
// catalog file's directory.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	c, err := Parse(data, filepath.Dir(abs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.path = abs
	return c, nil
}

// Parse decodes catalog YAML, resolving image paths against dir.
func Parse(data []byte, dir string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if c.Items == nil {
		return nil, ErrNoItems
	}
	c.dir = dir
	return &c, nil
}

func (c *Catalog) Path() string { return c.path }
func (c *Catalog) Len() int     { return len(c.Items) }

// Item returns item i and false when i is out of range.
func (c *Catalog) Item(i int) (Item, bool) {
	if i < 0 || i >= len(c.Items) {
		return Item{}, false
	}
	return c.Items[i], true
}

// ImagePath returns the resolved image path of item i, or "" when the item
// has none.
func (c *Catalog) ImagePath(i int) string {
	it, ok := c.Item(i)
	if !ok {
		return ""
	}
	return c.resolve(it.Image)
}

func (c *Catalog) IntroPath() string {
	return c.resolve(c.Intro)
}

func (c *Catalog) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.dir, p)
}
