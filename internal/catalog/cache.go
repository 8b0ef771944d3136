package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/charmbracelet/log"
	"golang.org/x/image/webp"
)

// PlaceholderCache keeps downscaled placeholders on disk as lossless WebP so
// later sessions skip decoding full-size images. A nil cache decodes and
// downscales on every call.
type PlaceholderCache struct {
	dir     string
	maxSize int
	logger  *log.Logger
}

func NewPlaceholderCache(dir string, maxSize int, logger *log.Logger) (*PlaceholderCache, error) {
	if maxSize <= 0 {
		maxSize = DefaultPlaceholderSize
	}
	if logger == nil {
		logger = log.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("catalog: cache dir %s: %w", dir, err)
	}
	return &PlaceholderCache{dir: dir, maxSize: maxSize, logger: logger}, nil
}

func (c *PlaceholderCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// hashKey identifies a placeholder by the source file's path, size and
// modification time, so an edited image gets a fresh entry.
func hashKey(parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (c *PlaceholderCache) entryPath(src string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("catalog: stat %s: %w", src, err)
	}
	abs, err := filepath.Abs(src)
	if err != nil {
		abs = src
	}
	key := hashKey(abs, info.Size(), info.ModTime().UnixNano(), c.maxSize)
	return filepath.Join(c.dir, key+".webp"), nil
}

// Load returns the placeholder for the image at src.
func (c *PlaceholderCache) Load(src string) (image.Image, error) {
	if c == nil {
		img, err := DecodeImage(src)
		if err != nil {
			return nil, err
		}
		return Downscale(img, DefaultPlaceholderSize), nil
	}

	entry, err := c.entryPath(src)
	if err != nil {
		return nil, err
	}
	img, err := readWebP(entry)
	if err == nil {
		return img, nil
	}
	if !os.IsNotExist(err) {
		c.logger.Warn("placeholder cache entry unreadable", "path", entry, "err", err)
	}

	img, err = DecodeImage(src)
	if err != nil {
		return nil, err
	}
	img = Downscale(img, c.maxSize)
	if err := writeWebP(entry, img); err != nil {
		c.logger.Warn("placeholder cache write failed", "path", entry, "err", err)
	}
	return img, nil
}

func readWebP(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return webp.Decode(f)
}

// writeWebP writes through a temp file so a crash never leaves a truncated
// entry behind.
func writeWebP(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".placeholder-*")
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(tmp, img, nil); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("WebP encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
