package catalog

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// DefaultPlaceholderSize bounds the longest side of a placeholder image.
const DefaultPlaceholderSize = 512

// TGA has no magic number, so decoders are picked by file extension rather
// than by sniffing.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".webp": webp.Decode,
	".bmp":  bmp.Decode,
	".tga":  tga.Decode,
}

// Supported reports whether path has an image extension DecodeImage knows.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// DecodeImage decodes a png, jpeg, gif, webp, bmp or tga file.
func DecodeImage(path string) (image.Image, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("catalog: %s: %w", path, ErrUnsupportedImage)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	return img, nil
}

// PlaceholderSize returns the size img is reduced to so that its longest
// side is at most maxSize. Images that already fit keep their size.
func PlaceholderSize(width, height, maxSize int) (int, int) {
	if width > height {
		if width > maxSize {
			height = int(math.Round(float64(height) * float64(maxSize) / float64(width)))
			width = maxSize
		}
	} else if height > maxSize {
		width = int(math.Round(float64(width) * float64(maxSize) / float64(height)))
		height = maxSize
	}
	return max(width, 1), max(height, 1)
}

// Downscale shrinks img so its longest side is at most maxSize, keeping the
// aspect ratio. It never upscales; an image that fits is returned as is.
func Downscale(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := PlaceholderSize(b.Dx(), b.Dy(), maxSize)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Aspect returns width/height of img, or 1 for an empty image.
func Aspect(img image.Image) float64 {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return 1
	}
	return float64(b.Dx()) / float64(b.Dy())
}
