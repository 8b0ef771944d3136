package catalog

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, testImage(w, h)))
}

func TestDecodeImage(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "a.PNG")
	writePNG(t, pngPath, 40, 20)
	img, err := DecodeImage(pngPath)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(40, 20), img.Bounds().Size())

	bmpPath := filepath.Join(dir, "b.bmp")
	f, err := os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, testImage(8, 16)))
	require.NoError(t, f.Close())
	img, err = DecodeImage(bmpPath)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 16), img.Bounds().Size())
}

func TestDecodeImageErrors(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hello"), 0o644))
	_, err := DecodeImage(txt)
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	corrupt := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a png"), 0o644))
	_, err = DecodeImage(corrupt)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedImage)

	_, err = DecodeImage(filepath.Join(dir, "missing.jpg"))
	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	for _, p := range []string{"a.png", "b.JPG", "c.jpeg", "d.gif", "e.webp", "f.bmp", "g.tga"} {
		assert.True(t, Supported(p), p)
	}
	assert.False(t, Supported("h.tiff"))
	assert.False(t, Supported("noext"))
}

func TestPlaceholderSize(t *testing.T) {
	testCases := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
	}{
		{"landscape", 2048, 1024, 512, 512, 256},
		{"portrait", 1000, 3000, 512, 171, 512},
		{"square", 1024, 1024, 512, 512, 512},
		{"already small", 300, 200, 512, 300, 200},
		{"exactly max", 512, 100, 512, 512, 100},
		{"thin strip", 5000, 2, 512, 512, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := PlaceholderSize(tc.w, tc.h, tc.max)
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
		})
	}
}

func TestDownscale(t *testing.T) {
	src := testImage(100, 50)
	small := Downscale(src, 40)
	assert.Equal(t, image.Pt(40, 20), small.Bounds().Size())

	same := Downscale(src, 512)
	assert.Same(t, src, same)

	assert.InDelta(t, 2.0, Aspect(small), 1e-9)
	assert.Equal(t, 1.0, Aspect(image.NewNRGBA(image.Rect(0, 0, 0, 0))))
}
