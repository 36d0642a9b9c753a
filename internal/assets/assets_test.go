package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 16), G: 200, B: uint8(y * 16), A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestDecodeImage(t *testing.T) {
	path := writePNG(t, 16, 16)

	img, err := DecodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
	assert.Equal(t, color.RGBA{R: 16 * 3, G: 200, B: 16 * 2, A: 255}, img.RGBAAt(3, 2))
}

func TestDecodeImageErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.png")},
		{"not an image", garbage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeImage(tt.path)
			assert.Nil(t, img)

			var loadErr *ImageLoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.path, loadErr.Path)
			assert.Contains(t, err.Error(), tt.path)
		})
	}

	_, err := DecodeImage(filepath.Join(dir, "nope.png"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestToPowerOfTwo(t *testing.T) {
	img, err := DecodeImagePOT(writePNG(t, 12, 5))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())

	square, err := DecodeImage(writePNG(t, 16, 16))
	require.NoError(t, err)
	assert.Same(t, square, ToPowerOfTwo(square))
}

func TestNextPowerOfTwo(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 0: 1, 1: 1, 2: 2, 3: 4, 16: 16, 17: 32} {
		assert.Equal(t, want, NextPowerOfTwo(in), "n=%d", in)
	}
}

func TestReadShaderSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.vert")
	require.NoError(t, os.WriteFile(path, []byte("#version 410 core\n"), 0o644))

	src, err := ReadShaderSource(path)
	require.NoError(t, err)
	assert.Equal(t, "#version 410 core\n", src)

	_, err = ReadShaderSource(path + ".missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
