// Package assets reads shader sources and decodes texture images from disk.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageLoadError reports a texture that could not be opened or decoded.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("load image %s: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// ReadShaderSource returns the contents of a GLSL source file.
func ReadShaderSource(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read shader file: %w", err)
	}
	return string(src), nil
}

// DecodeImage decodes the image at path into RGBA. PNG, JPEG, BMP, TIFF and
// WebP are recognised.
func DecodeImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba, nil
}

// DecodeImagePOT is DecodeImage followed by a nearest-neighbour resize up to
// the next power of two on each side, so mipmapping stays exact.
func DecodeImagePOT(path string) (*image.RGBA, error) {
	rgba, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ToPowerOfTwo(rgba), nil
}

// ToPowerOfTwo returns img unchanged when both sides are already powers of
// two, otherwise a scaled copy.
func ToPowerOfTwo(img *image.RGBA) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	pw, ph := NextPowerOfTwo(w), NextPowerOfTwo(h)
	if pw == w && ph == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
