// Package imageio decodes and encodes screenshot files at the boundary of
// the comparison core. The core itself only reads raw RGBA pixels; this
// package turns image files into uilens.Bitmap values and back, and scales
// renders so the two sides of a pixel comparison have equal dimensions.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/uilens/uilens"
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// LoadPNG loads a PNG file into a bitmap.
func LoadPNG(path string) (*uilens.Bitmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a PNG stream into a bitmap.
func Decode(r io.Reader) (*uilens.Bitmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode png: %w", err)
	}
	return uilens.FromImage(img), nil
}

// SavePNG writes a bitmap to a PNG file. Used for diff overlays.
func SavePNG(path string, bm *uilens.Bitmap) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer f.Close()
	return Encode(f, bm)
}

// Encode writes a bitmap as PNG.
func Encode(w io.Writer, bm *uilens.Bitmap) error {
	if bm == nil || len(bm.Data()) == 0 {
		return ErrEmptyData
	}
	if err := png.Encode(w, bm.ToImage()); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}

// Resize scales a bitmap to the given dimensions with Catmull-Rom
// interpolation. Use it to bring an implementation screenshot to the
// design render's size before the pixel pass; the core rejects
// mismatched dimensions outright.
func Resize(bm *uilens.Bitmap, width, height int) *uilens.Bitmap {
	if bm.Width() == width && bm.Height() == height {
		return bm
	}
	src := bm.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return uilens.FromImage(dst)
}
