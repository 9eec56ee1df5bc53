package uilens

import "image"

// Bitmap is a rectangular RGBA pixel buffer, 4 bytes per pixel.
// It is the only pixel representation the core reads or writes; decoding
// image files into a Bitmap is the imageio package's job.
type Bitmap struct {
	width  int
	height int
	data   []uint8
}

// NewBitmap creates a transparent bitmap with the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int { return b.width }

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int { return b.height }

// Data returns the raw pixel data (RGBA format).
func (b *Bitmap) Data() []uint8 { return b.data }

// SetRGBA sets a single pixel. Out-of-range coordinates are ignored.
func (b *Bitmap) SetRGBA(x, y int, r, g, bl, a uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.data[i+0] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
}

// RGBA returns the channels of a single pixel. Out-of-range coordinates
// return zeros.
func (b *Bitmap) RGBA(x, y int) (r, g, bl, a uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0, 0, 0
	}
	i := (y*b.width + x) * 4
	return b.data[i+0], b.data[i+1], b.data[i+2], b.data[i+3]
}

// Fill sets every pixel to the given opaque color.
func (b *Bitmap) Fill(c Color) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	bl := uint8(clamp255(c.B * 255))
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = r
		b.data[i+1] = g
		b.data[i+2] = bl
		b.data[i+3] = 255
	}
}

// ToImage converts the bitmap to an image.RGBA sharing no memory.
func (b *Bitmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// FromImage creates a bitmap from any image.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	bm := NewBitmap(w, h)
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == w*4 {
		copy(bm.data, rgba.Pix)
		return bm
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			bm.SetRGBA(x, y, uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(a>>8))
		}
	}
	return bm
}
