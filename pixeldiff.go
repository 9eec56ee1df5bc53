package uilens

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when the two bitmaps of a pixel
// comparison have different dimensions. This is an input-validation
// failure, distinct from a reported diff: callers must scale or crop
// before comparing (see imageio.Resize).
var ErrDimensionMismatch = errors.New("uilens: bitmap dimensions differ")

// ErrEmptyBitmap is returned when a bitmap is nil or has no pixels.
var ErrEmptyBitmap = errors.New("uilens: empty bitmap")

// PixelDiff is the result of a pixel-level comparison.
type PixelDiff struct {
	DiffPixels     int     `json:"diffPixels"`
	TotalPixels    int     `json:"totalPixels"`
	DiffPercentage float64 `json:"diffPercentage"` // 0..100

	// Overlay marks differing pixels in the diff color and is fully
	// transparent elsewhere.
	Overlay *Bitmap `json:"-"`

	// mask records per-pixel difference for region extraction.
	mask          []bool
	width, height int
}

// Severity bands the overall diff fraction under the given thresholds.
func (d *PixelDiff) Severity(th Thresholds) Severity {
	if d.TotalPixels == 0 {
		return SeverityPass
	}
	return th.pixelSeverity(float64(d.DiffPixels) / float64(d.TotalPixels))
}

// CompareBitmaps diffs two equal-dimension RGBA bitmaps pixel by pixel.
// A pixel differs when any channel's absolute difference exceeds the
// per-channel tolerance. diffColor is the opaque overlay marker color.
func CompareBitmaps(expected, actual *Bitmap, th Thresholds, diffColor Color) (*PixelDiff, error) {
	if expected == nil || len(expected.data) == 0 || actual == nil || len(actual.data) == 0 {
		return nil, ErrEmptyBitmap
	}
	if expected.width != actual.width || expected.height != actual.height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch,
			expected.width, expected.height, actual.width, actual.height)
	}

	w, h := expected.width, expected.height
	d := &PixelDiff{
		TotalPixels: w * h,
		Overlay:     NewBitmap(w, h),
		mask:        make([]bool, w*h),
		width:       w,
		height:      h,
	}

	mr := uint8(clamp255(diffColor.R * 255))
	mg := uint8(clamp255(diffColor.G * 255))
	mb := uint8(clamp255(diffColor.B * 255))
	tol := th.PixelTolerance

	for i := 0; i < d.TotalPixels; i++ {
		o := i * 4
		if channelDiff(expected.data[o], actual.data[o]) > tol ||
			channelDiff(expected.data[o+1], actual.data[o+1]) > tol ||
			channelDiff(expected.data[o+2], actual.data[o+2]) > tol ||
			channelDiff(expected.data[o+3], actual.data[o+3]) > tol {
			d.mask[i] = true
			d.DiffPixels++
			d.Overlay.data[o+0] = mr
			d.Overlay.data[o+1] = mg
			d.Overlay.data[o+2] = mb
			d.Overlay.data[o+3] = 255
		}
	}
	d.DiffPercentage = 100 * float64(d.DiffPixels) / float64(d.TotalPixels)
	Logger().Debug("pixel comparison complete",
		"diff_pixels", d.DiffPixels, "percentage", d.DiffPercentage)
	return d, nil
}

func channelDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
