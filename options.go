package uilens

// Option configures a comparison run.
// Use functional options to customize Compare behavior.
//
// Example:
//
//	// Default thresholds, structural comparison only
//	result, err := uilens.Compare(layout, elements)
//
//	// With a pixel pass and a custom overlay color
//	result, err := uilens.Compare(layout, elements,
//	    uilens.WithBitmaps(designRender, implRender),
//	    uilens.WithDiffColor(uilens.Color{R: 1}),
//	)
type Option func(*compareOptions)

// compareOptions holds optional configuration for a comparison run.
type compareOptions struct {
	th        Thresholds
	diffColor Color
	expected  *Bitmap
	actual    *Bitmap
}

// defaultCompareOptions returns the default comparison options.
func defaultCompareOptions() compareOptions {
	return compareOptions{
		th:        DefaultThresholds(),
		diffColor: Color{R: 1, G: 0, B: 1}, // magenta overlay
	}
}

// WithThresholds replaces the default severity calibration for the whole
// pipeline: property comparator, pixel comparator and scorer.
func WithThresholds(t Thresholds) Option {
	return func(o *compareOptions) {
		o.th = t
	}
}

// WithBitmaps enables the pixel pass with the design reference render and
// the implementation render. The two bitmaps must have equal dimensions;
// Compare fails with ErrDimensionMismatch otherwise.
func WithBitmaps(expected, actual *Bitmap) Option {
	return func(o *compareOptions) {
		o.expected = expected
		o.actual = actual
	}
}

// WithDiffColor sets the marker color of the pixel-diff overlay.
func WithDiffColor(c Color) Option {
	return func(o *compareOptions) {
		o.diffColor = c
	}
}

// WithPixelTolerance overrides just the per-channel pixel tolerance,
// keeping the rest of the default thresholds.
func WithPixelTolerance(tol uint8) Option {
	return func(o *compareOptions) {
		o.th.PixelTolerance = tol
	}
}
