package uilens

import "math"

// Severity classifies how far a measured value strayed from the design.
type Severity int

const (
	// SeverityPass indicates the difference is below perceptual relevance.
	SeverityPass Severity = iota

	// SeverityWarn indicates a noticeable but minor difference.
	SeverityWarn

	// SeverityFail indicates a clearly visible difference.
	SeverityFail
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityFail:
		return "fail"
	default:
		return "pass"
	}
}

// Thresholds holds every calibration constant used by the property
// comparator, the pixel comparator and the scorer. A single value is
// threaded through the pipeline so tests can recalibrate without touching
// process-wide state.
type Thresholds struct {
	// ColorWarnDeltaE and ColorFailDeltaE are CIEDE2000 bands: a distance
	// below Warn passes, below Fail warns, and fails otherwise.
	ColorWarnDeltaE float64
	ColorFailDeltaE float64

	// PositionWarnFrac and PositionFailFrac are Weber-fraction bands for
	// x/y offsets. The reference is floored at PositionRefFloor to avoid
	// over-sensitivity on elements near the origin.
	PositionWarnFrac float64
	PositionFailFrac float64
	PositionRefFloor float64

	// SizeWarnFrac and SizeFailFrac are Weber-fraction bands for
	// width/height and other dimensional properties.
	SizeWarnFrac float64
	SizeFailFrac float64

	// PixelWarnFrac and PixelFailFrac band the fraction of differing
	// pixels, both for the whole image and per extracted region.
	PixelWarnFrac float64
	PixelFailFrac float64

	// PixelTolerance is the per-channel absolute difference below which
	// two pixels are considered equal (0-255 scale).
	PixelTolerance uint8

	// MinRegionArea is the minimum pixel count for an extracted diff
	// region; smaller connected components are discarded as noise.
	MinRegionArea int
}

// DefaultThresholds returns the calibration used when no override is given.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ColorWarnDeltaE:  1.0,
		ColorFailDeltaE:  2.0,
		PositionWarnFrac: 0.02,
		PositionFailFrac: 0.04,
		PositionRefFloor: 100,
		SizeWarnFrac:     0.029,
		SizeFailFrac:     0.05,
		PixelWarnFrac:    0.01,
		PixelFailFrac:    0.05,
		PixelTolerance:   26,
		MinRegionArea:    4,
	}
}

// colorSeverity bands a CIEDE2000 distance.
func (t Thresholds) colorSeverity(deltaE float64) Severity {
	switch {
	case deltaE < t.ColorWarnDeltaE:
		return SeverityPass
	case deltaE < t.ColorFailDeltaE:
		return SeverityWarn
	default:
		return SeverityFail
	}
}

// positionSeverity bands an x/y offset as a Weber fraction of the expected
// coordinate, floored at PositionRefFloor.
func (t Thresholds) positionSeverity(expected, actual float64) Severity {
	ref := math.Max(math.Abs(expected), t.PositionRefFloor)
	frac := math.Abs(expected-actual) / ref
	switch {
	case frac < t.PositionWarnFrac:
		return SeverityPass
	case frac < t.PositionFailFrac:
		return SeverityWarn
	default:
		return SeverityFail
	}
}

// sizeSeverity bands a dimensional difference as a Weber fraction of the
// expected value. A zero expected value uses 1 as reference so any
// measurable difference registers.
func (t Thresholds) sizeSeverity(expected, actual float64) Severity {
	ref := math.Max(math.Abs(expected), 1)
	frac := math.Abs(expected-actual) / ref
	switch {
	case frac < t.SizeWarnFrac:
		return SeverityPass
	case frac < t.SizeFailFrac:
		return SeverityWarn
	default:
		return SeverityFail
	}
}

// pixelSeverity bands a fraction of differing pixels in [0, 1].
func (t Thresholds) pixelSeverity(frac float64) Severity {
	switch {
	case frac < t.PixelWarnFrac:
		return SeverityPass
	case frac < t.PixelFailFrac:
		return SeverityWarn
	default:
		return SeverityFail
	}
}
