package uilens

import (
	"errors"
	"fmt"
	"math"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrInvalidColor is returned when a hex color string cannot be parsed.
// Parsing fails fast rather than defaulting, because severity decisions
// downstream depend on correct values.
var ErrInvalidColor = errors.New("uilens: invalid color")

// Color is an sRGB color with components in [0, 1].
// Alpha is not modeled; perceptual distance is defined on opaque colors.
type Color struct {
	R, G, B float64
}

// Lab is a color in CIELAB space under the D65 illuminant.
type Lab struct {
	L, A, B float64
}

// ParseHex parses a hex color string into a Color.
// Supports "RGB", "RRGGBB" and "RRGGBBAA" (alpha ignored), with or without
// a leading '#'. Malformed input returns an error wrapping ErrInvalidColor.
func ParseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	var r, g, b uint32
	var ok bool
	switch len(s) {
	case 3:
		if r, ok = parseHexByte(s[0:1]); !ok {
			break
		}
		if g, ok = parseHexByte(s[1:2]); !ok {
			break
		}
		b, ok = parseHexByte(s[2:3])
		r, g, b = r*17, g*17, b*17
	case 6, 8:
		if r, ok = parseHexByte(s[0:2]); !ok {
			break
		}
		if g, ok = parseHexByte(s[2:4]); !ok {
			break
		}
		if b, ok = parseHexByte(s[4:6]); !ok {
			break
		}
		if len(s) == 8 {
			_, ok = parseHexByte(s[6:8])
		}
	default:
		ok = false
	}
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}, nil
}

// parseHexByte parses 1-2 hex digits.
func parseHexByte(s string) (uint32, bool) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}

// Hex returns the color formatted as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp255(c.R*255)),
		uint8(clamp255(c.G*255)),
		uint8(clamp255(c.B*255)))
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// D65 reference white point.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// linearize undoes the sRGB gamma curve.
func linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ToLab converts an sRGB color to CIELAB via linear RGB and XYZ (D65).
func (c Color) ToLab() Lab {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)

	// sRGB to XYZ, D65.
	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// pow25_7 is 25^7, the constant in the CIEDE2000 chroma compensation.
const pow25_7 = 6103515625.0

// DeltaE00 returns the CIEDE2000 distance between two Lab colors with
// kL = kC = kH = 1. A distance below 1 is generally imperceptible; around
// 2 is perceptible on close inspection.
func DeltaE00(a, b Lab) float64 {
	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	cBar := (c1 + c2) / 2

	// G-factor chroma compensation.
	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25_7)))

	a1p := a.A * (1 + g)
	a2p := b.A * (1 + g)
	c1p := math.Hypot(a1p, a.B)
	c2p := math.Hypot(a2p, b.B)

	h1p := hueDegrees(a.B, a1p)
	h2p := hueDegrees(b.B, a2p)

	dL := b.L - a.L
	dC := c2p - c1p

	// Hue difference with wraparound at ±180°.
	var dhp float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p-h1p > 180:
		dhp = h2p - h1p - 360
	default:
		dhp = h2p - h1p + 360
	}
	dH := 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(dhp)/2)

	lBarP := (a.L + b.L) / 2
	cBarP := (c1p + c2p) / 2

	// Mean hue, adjusted for wraparound.
	var hBarP float64
	switch {
	case c1p*c2p == 0:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarP = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBarP = (h1p + h2p + 360) / 2
	default:
		hBarP = (h1p + h2p - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(rad(hBarP-30)) +
		0.24*math.Cos(rad(2*hBarP)) +
		0.32*math.Cos(rad(3*hBarP+6)) -
		0.20*math.Cos(rad(4*hBarP-63))

	dTheta := 30 * math.Exp(-math.Pow((hBarP-275)/25, 2))
	cBarP7 := math.Pow(cBarP, 7)
	rC := 2 * math.Sqrt(cBarP7/(cBarP7+pow25_7))
	rT := -rC * math.Sin(rad(2*dTheta))

	lDev := lBarP - 50
	sL := 1 + 0.015*lDev*lDev/math.Sqrt(20+lDev*lDev)
	sC := 1 + 0.045*cBarP
	sH := 1 + 0.015*cBarP*t

	dLs := dL / sL
	dCs := dC / sC
	dHs := dH / sH

	return math.Sqrt(dLs*dLs + dCs*dCs + dHs*dHs + rT*dCs*dHs)
}

// hueDegrees returns atan2(b, aPrime) normalized to [0, 360).
func hueDegrees(b, aPrime float64) float64 {
	if b == 0 && aPrime == 0 {
		return 0
	}
	h := math.Atan2(b, aPrime) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// labCache memoizes hex→Lab conversions. The matcher's visual pass computes
// ΔE00 for every candidate pair, so the same handful of palette colors is
// converted over and over.
var labCache *lru.Cache[string, Lab]

func init() {
	// Size covers any realistic palette; error only occurs for size <= 0.
	labCache, _ = lru.New[string, Lab](512)
}

// labForHex parses a hex string and converts it to Lab, memoized.
func labForHex(hex string) (Lab, error) {
	key := strings.ToLower(strings.TrimSpace(hex))
	if v, ok := labCache.Get(key); ok {
		return v, nil
	}
	c, err := ParseHex(hex)
	if err != nil {
		return Lab{}, err
	}
	l := c.ToLab()
	labCache.Add(key, l)
	return l, nil
}

// ColorDistance returns the CIEDE2000 distance between two hex colors.
func ColorDistance(hexA, hexB string) (float64, error) {
	la, err := labForHex(hexA)
	if err != nil {
		return 0, err
	}
	lb, err := labForHex(hexB)
	if err != nil {
		return 0, err
	}
	return DeltaE00(la, lb), nil
}

// ColorsMatch reports whether two hex colors are perceptually identical
// under the given thresholds (distance below the warn band).
func ColorsMatch(hexA, hexB string, t Thresholds) (bool, error) {
	d, err := ColorDistance(hexA, hexB)
	if err != nil {
		return false, err
	}
	return d < t.ColorWarnDeltaE, nil
}
