package uilens

import "math"

// Bounds is an axis-aligned bounding box in screen coordinates.
// X and Y locate the top-left corner; W and H extend right and down.
type Bounds struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// B is a convenience function to create a Bounds.
func B(x, y, w, h float64) Bounds {
	return Bounds{X: x, Y: y, W: w, H: h}
}

// Area returns the area of the box. Degenerate boxes have area 0.
func (b Bounds) Area() float64 {
	if b.W <= 0 || b.H <= 0 {
		return 0
	}
	return b.W * b.H
}

// Right returns the X coordinate of the right edge.
func (b Bounds) Right() float64 {
	return b.X + b.W
}

// Bottom returns the Y coordinate of the bottom edge.
func (b Bounds) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the X coordinate of the box center.
func (b Bounds) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the Y coordinate of the box center.
func (b Bounds) CenterY() float64 {
	return b.Y + b.H/2
}

// Contains reports whether o lies entirely within b (edges inclusive).
func (b Bounds) Contains(o Bounds) bool {
	return o.X >= b.X && o.Y >= b.Y && o.Right() <= b.Right() && o.Bottom() <= b.Bottom()
}

// ContainsPoint reports whether the point (x, y) lies within b.
func (b Bounds) ContainsPoint(x, y float64) bool {
	return x >= b.X && x <= b.Right() && y >= b.Y && y <= b.Bottom()
}

// Overlaps reports whether b and o share any interior area.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Intersect returns the intersection of b and o.
// Returns a zero Bounds when the boxes do not overlap.
func (b Bounds) Intersect(o Bounds) Bounds {
	x1 := math.Max(b.X, o.X)
	y1 := math.Max(b.Y, o.Y)
	x2 := math.Min(b.Right(), o.Right())
	y2 := math.Min(b.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Bounds{}
	}
	return Bounds{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Union returns the smallest box containing both b and o.
// A degenerate box contributes nothing: Union with a zero Bounds returns
// the other box unchanged.
func (b Bounds) Union(o Bounds) Bounds {
	if b.Area() == 0 {
		return o
	}
	if o.Area() == 0 {
		return b
	}
	x1 := math.Min(b.X, o.X)
	y1 := math.Min(b.Y, o.Y)
	x2 := math.Max(b.Right(), o.Right())
	y2 := math.Max(b.Bottom(), o.Bottom())
	return Bounds{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// IoU returns the intersection-over-union of b and o in [0, 1].
// Returns 0 when the boxes do not overlap or either box is degenerate.
func (b Bounds) IoU(o Bounds) float64 {
	inter := b.Intersect(o).Area()
	if inter == 0 {
		return 0
	}
	union := b.Area() + o.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// AspectRatio returns W/H, or 0 for a degenerate box.
func (b Bounds) AspectRatio() float64 {
	if b.H <= 0 {
		return 0
	}
	return b.W / b.H
}
