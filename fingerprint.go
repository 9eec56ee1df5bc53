package uilens

import "math"

// fingerprint is the structural signature used by the second matching
// pass to pair containers that moved or resized too much for geometric
// overlap alone.
type fingerprint struct {
	childCount    int
	childFamilies map[string]bool
	hasText       bool
	hasBackground bool
	aspect        float64
	area          float64
}

// nodeFingerprint computes the signature of a design container.
func nodeFingerprint(n *DesignNode) fingerprint {
	fp := fingerprint{
		childCount:    len(n.Children),
		childFamilies: map[string]bool{},
		hasText:       n.hasText(),
		hasBackground: n.PrimaryFill() != "",
		aspect:        n.Bounds.AspectRatio(),
		area:          n.Bounds.Area(),
	}
	for _, c := range n.Children {
		fp.childFamilies[nodeFamily(c.Type)] = true
	}
	return fp
}

// elementFingerprint computes the signature of an implementation element.
// The element's children are inferred by bounds containment over all other
// elements in the snapshot rather than by parent references, since many
// inspectors flatten wrapper nodes. Overlapping siblings can misattribute
// children to each other; this is a known approximation.
func elementFingerprint(e *Element, all []*Element) fingerprint {
	fp := fingerprint{
		childFamilies: map[string]bool{},
		hasText:       e.Text != "",
		hasBackground: e.BackgroundColor != "",
		aspect:        e.Bounds.AspectRatio(),
		area:          e.Bounds.Area(),
	}
	for _, o := range all {
		if o == e || o.Bounds.Area() == 0 {
			continue
		}
		if e.Bounds.Contains(o.Bounds) && o.Bounds.Area() < e.Bounds.Area() {
			fp.childCount++
			fp.childFamilies[elementFamily(o.Type)] = true
			if o.Text != "" {
				fp.hasText = true
			}
		}
	}
	return fp
}

// fingerprintSimilarity scores two signatures in [0, 1] as a weighted sum
// of child-count closeness, child-family overlap, text/background
// agreement and aspect-ratio closeness.
func fingerprintSimilarity(a, b fingerprint) float64 {
	s := 0.3*countCloseness(a.childCount, b.childCount) +
		0.25*familyOverlap(a.childFamilies, b.childFamilies) +
		0.2*ratioCloseness(a.aspect, b.aspect)
	if a.hasText == b.hasText {
		s += 0.15
	}
	if a.hasBackground == b.hasBackground {
		s += 0.1
	}
	return s
}

func countCloseness(a, b int) float64 {
	if a == b {
		return 1
	}
	lo, hi := float64(a), float64(b)
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return 1
	}
	return lo / hi
}

// familyOverlap is the Jaccard index of two family sets.
func familyOverlap(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	inter, union := 0, 0
	for f := range a {
		union++
		if b[f] {
			inter++
		}
	}
	for f := range b {
		if !a[f] {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func ratioCloseness(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	return math.Min(a, b) / math.Max(a, b)
}

// sizeSimilarity averages the width and height ratios (min/max) of two
// boxes.
func sizeSimilarity(a, b Bounds) float64 {
	return (ratioCloseness(a.W, b.W) + ratioCloseness(a.H, b.H)) / 2
}
