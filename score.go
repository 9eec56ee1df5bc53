package uilens

import "math"

// Score weights and penalty factors.
const (
	structuralWeight = 0.7
	pixelWeight      = 0.3

	failPenalty = 0.3
	warnPenalty = 0.1
)

// ComputeScore aggregates a comparison into a single fidelity score in
// [0, 1] and a letter grade. It never fails: degenerate inputs degrade
// toward a neutral score rather than erroring, since the authoritative
// diff already exists by the time scoring runs.
func ComputeScore(diff *StructuralDiff, pixel *PixelDiff, regions []DiffRegion,
	elements []*Element, viewport Bounds) (score float64, grade string) {

	matched := len(diff.Matches)
	structuralRate := 1.0
	if matched+len(diff.Missing) > 0 {
		structuralRate = float64(matched) / float64(matched+len(diff.Missing))
	}

	combined := structuralRate
	if pixel != nil {
		pixelRate := 1 - pixel.DiffPercentage/100
		combined = structuralRate*structuralWeight + pixelRate*pixelWeight
	}

	byDisplay := make(map[string]*Element, len(elements))
	for _, e := range elements {
		byDisplay[e.DisplayID()] = e
	}

	// Bucket each element by its worst mismatch severity, then weight it
	// by salience: a failing full-width hero counts double, a failing
	// 12px badge half.
	worst := map[string]Severity{}
	for _, m := range diff.Mismatches {
		if m.Severity > worst[m.ElementID] {
			worst[m.ElementID] = m.Severity
		}
	}
	var failSum, warnSum float64
	for id, sev := range worst {
		mult := salience(byDisplay[id], viewport)
		switch sev {
		case SeverityFail:
			failSum += mult
		case SeverityWarn:
			warnSum += mult
		}
	}
	failSum += float64(len(diff.Missing))
	for _, r := range regions {
		switch r.Severity {
		case SeverityFail:
			failSum++
		case SeverityWarn:
			warnSum++
		}
	}

	total := float64(len(elements))
	if total == 0 {
		total = 1
	}
	failFrac := failSum / total
	warnFrac := warnSum / total

	score = math.Max(0, combined*(1-failFrac*failPenalty-warnFrac*warnPenalty))
	return score, GradeFor(score)
}

// salience weights an element's penalty by its share of the viewport,
// clamped to [0.5, 2.0].
func salience(e *Element, viewport Bounds) float64 {
	if e == nil || viewport.Area() == 0 {
		return 1
	}
	share := math.Max(0.1, e.Bounds.Area()/viewport.Area())
	return math.Min(math.Max(share*10, 0.5), 2.0)
}

// GradeFor maps a score to a letter grade. The grade is a non-decreasing
// step function of the score.
func GradeFor(score float64) string {
	switch {
	case score > 0.95:
		return "A"
	case score > 0.85:
		return "B"
	case score > 0.70:
		return "C"
	case score > 0.50:
		return "D"
	default:
		return "F"
	}
}
