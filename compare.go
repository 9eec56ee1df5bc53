package uilens

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Compare runs the full comparison pipeline: element matching, property
// comparison of every matched pair, the optional pixel pass, cascade
// suppression and scoring. The inputs are treated as immutable for the
// duration of the run; the result is built once and returned, nothing is
// retained.
//
// The pipeline is synchronous and pure. Any waiting (fetching designs,
// walking a live UI, decoding screenshots) belongs to the caller, which
// hands Compare fully materialized snapshots.
func Compare(layout *Layout, elements []*Element, opts ...Option) (*ComparisonResult, error) {
	if layout == nil {
		return nil, errors.New("uilens: nil layout")
	}
	o := defaultCompareOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nodes := layout.Flatten()
	diff := MatchElements(nodes, elements, o.th)

	for _, mt := range diff.Matches {
		diff.Mismatches = append(diff.Mismatches, CompareProperties(mt.Node, mt.Element, o.th)...)
	}

	var pixel *PixelDiff
	var regions []DiffRegion
	if o.expected != nil || o.actual != nil {
		var err error
		pixel, err = CompareBitmaps(o.expected, o.actual, o.th, o.diffColor)
		if err != nil {
			return nil, err
		}
		regions = ExtractRegions(pixel, o.expected, o.actual, o.th)
		attributeRegions(regions, elements)
	}

	diff.Mismatches = SuppressCascades(diff.Mismatches, elements, diff.Missing, diff.Extra)

	score, grade := ComputeScore(diff, pixel, regions, elements, layout.Viewport)

	result := &ComparisonResult{
		Score:      score,
		Grade:      grade,
		Structural: *diff,
		Pixel:      pixel,
		Regions:    regions,
		Feedback:   buildFeedback(diff, regions),
		Timestamp:  time.Now(),
	}
	result.Summary = summarize(result, len(nodes))
	Logger().Debug("comparison complete", "score", score, "grade", grade)
	return result, nil
}

// buildFeedback flattens the diff into ranked, human-readable findings:
// failures first, then warnings, larger problems before smaller ones.
func buildFeedback(diff *StructuralDiff, regions []DiffRegion) []FeedbackItem {
	var items []FeedbackItem
	for _, name := range diff.Missing {
		items = append(items, FeedbackItem{
			Severity: SeverityFail,
			Message:  fmt.Sprintf("design node %q has no implementation counterpart", name),
		})
	}
	for _, id := range diff.Extra {
		items = append(items, FeedbackItem{
			Severity:  SeverityWarn,
			Message:   fmt.Sprintf("element %q does not appear in the design", id),
			ElementID: id,
		})
	}
	for _, m := range diff.Mismatches {
		msg := fmt.Sprintf("%s: %s is %s, expected %s", m.ElementID, m.Property, m.Actual, m.Expected)
		if m.Fix != "" {
			msg += " (" + m.Fix + ")"
		}
		items = append(items, FeedbackItem{
			Severity:  m.Severity,
			Message:   msg,
			ElementID: m.ElementID,
		})
	}
	for _, r := range regions {
		items = append(items, FeedbackItem{
			Severity:  r.Severity,
			Message:   r.Description,
			ElementID: r.ElementID,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Severity > items[j].Severity
	})
	return items
}

func summarize(r *ComparisonResult, totalNodes int) string {
	s := fmt.Sprintf("fidelity %.2f (%s): %d/%d nodes matched, %d mismatches, %d missing, %d extra",
		r.Score, r.Grade,
		len(r.Structural.Matches), totalNodes,
		len(r.Structural.Mismatches),
		len(r.Structural.Missing), len(r.Structural.Extra))
	if r.Pixel != nil {
		s += fmt.Sprintf(", %.2f%% pixels differ", r.Pixel.DiffPercentage)
	}
	return s
}
