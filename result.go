package uilens

import "time"

// Match pairs an implementation element with the design node it realizes.
// Within one comparison each element and each node appears in at most one
// Match.
type Match struct {
	Element    *Element    `json:"-"`
	Node       *DesignNode `json:"-"`
	ElementID  string      `json:"elementId"`
	NodeID     string      `json:"nodeId"`
	Confidence float64     `json:"confidence"` // 0..1
	Method     string      `json:"method"`     // pass that produced the match
}

// Mismatch is one property-level difference on a matched pair.
type Mismatch struct {
	ElementID string   `json:"elementId"`
	Property  string   `json:"property"`
	Expected  string   `json:"expected"`
	Actual    string   `json:"actual"`
	Severity  Severity `json:"severity"`

	// Fix is a human-readable suggested correction; content only, never a
	// command.
	Fix string `json:"fix,omitempty"`
}

// DiffRegion is a connected area of differing pixels, independent of the
// design and element trees.
type DiffRegion struct {
	Bounds      Bounds   `json:"bounds"`
	PixelCount  int      `json:"pixelCount"`
	Severity    Severity `json:"severity"`
	Category    string   `json:"category"`
	Description string   `json:"description"`

	// DeltaE is the CIEDE2000 distance between the mean colors of the
	// region in the two bitmaps. Zero when not computed.
	DeltaE float64 `json:"deltaE,omitempty"`

	// ElementID names the element whose bounds best contain the region,
	// when one could be attributed.
	ElementID string `json:"elementId,omitempty"`
}

// IdentifierSuggestion proposes a stable identifier for an element that
// lacks one, ranked by confidence.
type IdentifierSuggestion struct {
	ElementID  string  `json:"elementId"`
	Suggested  string  `json:"suggested"` // design node id
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// StructuralDiff is the element-tree half of a comparison.
type StructuralDiff struct {
	Matches    []Match    `json:"matches"`
	Mismatches []Mismatch `json:"mismatches"`

	// Missing lists design node names with no implementation counterpart.
	Missing []string `json:"missing"`

	// Extra lists implementation elements (by display id) that no design
	// node accounts for, excluding framework scaffolding.
	Extra []string `json:"extra"`

	// KeyCoverage is matched-elements-with-identifier / total design
	// nodes, a measure of how testable the implementation is.
	KeyCoverage float64 `json:"keyCoverage"`

	Suggestions []IdentifierSuggestion `json:"suggestions,omitempty"`
}

// FeedbackItem is one ranked, human-readable finding.
type FeedbackItem struct {
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
	ElementID string   `json:"elementId,omitempty"`
}

// ComparisonResult aggregates everything one comparison run produced.
// Created once per run and returned to the caller; the core retains
// nothing.
type ComparisonResult struct {
	Score   float64 `json:"score"` // 0..1
	Grade   string  `json:"grade"` // A-F
	Summary string  `json:"summary"`

	Structural StructuralDiff `json:"structural"`
	Pixel      *PixelDiff     `json:"pixel,omitempty"`
	Regions    []DiffRegion   `json:"regions,omitempty"`
	Feedback   []FeedbackItem `json:"feedback"`

	Timestamp time.Time `json:"timestamp"`
}
