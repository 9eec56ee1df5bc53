package uilens

import "math"

// KeyCoverageFloor is the key-coverage metric below which the matcher
// produces identifier suggestions for unannotated elements.
const KeyCoverageFloor = 0.2

// scoreFunc scores one candidate pair. A negative score rejects the pair
// outright. tie breaks equal scores; the first-encountered candidate wins
// a full tie, which is intentional even though the input order carries no
// semantic meaning.
type scoreFunc func(n *DesignNode, e *Element) (score, tie float64)

// matcher holds the state of one matching run. Entities claimed by a pass
// are permanently excluded from later passes.
type matcher struct {
	nodes    []*DesignNode
	elements []*Element
	th       Thresholds

	claimedNode map[*DesignNode]bool
	claimedElem map[*Element]bool
	matches     []Match

	// elemFP caches inferred element fingerprints; inference is O(n) per
	// element over the whole snapshot.
	elemFP map[*Element]fingerprint
}

// MatchElements pairs design nodes with implementation elements using five
// ordered passes: stable identifier, structural fingerprint, geometric
// overlap, fuzzy text and weighted type+visual similarity. Unclaimed nodes
// become missing, unclaimed non-scaffolding elements become extra. When
// fewer than [KeyCoverageFloor] of the design nodes ended up matched to an
// annotated element, the result carries ranked identifier suggestions.
//
// The nodes slice is the pre-order flattening of the design tree, e.g.
// from [Layout.Flatten].
func MatchElements(nodes []*DesignNode, elements []*Element, th Thresholds) *StructuralDiff {
	m := &matcher{
		nodes:       nodes,
		elements:    elements,
		th:          th,
		claimedNode: make(map[*DesignNode]bool, len(nodes)),
		claimedElem: make(map[*Element]bool, len(elements)),
		elemFP:      make(map[*Element]fingerprint),
	}

	m.pass("identifier", m.scoreIdentifier, 0.5)
	m.pass("fingerprint", m.scoreFingerprint, 0.55)
	m.pass("overlap", m.scoreOverlap, 0.5)
	m.pass("text", m.scoreText, 0)
	m.pass("visual", m.scoreVisual, 0.4)

	diff := &StructuralDiff{Matches: m.matches}
	for _, n := range m.nodes {
		if !m.claimedNode[n] {
			diff.Missing = append(diff.Missing, n.Name)
		}
	}
	for _, e := range m.elements {
		if !m.claimedElem[e] && !e.isScaffolding() {
			diff.Extra = append(diff.Extra, e.DisplayID())
		}
	}

	if len(nodes) > 0 {
		annotated := 0
		for _, mt := range m.matches {
			if mt.Element.Identifier != "" {
				annotated++
			}
		}
		diff.KeyCoverage = float64(annotated) / float64(len(nodes))
	}
	if diff.KeyCoverage < KeyCoverageFloor {
		diff.Suggestions = m.suggestIdentifiers()
	}
	return diff
}

// pass runs one greedy assignment round: for each unclaimed design node it
// scans the unclaimed elements and keeps the best candidate, comparing
// with strict > so the first-encountered candidate survives ties
// deterministically. The pair is claimed when the score exceeds threshold.
func (m *matcher) pass(method string, score scoreFunc, threshold float64) {
	matched := 0
	for _, n := range m.nodes {
		if m.claimedNode[n] {
			continue
		}
		var best *Element
		bestScore, bestTie := -1.0, 0.0
		for _, e := range m.elements {
			if m.claimedElem[e] {
				continue
			}
			s, tie := score(n, e)
			if s < 0 {
				continue
			}
			if s > bestScore || (s == bestScore && tie > bestTie) {
				best, bestScore, bestTie = e, s, tie
			}
		}
		if best == nil || bestScore <= threshold {
			continue
		}
		m.claimedNode[n] = true
		m.claimedElem[best] = true
		m.matches = append(m.matches, Match{
			Element:    best,
			Node:       n,
			ElementID:  best.ID,
			NodeID:     n.ID,
			Confidence: math.Min(bestScore, 1),
			Method:     method,
		})
		matched++
	}
	Logger().Debug("match pass complete", "pass", method, "matched", matched)
}

// scoreIdentifier accepts only an exact identifier-annotation match
// against the node's id or name. Geometry is deliberately ignored: a
// correctly annotated element matches even when it rendered in the wrong
// place entirely.
func (m *matcher) scoreIdentifier(n *DesignNode, e *Element) (float64, float64) {
	if e.Identifier == "" {
		return -1, 0
	}
	if e.Identifier == n.ID || e.Identifier == n.Name {
		return 1, 0
	}
	return -1, 0
}

// scoreFingerprint compares structural signatures of containers; leaf
// nodes are skipped.
func (m *matcher) scoreFingerprint(n *DesignNode, e *Element) (float64, float64) {
	if len(n.Children) == 0 {
		return -1, 0
	}
	sim := fingerprintSimilarity(nodeFingerprint(n), m.fingerprintOf(e))
	iou := n.Bounds.IoU(e.Bounds)
	return 0.6*sim + 0.4*math.Min(2*iou, 1), 0
}

func (m *matcher) fingerprintOf(e *Element) fingerprint {
	if fp, ok := m.elemFP[e]; ok {
		return fp
	}
	fp := elementFingerprint(e, m.elements)
	m.elemFP[e] = fp
	return fp
}

// scoreOverlap accepts a strong geometric overlap.
func (m *matcher) scoreOverlap(n *DesignNode, e *Element) (float64, float64) {
	return n.Bounds.IoU(e.Bounds), 0
}

// scoreText fuzzily matches text nodes against elements with text content.
// Only a normalized exact/substring match or a Levenshtein similarity of
// at least 0.8 is accepted; equal scores are tie-broken by highest IoU.
func (m *matcher) scoreText(n *DesignNode, e *Element) (float64, float64) {
	if n.Type != NodeText || n.Text == "" || e.Text == "" {
		return -1, 0
	}
	s := textSimilarity(n.Text, e.Text)
	if s < 0.8 {
		return -1, 0
	}
	return s, n.Bounds.IoU(e.Bounds)
}

// scoreVisual is the last-resort weighted blend of type compatibility,
// color similarity, size similarity and overlap. Candidates without any
// overlap are rejected regardless of score.
func (m *matcher) scoreVisual(n *DesignNode, e *Element) (float64, float64) {
	iou := n.Bounds.IoU(e.Bounds)
	if iou <= 0 {
		return -1, 0
	}
	s := 0.3*typeCompatibility(n.Type, e.Type) +
		0.25*m.colorSimilarity(n, e) +
		0.25*sizeSimilarity(n.Bounds, e.Bounds) +
		0.2*math.Min(2*iou, 1)
	return s, 0
}

// colorSimilarity scores how close the element's background or text color
// comes to the node's primary color, as max(0, 1-ΔE00/50) over the two
// channels. A node without color scores a neutral 0.5.
func (m *matcher) colorSimilarity(n *DesignNode, e *Element) float64 {
	ref := n.primaryColor()
	if ref == "" {
		return 0.5
	}
	best := 0.0
	for _, ch := range []string{e.BackgroundColor, e.TextColor} {
		if ch == "" {
			continue
		}
		d, err := ColorDistance(ref, ch)
		if err != nil {
			continue
		}
		best = math.Max(best, math.Max(0, 1-d/50))
	}
	return best
}

// suggestIdentifiers runs relaxed variants of the text, fingerprint and
// visual passes over elements lacking identifier annotations, producing
// ranked suggestions. Confidence is scaled by pass reliability.
func (m *matcher) suggestIdentifiers() []IdentifierSuggestion {
	type variant struct {
		reason    string
		score     scoreFunc
		threshold float64
		scale     float64

		// inclusive accepts a score equal to the threshold; only the text
		// variant's floor is inclusive.
		inclusive bool
	}
	variants := []variant{
		{"text similarity", m.scoreTextLoose, 0.7, 1.0, true},
		{"structural fingerprint", m.scoreFingerprint, 0.4, 0.8, false},
		{"type and visual similarity", m.scoreVisual, 0.4, 0.6, false},
	}

	usedNode := map[*DesignNode]bool{}
	usedElem := map[*Element]bool{}
	var out []IdentifierSuggestion
	for _, v := range variants {
		for _, e := range m.elements {
			if e.Identifier != "" || usedElem[e] || e.isScaffolding() {
				continue
			}
			var best *DesignNode
			bestScore, bestTie := -1.0, 0.0
			for _, n := range m.nodes {
				if usedNode[n] {
					continue
				}
				s, tie := v.score(n, e)
				if s < 0 {
					continue
				}
				if s > bestScore || (s == bestScore && tie > bestTie) {
					best, bestScore, bestTie = n, s, tie
				}
			}
			if best == nil || !acceptsSuggestion(bestScore, v.threshold, v.inclusive) {
				continue
			}
			usedNode[best] = true
			usedElem[e] = true
			out = append(out, IdentifierSuggestion{
				ElementID:  e.ID,
				Suggested:  best.ID,
				Confidence: math.Min(bestScore, 1) * v.scale,
				Reason:     v.reason,
			})
		}
	}

	// Rank by confidence, stable for equal values.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Confidence > out[j-1].Confidence; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// acceptsSuggestion applies a variant's acceptance floor: inclusive for
// the text variant, strict for fingerprint and visual.
func acceptsSuggestion(score, threshold float64, inclusive bool) bool {
	if inclusive {
		return score >= threshold
	}
	return score > threshold
}

// scoreTextLoose is the suggestion variant of the text pass with the 0.7
// acceptance floor applied by the caller.
func (m *matcher) scoreTextLoose(n *DesignNode, e *Element) (float64, float64) {
	if n.Type != NodeText || n.Text == "" || e.Text == "" {
		return -1, 0
	}
	return textSimilarity(n.Text, e.Text), n.Bounds.IoU(e.Bounds)
}
