package uilens

// Property groups used by the suppression rules.
var (
	verticalSpacingProps   = map[string]bool{"padding-top": true, "padding-bottom": true, "line-height": true, "font-size": true}
	horizontalSpacingProps = map[string]bool{"padding-left": true, "padding-right": true, "gap": true}

	// suppressibleProps are the only flags the rules may remove: layout
	// geometry and spacing. Everything else (colors, typography identity,
	// corner radius) is a direct measurement and always survives, so the
	// independence evidence a rule-3 decision rests on can never itself be
	// filtered away.
	suppressibleProps = map[string]bool{
		"x": true, "y": true, "width": true, "height": true,
		"padding-top": true, "padding-right": true, "padding-bottom": true, "padding-left": true,
		"gap": true,
	}
)

// SuppressCascades removes mismatches that are downstream consequences of
// a more fundamental mismatch. It runs after the authoritative diff is
// computed and never fails; at worst it degrades toward less suppression.
//
// Rules, in order:
//
//  1. Same element: a height flag is dropped when vertical padding or
//     text metrics differ on the same element; a width flag when
//     horizontal padding or gap differ. The root cause stays flagged.
//  2. Ancestor propagation: a child's x flag is dropped when a
//     bounds-containing ancestor flags horizontal padding or width;
//     analogously y against vertical padding or height.
//  3. Structural reflow: when any element is wholly missing or extra,
//     position flags elsewhere are presumed reflow consequences and
//     dropped; size and spacing flags are dropped unless the element
//     shows at least two other independent mismatches.
//
// Color and typography-identity flags are never suppressed. The filter is
// deterministic and idempotent.
func SuppressCascades(mismatches []Mismatch, elements []*Element, missing, extra []string) []Mismatch {
	if len(mismatches) == 0 {
		return mismatches
	}
	idx := newElementIndex(elements)
	byDisplay := make(map[string]*Element, len(elements))
	for _, e := range elements {
		byDisplay[e.DisplayID()] = e
	}

	// Properties flagged per element, from the unfiltered input set.
	flagged := map[string]map[string]bool{}
	for _, m := range mismatches {
		if flagged[m.ElementID] == nil {
			flagged[m.ElementID] = map[string]bool{}
		}
		flagged[m.ElementID][m.Property] = true
	}

	reflow := len(missing) > 0 || len(extra) > 0

	out := make([]Mismatch, 0, len(mismatches))
	for _, m := range mismatches {
		if !suppressibleProps[m.Property] {
			out = append(out, m)
			continue
		}
		if suppressSameElement(m, flagged[m.ElementID]) {
			continue
		}
		if e := byDisplay[m.ElementID]; e != nil && suppressByAncestor(m, e, idx, flagged) {
			continue
		}
		if reflow && suppressByReflow(m, flagged[m.ElementID]) {
			continue
		}
		out = append(out, m)
	}
	if n := len(mismatches) - len(out); n > 0 {
		Logger().Debug("cascade suppression removed derivative mismatches", "removed", n)
	}
	return out
}

// suppressSameElement applies rule 1.
func suppressSameElement(m Mismatch, props map[string]bool) bool {
	switch m.Property {
	case "height":
		return hasAny(props, verticalSpacingProps)
	case "width":
		return hasAny(props, horizontalSpacingProps)
	}
	return false
}

// suppressByAncestor applies rule 2.
func suppressByAncestor(m Mismatch, e *Element, idx *elementIndex, flagged map[string]map[string]bool) bool {
	var causes map[string]bool
	switch m.Property {
	case "x":
		causes = map[string]bool{"padding-left": true, "padding-right": true, "width": true}
	case "y":
		causes = map[string]bool{"padding-top": true, "padding-bottom": true, "height": true}
	default:
		return false
	}
	for _, anc := range idx.ancestors(e) {
		if !anc.Bounds.Contains(e.Bounds) {
			continue
		}
		if hasAny(flagged[anc.DisplayID()], causes) {
			return true
		}
	}
	return false
}

// suppressByReflow applies rule 3. A size or spacing flag is independently
// root-caused when the element shows at least two other mismatches among
// the never-suppressed properties; a bare size or spacing flag next to a
// structural change is noise from everything below the gap shifting.
// Only suppressible properties reach this rule.
func suppressByReflow(m Mismatch, props map[string]bool) bool {
	if m.Property == "x" || m.Property == "y" {
		return true
	}
	independent := 0
	for p := range props {
		if p != m.Property && !suppressibleProps[p] {
			independent++
		}
	}
	return independent < 2
}

func hasAny(props map[string]bool, candidates map[string]bool) bool {
	for p := range candidates {
		if props[p] {
			return true
		}
	}
	return false
}
