package uilens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func properties(ms []Mismatch) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Property
	}
	return out
}

func TestSuppressCascades_HeightFollowsPadding(t *testing.T) {
	elements := []*Element{{ID: "card", Type: "view", Bounds: B(0, 0, 300, 120), ChildCount: 2}}
	in := []Mismatch{
		{ElementID: "card", Property: "padding-top", Expected: "16px", Actual: "24px", Severity: SeverityFail},
		{ElementID: "card", Property: "height", Expected: "120px", Actual: "128px", Severity: SeverityWarn},
	}

	out := SuppressCascades(in, elements, nil, nil)
	assert.Equal(t, []string{"padding-top"}, properties(out),
		"the height flag is a consequence of the padding flag")
}

func TestSuppressCascades_WidthFollowsGap(t *testing.T) {
	elements := []*Element{{ID: "row", Type: "view", Bounds: B(0, 0, 300, 40), ChildCount: 3}}
	in := []Mismatch{
		{ElementID: "row", Property: "gap", Expected: "8px", Actual: "16px", Severity: SeverityWarn},
		{ElementID: "row", Property: "width", Expected: "300px", Actual: "316px", Severity: SeverityWarn},
	}

	out := SuppressCascades(in, elements, nil, nil)
	assert.Equal(t, []string{"gap"}, properties(out))
}

func TestSuppressCascades_ChildPositionFollowsAncestorWidth(t *testing.T) {
	elements := []*Element{
		{ID: "panel", Type: "view", Bounds: B(0, 0, 400, 300)},
		{ID: "label", Type: "text", Bounds: B(20, 20, 100, 20), ParentID: "panel"},
	}
	in := []Mismatch{
		{ElementID: "panel", Property: "width", Expected: "400px", Actual: "360px", Severity: SeverityFail},
		{ElementID: "label", Property: "x", Expected: "20px", Actual: "40px", Severity: SeverityWarn},
	}

	out := SuppressCascades(in, elements, nil, nil)
	assert.Equal(t, []string{"width"}, properties(out),
		"the child's x offset derives from the ancestor's width mismatch")
}

func TestSuppressCascades_ColorNeverSuppressed(t *testing.T) {
	elements := []*Element{{ID: "btn", Type: "button", Bounds: B(0, 0, 100, 40)}}
	in := []Mismatch{
		{ElementID: "btn", Property: "background-color", Expected: "#3b82f6", Actual: "#ef4444", Severity: SeverityFail},
		{ElementID: "btn", Property: "font-family", Expected: "Inter", Actual: "Roboto", Severity: SeverityWarn},
		{ElementID: "btn", Property: "x", Expected: "10px", Actual: "60px", Severity: SeverityFail},
	}

	// A missing element triggers structural reflow: x goes, colors stay.
	out := SuppressCascades(in, elements, []string{"Gone"}, nil)
	assert.ElementsMatch(t, []string{"background-color", "font-family"}, properties(out))
}

func TestSuppressCascades_ReflowSparesRootCausedSize(t *testing.T) {
	elements := []*Element{
		{ID: "hero", Type: "view", Bounds: B(0, 0, 375, 200)},
	}
	in := []Mismatch{
		{ElementID: "hero", Property: "width", Expected: "375px", Actual: "320px", Severity: SeverityFail},
		{ElementID: "hero", Property: "background-color", Expected: "#ffffff", Actual: "#fafafa", Severity: SeverityWarn},
		{ElementID: "hero", Property: "corner-radius", Expected: "12px", Actual: "0px", Severity: SeverityFail},
	}

	out := SuppressCascades(in, elements, nil, []string{"stray"})
	assert.Contains(t, properties(out), "width",
		"two independent mismatches on the element make its size flag credible despite the reflow")
}

func TestSuppressCascades_ReflowDropsLoneContainerHeight(t *testing.T) {
	elements := []*Element{
		{ID: "list", Type: "view", Bounds: B(0, 0, 375, 600), ChildCount: 4},
	}
	in := []Mismatch{
		{ElementID: "list", Property: "height", Expected: "600px", Actual: "480px", Severity: SeverityFail},
	}

	out := SuppressCascades(in, elements, []string{"Row 5"}, nil)
	assert.Empty(t, out,
		"a container's height flag next to a missing child is reflow noise")
}

func TestSuppressCascades_ReflowDropsLoneSpacing(t *testing.T) {
	elements := []*Element{
		{ID: "toolbar", Type: "view", Bounds: B(0, 0, 375, 56), ChildCount: 3},
	}
	in := []Mismatch{
		{ElementID: "toolbar", Property: "gap", Expected: "8px", Actual: "20px", Severity: SeverityFail},
		{ElementID: "toolbar", Property: "padding-left", Expected: "16px", Actual: "28px", Severity: SeverityWarn},
	}

	out := SuppressCascades(in, elements, []string{"Search"}, nil)
	assert.Empty(t, out,
		"spacing flags next to a missing sibling are reflow noise like size flags")
}

func TestSuppressCascades_ReflowSparesRootCausedSpacing(t *testing.T) {
	elements := []*Element{
		{ID: "toolbar", Type: "view", Bounds: B(0, 0, 375, 56), ChildCount: 3},
	}
	in := []Mismatch{
		{ElementID: "toolbar", Property: "gap", Expected: "8px", Actual: "20px", Severity: SeverityFail},
		{ElementID: "toolbar", Property: "background-color", Expected: "#ffffff", Actual: "#f1f1f1", Severity: SeverityWarn},
		{ElementID: "toolbar", Property: "corner-radius", Expected: "0px", Actual: "8px", Severity: SeverityWarn},
	}

	out := SuppressCascades(in, elements, []string{"Search"}, nil)
	assert.ElementsMatch(t, []string{"gap", "background-color", "corner-radius"}, properties(out),
		"two independent mismatches make the gap flag credible despite the reflow")
}

func TestSuppressCascades_Idempotent(t *testing.T) {
	elements := []*Element{
		{ID: "panel", Type: "view", Bounds: B(0, 0, 400, 300), ChildCount: 2},
		{ID: "label", Type: "text", Bounds: B(20, 20, 100, 20), ParentID: "panel"},
	}
	in := []Mismatch{
		{ElementID: "panel", Property: "padding-left", Expected: "16px", Actual: "32px", Severity: SeverityFail},
		{ElementID: "panel", Property: "width", Expected: "400px", Actual: "416px", Severity: SeverityWarn},
		{ElementID: "label", Property: "x", Expected: "20px", Actual: "36px", Severity: SeverityWarn},
		{ElementID: "label", Property: "text-color", Expected: "#111111", Actual: "#666666", Severity: SeverityWarn},
	}

	once := SuppressCascades(in, elements, []string{"Gone"}, nil)
	twice := SuppressCascades(once, elements, []string{"Gone"}, nil)
	require.Equal(t, once, twice, "suppress(suppress(x)) == suppress(x)")
}

func TestSuppressCascades_EmptyInput(t *testing.T) {
	assert.Empty(t, SuppressCascades(nil, nil, nil, nil))
}
