package uilens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMismatch(ms []Mismatch, property string) *Mismatch {
	for i := range ms {
		if ms[i].Property == property {
			return &ms[i]
		}
	}
	return nil
}

func TestCompareProperties_IdenticalPairIsClean(t *testing.T) {
	gap := 12.0
	n := &DesignNode{
		ID: "card", Type: NodeFrame, Bounds: B(20, 40, 300, 120),
		Fills:   []string{"#ffffff"},
		Padding: &Padding{Top: 16, Right: 16, Bottom: 16, Left: 16},
		Gap:     &gap,
	}
	eGap := 12.0
	e := &Element{
		ID: "e1", Type: "view", Bounds: B(20, 40, 300, 120),
		BackgroundColor: "#ffffff",
		Padding:         &Padding{Top: 16, Right: 16, Bottom: 16, Left: 16},
		Gap:             &eGap,
	}
	assert.Empty(t, CompareProperties(n, e, DefaultThresholds()))
}

func TestCompareProperties_WidthFail(t *testing.T) {
	n := &DesignNode{ID: "box", Type: NodeRectangle, Bounds: B(0, 0, 300, 100)}
	e := &Element{ID: "e1", Type: "view", Bounds: B(0, 0, 200, 100)}

	ms := CompareProperties(n, e, DefaultThresholds())
	m := findMismatch(ms, "width")
	require.NotNil(t, m)
	assert.Equal(t, SeverityFail, m.Severity, "33%% off is far beyond the 5%% fail threshold")
	assert.Equal(t, "300px", m.Expected)
	assert.Equal(t, "200px", m.Actual)
	assert.Contains(t, m.Fix, "300px")
}

func TestCompareProperties_ColorWarnBand(t *testing.T) {
	n := &DesignNode{ID: "b", Type: NodeRectangle, Bounds: B(0, 0, 100, 100), Fills: []string{"#3B82F6"}}
	e := &Element{ID: "e1", Type: "view", Bounds: B(0, 0, 100, 100), BackgroundColor: "#3080EE"}

	ms := CompareProperties(n, e, DefaultThresholds())
	m := findMismatch(ms, "background-color")
	require.NotNil(t, m)
	assert.Equal(t, SeverityWarn, m.Severity)
	assert.Contains(t, m.Fix, "#3B82F6")
}

func TestCompareProperties_BackgroundSkippedForTextNodes(t *testing.T) {
	n := &DesignNode{
		ID: "t", Type: NodeText, Text: "Hi", Bounds: B(0, 0, 100, 20),
		Fills:      []string{"#111111"},
		Typography: &Typography{Color: "#111111"},
	}
	e := &Element{
		ID: "e1", Type: "text", Text: "Hi", Bounds: B(0, 0, 100, 20),
		BackgroundColor: "#ffffff", // highlight behind the glyphs, not a fill mismatch
		TextColor:       "#111111",
	}
	ms := CompareProperties(n, e, DefaultThresholds())
	assert.Nil(t, findMismatch(ms, "background-color"))
	assert.Nil(t, findMismatch(ms, "text-color"))
}

func TestCompareProperties_TypographyIdentityIsFixedWarn(t *testing.T) {
	n := &DesignNode{
		ID: "t", Type: NodeText, Text: "Hi", Bounds: B(0, 0, 100, 20),
		Typography: &Typography{FontFamily: "Inter", FontWeight: 600, FontSize: 16},
	}
	e := &Element{
		ID: "e1", Type: "text", Text: "Hi", Bounds: B(0, 0, 100, 20),
		FontFamily: "Roboto", FontWeight: 400, FontSize: 16,
	}

	ms := CompareProperties(n, e, DefaultThresholds())
	family := findMismatch(ms, "font-family")
	require.NotNil(t, family)
	assert.Equal(t, SeverityWarn, family.Severity, "no continuous distance between font families")

	weight := findMismatch(ms, "font-weight")
	require.NotNil(t, weight)
	assert.Equal(t, SeverityWarn, weight.Severity)

	assert.Nil(t, findMismatch(ms, "font-size"))
}

func TestCompareProperties_PositionUsesFlooredWeber(t *testing.T) {
	th := DefaultThresholds()

	// 3px off near the origin: reference floored at 100, 3% → warn.
	n := &DesignNode{ID: "a", Type: NodeRectangle, Bounds: B(10, 0, 50, 50)}
	e := &Element{ID: "e1", Type: "view", Bounds: B(13, 0, 50, 50)}
	m := findMismatch(CompareProperties(n, e, th), "x")
	require.NotNil(t, m)
	assert.Equal(t, SeverityWarn, m.Severity)

	// The same 3px at x=1000 is 0.3% → pass, no mismatch at all.
	n2 := &DesignNode{ID: "b", Type: NodeRectangle, Bounds: B(1000, 0, 50, 50)}
	e2 := &Element{ID: "e2", Type: "view", Bounds: B(1003, 0, 50, 50)}
	assert.Nil(t, findMismatch(CompareProperties(n2, e2, th), "x"))
}

func TestCompareProperties_AbsentPropertiesSkipped(t *testing.T) {
	n := &DesignNode{ID: "a", Type: NodeRectangle, Bounds: B(0, 0, 100, 100)}
	e := &Element{ID: "e1", Type: "view", Bounds: B(0, 0, 100, 100),
		BackgroundColor: "#123456", FontSize: 14}

	// Design has no fill, no typography, no padding: nothing to compare
	// beyond geometry, which is identical.
	assert.Empty(t, CompareProperties(n, e, DefaultThresholds()))
}
