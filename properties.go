package uilens

import (
	"fmt"
	"math"
)

// CompareProperties evaluates every comparable property of one matched
// pair independently and returns the mismatches. Properties absent on
// either side are skipped, never reported.
func CompareProperties(n *DesignNode, e *Element, th Thresholds) []Mismatch {
	c := propComparator{node: n, elem: e, th: th}

	c.colors()
	c.typography()
	c.spacing()
	c.geometry()
	c.cornerRadius()

	return c.out
}

type propComparator struct {
	node *DesignNode
	elem *Element
	th   Thresholds
	out  []Mismatch
}

func (c *propComparator) add(property, expected, actual string, sev Severity, fix string) {
	if sev == SeverityPass {
		return
	}
	c.out = append(c.out, Mismatch{
		ElementID: c.elem.DisplayID(),
		Property:  property,
		Expected:  expected,
		Actual:    actual,
		Severity:  sev,
		Fix:       fix,
	})
}

// colors checks background fill and text color. Background is skipped for
// text nodes, whose fill is the glyph color, not a box behind it.
func (c *propComparator) colors() {
	if c.node.Type != NodeText {
		c.colorProp("background-color", c.node.PrimaryFill(), c.elem.BackgroundColor)
	}
	if c.node.Typography != nil {
		c.colorProp("text-color", c.node.Typography.Color, c.elem.TextColor)
	}
}

func (c *propComparator) colorProp(property, expected, actual string) {
	if expected == "" || actual == "" {
		return
	}
	d, err := ColorDistance(expected, actual)
	if err != nil {
		Logger().Warn("unparsable color skipped", "property", property, "err", err)
		return
	}
	c.add(property, expected, actual, c.th.colorSeverity(d),
		fmt.Sprintf("change %s to %s", property, expected))
}

// typography checks font metrics. Weight and family have no continuous
// distance, so any mismatch reports at fixed warn severity.
func (c *propComparator) typography() {
	ty := c.node.Typography
	if ty == nil {
		return
	}
	if ty.FontSize > 0 && c.elem.FontSize > 0 {
		c.numeric("font-size", ty.FontSize, c.elem.FontSize, "px")
	}
	if ty.FontWeight > 0 && c.elem.FontWeight > 0 && ty.FontWeight != c.elem.FontWeight {
		c.add("font-weight",
			fmt.Sprintf("%d", ty.FontWeight), fmt.Sprintf("%d", c.elem.FontWeight),
			SeverityWarn, fmt.Sprintf("set font-weight to %d", ty.FontWeight))
	}
	if ty.FontFamily != "" && c.elem.FontFamily != "" && ty.FontFamily != c.elem.FontFamily {
		c.add("font-family", ty.FontFamily, c.elem.FontFamily,
			SeverityWarn, fmt.Sprintf("use font family %q", ty.FontFamily))
	}
	if ty.LineHeight > 0 && c.elem.LineHeight > 0 {
		c.numeric("line-height", ty.LineHeight, c.elem.LineHeight, "")
	}
	if ty.LetterSpacing != 0 || c.elem.LetterSpacing != 0 {
		c.numeric("letter-spacing", ty.LetterSpacing, c.elem.LetterSpacing, "px")
	}
}

// spacing checks the four padding sides and the inter-child gap.
func (c *propComparator) spacing() {
	if c.node.Padding != nil && c.elem.Padding != nil {
		np, ep := *c.node.Padding, *c.elem.Padding
		c.numeric("padding-top", np.Top, ep.Top, "px")
		c.numeric("padding-right", np.Right, ep.Right, "px")
		c.numeric("padding-bottom", np.Bottom, ep.Bottom, "px")
		c.numeric("padding-left", np.Left, ep.Left, "px")
	}
	if c.node.Gap != nil && c.elem.Gap != nil {
		c.numeric("gap", *c.node.Gap, *c.elem.Gap, "px")
	}
}

// geometry checks position and dimensions. Position uses the floored
// Weber rule so a 2px offset on a small badge does not fail the build.
func (c *propComparator) geometry() {
	nb, eb := c.node.Bounds, c.elem.Bounds
	c.positioned("x", nb.X, eb.X)
	c.positioned("y", nb.Y, eb.Y)
	c.numeric("width", nb.W, eb.W, "px")
	c.numeric("height", nb.H, eb.H, "px")
}

func (c *propComparator) cornerRadius() {
	if c.node.CornerRadius == nil || c.elem.CornerRadius == nil {
		return
	}
	c.numeric("corner-radius", *c.node.CornerRadius, *c.elem.CornerRadius, "px")
}

// numeric reports a dimensional property using the size severity bands.
func (c *propComparator) numeric(property string, expected, actual float64, unit string) {
	if math.Abs(expected-actual) < 1e-9 {
		return
	}
	c.add(property, formatNum(expected, unit), formatNum(actual, unit),
		c.th.sizeSeverity(expected, actual),
		fmt.Sprintf("set %s to %s", property, formatNum(expected, unit)))
}

// positioned reports a coordinate using the position severity bands.
func (c *propComparator) positioned(property string, expected, actual float64) {
	if math.Abs(expected-actual) < 1e-9 {
		return
	}
	c.add(property, formatNum(expected, "px"), formatNum(actual, "px"),
		c.th.positionSeverity(expected, actual),
		fmt.Sprintf("move %s to %s", property, formatNum(expected, "px")))
}

func formatNum(v float64, unit string) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f%s", v, unit)
	}
	return fmt.Sprintf("%.2f%s", v, unit)
}
