package uilens

import (
	"errors"
	"math"
	"unicode/utf8"
)

// Text sizing fallbacks used when a text node omits explicit metrics.
const (
	defaultFontSize   = 16.0
	defaultLineHeight = 1.2

	// avgCharWidthFactor approximates the mean advance of a proportional
	// glyph as a fraction of the font size.
	avgCharWidthFactor = 0.6
)

// Layout is the output of the layout engine: absolute-positioned design
// node trees plus the enclosing viewport.
type Layout struct {
	Roots    []*DesignNode
	Viewport Bounds
}

// Flatten returns every laid-out node in pre-order.
func (l *Layout) Flatten() []*DesignNode {
	return Flatten(l.Roots)
}

// LayoutDocument resolves a raw design-source document into a Layout for
// the requested theme. The five phases run in order: variable resolution,
// component registration, reference expansion, variable substitution and
// constraint layout. Resolution problems (unknown variables, circular
// references, unknown sizing tokens) degrade locally and never fail the
// document; see the package documentation for the exact behavior.
func LayoutDocument(doc *SourceDoc, theme string) (*Layout, error) {
	if doc == nil {
		return nil, errors.New("uilens: nil source document")
	}

	vars := resolveVariables(doc.Variables, theme)
	registry := buildRegistry(doc.Nodes)

	out := &Layout{}
	for _, root := range doc.Nodes {
		if root.Reusable {
			// Prototypes are instantiated where referenced, not rendered
			// at top level.
			continue
		}
		expanded := expandNode(root, registry, map[string]bool{})
		substituteVars(expanded, vars)

		node := solveSubtree(expanded, 0, 0)
		node.Bounds.X = expanded.X
		node.Bounds.Y = expanded.Y
		absolutize(node)
		out.Roots = append(out.Roots, node)
		out.Viewport = out.Viewport.Union(node.Bounds)
	}
	Logger().Debug("layout complete",
		"frames", len(out.Roots),
		"viewport_w", out.Viewport.W,
		"viewport_h", out.Viewport.H)
	return out, nil
}

// solveSubtree computes sizes bottom-up and child positions relative to
// the node's own top-left corner. The caller assigns the node's X/Y.
//
// Fit-to-content containers lay out their children first against a
// zero-size content box, then derive their own size from the children's
// extent. A fill child inside such a container therefore resolves to its
// cap, or zero.
func solveSubtree(n *SourceNode, parentContentW, parentContentH float64) *DesignNode {
	var pad Padding
	if n.Padding != nil {
		pad = *n.Padding
	}
	var gap float64
	if n.Gap != nil {
		gap = *n.Gap
	}

	w, wKnown := resolveDim(n.Width, parentContentW)
	h, hKnown := resolveDim(n.Height, parentContentH)

	contentW, contentH := 0.0, 0.0
	if wKnown {
		contentW = math.Max(0, w-pad.Horizontal())
	}
	if hKnown {
		contentH = math.Max(0, h-pad.Vertical())
	}

	children := make([]*DesignNode, len(n.Children))
	for i, c := range n.Children {
		children[i] = solveSubtree(c, contentW, contentH)
	}

	// Flow children along the main axis with a running cursor.
	axis := n.Axis
	if axis == "" {
		axis = AxisColumn
	}
	cursor := 0.0
	for i, c := range children {
		switch axis {
		case AxisRow:
			c.Bounds.X = pad.Left + cursor
			c.Bounds.Y = pad.Top
			cursor += c.Bounds.W + gap
		case AxisColumn:
			c.Bounds.X = pad.Left
			c.Bounds.Y = pad.Top + cursor
			cursor += c.Bounds.H + gap
		default: // AxisFree
			c.Bounds.X = pad.Left + n.Children[i].X
			c.Bounds.Y = pad.Top + n.Children[i].Y
		}
	}

	if !wKnown {
		w = fitWidth(n, children, pad)
		if n.Width != nil && n.Width.Mode == SizeFit && n.Width.Max > 0 {
			w = math.Min(w, n.Width.Max)
		}
	}
	if !hKnown {
		h = fitHeight(n, children, pad)
		if n.Height != nil && n.Height.Mode == SizeFit && n.Height.Max > 0 {
			h = math.Min(h, n.Height.Max)
		}
	}

	node := &DesignNode{
		ID:       n.ID,
		Name:     n.Name,
		Type:     nodeTypeOf(n),
		Bounds:   Bounds{W: w, H: h},
		Text:     n.Text,
		Axis:     n.Axis,
		Children: children,
	}
	if n.Fill != "" {
		node.Fills = []string{n.Fill}
	}
	if n.Font != nil {
		f := *n.Font
		node.Typography = &f
	}
	if n.Padding != nil {
		p := *n.Padding
		node.Padding = &p
	}
	if n.Gap != nil {
		g := *n.Gap
		node.Gap = &g
	}
	if n.CornerRadius != nil && n.CornerRadius.Ref == "" {
		r := n.CornerRadius.Value
		node.CornerRadius = &r
	}
	return node
}

// resolveDim resolves a dimension against the parent content box.
// known is false when the dimension must be derived from children.
func resolveDim(s *Size, parentContent float64) (v float64, known bool) {
	if s == nil {
		return 0, false
	}
	switch s.Mode {
	case SizeFixed:
		return s.Value, true
	case SizeFill:
		v = parentContent
		if s.Max > 0 {
			v = math.Min(v, s.Max)
		}
		return v, true
	default: // SizeFit
		return 0, false
	}
}

// fitWidth derives a width from children extents, or estimates one for
// text content.
func fitWidth(n *SourceNode, children []*DesignNode, pad Padding) float64 {
	if len(children) == 0 {
		if n.Text != "" {
			return estimatedTextWidth(n) + pad.Horizontal()
		}
		return pad.Horizontal()
	}
	right := 0.0
	for _, c := range children {
		right = math.Max(right, c.Bounds.Right())
	}
	return right + pad.Right
}

// fitHeight derives a height from children extents. Text nodes without an
// explicit height estimate one line as fontSize × lineHeightMultiplier.
func fitHeight(n *SourceNode, children []*DesignNode, pad Padding) float64 {
	if len(children) == 0 {
		if n.Text != "" {
			size, line := defaultFontSize, defaultLineHeight
			if n.Font != nil {
				if n.Font.FontSize > 0 {
					size = n.Font.FontSize
				}
				if n.Font.LineHeight > 0 {
					line = n.Font.LineHeight
				}
			}
			return size*line + pad.Vertical()
		}
		return pad.Vertical()
	}
	bottom := 0.0
	for _, c := range children {
		bottom = math.Max(bottom, c.Bounds.Bottom())
	}
	return bottom + pad.Bottom
}

func estimatedTextWidth(n *SourceNode) float64 {
	size := defaultFontSize
	if n.Font != nil && n.Font.FontSize > 0 {
		size = n.Font.FontSize
	}
	return float64(utf8.RuneCountInString(n.Text)) * size * avgCharWidthFactor
}

func nodeTypeOf(n *SourceNode) NodeType {
	if n.Type != "" {
		return n.Type
	}
	if n.Text != "" {
		return NodeText
	}
	return NodeFrame
}

// absolutize shifts every descendant from parent-relative to absolute
// coordinates.
func absolutize(n *DesignNode) {
	for _, c := range n.Children {
		c.Bounds.X += n.Bounds.X
		c.Bounds.Y += n.Bounds.Y
		absolutize(c)
	}
}
