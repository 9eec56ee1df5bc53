package uilens

import (
	"fmt"
	"strings"
)

// NodeType categorizes a design node.
type NodeType string

const (
	NodeFrame     NodeType = "frame"
	NodeGroup     NodeType = "group"
	NodeText      NodeType = "text"
	NodeRectangle NodeType = "rectangle"
	NodeEllipse   NodeType = "ellipse"
	NodeImage     NodeType = "image"
	NodeButton    NodeType = "button"
	NodeInput     NodeType = "input"
	NodeComponent NodeType = "component"
	NodeInstance  NodeType = "instance"
	NodeVector    NodeType = "vector"
)

// Axis is the main layout axis of a container.
type Axis string

const (
	AxisRow    Axis = "row"
	AxisColumn Axis = "column"
	// AxisFree positions children at their own offsets instead of flowing
	// them along a main axis.
	AxisFree Axis = "free"
)

// Padding holds four-sided inner spacing.
type Padding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }

// Typography holds the text styling of a design node.
type Typography struct {
	FontFamily    string  `json:"fontFamily,omitempty"`
	FontSize      float64 `json:"fontSize,omitempty"`
	FontWeight    int     `json:"fontWeight,omitempty"`
	LineHeight    float64 `json:"lineHeight,omitempty"` // multiplier of font size
	LetterSpacing float64 `json:"letterSpacing,omitempty"`
	Color         string  `json:"color,omitempty"` // hex
}

// DesignNode is one node of the intended-UI tree, with absolute bounds as
// produced by the layout engine. Treat as immutable once produced.
type DesignNode struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         NodeType      `json:"type"`
	Bounds       Bounds        `json:"bounds"`
	Fills        []string      `json:"fills,omitempty"` // hex colors, first is primary
	Typography   *Typography   `json:"typography,omitempty"`
	Padding      *Padding      `json:"padding,omitempty"`
	Gap          *float64      `json:"gap,omitempty"`
	CornerRadius *float64      `json:"cornerRadius,omitempty"`
	Axis         Axis          `json:"axis,omitempty"`
	Text         string        `json:"text,omitempty"`
	Children     []*DesignNode `json:"children,omitempty"`
}

// PrimaryFill returns the first fill color, or "" when the node has none.
func (n *DesignNode) PrimaryFill() string {
	if len(n.Fills) == 0 {
		return ""
	}
	return n.Fills[0]
}

// primaryColor is the color used for visual matching: text color for text
// nodes, first fill otherwise.
func (n *DesignNode) primaryColor() string {
	if n.Type == NodeText && n.Typography != nil && n.Typography.Color != "" {
		return n.Typography.Color
	}
	return n.PrimaryFill()
}

// hasText reports whether the node or any descendant carries text content.
func (n *DesignNode) hasText() bool {
	if n.Text != "" {
		return true
	}
	for _, c := range n.Children {
		if c.hasText() {
			return true
		}
	}
	return false
}

// Flatten returns the nodes of the given trees in pre-order: every node
// exactly once, parent before child.
func Flatten(roots []*DesignNode) []*DesignNode {
	var out []*DesignNode
	var walk func(n *DesignNode)
	walk = func(n *DesignNode) {
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return out
}

// DescribeTree renders an indented one-line-per-node description of the
// trees, for logs and reports.
func DescribeTree(roots []*DesignNode) string {
	var sb strings.Builder
	var walk func(n *DesignNode, depth int)
	walk = func(n *DesignNode, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&sb, "%s %q (%.0f,%.0f %.0fx%.0f)\n",
			n.Type, n.Name, n.Bounds.X, n.Bounds.Y, n.Bounds.W, n.Bounds.H)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, r := range roots {
		walk(r, 0)
	}
	return sb.String()
}

// TopFrames returns the names of the top-level frames, in order.
func TopFrames(roots []*DesignNode) []string {
	names := make([]string, 0, len(roots))
	for _, r := range roots {
		names = append(names, r.Name)
	}
	return names
}
