package uilens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutDocument_FillWidth(t *testing.T) {
	doc := &SourceDoc{
		Nodes: []*SourceNode{{
			ID: "screen", Name: "Screen", Type: NodeFrame,
			Width: Fixed(375), Height: Fixed(600), Axis: AxisColumn,
			Children: []*SourceNode{{
				ID: "hero", Name: "Hero", Type: NodeRectangle,
				Width: Fill(0), Height: Fixed(120),
			}},
		}},
	}
	layout, err := LayoutDocument(doc, "")
	require.NoError(t, err)
	require.Len(t, layout.Roots, 1)

	hero := layout.Roots[0].Children[0]
	assert.Equal(t, 375.0, hero.Bounds.W, "fill child of a zero-padding 375-wide parent resolves to 375")
	assert.Equal(t, 120.0, hero.Bounds.H)
}

func TestLayoutDocument_FillRespectsPaddingAndCap(t *testing.T) {
	doc := &SourceDoc{
		Nodes: []*SourceNode{{
			ID: "screen", Width: Fixed(400), Height: Fixed(400), Axis: AxisColumn,
			Padding:  &Padding{Top: 10, Right: 20, Bottom: 10, Left: 20},
			Children: []*SourceNode{
				{ID: "a", Width: Fill(0), Height: Fixed(50)},
				{ID: "b", Width: Fill(100), Height: Fixed(50)},
			},
		}},
	}
	layout, err := LayoutDocument(doc, "")
	require.NoError(t, err)

	root := layout.Roots[0]
	assert.Equal(t, 360.0, root.Children[0].Bounds.W, "fill resolves against the content box")
	assert.Equal(t, 100.0, root.Children[1].Bounds.W, "cap limits a fill dimension")
	assert.Equal(t, 20.0, root.Children[0].Bounds.X, "children start at the left padding edge")
}

func TestLayoutDocument_ColumnFlowWithGap(t *testing.T) {
	gap := 8.0
	doc := &SourceDoc{
		Nodes: []*SourceNode{{
			ID: "col", Width: Fixed(200), Height: Fixed(300), Axis: AxisColumn,
			Gap: &gap,
			Children: []*SourceNode{
				{ID: "a", Width: Fixed(200), Height: Fixed(40)},
				{ID: "b", Width: Fixed(200), Height: Fixed(40)},
				{ID: "c", Width: Fixed(200), Height: Fixed(40)},
			},
		}},
	}
	layout, err := LayoutDocument(doc, "")
	require.NoError(t, err)

	kids := layout.Roots[0].Children
	assert.Equal(t, 0.0, kids[0].Bounds.Y)
	assert.Equal(t, 48.0, kids[1].Bounds.Y)
	assert.Equal(t, 96.0, kids[2].Bounds.Y)
}

func TestLayoutDocument_FitContainerSizesAfterChildren(t *testing.T) {
	gap := 5.0
	doc := &SourceDoc{
		Nodes: []*SourceNode{{
			ID: "card", Axis: AxisColumn, Gap: &gap,
			Width: Fit(0), Height: Fit(0),
			Padding: &Padding{Top: 10, Right: 10, Bottom: 10, Left: 10},
			Children: []*SourceNode{
				{ID: "a", Width: Fixed(50), Height: Fixed(20)},
				{ID: "b", Width: Fixed(80), Height: Fixed(20)},
			},
		}},
	}
	layout, err := LayoutDocument(doc, "")
	require.NoError(t, err)

	card := layout.Roots[0]
	assert.Equal(t, 100.0, card.Bounds.W, "widest child 80 + 2×10 padding")
	assert.Equal(t, 65.0, card.Bounds.H, "20+5+20 content + 2×10 padding")
}

func TestLayoutDocument_TextHeightEstimate(t *testing.T) {
	doc := &SourceDoc{
		Nodes: []*SourceNode{{
			ID: "title", Type: NodeText, Text: "Hello",
			Font: &Typography{FontSize: 20, LineHeight: 1.5},
		}},
	}
	layout, err := LayoutDocument(doc, "")
	require.NoError(t, err)

	title := layout.Roots[0]
	assert.Equal(t, 30.0, title.Bounds.H, "fontSize × lineHeightMultiplier")
	assert.Equal(t, 60.0, title.Bounds.W, "5 runes × 20 × 0.6")
	assert.Equal(t, NodeText, title.Type)
}

func TestLayoutDocument_ThemeVariables(t *testing.T) {
	doc := &SourceDoc{
		Variables: map[string]Variable{
			"surface": {Values: []ThemedValue{
				{Theme: "light", Value: "#ffffff"},
				{Theme: "dark", Value: "#111111"},
			}},
		},
		Nodes: []*SourceNode{{
			ID: "bg", Width: Fixed(10), Height: Fixed(10), Fill: "$surface",
		}},
	}

	light, err := LayoutDocument(doc, "light")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", light.Roots[0].PrimaryFill())

	dark, err := LayoutDocument(doc, "dark")
	require.NoError(t, err)
	assert.Equal(t, "#111111", dark.Roots[0].PrimaryFill())

	// Unknown theme falls back to the first value.
	other, err := LayoutDocument(doc, "sepia")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", other.Roots[0].PrimaryFill())
}

func TestLayoutDocument_UnresolvedVariableStaysLiteral(t *testing.T) {
	doc := &SourceDoc{
		Nodes: []*SourceNode{{
			ID: "bg", Width: Fixed(10), Height: Fixed(10), Fill: "$missing",
		}},
	}
	layout, err := LayoutDocument(doc, "")
	require.NoError(t, err)
	assert.Equal(t, "$missing", layout.Roots[0].PrimaryFill())
}

func TestLayoutDocument_ComponentExpansion(t *testing.T) {
	doc := &SourceDoc{
		Nodes: []*SourceNode{
			{
				ID: "chip", Name: "Chip", Type: NodeComponent, Reusable: true,
				Width: Fixed(80), Height: Fixed(24), Fill: "#eeeeee",
				Children: []*SourceNode{
					{ID: "chipLabel", Type: NodeText, Text: "Chip", Font: &Typography{FontSize: 12}},
				},
			},
			{
				ID: "screen", Width: Fixed(375), Height: Fixed(100), Axis: AxisRow,
				Children: []*SourceNode{
					{ID: "chip1", Ref: "chip", Fill: "#ff0000"},
					{ID: "chip2", Ref: "chip", Overrides: map[string]*NodeOverride{
						"chipLabel": {Text: "Second"},
					}},
				},
			},
		},
	}
	layout, err := LayoutDocument(doc, "")
	require.NoError(t, err)

	// The prototype itself is not rendered at top level.
	require.Len(t, layout.Roots, 1)
	screen := layout.Roots[0]
	require.Len(t, screen.Children, 2)

	chip1, chip2 := screen.Children[0], screen.Children[1]
	assert.Equal(t, "chip1", chip1.ID)
	assert.Equal(t, "#ff0000", chip1.PrimaryFill(), "instance fill overrides prototype")
	assert.Equal(t, "#eeeeee", chip2.PrimaryFill())
	assert.Equal(t, 80.0, chip1.Bounds.W, "size inherited from prototype")

	require.Len(t, chip2.Children, 1)
	assert.Equal(t, "Second", chip2.Children[0].Text, "descendant override applied")
	assert.Equal(t, "chip2/chipLabel", chip2.Children[0].ID, "descendant ids scoped per instance")

	// Row flow places the second instance after the first.
	assert.Equal(t, 80.0, chip2.Bounds.X)
}

func TestLayoutDocument_CircularReferenceUnexpanded(t *testing.T) {
	doc := &SourceDoc{
		Nodes: []*SourceNode{
			{
				ID: "loop", Reusable: true, Width: Fixed(100), Height: Fixed(100),
				Children: []*SourceNode{
					{ID: "inner", Ref: "loop"},
				},
			},
			{ID: "use", Ref: "loop"},
		},
	}
	layout, err := LayoutDocument(doc, "")
	require.NoError(t, err, "a self-referential component must not loop")
	require.Len(t, layout.Roots, 1)

	use := layout.Roots[0]
	require.Len(t, use.Children, 1)
	assert.Empty(t, use.Children[0].Children, "the recursive reference stays unexpanded")
}

func TestLayoutDocument_ViewportFromTopLevelUnion(t *testing.T) {
	doc := &SourceDoc{
		Nodes: []*SourceNode{
			{ID: "a", X: 0, Y: 0, Width: Fixed(100), Height: Fixed(200)},
			{ID: "b", X: 150, Y: 50, Width: Fixed(100), Height: Fixed(100)},
		},
	}
	layout, err := LayoutDocument(doc, "")
	require.NoError(t, err)
	assert.Equal(t, B(0, 0, 250, 200), layout.Viewport)
}

func TestFlatten_PreOrder(t *testing.T) {
	tree := &DesignNode{ID: "root", Children: []*DesignNode{
		{ID: "a", Children: []*DesignNode{{ID: "a1"}, {ID: "a2"}}},
		{ID: "b"},
	}}
	var ids []string
	for _, n := range Flatten([]*DesignNode{tree}) {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b"}, ids,
		"every node exactly once, parent before child")
}

func TestParseSourceDoc_TaggedFields(t *testing.T) {
	data := []byte(`{
		"variables": {
			"accent": [{"theme": "light", "value": "#3b82f6"}],
			"radius": "8"
		},
		"nodes": [{
			"id": "card",
			"width": "fill:320",
			"height": "hug",
			"cornerRadius": "$radius",
			"children": [{"id": "t", "type": "text", "text": "Hi", "width": 40, "height": 20}]
		}]
	}`)
	doc, err := ParseSourceDoc(data)
	require.NoError(t, err)

	card := doc.Nodes[0]
	assert.Equal(t, SizeFill, card.Width.Mode)
	assert.Equal(t, 320.0, card.Width.Max)
	assert.Equal(t, SizeFit, card.Height.Mode)
	assert.Equal(t, "$radius", card.CornerRadius.Ref)
	assert.Equal(t, SizeFixed, card.Children[0].Width.Mode)
	assert.Equal(t, 40.0, card.Children[0].Width.Value)

	layout, err := LayoutDocument(doc, "light")
	require.NoError(t, err)
	require.NotNil(t, layout.Roots[0].CornerRadius)
	assert.Equal(t, 8.0, *layout.Roots[0].CornerRadius, "numeric variable substituted into corner radius")
}

func TestParseSizeToken_UnknownResolvesToZero(t *testing.T) {
	s := parseSizeToken("stretch")
	assert.Equal(t, SizeFixed, s.Mode)
	assert.Equal(t, 0.0, s.Value)
}
