package uilens

import "strings"

// typeCompat maps each design node type to the implementation categories
// it can plausibly be realized as. 1.0 means same family, 0.2-0.5 a
// partial fit, absent means incompatible. The table is fixed; there is no
// continuous distance between UI categories.
var typeCompat = map[NodeType]map[string]float64{
	NodeText: {
		"text": 1, "label": 1, "paragraph": 1, "heading": 1,
		"link": 0.5, "button": 0.3, "input": 0.3,
	},
	NodeButton: {
		"button": 1, "pressable": 1, "touchable": 1,
		"link": 0.5, "view": 0.3, "text": 0.2,
	},
	NodeInput: {
		"input": 1, "textfield": 1, "textarea": 1,
		"select": 0.5, "view": 0.2,
	},
	NodeImage: {
		"image": 1, "img": 1, "picture": 1,
		"svg": 0.4, "view": 0.2,
	},
	NodeVector: {
		"svg": 1, "icon": 1, "vector": 1,
		"image": 0.5, "view": 0.2,
	},
	NodeFrame: {
		"view": 1, "container": 1, "div": 1, "section": 1, "stack": 1,
		"scroll": 0.5, "list": 0.5, "card": 0.5, "button": 0.3,
	},
	NodeGroup: {
		"view": 1, "container": 1, "div": 1, "stack": 1,
		"section": 0.5, "list": 0.5,
	},
	NodeRectangle: {
		"view": 1, "div": 1, "container": 0.5,
		"image": 0.3, "card": 0.5,
	},
	NodeEllipse: {
		"view": 0.5, "svg": 0.5, "image": 0.3, "avatar": 1,
	},
	NodeComponent: {
		"view": 1, "container": 1, "div": 1, "section": 1, "card": 1,
	},
	NodeInstance: {
		"view": 1, "container": 1, "div": 1, "section": 1, "card": 1,
	},
}

// typeCompatibility looks up how compatible an implementation category is
// with a design node type. Unknown pairs score 0.
func typeCompatibility(n NodeType, elemType string) float64 {
	return typeCompat[n][strings.ToLower(elemType)]
}

// elementFamily buckets an implementation category into the coarse design
// family used for fingerprint child-type comparison.
func elementFamily(elemType string) string {
	switch strings.ToLower(elemType) {
	case "text", "label", "paragraph", "heading", "link":
		return "text"
	case "button", "pressable", "touchable":
		return "button"
	case "image", "img", "picture", "svg", "icon", "vector", "avatar":
		return "image"
	case "input", "textfield", "textarea", "select":
		return "input"
	default:
		return "container"
	}
}

// nodeFamily buckets a design node type into the same coarse families.
func nodeFamily(t NodeType) string {
	switch t {
	case NodeText:
		return "text"
	case NodeButton:
		return "button"
	case NodeImage, NodeVector, NodeEllipse:
		return "image"
	case NodeInput:
		return "input"
	default:
		return "container"
	}
}
