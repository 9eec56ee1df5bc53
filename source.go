package uilens

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SizeMode distinguishes the three sizing behaviors of the constraint
// grammar.
type SizeMode int

const (
	// SizeFixed is an explicit dimension in design units.
	SizeFixed SizeMode = iota

	// SizeFill takes the remaining space of the parent content box, up to
	// an optional cap.
	SizeFill

	// SizeFit shrinks to the extent of the node's children, up to an
	// optional cap.
	SizeFit
)

// Size is one dimension of a source node, parsed once at ingestion.
// The raw design source writes a dimension as a plain number ("200"),
// a fill token ("fill", "fill:320") or a hug token ("hug", "hug:480").
type Size struct {
	Mode  SizeMode
	Value float64 // fixed dimension
	Max   float64 // optional cap for fill/fit; 0 means uncapped
}

// Fixed returns a fixed Size.
func Fixed(v float64) *Size { return &Size{Mode: SizeFixed, Value: v} }

// Fill returns a fill-remaining-space Size with an optional cap (0 = none).
func Fill(max float64) *Size { return &Size{Mode: SizeFill, Max: max} }

// Fit returns a shrink-to-fit Size with an optional cap (0 = none).
func Fit(max float64) *Size { return &Size{Mode: SizeFit, Max: max} }

// UnmarshalJSON accepts a JSON number or a sizing token string.
// An unrecognized token resolves to a fixed zero dimension; the document
// still lays out, degraded, and the token is logged.
func (s *Size) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = Size{Mode: SizeFixed, Value: num}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = parseSizeToken(str)
	return nil
}

func parseSizeToken(str string) Size {
	tok, arg, _ := strings.Cut(strings.TrimSpace(str), ":")
	var max float64
	if arg != "" {
		max, _ = strconv.ParseFloat(arg, 64)
	}
	switch strings.ToLower(tok) {
	case "fill":
		return Size{Mode: SizeFill, Max: max}
	case "hug", "fit":
		return Size{Mode: SizeFit, Max: max}
	default:
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			return Size{Mode: SizeFixed, Value: v}
		}
		Logger().Warn("unknown sizing token, resolving to zero", "token", str)
		return Size{Mode: SizeFixed, Value: 0}
	}
}

// Scalar is a numeric field that may instead reference a variable
// ("$radius-md"). Parsed once at ingestion.
type Scalar struct {
	Value float64
	Ref   string // variable reference ("$name"), empty when literal
}

// UnmarshalJSON accepts a JSON number or a "$name" reference string.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = Scalar{Value: num}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = Scalar{Ref: str}
	return nil
}

// ThemedValue is one theme's value of a variable.
type ThemedValue struct {
	Theme string `json:"theme"`
	Value string `json:"value"`
}

// Variable is a named design token with one value per theme.
type Variable struct {
	Values []ThemedValue
}

// UnmarshalJSON accepts either a bare string (an untheme'd value) or a
// list of {theme, value} objects.
func (v *Variable) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		v.Values = []ThemedValue{{Value: str}}
		return nil
	}
	return json.Unmarshal(data, &v.Values)
}

// Resolve picks the value for the requested theme, falling back to the
// first value. Returns "" for a variable with no values.
func (v Variable) Resolve(theme string) string {
	for _, tv := range v.Values {
		if tv.Theme == theme {
			return tv.Value
		}
	}
	if len(v.Values) > 0 {
		return v.Values[0].Value
	}
	return ""
}

// NodeOverride customizes one descendant of an instantiated component.
type NodeOverride struct {
	Name string `json:"name,omitempty"`
	Fill string `json:"fill,omitempty"`
	Text string `json:"text,omitempty"`
}

// SourceNode is one node of a raw design-source document, before layout.
type SourceNode struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type NodeType `json:"type"`

	// X and Y position the node within a free-axis parent, or place a
	// top-level node on the canvas. Ignored under row/column flow.
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	Width  *Size `json:"width,omitempty"`
	Height *Size `json:"height,omitempty"`

	Fill         string      `json:"fill,omitempty"` // hex or "$variable"
	Text         string      `json:"text,omitempty"`
	Font         *Typography `json:"font,omitempty"`
	Padding      *Padding    `json:"padding,omitempty"`
	Gap          *float64    `json:"gap,omitempty"`
	CornerRadius *Scalar     `json:"cornerRadius,omitempty"`
	Axis         Axis        `json:"axis,omitempty"`

	// Reusable registers this node as a component prototype that other
	// nodes may instantiate via Ref.
	Reusable bool `json:"reusable,omitempty"`

	// Ref instantiates the prototype with the given id in place of this
	// node. The instance's own position/size/fill/name override the
	// prototype's, and Overrides customize descendants by id.
	Ref       string                   `json:"ref,omitempty"`
	Overrides map[string]*NodeOverride `json:"overrides,omitempty"`

	Children []*SourceNode `json:"children,omitempty"`
}

// SourceDoc is a raw design-source document: named variables plus the
// top-level node trees.
type SourceDoc struct {
	Variables map[string]Variable `json:"variables,omitempty"`
	Nodes     []*SourceNode       `json:"nodes"`
}

// ParseSourceDoc decodes a raw design-source document from JSON.
// Heterogeneous fields (sizing tokens, themed variables, scalar
// references) are parsed into their tagged forms here, once.
func ParseSourceDoc(data []byte) (*SourceDoc, error) {
	var doc SourceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
