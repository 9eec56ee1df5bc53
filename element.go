package uilens

import "strings"

// Element is one node of the actual rendered UI, as reported by an external
// inspector. Elements arrive as a flat list; ParentID is a back-reference
// into the same list. The core never mutates an Element.
type Element struct {
	// ID is the inspector-assigned identifier, unique within a snapshot.
	ID string `json:"id"`

	// Identifier is the developer-assigned stable identifier annotation,
	// matchable exactly against a design node id or name. Empty when the
	// implementation carries no annotation.
	Identifier string `json:"identifier,omitempty"`

	// Type is the implementation category name, e.g. "view", "text",
	// "button". Compared case-insensitively.
	Type string `json:"type"`

	Bounds Bounds `json:"bounds"`

	BackgroundColor string `json:"backgroundColor,omitempty"` // hex
	TextColor       string `json:"textColor,omitempty"`       // hex
	Text            string `json:"text,omitempty"`

	FontFamily    string  `json:"fontFamily,omitempty"`
	FontSize      float64 `json:"fontSize,omitempty"`
	FontWeight    int     `json:"fontWeight,omitempty"`
	LineHeight    float64 `json:"lineHeight,omitempty"`
	LetterSpacing float64 `json:"letterSpacing,omitempty"`

	Padding      *Padding `json:"padding,omitempty"`
	Gap          *float64 `json:"gap,omitempty"`
	CornerRadius *float64 `json:"cornerRadius,omitempty"`

	ChildCount int    `json:"childCount"`
	ParentID   string `json:"parentId,omitempty"`
}

// DisplayID returns the identifier annotation when present, the inspector
// id otherwise. Used when reporting mismatches back to a developer.
func (e *Element) DisplayID() string {
	if e.Identifier != "" {
		return e.Identifier
	}
	return e.ID
}

// scaffoldingTypes are framework-provided wrapper categories that exist in
// every implementation regardless of design. Unclaimed elements of these
// types are not reported as extra.
var scaffoldingTypes = map[string]bool{
	"root":           true,
	"window":         true,
	"safe-area":      true,
	"scroll-content": true,
	"status-bar":     true,
	"overlay":        true,
	"navigator":      true,
}

// isScaffolding reports whether the element is framework scaffolding.
func (e *Element) isScaffolding() bool {
	return scaffoldingTypes[strings.ToLower(e.Type)]
}

// elementIndex provides parent and id lookup over a snapshot.
type elementIndex struct {
	byID map[string]*Element
}

func newElementIndex(elements []*Element) *elementIndex {
	idx := &elementIndex{byID: make(map[string]*Element, len(elements))}
	for _, e := range elements {
		idx.byID[e.ID] = e
	}
	return idx
}

// ancestors returns the parent chain of e, nearest first. The chain stops
// at a missing parent or after len(byID) hops, whichever comes first, so a
// corrupt snapshot with a parent cycle cannot loop.
func (idx *elementIndex) ancestors(e *Element) []*Element {
	var out []*Element
	cur := e
	for i := 0; i < len(idx.byID); i++ {
		if cur.ParentID == "" {
			break
		}
		p, ok := idx.byID[cur.ParentID]
		if !ok || p == cur {
			break
		}
		out = append(out, p)
		cur = p
	}
	return out
}
