package uilens

import (
	"strconv"
	"strings"
)

// resolveVariables flattens the document's variables for one theme.
func resolveVariables(vars map[string]Variable, theme string) map[string]string {
	out := make(map[string]string, len(vars))
	for name, v := range vars {
		out[name] = v.Resolve(theme)
	}
	return out
}

// buildRegistry indexes reusable-flagged nodes by id, across all trees.
func buildRegistry(nodes []*SourceNode) map[string]*SourceNode {
	reg := make(map[string]*SourceNode)
	var walk func(n *SourceNode)
	walk = func(n *SourceNode) {
		if n.Reusable && n.ID != "" {
			reg[n.ID] = n
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return reg
}

// cloneSource deep-copies a source subtree.
func cloneSource(n *SourceNode) *SourceNode {
	c := *n
	if n.Width != nil {
		w := *n.Width
		c.Width = &w
	}
	if n.Height != nil {
		h := *n.Height
		c.Height = &h
	}
	if n.Font != nil {
		f := *n.Font
		c.Font = &f
	}
	if n.Padding != nil {
		p := *n.Padding
		c.Padding = &p
	}
	if n.Gap != nil {
		g := *n.Gap
		c.Gap = &g
	}
	if n.CornerRadius != nil {
		r := *n.CornerRadius
		c.CornerRadius = &r
	}
	c.Overrides = nil
	c.Children = make([]*SourceNode, len(n.Children))
	for i, ch := range n.Children {
		c.Children[i] = cloneSource(ch)
	}
	return &c
}

// expandNode replaces component references with customized clones of their
// prototypes. A reference to a prototype already being expanded is left
// unexpanded, which turns a self-referential component into a single
// non-recursive instance instead of an infinite loop.
func expandNode(n *SourceNode, reg map[string]*SourceNode, inProgress map[string]bool) *SourceNode {
	if n.Ref != "" {
		proto, ok := reg[n.Ref]
		if !ok {
			Logger().Warn("component reference not found", "ref", n.Ref, "node", n.ID)
		} else if inProgress[n.Ref] {
			Logger().Warn("circular component reference left unexpanded", "ref", n.Ref, "node", n.ID)
		} else {
			inProgress[n.Ref] = true
			inst := instantiate(proto, n)
			for i, c := range inst.Children {
				inst.Children[i] = expandNode(c, reg, inProgress)
			}
			delete(inProgress, n.Ref)
			return inst
		}
	}
	out := cloneSource(n)
	out.Overrides = n.Overrides
	for i, c := range out.Children {
		out.Children[i] = expandNode(c, reg, inProgress)
	}
	return out
}

// instantiate clones a prototype and applies the instance's root-level
// overrides (position, size, fill, name) plus its per-descendant-id
// overrides. Descendant ids are scoped under the instance id so that two
// instances of one component stay distinguishable.
func instantiate(proto, inst *SourceNode) *SourceNode {
	clone := cloneSource(proto)
	clone.Reusable = false
	clone.ID = inst.ID
	clone.X, clone.Y = inst.X, inst.Y
	if inst.Name != "" {
		clone.Name = inst.Name
	}
	if inst.Width != nil {
		w := *inst.Width
		clone.Width = &w
	}
	if inst.Height != nil {
		h := *inst.Height
		clone.Height = &h
	}
	if inst.Fill != "" {
		clone.Fill = inst.Fill
	}
	if ov := inst.Overrides[proto.ID]; ov != nil {
		applyOverride(clone, ov)
	}
	for _, c := range clone.Children {
		scopeDescendant(c, inst.ID, inst.Overrides)
	}
	return clone
}

func scopeDescendant(n *SourceNode, instanceID string, overrides map[string]*NodeOverride) {
	if ov := overrides[n.ID]; ov != nil {
		applyOverride(n, ov)
	}
	if n.ID != "" {
		n.ID = instanceID + "/" + n.ID
	}
	for _, c := range n.Children {
		scopeDescendant(c, instanceID, overrides)
	}
}

func applyOverride(n *SourceNode, ov *NodeOverride) {
	if ov.Name != "" {
		n.Name = ov.Name
	}
	if ov.Fill != "" {
		n.Fill = ov.Fill
	}
	if ov.Text != "" {
		n.Text = ov.Text
	}
}

// substituteVars resolves "$name" references in fill, font color and corner
// radius. An unresolved string reference is left as the literal token; an
// unresolved numeric reference stays absent.
func substituteVars(n *SourceNode, vars map[string]string) {
	n.Fill = substituteString(n.Fill, vars)
	if n.Font != nil {
		n.Font.Color = substituteString(n.Font.Color, vars)
	}
	if n.CornerRadius != nil && n.CornerRadius.Ref != "" {
		name := strings.TrimPrefix(n.CornerRadius.Ref, "$")
		if raw, ok := vars[name]; ok {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				n.CornerRadius.Value = v
				n.CornerRadius.Ref = ""
			}
		}
		if n.CornerRadius.Ref != "" {
			Logger().Warn("unresolved corner radius variable", "ref", n.CornerRadius.Ref, "node", n.ID)
		}
	}
	for _, c := range n.Children {
		substituteVars(c, vars)
	}
}

func substituteString(s string, vars map[string]string) string {
	if !strings.HasPrefix(s, "$") {
		return s
	}
	if v, ok := vars[strings.TrimPrefix(s, "$")]; ok && v != "" {
		return v
	}
	Logger().Warn("unresolved variable left as literal", "token", s)
	return s
}
