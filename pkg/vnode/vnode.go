package vnode

import "strings"

// Placeholder is the selector of the inert nodes that stand in for nil,
// Undefined and boolean children.
const Placeholder = "!"

// SVGNamespace is stamped on every element of an <svg> subtree.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Key identifies a node across renders. It holds a string or a number; nil
// means no key.
type Key = any

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks a property or child as absent. Properties holding it are
// skipped; as a child it renders as a placeholder with text "undefined".
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined marker.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// VNode is a virtual node in the shape a snabbdom patch function expects.
type VNode struct {
	// Sel is the element selector ("div#id.cls"), Placeholder, or "" for
	// text leaves and fragments.
	Sel string

	// Data is nil for text leaves.
	Data *Data

	// Children is nil when absent. Fragments always carry a non-nil slice.
	Children []*VNode

	// Text is nil when absent.
	Text *string

	Key Key

	// Elm is the rendered DOM target. Always nil here.
	Elm any
}

// NewText returns a selector-less text leaf.
func NewText(s string) *VNode {
	return &VNode{Text: &s}
}

// NewPlaceholder returns a "!" node whose text names the value it replaced.
func NewPlaceholder(text string) *VNode {
	return &VNode{Sel: Placeholder, Data: &Data{}, Text: &text}
}

// TextValue returns the text payload, or "" when there is none.
func (v *VNode) TextValue() string {
	if v == nil || v.Text == nil {
		return ""
	}
	return *v.Text
}

// IsTextLeaf reports whether v is a selector-less node carrying text.
func (v *VNode) IsTextLeaf() bool {
	return v != nil && v.Sel == "" && v.Text != nil
}

// IsPlaceholder reports whether v stands in for a nil, Undefined or boolean child.
func (v *VNode) IsPlaceholder() bool {
	return v != nil && v.Sel == Placeholder
}

// IsFragment reports whether v is a selector-less grouping node.
func (v *VNode) IsFragment() bool {
	return v != nil && v.Sel == "" && v.Text == nil
}

// IsElement reports whether v is an intrinsic element.
func (v *VNode) IsElement() bool {
	return v != nil && v.Sel != "" && v.Sel != Placeholder
}

// Tag returns the element name part of the selector.
func (v *VNode) Tag() string {
	if !v.IsElement() {
		return ""
	}
	if i := strings.IndexAny(v.Sel, "#."); i >= 0 {
		return v.Sel[:i]
	}
	return v.Sel
}

// Walk calls fn for v and every descendant, depth first. Returning false
// from fn skips the node's children.
func (v *VNode) Walk(fn func(*VNode) bool) {
	if v == nil || !fn(v) {
		return
	}
	for _, c := range v.Children {
		c.Walk(fn)
	}
}
