package vnode

import (
	"maps"
	"reflect"

	"github.com/vango-dev/jsx/internal/errors"
)

// Component is a function component that receives its children inside the
// property bag under "children".
type Component func(props Props) any

// LegacyComponent is a function component that receives the property bag
// without children, and the children as a second argument: a flattened
// []*VNode when the caller passed a list, the raw value for a single child,
// and an empty list when there were none.
type LegacyComponent func(props Props, children any) any

// JSX builds a node using the automatic runtime convention: children are
// passed inside props under "children". A non-nil key is stored as the "key"
// property before anything else runs.
//
// tag is an intrinsic element name, a Component or LegacyComponent, or a
// plain function with one of their signatures (Fragment included).
func JSX(tag any, props Props, key Key) *VNode {
	bag := make(Props, len(props)+1)
	maps.Copy(bag, props)
	if key != nil {
		bag["key"] = key
	}

	switch t := tag.(type) {
	case string:
		return element(t, bag)
	case Component:
		return callComponent(t, bag)
	case func(Props) any:
		return callComponent(t, bag)
	case func(Props) *VNode:
		return callComponent(func(p Props) any { return t(p) }, bag)
	case LegacyComponent:
		return callLegacy(t, bag)
	case func(Props, any) any:
		return callLegacy(t, bag)
	case func(Props, any) *VNode:
		return callLegacy(func(p Props, c any) any { return t(p, c) }, bag)
	}
	panic(errors.New("E164").WithDetailf("tag is %T", tag))
}

// JSXS is JSX for elements whose children are a static list. The compiler
// emits it separately; the result is identical.
func JSXS(tag any, props Props, key Key) *VNode {
	return JSX(tag, props, key)
}

// H builds a node using the classic runtime convention: children are passed
// as trailing arguments. They are always collected into a list, so an
// element built without children gets an empty Children slice.
func H(tag any, props Props, children ...any) *VNode {
	bag := make(Props, len(props)+1)
	maps.Copy(bag, props)
	list := make([]any, len(children))
	copy(list, children)
	bag["children"] = list
	return JSX(tag, bag, nil)
}

// Fragment groups the children found in props without a wrapping element.
// The result has no selector, empty Data, and a non-nil Children slice.
func Fragment(props Props) *VNode {
	node := &VNode{Data: &Data{}, Children: []*VNode{}}

	children, ok := props["children"]
	switch {
	case !ok || IsUndefined(children):
	case isList(children):
		node.Children = Flatten(children)
	default:
		node.Children = []*VNode{Wrap(children)}
	}
	return node
}

// FragmentOf is Fragment for the classic runtime.
func FragmentOf(children ...any) *VNode {
	list := make([]any, len(children))
	copy(list, children)
	return Fragment(Props{"children": list})
}

func callComponent(c Component, bag Props) *VNode {
	return withKey(Wrap(c(bag)), bag)
}

func callLegacy(c LegacyComponent, bag Props) *VNode {
	children, ok := bag["children"]
	props := maps.Clone(bag)
	delete(props, "children")

	var arg any
	switch {
	case !ok:
		arg = []*VNode{}
	case isList(children):
		arg = Flatten(children)
	default:
		arg = children
	}
	return withKey(Wrap(c(props, arg)), bag)
}

// withKey applies the caller's $key, else key, to a component result. The
// node is copied so a node shared by the component is left untouched.
func withKey(node *VNode, bag Props) *VNode {
	k, ok := bag["$key"]
	if !ok || IsUndefined(k) {
		k, ok = bag["key"]
	}
	if !ok || IsUndefined(k) {
		return node
	}
	out := *node
	out.Key = k
	return &out
}

func element(tag string, bag Props) *VNode {
	data := Canonicalize(bag)
	node := &VNode{
		Sel:  Selector(tag, bag),
		Data: data,
		Key:  data.Key,
	}

	if children, ok := bag["children"]; ok {
		setChildren(node, children)
	}

	if tag == "svg" {
		return withSVG(node)
	}
	return node
}

func setChildren(node *VNode, children any) {
	switch {
	case IsUndefined(children):
		return
	case isList(children):
		node.Children = Flatten(children)
	case isScalar(children):
		s, _ := scalarText(children)
		node.Text = &s
		return
	default:
		node.Children = []*VNode{Wrap(children)}
	}
	collapse(node)
}

// collapse normalizes a lone selector-less child: a text leaf moves into the
// parent's Text, a fragment is replaced by its own children.
func collapse(node *VNode) {
	for len(node.Children) == 1 {
		only := node.Children[0]
		switch {
		case only.IsTextLeaf():
			s := *only.Text
			node.Text = &s
			node.Children = nil
			return
		case only.IsFragment():
			node.Children = only.Children
		default:
			return
		}
	}
}

// isList reports whether v is a children list rather than a single child.
func isList(v any) bool {
	switch v.(type) {
	case nil, string, []byte:
		return false
	case []any, []*VNode, []string:
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Try runs build and converts a transform panic into an error. Panics that
// do not carry an *errors.Error are re-raised.
func Try(build func() *VNode) (node *VNode, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(*errors.Error); ok {
			node, err = nil, e
			return
		}
		panic(r)
	}()
	return build(), nil
}
