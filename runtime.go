package jsx

import "github.com/vango-dev/jsx/pkg/vnode"

// Core types.
type (
	VNode           = vnode.VNode
	Data            = vnode.Data
	Props           = vnode.Props
	Key             = vnode.Key
	Component       = vnode.Component
	LegacyComponent = vnode.LegacyComponent
)

// Undefined marks a property or child as absent.
var Undefined = vnode.Undefined

// JSX builds a node from a tag, a property bag carrying children under
// "children", and an optional key.
func JSX(tag any, props Props, key Key) *VNode {
	return vnode.JSX(tag, props, key)
}

// JSXS is emitted for elements with a static children list.
func JSXS(tag any, props Props, key Key) *VNode {
	return vnode.JSXS(tag, props, key)
}

// Fragment groups children without a wrapping element. It is also a valid
// tag for JSX.
func Fragment(props Props) *VNode {
	return vnode.Fragment(props)
}
