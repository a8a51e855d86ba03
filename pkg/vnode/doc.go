// Package vnode turns JSX element triples into snabbdom-style virtual nodes.
//
// A JSX front end calls JSX (automatic runtime, children inside the property
// bag) or H (classic runtime, variadic children). Both produce a *VNode whose
// fields mirror the record a snabbdom patch function consumes: Sel, Data,
// Children, Text, Key and Elm.
//
//	node := vnode.JSX("div", vnode.Props{
//	    "id":        "main",
//	    "className": "card wide",
//	    "data-user": 42,
//	    "onclick":   handler,
//	    "children":  []any{"Hello, ", vnode.JSX("b", vnode.Props{"children": "world"}, nil)},
//	}, nil)
//	// node.Sel == "div#main.card.wide"
//	// node.Data.Dataset["user"] == 42, node.Data.On["click"] == handler
//
// # Property bags
//
// Canonicalize routes every key of a Props bag into exactly one bucket of
// Data: attrs, props, dataset, class, style, on, hook, key, is, or a custom
// module named by a "$" prefix. id and className are folded into the
// selector instead. Store Undefined under a key to mean "not given".
//
// # Children
//
// Flatten walks nested slices depth first. Strings and numbers become text
// leaves; nil, Undefined and booleans become "!" placeholder nodes so list
// positions survive conditional rendering. An element whose only child is a
// text leaf carries that text in Text instead of Children.
//
// # Components
//
// Component receives the whole bag with children embedded. LegacyComponent
// receives the bag and the children separately. Either may return a *VNode
// or a scalar.
//
// # Limits
//
// Building, flattening and the SVG pass recurse once per tree level. There is
// no depth guard; pathologically deep input can exhaust the goroutine stack.
//
// Dynamic type conflicts (a non-string className, a module value that is not
// a map) panic with an *errors.Error. Try recovers those panics.
package vnode
