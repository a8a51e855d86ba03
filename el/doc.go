// Package el is a Go DSL for building snabbdom virtual nodes without a JSX
// compiler.
//
// Element constructors take a mixed argument list. Attr values (and []Attr,
// Props) populate the property bag; every other argument is a child:
//
//	import . "github.com/vango-dev/jsx/el"
//
//	Ul(Class("todos"), Key("list"),
//	    Range(items, func(it Item, _ int) *VNode {
//	        return Li(Key(it.ID), OnClick(toggle), it.Title)
//	    }),
//	)
//
// The bag is canonicalized exactly like a JSX property bag, so Attr keys use
// JSX spellings: "className", "data-*", "aria-*", "on*", "$attrs", ....
package el
