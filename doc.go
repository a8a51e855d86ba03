// Package jsx is the automatic JSX runtime for snabbdom-style virtual nodes.
//
// A JSX compiler configured with this package as its import source emits
// calls to JSX, JSXS and Fragment:
//
//	node := jsx.JSX("a", jsx.Props{
//	    "href":     "/docs",
//	    "children": "Read the docs",
//	}, nil)
//
// The heavy lifting lives in pkg/vnode; this package only re-exports the
// entry points and types a generated file needs. Hand-written code usually
// prefers the el package or vnode.H.
package jsx
