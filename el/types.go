package el

import "github.com/vango-dev/jsx/pkg/vnode"

// Type aliases for the node primitives used by the DSL.
type (
	VNode = vnode.VNode
	Props = vnode.Props
)

// Attr is one entry of a property bag. An Attr with an empty Key is ignored.
type Attr struct {
	Key   string
	Value any
}
