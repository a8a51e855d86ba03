package el

import (
	"fmt"

	"github.com/vango-dev/jsx/pkg/vnode"
)

// Text creates a text node.
func Text(content string) *VNode {
	return vnode.NewText(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	return vnode.FragmentOf(children...)
}

// Use renders a function component with the given props and children.
func Use(component any, props Props, children ...any) *VNode {
	return vnode.H(component, props, children...)
}

// If returns the node if condition is true, nil otherwise. A nil child
// renders as a placeholder, so siblings keep their positions.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but only calls fn when condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, node *VNode) *VNode {
	if !condition {
		return node
	}
	return nil
}

// Switch returns cases[value], or fallback when value has no case.
func Switch[T comparable](value T, cases map[T]*VNode, fallback *VNode) *VNode {
	if node, ok := cases[value]; ok {
		return node
	}
	return fallback
}

// Range maps a slice to nodes, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Keyed is Range for keyed lists: every node without a key gets key(item),
// so snabbdom can match siblings across patches.
func Keyed[T any](items []T, key func(T) vnode.Key, fn func(T) *VNode) []*VNode {
	return Range(items, func(item T, _ int) *VNode {
		node := fn(item)
		if node != nil && node.Key == nil {
			node.Key = key(item)
			if node.Data != nil {
				node.Data.Key = node.Key
			}
		}
		return node
	})
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *VNode) []*VNode {
	if n <= 0 {
		return nil
	}
	result := make([]*VNode, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			result = append(result, node)
		}
	}
	return result
}
