package el

import (
	"maps"

	"github.com/vango-dev/jsx/pkg/vnode"
)

// mergedKeys are module properties whose map values accumulate across
// repeated Attr arguments instead of replacing each other.
var mergedKeys = map[string]bool{
	"$attrs":   true,
	"$dataset": true,
	"$hook":    true,
	"$on":      true,
	"$props":   true,
	"$style":   true,
	"$class":   true,
}

// Element builds an element with the given tag. Arguments can be: nil
// (ignored, allows conditional attributes), Attr, []Attr, Props, or any
// child value accepted by vnode.H.
func Element(tag string, args ...any) *VNode {
	bag, children := split(args)
	return vnode.H(tag, bag, children...)
}

// split separates property arguments from children.
func split(args []any) (Props, []any) {
	bag := make(Props)
	children := make([]any, 0, len(args))

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			set(bag, v)
		case []Attr:
			for _, a := range v {
				set(bag, a)
			}
		case Props:
			for k, val := range v {
				set(bag, Attr{Key: k, Value: val})
			}
		default:
			children = append(children, arg)
		}
	}
	return bag, children
}

func set(bag Props, a Attr) {
	switch {
	case a.Key == "":
		return
	case a.Key == "className":
		// Repeated Class arguments concatenate.
		if prev, ok := bag["className"].(string); ok && prev != "" {
			if s, ok := a.Value.(string); ok {
				if s != "" {
					bag["className"] = prev + " " + s
				}
				return
			}
		}
	case mergedKeys[a.Key]:
		prev, ok1 := bag[a.Key].(map[string]any)
		next, ok2 := asMap(a.Value)
		if ok1 && ok2 {
			out := maps.Clone(prev)
			maps.Copy(out, next)
			bag[a.Key] = out
			return
		}
		if ok2 {
			bag[a.Key] = maps.Clone(next)
			return
		}
	}
	bag[a.Key] = a.Value
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case vnode.Attrs:
		return m, true
	case vnode.Dataset:
		return m, true
	case vnode.Hooks:
		return m, true
	case vnode.On:
		return m, true
	case vnode.Props:
		return m, true
	case vnode.Style:
		return m, true
	case vnode.Classes:
		out := make(map[string]any, len(m))
		for k, b := range m {
			out[k] = b
		}
		return out, true
	case map[string]bool:
		out := make(map[string]any, len(m))
		for k, b := range m {
			out[k] = b
		}
		return out, true
	}
	return nil, false
}
