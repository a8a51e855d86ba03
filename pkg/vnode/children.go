package vnode

import (
	"encoding/json"
	"math/big"
	"reflect"

	"github.com/spf13/cast"

	"github.com/vango-dev/jsx/internal/errors"
)

// Flatten normalizes a children value into a flat list of nodes. Slices are
// flattened depth first at any nesting depth; every other value is passed
// through Wrap.
func Flatten(children any) []*VNode {
	return appendFlat(make([]*VNode, 0), children)
}

func appendFlat(dst []*VNode, child any) []*VNode {
	switch c := child.(type) {
	case []any:
		for _, x := range c {
			dst = appendFlat(dst, x)
		}
		return dst
	case []*VNode:
		for _, x := range c {
			dst = append(dst, Wrap(x))
		}
		return dst
	case []string:
		for _, s := range c {
			dst = append(dst, NewText(s))
		}
		return dst
	case string, []byte:
		// []byte is a string here, not a list of numbers.
		return append(dst, Wrap(c))
	}

	if rv := reflect.ValueOf(child); child != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		for i := 0; i < rv.Len(); i++ {
			dst = appendFlat(dst, rv.Index(i).Interface())
		}
		return dst
	}
	return append(dst, Wrap(child))
}

// Wrap converts a single child into a node. Scalars become text leaves; nil,
// Undefined and booleans become placeholders; nodes pass through unchanged.
func Wrap(child any) *VNode {
	if s, ok := scalarText(child); ok {
		return NewText(s)
	}

	switch c := child.(type) {
	case nil:
		return NewPlaceholder("null")
	case bool:
		return NewPlaceholder(cast.ToString(c))
	case *VNode:
		if c == nil {
			return NewPlaceholder("null")
		}
		return c
	}
	if IsUndefined(child) {
		return NewPlaceholder("undefined")
	}
	panic(errors.New("E163").WithDetailf("child is %T", child))
}

// isScalar reports whether v renders as text: strings and numbers.
func isScalar(v any) bool {
	_, ok := scalarText(v)
	return ok
}

// scalarText returns the text form of a string or numeric value. Floats use
// the shortest representation, so 1.0 renders as "1".
func scalarText(v any) (string, bool) {
	switch n := v.(type) {
	case string:
		return n, true
	case []byte:
		return string(n), true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return cast.ToString(n), true
	case json.Number:
		return n.String(), true
	case *big.Int:
		if n == nil {
			return "", false
		}
		return n.String(), true
	case *big.Float:
		if n == nil {
			return "", false
		}
		return n.Text('g', -1), true
	}
	return "", false
}
