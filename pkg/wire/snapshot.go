package wire

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"

	"github.com/spf13/cast"

	"github.com/vango-dev/jsx/pkg/vnode"
)

// FunctionMarker replaces function values in a snapshot.
const FunctionMarker = "[function]"

// Node is the serializable projection of a vnode.VNode.
type Node struct {
	Sel      string
	Data     *Data
	Children []*Node
	Text     *string
	Key      any
}

// Data is the serializable projection of vnode.Data. Map values hold only
// nil, bool, numbers, strings, []any and map[string]any.
type Data struct {
	Attrs   map[string]any
	Props   map[string]any
	Dataset map[string]any
	Class   map[string]bool
	Style   map[string]any
	On      map[string]any
	Hook    map[string]any
	Key     any
	Is      string
	NS      string
	Modules map[string]any
}

// Snapshot converts a node tree into plain data. A nil node yields nil.
func Snapshot(v *vnode.VNode) *Node {
	if v == nil {
		return nil
	}

	n := &Node{
		Sel: v.Sel,
		Key: sanitize(v.Key, 0),
	}
	if v.Text != nil {
		s := *v.Text
		n.Text = &s
	}
	if v.Data != nil {
		n.Data = snapshotData(v.Data)
	}
	if v.Children != nil {
		n.Children = make([]*Node, len(v.Children))
		for i, c := range v.Children {
			n.Children[i] = Snapshot(c)
		}
	}
	return n
}

func snapshotData(d *vnode.Data) *Data {
	return &Data{
		Attrs:   sanitizeMap(d.Attrs),
		Props:   sanitizeMap(d.Props),
		Dataset: sanitizeMap(d.Dataset),
		Class:   cloneClasses(d.Class),
		Style:   sanitizeMap(d.Style),
		On:      sanitizeMap(d.On),
		Hook:    sanitizeMap(d.Hook),
		Key:     sanitize(d.Key, 0),
		Is:      d.Is,
		NS:      d.NS,
		Modules: sanitizeMap(d.Modules),
	}
}

func cloneClasses(c vnode.Classes) map[string]bool {
	if c == nil {
		return nil
	}
	out := make(map[string]bool, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func sanitizeMap[M ~map[string]any](m M) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if vnode.IsUndefined(v) {
			continue
		}
		out[k] = sanitize(v, 2)
	}
	return out
}

// sanitize reduces v to plain data. Nodes nested in values are snapshotted
// into their map form; functions become FunctionMarker; anything else that
// is not a scalar, list or string-keyed map is stringified.
func sanitize(v any, depth int) any {
	if depth > MaxValueDepth {
		return "[max depth]"
	}

	switch x := v.(type) {
	case json.Number:
		return numberValue(x)
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return x
	case []byte:
		return string(x)
	case *big.Int:
		if x == nil {
			return nil
		}
		if x.IsInt64() {
			return x.Int64()
		}
		return x.String()
	case *vnode.VNode:
		if x == nil {
			return nil
		}
		return Snapshot(x).toMap()
	}
	if vnode.IsUndefined(v) {
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return nil
		}
		return FunctionMarker
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			val := iter.Value().Interface()
			if vnode.IsUndefined(val) {
				continue
			}
			out[iter.Key().String()] = sanitize(val, depth+1)
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = sanitize(rv.Index(i).Interface(), depth+1)
		}
		return out
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return sanitize(rv.Elem().Interface(), depth+1)
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// numberValue converts a JSON number to int64 when it is integral and to
// float64 otherwise. Numbers outside both ranges stay strings.
func numberValue(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
