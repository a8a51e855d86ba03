package wire

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
)

// Field names of the snabbdom record.
const (
	fieldSel      = "sel"
	fieldData     = "data"
	fieldChildren = "children"
	fieldText     = "text"
	fieldKey      = "key"
)

// Field names of the data record. Custom modules share the namespace and
// never override these.
var dataFields = map[string]bool{
	"attrs": true, "props": true, "dataset": true, "class": true, "style": true,
	"on": true, "hook": true, "key": true, "is": true, "ns": true,
}

// toMap renders n as the snabbdom record. Absent fields are left out; an
// empty children list is kept.
func (n *Node) toMap() map[string]any {
	if n == nil {
		return nil
	}
	m := make(map[string]any, 5)
	if n.Sel != "" {
		m[fieldSel] = n.Sel
	}
	if n.Data != nil {
		m[fieldData] = n.Data.toMap()
	}
	if n.Children != nil {
		children := make([]any, len(n.Children))
		for i, c := range n.Children {
			if c == nil {
				children[i] = nil
				continue
			}
			children[i] = c.toMap()
		}
		m[fieldChildren] = children
	}
	if n.Text != nil {
		m[fieldText] = *n.Text
	}
	if n.Key != nil {
		m[fieldKey] = n.Key
	}
	return m
}

func (d *Data) toMap() map[string]any {
	m := make(map[string]any)
	for name, v := range d.Modules {
		if !dataFields[name] {
			m[name] = v
		}
	}
	put := func(name string, v map[string]any) {
		if v != nil {
			m[name] = v
		}
	}
	put("attrs", d.Attrs)
	put("props", d.Props)
	put("dataset", d.Dataset)
	put("style", d.Style)
	put("on", d.On)
	put("hook", d.Hook)
	if d.Class != nil {
		class := make(map[string]any, len(d.Class))
		for k, v := range d.Class {
			class[k] = v
		}
		m["class"] = class
	}
	if d.Key != nil {
		m["key"] = d.Key
	}
	if d.Is != "" {
		m["is"] = d.Is
	}
	if d.NS != "" {
		m["ns"] = d.NS
	}
	return m
}

// nodeFromMap is the inverse of toMap for decoded input. v must be a
// string-keyed map or nil.
func nodeFromMap(v any, depth int) (*Node, error) {
	if err := checkDepth(depth, MaxNodeDepth); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	m, err := asRecord(v)
	if err != nil {
		return nil, fmt.Errorf("node: %w", err)
	}

	n := &Node{}
	for k, val := range m {
		switch k {
		case fieldSel:
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("sel is %T, want string", val)
			}
			n.Sel = s
		case fieldText:
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("text is %T, want string", val)
			}
			n.Text = &s
		case fieldKey:
			n.Key, err = normalize(val, 1)
			if err != nil {
				return nil, err
			}
		case fieldData:
			if n.Data, err = dataFromMap(val); err != nil {
				return nil, err
			}
		case fieldChildren:
			list, ok := val.([]any)
			if !ok {
				return nil, fmt.Errorf("children is %T, want list", val)
			}
			n.Children = make([]*Node, len(list))
			for i, c := range list {
				if n.Children[i], err = nodeFromMap(c, depth+1); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("unknown node field %q", k)
		}
	}
	return n, nil
}

func dataFromMap(v any) (*Data, error) {
	if v == nil {
		return nil, nil
	}
	m, err := asRecord(v)
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}

	d := &Data{}
	for k, raw := range m {
		val, err := normalize(raw, 1)
		if err != nil {
			return nil, err
		}
		switch k {
		case "attrs", "props", "dataset", "style", "on", "hook":
			bucket, ok := val.(map[string]any)
			if !ok && val != nil {
				return nil, fmt.Errorf("data.%s is %T, want map", k, val)
			}
			switch k {
			case "attrs":
				d.Attrs = bucket
			case "props":
				d.Props = bucket
			case "dataset":
				d.Dataset = bucket
			case "style":
				d.Style = bucket
			case "on":
				d.On = bucket
			case "hook":
				d.Hook = bucket
			}
		case "class":
			bucket, ok := val.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("data.class is %T, want map", val)
			}
			d.Class = make(map[string]bool, len(bucket))
			for name, on := range bucket {
				b, err := cast.ToBoolE(on)
				if err != nil {
					return nil, fmt.Errorf("data.class.%s: %w", name, err)
				}
				d.Class[name] = b
			}
		case "key":
			d.Key = val
		case "is":
			d.Is = cast.ToString(val)
		case "ns":
			d.NS = cast.ToString(val)
		default:
			if d.Modules == nil {
				d.Modules = make(map[string]any)
			}
			d.Modules[k] = val
		}
	}
	return d, nil
}

// asRecord accepts the map shapes decoders produce.
func asRecord(v any) (map[string]any, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("map key is %T, want string", k)
			}
			out[s] = val
		}
		return out, nil
	}
	return nil, fmt.Errorf("got %T, want map", v)
}

// normalize converts decoded values into the Data value domain and enforces
// MaxValueDepth.
func normalize(v any, depth int) (any, error) {
	if err := checkDepth(depth, MaxValueDepth); err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case json.Number:
		return numberValue(x), nil
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			var err error
			if out[i], err = normalize(item, depth+1); err != nil {
				return nil, err
			}
		}
		return out, nil
	case map[string]any, map[any]any:
		m, err := asRecord(x)
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, len(m))
		for k, item := range m {
			if out[k], err = normalize(item, depth+1); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return v, nil
}

// Equal reports whether two snapshots render to the same record.
func Equal(a, b *Node) bool {
	ja, errA := JSON.Marshal(a)
	jb, errB := JSON.Marshal(b)
	return errA == nil && errB == nil && string(ja) == string(jb)
}
