package tree

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/vango-dev/jsx/internal/errors"
	"github.com/vango-dev/jsx/pkg/vnode"
)

// Element description fields.
const (
	fieldTag       = "tag"
	fieldProps     = "props"
	fieldKey       = "key"
	fieldChildren  = "children"
	undefinedField = "$undefined"
)

// FragmentTag selects vnode.Fragment. The empty tag does too.
const FragmentTag = "#fragment"

// Builder turns parsed documents into nodes.
type Builder struct {
	// Components maps tag names to function components: vnode.Component,
	// vnode.LegacyComponent or a plain function with either signature.
	Components map[string]any
}

// Build converts a parsed document into a node. A top-level list builds a
// fragment. Description errors are
// reported with their path in the document; type conflicts raised while
// building (a numeric className, say) are returned as errors too.
func (b *Builder) Build(doc any) (*vnode.VNode, error) {
	var buildErr error
	node, err := vnode.Try(func() *vnode.VNode {
		v, err := b.value(doc, "$")
		if err != nil {
			buildErr = err
			return nil
		}
		if list, ok := v.([]any); ok {
			return vnode.Fragment(vnode.Props{"children": list})
		}
		return vnode.Wrap(v)
	})
	if buildErr != nil {
		return nil, buildErr
	}
	return node, err
}

// Build converts a parsed document with no registered components.
func Build(doc any) (*vnode.VNode, error) {
	return (&Builder{}).Build(doc)
}

// Decode parses and builds a document in one step.
func Decode(data []byte, format Format) (*vnode.VNode, error) {
	doc, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// value converts a document value into something vnode accepts as a child
// or property: elements become nodes, lists and maps are converted
// recursively, JSON numbers become int64 or float64.
func (b *Builder) value(v any, path string) (any, error) {
	switch x := v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return x, nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, nil
		}
		if f, err := x.Float64(); err == nil {
			return f, nil
		}
		return x.String(), nil
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			var err error
			if out[i], err = b.value(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	m, ok := asMap(v)
	if !ok {
		return nil, errors.New("E102").WithDetailf("%s: %T", path, v)
	}
	if isUndefined(m) {
		return vnode.Undefined, nil
	}
	if _, ok := m[fieldTag]; ok {
		return b.element(m, path)
	}
	return nil, errors.New("E102").
		WithDetailf("%s: map without %q", path, fieldTag).
		WithSuggestion(`Give elements a "tag" field; put plain maps under "props"`)
}

// propValue is value for property bags: maps without a tag stay maps.
func (b *Builder) propValue(v any, path string) (any, error) {
	m, ok := asMap(v)
	if !ok {
		return b.value(v, path)
	}
	if isUndefined(m) {
		return vnode.Undefined, nil
	}
	if _, ok := m[fieldTag]; ok {
		return b.element(m, path)
	}
	out := make(map[string]any, len(m))
	for k, item := range m {
		var err error
		if out[k], err = b.propValue(item, path+"."+k); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (b *Builder) element(m map[string]any, path string) (*vnode.VNode, error) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		switch k {
		case fieldTag, fieldProps, fieldKey, fieldChildren:
		default:
			return nil, errors.New("E100").
				WithDetailf("%s: unknown field %q", path, k).
				WithSuggestion(`Element fields are "tag", "props", "key" and "children"`)
		}
	}

	tagName, ok := m[fieldTag].(string)
	if !ok {
		return nil, errors.New("E100").WithDetailf("%s.tag: %T, want string", path, m[fieldTag])
	}
	if tagName != "" {
		path = path + "<" + tagName + ">"
	}

	props := vnode.Props{}
	if raw, ok := m[fieldProps]; ok && raw != nil {
		pm, ok := asMap(raw)
		if !ok {
			return nil, errors.New("E100").WithDetailf("%s.props: %T, want map", path, raw)
		}
		for k, v := range pm {
			val, err := b.propValue(v, path+".props."+k)
			if err != nil {
				return nil, err
			}
			props[k] = val
		}
	}
	if raw, ok := m[fieldChildren]; ok {
		children, err := b.value(raw, path+".children")
		if err != nil {
			return nil, err
		}
		props["children"] = children
	}

	var key vnode.Key
	if raw, ok := m[fieldKey]; ok {
		k, err := b.value(raw, path+".key")
		if err != nil {
			return nil, err
		}
		if _, isNode := k.(*vnode.VNode); isNode {
			return nil, errors.New("E100").WithDetailf("%s.key: element, want string or number", path)
		}
		if !vnode.IsUndefined(k) {
			key = k
		}
	}

	return vnode.JSX(b.resolve(tagName), props, key), nil
}

func (b *Builder) resolve(tagName string) any {
	if tagName == "" || tagName == FragmentTag {
		return vnode.Fragment
	}
	if c, ok := b.Components[tagName]; ok {
		return c
	}
	return tagName
}

func isUndefined(m map[string]any) bool {
	if len(m) != 1 {
		return false
	}
	v, ok := m[undefinedField].(bool)
	return ok && v
}

// asMap accepts the map shapes JSON and YAML decoders produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}
