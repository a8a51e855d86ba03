package tree

import (
	"fmt"

	"github.com/vango-dev/jsx/pkg/vnode"
)

// Finding is a legacy property alias found in a document.
type Finding struct {
	// Path locates the element, e.g. "$<ul>.children[1]<li>".
	Path string
	Tag  string
	vnode.Deprecation
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %q is deprecated, use %s", f.Path, f.Key, f.Use)
}

// Lint walks a parsed document and reports every deprecated alias, in
// document order.
func Lint(doc any) []Finding {
	var out []Finding
	lint(doc, "$", &out)
	return out
}

func lint(v any, path string, out *[]Finding) {
	if list, ok := v.([]any); ok {
		for i, item := range list {
			lint(item, fmt.Sprintf("%s[%d]", path, i), out)
		}
		return
	}

	m, ok := asMap(v)
	if !ok {
		return
	}
	tagName, ok := m[fieldTag].(string)
	if !ok {
		return
	}
	if tagName != "" {
		path = path + "<" + tagName + ">"
	}

	if props, ok := asMap(m[fieldProps]); ok {
		bag := make(vnode.Props, len(props))
		for k, p := range props {
			if pm, ok := asMap(p); ok && isUndefined(pm) {
				p = vnode.Undefined
			}
			bag[k] = p
		}
		for _, d := range vnode.DeprecatedKeys(bag) {
			*out = append(*out, Finding{Path: path, Tag: tagName, Deprecation: d})
		}
	}
	if children, ok := m[fieldChildren]; ok {
		lint(children, path+".children", out)
	}
}
