package vnode

import "maps"

// withSVG returns a copy of v with every element of its subtree moved into
// the SVG namespace. Element properties other than className become
// attributes. Text leaves and placeholders are returned as is; fragments are
// descended without being stamped.
func withSVG(v *VNode) *VNode {
	if v == nil || v.IsTextLeaf() || v.IsPlaceholder() {
		return v
	}

	out := *v
	if v.IsElement() {
		data := Data{}
		if v.Data != nil {
			data = *v.Data
		}
		if len(data.Props) > 0 {
			attrs := make(Attrs, len(data.Attrs)+len(data.Props))
			maps.Copy(attrs, data.Attrs)
			for k, val := range data.Props {
				if k != "className" {
					attrs[k] = val
				}
			}
			data.Attrs = attrs
		}
		data.Props = nil
		data.NS = SVGNamespace
		out.Data = &data
	}

	if v.Children != nil {
		out.Children = make([]*VNode, len(v.Children))
		for i, c := range v.Children {
			out.Children[i] = withSVG(c)
		}
	}
	return &out
}
