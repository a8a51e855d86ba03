package vnode

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/vango-dev/jsx/internal/errors"
)

func el(sel string, data *Data, children ...*VNode) *VNode {
	if data == nil {
		data = &Data{}
	}
	n := &VNode{Sel: sel, Data: data, Key: data.Key}
	if children != nil {
		n.Children = children
	}
	return n
}

func textEl(sel string, data *Data, text string) *VNode {
	n := el(sel, data)
	n.Text = &text
	return n
}

func assertNode(t *testing.T, got, want *VNode) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("node = %s, want %s", dump(got), dump(want))
	}
}

func TestJSXSelector(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		want  string
	}{
		{"bare", nil, "div"},
		{"id and classes", Props{"id": "id", "className": "foo bar"}, "div#id.foo.bar"},
		{"extra whitespace", Props{"className": "  foo\tbar  "}, "div.foo.bar"},
		{"empty className", Props{"className": ""}, "div"},
		{"null id", Props{"id": nil}, "div"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JSX("div", tt.props, nil)
			assertNode(t, got, &VNode{Sel: tt.want, Data: &Data{}})
		})
	}
}

func TestJSXSelectorTypeErrors(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		code  string
	}{
		{"className", Props{"className": 1}, "E160"},
		{"id", Props{"id": true}, "E161"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Try(func() *VNode { return JSX("div", tt.props, nil) })
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestJSXKey(t *testing.T) {
	t.Run("$key property", func(t *testing.T) {
		assertNode(t, JSX("div", Props{"$key": "foo"}, nil), el("div", &Data{Key: "foo"}))
	})

	t.Run("key argument", func(t *testing.T) {
		assertNode(t, JSX("div", nil, "foo"), el("div", &Data{Key: "foo"}))
	})

	t.Run("numeric key", func(t *testing.T) {
		assertNode(t, JSX("li", nil, 3), el("li", &Data{Key: 3}))
	})

	t.Run("$key beats key argument", func(t *testing.T) {
		assertNode(t, JSX("div", Props{"$key": "a"}, "b"), el("div", &Data{Key: "a"}))
	})
}

func TestJSXText(t *testing.T) {
	t.Run("string child", func(t *testing.T) {
		got := JSX("div", Props{"children": "Hello, world!"}, nil)
		assertNode(t, got, textEl("div", nil, "Hello, world!"))
	})

	t.Run("number child", func(t *testing.T) {
		got := JSX("span", Props{"children": 7}, nil)
		assertNode(t, got, textEl("span", nil, "7"))
	})

	t.Run("single text in list collapses", func(t *testing.T) {
		got := JSX("p", Props{"children": []any{"only"}}, nil)
		assertNode(t, got, textEl("p", nil, "only"))
	})

	t.Run("undefined children", func(t *testing.T) {
		got := JSX("p", Props{"children": Undefined}, nil)
		assertNode(t, got, el("p", nil))
	})

	t.Run("single placeholder", func(t *testing.T) {
		got := JSX("p", Props{"children": nil}, nil)
		assertNode(t, got, el("p", nil, NewPlaceholder("null")))
	})
}

func TestJSXChildren(t *testing.T) {
	want := el("div", nil,
		textEl("span", nil, "Hello,"),
		textEl("span", nil, "world!"),
	)

	t.Run("list", func(t *testing.T) {
		got := JSX("div", Props{"children": []any{
			JSX("span", Props{"children": "Hello,"}, nil),
			JSX("span", Props{"children": "world!"}, nil),
		}}, nil)
		assertNode(t, got, want)
	})

	t.Run("mapped", func(t *testing.T) {
		var spans []*VNode
		for _, s := range []string{"Hello,", "world!"} {
			spans = append(spans, JSX("span", Props{"children": s}, nil))
		}
		assertNode(t, JSX("div", Props{"children": []any{spans}}, nil), want)
	})

	t.Run("mixed nesting", func(t *testing.T) {
		got := JSXS("div", Props{"children": []any{
			JSX("span", Props{"children": "Hello,"}, nil),
			[]any{JSX("span", Props{"children": "world!"}, nil)},
		}}, nil)
		assertNode(t, got, want)
	})

	t.Run("single element", func(t *testing.T) {
		got := JSX("div", Props{"children": JSX("span", nil, nil)}, nil)
		assertNode(t, got, el("div", nil, el("span", nil)))
	})
}

func TestJSXNestedChildren(t *testing.T) {
	var rows []any
	for _, x := range []string{"a", "b"} {
		var cells []*VNode
		for _, y := range []string{"c", "d"} {
			cells = append(cells, JSX("li", Props{"children": x + y}, nil))
		}
		rows = append(rows, cells)
	}

	got := JSX("ul", Props{"children": rows}, nil)
	assertNode(t, got, el("ul", nil,
		textEl("li", nil, "ac"),
		textEl("li", nil, "ad"),
		textEl("li", nil, "bc"),
		textEl("li", nil, "bd"),
	))
}

func TestJSXConditionalRendering(t *testing.T) {
	shown := JSX("span", Props{"children": "shown"}, nil)
	got := JSX("div", Props{"children": []any{shown, false, nil, Undefined}}, nil)

	assertNode(t, got, el("div", nil,
		textEl("span", nil, "shown"),
		NewPlaceholder("false"),
		NewPlaceholder("null"),
		NewPlaceholder("undefined"),
	))
}

func TestJSXFragmentCollapse(t *testing.T) {
	t.Run("fragment child replaced by its children", func(t *testing.T) {
		frag := Fragment(Props{"children": []any{JSX("b", nil, nil), JSX("i", nil, nil)}})
		got := JSX("div", Props{"children": frag}, nil)
		assertNode(t, got, el("div", nil, el("b", nil), el("i", nil)))
	})

	t.Run("fragment of text collapses to text", func(t *testing.T) {
		frag := Fragment(Props{"children": "hi"})
		got := JSX("div", Props{"children": []any{frag}}, nil)
		assertNode(t, got, textEl("div", nil, "hi"))
	})

	t.Run("nested fragments unwrap fully", func(t *testing.T) {
		inner := Fragment(Props{"children": "hi"})
		outer := Fragment(Props{"children": inner})
		got := JSX("div", Props{"children": outer}, nil)
		assertNode(t, got, textEl("div", nil, "hi"))
	})

	t.Run("empty fragment", func(t *testing.T) {
		got := JSX("div", Props{"children": Fragment(nil)}, nil)
		assertNode(t, got, el("div", nil, []*VNode{}...))
		if got.Children == nil {
			t.Error("Children = nil, want empty list")
		}
	})
}

func TestFragment(t *testing.T) {
	t.Run("no children", func(t *testing.T) {
		got := JSX(Fragment, nil, nil)
		assertNode(t, got, &VNode{Data: &Data{}, Children: []*VNode{}})
	})

	t.Run("single string child", func(t *testing.T) {
		got := JSX(Fragment, Props{"children": "Hello, world!"}, nil)
		assertNode(t, got, &VNode{Data: &Data{}, Children: []*VNode{NewText("Hello, world!")}})
	})

	t.Run("single element child", func(t *testing.T) {
		span := JSX("span", Props{"children": "Hello, world!"}, nil)
		got := JSX(Fragment, Props{"children": span}, nil)
		assertNode(t, got, &VNode{Data: &Data{}, Children: []*VNode{textEl("span", nil, "Hello, world!")}})
	})

	t.Run("mixed children", func(t *testing.T) {
		span := JSX("span", Props{"children": "world!"}, nil)
		got := JSXS(Fragment, Props{"children": []any{"Hello, ", span}}, nil)
		assertNode(t, got, &VNode{Data: &Data{}, Children: []*VNode{
			NewText("Hello, "),
			textEl("span", nil, "world!"),
		}})
	})

	t.Run("nested fragments stay nested", func(t *testing.T) {
		inner := JSX(Fragment, Props{"children": "Hello, world!"}, nil)
		middle := JSX(Fragment, Props{"children": inner}, nil)
		got := JSX(Fragment, Props{"children": middle}, nil)

		want := &VNode{Data: &Data{}, Children: []*VNode{
			{Data: &Data{}, Children: []*VNode{
				{Data: &Data{}, Children: []*VNode{NewText("Hello, world!")}},
			}},
		}}
		assertNode(t, got, want)
	})

	t.Run("keyed", func(t *testing.T) {
		got := JSX(Fragment, nil, "k")
		if got.Key != "k" {
			t.Errorf("Key = %v, want k", got.Key)
		}
	})

	t.Run("classic", func(t *testing.T) {
		got := FragmentOf("a", []any{"b"})
		assertNode(t, got, &VNode{Data: &Data{}, Children: []*VNode{NewText("a"), NewText("b")}})
	})
}

func TestComponents(t *testing.T) {
	card := Component(func(p Props) any {
		props := Props{"data-prop": p["prop"]}
		if children, ok := p["children"]; ok {
			props["children"] = children
		}
		return JSX("div", props, nil)
	})
	data := &Data{Dataset: Dataset{"prop": "foo"}}
	span := func() *VNode { return JSX("span", Props{"children": "Hello, world!"}, nil) }

	t.Run("single string child", func(t *testing.T) {
		got := JSX(card, Props{"prop": "foo", "children": "Hello, world!"}, nil)
		assertNode(t, got, textEl("div", data, "Hello, world!"))
	})

	t.Run("single element child", func(t *testing.T) {
		got := JSX(card, Props{"prop": "foo", "children": span()}, nil)
		assertNode(t, got, el("div", data, textEl("span", nil, "Hello, world!")))
	})

	t.Run("multiple string children", func(t *testing.T) {
		got := JSXS(card, Props{"prop": "foo", "children": []any{"Hello,", "world!"}}, nil)
		assertNode(t, got, el("div", data, NewText("Hello,"), NewText("world!")))
	})

	t.Run("multiple mixed children", func(t *testing.T) {
		got := JSXS(card, Props{"prop": "foo", "children": []any{"Hello,", JSX("span", Props{"children": "world!"}, nil)}}, nil)
		assertNode(t, got, el("div", data, NewText("Hello,"), textEl("span", nil, "world!")))
	})

	t.Run("key", func(t *testing.T) {
		got := JSX(card, Props{"$key": "key", "prop": "foo"}, nil)
		want := el("div", data)
		want.Key = "key"
		assertNode(t, got, want)
	})

	t.Run("key argument", func(t *testing.T) {
		got := JSX(card, Props{"prop": "foo"}, "k")
		if got.Key != "k" {
			t.Errorf("Key = %v, want k", got.Key)
		}
	})

	t.Run("func literal returning a string", func(t *testing.T) {
		got := JSX(func(Props) any { return "plain" }, nil, nil)
		assertNode(t, got, NewText("plain"))
	})

	t.Run("shared result is not rekeyed", func(t *testing.T) {
		shared := JSX("div", nil, nil)
		JSX(func(Props) *VNode { return shared }, nil, "k")
		if shared.Key != nil {
			t.Errorf("shared.Key = %v, want nil", shared.Key)
		}
	})
}

func TestLegacyComponents(t *testing.T) {
	card := LegacyComponent(func(p Props, children any) any {
		return JSX("div", Props{"data-prop": p["prop"], "children": children}, nil)
	})
	data := &Data{Dataset: Dataset{"prop": "foo"}}

	t.Run("single string child", func(t *testing.T) {
		got := JSX(card, Props{"prop": "foo", "children": "Hello, world!"}, nil)
		assertNode(t, got, textEl("div", data, "Hello, world!"))
	})

	t.Run("single element child", func(t *testing.T) {
		span := JSX("span", Props{"children": "Hello, world!"}, nil)
		got := JSX(card, Props{"prop": "foo", "children": span}, nil)
		assertNode(t, got, el("div", data, textEl("span", nil, "Hello, world!")))
	})

	t.Run("multiple string children", func(t *testing.T) {
		got := JSXS(card, Props{"prop": "foo", "children": []any{"Hello,", "world!"}}, nil)
		assertNode(t, got, el("div", data, NewText("Hello,"), NewText("world!")))
	})

	t.Run("key without children", func(t *testing.T) {
		got := JSX(card, Props{"$key": "key", "prop": "foo"}, nil)
		want := el("div", data, []*VNode{}...)
		want.Children = []*VNode{}
		want.Key = "key"
		assertNode(t, got, want)
	})

	t.Run("props exclude children", func(t *testing.T) {
		var seen Props
		JSX(func(p Props, _ any) any {
			seen = p
			return nil
		}, Props{"prop": "foo", "children": "x"}, nil)
		if _, ok := seen["children"]; ok {
			t.Errorf("props = %v, want no children", seen)
		}
	})

	t.Run("func literal", func(t *testing.T) {
		got := JSX(func(_ Props, children any) *VNode {
			return JSX("p", Props{"children": children}, nil)
		}, Props{"children": "x"}, nil)
		assertNode(t, got, textEl("p", nil, "x"))
	})
}

func TestJSXUnsupportedTag(t *testing.T) {
	_, err := Try(func() *VNode { return JSX(42, nil, nil) })
	if !errors.Is(err, "E164") {
		t.Errorf("error = %v, want E164", err)
	}
}

func TestJSXSVG(t *testing.T) {
	circle := JSX("circle", Props{"id": "bar", "className": "circle", "cx": "50", "cy": "50", "r": "20"}, nil)
	got := JSX("svg", Props{
		"id":        "foo",
		"className": "wrapper",
		"viewBox":   "25 25 50 50",
		"children":  circle,
	}, nil)

	want := &VNode{
		Sel: "svg#foo.wrapper",
		Data: &Data{
			Attrs: Attrs{"viewBox": "25 25 50 50"},
			NS:    SVGNamespace,
		},
		Children: []*VNode{{
			Sel: "circle#bar.circle",
			Data: &Data{
				Attrs: Attrs{"cx": "50", "cy": "50", "r": "20"},
				NS:    SVGNamespace,
			},
		}},
	}
	assertNode(t, got, want)

	if circle.Data.NS != "" || circle.Data.Props == nil {
		t.Errorf("input circle was modified: %+v", circle.Data)
	}
}

func TestJSXSVGKeepsAttrs(t *testing.T) {
	got := JSX("svg", Props{
		"$attrs":   Attrs{"width": "10", "fill": "red"},
		"fill":     "blue",
		"children": []any{"label", JSX("g", nil, nil), false},
	}, nil)

	if want := (Attrs{"width": "10", "fill": "blue"}); !reflect.DeepEqual(got.Data.Attrs, want) {
		t.Errorf("Attrs = %v, want %v", got.Data.Attrs, want)
	}
	if got.Data.Props != nil {
		t.Errorf("Props = %v, want nil", got.Data.Props)
	}
	if got.Children[0].Data != nil {
		t.Errorf("text leaf Data = %+v, want nil", got.Children[0].Data)
	}
	if got.Children[1].Data.NS != SVGNamespace {
		t.Errorf("g NS = %q, want %q", got.Children[1].Data.NS, SVGNamespace)
	}
	if got.Children[2].Data.NS != "" {
		t.Errorf("placeholder NS = %q, want empty", got.Children[2].Data.NS)
	}
}

func TestJSXPopover(t *testing.T) {
	got := JSXS(Fragment, Props{"children": []any{
		JSX("button", Props{"popoverTarget": "popover", "popoverTargetAction": "toggle", "children": "Toggle"}, nil),
		JSX("div", Props{"popover": true, "children": "Hello, world!"}, nil),
	}}, nil)

	want := &VNode{Data: &Data{}, Children: []*VNode{
		textEl("button", &Data{
			Attrs: Attrs{"popovertarget": "popover"},
			Props: Props{"popoverTargetAction": "toggle"},
		}, "Toggle"),
		textEl("div", &Data{Props: Props{"popover": "auto"}}, "Hello, world!"),
	}}
	assertNode(t, got, want)
}

func TestH(t *testing.T) {
	t.Run("no children", func(t *testing.T) {
		got := H("div", nil)
		assertNode(t, got, &VNode{Sel: "div", Data: &Data{}, Children: []*VNode{}})
	})

	t.Run("text", func(t *testing.T) {
		assertNode(t, H("div", nil, "Hello"), textEl("div", nil, "Hello"))
	})

	t.Run("variadic children", func(t *testing.T) {
		got := H("ul", Props{"className": "list"}, H("li", nil, "a"), []any{H("li", nil, "b")})
		assertNode(t, got, el("ul.list", nil, textEl("li", nil, "a"), textEl("li", nil, "b")))
	})

	t.Run("does not mutate props", func(t *testing.T) {
		props := Props{"dir": "ltr"}
		H("div", props, "x")
		if _, ok := props["children"]; ok {
			t.Error("props gained children")
		}
	})

	t.Run("component", func(t *testing.T) {
		got := H(LegacyComponent(func(_ Props, children any) any {
			return H("section", nil, children)
		}), nil, "a", "b")
		assertNode(t, got, el("section", nil, NewText("a"), NewText("b")))
	})
}

func TestTryRepanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recover() = %v, want boom", r)
		}
	}()
	Try(func() *VNode { panic("boom") })
	t.Error("Try returned")
}

func TestDeprecatedKeys(t *testing.T) {
	got := DeprecatedKeys(Props{
		"style":  Style{},
		"$attrs": Attrs{},
		"key":    "k",
		"data":   Undefined,
		"dir":    "ltr",
	})
	want := []Deprecation{
		{Key: "key", Use: "$key"},
		{Key: "style", Use: "$style"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DeprecatedKeys() = %v, want %v", got, want)
	}

	if got := DeprecatedKeys(Props{"$key": "k"}); got != nil {
		t.Errorf("DeprecatedKeys() = %v, want nil", got)
	}
}

func TestVNodePredicates(t *testing.T) {
	tests := []struct {
		name                          string
		node                          *VNode
		text, placeholder, frag, elem bool
		tag                           string
	}{
		{"nil", nil, false, false, false, false, ""},
		{"text", NewText("x"), true, false, false, false, ""},
		{"placeholder", NewPlaceholder("null"), false, true, false, false, ""},
		{"fragment", Fragment(nil), false, false, true, false, ""},
		{"element", JSX("a", Props{"id": "x", "className": "y"}, nil), false, false, false, true, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsTextLeaf(); got != tt.text {
				t.Errorf("IsTextLeaf() = %v, want %v", got, tt.text)
			}
			if got := tt.node.IsPlaceholder(); got != tt.placeholder {
				t.Errorf("IsPlaceholder() = %v, want %v", got, tt.placeholder)
			}
			if got := tt.node.IsFragment(); got != tt.frag {
				t.Errorf("IsFragment() = %v, want %v", got, tt.frag)
			}
			if got := tt.node.IsElement(); got != tt.elem {
				t.Errorf("IsElement() = %v, want %v", got, tt.elem)
			}
			if got := tt.node.Tag(); got != tt.tag {
				t.Errorf("Tag() = %v, want %v", got, tt.tag)
			}
		})
	}
}

func TestWalk(t *testing.T) {
	root := H("div", nil, H("p", nil, H("b", nil), H("i", nil)), H("span", nil))

	var seen []string
	root.Walk(func(n *VNode) bool {
		seen = append(seen, n.Sel)
		return n.Sel != "p"
	})
	if want := []string{"div", "p", "span"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("Walk() visited %v, want %v", seen, want)
	}
}

func dump(n *VNode) string {
	if n == nil {
		return "<nil>"
	}
	s := fmt.Sprintf("{sel:%q", n.Sel)
	if n.Text != nil {
		s += fmt.Sprintf(" text:%q", *n.Text)
	}
	if n.Key != nil {
		s += fmt.Sprintf(" key:%v", n.Key)
	}
	if n.Data != nil {
		s += fmt.Sprintf(" data:%+v", *n.Data)
	}
	if n.Children != nil {
		s += " children:["
		for i, c := range n.Children {
			if i > 0 {
				s += " "
			}
			s += dump(c)
		}
		s += "]"
	}
	return s + "}"
}
