package vnode

import (
	"reflect"
	"testing"

	"github.com/vango-dev/jsx/internal/errors"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name string
		bag  Props
		want *Data
	}{
		{
			name: "empty bag",
			bag:  Props{},
			want: &Data{},
		},
		{
			name: "plain property",
			bag:  Props{"dir": "ltr"},
			want: &Data{Props: Props{"dir": "ltr"}},
		},
		{
			name: "selector keys skipped",
			bag:  Props{"id": "id", "className": "foo bar", "children": "x"},
			want: &Data{},
		},
		{
			name: "$key",
			bag:  Props{"$key": "foo"},
			want: &Data{Key: "foo"},
		},
		{
			name: "legacy key",
			bag:  Props{"key": "foo"},
			want: &Data{Key: "foo"},
		},
		{
			name: "$key wins over key",
			bag:  Props{"key": "legacy", "$key": "module"},
			want: &Data{Key: "module"},
		},
		{
			name: "list and role",
			bag:  Props{"list": "options", "role": "button"},
			want: &Data{Attrs: Attrs{"list": "options", "role": "button"}},
		},
		{
			name: "aria",
			bag:  Props{"aria-label": "Send"},
			want: &Data{Attrs: Attrs{"aria-label": "Send"}},
		},
		{
			name: "$attrs",
			bag:  Props{"$attrs": map[string]any{"class": "foo"}},
			want: &Data{Attrs: Attrs{"class": "foo"}},
		},
		{
			name: "legacy attrs",
			bag:  Props{"attrs": map[string]string{"class": "foo"}},
			want: &Data{Attrs: Attrs{"class": "foo"}},
		},
		{
			name: "shorthand overrides bulk attrs",
			bag:  Props{"$attrs": Attrs{"role": "link", "href": "/"}, "role": "button"},
			want: &Data{Attrs: Attrs{"role": "button", "href": "/"}},
		},
		{
			name: "$attrs entries win over attrs",
			bag:  Props{"attrs": Attrs{"a": 1, "b": 1}, "$attrs": Attrs{"a": 2}},
			want: &Data{Attrs: Attrs{"a": 2, "b": 1}},
		},
		{
			name: "$class",
			bag:  Props{"className": "foo", "$class": map[string]any{"bar": true, "baz": false}},
			want: &Data{Class: Classes{"bar": true, "baz": false}},
		},
		{
			name: "legacy class",
			bag:  Props{"class": map[string]bool{"bar": true}},
			want: &Data{Class: Classes{"bar": true}},
		},
		{
			name: "data-* camelCased",
			bag:  Props{"data-foo": "bar", "data-foo-bar": "baz"},
			want: &Data{Dataset: Dataset{"foo": "bar", "fooBar": "baz"}},
		},
		{
			name: "$dataset",
			bag:  Props{"$dataset": map[string]any{"foo": "bar"}},
			want: &Data{Dataset: Dataset{"foo": "bar"}},
		},
		{
			name: "legacy data",
			bag:  Props{"data": map[string]any{"foo": "bar"}},
			want: &Data{Dataset: Dataset{"foo": "bar"}},
		},
		{
			name: "legacy dataset",
			bag:  Props{"dataset": map[string]any{"foo": "bar"}},
			want: &Data{Dataset: Dataset{"foo": "bar"}},
		},
		{
			name: "$props",
			bag:  Props{"$props": map[string]any{"dir": "ltr"}},
			want: &Data{Props: Props{"dir": "ltr"}},
		},
		{
			name: "legacy props",
			bag:  Props{"props": map[string]any{"dir": "ltr"}},
			want: &Data{Props: Props{"dir": "ltr"}},
		},
		{
			name: "$style",
			bag: Props{"$style": map[string]any{
				"backgroundColor": "red",
				"delayed":         map[string]any{"backgroundColor": "blue"},
			}},
			want: &Data{Style: Style{
				"backgroundColor": "red",
				"delayed":         map[string]any{"backgroundColor": "blue"},
			}},
		},
		{
			name: "legacy style",
			bag:  Props{"style": Style{"color": "red"}},
			want: &Data{Style: Style{"color": "red"}},
		},
		{
			name: "custom element",
			bag:  Props{"is": "custom-element"},
			want: &Data{Is: "custom-element"},
		},
		{
			name: "custom module",
			bag:  Props{"$custom": map[string]any{"foo": "bar"}},
			want: &Data{Modules: map[string]any{"custom": map[string]any{"foo": "bar"}}},
		},
		{
			name: "popover true",
			bag:  Props{"popover": true},
			want: &Data{Props: Props{"popover": "auto"}},
		},
		{
			name: "popover manual",
			bag:  Props{"popover": "manual"},
			want: &Data{Props: Props{"popover": "manual"}},
		},
		{
			name: "popoverTarget",
			bag:  Props{"popoverTarget": "popover", "popoverTargetAction": "toggle"},
			want: &Data{
				Attrs: Attrs{"popovertarget": "popover"},
				Props: Props{"popoverTargetAction": "toggle"},
			},
		},
		{
			name: "undefined skipped",
			bag:  Props{"dir": Undefined, "$key": Undefined, "$attrs": Undefined},
			want: &Data{},
		},
		{
			name: "null kept as a property",
			bag:  Props{"value": nil},
			want: &Data{Props: Props{"value": nil}},
		},
		{
			name: "null bulk map",
			bag:  Props{"$attrs": nil},
			want: &Data{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonicalize(tt.bag)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Canonicalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCanonicalizeHandlers(t *testing.T) {
	calls := 0
	handler := func() { calls++ }

	t.Run("on* lowercased", func(t *testing.T) {
		d := Canonicalize(Props{"onClick": handler, "onkeydown": handler})
		if len(d.On) != 2 {
			t.Fatalf("len(On) = %v, want 2", len(d.On))
		}
		for _, ev := range []string{"click", "keydown"} {
			if _, ok := d.On[ev]; !ok {
				t.Errorf("On[%q] missing", ev)
			}
		}
	})

	t.Run("$on and legacy on", func(t *testing.T) {
		for _, k := range []string{"$on", "on"} {
			d := Canonicalize(Props{k: map[string]any{"click": handler}})
			fn, ok := d.On["click"].(func())
			if !ok {
				t.Fatalf("%s: On[click] = %T, want func()", k, d.On["click"])
			}
			fn()
		}
		if calls != 2 {
			t.Errorf("calls = %v, want 2", calls)
		}
	})

	t.Run("hooks", func(t *testing.T) {
		for _, k := range []string{"$hook", "hook"} {
			d := Canonicalize(Props{k: Hooks{"insert": handler}})
			if _, ok := d.Hook["insert"].(func()); !ok {
				t.Errorf("%s: Hook[insert] = %T, want func()", k, d.Hook["insert"])
			}
		}
	})
}

func TestCanonicalizeDoesNotMutate(t *testing.T) {
	attrs := map[string]any{"href": "/"}
	bag := Props{"$attrs": attrs, "role": "link"}

	d := Canonicalize(bag)
	d.Attrs["extra"] = true

	if len(attrs) != 1 {
		t.Errorf("caller map = %v, want untouched", attrs)
	}
	if len(bag) != 2 {
		t.Errorf("bag = %v, want untouched", bag)
	}
}

func TestCanonicalizeDeterministic(t *testing.T) {
	bag := Props{
		"$attrs":  Attrs{"a": 1},
		"attrs":   Attrs{"a": 0, "b": 0},
		"onClick": "x",
		"onclick": "y",
		"$class":  Classes{"on": true},
		"class":   Classes{"off": true},
	}
	first := Canonicalize(bag)
	for i := 0; i < 50; i++ {
		if got := Canonicalize(bag); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d = %+v, want %+v", i, got, first)
		}
	}
	if first.On["click"] != "y" {
		t.Errorf("On[click] = %v, want y", first.On["click"])
	}
	if !reflect.DeepEqual(first.Class, Classes{"on": true}) {
		t.Errorf("Class = %v, want map[on:true]", first.Class)
	}
}

func TestCanonicalizePanics(t *testing.T) {
	tests := []struct {
		name string
		bag  Props
		code string
	}{
		{"attrs not a map", Props{"$attrs": "nope"}, "E162"},
		{"style not a map", Props{"$style": 42}, "E162"},
		{"class not a map", Props{"$class": "foo"}, "E165"},
		{"class value not a bool", Props{"$class": map[string]any{"foo": []int{1}}}, "E165"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Try(func() *VNode {
				Canonicalize(tt.bag)
				return nil
			})
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestKebabToCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"foo", "foo"},
		{"foo-bar", "fooBar"},
		{"foo-bar-baz", "fooBarBaz"},
		{"foo--bar", "fooBar"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := kebabToCamel(tt.in); got != tt.want {
				t.Errorf("kebabToCamel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
