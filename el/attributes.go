package el

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/vango-dev/jsx/pkg/vnode"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Core attributes

// ID sets the id, which becomes part of the selector.
func ID(id string) Attr { return attr("id", id) }

// Class adds class names to the selector. Repeated Class arguments
// accumulate.
func Class(classes ...string) Attr { return attr("className", strings.Join(classes, " ")) }

// Data sets a data-* attribute. The key is kebab-case; it is stored
// camelCased in the dataset.
func Data(key string, value any) Attr { return attr("data-"+key, value) }

// Prop sets an arbitrary element property.
func Prop(key string, value any) Attr { return attr(key, value) }

// Attribute sets an arbitrary DOM attribute through the attributes module.
func Attribute(key string, value any) Attr {
	return attr("$attrs", map[string]any{key: value})
}

// Key sets the reconciliation key.
func Key(key any) Attr { return attr("$key", key) }

// Is sets the customized built-in element name.
func Is(name string) Attr { return attr("is", name) }

// Accessibility

// Role sets the ARIA role.
func Role(role string) Attr { return attr("role", role) }

// Aria sets aria-<name>.
func Aria(name string, value any) Attr { return attr("aria-"+name, value) }

// AriaLabel sets aria-label.
func AriaLabel(label string) Attr { return Aria("label", label) }

// AriaHidden sets aria-hidden.
func AriaHidden(hidden bool) Attr { return Aria("hidden", fmt.Sprint(hidden)) }

// AriaExpanded sets aria-expanded.
func AriaExpanded(expanded bool) Attr { return Aria("expanded", fmt.Sprint(expanded)) }

// AriaControls sets aria-controls.
func AriaControls(id string) Attr { return Aria("controls", id) }

// AriaDescribedBy sets aria-describedby.
func AriaDescribedBy(id string) Attr { return Aria("describedby", id) }

// AriaLive sets aria-live.
func AriaLive(mode string) Attr { return Aria("live", mode) }

// TabIndex sets the tab order.
func TabIndex(index int) Attr { return attr("tabIndex", index) }

// Global properties

// Title sets the advisory title.
func Title(title string) Attr { return attr("title", title) }

// Lang sets the language.
func Lang(lang string) Attr { return attr("lang", lang) }

// Dir sets the text direction.
func Dir(dir string) Attr { return attr("dir", dir) }

// Hidden hides the element.
func Hidden() Attr { return attr("hidden", true) }

// Links and media

// Href sets the link target.
func Href(url string) Attr { return attr("href", url) }

// Target sets the browsing context for links and forms.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the link relationship.
func Rel(rel string) Attr { return attr("rel", rel) }

// Src sets the resource URL.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alternative text.
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width.
func Width(w any) Attr { return attr("width", w) }

// Height sets the height.
func Height(h any) Attr { return attr("height", h) }

// Forms

// Name sets the form control name.
func Name(name string) Attr { return attr("name", name) }

// Value sets the control value.
func Value(value any) Attr { return attr("value", value) }

// Type sets the input or button type.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder text.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// For associates a label with a control.
func For(id string) Attr { return attr("htmlFor", id) }

// List associates an input with a datalist. It is routed to attributes.
func List(id string) Attr { return attr("list", id) }

// Disabled disables the control.
func Disabled() Attr { return attr("disabled", true) }

// Checked checks the control.
func Checked() Attr { return attr("checked", true) }

// Selected selects the option.
func Selected() Attr { return attr("selected", true) }

// Required marks the control as required.
func Required() Attr { return attr("required", true) }

// Popover API

// Popover makes the element an auto popover.
func Popover() Attr { return attr("popover", true) }

// PopoverManual makes the element a manual popover.
func PopoverManual() Attr { return attr("popover", "manual") }

// PopoverTarget points a button at the popover with the given id.
func PopoverTarget(id string) Attr { return attr("popoverTarget", id) }

// PopoverTargetAction sets show, hide or toggle.
func PopoverTargetAction(action string) Attr { return attr("popoverTargetAction", action) }

// Modules

// Attrs merges entries into the attributes module.
func Attrs(attrs map[string]any) Attr { return attr("$attrs", attrs) }

// Properties merges entries into the props module.
func Properties(props map[string]any) Attr { return attr("$props", props) }

// Dataset merges entries into the dataset module.
func Dataset(data map[string]any) Attr { return attr("$dataset", data) }

// Style merges CSS properties into the style module. Use the "delayed",
// "remove" and "destroy" keys for phase-specific styles.
func Style(style map[string]any) Attr { return attr("$style", style) }

// ClassMap toggles classes through the class module.
func ClassMap(classes map[string]bool) Attr { return attr("$class", classes) }

// ClassIf toggles a single class through the class module.
func ClassIf(condition bool, class string) Attr {
	return attr("$class", map[string]bool{class: condition})
}

// Module sets a custom module value, available as Data.Modules[name].
func Module(name string, value any) Attr { return attr("$"+name, value) }

// Conditional attributes

// AttrIf returns a if condition holds and an ignored Attr otherwise.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Classes joins class values into a single Class attribute. Accepts
// string, []string and map[string]bool; map entries are sorted.
func Classes(classes ...any) Attr {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				result = append(result, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					result = append(result, s)
				}
			}
		case map[string]bool:
			for _, class := range slices.Sorted(maps.Keys(v)) {
				if v[class] && class != "" {
					result = append(result, class)
				}
			}
		}
	}
	return attr("className", strings.Join(result, " "))
}

// Spread returns the given bag as a single argument, for spreading a JSX
// style property map into an element.
func Spread(props vnode.Props) Props { return props }
