package vnode

import (
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cast"

	"github.com/vango-dev/jsx/internal/errors"
)

// Props is a raw JSX property bag. It is also the shape of the element
// property bucket of Data.
type Props map[string]any

// Attrs holds DOM attributes set with setAttribute.
type Attrs map[string]any

// Dataset holds data-* values keyed by their camelCased name.
type Dataset map[string]any

// Classes toggles class names on and off.
type Classes map[string]bool

// On maps event names to handlers.
type On map[string]any

// Hooks maps lifecycle hook names (insert, update, destroy, ...) to callbacks.
type Hooks map[string]any

// Style maps CSS properties to values. The delayed, remove and destroy keys
// hold nested Style maps applied at those lifecycle phases.
type Style map[string]any

// Data is the canonicalized attribute record of a node. A nil sub-map means
// nothing was routed to it.
type Data struct {
	Attrs   Attrs
	Props   Props
	Dataset Dataset
	Class   Classes
	Style   Style
	On      On
	Hook    Hooks
	Key     Key
	Is      string
	NS      string

	// Modules holds caller-defined modules given as "$name" properties.
	Modules map[string]any
}

// IsEmpty reports whether no bucket of d is set.
func (d *Data) IsEmpty() bool {
	if d == nil {
		return true
	}
	return d.Attrs == nil && d.Props == nil && d.Dataset == nil && d.Class == nil &&
		d.Style == nil && d.On == nil && d.Hook == nil && d.Key == nil &&
		d.Is == "" && d.NS == "" && d.Modules == nil
}

// Buckets that accumulate entries from a bulk module map and from individual
// shorthand properties.
const (
	mergeAttrs = iota
	mergeDataset
	mergeOn
	mergeProps
	numMerge
)

// Tiers of a bulk module map. The "$" form wins over the legacy bare name.
const (
	tierLegacy = iota
	tierModule
)

// tiered holds a single-valued bucket that may be set by both spellings.
type tiered struct {
	v   [2]any
	set [2]bool
}

func (t *tiered) put(tier int, v any) {
	t.v[tier], t.set[tier] = v, true
}

func (t *tiered) get() (any, bool) {
	if t.set[tierModule] {
		return t.v[tierModule], true
	}
	return t.v[tierLegacy], t.set[tierLegacy]
}

type canonicalizer struct {
	bulk  [numMerge][2]map[string]any
	short [numMerge]map[string]any

	class, hook, key, style, is, ns tiered
	modules                         map[string]any
}

func (c *canonicalizer) addBulk(bucket, tier int, name string, v any) {
	c.bulk[bucket][tier] = toMap(name, v)
}

func (c *canonicalizer) addShort(bucket int, k string, v any) {
	if c.short[bucket] == nil {
		c.short[bucket] = make(map[string]any)
	}
	c.short[bucket][k] = v
}

// Canonicalize routes every key of bag into exactly one bucket of Data.
//
// Keys are matched in this order, first match wins: $attrs/attrs, aria-*,
// children (skipped), $class/class, className and id (skipped, they belong
// to the selector), $data/$dataset/data/dataset, data-*, $hook/hook, is,
// $key/key, $on/on, $props/props, on*, list and role, popover=true,
// popoverTarget, $style/style, any other $module, and finally plain props.
//
// attrs, dataset, on and props merge: bulk module maps form the base and
// individual properties override their entries. class, hook, key, style and
// is are replaced wholesale. In both cases the "$" spelling wins over the
// legacy bare name. Values equal to Undefined are skipped.
func Canonicalize(bag Props) *Data {
	var c canonicalizer

	for _, k := range slices.Sorted(maps.Keys(bag)) {
		v := bag[k]
		if IsUndefined(v) {
			continue
		}

		switch {
		case k == "$attrs":
			c.addBulk(mergeAttrs, tierModule, k, v)
		case k == "attrs":
			c.addBulk(mergeAttrs, tierLegacy, k, v)
		case strings.HasPrefix(k, "aria-"):
			c.addShort(mergeAttrs, k, v)
		case k == "children":
		case k == "$class":
			c.class.put(tierModule, v)
		case k == "class":
			c.class.put(tierLegacy, v)
		case k == "className" || k == "id":
		case k == "$data" || k == "$dataset":
			c.addBulk(mergeDataset, tierModule, k, v)
		case k == "data" || k == "dataset":
			c.addBulk(mergeDataset, tierLegacy, k, v)
		case strings.HasPrefix(k, "data-"):
			c.addShort(mergeDataset, kebabToCamel(k[len("data-"):]), v)
		case k == "$hook":
			c.hook.put(tierModule, v)
		case k == "hook":
			c.hook.put(tierLegacy, v)
		case k == "is":
			c.is.put(tierLegacy, v)
		case k == "$key":
			c.key.put(tierModule, v)
		case k == "key":
			c.key.put(tierLegacy, v)
		case k == "$on":
			c.addBulk(mergeOn, tierModule, k, v)
		case k == "on":
			c.addBulk(mergeOn, tierLegacy, k, v)
		case k == "$props":
			c.addBulk(mergeProps, tierModule, k, v)
		case k == "props":
			c.addBulk(mergeProps, tierLegacy, k, v)
		case strings.HasPrefix(k, "on"):
			c.addShort(mergeOn, strings.ToLower(k[len("on"):]), v)
		case k == "list" || k == "role":
			c.addShort(mergeAttrs, k, v)
		case k == "popover" && v == true:
			c.addShort(mergeProps, "popover", "auto")
		case k == "popoverTarget":
			c.addShort(mergeAttrs, "popovertarget", v)
		case k == "$style":
			c.style.put(tierModule, v)
		case k == "style":
			c.style.put(tierLegacy, v)
		case k == "$is":
			c.is.put(tierModule, v)
		case k == "$ns":
			c.ns.put(tierModule, v)
		case strings.HasPrefix(k, "$"):
			if c.modules == nil {
				c.modules = make(map[string]any)
			}
			c.modules[k[1:]] = v
		default:
			c.addShort(mergeProps, k, v)
		}
	}

	return c.finish()
}

func (c *canonicalizer) finish() *Data {
	d := &Data{Modules: c.modules}

	d.Attrs = Attrs(c.merged(mergeAttrs))
	d.Dataset = Dataset(c.merged(mergeDataset))
	d.On = On(c.merged(mergeOn))
	d.Props = Props(c.merged(mergeProps))

	if v, ok := c.class.get(); ok {
		d.Class = toClasses(v)
	}
	if v, ok := c.hook.get(); ok && v != nil {
		d.Hook = Hooks(toMap("hook", v))
	}
	if v, ok := c.style.get(); ok && v != nil {
		d.Style = Style(toMap("style", v))
	}
	if v, ok := c.key.get(); ok {
		d.Key = v
	}
	if v, ok := c.is.get(); ok && v != nil {
		d.Is = cast.ToString(v)
	}
	if v, ok := c.ns.get(); ok && v != nil {
		d.NS = cast.ToString(v)
	}
	return d
}

// merged layers the legacy map, the module map and the shorthand entries of
// one bucket. It returns nil when none of them was given.
func (c *canonicalizer) merged(bucket int) map[string]any {
	legacy, module, short := c.bulk[bucket][tierLegacy], c.bulk[bucket][tierModule], c.short[bucket]
	if legacy == nil && module == nil && short == nil {
		return nil
	}
	out := make(map[string]any, len(legacy)+len(module)+len(short))
	maps.Copy(out, legacy)
	maps.Copy(out, module)
	maps.Copy(out, short)
	return out
}

// toMap copies a module value into a fresh map. The caller's map is never
// mutated.
func toMap(name string, v any) map[string]any {
	switch m := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return maps.Clone(nonNil(m))
	case Props:
		return maps.Clone(nonNil(m))
	case Attrs:
		return maps.Clone(nonNil(m))
	case Dataset:
		return maps.Clone(nonNil(m))
	case On:
		return maps.Clone(nonNil(m))
	case Hooks:
		return maps.Clone(nonNil(m))
	case Style:
		return maps.Clone(nonNil(m))
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out
	}
	panic(errors.New("E162").WithDetailf("%s is %T", name, v))
}

func nonNil[M ~map[string]any](m M) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func toClasses(v any) Classes {
	switch m := v.(type) {
	case nil:
		return nil
	case Classes:
		return maps.Clone(m)
	case map[string]bool:
		return Classes(maps.Clone(m))
	case map[string]any:
		out := make(Classes, len(m))
		for name, on := range m {
			b, err := cast.ToBoolE(on)
			if err != nil {
				panic(errors.New("E165").WithDetailf("class %q is %T", name, on).Wrap(err))
			}
			out[name] = b
		}
		return out
	}
	panic(errors.New("E165").WithDetailf("class is %T", v))
}

// kebabToCamel converts "foo-bar-baz" to "fooBarBaz". The first segment is
// kept as is; every later segment has its first character upper-cased.
func kebabToCamel(kebab string) string {
	segs := strings.Split(kebab, "-")
	var b strings.Builder
	b.Grow(len(kebab))
	b.WriteString(segs[0])
	for _, seg := range segs[1:] {
		r, size := utf8.DecodeRuneInString(seg)
		if size == 0 {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(seg[size:])
	}
	return b.String()
}
