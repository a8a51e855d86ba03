package vnode

import (
	"strings"

	"github.com/vango-dev/jsx/internal/errors"
)

// Selector builds "tag#id.cls1.cls2" from a tag name and the id and
// className properties of bag. className is split on whitespace; classes
// keep their order.
func Selector(tag string, bag Props) string {
	var b strings.Builder
	b.WriteString(tag)

	if id, ok := stringProp(bag, "id", "E161"); ok {
		b.WriteByte('#')
		b.WriteString(id)
	}
	if className, ok := stringProp(bag, "className", "E160"); ok {
		for _, cls := range strings.Fields(className) {
			b.WriteByte('.')
			b.WriteString(cls)
		}
	}
	return b.String()
}

// stringProp returns bag[key] when it holds a string. Absent, nil and
// Undefined values report false; anything else panics with code.
func stringProp(bag Props, key, code string) (string, bool) {
	v, ok := bag[key]
	if !ok || v == nil || IsUndefined(v) {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		panic(errors.New(code).WithDetailf("%s is %T", key, v))
	}
	return s, true
}
