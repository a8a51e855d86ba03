package vnode

import (
	"maps"
	"slices"
)

// Deprecation names a legacy property alias and what replaces it.
type Deprecation struct {
	Key string
	Use string
}

var legacyAliases = map[string]string{
	"attrs":   "$attrs",
	"class":   "$class",
	"data":    "$dataset or data-* attributes",
	"dataset": "$dataset or data-* attributes",
	"hook":    "$hook",
	"key":     "$key",
	"on":      "$on or on* attributes",
	"props":   "$props or plain attributes",
	"style":   "$style",
}

// DeprecatedKeys lists the legacy aliases used in bag, sorted by key.
// Undefined values are ignored, matching Canonicalize.
func DeprecatedKeys(bag Props) []Deprecation {
	var out []Deprecation
	for _, k := range slices.Sorted(maps.Keys(bag)) {
		use, ok := legacyAliases[k]
		if !ok || IsUndefined(bag[k]) {
			continue
		}
		out = append(out, Deprecation{Key: k, Use: use})
	}
	return out
}
