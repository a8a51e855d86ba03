// Package tree builds virtual nodes from data: JSON or YAML element
// descriptions.
//
// An element is a map with a tag and optional props, key and children:
//
//	tag: ul
//	props: {className: todos, data-count: 2}
//	children:
//	  - {tag: li, key: 1, children: Write docs}
//	  - {tag: li, key: 2, children: [Ship, " it"]}
//	  - null
//
// A tag of "" or "#fragment" builds a fragment. Tags registered in
// Builder.Components call the registered function component instead.
// Children may be strings, numbers, booleans, null, nested lists or
// elements; {"$undefined": true} stands for an absent value anywhere a
// value is accepted.
package tree
