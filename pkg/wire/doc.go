// Package wire serializes virtual nodes.
//
// Snapshot projects a *vnode.VNode onto a Node: a tree holding only plain
// data. Functions (event handlers, hooks) are replaced by FunctionMarker and
// Undefined values are dropped. A Node can then be encoded with any Codec:
//
//	JSON     the snabbdom record shape: {"sel", "data", "children", "text", "key"}
//	msgpack  the same shape in MessagePack
//	binary   a compact tagged varint format
//
// Absent fields are omitted; an explicitly empty children list (fragments)
// is kept as an empty array, so decoding preserves the distinction.
//
// Decoders read untrusted bytes and enforce MaxNodeDepth, MaxValueDepth and
// allocation limits.
package wire
