package wire

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// magic starts every binary snapshot: "VJX" and a format version.
var magic = []byte{'V', 'J', 'X', 1}

// Node field flags.
const (
	flagSel      = 1 << 0
	flagData     = 1 << 1
	flagChildren = 1 << 2
	flagText     = 1 << 3
	flagKey      = 1 << 4

	// nullNode marks a nil child.
	nullNode = 0xFF
)

// Value tags.
const (
	tagNull byte = iota
	tagFalse
	tagTrue
	tagInt
	tagUint
	tagFloat
	tagString
	tagList
	tagMap
)

// BinaryCodec encodes snapshots in a compact tagged format built on varints.
// Map entries are written in sorted key order, so output is deterministic.
type BinaryCodec struct{}

func (BinaryCodec) Format() string      { return "binary" }
func (BinaryCodec) ContentType() string { return "application/vnd.vango-jsx" }

func (c BinaryCodec) Marshal(n *Node) ([]byte, error) {
	w := newWriter()
	if err := encodeNode(w, n); err != nil {
		return nil, encodeError(c, err)
	}
	return w.bytes(), nil
}

func (c BinaryCodec) Unmarshal(data []byte) (*Node, error) {
	r, err := newReader(data)
	if err != nil {
		return nil, decodeError(c, err)
	}
	n, err := decodeNode(r, 0)
	if err != nil {
		return nil, decodeError(c, err)
	}
	if !r.done() {
		return nil, decodeError(c, ErrTrailingData)
	}
	return n, nil
}

func encodeNode(w *writer, n *Node) error {
	if n == nil {
		w.byte(nullNode)
		return nil
	}

	var flags byte
	if n.Sel != "" {
		flags |= flagSel
	}
	if n.Data != nil {
		flags |= flagData
	}
	if n.Children != nil {
		flags |= flagChildren
	}
	if n.Text != nil {
		flags |= flagText
	}
	if n.Key != nil {
		flags |= flagKey
	}
	w.byte(flags)

	if flags&flagSel != 0 {
		w.str(n.Sel)
	}
	if flags&flagData != 0 {
		if err := encodeValue(w, n.Data.toMap(), 0); err != nil {
			return err
		}
	}
	if flags&flagChildren != 0 {
		w.count(len(n.Children))
		for _, c := range n.Children {
			if err := encodeNode(w, c); err != nil {
				return err
			}
		}
	}
	if flags&flagText != 0 {
		w.str(*n.Text)
	}
	if flags&flagKey != 0 {
		return encodeValue(w, n.Key, 0)
	}
	return nil
}

func decodeNode(r *reader, depth int) (*Node, error) {
	if err := checkDepth(depth, MaxNodeDepth); err != nil {
		return nil, err
	}

	flags, err := r.byte()
	if err != nil {
		return nil, err
	}
	if flags == nullNode {
		return nil, nil
	}

	n := &Node{}
	if flags&flagSel != 0 {
		if n.Sel, err = r.str(); err != nil {
			return nil, err
		}
	}
	if flags&flagData != 0 {
		v, err := decodeValue(r, 0)
		if err != nil {
			return nil, err
		}
		if n.Data, err = dataFromMap(v); err != nil {
			return nil, err
		}
		if n.Data == nil {
			n.Data = &Data{}
		}
	}
	if flags&flagChildren != 0 {
		count, err := r.count()
		if err != nil {
			return nil, err
		}
		n.Children = make([]*Node, count)
		for i := range n.Children {
			if n.Children[i], err = decodeNode(r, depth+1); err != nil {
				return nil, err
			}
		}
	}
	if flags&flagText != 0 {
		s, err := r.str()
		if err != nil {
			return nil, err
		}
		n.Text = &s
	}
	if flags&flagKey != 0 {
		if n.Key, err = decodeValue(r, 0); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func encodeValue(w *writer, v any, depth int) error {
	if err := checkDepth(depth, MaxValueDepth); err != nil {
		return err
	}

	switch x := v.(type) {
	case nil:
		w.byte(tagNull)
	case bool:
		if x {
			w.byte(tagTrue)
		} else {
			w.byte(tagFalse)
		}
	case int:
		writeInt(w, int64(x))
	case int8:
		writeInt(w, int64(x))
	case int16:
		writeInt(w, int64(x))
	case int32:
		writeInt(w, int64(x))
	case int64:
		writeInt(w, x)
	case uint:
		writeUint(w, uint64(x))
	case uint8:
		writeUint(w, uint64(x))
	case uint16:
		writeUint(w, uint64(x))
	case uint32:
		writeUint(w, uint64(x))
	case uint64:
		writeUint(w, x)
	case float32:
		writeFloat(w, float64(x))
	case float64:
		writeFloat(w, x)
	case string:
		w.byte(tagString)
		w.str(x)
	case []any:
		w.byte(tagList)
		w.count(len(x))
		for _, item := range x {
			if err := encodeValue(w, item, depth+1); err != nil {
				return err
			}
		}
	case map[string]any:
		w.byte(tagMap)
		w.count(len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			w.str(k)
			if err := encodeValue(w, x[k], depth+1); err != nil {
				return err
			}
		}
	case map[string]bool:
		m := make(map[string]any, len(x))
		for k, b := range x {
			m[k] = b
		}
		return encodeValue(w, m, depth)
	default:
		return fmt.Errorf("unsupported value %T", v)
	}
	return nil
}

// Integral floats are written as integers, matching how JSON and msgpack
// round-trip them.
func writeFloat(w *writer, f float64) {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		writeInt(w, int64(f))
		return
	}
	w.byte(tagFloat)
	w.float(f)
}

func writeInt(w *writer, i int64) {
	w.byte(tagInt)
	w.varint(i)
}

func writeUint(w *writer, u uint64) {
	w.byte(tagUint)
	w.uvarint(u)
}

func decodeValue(r *reader, depth int) (any, error) {
	if err := checkDepth(depth, MaxValueDepth); err != nil {
		return nil, err
	}

	tag, err := r.byte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case tagNull:
		return nil, nil
	case tagFalse:
		return false, nil
	case tagTrue:
		return true, nil
	case tagInt:
		return r.varint()
	case tagUint:
		return r.uvarint()
	case tagFloat:
		return r.float()
	case tagString:
		return r.str()
	case tagList:
		count, err := r.count()
		if err != nil {
			return nil, err
		}
		out := make([]any, count)
		for i := range out {
			if out[i], err = decodeValue(r, depth+1); err != nil {
				return nil, err
			}
		}
		return out, nil
	case tagMap:
		count, err := r.count()
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, count)
		for i := 0; i < count; i++ {
			k, err := r.str()
			if err != nil {
				return nil, err
			}
			if out[k], err = decodeValue(r, depth+1); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownTag, tag)
}
