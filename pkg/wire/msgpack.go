package wire

import (
	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackCodec encodes snapshots as MessagePack maps with the same keys as
// the JSON form.
type MsgpackCodec struct{}

func (MsgpackCodec) Format() string      { return "msgpack" }
func (MsgpackCodec) ContentType() string { return "application/msgpack" }

func (c MsgpackCodec) Marshal(n *Node) ([]byte, error) {
	var v any
	if n != nil {
		v = n.toMap()
	}
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, encodeError(c, err)
	}
	return b, nil
}

func (c MsgpackCodec) Unmarshal(data []byte) (*Node, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, decodeError(c, err)
	}
	n, err := nodeFromMap(v, 0)
	if err != nil {
		return nil, decodeError(c, err)
	}
	return n, nil
}
