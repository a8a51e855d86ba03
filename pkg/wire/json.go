package wire

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSONCodec encodes snapshots as snabbdom-shaped JSON. Object keys are
// sorted, so output is deterministic.
type JSONCodec struct {
	// Indent, when set, pretty-prints with this indent per level.
	Indent string
}

func (JSONCodec) Format() string      { return "json" }
func (JSONCodec) ContentType() string { return "application/json" }

func (c JSONCodec) Marshal(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if c.Indent != "" {
		enc.SetIndent("", c.Indent)
	}

	var v any
	if n != nil {
		v = n.toMap()
	}
	if err := enc.Encode(v); err != nil {
		return nil, encodeError(c, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (c JSONCodec) Unmarshal(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, decodeError(c, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, decodeError(c, ErrTrailingData)
	}
	n, err := nodeFromMap(v, 0)
	if err != nil {
		return nil, decodeError(c, err)
	}
	return n, nil
}
