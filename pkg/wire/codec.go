package wire

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vango-dev/jsx/internal/errors"
	"github.com/vango-dev/jsx/pkg/vnode"
)

// Codec encodes and decodes snapshots in one wire format.
type Codec interface {
	// Format is the short name used in flags, config and query strings.
	Format() string
	// ContentType is the HTTP media type of the encoding.
	ContentType() string
	Marshal(n *Node) ([]byte, error)
	Unmarshal(data []byte) (*Node, error)
}

// Built-in codecs.
var (
	JSON    Codec = JSONCodec{}
	Msgpack Codec = MsgpackCodec{}
	Binary  Codec = BinaryCodec{}
)

var codecs = map[string]Codec{
	JSON.Format():    JSON,
	Msgpack.Format(): Msgpack,
	Binary.Format():  Binary,
}

// Formats lists the names accepted by Lookup, sorted.
func Formats() []string {
	out := make([]string, 0, len(codecs))
	for name := range codecs {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Lookup returns the codec for a format name. Names are case-insensitive;
// "" selects JSON.
func Lookup(format string) (Codec, error) {
	if format == "" {
		return JSON, nil
	}
	if c, ok := codecs[strings.ToLower(format)]; ok {
		return c, nil
	}
	return nil, errors.New("E123").
		WithDetailf("format %q", format).
		WithSuggestion(fmt.Sprintf("Use one of: %s", strings.Join(Formats(), ", ")))
}

// Encode snapshots v and marshals it with c.
func Encode(c Codec, v *vnode.VNode) ([]byte, error) {
	return c.Marshal(Snapshot(v))
}

func encodeError(c Codec, err error) error {
	return errors.New("E140").WithDetailf("%s: %v", c.Format(), err).Wrap(err)
}

func decodeError(c Codec, err error) error {
	return errors.New("E141").WithDetailf("%s: %v", c.Format(), err).Wrap(err)
}

// WithIndent returns a pretty-printing JSON codec when c is JSON and indent
// is non-empty. Other codecs are returned unchanged.
func WithIndent(c Codec, indent string) Codec {
	if _, ok := c.(JSONCodec); ok && indent != "" {
		return JSONCodec{Indent: indent}
	}
	return c
}
