package wire

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// Allocation limits against malicious length prefixes.
const (
	// MaxAllocation caps a single string read (4MB).
	MaxAllocation = 4 * 1024 * 1024

	// MaxCollectionCount caps the item count of a list, map or child list.
	MaxCollectionCount = 100_000
)

// Decoding errors. Codecs wrap them in an E141 error.
var (
	ErrVarintOverflow     = errors.New("wire: varint overflow")
	ErrAllocationTooLarge = errors.New("wire: allocation size exceeds limit")
	ErrCollectionTooLarge = errors.New("wire: collection count exceeds limit")
	ErrMaxDepthExceeded   = errors.New("wire: maximum nesting depth exceeded")
	ErrBadMagic           = errors.New("wire: not a binary snapshot")
	ErrUnknownTag         = errors.New("wire: unknown value tag")
	ErrTrailingData       = errors.New("wire: trailing data after snapshot")
)

// writer appends the primitives of the binary format to a buffer.
type writer struct {
	buf []byte
}

func newWriter() *writer {
	return &writer{buf: append(make([]byte, 0, 256), magic...)}
}

func (w *writer) byte(b byte)      { w.buf = append(w.buf, b) }
func (w *writer) uvarint(v uint64) { w.buf = binary.AppendUvarint(w.buf, v) }
func (w *writer) varint(v int64)   { w.buf = binary.AppendVarint(w.buf, v) }
func (w *writer) float(f float64)  { w.buf = binary.BigEndian.AppendUint64(w.buf, math.Float64bits(f)) }
func (w *writer) count(n int)      { w.uvarint(uint64(n)) }
func (w *writer) bytes() []byte    { return w.buf }

// str writes a length-prefixed string.
func (w *writer) str(s string) {
	w.uvarint(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

// reader consumes a binary snapshot. Every read is bounds checked and
// reports io.ErrUnexpectedEOF on short input.
type reader struct {
	buf []byte
	pos int
}

// newReader checks the magic header and positions r after it.
func newReader(data []byte) (*reader, error) {
	if len(data) < len(magic) || string(data[:len(magic)]) != string(magic) {
		return nil, ErrBadMagic
	}
	return &reader{buf: data, pos: len(magic)}, nil
}

func (r *reader) remaining() int { return len(r.buf) - r.pos }
func (r *reader) done() bool     { return r.pos >= len(r.buf) }

func (r *reader) byte() (byte, error) {
	if r.done() {
		return 0, io.ErrUnexpectedEOF
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	switch {
	case n == 0:
		return 0, io.ErrUnexpectedEOF
	case n < 0:
		return 0, ErrVarintOverflow
	}
	r.pos += n
	return v, nil
}

func (r *reader) varint() (int64, error) {
	v, n := binary.Varint(r.buf[r.pos:])
	switch {
	case n == 0:
		return 0, io.ErrUnexpectedEOF
	case n < 0:
		return 0, ErrVarintOverflow
	}
	r.pos += n
	return v, nil
}

func (r *reader) float() (float64, error) {
	if r.remaining() < 8 {
		return 0, io.ErrUnexpectedEOF
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return math.Float64frombits(v), nil
}

func (r *reader) str() (string, error) {
	length, err := r.uvarint()
	if err != nil {
		return "", err
	}
	if length > MaxAllocation {
		return "", ErrAllocationTooLarge
	}
	if length > uint64(r.remaining()) {
		return "", io.ErrUnexpectedEOF
	}
	s := string(r.buf[r.pos : r.pos+int(length)])
	r.pos += int(length)
	return s, nil
}

// count reads an item count. Every item takes at least one byte, so a
// count larger than the remaining input is rejected before allocating.
func (r *reader) count() (int, error) {
	n, err := r.uvarint()
	if err != nil {
		return 0, err
	}
	if n > MaxCollectionCount {
		return 0, ErrCollectionTooLarge
	}
	if n > uint64(r.remaining()) {
		return 0, io.ErrUnexpectedEOF
	}
	return int(n), nil
}
