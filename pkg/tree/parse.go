package tree

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/jsx/internal/errors"
)

// Format is the syntax of a tree document.
type Format int

const (
	// FormatAuto picks YAML or JSON by looking at the document.
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "auto"
}

// FormatForPath chooses a format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatAuto
}

// FormatForContentType chooses a format from an HTTP Content-Type.
func FormatForContentType(ct string) Format {
	ct = strings.ToLower(ct)
	switch {
	case strings.Contains(ct, "json"):
		return FormatJSON
	case strings.Contains(ct, "yaml"):
		return FormatYAML
	}
	return FormatAuto
}

// Parse decodes a document into plain values: maps, lists and scalars.
// JSON numbers are kept as json.Number.
func Parse(data []byte, format Format) (any, error) {
	if format == FormatAuto {
		format = sniff(data)
	}

	var doc any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.New("E101").WithDetail(err.Error()).Wrap(err)
		}
		if _, err := dec.Token(); err != io.EOF {
			return nil, errors.New("E101").WithDetail("trailing data after document")
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.New("E101").WithDetail(err.Error()).Wrap(err)
		}
	}
	return doc, nil
}

// ParseFile reads and parses a document. Syntax errors carry the file
// location when the parser reports one.
func ParseFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E103").WithDetail(path).Wrap(err)
		}
		return nil, errors.New("E101").WithDetail(err.Error()).Wrap(err)
	}

	doc, err := Parse(data, FormatForPath(path))
	if err != nil {
		e, ok := err.(*errors.Error)
		if !ok {
			return nil, err
		}
		if syn, ok := e.Wrapped.(*json.SyntaxError); ok {
			line, col := lineCol(data, syn.Offset)
			return nil, e.WithLocation(path, line, col)
		}
		return nil, e.WithLocationFromError(path, e.Wrapped)
	}
	return doc, nil
}

// lineCol converts a byte offset into a 1-based line and column.
func lineCol(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line := bytes.Count(before, []byte{'\n'}) + 1
	col := int(offset) - bytes.LastIndexByte(before, '\n')
	return line, col
}

// sniff treats input whose first non-space byte opens a JSON value as JSON.
func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}
