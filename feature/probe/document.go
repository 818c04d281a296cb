package probe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// TagPrefix marks configuration keys that declare an environment section.
const TagPrefix = "env:"

// Shape is the JSON type of a configuration document.
type Shape string

const (
	ShapeMapping  Shape = "mapping"
	ShapeSequence Shape = "sequence"
	ShapeString   Shape = "string"
	ShapeNumber   Shape = "number"
	ShapeBoolean  Shape = "boolean"
	ShapeNull     Shape = "null"
)

// ParseError reports output that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is a parsed configuration dump. Keys keep document order.
type Document struct {
	Raw   json.RawMessage
	Shape Shape
	// Keys holds the top-level keys of a mapping, nil for any other shape.
	Keys []string
}

// ParseDocument validates data as JSON and records its shape and keys.
func ParseDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		var v any
		err := json.Unmarshal(trimmed, &v)
		if err == nil {
			err = errors.New("unexpected input")
		}
		return nil, &ParseError{Err: err}
	}

	doc := &Document{Raw: json.RawMessage(trimmed), Shape: shapeOf(trimmed[0])}
	if doc.Shape == ShapeMapping {
		keys, err := objectKeys(trimmed)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		doc.Keys = keys
	}
	return doc, nil
}

// IsMapping reports whether the document is a JSON object.
func (d *Document) IsMapping() bool {
	return d.Shape == ShapeMapping
}

// Environments returns the environment names of a mapping document in key
// order. The second result is false when the document is not a mapping.
func (d *Document) Environments() ([]string, bool) {
	if !d.IsMapping() {
		return nil, false
	}
	return EnvironmentNames(d.Keys), true
}

// String returns the compact JSON form of the document.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, d.Raw); err != nil {
		return string(d.Raw)
	}
	return buf.String()
}

// EnvironmentNames strips TagPrefix from every tagged key. The result is
// never nil.
func EnvironmentNames(keys []string) []string {
	names := []string{}
	for _, key := range keys {
		if name, ok := strings.CutPrefix(key, TagPrefix); ok {
			names = append(names, name)
		}
	}
	return names
}

func shapeOf(first byte) Shape {
	switch first {
	case '{':
		return ShapeMapping
	case '[':
		return ShapeSequence
	case '"':
		return ShapeString
	case 't', 'f':
		return ShapeBoolean
	case 'n':
		return ShapeNull
	default:
		return ShapeNumber
	}
}

// objectKeys walks the top-level object token by token; decoding into a map
// would lose the key order.
func objectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	keys := []string{}
	seen := map[string]bool{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func formatList(items []string) string {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return string(data)
}
