package nested

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry is a single key/value pair in a Doc. The value may itself be a
// Doc when it came from a nested Map.
type Entry struct {
	Key   string
	Value any
}

// Doc is an ordered collection of key/value pairs: the serializable
// counterpart of a Map. Go maps carry no key order, so SortKeys hands
// back a Doc, which marshals to JSON and YAML with its entries in
// slice order.
type Doc []Entry

// Lookup returns the value for key and whether the key is present.
// It scans linearly; Doc is built for serialization, not lookups.
func (d Doc) Lookup(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the document as a JSON object with keys emitted
// in entry order. Nested Doc values encode as nested objects.
func (d Doc) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", e.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the document as a YAML mapping node with keys in
// entry order, so yaml.Marshal of a Doc is byte-stable across runs.
func (d Doc) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range d {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("key %q: %w", e.Key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
