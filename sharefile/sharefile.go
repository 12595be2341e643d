// Package sharefile reads share documents, the JSON or YAML files that carry
// the threshold and the encoded points of a secret:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"}
//	}
//
// Every key other than "keys" is the x-coordinate of a share. Entries keep
// the order in which they appear in the document.
package sharefile

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const keysField = "keys"

// Keys holds the document metadata: n shares were issued, k are required.
type Keys struct {
	N int
	K int
}

// Entry is a single encoded share.
type Entry struct {
	X     string
	Base  string
	Value string
	// Line is the 1-based line of the entry in the source document.
	Line int
}

// Document is a parsed share document.
type Document struct {
	Keys    Keys
	Entries []Entry
}

// Load reads and parses the share document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes a JSON or YAML share document. JSON is read by the YAML
// decoder, which keeps the textual form of every scalar and the entry order.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be an object", ErrInvalidDocument, mapping.Line)
	}

	doc := &Document{}
	seen := make(map[string]bool)
	hasKeys := false

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]

		if seen[keyNode.Value] {
			return nil, fmt.Errorf("%w: line %d: %q", ErrDuplicateEntry, keyNode.Line, keyNode.Value)
		}
		seen[keyNode.Value] = true

		if keyNode.Value == keysField {
			keys, err := parseKeys(valueNode)
			if err != nil {
				return nil, err
			}
			doc.Keys = keys
			hasKeys = true
			continue
		}

		entry, err := parseEntry(keyNode.Value, valueNode)
		if err != nil {
			return nil, err
		}
		entry.Line = keyNode.Line

		doc.Entries = append(doc.Entries, entry)
	}

	if !hasKeys {
		return nil, ErrMissingKeys
	}

	return doc, nil
}

func parseKeys(node *yaml.Node) (Keys, error) {
	fields, err := scalarFields(node)
	if err != nil {
		return Keys{}, fmt.Errorf("%w: %q: %w", ErrInvalidDocument, keysField, err)
	}

	var keys Keys

	k, ok := fields["k"]
	if !ok {
		return Keys{}, fmt.Errorf("%w: line %d: no \"k\" field", ErrMissingKeys, node.Line)
	}
	if keys.K, err = strconv.Atoi(k); err != nil {
		return Keys{}, fmt.Errorf("%w: line %d: k: %w", ErrInvalidDocument, node.Line, err)
	}

	// n is informational, k is enough to reconstruct
	if n, ok := fields["n"]; ok {
		if keys.N, err = strconv.Atoi(n); err != nil {
			return Keys{}, fmt.Errorf("%w: line %d: n: %w", ErrInvalidDocument, node.Line, err)
		}
	}

	return keys, nil
}

func parseEntry(x string, node *yaml.Node) (Entry, error) {
	fields, err := scalarFields(node)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: share %q: %w", ErrInvalidDocument, x, err)
	}

	base, ok := fields["base"]
	if !ok {
		return Entry{}, fmt.Errorf("%w: share %q: line %d: no \"base\" field", ErrInvalidDocument, x, node.Line)
	}

	value, ok := fields["value"]
	if !ok {
		return Entry{}, fmt.Errorf("%w: share %q: line %d: no \"value\" field", ErrInvalidDocument, x, node.Line)
	}

	return Entry{X: x, Base: base, Value: value}, nil
}

// scalarFields flattens a mapping of scalars into their raw text.
func scalarFields(node *yaml.Node) (map[string]string, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected an object", node.Line)
	}

	fields := make(map[string]string, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if valueNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: field %q must be a scalar", valueNode.Line, keyNode.Value)
		}

		if _, ok := fields[keyNode.Value]; ok {
			return nil, fmt.Errorf("%w: line %d: field %q", ErrDuplicateEntry, keyNode.Line, keyNode.Value)
		}

		fields[keyNode.Value] = valueNode.Value
	}

	return fields, nil
}
