// yamlutil/yaml.go
package yamlutil

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Decode parses YAML text and returns the root node of the first document.
// A nil node with a nil error means the document was empty or held only a
// null value.
func Decode(text string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := unmarshalNode([]byte(text), &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := Resolve(doc.Content[0])
	if root != nil && root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	return root, nil
}

// unmarshalNode isolates the yaml.v3 call so a panic on crafted input
// surfaces as an ordinary error.
func unmarshalNode(data []byte, doc *yaml.Node) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("yaml: %v", r)
		}
	}()
	return yaml.Unmarshal(data, doc)
}

// Resolve follows alias nodes to their anchor target. The hop count is
// bounded so malformed alias chains cannot loop.
func Resolve(n *yaml.Node) *yaml.Node {
	for i := 0; n != nil && n.Kind == yaml.AliasNode && i < 64; i++ {
		n = n.Alias
	}
	return n
}

// IsMapping reports whether the node resolves to a YAML mapping.
func IsMapping(n *yaml.Node) bool {
	n = Resolve(n)
	return n != nil && n.Kind == yaml.MappingNode
}

// IsSequence reports whether the node resolves to a YAML sequence.
func IsSequence(n *yaml.Node) bool {
	n = Resolve(n)
	return n != nil && n.Kind == yaml.SequenceNode
}

// MapGet returns the value node for the given key of a mapping, or nil if
// the node is not a mapping or the key is absent. The last occurrence of a
// duplicated key wins, matching decoder behaviour.
func MapGet(m *yaml.Node, key string) *yaml.Node {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	var found *yaml.Node
	for i := 0; i+1 < len(m.Content); i += 2 {
		k := Resolve(m.Content[i])
		if k != nil && k.Kind == yaml.ScalarNode && k.Value == key {
			found = m.Content[i+1]
		}
	}
	return found
}

// MapPairs invokes fn for every key/value pair of a mapping in document
// order. Pairs whose key is not a scalar are skipped.
func MapPairs(m *yaml.Node, fn func(key string, value *yaml.Node)) {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k := Resolve(m.Content[i])
		if k == nil || k.Kind != yaml.ScalarNode {
			continue
		}
		fn(k.Value, m.Content[i+1])
	}
}

// SequenceItems returns the item nodes of a sequence, or nil for any other
// node kind.
func SequenceItems(n *yaml.Node) []*yaml.Node {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	return n.Content
}

// ScalarString returns the string value of a scalar node. Only nodes that
// carry string content qualify; null, bool and numeric scalars report false.
// Timestamp-tagged scalars keep their raw text, since documents written by
// hand routinely hold dates in otherwise free-form string fields.
func ScalarString(n *yaml.Node) (string, bool) {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	switch n.Tag {
	case "!!str", "!!timestamp":
		return n.Value, true
	}
	return "", false
}

// ScalarInt returns the integer value of an integer-tagged scalar node.
func ScalarInt(n *yaml.Node) (int, bool) {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag != "!!int" {
		return 0, false
	}
	v, err := strconv.ParseInt(n.Value, 0, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
