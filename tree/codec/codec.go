// Package codec converts between YAML/JSON documents and nested tree
// mappings, preserving the document's key order both directions by working
// at the yaml.v3 node level. JSON input is handled by the same parser,
// since YAML is a superset.
package codec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/treekit/tree"
)

// Load parses a YAML or JSON document whose top level is a mapping into an
// insertion-ordered tree. Nested mappings become nested *tree.Ordered
// values; sequences and scalars are kept as opaque leaf values. An empty
// document loads as an empty tree.
func Load(data []byte) (*tree.Ordered[string], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: parse: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return tree.NewOrdered[string](), nil
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("codec: top-level node is not a mapping (line %d)", root.Line)
	}
	return decodeMapping(root)
}

// decodeMapping recurses through decodeValue; depth is bounded by the
// parser's own document depth limit.
func decodeMapping(n *yaml.Node) (*tree.Ordered[string], error) {
	out := tree.NewOrdered[string]()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("codec: mapping key at line %d: %w", keyNode.Line, err)
		}
		v, err := decodeValue(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		out.Set(key, v)
	}
	return out, nil
}

func decodeValue(n *yaml.Node) (any, error) {
	n = resolveAlias(n)
	if n.Kind == yaml.MappingNode {
		return decodeMapping(n)
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("codec: value at line %d: %w", n.Line, err)
	}
	return v, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

// Dump renders a tree as a YAML document, emitting keys in the mapping's
// native order.
func Dump(d tree.Map[string]) ([]byte, error) {
	n, err := encodeValue(d)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal: %w", err)
	}
	return out, nil
}

// DumpJSON renders a tree as indented JSON. Ordered trees emit keys in
// insertion order via their MarshalJSON.
func DumpJSON(d tree.Map[string]) ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("codec: marshal json: %w", err)
	}
	return out, nil
}

// encodeValue recurses; its depth is bounded by what yaml.v3 can itself
// marshal, which is far shallower than the core engine's iterative walks
// support.
func encodeValue(v any) (*yaml.Node, error) {
	if m, ok := v.(tree.Map[string]); ok {
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range m.Keys() {
			var kn yaml.Node
			if err := kn.Encode(k); err != nil {
				return nil, fmt.Errorf("codec: encode key %q: %w", k, err)
			}
			child, _ := m.Get(k)
			vn, err := encodeValue(child)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, &kn, vn)
		}
		return node, nil
	}
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, fmt.Errorf("codec: encode value %v: %w", v, err)
	}
	return &n, nil
}
