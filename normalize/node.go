// Package normalize implements the normalization adapter: reading the
// heterogeneous short-hand/canonical source tree, resolving cluster and
// pole short-hands, inferring cluster style, and translating settings
// short-hands to produce a scconfig.Mapping. It uses the shift package's
// mode-shift token pool but does not run the shift-state compiler
// (shift.Compile). Grounded on spec.md §4.5 and
// original_source/src/domexport.py.
package normalize

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Kind distinguishes the three node shapes a source document is built
// from — map, sequence, scalar — mirroring how junegunn/fzf's
// src/options.go and gopkg.in/yaml.v3 both model loosely-typed
// configuration trees.
type Kind int

const (
	KindScalar Kind = iota
	KindMap
	KindSeq
)

// Node is one element of the generic source tree.
type Node struct {
	Kind   Kind
	Scalar string
	Keys   []string // Map: insertion order
	Map    map[string]*Node
	Seq    []*Node
}

func newMapNode() *Node   { return &Node{Kind: KindMap, Map: map[string]*Node{}} }
func newSeqNode(n int) *Node { return &Node{Kind: KindSeq, Seq: make([]*Node, 0, n)} }
func newScalarNode(s string) *Node { return &Node{Kind: KindScalar, Scalar: s} }

// Get returns the child of a map node by key.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMap {
		return nil, false
	}
	v, ok := n.Map[key]
	return v, ok
}

// GetString returns a map child's scalar value.
func (n *Node) GetString(key string) (string, bool) {
	v, ok := n.Get(key)
	if !ok || v.Kind != KindScalar {
		return "", false
	}
	return v.Scalar, true
}

// LoadYAML parses r as YAML into a generic Node tree, using
// gopkg.in/yaml.v3's low-level yaml.Node so map key order is preserved
// exactly as written (a plain map[string]interface{} decode would not).
func LoadYAML(r io.Reader) (*Node, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	if len(doc.Content) == 0 {
		return newMapNode(), nil
	}
	return fromYAML(doc.Content[0])
}

func fromYAML(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.MappingNode:
		n := newMapNode()
		for i := 0; i+1 < len(y.Content); i += 2 {
			key := y.Content[i].Value
			val, err := fromYAML(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			if _, exists := n.Map[key]; !exists {
				n.Keys = append(n.Keys, key)
			}
			n.Map[key] = val
		}
		return n, nil
	case yaml.SequenceNode:
		n := newSeqNode(len(y.Content))
		for _, c := range y.Content {
			v, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			n.Seq = append(n.Seq, v)
		}
		return n, nil
	case yaml.ScalarNode:
		return newScalarNode(y.Value), nil
	case yaml.AliasNode:
		return fromYAML(y.Alias)
	default:
		return newScalarNode(""), nil
	}
}
