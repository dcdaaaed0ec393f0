// Package conftree is the boundary to the external configuration library.
//
// The definition pass needs exactly three capabilities from the parsed
// configuration: enumerate a section's children in document order, read a
// child's identifier when it has one, and read a scalar as a string or an
// integer with a distinct failure when the stored type differs. Node exposes
// that surface over the yaml.v3 node tree, which keeps document order and
// discriminates scalar types at read time.
package conftree

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind is the discriminated type of a node's value.
type Kind int

const (
	// Section is an ordered sequence of child nodes.
	Section Kind = iota
	// String is a string scalar.
	String
	// Integer is an integer scalar.
	Integer
)

func (k Kind) String() string {
	switch k {
	case Section:
		return "section"
	case Integer:
		return "integer"
	default:
		return "string"
	}
}

var (
	// ErrEmptyDocument means the input held no configuration at all.
	ErrEmptyDocument = errors.New("empty configuration document")
	// ErrNotSection means a scalar was found where a section was required.
	ErrNotSection = errors.New("not a section")
	// ErrNotString means a string read hit a non-string node.
	ErrNotString = errors.New("not a string scalar")
	// ErrNotInteger means an integer read hit a non-integer node.
	ErrNotInteger = errors.New("not an integer scalar")
)

// Node is one entry of the configuration tree. A node read out of a keyed
// section carries an identifier; list members do not.
type Node struct {
	id    string
	hasID bool
	yn    *yaml.Node
}

// Load parses one YAML document and returns its root section.
func Load(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode && root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("top level: %w", ErrNotSection)
	}
	return &Node{yn: root}, nil
}

// resolve follows alias nodes to their anchors.
func resolve(yn *yaml.Node) *yaml.Node {
	for yn.Kind == yaml.AliasNode && yn.Alias != nil {
		yn = yn.Alias
	}
	return yn
}

// ID returns the node's identifier. The second result is false when the node
// has none, or when its key is not a plain string (list members, numeric or
// complex keys).
func (n *Node) ID() (string, bool) {
	return n.id, n.hasID
}

// Kind returns the discriminated type of the node's value.
func (n *Node) Kind() Kind {
	switch n.yn.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return Section
	case yaml.ScalarNode:
		if n.yn.Tag == "!!int" {
			return Integer
		}
	}
	return String
}

// Line returns the source line the node's value starts on.
func (n *Node) Line() int {
	return n.yn.Line
}

// Children returns the node's children in document order. Keyed sections
// yield one child per entry, duplicates included; list sections yield their
// members without identifiers. Scalars have no children.
func (n *Node) Children() []*Node {
	switch n.yn.Kind {
	case yaml.MappingNode:
		out := make([]*Node, 0, len(n.yn.Content)/2)
		for i := 0; i+1 < len(n.yn.Content); i += 2 {
			key := resolve(n.yn.Content[i])
			child := &Node{yn: resolve(n.yn.Content[i+1])}
			if key.Kind == yaml.ScalarNode && key.Tag == "!!str" {
				child.id = key.Value
				child.hasID = true
			}
			out = append(out, child)
		}
		return out
	case yaml.SequenceNode:
		out := make([]*Node, 0, len(n.yn.Content))
		for _, c := range n.yn.Content {
			out = append(out, &Node{yn: resolve(c)})
		}
		return out
	}
	return nil
}

// StringValue returns the node's scalar as a string, failing with
// ErrNotString for sections and non-string scalars.
func (n *Node) StringValue() (string, error) {
	if n.yn.Kind != yaml.ScalarNode || n.yn.Tag != "!!str" {
		return "", fmt.Errorf("line %d: %w (have %s)", n.yn.Line, ErrNotString, n.Kind())
	}
	return n.yn.Value, nil
}

// IntValue returns the node's scalar as an integer, failing with
// ErrNotInteger for sections and non-integer scalars.
func (n *Node) IntValue() (int64, error) {
	if n.yn.Kind != yaml.ScalarNode || n.yn.Tag != "!!int" {
		return 0, fmt.Errorf("line %d: %w (have %s)", n.yn.Line, ErrNotInteger, n.Kind())
	}
	v, err := strconv.ParseInt(n.yn.Value, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w: %v", n.yn.Line, ErrNotInteger, err)
	}
	return v, nil
}
