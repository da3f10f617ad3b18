package sexpr

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Decode reads one YAML document. Scalars are values, sequences are
// []any values, and a mapping with a single key is an Expr whose head is
// the key and whose arguments are the key's value: a sequence gives the
// argument list, null gives none, anything else a single argument.
//
//	call:
//	  - sym: add
//	  - 1
//	  - static: 2
func Decode(r io.Reader) (any, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return fromNode(&doc)
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return nil, fmt.Errorf("%w: empty document", ErrSyntax)
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, n.Line, err)
		}
		return v, nil
	case yaml.SequenceNode:
		vs, err := fromNodes(n.Content)
		if err != nil {
			return nil, err
		}
		for _, v := range vs {
			if e, ok := v.(Expr); ok {
				return nil, fmt.Errorf("%w: line %d: expression %s inside a list value", ErrSyntax, n.Line, e)
			}
		}
		return vs, nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, fmt.Errorf("%w: line %d: expression must have exactly one head", ErrSyntax, n.Line)
		}
		key, val := n.Content[0], n.Content[1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: head must be a name", ErrSyntax, key.Line)
		}
		switch {
		case val.Kind == yaml.SequenceNode:
			args, err := fromNodes(val.Content)
			if err != nil {
				return nil, err
			}
			return New(key.Value, args...), nil
		case val.Kind == yaml.ScalarNode && val.ShortTag() == "!!null":
			return New(key.Value), nil
		}
		arg, err := fromNode(val)
		if err != nil {
			return nil, err
		}
		return New(key.Value, arg), nil
	}
	return nil, fmt.Errorf("%w: line %d: unsupported node", ErrSyntax, n.Line)
}

func fromNodes(ns []*yaml.Node) ([]any, error) {
	vs := make([]any, len(ns))
	for i, n := range ns {
		v, err := fromNode(n)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}
