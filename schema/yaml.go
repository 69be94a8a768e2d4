package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CompileYAML compiles a schema declared as a YAML mapping document:
//
//	name: string
//	age: "?number"
//	tags: [string]
//	address:
//	  city: string
//
// Unlike Compile over a Go map literal, the YAML document's field order is
// preserved, so it carries the declaration-order traversal contract.
func CompileYAML(data []byte) (Object, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: invalid yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("schema: empty yaml document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema: yaml document root must be a mapping, got %v", root.Tag)
	}
	return compileYAMLMapping(root, "")
}

func compileYAMLMapping(n *yaml.Node, path string) (Object, error) {
	out := make(Object, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		fieldPath := key.Value
		if path != "" {
			fieldPath = path + "." + key.Value
		}
		v, err := compileYAMLValue(val, fieldPath)
		if err != nil {
			return nil, err
		}
		out = append(out, Field{Name: key.Value, Value: v})
	}
	return out, nil
}

func compileYAMLValue(n *yaml.Node, path string) (Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return compileTag(n.Value, path)
	case yaml.SequenceNode:
		if len(n.Content) != 1 {
			return nil, fmt.Errorf("schema: %s: array form must hold exactly one element schema, got %d", path, len(n.Content))
		}
		elem, err := compileYAMLValue(n.Content[0], path+"[]")
		if err != nil {
			return nil, err
		}
		return ArrayOf{Elem: elem}, nil
	case yaml.MappingNode:
		return compileYAMLMapping(n, path)
	case yaml.AliasNode:
		return compileYAMLValue(n.Alias, path)
	}
	return nil, fmt.Errorf("schema: %s: unsupported yaml node kind", path)
}
