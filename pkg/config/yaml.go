package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func decodeYAML(data []byte) (rawDocument, []string, error) {
	var (
		raw  rawDocument
		root yaml.Node
	)

	if err := yaml.Unmarshal(data, &root); err != nil {
		return raw, nil, err
	}

	// An empty document decodes to a zero node.
	if root.Kind == 0 {
		return raw, nil, nil
	}

	if top := documentRoot(&root); top.Kind != yaml.MappingNode {
		return raw, nil, fmt.Errorf("line %d: expected a mapping at the top level, got a %s", top.Line, kindName(top.Kind))
	}

	if err := root.Decode(&raw); err != nil {
		return raw, nil, err
	}

	return raw, yamlCommandOrder(&root), nil
}

// yamlCommandOrder returns the keys of the top-level commands mapping in
// document order
func yamlCommandOrder(root *yaml.Node) []string {
	top := documentRoot(root)
	if top.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		if key.Value != commandsTable || value.Kind != yaml.MappingNode {
			continue
		}

		var order []string
		for j := 0; j+1 < len(value.Content); j += 2 {
			order = append(order, value.Content[j].Value)
		}
		return order
	}

	return nil
}

func documentRoot(root *yaml.Node) *yaml.Node {
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		return root.Content[0]
	}
	return root
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}
