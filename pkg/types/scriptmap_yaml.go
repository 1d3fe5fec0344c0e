package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the map as a YAML mapping in declaration order.
func (m ScriptMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range m.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: m.values[k]},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping keeping the document's key order.
func (m *ScriptMap) UnmarshalYAML(value *yaml.Node) error {
	*m = NewScriptMap()

	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("scripts: expected mapping, got %v", value.Kind)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		m.Set(value.Content[i].Value, value.Content[i+1].Value)
	}
	return nil
}
