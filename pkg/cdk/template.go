package cdk

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const (
	importValueKey = "Fn::ImportValue"
	importValueTag = "!ImportValue"
)

// jsonImports returns the literal export names imported by a JSON template,
// in document order of sorted object keys.
func jsonImports(data []byte, logger *log.Logger) ([]string, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var out []string
	var walk func(v any)
	walk = func(v any) {
		switch t := v.(type) {
		case map[string]any:
			for _, k := range slices.Sorted(maps.Keys(t)) {
				if k != importValueKey {
					walk(t[k])
					continue
				}
				if name, ok := t[k].(string); ok {
					out = append(out, name)
				} else {
					logger.Debug("skipping non-literal import", "value", fmt.Sprint(t[k]))
				}
			}
		case []any:
			for _, item := range t {
				walk(item)
			}
		}
	}
	walk(doc)
	return out, nil
}

// yamlImports returns the literal export names imported by a YAML template.
// Both the Fn::ImportValue mapping and the !ImportValue short form are
// recognized.
func yamlImports(data []byte, logger *log.Logger) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var out []string
	literal := func(n *yaml.Node) {
		if n.Kind == yaml.ScalarNode && (n.Tag == "!!str" || n.Tag == importValueTag) {
			out = append(out, n.Value)
			return
		}
		logger.Debug("skipping non-literal import", "line", n.Line)
	}

	var walk func(n *yaml.Node)
	walk = func(n *yaml.Node) {
		if n.Tag == importValueTag {
			if n.Kind == yaml.ScalarNode {
				literal(n)
			} else {
				logger.Debug("skipping non-literal import", "line", n.Line)
			}
			return
		}
		switch n.Kind {
		case yaml.MappingNode:
			for i := 0; i+1 < len(n.Content); i += 2 {
				k, v := n.Content[i], n.Content[i+1]
				if k.Value == importValueKey {
					literal(v)
					continue
				}
				walk(v)
			}
		case yaml.DocumentNode, yaml.SequenceNode:
			for _, c := range n.Content {
				walk(c)
			}
		}
	}
	walk(&doc)
	return out, nil
}
