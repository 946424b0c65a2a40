package jsonflat

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatYAML serializes v as a YAML document, keeping object member order.
// The trailing newline is removed.
func FormatYAML(v Value) (string, error) {
	node, err := yamlNode(v)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("jsonflat: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("jsonflat: encode yaml: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func yamlNode(v Value) (*yaml.Node, error) {
	switch v.Kind() {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool())}, nil
	case KindNumber:
		tag := "!!int"
		if strings.ContainsAny(v.Number(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.Number()}, nil
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Str()}, nil
	case KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, e := range v.Array() {
			c, err := yamlNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	case KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v.Object().Members() {
			c, err := yamlNode(m.Value)
			if err != nil {
				return nil, err
			}
			k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key}
			n.Content = append(n.Content, k, c)
		}
		return n, nil
	}
	return nil, fmt.Errorf("jsonflat: cannot format %s as yaml", v.Kind())
}
