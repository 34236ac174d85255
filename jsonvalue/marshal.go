package jsonvalue

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// MarshalJSON writes v as compact JSON with object members in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is like MarshalJSON but applies indentation.
func (v Value) MarshalIndent(prefix, indent string) ([]byte, error) {
	data, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.s)
	case KindString:
		return writeString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		var err error
		first := true
		v.obj.Range(func(key string, val Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err = writeString(buf, key); err != nil {
				return false
			}
			buf.WriteByte(':')
			err = writeJSON(buf, val)
			return err == nil
		})
		if err != nil {
			return err
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// MarshalYAML implements yaml.Marshaler. It returns a node tree so that
// object members keep their insertion order in the YAML output.
func (v Value) MarshalYAML() (any, error) {
	return v.YAMLNode(), nil
}

// YAMLNode converts v to a yaml.Node tree.
func (v Value) YAMLNode() *yaml.Node {
	switch v.kind {
	case KindBool:
		if v.b {
			return scalarNode("!!bool", "true")
		}
		return scalarNode("!!bool", "false")
	case KindNumber:
		if strings.ContainsAny(v.s, ".eE") {
			return scalarNode("!!float", v.s)
		}
		return scalarNode("!!int", v.s)
	case KindString:
		return scalarNode("!!str", v.s)
	case KindArray:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Tag:     "!!seq",
			Content: make([]*yaml.Node, 0, len(v.arr)),
		}
		for _, item := range v.arr {
			node.Content = append(node.Content, item.YAMLNode())
		}
		return node
	case KindObject:
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Tag:     "!!map",
			Content: make([]*yaml.Node, 0, 2*v.obj.Len()),
		}
		v.obj.Range(func(key string, val Value) bool {
			node.Content = append(node.Content, scalarNode("!!str", key), val.YAMLNode())
			return true
		})
		return node
	default:
		return scalarNode("!!null", "null")
	}
}

// scalarNode creates a yaml.Node for a scalar value.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
