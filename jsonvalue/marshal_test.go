package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func sampleObject() Value {
	return NewObjectBuilder().
		Set("type", String("object")).
		Set("enum", Array(Int(1), Float(2.5), Null())).
		Set("nested", NewObjectBuilder().Set("b", Bool(false)).Set("a", String("true")).Build()).
		Build()
}

func TestMarshalJSON(t *testing.T) {
	data, err := sampleObject().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"type":"object","enum":[1,2.5,null],"nested":{"b":false,"a":"true"}}`, string(data))
}

func TestMarshalJSONEscapesStrings(t *testing.T) {
	v := NewObjectBuilder().Set("quote\"key", String("line\nbreak")).Build()
	data, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"quote\"key":"line\nbreak"}`, string(data))
}

func TestMarshalIndent(t *testing.T) {
	v := NewObjectBuilder().Set("a", Array(Int(1))).Build()
	data, err := v.MarshalIndent("", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1\n  ]\n}", string(data))
}

func TestMarshalYAML(t *testing.T) {
	data, err := yaml.Marshal(sampleObject())
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.Len(t, doc.Content, 1)
	root := doc.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind)
	assert.Equal(t, []string{"type", "enum", "nested"}, mappingKeys(root))

	nested := root.Content[5]
	assert.Equal(t, []string{"b", "a"}, mappingKeys(nested))
	// the string "true" must stay a string
	assert.Equal(t, "!!str", nested.Content[3].ShortTag())

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, []any{1, 2.5, nil}, decoded["enum"])
}

func mappingKeys(n *yaml.Node) []string {
	var keys []string
	for i := 0; i+1 < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
	}
	return keys
}

func TestYAMLNodeKinds(t *testing.T) {
	assert.Equal(t, "!!int", Int(3).YAMLNode().Tag)
	assert.Equal(t, "!!float", Float(0.1).YAMLNode().Tag)
	assert.Equal(t, "!!null", Null().YAMLNode().Tag)
	assert.Equal(t, yaml.MappingNode, NewObjectBuilder().Build().YAMLNode().Kind)
	assert.Equal(t, yaml.SequenceNode, Array().YAMLNode().Kind)
}
