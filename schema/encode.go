package schema

import (
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasschema/jsonvalue"
)

// NullableStyle selects how a nullable schema is written.
type NullableStyle uint8

const (
	// NullableKeyword writes "nullable": true (OpenAPI 3.0).
	NullableKeyword NullableStyle = iota
	// NullableTypeArray writes "type": [T, "null"] (OpenAPI 3.1).
	NullableTypeArray
)

// BoundStyle selects how exclusive numeric bounds are written.
type BoundStyle uint8

const (
	// BoundFlag writes "maximum": v with "exclusiveMaximum": true (OpenAPI 3.0).
	BoundFlag BoundStyle = iota
	// BoundValue writes "exclusiveMaximum": v alone (OpenAPI 3.1).
	BoundValue
)

type encodeConfig struct {
	nullableStyle NullableStyle
	boundStyle    BoundStyle
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

// WithNullableStyle sets how nullability is written.
func WithNullableStyle(style NullableStyle) EncodeOption {
	return func(cfg *encodeConfig) { cfg.nullableStyle = style }
}

// WithExclusiveBoundStyle sets how exclusive bounds are written.
func WithExclusiveBoundStyle(style BoundStyle) EncodeOption {
	return func(cfg *encodeConfig) { cfg.boundStyle = style }
}

// ForVersion selects the styles matching an OpenAPI version string such as
// "3.0.3" or "3.1.0". Versions before 3.1 use the 3.0 styles.
func ForVersion(version string) EncodeOption {
	return func(cfg *encodeConfig) {
		if strings.HasPrefix(version, "3.0") || !strings.HasPrefix(version, "3.") {
			cfg.nullableStyle = NullableKeyword
			cfg.boundStyle = BoundFlag
			return
		}
		cfg.nullableStyle = NullableTypeArray
		cfg.boundStyle = BoundValue
	}
}

func newEncodeConfig(opts []EncodeOption) *encodeConfig {
	cfg := &encodeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Encode renders n as its OpenAPI document form.
//
// Leaf nodes produce a single object: the shared Context keys first, then the
// kind-specific keys. allOf, oneOf and anyOf produce {"<keyword>": [...]}
// with members in their original order, not produces {"not": ...} and a
// reference produces exactly {"$ref": "<pointer>"}. Encoding is deterministic.
func Encode(n Node, opts ...EncodeOption) jsonvalue.Value {
	return encodeNode(n, newEncodeConfig(opts))
}

func encodeNode(n Node, cfg *encodeConfig) jsonvalue.Value {
	b := jsonvalue.NewObjectBuilder()
	switch n := n.(type) {
	case BooleanNode:
		n.ctx.encodeFields(b, cfg)
	case ObjectNode:
		n.ctx.encodeFields(b, cfg)
		n.object.encodeFields(b, cfg)
	case ArrayNode:
		n.ctx.encodeFields(b, cfg)
		n.array.encodeFields(b, cfg)
	case NumberNode:
		n.ctx.encodeFields(b, cfg)
		n.numeric.encodeFields(b, cfg)
	case IntegerNode:
		n.ctx.encodeFields(b, cfg)
		n.numeric.encodeFields(b, cfg)
	case StringNode:
		n.ctx.encodeFields(b, cfg)
		n.str.encodeFields(b, cfg)
	case AllOfNode:
		b.Set("allOf", encodeList(n.schemas, cfg))
	case OneOfNode:
		b.Set("oneOf", encodeList(n.schemas, cfg))
	case AnyOfNode:
		b.Set("anyOf", encodeList(n.schemas, cfg))
	case NotNode:
		b.Set("not", encodeNode(n.schema, cfg))
	case ReferenceNode:
		b.Set("$ref", jsonvalue.String(n.ref.String()))
	}
	return b.Build()
}

func encodeList(nodes []Node, cfg *encodeConfig) jsonvalue.Value {
	items := make([]jsonvalue.Value, len(nodes))
	for i, n := range nodes {
		items[i] = encodeNode(n, cfg)
	}
	return jsonvalue.Array(items...)
}

// MarshalJSON encodes n and serializes the result as compact JSON.
func MarshalJSON(n Node, opts ...EncodeOption) ([]byte, error) {
	return Encode(n, opts...).MarshalJSON()
}

// MarshalYAML encodes n and serializes the result as YAML, keeping key order.
func MarshalYAML(n Node, opts ...EncodeOption) ([]byte, error) {
	return yaml.Marshal(Encode(n, opts...).YAMLNode())
}

// MarshalJSON implements json.Marshaler with the default encode options.
func (n BooleanNode) MarshalJSON() ([]byte, error) { return MarshalJSON(n) }

// MarshalJSON implements json.Marshaler with the default encode options.
func (n ObjectNode) MarshalJSON() ([]byte, error) { return MarshalJSON(n) }

// MarshalJSON implements json.Marshaler with the default encode options.
func (n ArrayNode) MarshalJSON() ([]byte, error) { return MarshalJSON(n) }

// MarshalJSON implements json.Marshaler with the default encode options.
func (n NumberNode) MarshalJSON() ([]byte, error) { return MarshalJSON(n) }

// MarshalJSON implements json.Marshaler with the default encode options.
func (n IntegerNode) MarshalJSON() ([]byte, error) { return MarshalJSON(n) }

// MarshalJSON implements json.Marshaler with the default encode options.
func (n StringNode) MarshalJSON() ([]byte, error) { return MarshalJSON(n) }

// MarshalJSON implements json.Marshaler with the default encode options.
func (n AllOfNode) MarshalJSON() ([]byte, error) { return MarshalJSON(n) }

// MarshalJSON implements json.Marshaler with the default encode options.
func (n OneOfNode) MarshalJSON() ([]byte, error) { return MarshalJSON(n) }

// MarshalJSON implements json.Marshaler with the default encode options.
func (n AnyOfNode) MarshalJSON() ([]byte, error) { return MarshalJSON(n) }

// MarshalJSON implements json.Marshaler with the default encode options.
func (n NotNode) MarshalJSON() ([]byte, error) { return MarshalJSON(n) }

// MarshalJSON implements json.Marshaler with the default encode options.
func (n ReferenceNode) MarshalJSON() ([]byte, error) { return MarshalJSON(n) }
