package schema

import "github.com/erraggy/oasschema/jsonvalue"

// The functions in this file apply a Context change to any Node. Leaf nodes
// return a modified copy; composite and reference nodes carry no Context and
// are returned unchanged, without evaluating any argument that would need
// conversion.

// updateFields applies fn to the shared fields of a leaf node. ok is false for
// composite and reference nodes.
func updateFields(n Node, fn func(contextFields) contextFields) (out Node, ok bool) {
	switch n := n.(type) {
	case BooleanNode:
		n.ctx.fields = fn(n.ctx.fields)
		return n, true
	case ObjectNode:
		n.ctx.fields = fn(n.ctx.fields)
		return n, true
	case ArrayNode:
		n.ctx.fields = fn(n.ctx.fields)
		return n, true
	case NumberNode:
		n.ctx.fields = fn(n.ctx.fields)
		return n, true
	case IntegerNode:
		n.ctx.fields = fn(n.ctx.fields)
		return n, true
	case StringNode:
		n.ctx.fields = fn(n.ctx.fields)
		return n, true
	case AllOfNode, OneOfNode, AnyOfNode, NotNode, ReferenceNode:
		return n, false
	}
	return n, false
}

// OptionalSchemaObject returns n marked as not required.
func OptionalSchemaObject(n Node) Node {
	out, _ := updateFields(n, func(f contextFields) contextFields { return f.withOptional(true) })
	return out
}

// RequiredSchemaObject returns n marked as required.
func RequiredSchemaObject(n Node) Node {
	out, _ := updateFields(n, func(f contextFields) contextFields { return f.withOptional(false) })
	return out
}

// NullableSchemaObject returns n marked as accepting null.
func NullableSchemaObject(n Node) Node {
	out, _ := updateFields(n, contextFields.withNullable)
	return out
}

// DeprecatedSchemaObject returns n marked as deprecated.
func DeprecatedSchemaObject(n Node) Node {
	out, _ := updateFields(n, contextFields.withDeprecated)
	return out
}

// WithDescription returns n with the given description.
func WithDescription(n Node, description string) Node {
	out, _ := updateFields(n, func(f contextFields) contextFields { return f.withDescription(description) })
	return out
}

// WithAllowedValues returns n restricted to values (the enum keyword). Each
// value is converted with jsonvalue.From; the first failure is returned as an
// *oaserrors.EncodingError and no node is produced. Calling it with no values
// yields an empty enum.
func WithAllowedValues(n Node, values ...any) (Node, error) {
	if !IsLeaf(n) {
		return n, nil
	}
	converted, err := jsonvalue.FromSlice(values)
	if err != nil {
		return nil, err
	}
	out, _ := updateFields(n, func(f contextFields) contextFields { return f.withAllowedValues(converted) })
	return out, nil
}

// WithExample returns n carrying v as its example. v is coerced with
// jsonvalue.Coerce using enc (nil means jsonvalue.DefaultEncoder). On failure
// the *oaserrors.CoercionError is returned and n is left as it was.
func WithExample(n Node, v any, enc jsonvalue.Encoder) (Node, error) {
	if !IsLeaf(n) {
		return n, nil
	}
	example, err := jsonvalue.Coerce(v, enc)
	if err != nil {
		return nil, err
	}
	out, _ := updateFields(n, func(f contextFields) contextFields { return f.withExample(example) })
	return out, nil
}
