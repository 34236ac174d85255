// Package schema models OpenAPI / JSON Schema schema objects as typed,
// immutable Go values.
//
// # Nodes
//
// A [Node] is exactly one of eleven variants. Six are leaves describing a
// primitive JSON type:
//
//   - [BooleanNode]
//   - [ObjectNode], with an [ObjectContext]
//   - [ArrayNode], with an [ArrayContext]
//   - [NumberNode] and [IntegerNode], with a [NumericContext]
//   - [StringNode], with a [StringContext]
//
// Every leaf carries a shared [Context] parameterized by its format
// enumeration, so a string schema can only ever hold a [StringFormat].
// The remaining variants are [AllOfNode], [OneOfNode], [AnyOfNode], [NotNode]
// and [ReferenceNode]; they have no Context of their own.
//
// # Transformations
//
// Functions such as [OptionalSchemaObject], [NullableSchemaObject] and
// [WithExample] return a modified copy of a leaf. Applied to a composite or
// reference node they return it unchanged: such nodes are always required,
// never nullable and carry no enum or example.
//
//	id := schema.String(schema.NewContext(schema.StringFormatUUID), schema.StringContext{})
//	maybeID := schema.OptionalSchemaObject(id)
//	schema.IsRequired(id)      // true
//	schema.IsRequired(maybeID) // false
//
// # Encoding
//
// [Encode] renders a node as a [jsonvalue.Value] in OpenAPI document shape.
// Whether a schema is required is not written by the schema itself; it shows
// up in the "required" list of the enclosing object. [MarshalJSON] and
// [MarshalYAML] serialize the encoded form. [EncodeOption] values select
// between OpenAPI 3.0 and 3.1 spellings of nullability and exclusive bounds.
package schema
