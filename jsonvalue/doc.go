// Package jsonvalue provides an immutable, type-erased JSON value.
//
// A [Value] holds any JSON document: null, a boolean, a number, a string, an
// array of values or an object. Objects keep their keys in insertion order so
// that encoded output is stable across runs, which matters for diff-friendly
// OpenAPI documents.
//
// Values are built from plain Go data with [From], from JSON bytes with
// [Parse], or field by field with an [ObjectBuilder]:
//
//	b := jsonvalue.NewObjectBuilder()
//	b.Set("type", jsonvalue.String("string"))
//	b.Set("format", jsonvalue.String("date-time"))
//	v := b.Build() // {"type":"string","format":"date-time"}
//
// [Coerce] turns an arbitrary typed value into a Value by round-tripping it
// through a byte [Encoder]; this is how example payloads are attached to
// schemas. A Value that is already a Value is used as-is.
//
// Values marshal to JSON via [Value.MarshalJSON] and to YAML via
// [Value.MarshalYAML], both preserving object key order.
package jsonvalue
