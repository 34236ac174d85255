// Package oasschema provides typed, immutable models of OpenAPI schema objects
// and the tooling to build, transform and serialize them.
//
// # Overview
//
// The library consists of four packages:
//
//   - schema: The schema node model, its transformations and its encoder
//   - components: A registry of named schemas (components.schemas) with
//     reference resolution and schema derivation from Go types
//   - jsonvalue: A generic, ordered JSON value used for enums, defaults and
//     examples, and as the encoder's output
//   - oaserrors: Structured error types shared by all packages
//
// Encoded schemas follow the OpenAPI Specification:
//   - OAS 3.0.x (3.0.0 - 3.0.4): https://spec.openapis.org/oas/v3.0.0.html
//   - OAS 3.1.x (3.1.0 - 3.1.2): https://spec.openapis.org/oas/v3.1.0.html
//
// # Installation
//
//	go get github.com/erraggy/oasschema
//
// # Quick Start
//
// Build a schema by hand:
//
//	import "github.com/erraggy/oasschema/schema"
//
//	name := schema.String(
//		schema.NewContext(schema.StringFormatGeneric, schema.Description("Pet name")),
//		schema.StringContext{}.WithMinLength(1),
//	)
//	pet := schema.Object(
//		schema.Context[schema.ObjectFormat]{},
//		schema.NewObjectContext(map[string]schema.Node{
//			"name": name,
//			"tag":  schema.OptionalSchemaObject(schema.String(schema.Context[schema.StringFormat]{}, schema.StringContext{})),
//		}),
//	)
//	data, err := schema.MarshalJSON(pet)
//	// {"type":"object","properties":{"name":{...},"tag":{...}},"required":["name"]}
//
// Derive one from a Go type and register it as a component:
//
//	import "github.com/erraggy/oasschema/components"
//
//	table := components.New()
//	ref, err := table.SchemaFor(Pet{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	// ref encodes as {"$ref": "#/components/schemas/Pet"}
//	doc, err := table.MarshalJSON()
//
// # Immutability
//
// Every node, context and value is immutable. Transformations such as
// [schema.NullableSchemaObject] and [schema.WithExample] return copies, so
// nodes can be shared freely between documents and goroutines.
//
// # Error Handling
//
// Errors are typed and wrap the sentinels in oaserrors, so both styles work:
//
//	if errors.Is(err, oaserrors.ErrCoercion) { ... }
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) && refErr.IsCircular { ... }
//
// # Version Compatibility
//
// OpenAPI 3.0 and 3.1 spell nullability and exclusive bounds differently. The
// encoder defaults to 3.0; pass [schema.ForVersion] to pick the spelling of a
// target document:
//
//	schema.MarshalJSON(n, schema.ForVersion("3.1.0"))
package oasschema
