// Package components manages the components.schemas section of an OpenAPI
// document: the named schemas that [schema.ReferenceNode] values point at.
//
// # Registering and resolving
//
//	table := components.New(components.WithLogger(components.NewSlogAdapter(nil)))
//	ref, err := table.Add("Widget", widget)
//	if err != nil {
//	    return err
//	}
//	n, err := table.Resolve(ref) // the widget schema
//
// Component names must match ^[a-zA-Z0-9._-]+$. [ComponentName] derives a
// valid name from a free-form title.
//
// [Table.Resolve] looks up a single reference. [Table.ResolveDeep] follows a
// chain of references and reports loops as an [oaserrors.ReferenceError] with
// IsCircular set. [Table.Validate] checks every reference in the table.
//
// # Deriving schemas from Go types
//
// [Table.SchemaFor] reflects over a Go value's type. Named structs are
// registered as components and referenced, so recursive types work:
//
//	type Category struct {
//	    Name   string    `json:"name"`
//	    Parent *Category `json:"parent,omitempty"`
//	}
//	ref, err := table.SchemaFor(Category{}) // {"$ref": "#/components/schemas/Category"}
//
// # Encoding
//
// [Table.Encode] renders {"schemas": {...}} with names in sorted order, so
// output is stable across runs. Table implements json.Marshaler and
// yaml.Marshaler with the default encode options.
//
// # Concurrency
//
// A Table is safe for concurrent use. Schemas themselves are immutable.
package components
