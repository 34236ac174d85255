package schema

import (
	"slices"

	"github.com/erraggy/oasschema/jsonvalue"
)

// Permissions controls the readOnly / writeOnly keywords.
type Permissions uint8

const (
	// PermissionReadWrite emits neither keyword.
	PermissionReadWrite Permissions = iota
	// PermissionReadOnly emits readOnly: true.
	PermissionReadOnly
	// PermissionWriteOnly emits writeOnly: true.
	PermissionWriteOnly
)

// ExternalDocs points at documentation outside the API description.
type ExternalDocs struct {
	URL         string
	Description string
}

// contextFields holds everything a Context carries apart from its format.
// It is copied by value; slices and pointers are never written through, only
// replaced.
type contextFields struct {
	optional      bool // zero value means required
	nullable      bool
	permissions   Permissions
	deprecated    bool
	title         string
	description   string
	allowedValues []jsonvalue.Value // nil means unrestricted
	defaultValue  *jsonvalue.Value
	example       *jsonvalue.Value
	externalDocs  *ExternalDocs
}

// Context is the metadata shared by every primitive schema kind: format,
// optionality, nullability, allowed values, example, and descriptive fields.
//
// A Context is immutable. Every With/…Context method returns a modified copy
// and leaves the receiver, and every node built from it, untouched. The zero
// Context is required, non-nullable, generic-format and unrestricted.
type Context[F Format] struct {
	format F
	fields contextFields
}

// ContextOption configures a Context built by NewContext.
type ContextOption func(*contextFields)

// NewContext returns a Context with the given format and options.
//
//	ctx := schema.NewContext(schema.StringFormatDateTime, schema.Description("creation time"))
func NewContext[F Format](format F, opts ...ContextOption) Context[F] {
	c := Context[F]{format: format}
	for _, opt := range opts {
		opt(&c.fields)
	}
	return c
}

// Optional marks the context as not required.
func Optional() ContextOption {
	return func(f *contextFields) { f.optional = true }
}

// Nullable marks the context as accepting null.
func Nullable() ContextOption {
	return func(f *contextFields) { f.nullable = true }
}

// Deprecated marks the context as deprecated.
func Deprecated() ContextOption {
	return func(f *contextFields) { f.deprecated = true }
}

// ReadOnly sets readOnly permissions.
func ReadOnly() ContextOption {
	return func(f *contextFields) { f.permissions = PermissionReadOnly }
}

// WriteOnly sets writeOnly permissions.
func WriteOnly() ContextOption {
	return func(f *contextFields) { f.permissions = PermissionWriteOnly }
}

// Title sets the title.
func Title(title string) ContextOption {
	return func(f *contextFields) { f.title = title }
}

// Description sets the description.
func Description(description string) ContextOption {
	return func(f *contextFields) { f.description = description }
}

// AllowedValues restricts the context to the given values (the enum keyword).
func AllowedValues(values ...jsonvalue.Value) ContextOption {
	return func(f *contextFields) { f.allowedValues = slices.Clone(values) }
}

// Default sets the default value.
func Default(v jsonvalue.Value) ContextOption {
	return func(f *contextFields) { f.defaultValue = &v }
}

// Example sets the example value.
func Example(v jsonvalue.Value) ContextOption {
	return func(f *contextFields) { f.example = &v }
}

// ExternalDocumentation links external documentation.
func ExternalDocumentation(url, description string) ContextOption {
	return func(f *contextFields) {
		f.externalDocs = &ExternalDocs{URL: url, Description: description}
	}
}

// Format returns the format.
func (c Context[F]) Format() F { return c.format }

// Required reports whether a value described by this context must be present.
func (c Context[F]) Required() bool { return !c.fields.optional }

// Nullable reports whether null is an accepted value.
func (c Context[F]) Nullable() bool { return c.fields.nullable }

// Permissions returns the read/write permissions.
func (c Context[F]) Permissions() Permissions { return c.fields.permissions }

// Deprecated reports whether the schema is deprecated.
func (c Context[F]) Deprecated() bool { return c.fields.deprecated }

// Title returns the title.
func (c Context[F]) Title() string { return c.fields.title }

// Description returns the description.
func (c Context[F]) Description() string { return c.fields.description }

// AllowedValues returns a copy of the allowed values, or nil if unrestricted.
func (c Context[F]) AllowedValues() []jsonvalue.Value {
	return slices.Clone(c.fields.allowedValues)
}

// Default returns the default value, if any.
func (c Context[F]) Default() (jsonvalue.Value, bool) {
	return deref(c.fields.defaultValue)
}

// Example returns the example value, if any.
func (c Context[F]) Example() (jsonvalue.Value, bool) {
	return deref(c.fields.example)
}

// ExternalDocs returns the external documentation link, if any.
func (c Context[F]) ExternalDocs() (ExternalDocs, bool) {
	if c.fields.externalDocs == nil {
		return ExternalDocs{}, false
	}
	return *c.fields.externalDocs, true
}

// OptionalContext returns a copy that is not required.
func (c Context[F]) OptionalContext() Context[F] {
	c.fields = c.fields.withOptional(true)
	return c
}

// RequiredContext returns a copy that is required.
func (c Context[F]) RequiredContext() Context[F] {
	c.fields = c.fields.withOptional(false)
	return c
}

// NullableContext returns a copy that accepts null.
func (c Context[F]) NullableContext() Context[F] {
	c.fields = c.fields.withNullable()
	return c
}

// DeprecatedContext returns a copy marked deprecated.
func (c Context[F]) DeprecatedContext() Context[F] {
	c.fields = c.fields.withDeprecated()
	return c
}

// WithAllowedValues returns a copy restricted to values. A nil slice removes
// the restriction.
func (c Context[F]) WithAllowedValues(values []jsonvalue.Value) Context[F] {
	c.fields = c.fields.withAllowedValues(values)
	return c
}

// WithExample returns a copy carrying v as its example. v is coerced with
// jsonvalue.Coerce using enc (nil means jsonvalue.DefaultEncoder). On failure
// the zero Context and an *oaserrors.CoercionError are returned.
func (c Context[F]) WithExample(v any, enc jsonvalue.Encoder) (Context[F], error) {
	example, err := jsonvalue.Coerce(v, enc)
	if err != nil {
		return Context[F]{}, err
	}
	c.fields = c.fields.withExample(example)
	return c, nil
}

// WithDefault returns a copy with the given default value.
func (c Context[F]) WithDefault(v jsonvalue.Value) Context[F] {
	c.fields.defaultValue = &v
	return c
}

// WithTitle returns a copy with the given title.
func (c Context[F]) WithTitle(title string) Context[F] {
	c.fields.title = title
	return c
}

// WithDescription returns a copy with the given description.
func (c Context[F]) WithDescription(description string) Context[F] {
	c.fields = c.fields.withDescription(description)
	return c
}

// WithPermissions returns a copy with the given read/write permissions.
func (c Context[F]) WithPermissions(p Permissions) Context[F] {
	c.fields.permissions = p
	return c
}

// WithFormat returns a copy with a different format of the same kind.
func (c Context[F]) WithFormat(format F) Context[F] {
	c.format = format
	return c
}

// Equal reports whether both contexts hold the same values.
func (c Context[F]) Equal(other Context[F]) bool {
	return c.format == other.format && c.fields.equal(other.fields)
}

func (f contextFields) withOptional(optional bool) contextFields {
	f.optional = optional
	return f
}

func (f contextFields) withNullable() contextFields {
	f.nullable = true
	return f
}

func (f contextFields) withDeprecated() contextFields {
	f.deprecated = true
	return f
}

func (f contextFields) withAllowedValues(values []jsonvalue.Value) contextFields {
	f.allowedValues = slices.Clone(values)
	return f
}

func (f contextFields) withExample(v jsonvalue.Value) contextFields {
	f.example = &v
	return f
}

func (f contextFields) withDescription(description string) contextFields {
	f.description = description
	return f
}

func (f contextFields) equal(o contextFields) bool {
	if f.optional != o.optional ||
		f.nullable != o.nullable ||
		f.permissions != o.permissions ||
		f.deprecated != o.deprecated ||
		f.title != o.title ||
		f.description != o.description {
		return false
	}
	if (f.allowedValues == nil) != (o.allowedValues == nil) ||
		!slices.EqualFunc(f.allowedValues, o.allowedValues, jsonvalue.Value.Equal) {
		return false
	}
	if !optionalValueEqual(f.defaultValue, o.defaultValue) ||
		!optionalValueEqual(f.example, o.example) {
		return false
	}
	if (f.externalDocs == nil) != (o.externalDocs == nil) {
		return false
	}
	return f.externalDocs == nil || *f.externalDocs == *o.externalDocs
}

func optionalValueEqual(a, b *jsonvalue.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func deref(v *jsonvalue.Value) (jsonvalue.Value, bool) {
	if v == nil {
		return jsonvalue.Value{}, false
	}
	return *v, true
}

// encodeFields writes the shared vocabulary into b: type, format, title,
// description, nullable, readOnly, writeOnly, deprecated, enum, default,
// example and externalDocs. Required-ness is not written here; it surfaces in
// the enclosing object's required list.
func (c Context[F]) encodeFields(b *jsonvalue.ObjectBuilder, cfg *encodeConfig) {
	f := c.fields
	typ := jsonvalue.String(string(c.format.JSONType()))
	if f.nullable && cfg.nullableStyle == NullableTypeArray {
		b.Set("type", jsonvalue.Array(typ, jsonvalue.String("null")))
	} else {
		b.Set("type", typ)
	}
	if c.format != "" {
		b.Set("format", jsonvalue.String(string(c.format)))
	}
	if f.title != "" {
		b.Set("title", jsonvalue.String(f.title))
	}
	if f.description != "" {
		b.Set("description", jsonvalue.String(f.description))
	}
	if f.nullable && cfg.nullableStyle == NullableKeyword {
		b.Set("nullable", jsonvalue.Bool(true))
	}
	switch f.permissions {
	case PermissionReadOnly:
		b.Set("readOnly", jsonvalue.Bool(true))
	case PermissionWriteOnly:
		b.Set("writeOnly", jsonvalue.Bool(true))
	}
	if f.deprecated {
		b.Set("deprecated", jsonvalue.Bool(true))
	}
	if f.allowedValues != nil {
		b.Set("enum", jsonvalue.Array(f.allowedValues...))
	}
	if f.defaultValue != nil {
		b.Set("default", *f.defaultValue)
	}
	if f.example != nil {
		b.Set("example", *f.example)
	}
	if f.externalDocs != nil {
		docs := jsonvalue.NewObjectBuilder()
		if f.externalDocs.Description != "" {
			docs.Set("description", jsonvalue.String(f.externalDocs.Description))
		}
		docs.Set("url", jsonvalue.String(f.externalDocs.URL))
		b.Set("externalDocs", docs.Build())
	}
}
