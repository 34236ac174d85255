package schema

import (
	"maps"
	"slices"

	"github.com/erraggy/oasschema/jsonvalue"
)

// AdditionalProperties is either a boolean or a schema for the
// additionalProperties keyword.
type AdditionalProperties struct {
	allowed bool
	schema  Node
}

// AllowAdditional returns a boolean additionalProperties policy.
func AllowAdditional(allowed bool) AdditionalProperties {
	return AdditionalProperties{allowed: allowed}
}

// AdditionalSchema returns an additionalProperties policy that validates
// extra members against n.
func AdditionalSchema(n Node) AdditionalProperties {
	return AdditionalProperties{allowed: true, schema: n}
}

// Schema returns the schema for additional members, if the policy is a schema.
func (a AdditionalProperties) Schema() (Node, bool) {
	return a.schema, a.schema != nil
}

// Allowed reports whether additional members are accepted at all.
func (a AdditionalProperties) Allowed() bool { return a.allowed }

func (a AdditionalProperties) equal(o AdditionalProperties) bool {
	return a.allowed == o.allowed && Equal(a.schema, o.schema)
}

// ObjectContext holds the constraints specific to object schemas.
// The zero ObjectContext has no properties and no constraints.
type ObjectContext struct {
	properties           map[string]Node
	additionalProperties *AdditionalProperties
	minProperties        int
	maxProperties        *int
}

// NewObjectContext returns an ObjectContext with the given properties.
// The map is copied.
func NewObjectContext(properties map[string]Node) ObjectContext {
	return ObjectContext{properties: maps.Clone(properties)}
}

// Properties returns a copy of the property map.
func (o ObjectContext) Properties() map[string]Node {
	return maps.Clone(o.properties)
}

// Property returns the schema of a single property.
func (o ObjectContext) Property(name string) (Node, bool) {
	n, ok := o.properties[name]
	return n, ok
}

// PropertyNames returns the property names in sorted order.
func (o ObjectContext) PropertyNames() []string {
	return slices.Sorted(maps.Keys(o.properties))
}

// RequiredProperties returns, sorted, the names of properties whose schema
// is required.
func (o ObjectContext) RequiredProperties() []string {
	var names []string
	for _, name := range o.PropertyNames() {
		if IsRequired(o.properties[name]) {
			names = append(names, name)
		}
	}
	return names
}

// OptionalProperties returns, sorted, the names of properties whose schema
// is optional.
func (o ObjectContext) OptionalProperties() []string {
	var names []string
	for _, name := range o.PropertyNames() {
		if !IsRequired(o.properties[name]) {
			names = append(names, name)
		}
	}
	return names
}

// AdditionalProperties returns the additionalProperties policy, if set.
func (o ObjectContext) AdditionalProperties() (AdditionalProperties, bool) {
	if o.additionalProperties == nil {
		return AdditionalProperties{}, false
	}
	return *o.additionalProperties, true
}

// MinProperties returns the minimum member count (0 when unset).
func (o ObjectContext) MinProperties() int { return o.minProperties }

// MaxProperties returns the maximum member count, if set.
func (o ObjectContext) MaxProperties() (int, bool) { return derefInt(o.maxProperties) }

// WithProperty returns a copy with name set to n.
func (o ObjectContext) WithProperty(name string, n Node) ObjectContext {
	props := maps.Clone(o.properties)
	if props == nil {
		props = make(map[string]Node, 1)
	}
	props[name] = n
	o.properties = props
	return o
}

// WithAdditionalProperties returns a copy with the given policy.
func (o ObjectContext) WithAdditionalProperties(a AdditionalProperties) ObjectContext {
	o.additionalProperties = &a
	return o
}

// WithMinProperties returns a copy with the given minimum member count.
func (o ObjectContext) WithMinProperties(n int) ObjectContext {
	o.minProperties = n
	return o
}

// WithMaxProperties returns a copy with the given maximum member count.
func (o ObjectContext) WithMaxProperties(n int) ObjectContext {
	o.maxProperties = &n
	return o
}

// Equal reports whether both contexts hold the same constraints.
func (o ObjectContext) Equal(other ObjectContext) bool {
	if o.minProperties != other.minProperties ||
		!intPtrEqual(o.maxProperties, other.maxProperties) {
		return false
	}
	if (o.additionalProperties == nil) != (other.additionalProperties == nil) {
		return false
	}
	if o.additionalProperties != nil && !o.additionalProperties.equal(*other.additionalProperties) {
		return false
	}
	return maps.EqualFunc(o.properties, other.properties, Equal)
}

// encodeFields writes properties, additionalProperties, required,
// minProperties and maxProperties. Properties are written in sorted order.
func (o ObjectContext) encodeFields(b *jsonvalue.ObjectBuilder, cfg *encodeConfig) {
	if len(o.properties) > 0 {
		props := jsonvalue.NewObjectBuilder()
		for _, name := range o.PropertyNames() {
			props.Set(name, encodeNode(o.properties[name], cfg))
		}
		b.Set("properties", props.Build())
	}
	if ap := o.additionalProperties; ap != nil {
		if ap.schema != nil {
			b.Set("additionalProperties", encodeNode(ap.schema, cfg))
		} else {
			b.Set("additionalProperties", jsonvalue.Bool(ap.allowed))
		}
	}
	if required := o.RequiredProperties(); len(required) > 0 {
		names := make([]jsonvalue.Value, len(required))
		for i, name := range required {
			names[i] = jsonvalue.String(name)
		}
		b.Set("required", jsonvalue.Array(names...))
	}
	if o.minProperties > 0 {
		b.Set("minProperties", jsonvalue.Int(int64(o.minProperties)))
	}
	if o.maxProperties != nil {
		b.Set("maxProperties", jsonvalue.Int(int64(*o.maxProperties)))
	}
}

func derefInt(p *int) (int, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
