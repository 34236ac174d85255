package components

import (
	"encoding"
	"encoding/json"
	"reflect"
	"time"

	"github.com/erraggy/oasschema/oaserrors"
	"github.com/erraggy/oasschema/schema"
)

var (
	timeType          = reflect.TypeFor[time.Time]()
	rawMessageType    = reflect.TypeFor[json.RawMessage]()
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// SchemaFor derives a schema from the Go type of v, following encoding/json
// conventions.
//
//   - Named struct types are registered in the table under their type name
//     and a reference to them is returned. Recursive types become
//     references to themselves.
//   - Anonymous structs are inlined as object schemas.
//   - Pointers are nullable, and pointer fields are optional.
//   - Fields tagged omitempty or omitzero are optional; json:"-" fields are
//     skipped; the oas tag adds constraints (see below).
//   - Slices and arrays become array schemas; maps become object schemas
//     whose additionalProperties describe the values.
//   - time.Time is a date-time string, uuid.UUID a uuid string and []byte a
//     byte (base64) string. Other encoding.TextMarshaler types are strings.
//
// The oas struct tag accepts comma-separated options: title, description,
// format, enum (pipe-separated), default, example, readOnly, writeOnly,
// nullable, deprecated, required, minimum, maximum, exclusiveMinimum,
// exclusiveMaximum, multipleOf, minLength, maxLength, pattern, minItems,
// maxItems, uniqueItems, minProperties and maxProperties. pattern takes the
// rest of the tag, commas included, so it must be the last option.
//
//	type Pet struct {
//	    ID   int64  `json:"id" oas:"readOnly"`
//	    Name string `json:"name" oas:"minLength=1,description=Pet name"`
//	    Tag  string `json:"tag,omitempty"`
//	}
//
// Types with no JSON schema (channels, functions, complex numbers, interface
// types, maps with unsupported keys) return an *oaserrors.EncodingError
// naming the field path.
func (t *Table) SchemaFor(v any) (schema.Node, error) {
	if v == nil {
		return nil, &oaserrors.ConfigError{Option: "value", Message: "cannot derive a schema from nil"}
	}
	return t.SchemaForType(reflect.TypeOf(v))
}

// SchemaForType is like SchemaFor but takes a reflect.Type.
func (t *Table) SchemaForType(rt reflect.Type) (schema.Node, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.schemaFromType(rt, "")
}

func (t *Table) schemaFromType(rt reflect.Type, path string) (schema.Node, error) {
	nullable := false
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
		nullable = true
	}

	n, err := t.schemaFromValueType(rt, path)
	if err != nil {
		return nil, err
	}
	if nullable {
		n = schema.NullableSchemaObject(n)
	}
	return n, nil
}

func (t *Table) schemaFromValueType(rt reflect.Type, path string) (schema.Node, error) {
	if n, ok := specialTypeSchema(rt); ok {
		return n, nil
	}
	if rt == rawMessageType {
		return nil, unsupportedType(rt, path, "raw JSON has no fixed schema")
	}

	switch rt.Kind() {
	case reflect.Struct:
		if rt.Name() == "" {
			return t.structSchema(rt, path)
		}
		return t.namedStructSchema(rt, path)

	case reflect.Slice, reflect.Array:
		items, err := t.schemaFromType(rt.Elem(), path+"[]")
		if err != nil {
			return nil, err
		}
		ac := schema.NewArrayContext(items)
		if rt.Kind() == reflect.Array {
			ac = ac.WithMinItems(rt.Len()).WithMaxItems(rt.Len())
		}
		return schema.Array(schema.Context[schema.ArrayFormat]{}, ac), nil

	case reflect.Map:
		if !validMapKey(rt.Key()) {
			return nil, unsupportedType(rt, path, "map keys must be strings, integers or encoding.TextMarshaler")
		}
		values, err := t.schemaFromType(rt.Elem(), path+"[*]")
		if err != nil {
			return nil, err
		}
		oc := schema.ObjectContext{}.WithAdditionalProperties(schema.AdditionalSchema(values))
		return schema.Object(schema.Context[schema.ObjectFormat]{}, oc), nil

	default:
		return primitiveSchema(rt, path)
	}
}

// specialTypeSchema handles types whose JSON form is not derived from their
// structure.
func specialTypeSchema(rt reflect.Type) (schema.Node, bool) {
	switch {
	case rt == timeType:
		return schema.String(schema.NewContext(schema.StringFormatDateTime), schema.StringContext{}), true
	// Matched by name so that no uuid package has to be imported.
	case rt.String() == "uuid.UUID":
		return schema.String(schema.NewContext(schema.StringFormatUUID), schema.StringContext{}), true
	case rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8 && rt != rawMessageType:
		return schema.String(schema.NewContext(schema.StringFormatByte), schema.StringContext{}), true
	}
	ptr := reflect.PointerTo(rt)
	if !ptr.Implements(jsonMarshalerType) && ptr.Implements(textMarshalerType) {
		return schema.String(schema.Context[schema.StringFormat]{}, schema.StringContext{}), true
	}
	return nil, false
}

func primitiveSchema(rt reflect.Type, path string) (schema.Node, error) {
	switch rt.Kind() {
	case reflect.String:
		return schema.String(schema.Context[schema.StringFormat]{}, schema.StringContext{}), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return schema.Integer(schema.NewContext(schema.IntegerFormatInt32), schema.NumericContext{}), nil
	case reflect.Int64, reflect.Uint64:
		return schema.Integer(schema.NewContext(schema.IntegerFormatInt64), schema.NumericContext{}), nil
	case reflect.Float32:
		return schema.Number(schema.NewContext(schema.NumberFormatFloat), schema.NumericContext{}), nil
	case reflect.Float64:
		return schema.Number(schema.NewContext(schema.NumberFormatDouble), schema.NumericContext{}), nil
	case reflect.Bool:
		return schema.Boolean(schema.Context[schema.BooleanFormat]{}), nil
	case reflect.Interface:
		return nil, unsupportedType(rt, path, "interface types have no fixed schema")
	default:
		return nil, unsupportedType(rt, path, "no JSON representation")
	}
}

// namedStructSchema registers a named struct type as a component and returns
// a reference to it.
func (t *Table) namedStructSchema(rt reflect.Type, path string) (schema.Node, error) {
	if name, ok := t.types.nameFor(rt); ok {
		if t.types.inProgress[rt] {
			t.logger.Debug("recursive type", "type", rt.String(), "name", name)
		}
		return schema.Ref(name), nil
	}

	name := t.componentNameFor(rt)
	t.types.reserve(rt, name)
	n, err := t.structSchema(rt, path)
	if err != nil {
		t.types.forget(rt)
		return nil, err
	}
	t.types.done(rt)

	if _, err := t.addLocked(name, n); err != nil {
		t.types.forget(rt)
		return nil, err
	}
	t.logger.Debug("derived schema from type", "type", rt.String(), "name", name)
	return schema.Ref(name), nil
}

// componentNameFor picks the component name for rt, qualifying it with the
// package path when the plain name is taken by another type or by a schema
// added by hand.
func (t *Table) componentNameFor(rt reflect.Type) string {
	name := typeName(rt)
	taken := false
	if other := t.types.typeFor(name); other != nil {
		taken = other != rt
	} else if _, exists := t.schemas[name]; exists {
		taken = true
	}
	if taken {
		qualified := qualifiedTypeName(rt)
		t.logger.Debug("component name conflict", "name", name, "using", qualified)
		return qualified
	}
	return name
}

// structSchema builds an inline object schema from the fields of rt.
func (t *Table) structSchema(rt reflect.Type, path string) (schema.Node, error) {
	oc := schema.NewObjectContext(nil)

	for i := range rt.NumField() {
		field := rt.Field(i)
		embedsStruct := field.Anonymous && derefType(field.Type).Kind() == reflect.Struct
		if !field.IsExported() && !embedsStruct {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name, jsonOpts := parseJSONTag(jsonTag)

		if embedsStruct && name == "" {
			embedded, err := t.embeddedProperties(field, path)
			if err != nil {
				return nil, err
			}
			// Fields of the outer struct win over promoted ones.
			for propName, prop := range embedded {
				if _, exists := oc.Property(propName); !exists {
					oc = oc.WithProperty(propName, prop)
				}
			}
			continue
		}
		if name == "" {
			name = field.Name
		}

		fieldPath := name
		if path != "" {
			fieldPath = path + "." + name
		}
		n, err := t.schemaFromType(field.Type, fieldPath)
		if err != nil {
			return nil, err
		}

		oasOpts := parseOASTag(field.Tag.Get("oas"))
		if n, err = applyTag(n, oasOpts); err != nil {
			return nil, err
		}
		if !isFieldRequired(field, jsonOpts, oasOpts) {
			n = schema.OptionalSchemaObject(n)
		}

		oc = oc.WithProperty(name, n)
	}

	return schema.Object(schema.Context[schema.ObjectFormat]{}, oc), nil
}

// embeddedProperties returns the properties promoted from an embedded
// struct field. The embedded type is inlined, not registered. A type that
// embeds itself, directly or indirectly, contributes nothing the second time.
func (t *Table) embeddedProperties(field reflect.StructField, path string) (map[string]schema.Node, error) {
	rt := derefType(field.Type)
	if t.types.inProgress[rt] {
		return nil, nil
	}
	t.types.enter(rt)
	defer t.types.done(rt)

	n, err := t.structSchema(rt, path)
	if err != nil {
		return nil, err
	}
	obj, ok := n.(schema.ObjectNode)
	if !ok {
		return nil, nil
	}
	return obj.ObjectContext().Properties(), nil
}

func derefType(rt reflect.Type) reflect.Type {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return rt
}

func validMapKey(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return rt.Implements(textMarshalerType) || reflect.PointerTo(rt).Implements(textMarshalerType)
}

func unsupportedType(rt reflect.Type, path, msg string) error {
	return &oaserrors.EncodingError{Path: path, TypeName: rt.String(), Message: msg}
}
