package components

import (
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/oasschema/jsonvalue"
	"github.com/erraggy/oasschema/oaserrors"
	"github.com/erraggy/oasschema/schema"
)

// parseJSONTag splits a json struct tag into the member name and its options.
func parseJSONTag(tag string) (name string, opts []string) {
	if tag == "" {
		return "", nil
	}
	parts := strings.Split(tag, ",")
	return parts[0], parts[1:]
}

// isFieldRequired decides whether a struct field is listed as required.
//  1. oas:"required=true" or oas:"required=false" wins
//  2. pointer fields are optional
//  3. fields with omitempty or omitzero are optional
//  4. everything else is required
func isFieldRequired(field reflect.StructField, jsonOpts []string, oasOpts map[string]string) bool {
	if val, ok := oasOpts["required"]; ok {
		return val == "true"
	}
	if field.Type.Kind() == reflect.Pointer {
		return false
	}
	return !slices.Contains(jsonOpts, "omitempty") && !slices.Contains(jsonOpts, "omitzero")
}

// parseOASTag parses an oas struct tag into key-value pairs:
//
//	oas:"description=User ID,minLength=1,deprecated"
//
// A key without "=" is a boolean flag set to "true". Regular expressions may
// contain commas, so pattern takes the rest of the tag and must come last.
func parseOASTag(tag string) map[string]string {
	result := make(map[string]string)
	parts := strings.Split(tag, ",")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		switch {
		case !ok || key == "":
			result[part] = "true"
		case key == "pattern":
			rest := append([]string{value}, parts[i+1:]...)
			result[key] = strings.TrimSpace(strings.Join(rest, ","))
			return result
		default:
			result[key] = strings.TrimSpace(value)
		}
	}
	return result
}

// applyTag applies oas tag options to a leaf node. Options that do not apply
// to the node's kind are ignored, as is every option on a composite or
// reference node.
func applyTag(n schema.Node, opts map[string]string) (schema.Node, error) {
	if len(opts) == 0 {
		return n, nil
	}
	switch n := n.(type) {
	case schema.BooleanNode:
		ctx, err := applyContextTags(n.Context(), opts)
		if err != nil {
			return nil, err
		}
		return schema.Boolean(ctx), nil
	case schema.ObjectNode:
		ctx, err := applyContextTags(n.Context(), opts)
		if err != nil {
			return nil, err
		}
		oc := n.ObjectContext()
		if v, ok, err := intOption(opts, "minProperties"); err != nil {
			return nil, err
		} else if ok {
			oc = oc.WithMinProperties(v)
		}
		if v, ok, err := intOption(opts, "maxProperties"); err != nil {
			return nil, err
		} else if ok {
			oc = oc.WithMaxProperties(v)
		}
		return schema.Object(ctx, oc), nil
	case schema.ArrayNode:
		ctx, err := applyContextTags(n.Context(), opts)
		if err != nil {
			return nil, err
		}
		ac := n.ArrayContext()
		if v, ok, err := intOption(opts, "minItems"); err != nil {
			return nil, err
		} else if ok {
			ac = ac.WithMinItems(v)
		}
		if v, ok, err := intOption(opts, "maxItems"); err != nil {
			return nil, err
		} else if ok {
			ac = ac.WithMaxItems(v)
		}
		if opts["uniqueItems"] == "true" {
			ac = ac.WithUniqueItems(true)
		}
		return schema.Array(ctx, ac), nil
	case schema.NumberNode:
		ctx, err := applyContextTags(n.Context(), opts)
		if err != nil {
			return nil, err
		}
		nc, err := applyNumericTags(n.NumericContext(), opts)
		if err != nil {
			return nil, err
		}
		return schema.Number(ctx, nc), nil
	case schema.IntegerNode:
		ctx, err := applyContextTags(n.Context(), opts)
		if err != nil {
			return nil, err
		}
		nc, err := applyNumericTags(n.NumericContext(), opts)
		if err != nil {
			return nil, err
		}
		return schema.Integer(ctx, nc), nil
	case schema.StringNode:
		ctx, err := applyContextTags(n.Context(), opts)
		if err != nil {
			return nil, err
		}
		sc := n.StringContext()
		if v, ok, err := intOption(opts, "minLength"); err != nil {
			return nil, err
		} else if ok {
			sc = sc.WithMinLength(v)
		}
		if v, ok, err := intOption(opts, "maxLength"); err != nil {
			return nil, err
		} else if ok {
			sc = sc.WithMaxLength(v)
		}
		if v, ok := opts["pattern"]; ok {
			sc = sc.WithPattern(v)
		}
		return schema.String(ctx, sc), nil
	case schema.AllOfNode, schema.OneOfNode, schema.AnyOfNode, schema.NotNode, schema.ReferenceNode:
	}
	return n, nil
}

// applyContextTags applies the options of the shared vocabulary. Keys are
// processed in sorted order so errors are deterministic.
func applyContextTags[F schema.Format](ctx schema.Context[F], opts map[string]string) (schema.Context[F], error) {
	typ := ctx.Format().JSONType()
	for _, key := range slices.Sorted(maps.Keys(opts)) {
		value := opts[key]
		switch key {
		case "title":
			ctx = ctx.WithTitle(value)
		case "description":
			ctx = ctx.WithDescription(value)
		case "format":
			ctx = ctx.WithFormat(F(value))
		case "readOnly":
			if value == "true" {
				ctx = ctx.WithPermissions(schema.PermissionReadOnly)
			}
		case "writeOnly":
			if value == "true" {
				ctx = ctx.WithPermissions(schema.PermissionWriteOnly)
			}
		case "nullable":
			if value == "true" {
				ctx = ctx.NullableContext()
			}
		case "deprecated":
			if value == "true" {
				ctx = ctx.DeprecatedContext()
			}
		case "default":
			ctx = ctx.WithDefault(tagValue(value, typ))
		case "example":
			var err error
			if ctx, err = ctx.WithExample(tagValue(value, typ), nil); err != nil {
				return ctx, err
			}
		case "enum":
			parts := strings.Split(value, "|")
			values := make([]jsonvalue.Value, len(parts))
			for i, part := range parts {
				values[i] = tagValue(strings.TrimSpace(part), typ)
			}
			ctx = ctx.WithAllowedValues(values)
		}
	}
	return ctx, nil
}

func applyNumericTags(nc schema.NumericContext, opts map[string]string) (schema.NumericContext, error) {
	if v, ok, err := floatOption(opts, "minimum"); err != nil {
		return nc, err
	} else if ok {
		nc = nc.WithMinimum(v, false)
	}
	if v, ok, err := floatOption(opts, "exclusiveMinimum"); err != nil {
		return nc, err
	} else if ok {
		nc = nc.WithMinimum(v, true)
	}
	if v, ok, err := floatOption(opts, "maximum"); err != nil {
		return nc, err
	} else if ok {
		nc = nc.WithMaximum(v, false)
	}
	if v, ok, err := floatOption(opts, "exclusiveMaximum"); err != nil {
		return nc, err
	} else if ok {
		nc = nc.WithMaximum(v, true)
	}
	if v, ok, err := floatOption(opts, "multipleOf"); err != nil {
		return nc, err
	} else if ok {
		nc = nc.WithMultipleOf(v)
	}
	return nc, nil
}

// tagValue interprets a tag string as a JSON value of the given schema type.
// Values that do not parse as that type are kept as strings.
func tagValue(value string, typ schema.Type) jsonvalue.Value {
	switch typ {
	case schema.TypeInteger:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return jsonvalue.Int(n)
		}
	case schema.TypeNumber:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			if v, err := jsonvalue.From(f); err == nil {
				return v
			}
		}
	case schema.TypeBoolean:
		if b, err := strconv.ParseBool(value); err == nil {
			return jsonvalue.Bool(b)
		}
	case schema.TypeObject, schema.TypeArray:
		if v, err := jsonvalue.Parse([]byte(value)); err == nil {
			return v
		}
	case schema.TypeString:
	}
	return jsonvalue.String(value)
}

func intOption(opts map[string]string, key string) (int, bool, error) {
	value, ok := opts[key]
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, &oaserrors.ConfigError{Option: "oas tag " + key, Value: value, Message: "expected an integer", Cause: err}
	}
	return n, true, nil
}

func floatOption(opts map[string]string, key string) (float64, bool, error) {
	value, ok := opts[key]
	if !ok {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, &oaserrors.ConfigError{Option: "oas tag " + key, Value: value, Message: "expected a finite number", Cause: err}
	}
	return f, true, nil
}
