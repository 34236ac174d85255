package jsonvalue

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/erraggy/oasschema/oaserrors"
)

// From converts plain Go data into a Value.
//
// Supported inputs are nil, Value, *Value, booleans, every integer and float
// width, Number, json.Number, strings, slices and arrays of supported values,
// and maps with string keys (members are emitted in sorted key order). Structs
// and types implementing json.Marshaler or encoding.TextMarshaler are routed
// through DefaultEncoder.
//
// Values with no JSON representation (channels, functions, complex numbers,
// NaN or infinite floats, maps with non-string keys) return an
// *oaserrors.EncodingError naming where in the input the problem was found.
func From(v any) (Value, error) {
	return fromAny(v, "")
}

// MustFrom is like From but panics on error. It is intended for literals in
// tests and package-level fixtures.
func MustFrom(v any) Value {
	out, err := From(v)
	if err != nil {
		panic(err)
	}
	return out
}

// FromSlice converts each element with From, preserving order.
func FromSlice(vs []any) ([]Value, error) {
	out := make([]Value, 0, len(vs))
	for i, v := range vs {
		conv, err := fromAny(v, indexPath("", i))
		if err != nil {
			return nil, err
		}
		out = append(out, conv)
	}
	return out, nil
}

//nolint:cyclop // one case per supported Go type
func fromAny(v any, path string) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case *Value:
		if x == nil {
			return Null(), nil
		}
		return *x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case Number:
		return NumberLiteral(x), nil
	case json.Number:
		return NumberLiteral(Number(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case float32:
		return fromFloat(float64(x), 32, path)
	case float64:
		return fromFloat(x, 64, path)
	case []any:
		items := make([]Value, 0, len(x))
		for i, item := range x {
			conv, err := fromAny(item, indexPath(path, i))
			if err != nil {
				return Value{}, err
			}
			items = append(items, conv)
		}
		return Value{kind: KindArray, arr: items}, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		b := NewObjectBuilder()
		for _, k := range keys {
			conv, err := fromAny(x[k], keyPath(path, k))
			if err != nil {
				return Value{}, err
			}
			b.Set(k, conv)
		}
		return b.Build(), nil
	case json.Marshaler, encoding.TextMarshaler:
		return viaEncoder(v, path)
	}
	return fromReflect(reflect.ValueOf(v), path)
}

func fromReflect(rv reflect.Value, path string) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromAny(rv.Elem().Interface(), path)
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint()), nil
	case reflect.Float32:
		return fromFloat(rv.Float(), 32, path)
	case reflect.Float64:
		return fromFloat(rv.Float(), 64, path)
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// []byte encodes as a base64 string
			return viaEncoder(rv.Interface(), path)
		}
		return fromSequence(rv, path)
	case reflect.Array:
		return fromSequence(rv, path)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, &oaserrors.EncodingError{
				Path:     path,
				TypeName: rv.Type().String(),
				Message:  "map keys must be strings",
			}
		}
		if rv.IsNil() {
			return Null(), nil
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			switch {
			case a.String() < b.String():
				return -1
			case a.String() > b.String():
				return 1
			}
			return 0
		})
		b := NewObjectBuilder()
		for _, k := range keys {
			conv, err := fromAny(rv.MapIndex(k).Interface(), keyPath(path, k.String()))
			if err != nil {
				return Value{}, err
			}
			b.Set(k.String(), conv)
		}
		return b.Build(), nil
	case reflect.Struct:
		return viaEncoder(rv.Interface(), path)
	}

	typeName := "<nil>"
	if rv.IsValid() {
		typeName = rv.Type().String()
	}
	return Value{}, &oaserrors.EncodingError{
		Path:     path,
		TypeName: typeName,
		Message:  "type has no JSON representation",
	}
}

func fromSequence(rv reflect.Value, path string) (Value, error) {
	items := make([]Value, 0, rv.Len())
	for i := range rv.Len() {
		conv, err := fromAny(rv.Index(i).Interface(), indexPath(path, i))
		if err != nil {
			return Value{}, err
		}
		items = append(items, conv)
	}
	return Value{kind: KindArray, arr: items}, nil
}

func fromFloat(f float64, bits int, path string) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, &oaserrors.EncodingError{
			Path:     path,
			TypeName: "float" + strconv.Itoa(bits),
			Message:  "unsupported value " + strconv.FormatFloat(f, 'g', -1, bits),
		}
	}
	return Value{kind: KindNumber, s: formatFloat(f, bits)}, nil
}

// viaEncoder handles values whose JSON form is defined by their own
// marshaling logic rather than their Go shape.
func viaEncoder(v any, path string) (Value, error) {
	out, err := Coerce(v, DefaultEncoder)
	if err != nil {
		return Value{}, &oaserrors.EncodingError{
			Path:     path,
			TypeName: fmt.Sprintf("%T", v),
			Message:  "value could not be encoded",
			Cause:    err,
		}
	}
	return out, nil
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func keyPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
