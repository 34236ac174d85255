package jsonvalue

import (
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-json"
)

// Kind identifies which JSON type a Value holds.
type Kind uint8

const (
	// KindNull is JSON null. It is the Kind of the zero Value.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object.
	KindObject
)

// String returns the JSON type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Number is the literal text of a JSON number. Keeping the text rather than
// a float64 preserves integers beyond 2^53.
type Number string

// String returns the literal text.
func (n Number) String() string { return string(n) }

// Int64 returns the number as an int64.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Value is an immutable JSON value. The zero Value is JSON null.
type Value struct {
	kind Kind
	b    bool
	s    string // string contents, or number literal
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a JSON number holding i.
func Int(i int64) Value {
	return Value{kind: KindNumber, s: strconv.FormatInt(i, 10)}
}

// Uint returns a JSON number holding u.
func Uint(u uint64) Value {
	return Value{kind: KindNumber, s: strconv.FormatUint(u, 10)}
}

// Float returns a JSON number holding f. NaN and infinities have no JSON
// form; use From to get an error for them instead of a panic.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("jsonvalue: unsupported float value " + strconv.FormatFloat(f, 'g', -1, 64))
	}
	return Value{kind: KindNumber, s: formatFloat(f, 64)}
}

// NumberLiteral returns a JSON number with the given literal text. The text
// is not validated; it is written verbatim when encoding.
func NumberLiteral(n Number) Value {
	return Value{kind: KindNumber, s: string(n)}
}

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns a JSON array of the given values. The slice is copied.
func Array(vs ...Value) Value {
	return Value{kind: KindArray, arr: slices.Clone(vs)}
}

// ObjectOf returns a JSON object value backed by o. A nil o yields an empty object.
func ObjectOf(o *Object) Value {
	if o == nil {
		o = &Object{}
	}
	return Value{kind: KindObject, obj: o}
}

// Kind reports the JSON type of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and true if v is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the number literal and true if v is a number.
func (v Value) AsNumber() (Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return Number(v.s), true
}

// AsString returns the string and true if v is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Items returns a copy of the array elements, or nil if v is not an array.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return slices.Clone(v.arr)
}

// Len returns the number of array elements or object members, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Object returns the object and true if v is an object.
func (v Value) Object() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Equal reports whether v and other are structurally equal. Object member
// order is ignored; numbers compare by value when their literals differ.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindNumber:
		if v.s == other.s {
			return true
		}
		a, errA := strconv.ParseFloat(v.s, 64)
		b, errB := strconv.ParseFloat(other.s, 64)
		return errA == nil && errB == nil && a == b
	case KindArray:
		return slices.EqualFunc(v.arr, other.arr, Value.Equal)
	case KindObject:
		return v.obj.Equal(other.obj)
	}
	return false
}

// Interface converts v back into plain Go data: nil, bool, Number, string,
// []any or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return Number(v.s)
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.obj.Len())
		v.obj.Range(func(key string, val Value) bool {
			out[key] = val.Interface()
			return true
		})
		return out
	default:
		return nil
	}
}

// formatFloat renders f with the encoder's float formatting: plain decimal
// notation for moderate magnitudes, exponent notation otherwise. f must be
// finite.
func formatFloat(f float64, bits int) string {
	var v any = f
	if bits == 32 {
		v = float32(f)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return string(data)
}
