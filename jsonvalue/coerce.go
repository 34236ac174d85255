package jsonvalue

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/erraggy/oasschema/oaserrors"
)

// Encoder serializes an arbitrary Go value to JSON bytes.
type Encoder interface {
	Encode(v any) ([]byte, error)
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(v any) ([]byte, error)

// Encode implements Encoder.
func (f EncoderFunc) Encode(v any) ([]byte, error) {
	return f(v)
}

// DefaultEncoder encodes with github.com/goccy/go-json, which honors the same
// struct tags and Marshaler interfaces as encoding/json.
var DefaultEncoder Encoder = EncoderFunc(func(v any) ([]byte, error) {
	return json.Marshal(v)
})

// Coerce converts v into a Value.
//
// A Value (or non-nil *Value) is returned unchanged. Anything else is encoded
// to bytes with enc, or DefaultEncoder when enc is nil, and the bytes are
// parsed back. A failure in either step returns an *oaserrors.CoercionError
// whose Stage says which one failed. Coerce never retries.
func Coerce(v any, enc Encoder) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case *Value:
		if x != nil {
			return *x, nil
		}
	}

	if enc == nil {
		enc = DefaultEncoder
	}

	data, err := enc.Encode(v)
	if err != nil {
		return Value{}, &oaserrors.CoercionError{
			Stage:    oaserrors.StageEncode,
			TypeName: fmt.Sprintf("%T", v),
			Cause:    err,
		}
	}

	out, err := Parse(data)
	if err != nil {
		return Value{}, &oaserrors.CoercionError{
			Stage:    oaserrors.StageParse,
			TypeName: fmt.Sprintf("%T", v),
			Cause:    err,
		}
	}
	return out, nil
}
