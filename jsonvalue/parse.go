package jsonvalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/goccy/go-json"
)

// Parse decodes a single JSON document into a Value. Object members keep the
// order in which they appear in data; numbers keep their literal text.
// Duplicate member names resolve to the last occurrence.
func Parse(data []byte) (Value, error) {
	// The token stream does not check separators, so the grammar is checked
	// up front.
	if !json.Valid(data) {
		return Value{}, errors.New("jsonvalue: invalid JSON document")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, fmt.Errorf("jsonvalue: invalid data after top-level value: %w", err)
		}
		return Value{}, errors.New("jsonvalue: unexpected data after top-level value")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}
	return parseToken(dec, tok)
}

// numberLiteral is the JSON number grammar (RFC 8259, section 6).
var numberLiteral = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return Value{}, fmt.Errorf("jsonvalue: unexpected delimiter %q", rune(t))
		}
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		if !numberLiteral.MatchString(string(t)) {
			return Value{}, fmt.Errorf("jsonvalue: invalid number literal %q", string(t))
		}
		return NumberLiteral(Number(t)), nil
	case float64:
		return Value{kind: KindNumber, s: strconv.FormatFloat(t, 'g', -1, 64)}, nil
	}
	return Value{}, fmt.Errorf("jsonvalue: unexpected token %v", tok)
}

func parseObject(dec *json.Decoder) (Value, error) {
	b := NewObjectBuilder()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, eofToUnexpected(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("jsonvalue: object key must be a string, got %v", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		b.Set(key, val)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return Value{}, err
	}
	return b.Build(), nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, val)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return Value{}, err
	}
	return Value{kind: KindArray, arr: items}, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return eofToUnexpected(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("jsonvalue: expected %q, got %v", rune(want), tok)
	}
	return nil
}

func eofToUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
