package jsonvalue

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasschema/oaserrors"
)

func nan() float64 { return math.NaN() }

type color string

type pet struct {
	Name string   `json:"name"`
	Age  int      `json:"age,omitempty"`
	Tags []string `json:"tags,omitempty"`
}

func TestFromScalars(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{"nil", nil, `null`},
		{"bool", true, `true`},
		{"string", "hi", `"hi"`},
		{"int", 7, `7`},
		{"int8", int8(-3), `-3`},
		{"uint64", uint64(math.MaxUint64), `18446744073709551615`},
		{"float32", float32(0.5), `0.5`},
		{"float64", 2.25, `2.25`},
		{"Number", Number("12.50"), `12.50`},
		{"named string", color("red"), `"red"`},
		{"nil pointer", (*int)(nil), `null`},
		{"pointer", ptr(5), `5`},
		{"Value", String("as-is"), `"as-is"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := From(tt.in)
			require.NoError(t, err)
			data, err := v.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestFromCollections(t *testing.T) {
	t.Run("slice of any keeps order", func(t *testing.T) {
		v, err := From([]any{3, "b", nil})
		require.NoError(t, err)
		assert.True(t, v.Equal(Array(Int(3), String("b"), Null())))
	})

	t.Run("typed slice", func(t *testing.T) {
		v, err := From([]int{1, 2, 3})
		require.NoError(t, err)
		assert.True(t, v.Equal(Array(Int(1), Int(2), Int(3))))
	})

	t.Run("array", func(t *testing.T) {
		v, err := From([2]string{"x", "y"})
		require.NoError(t, err)
		assert.True(t, v.Equal(Array(String("x"), String("y"))))
	})

	t.Run("map keys are sorted", func(t *testing.T) {
		v, err := From(map[string]any{"b": 1, "a": 2})
		require.NoError(t, err)
		obj, ok := v.Object()
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, obj.Keys())
	})

	t.Run("typed map keys are sorted", func(t *testing.T) {
		v, err := From(map[string]int{"z": 1, "m": 2})
		require.NoError(t, err)
		obj, _ := v.Object()
		assert.Equal(t, []string{"m", "z"}, obj.Keys())
	})

	t.Run("byte slice becomes base64", func(t *testing.T) {
		v, err := From([]byte("hi"))
		require.NoError(t, err)
		assert.True(t, v.Equal(String("aGk=")))
	})
}

func TestFromStructUsesEncoder(t *testing.T) {
	v, err := From(pet{Name: "rex", Tags: []string{"good"}})
	require.NoError(t, err)

	data, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"rex","tags":["good"]}`, string(data))
}

func TestFromMarshaler(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	v, err := From(ts)
	require.NoError(t, err)
	assert.True(t, v.Equal(String("2024-01-02T03:04:05Z")))
}

func TestFromErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
		path string
	}{
		{"channel", make(chan int), ""},
		{"func", func() {}, ""},
		{"complex", complex(1, 2), ""},
		{"NaN", math.NaN(), ""},
		{"infinity in slice", []any{1, math.Inf(1)}, "[1]"},
		{"non-string map keys", map[int]string{1: "a"}, ""},
		{"nested", map[string]any{"outer": []any{make(chan int)}}, "outer[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := From(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrEncoding))

			var encErr *oaserrors.EncodingError
			require.True(t, errors.As(err, &encErr))
			assert.Equal(t, tt.path, encErr.Path)
		})
	}
}

func TestFromSlice(t *testing.T) {
	vs, err := FromSlice([]any{1, "two", 3.5})
	require.NoError(t, err)
	require.Len(t, vs, 3)
	assert.True(t, vs[1].Equal(String("two")))

	_, err = FromSlice([]any{1, make(chan int)})
	var encErr *oaserrors.EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, "[1]", encErr.Path)
}

func TestMustFrom(t *testing.T) {
	assert.True(t, MustFrom(1).Equal(Int(1)))
	assert.Panics(t, func() { MustFrom(make(chan int)) })
}

func ptr[T any](v T) *T { return &v }
