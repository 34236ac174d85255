package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.Equal(t, KindNull, v.Kind())
	assert.Nil(t, v.Interface())
}

func TestAccessors(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		b, ok := Bool(true).AsBool()
		assert.True(t, ok)
		assert.True(t, b)

		_, ok = String("true").AsBool()
		assert.False(t, ok)
	})

	t.Run("number", func(t *testing.T) {
		n, ok := Int(-42).AsNumber()
		require.True(t, ok)
		i, err := n.Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(-42), i)

		n, ok = Float(1.5).AsNumber()
		require.True(t, ok)
		f, err := n.Float64()
		require.NoError(t, err)
		assert.InDelta(t, 1.5, f, 0)
	})

	t.Run("string", func(t *testing.T) {
		s, ok := String("hello").AsString()
		assert.True(t, ok)
		assert.Equal(t, "hello", s)
	})

	t.Run("items are copied", func(t *testing.T) {
		arr := Array(Int(1), Int(2))
		items := arr.Items()
		items[0] = String("changed")
		assert.True(t, arr.Equal(Array(Int(1), Int(2))))
		assert.Equal(t, 2, arr.Len())
	})

	t.Run("object", func(t *testing.T) {
		v := NewObjectBuilder().Set("a", Int(1)).Build()
		obj, ok := v.Object()
		require.True(t, ok)
		got, ok := obj.Get("a")
		require.True(t, ok)
		assert.True(t, got.Equal(Int(1)))
		_, ok = obj.Get("missing")
		assert.False(t, ok)
	})
}

func TestFloatPanicsOnNaN(t *testing.T) {
	assert.Panics(t, func() { Float(nan()) })
}

func TestFloatFormatting(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected string
	}{
		{"integral", 3, "3"},
		{"fraction", 0.25, "0.25"},
		{"large", 1e21, "1e+21"},
		{"small", 1e-7, "1e-07"},
		{"widened float32", float64(float32(0.1)), "0.10000000149011612"},
		{"negative", -2.5, "-2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := Float(tt.in).AsNumber()
			require.True(t, ok)
			assert.Equal(t, tt.expected, n.String())
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"null", Null(), Null(), true},
		{"different kinds", Null(), Bool(false), false},
		{"number literals differ but values match", NumberLiteral("1"), NumberLiteral("1.0"), true},
		{"numbers differ", Int(1), Int(2), false},
		{"arrays in order", Array(Int(1), Int(2)), Array(Int(1), Int(2)), true},
		{"arrays out of order", Array(Int(1), Int(2)), Array(Int(2), Int(1)), false},
		{
			"objects ignore member order",
			NewObjectBuilder().Set("a", Int(1)).Set("b", Int(2)).Build(),
			NewObjectBuilder().Set("b", Int(2)).Set("a", Int(1)).Build(),
			true,
		},
		{
			"objects with different members",
			NewObjectBuilder().Set("a", Int(1)).Build(),
			NewObjectBuilder().Set("a", Int(1)).Set("b", Int(2)).Build(),
			false,
		},
		{"empty objects", ObjectOf(nil), NewObjectBuilder().Build(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestInterface(t *testing.T) {
	v := NewObjectBuilder().
		Set("name", String("rex")).
		Set("age", Int(3)).
		Set("tags", Array(String("a"), Null())).
		Set("good", Bool(true)).
		Build()

	expected := map[string]any{
		"name": "rex",
		"age":  Number("3"),
		"tags": []any{"a", nil},
		"good": true,
	}
	assert.Equal(t, expected, v.Interface())
}

func TestObjectBuilder(t *testing.T) {
	t.Run("keeps insertion order and replaces in place", func(t *testing.T) {
		b := NewObjectBuilder()
		b.Set("z", Int(1)).Set("a", Int(2)).Set("z", Int(3))
		assert.True(t, b.Has("z"))
		assert.Equal(t, 2, b.Len())

		obj, _ := b.Build().Object()
		assert.Equal(t, []string{"z", "a"}, obj.Keys())
		z, _ := obj.Get("z")
		assert.True(t, z.Equal(Int(3)))
	})

	t.Run("SetIfPresent", func(t *testing.T) {
		b := NewObjectBuilder()
		b.SetIfPresent("skip", Int(1), false)
		b.SetIfPresent("keep", Int(2), true)
		assert.False(t, b.Has("skip"))
		assert.True(t, b.Has("keep"))
	})

	t.Run("built values are isolated from later writes", func(t *testing.T) {
		b := NewObjectBuilder().Set("a", Int(1))
		first := b.Build()
		b.Set("b", Int(2))
		assert.Equal(t, 1, first.Len())
		assert.Equal(t, 2, b.Build().Len())
	})

	t.Run("Range stops early", func(t *testing.T) {
		obj, _ := NewObjectBuilder().Set("a", Int(1)).Set("b", Int(2)).Build().Object()
		var seen []string
		obj.Range(func(key string, _ Value) bool {
			seen = append(seen, key)
			return false
		})
		assert.Equal(t, []string{"a"}, seen)
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
