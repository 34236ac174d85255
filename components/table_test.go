package components

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasschema/oaserrors"
	"github.com/erraggy/oasschema/schema"
)

func widgetSchema() schema.Node {
	return schema.Object(
		schema.NewContext(schema.ObjectFormatGeneric, schema.Title("Widget")),
		schema.NewObjectContext(map[string]schema.Node{
			"id": schema.String(schema.NewContext(schema.StringFormatUUID), schema.StringContext{}),
		}),
	)
}

func TestTableAdd(t *testing.T) {
	table := New()

	ref, err := table.Add("Widget", widgetSchema())
	require.NoError(t, err)
	assert.Equal(t, "#/components/schemas/Widget", ref.String())

	got, ok := table.Get("Widget")
	require.True(t, ok)
	assert.True(t, schema.Equal(widgetSchema(), got))
	assert.Equal(t, 1, table.Len())

	t.Run("identical re-add is a no-op", func(t *testing.T) {
		again, err := table.Add("Widget", widgetSchema())
		require.NoError(t, err)
		assert.Equal(t, ref, again)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("conflicting re-add fails", func(t *testing.T) {
		_, err := table.Add("Widget", schema.Ref("Other"))
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrConfig)

		got, _ := table.Get("Widget")
		assert.True(t, schema.Equal(widgetSchema(), got))
	})

	t.Run("nil schema", func(t *testing.T) {
		_, err := table.Add("Empty", nil)
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})
}

func TestTableAddInvalidName(t *testing.T) {
	for _, name := range []string{"", "has space", "a/b", "ümlaut", "#ref"} {
		t.Run(name, func(t *testing.T) {
			_, err := New().Add(name, widgetSchema())
			var cfgErr *oaserrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, name, cfgErr.Value)
		})
	}
}

func TestTableNames(t *testing.T) {
	table := New()
	for _, name := range []string{"Zebra", "apple", "Mango", "v1.Widget"} {
		_, err := table.Add(name, widgetSchema())
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"Mango", "Zebra", "apple", "v1.Widget"}, table.Names())
}

func TestTableResolve(t *testing.T) {
	table := New()
	ref, err := table.Add("Widget", widgetSchema())
	require.NoError(t, err)

	got, err := table.Resolve(ref)
	require.NoError(t, err)
	assert.True(t, schema.Equal(widgetSchema(), got))

	t.Run("missing", func(t *testing.T) {
		_, err := table.Resolve(schema.ComponentRef[schema.SchemaComponent]("Gadget"))
		var refErr *oaserrors.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, "#/components/schemas/Gadget", refErr.Ref)
		assert.False(t, refErr.IsExternal)
	})

	t.Run("external", func(t *testing.T) {
		_, err := table.Resolve(schema.ExternalRef[schema.SchemaComponent]("common.yaml#/Widget"))
		var refErr *oaserrors.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.True(t, refErr.IsExternal)
	})
}

func TestTableResolveDeep(t *testing.T) {
	table := New()
	_, err := table.Add("Widget", widgetSchema())
	require.NoError(t, err)
	_, err = table.Add("Alias", schema.Ref("Widget"))
	require.NoError(t, err)
	_, err = table.Add("AliasOfAlias", schema.Ref("Alias"))
	require.NoError(t, err)

	got, err := table.ResolveDeep(schema.Ref("AliasOfAlias"))
	require.NoError(t, err)
	assert.True(t, schema.Equal(widgetSchema(), got))

	inline := schema.AllOf(schema.Ref("Widget"))
	got, err = table.ResolveDeep(inline)
	require.NoError(t, err)
	assert.True(t, schema.Equal(inline, got))

	t.Run("cycle", func(t *testing.T) {
		cyclic := New()
		_, err := cyclic.Add("A", schema.Ref("B"))
		require.NoError(t, err)
		_, err = cyclic.Add("B", schema.Ref("A"))
		require.NoError(t, err)

		_, err = cyclic.ResolveDeep(schema.Ref("A"))
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrCircularReference)
		assert.ErrorIs(t, err, oaserrors.ErrReference)
	})

	t.Run("dangling", func(t *testing.T) {
		_, err := table.ResolveDeep(schema.Ref("Nope"))
		assert.ErrorIs(t, err, oaserrors.ErrReference)
		assert.NotErrorIs(t, err, oaserrors.ErrCircularReference)
	})
}

func TestTableValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		table := New()
		_, err := table.Add("Widget", widgetSchema())
		require.NoError(t, err)
		_, err = table.Add("Box", schema.Array(schema.Context[schema.ArrayFormat]{}, schema.NewArrayContext(schema.Ref("Widget"))))
		require.NoError(t, err)
		_, err = table.Add("Remote", schema.RefTo(schema.ExternalRef[schema.SchemaComponent]("common.yaml#/Thing")))
		require.NoError(t, err)

		assert.NoError(t, table.Validate())
	})

	t.Run("self referencing object is valid", func(t *testing.T) {
		table := New()
		_, err := table.Add("Node", schema.Object(schema.Context[schema.ObjectFormat]{},
			schema.NewObjectContext(map[string]schema.Node{"next": schema.Ref("Node")})))
		require.NoError(t, err)
		assert.NoError(t, table.Validate())
	})

	t.Run("problems", func(t *testing.T) {
		table := New()
		_, err := table.Add("Box", schema.AllOf(schema.Ref("Missing")))
		require.NoError(t, err)
		_, err = table.Add("A", schema.Ref("B"))
		require.NoError(t, err)
		_, err = table.Add("B", schema.Ref("A"))
		require.NoError(t, err)

		err = table.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrCircularReference)

		var refErr *oaserrors.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Contains(t, err.Error(), "#/components/schemas/Missing")
	})
}

func TestTableEncode(t *testing.T) {
	table := New()
	_, err := table.Add("Widget", widgetSchema())
	require.NoError(t, err)
	_, err = table.Add("Note", schema.NullableSchemaObject(schema.String(schema.Context[schema.StringFormat]{}, schema.StringContext{})))
	require.NoError(t, err)

	data, err := table.Encode().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"schemas":{"Note":{"type":"string","nullable":true},`+
			`"Widget":{"type":"object","title":"Widget","properties":{"id":{"type":"string","format":"uuid"}},"required":["id"]}}}`,
		string(data))

	data, err = table.Encode(schema.ForVersion("3.1.0")).MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Note":{"type":["string","null"]}`)

	t.Run("empty", func(t *testing.T) {
		data, err := New().Encode().MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"schemas":{}}`, string(data))
	})

	t.Run("json.Marshaler", func(t *testing.T) {
		data, err := json.Marshal(map[string]any{"components": table})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"components":{"schemas":{"Note":`)
	})

	t.Run("yaml.Marshaler", func(t *testing.T) {
		data, err := yaml.Marshal(table)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		schemas, ok := decoded["schemas"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, schemas, "Widget")
		assert.Contains(t, schemas, "Note")
	})
}

func TestTableLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	table := New(WithLogger(logger))

	ref, err := table.Add("Widget", widgetSchema())
	require.NoError(t, err)
	_, err = table.Resolve(ref)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "registered component")
	assert.Contains(t, out, "name=Widget")
	assert.Contains(t, out, "resolved reference")
}

func TestTableConcurrentUse(t *testing.T) {
	table := New()
	ref, err := table.Add("Widget", widgetSchema())
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := range 32 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := table.Resolve(ref); err != nil {
				errs <- err
			}
			_ = table.Encode()
		}()
		go func() {
			defer wg.Done()
			if _, err := table.Add(ComponentName("widget copy"), widgetSchema()); err != nil {
				errs <- err
			}
			if i%2 == 0 {
				_ = table.Names()
			}
		}()
	}
	wg.Wait()
	close(errs)

	var all []error
	for err := range errs {
		all = append(all, err)
	}
	assert.NoError(t, errors.Join(all...))
	assert.Equal(t, []string{"Widget", "WidgetCopy"}, table.Names())
}
