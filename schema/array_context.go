package schema

import "github.com/erraggy/oasschema/jsonvalue"

// ArrayContext holds the constraints specific to array schemas.
// The zero ArrayContext places no constraint on items.
type ArrayContext struct {
	items       Node
	minItems    int
	maxItems    *int
	uniqueItems bool
}

// NewArrayContext returns an ArrayContext whose elements match items.
// A nil items leaves elements unconstrained.
func NewArrayContext(items Node) ArrayContext {
	return ArrayContext{items: items}
}

// Items returns the element schema, if set.
func (a ArrayContext) Items() (Node, bool) { return a.items, a.items != nil }

// MinItems returns the minimum length (0 when unset).
func (a ArrayContext) MinItems() int { return a.minItems }

// MaxItems returns the maximum length, if set.
func (a ArrayContext) MaxItems() (int, bool) { return derefInt(a.maxItems) }

// UniqueItems reports whether elements must be distinct.
func (a ArrayContext) UniqueItems() bool { return a.uniqueItems }

// WithItems returns a copy with the given element schema.
func (a ArrayContext) WithItems(items Node) ArrayContext {
	a.items = items
	return a
}

// WithMinItems returns a copy with the given minimum length.
func (a ArrayContext) WithMinItems(n int) ArrayContext {
	a.minItems = n
	return a
}

// WithMaxItems returns a copy with the given maximum length.
func (a ArrayContext) WithMaxItems(n int) ArrayContext {
	a.maxItems = &n
	return a
}

// WithUniqueItems returns a copy with the uniqueness constraint set.
func (a ArrayContext) WithUniqueItems(unique bool) ArrayContext {
	a.uniqueItems = unique
	return a
}

// Equal reports whether both contexts hold the same constraints.
func (a ArrayContext) Equal(other ArrayContext) bool {
	return a.minItems == other.minItems &&
		a.uniqueItems == other.uniqueItems &&
		intPtrEqual(a.maxItems, other.maxItems) &&
		Equal(a.items, other.items)
}

func (a ArrayContext) encodeFields(b *jsonvalue.ObjectBuilder, cfg *encodeConfig) {
	if a.items != nil {
		b.Set("items", encodeNode(a.items, cfg))
	}
	if a.minItems > 0 {
		b.Set("minItems", jsonvalue.Int(int64(a.minItems)))
	}
	if a.maxItems != nil {
		b.Set("maxItems", jsonvalue.Int(int64(*a.maxItems)))
	}
	if a.uniqueItems {
		b.Set("uniqueItems", jsonvalue.Bool(true))
	}
}
