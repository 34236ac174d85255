package jsonvalue

import "slices"

// Object is an immutable JSON object that remembers member insertion order.
// Objects are produced by an ObjectBuilder or by Parse.
type Object struct {
	keys   []string
	values map[string]Value
}

// Len returns the number of members. A nil Object is empty.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the member names in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Get returns the member value for key and whether it exists.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Range calls fn for each member in insertion order until fn returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// Equal reports whether both objects hold the same members with equal values,
// regardless of order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	if o.Len() == 0 {
		return true
	}
	for k, v := range o.values {
		ov, ok := other.values[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// ObjectBuilder accumulates members for a new Object. The builder is owned by
// whoever creates it; several independent contributors may write into the
// same builder before it is built.
type ObjectBuilder struct {
	keys   []string
	values map[string]Value
}

// NewObjectBuilder returns an empty builder.
func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{values: make(map[string]Value)}
}

// Set adds or replaces a member. Replacing keeps the member's original position.
func (b *ObjectBuilder) Set(key string, v Value) *ObjectBuilder {
	if _, exists := b.values[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.values[key] = v
	return b
}

// SetIfPresent calls Set only when ok is true.
func (b *ObjectBuilder) SetIfPresent(key string, v Value, ok bool) *ObjectBuilder {
	if ok {
		b.Set(key, v)
	}
	return b
}

// Has reports whether key has been set.
func (b *ObjectBuilder) Has(key string) bool {
	_, ok := b.values[key]
	return ok
}

// Len returns the number of members set so far.
func (b *ObjectBuilder) Len() int { return len(b.keys) }

// Build returns the accumulated members as an object Value. The builder may
// keep being used; later writes do not affect values already built.
func (b *ObjectBuilder) Build() Value {
	values := make(map[string]Value, len(b.values))
	for k, v := range b.values {
		values[k] = v
	}
	return ObjectOf(&Object{keys: slices.Clone(b.keys), values: values})
}
