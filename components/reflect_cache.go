package components

import "reflect"

// typeCache tracks which Go types have been registered as components and
// which are still being generated, so recursive types become references.
type typeCache struct {
	nameByType map[reflect.Type]string
	typeByName map[string]reflect.Type
	inProgress map[reflect.Type]bool
}

func newTypeCache() *typeCache {
	return &typeCache{
		nameByType: make(map[reflect.Type]string),
		typeByName: make(map[string]reflect.Type),
		inProgress: make(map[reflect.Type]bool),
	}
}

// reserve binds name to t before its schema is generated.
func (c *typeCache) reserve(t reflect.Type, name string) {
	c.nameByType[t] = name
	c.typeByName[name] = t
	c.inProgress[t] = true
}

// enter marks t as being generated without binding a name.
func (c *typeCache) enter(t reflect.Type) {
	c.inProgress[t] = true
}

// done marks t as fully generated.
func (c *typeCache) done(t reflect.Type) {
	delete(c.inProgress, t)
}

// forget drops a reservation whose generation failed.
func (c *typeCache) forget(t reflect.Type) {
	if name, ok := c.nameByType[t]; ok {
		delete(c.typeByName, name)
	}
	delete(c.nameByType, t)
	delete(c.inProgress, t)
}

// nameFor returns the component name bound to t.
func (c *typeCache) nameFor(t reflect.Type) (string, bool) {
	name, ok := c.nameByType[t]
	return name, ok
}

// typeFor returns the type bound to name, or nil.
func (c *typeCache) typeFor(name string) reflect.Type {
	return c.typeByName[name]
}
