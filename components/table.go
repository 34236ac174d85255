package components

import (
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/erraggy/oasschema/jsonvalue"
	"github.com/erraggy/oasschema/oaserrors"
	"github.com/erraggy/oasschema/schema"
)

// Table is the components.schemas section of a document: named schemas that
// ReferenceNodes point at.
//
// A Table is safe for concurrent use. Lookups take a read lock, so many
// encoders can resolve references while registrations are serialized.
type Table struct {
	mu      sync.RWMutex
	schemas map[string]schema.Node
	types   *typeCache
	logger  Logger
}

// Option configures a Table.
type Option func(*Table)

// WithLogger sets the logger used for registration and resolution events.
func WithLogger(logger Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New returns an empty Table.
func New(opts ...Option) *Table {
	t := &Table{
		schemas: make(map[string]schema.Node),
		types:   newTypeCache(),
		logger:  NopLogger{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Add registers n under name and returns a reference to it.
//
// name must match ^[a-zA-Z0-9._-]+$. Adding a node that is structurally
// equal to the one already registered under name is a no-op; adding a
// different one returns an *oaserrors.ConfigError.
func (t *Table) Add(name string, n schema.Node) (schema.SchemaRef, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.addLocked(name, n)
}

func (t *Table) addLocked(name string, n schema.Node) (schema.SchemaRef, error) {
	if !ValidName(name) {
		return schema.SchemaRef{}, &oaserrors.ConfigError{
			Option:  "component name",
			Value:   name,
			Message: "must match " + namePattern.String(),
		}
	}
	if n == nil {
		return schema.SchemaRef{}, &oaserrors.ConfigError{
			Option:  "component " + name,
			Message: "schema must not be nil",
		}
	}
	if existing, ok := t.schemas[name]; ok {
		if !schema.Equal(existing, n) {
			return schema.SchemaRef{}, &oaserrors.ConfigError{
				Option:  "component " + name,
				Message: "already registered with a different schema",
			}
		}
		return schema.ComponentRef[schema.SchemaComponent](name), nil
	}
	t.schemas[name] = n
	t.logger.Debug("registered component", "name", name, "kind", schema.KindOf(n))
	return schema.ComponentRef[schema.SchemaComponent](name), nil
}

// Get returns the schema registered under name.
func (t *Table) Get(name string) (schema.Node, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.schemas[name]
	return n, ok
}

// Len returns the number of registered schemas.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.schemas)
}

// Names returns the registered names in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.schemas))
}

// Resolve returns the schema ref points at. External references and names
// that are not registered return an *oaserrors.ReferenceError.
func (t *Table) Resolve(ref schema.SchemaRef) (schema.Node, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolveLocked(ref)
}

func (t *Table) resolveLocked(ref schema.SchemaRef) (schema.Node, error) {
	name, ok := ref.Name()
	if !ok {
		return nil, &oaserrors.ReferenceError{
			Ref:        ref.String(),
			IsExternal: true,
			Message:    "external references cannot be resolved from the component table",
		}
	}
	n, ok := t.schemas[name]
	if !ok {
		return nil, &oaserrors.ReferenceError{Ref: ref.String(), Message: "component not found"}
	}
	t.logger.Debug("resolved reference", "ref", ref.String(), "kind", schema.KindOf(n))
	return n, nil
}

// ResolveDeep follows n through chains of references until it reaches a node
// that is not a reference. Any other node is returned as is. A chain that
// revisits a component returns an *oaserrors.ReferenceError with IsCircular
// set.
func (t *Table) ResolveDeep(n schema.Node) (schema.Node, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolveDeepLocked(n)
}

func (t *Table) resolveDeepLocked(n schema.Node) (schema.Node, error) {
	seen := make(map[schema.SchemaRef]bool)
	for {
		ref, ok := n.(schema.ReferenceNode)
		if !ok {
			return n, nil
		}
		target := ref.Reference()
		if seen[target] {
			return nil, &oaserrors.ReferenceError{
				Ref:        target.String(),
				IsCircular: true,
				Message:    "reference chain loops back on itself",
			}
		}
		seen[target] = true

		next, err := t.resolveLocked(target)
		if err != nil {
			return nil, err
		}
		n = next
	}
}

// Validate checks that every reference inside the registered schemas points
// at a registered component and that no component is an alias cycle
// (A -> B -> A). External references are not checked. All problems are
// returned joined, ordered by component name.
func (t *Table) Validate() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(t.schemas)) {
		n := t.schemas[name]
		for _, ref := range schema.References(n) {
			if ref.IsExternal() {
				continue
			}
			target, _ := ref.Name()
			if _, ok := t.schemas[target]; !ok {
				errs = append(errs, &oaserrors.ReferenceError{
					Ref:     ref.String(),
					Message: "referenced from component " + name + " but not registered",
				})
			}
		}
		if _, err := t.resolveDeepLocked(n); err != nil {
			var refErr *oaserrors.ReferenceError
			if errors.As(err, &refErr) && refErr.IsCircular {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		t.logger.Warn("component table has invalid references", "count", len(errs))
	}
	return errors.Join(errs...)
}

// Encode renders the table as {"schemas": {...}} with names in sorted order.
func (t *Table) Encode(opts ...schema.EncodeOption) jsonvalue.Value {
	t.mu.RLock()
	defer t.mu.RUnlock()

	schemas := jsonvalue.NewObjectBuilder()
	for _, name := range slices.Sorted(maps.Keys(t.schemas)) {
		schemas.Set(name, schema.Encode(t.schemas[name], opts...))
	}
	return jsonvalue.NewObjectBuilder().Set("schemas", schemas.Build()).Build()
}

// MarshalJSON implements json.Marshaler using the default encode options.
func (t *Table) MarshalJSON() ([]byte, error) {
	return t.Encode().MarshalJSON()
}

// MarshalYAML implements yaml.Marshaler using the default encode options.
func (t *Table) MarshalYAML() (any, error) {
	return t.Encode().YAMLNode(), nil
}
