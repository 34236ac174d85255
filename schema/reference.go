package schema

import (
	"strings"

	"github.com/erraggy/oasschema/oaserrors"
)

// ComponentsPrefix is the JSON pointer prefix of the shared components table.
const ComponentsPrefix = "#/components/"

// ComponentKind names a section of the components table. Implementations are
// zero-size marker types used as the type parameter of Reference.
type ComponentKind interface {
	ComponentKey() string
}

// SchemaComponent marks references into components.schemas.
type SchemaComponent struct{}

// ComponentKey implements ComponentKind.
func (SchemaComponent) ComponentKey() string { return "schemas" }

// Reference is a pointer to a named entry of kind K in the components table,
// or to an external document. References are comparable values.
type Reference[K ComponentKind] struct {
	name     string
	external string
}

// SchemaRef is a reference to a schema component.
type SchemaRef = Reference[SchemaComponent]

// ComponentRef returns a reference to the component called name.
func ComponentRef[K ComponentKind](name string) Reference[K] {
	return Reference[K]{name: name}
}

// ExternalRef returns a reference to a schema outside this document.
// uri is written to $ref verbatim.
func ExternalRef[K ComponentKind](uri string) Reference[K] {
	return Reference[K]{external: uri}
}

// ParseRef builds a Reference from a $ref string. Pointers into the
// components table must target kind K; other local pointers are rejected.
// Anything not starting with "#" is treated as an external reference.
func ParseRef[K ComponentKind](ref string) (Reference[K], error) {
	var kind K
	switch {
	case ref == "":
		return Reference[K]{}, &oaserrors.ReferenceError{Message: "empty reference"}
	case !strings.HasPrefix(ref, "#"):
		return ExternalRef[K](ref), nil
	case !strings.HasPrefix(ref, ComponentsPrefix):
		return Reference[K]{}, &oaserrors.ReferenceError{
			Ref:     ref,
			Message: "only " + ComponentsPrefix + " pointers are supported",
		}
	}

	section, name, found := strings.Cut(strings.TrimPrefix(ref, ComponentsPrefix), "/")
	if !found || name == "" {
		return Reference[K]{}, &oaserrors.ReferenceError{Ref: ref, Message: "missing component name"}
	}
	if section != kind.ComponentKey() {
		return Reference[K]{}, &oaserrors.ReferenceError{
			Ref:     ref,
			Message: "expected a reference into components/" + kind.ComponentKey(),
		}
	}
	return ComponentRef[K](unescapePointer(name)), nil
}

// Name returns the component name; false for external references.
func (r Reference[K]) Name() (string, bool) {
	if r.external != "" {
		return "", false
	}
	return r.name, true
}

// IsExternal reports whether the reference points outside this document.
func (r Reference[K]) IsExternal() bool { return r.external != "" }

// String returns the $ref pointer form, e.g. "#/components/schemas/Widget".
func (r Reference[K]) String() string {
	if r.external != "" {
		return r.external
	}
	var kind K
	return ComponentsPrefix + kind.ComponentKey() + "/" + escapePointer(r.name)
}

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

func escapePointer(s string) string { return pointerEscaper.Replace(s) }

func unescapePointer(s string) string { return pointerUnescaper.Replace(s) }
