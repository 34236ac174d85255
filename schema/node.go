package schema

import (
	"slices"

	"github.com/erraggy/oasschema/jsonvalue"
)

// Node is a schema: exactly one of the eleven variants below.
//
// Leaf variants describe a primitive JSON type and carry a Context (plus,
// for objects, arrays, numbers, integers and strings, a kind-specific
// context): BooleanNode, ObjectNode, ArrayNode, NumberNode, IntegerNode,
// StringNode.
//
// Composite variants combine nested nodes: AllOfNode, OneOfNode, AnyOfNode,
// NotNode. ReferenceNode points at an entry of the components table.
//
// The set is closed; consumers switch over the concrete types. Nodes are
// values and never change after construction.
type Node interface {
	isNode()
}

// NodeKind names the variant of a Node.
type NodeKind string

// Node kinds.
const (
	KindBoolean   NodeKind = "boolean"
	KindObject    NodeKind = "object"
	KindArray     NodeKind = "array"
	KindNumber    NodeKind = "number"
	KindInteger   NodeKind = "integer"
	KindString    NodeKind = "string"
	KindAllOf     NodeKind = "allOf"
	KindOneOf     NodeKind = "oneOf"
	KindAnyOf     NodeKind = "anyOf"
	KindNot       NodeKind = "not"
	KindReference NodeKind = "reference"
)

// BooleanNode is a boolean schema.
type BooleanNode struct {
	ctx Context[BooleanFormat]
}

// ObjectNode is an object schema.
type ObjectNode struct {
	ctx    Context[ObjectFormat]
	object ObjectContext
}

// ArrayNode is an array schema.
type ArrayNode struct {
	ctx   Context[ArrayFormat]
	array ArrayContext
}

// NumberNode is a number schema.
type NumberNode struct {
	ctx     Context[NumberFormat]
	numeric NumericContext
}

// IntegerNode is an integer schema.
type IntegerNode struct {
	ctx     Context[IntegerFormat]
	numeric NumericContext
}

// StringNode is a string schema.
type StringNode struct {
	ctx Context[StringFormat]
	str StringContext
}

// AllOfNode matches values that match every nested schema.
type AllOfNode struct {
	schemas []Node
}

// OneOfNode matches values that match exactly one nested schema.
type OneOfNode struct {
	schemas []Node
}

// AnyOfNode matches values that match at least one nested schema.
type AnyOfNode struct {
	schemas []Node
}

// NotNode matches values that do not match the nested schema.
type NotNode struct {
	schema Node
}

// ReferenceNode points at a schema in the components table.
type ReferenceNode struct {
	ref SchemaRef
}

func (BooleanNode) isNode()   {}
func (ObjectNode) isNode()    {}
func (ArrayNode) isNode()     {}
func (NumberNode) isNode()    {}
func (IntegerNode) isNode()   {}
func (StringNode) isNode()    {}
func (AllOfNode) isNode()     {}
func (OneOfNode) isNode()     {}
func (AnyOfNode) isNode()     {}
func (NotNode) isNode()       {}
func (ReferenceNode) isNode() {}

// Boolean returns a boolean schema.
func Boolean(ctx Context[BooleanFormat]) BooleanNode {
	return BooleanNode{ctx: ctx}
}

// Object returns an object schema.
func Object(ctx Context[ObjectFormat], object ObjectContext) ObjectNode {
	return ObjectNode{ctx: ctx, object: object}
}

// Array returns an array schema.
func Array(ctx Context[ArrayFormat], array ArrayContext) ArrayNode {
	return ArrayNode{ctx: ctx, array: array}
}

// Number returns a number schema.
func Number(ctx Context[NumberFormat], numeric NumericContext) NumberNode {
	return NumberNode{ctx: ctx, numeric: numeric}
}

// Integer returns an integer schema.
func Integer(ctx Context[IntegerFormat], numeric NumericContext) IntegerNode {
	return IntegerNode{ctx: ctx, numeric: numeric}
}

// String returns a string schema.
func String(ctx Context[StringFormat], str StringContext) StringNode {
	return StringNode{ctx: ctx, str: str}
}

// AllOf returns an allOf combinator. The slice is copied; order is kept.
func AllOf(schemas ...Node) AllOfNode {
	return AllOfNode{schemas: slices.Clone(schemas)}
}

// OneOf returns a oneOf combinator. The slice is copied; order is kept.
func OneOf(schemas ...Node) OneOfNode {
	return OneOfNode{schemas: slices.Clone(schemas)}
}

// AnyOf returns an anyOf combinator. The slice is copied; order is kept.
func AnyOf(schemas ...Node) AnyOfNode {
	return AnyOfNode{schemas: slices.Clone(schemas)}
}

// Not returns a not combinator.
func Not(schema Node) NotNode {
	return NotNode{schema: schema}
}

// Ref returns a reference to the schema component called name.
func Ref(name string) ReferenceNode {
	return ReferenceNode{ref: ComponentRef[SchemaComponent](name)}
}

// RefTo returns a reference node for ref.
func RefTo(ref SchemaRef) ReferenceNode {
	return ReferenceNode{ref: ref}
}

// Context returns the shared context.
func (n BooleanNode) Context() Context[BooleanFormat] { return n.ctx }

// Context returns the shared context.
func (n ObjectNode) Context() Context[ObjectFormat] { return n.ctx }

// ObjectContext returns the object constraints.
func (n ObjectNode) ObjectContext() ObjectContext { return n.object }

// Context returns the shared context.
func (n ArrayNode) Context() Context[ArrayFormat] { return n.ctx }

// ArrayContext returns the array constraints.
func (n ArrayNode) ArrayContext() ArrayContext { return n.array }

// Context returns the shared context.
func (n NumberNode) Context() Context[NumberFormat] { return n.ctx }

// NumericContext returns the numeric constraints.
func (n NumberNode) NumericContext() NumericContext { return n.numeric }

// Context returns the shared context.
func (n IntegerNode) Context() Context[IntegerFormat] { return n.ctx }

// NumericContext returns the numeric constraints.
func (n IntegerNode) NumericContext() NumericContext { return n.numeric }

// Context returns the shared context.
func (n StringNode) Context() Context[StringFormat] { return n.ctx }

// StringContext returns the string constraints.
func (n StringNode) StringContext() StringContext { return n.str }

// Schemas returns a copy of the nested schemas.
func (n AllOfNode) Schemas() []Node { return slices.Clone(n.schemas) }

// Schemas returns a copy of the nested schemas.
func (n OneOfNode) Schemas() []Node { return slices.Clone(n.schemas) }

// Schemas returns a copy of the nested schemas.
func (n AnyOfNode) Schemas() []Node { return slices.Clone(n.schemas) }

// Schema returns the negated schema.
func (n NotNode) Schema() Node { return n.schema }

// Reference returns the target of the reference.
func (n ReferenceNode) Reference() SchemaRef { return n.ref }

// KindOf returns the variant of n. A nil Node has no kind.
func KindOf(n Node) NodeKind {
	switch n.(type) {
	case BooleanNode:
		return KindBoolean
	case ObjectNode:
		return KindObject
	case ArrayNode:
		return KindArray
	case NumberNode:
		return KindNumber
	case IntegerNode:
		return KindInteger
	case StringNode:
		return KindString
	case AllOfNode:
		return KindAllOf
	case OneOfNode:
		return KindOneOf
	case AnyOfNode:
		return KindAnyOf
	case NotNode:
		return KindNot
	case ReferenceNode:
		return KindReference
	}
	return ""
}

// ContextView is a read-only projection of a leaf's shared Context with the
// format erased.
type ContextView struct {
	Format        AnyFormat
	Required      bool
	Nullable      bool
	Permissions   Permissions
	Deprecated    bool
	Title         string
	Description   string
	AllowedValues []jsonvalue.Value
	Default       *jsonvalue.Value
	Example       *jsonvalue.Value
}

func viewOf[F Format](c Context[F]) ContextView {
	return ContextView{
		Format:        eraseFormat(c.format),
		Required:      !c.fields.optional,
		Nullable:      c.fields.nullable,
		Permissions:   c.fields.permissions,
		Deprecated:    c.fields.deprecated,
		Title:         c.fields.title,
		Description:   c.fields.description,
		AllowedValues: slices.Clone(c.fields.allowedValues),
		Default:       c.fields.defaultValue,
		Example:       c.fields.example,
	}
}

// SharedContext projects the shared Context of a leaf node. Composite and
// reference nodes carry no Context and report false.
func SharedContext(n Node) (ContextView, bool) {
	switch n := n.(type) {
	case BooleanNode:
		return viewOf(n.ctx), true
	case ObjectNode:
		return viewOf(n.ctx), true
	case ArrayNode:
		return viewOf(n.ctx), true
	case NumberNode:
		return viewOf(n.ctx), true
	case IntegerNode:
		return viewOf(n.ctx), true
	case StringNode:
		return viewOf(n.ctx), true
	case AllOfNode, OneOfNode, AnyOfNode, NotNode, ReferenceNode:
		return ContextView{}, false
	}
	return ContextView{}, false
}

// IsLeaf reports whether n is one of the six primitive variants.
func IsLeaf(n Node) bool {
	_, ok := SharedContext(n)
	return ok
}

// IsRequired reports whether a value described by n must be present.
// Composite and reference nodes are always required.
func IsRequired(n Node) bool {
	if view, ok := SharedContext(n); ok {
		return view.Required
	}
	return true
}

// FormatOf returns the format of a leaf node. Composite and reference nodes
// have no format.
func FormatOf(n Node) (AnyFormat, bool) {
	view, ok := SharedContext(n)
	return view.Format, ok
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case BooleanNode:
		b, ok := b.(BooleanNode)
		return ok && a.ctx.Equal(b.ctx)
	case ObjectNode:
		b, ok := b.(ObjectNode)
		return ok && a.ctx.Equal(b.ctx) && a.object.Equal(b.object)
	case ArrayNode:
		b, ok := b.(ArrayNode)
		return ok && a.ctx.Equal(b.ctx) && a.array.Equal(b.array)
	case NumberNode:
		b, ok := b.(NumberNode)
		return ok && a.ctx.Equal(b.ctx) && a.numeric.Equal(b.numeric)
	case IntegerNode:
		b, ok := b.(IntegerNode)
		return ok && a.ctx.Equal(b.ctx) && a.numeric.Equal(b.numeric)
	case StringNode:
		b, ok := b.(StringNode)
		return ok && a.ctx.Equal(b.ctx) && a.str.Equal(b.str)
	case AllOfNode:
		b, ok := b.(AllOfNode)
		return ok && slices.EqualFunc(a.schemas, b.schemas, Equal)
	case OneOfNode:
		b, ok := b.(OneOfNode)
		return ok && slices.EqualFunc(a.schemas, b.schemas, Equal)
	case AnyOfNode:
		b, ok := b.(AnyOfNode)
		return ok && slices.EqualFunc(a.schemas, b.schemas, Equal)
	case NotNode:
		b, ok := b.(NotNode)
		return ok && Equal(a.schema, b.schema)
	case ReferenceNode:
		b, ok := b.(ReferenceNode)
		return ok && a.ref == b.ref
	}
	return false
}
