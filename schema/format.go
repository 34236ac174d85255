package schema

// Type is a JSON Schema primitive type name.
type Type string

// JSON Schema primitive types.
const (
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeString  Type = "string"
)

// Format is the constraint satisfied by the per-type format enumerations.
// The empty string is the generic (unspecified) format of every enumeration;
// any other value not listed as a constant is carried verbatim as a custom
// format.
type Format interface {
	~string
	JSONType() Type
}

// BooleanFormat is the format of a boolean schema.
type BooleanFormat string

// BooleanFormatGeneric is the unspecified boolean format.
const BooleanFormatGeneric BooleanFormat = ""

// JSONType implements Format.
func (BooleanFormat) JSONType() Type { return TypeBoolean }

// ObjectFormat is the format of an object schema.
type ObjectFormat string

// ObjectFormatGeneric is the unspecified object format.
const ObjectFormatGeneric ObjectFormat = ""

// JSONType implements Format.
func (ObjectFormat) JSONType() Type { return TypeObject }

// ArrayFormat is the format of an array schema.
type ArrayFormat string

// ArrayFormatGeneric is the unspecified array format.
const ArrayFormatGeneric ArrayFormat = ""

// JSONType implements Format.
func (ArrayFormat) JSONType() Type { return TypeArray }

// NumberFormat is the format of a number schema.
type NumberFormat string

// Number formats defined by the OpenAPI Specification.
const (
	NumberFormatGeneric NumberFormat = ""
	NumberFormatFloat   NumberFormat = "float"
	NumberFormatDouble  NumberFormat = "double"
)

// JSONType implements Format.
func (NumberFormat) JSONType() Type { return TypeNumber }

// IntegerFormat is the format of an integer schema.
type IntegerFormat string

// Integer formats defined by the OpenAPI Specification.
const (
	IntegerFormatGeneric IntegerFormat = ""
	IntegerFormatInt32   IntegerFormat = "int32"
	IntegerFormatInt64   IntegerFormat = "int64"
)

// JSONType implements Format.
func (IntegerFormat) JSONType() Type { return TypeInteger }

// StringFormat is the format of a string schema.
type StringFormat string

// String formats from the OpenAPI Specification and the JSON Schema
// format vocabulary.
const (
	StringFormatGeneric  StringFormat = ""
	StringFormatByte     StringFormat = "byte"
	StringFormatBinary   StringFormat = "binary"
	StringFormatDate     StringFormat = "date"
	StringFormatDateTime StringFormat = "date-time"
	StringFormatPassword StringFormat = "password"
	StringFormatEmail    StringFormat = "email"
	StringFormatUUID     StringFormat = "uuid"
	StringFormatURI      StringFormat = "uri"
	StringFormatHostname StringFormat = "hostname"
	StringFormatIPv4     StringFormat = "ipv4"
	StringFormatIPv6     StringFormat = "ipv6"
)

// JSONType implements Format.
func (StringFormat) JSONType() Type { return TypeString }

// AnyFormat is a type-erased format: the JSON type it belongs to plus the
// format string ("" when generic).
type AnyFormat struct {
	Type   Type
	Format string
}

// IsGeneric reports whether no specific format is set.
func (f AnyFormat) IsGeneric() bool { return f.Format == "" }

func eraseFormat[F Format](f F) AnyFormat {
	return AnyFormat{Type: f.JSONType(), Format: string(f)}
}
