package schema

import "github.com/erraggy/oasschema/jsonvalue"

// StringContext holds the constraints specific to string schemas.
type StringContext struct {
	minLength int
	maxLength *int
	pattern   string
}

// MinLength returns the minimum length (0 when unset).
func (s StringContext) MinLength() int { return s.minLength }

// MaxLength returns the maximum length, if set.
func (s StringContext) MaxLength() (int, bool) { return derefInt(s.maxLength) }

// Pattern returns the regular expression constraint ("" when unset).
func (s StringContext) Pattern() string { return s.pattern }

// WithMinLength returns a copy with the given minimum length.
func (s StringContext) WithMinLength(n int) StringContext {
	s.minLength = n
	return s
}

// WithMaxLength returns a copy with the given maximum length.
func (s StringContext) WithMaxLength(n int) StringContext {
	s.maxLength = &n
	return s
}

// WithPattern returns a copy with the given pattern.
func (s StringContext) WithPattern(pattern string) StringContext {
	s.pattern = pattern
	return s
}

// Equal reports whether both contexts hold the same constraints.
func (s StringContext) Equal(other StringContext) bool {
	return s.minLength == other.minLength &&
		s.pattern == other.pattern &&
		intPtrEqual(s.maxLength, other.maxLength)
}

func (s StringContext) encodeFields(b *jsonvalue.ObjectBuilder, _ *encodeConfig) {
	if s.minLength > 0 {
		b.Set("minLength", jsonvalue.Int(int64(s.minLength)))
	}
	if s.maxLength != nil {
		b.Set("maxLength", jsonvalue.Int(int64(*s.maxLength)))
	}
	if s.pattern != "" {
		b.Set("pattern", jsonvalue.String(s.pattern))
	}
}
