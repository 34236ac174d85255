package schema

import (
	"math"

	"github.com/erraggy/oasschema/jsonvalue"
)

// Bound is an inclusive or exclusive numeric limit.
type Bound struct {
	Value     float64
	Exclusive bool
}

// NumericContext holds the constraints shared by number and integer schemas.
type NumericContext struct {
	multipleOf *float64
	maximum    *Bound
	minimum    *Bound
}

// MultipleOf returns the multipleOf divisor, if set.
func (n NumericContext) MultipleOf() (float64, bool) {
	if n.multipleOf == nil {
		return 0, false
	}
	return *n.multipleOf, true
}

// Maximum returns the upper bound, if set.
func (n NumericContext) Maximum() (Bound, bool) { return derefBound(n.maximum) }

// Minimum returns the lower bound, if set.
func (n NumericContext) Minimum() (Bound, bool) { return derefBound(n.minimum) }

// WithMultipleOf returns a copy with the given divisor. NaN and infinities
// have no JSON form; the receiver is returned unchanged for them.
func (n NumericContext) WithMultipleOf(divisor float64) NumericContext {
	if !finite(divisor) {
		return n
	}
	n.multipleOf = &divisor
	return n
}

// WithMaximum returns a copy with the given upper bound. A non-finite value
// leaves the receiver unchanged.
func (n NumericContext) WithMaximum(value float64, exclusive bool) NumericContext {
	if !finite(value) {
		return n
	}
	n.maximum = &Bound{Value: value, Exclusive: exclusive}
	return n
}

// WithMinimum returns a copy with the given lower bound. A non-finite value
// leaves the receiver unchanged.
func (n NumericContext) WithMinimum(value float64, exclusive bool) NumericContext {
	if !finite(value) {
		return n
	}
	n.minimum = &Bound{Value: value, Exclusive: exclusive}
	return n
}

// Equal reports whether both contexts hold the same constraints.
func (n NumericContext) Equal(other NumericContext) bool {
	if (n.multipleOf == nil) != (other.multipleOf == nil) {
		return false
	}
	if n.multipleOf != nil && *n.multipleOf != *other.multipleOf {
		return false
	}
	return boundPtrEqual(n.maximum, other.maximum) && boundPtrEqual(n.minimum, other.minimum)
}

func (n NumericContext) encodeFields(b *jsonvalue.ObjectBuilder, cfg *encodeConfig) {
	if n.multipleOf != nil {
		b.Set("multipleOf", jsonvalue.Float(*n.multipleOf))
	}
	encodeBound(b, cfg, n.maximum, "maximum", "exclusiveMaximum")
	encodeBound(b, cfg, n.minimum, "minimum", "exclusiveMinimum")
}

// encodeBound writes a limit either as "maximum" + "exclusiveMaximum": true
// (OAS 3.0) or as a numeric "exclusiveMaximum" alone (OAS 3.1).
func encodeBound(b *jsonvalue.ObjectBuilder, cfg *encodeConfig, bound *Bound, key, exclusiveKey string) {
	if bound == nil {
		return
	}
	value := jsonvalue.Float(bound.Value)
	switch {
	case !bound.Exclusive:
		b.Set(key, value)
	case cfg.boundStyle == BoundValue:
		b.Set(exclusiveKey, value)
	default:
		b.Set(key, value)
		b.Set(exclusiveKey, jsonvalue.Bool(true))
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func derefBound(b *Bound) (Bound, bool) {
	if b == nil {
		return Bound{}, false
	}
	return *b, true
}

func boundPtrEqual(a, b *Bound) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
