package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrCoercion indicates a value could not be turned into a generic JSON value.
	ErrCoercion = errors.New("coercion error")

	// ErrEncoding indicates a value has no JSON representation.
	ErrEncoding = errors.New("encoding error")

	// ErrReference indicates a $ref could not be resolved.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a chain of $refs loops back on itself.
	ErrCircularReference = errors.New("circular reference")

	// ErrConfig indicates an invalid configuration or input.
	ErrConfig = errors.New("configuration error")
)

// Coercion stages reported by CoercionError.Stage.
const (
	StageEncode = "encode"
	StageParse  = "parse"
)

// CoercionError is returned when attaching an example value fails because the
// supplied value could not be converted into a generic JSON value, either
// because the byte encoder failed or because its output did not parse.
type CoercionError struct {
	// Stage is StageEncode or StageParse
	Stage string
	// TypeName is the Go type of the value being coerced
	TypeName string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *CoercionError) Error() string {
	msg := "coercion error"
	if e.Stage != "" {
		msg += " during " + e.Stage
	}
	if e.TypeName != "" {
		msg += " of " + e.TypeName
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *CoercionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *CoercionError) Is(target error) bool {
	return target == ErrCoercion
}

// EncodingError is returned when a Go value has no generic JSON representation,
// for example a channel, a complex number or a NaN float in an allowed-values list.
type EncodingError struct {
	// Path locates the offending value inside the input (e.g. "[2].name")
	Path string
	// TypeName is the Go type that could not be represented
	TypeName string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *EncodingError) Error() string {
	msg := "encoding error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.TypeName != "" {
		msg += fmt.Sprintf(" (type %s)", e.TypeName)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// ReferenceError represents a failure to resolve a $ref against a component table.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// IsCircular is true if this error is due to a circular reference
	IsCircular bool
	// IsExternal is true if the reference points outside the component table
	IsExternal bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrCircularReference when IsCircular is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	return target == ErrCircularReference && e.IsCircular
}

// ConfigError represents an invalid configuration or input.
// This includes invalid component names and conflicting registrations.
type ConfigError struct {
	// Option is the name of the problematic configuration option or input
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
