// Package oaserrors provides structured error types for oasschema.
//
// Import path: github.com/erraggy/oasschema/oaserrors
//
// Callers distinguish error categories with [errors.Is] and pull out details
// with [errors.As].
//
// # Error Types
//
//   - [CoercionError]: an example value could not be turned into a generic JSON value
//   - [EncodingError]: a Go value has no JSON representation
//   - [ReferenceError]: a $ref could not be resolved against a component table
//   - [ConfigError]: invalid input to a component table or option
//
// # Sentinel Errors
//
//   - [ErrCoercion]: Matches any [CoercionError]
//   - [ErrEncoding]: Matches any [EncodingError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	node, err := schema.WithExample(node, payload, nil)
//	if errors.Is(err, oaserrors.ErrCoercion) {
//	    // the payload could not be encoded as JSON
//	}
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) && refErr.IsCircular {
//	    fmt.Printf("cycle through %s\n", refErr.Ref)
//	}
package oaserrors
