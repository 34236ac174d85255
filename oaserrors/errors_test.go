package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCoercionError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &CoercionError{
			Stage:    StageEncode,
			TypeName: "main.Widget",
			Cause:    errors.New("boom"),
		}
		expected := "coercion error during encode of main.Widget: boom"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &CoercionError{}
		if err.Error() != "coercion error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &CoercionError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrCoercion only", func(t *testing.T) {
		err := &CoercionError{Stage: StageParse}
		if !errors.Is(err, ErrCoercion) {
			t.Error("CoercionError should match ErrCoercion")
		}
		if errors.Is(err, ErrEncoding) {
			t.Error("CoercionError should not match ErrEncoding")
		}
	})

	t.Run("As extracts CoercionError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &CoercionError{Stage: StageParse})
		var coerceErr *CoercionError
		if !errors.As(err, &coerceErr) {
			t.Fatal("errors.As should succeed")
		}
		if coerceErr.Stage != StageParse {
			t.Errorf("unexpected stage: %s", coerceErr.Stage)
		}
	})
}

func TestEncodingError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &EncodingError{
			Path:     "[1]",
			TypeName: "chan int",
			Message:  "unsupported kind",
		}
		expected := "encoding error at [1] (type chan int): unsupported kind"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrEncoding", func(t *testing.T) {
		err := &EncodingError{}
		if !errors.Is(err, ErrEncoding) {
			t.Error("EncodingError should match ErrEncoding")
		}
		if errors.Is(err, ErrCoercion) {
			t.Error("EncodingError should not match ErrCoercion")
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Error message for missing component", func(t *testing.T) {
		err := &ReferenceError{
			Ref:     "#/components/schemas/Pet",
			Message: "not found",
		}
		expected := "reference error: #/components/schemas/Pet: not found"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for circular reference", func(t *testing.T) {
		err := &ReferenceError{
			Ref:        "#/components/schemas/Node",
			IsCircular: true,
		}
		expected := "circular reference: #/components/schemas/Node"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrReference and ErrCircularReference", func(t *testing.T) {
		err := &ReferenceError{IsCircular: true}
		if !errors.Is(err, ErrReference) {
			t.Error("ReferenceError should match ErrReference")
		}
		if !errors.Is(err, ErrCircularReference) {
			t.Error("circular ReferenceError should match ErrCircularReference")
		}
	})

	t.Run("Non-circular does not match ErrCircularReference", func(t *testing.T) {
		err := &ReferenceError{IsExternal: true}
		if errors.Is(err, ErrCircularReference) {
			t.Error("non-circular ReferenceError should not match ErrCircularReference")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "component name",
			Value:   "bad name",
			Message: "must match ^[a-zA-Z0-9._-]+$",
		}
		expected := "configuration error for component name (value: bad name): must match ^[a-zA-Z0-9._-]+$"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		if !errors.Is(&ConfigError{}, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}

func TestErrorChaining(t *testing.T) {
	root := errors.New("root cause")
	err := fmt.Errorf("outer: %w", &ReferenceError{
		Ref:   "#/components/schemas/A",
		Cause: &ConfigError{Option: "x", Cause: root},
	})

	if !errors.Is(err, ErrReference) {
		t.Error("chain should match ErrReference")
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("chain should match ErrConfig")
	}
	if !errors.Is(err, root) {
		t.Error("chain should reach root cause")
	}
}
