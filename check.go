package fieldval

import (
	"fmt"
	"reflect"
	"strings"
)

// Check evaluates a single rule against the current value of a field. It is
// a pure function closed over its configuration: the same inputs always
// yield the same outcome. The Verdict carries a validation failure; the
// error carries a configuration problem (unsupported value shape, nil
// argument) and is never used for ordinary failed validation.
type Check func(f Field, value any) (Verdict, error)

// pass builds the success verdict for a field.
func pass(f Field) Verdict {
	return Verdict{Valid: true, Field: f.Name, FieldType: f.Type}
}

// fail builds a failure verdict, rendering the message from the built-in
// template for key. The field name is always available to templates.
func fail(f Field, key string, args map[string]any) Verdict {
	if args == nil {
		args = make(map[string]any, 1)
	}
	args["field"] = f.Name
	return Verdict{
		Field:     f.Name,
		FieldType: f.Type,
		Message:   defaultFormat(key, args),
		Key:       key,
		Args:      args,
	}
}

// failRequired is the fixed verdict for an absent value.
func failRequired(f Field) Verdict {
	return fail(f, "validation.required", nil)
}

// Required fails for absent values: nil, whitespace-only text, and empty
// collections. Any other value passes.
func Required() Check {
	return func(f Field, value any) (Verdict, error) {
		if isNil(value) {
			return failRequired(f), nil
		}
		if s, ok := textOf(value); ok {
			if strings.TrimSpace(s) == "" {
				return failRequired(f), nil
			}
			return pass(f), nil
		}
		rv := reflect.ValueOf(indirect(value))
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			if rv.Len() == 0 {
				return failRequired(f), nil
			}
		}
		return pass(f), nil
	}
}

// Custom wraps a caller-supplied predicate. The message is used verbatim
// when the predicate rejects the value; when empty, a generic one is used.
func Custom(predicate func(value any) bool, message string) Check {
	return func(f Field, value any) (Verdict, error) {
		if predicate == nil {
			return Verdict{}, fmt.Errorf("custom check: %w", ErrNilArgument)
		}
		if predicate(value) {
			return pass(f), nil
		}
		v := fail(f, "validation.custom", nil)
		if message != "" {
			v.Message = message
		}
		return v, nil
	}
}
