package fieldval

import "fmt"

// Membership and equality checks compare by value-equality of the
// normalized form: numeric values of different widths are equal when their
// values are equal, everything else compares by deep equality.

// In requires the value to be one of the given candidates.
func In(candidates ...any) Check {
	return func(f Field, value any) (Verdict, error) {
		if len(candidates) == 0 {
			return Verdict{}, fmt.Errorf("in: empty candidate set: %w", ErrNilArgument)
		}
		for _, c := range candidates {
			if equalValues(value, c) {
				return pass(f), nil
			}
		}
		return fail(f, "validation.in", map[string]any{"values": candidates}), nil
	}
}

// NotIn requires the value to be none of the given candidates.
func NotIn(candidates ...any) Check {
	return func(f Field, value any) (Verdict, error) {
		if len(candidates) == 0 {
			return Verdict{}, fmt.Errorf("not in: empty candidate set: %w", ErrNilArgument)
		}
		for _, c := range candidates {
			if equalValues(value, c) {
				return fail(f, "validation.not_in", map[string]any{"values": candidates}), nil
			}
		}
		return pass(f), nil
	}
}

// EqualTo requires the value to equal other.
func EqualTo(other any) Check {
	return func(f Field, value any) (Verdict, error) {
		if !equalValues(value, other) {
			return fail(f, "validation.equal_to", map[string]any{"other": other}), nil
		}
		return pass(f), nil
	}
}

// NotEqualTo requires the value to differ from other.
func NotEqualTo(other any) Check {
	return func(f Field, value any) (Verdict, error) {
		if equalValues(value, other) {
			return fail(f, "validation.not_equal_to", map[string]any{"other": other}), nil
		}
		return pass(f), nil
	}
}
