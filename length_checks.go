package fieldval

import "fmt"

// Length checks interpret text as its character count, numbers as a length
// truncated toward zero, and collections as their element count.

// MinLength requires the value's length to be at least min.
func MinLength(min int) Check {
	return func(f Field, value any) (Verdict, error) {
		if min < 0 {
			return Verdict{}, fmt.Errorf("min length %d: %w", min, ErrNegativeBound)
		}
		if isNil(value) {
			return failRequired(f), nil
		}
		n, err := lengthOf("min length", value)
		if err != nil {
			return Verdict{}, err
		}
		if n < min {
			return fail(f, "validation.min_length", map[string]any{"min": min, "length": n}), nil
		}
		return pass(f), nil
	}
}

// MaxLength requires the value's length to be at most max.
func MaxLength(max int) Check {
	return func(f Field, value any) (Verdict, error) {
		if max < 0 {
			return Verdict{}, fmt.Errorf("max length %d: %w", max, ErrNegativeBound)
		}
		if isNil(value) {
			return failRequired(f), nil
		}
		n, err := lengthOf("max length", value)
		if err != nil {
			return Verdict{}, err
		}
		if n > max {
			return fail(f, "validation.max_length", map[string]any{"max": max, "length": n}), nil
		}
		return pass(f), nil
	}
}

// ExactLength requires the value's length to be exactly the given value.
func ExactLength(exact int) Check {
	return func(f Field, value any) (Verdict, error) {
		if exact < 0 {
			return Verdict{}, fmt.Errorf("exact length %d: %w", exact, ErrNegativeBound)
		}
		if isNil(value) {
			return failRequired(f), nil
		}
		n, err := lengthOf("exact length", value)
		if err != nil {
			return Verdict{}, err
		}
		if n != exact {
			return fail(f, "validation.exact_length", map[string]any{"exact": exact, "length": n}), nil
		}
		return pass(f), nil
	}
}
