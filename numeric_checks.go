package fieldval

import "fmt"

// Magnitude checks compare the normalized magnitude of the value against
// one or two bounds. Bounds go through the same normalization as values,
// so a date field can be compared against a time.Time bound and a duration
// field against a time.Duration bound.

func compareMagnitude(name, key string, bound any, cmp func(v, b float64) bool) Check {
	return func(f Field, value any) (Verdict, error) {
		if isNil(bound) {
			return Verdict{}, fmt.Errorf("%s bound: %w", name, ErrNilArgument)
		}
		if isNil(value) {
			return failRequired(f), nil
		}
		b, err := magnitudeOf(name, bound)
		if err != nil {
			return Verdict{}, err
		}
		v, err := magnitudeOf(name, value)
		if err != nil {
			return Verdict{}, err
		}
		if !cmp(v, b) {
			return fail(f, key, map[string]any{"bound": bound}), nil
		}
		return pass(f), nil
	}
}

// GreaterThan requires the value's magnitude to exceed the bound.
func GreaterThan(bound any) Check {
	return compareMagnitude("greater than", "validation.greater_than", bound,
		func(v, b float64) bool { return v > b })
}

// LessThan requires the value's magnitude to be below the bound.
func LessThan(bound any) Check {
	return compareMagnitude("less than", "validation.less_than", bound,
		func(v, b float64) bool { return v < b })
}

// GreaterOrEqual requires the value's magnitude to be at least the bound.
func GreaterOrEqual(bound any) Check {
	return compareMagnitude("greater or equal", "validation.greater_or_equal", bound,
		func(v, b float64) bool { return v >= b })
}

// LessOrEqual requires the value's magnitude to be at most the bound.
func LessOrEqual(bound any) Check {
	return compareMagnitude("less or equal", "validation.less_or_equal", bound,
		func(v, b float64) bool { return v <= b })
}

func betweenMagnitude(name, key string, min, max any, cmp func(v, lo, hi float64) bool) Check {
	return func(f Field, value any) (Verdict, error) {
		if isNil(min) || isNil(max) {
			return Verdict{}, fmt.Errorf("%s bounds: %w", name, ErrNilArgument)
		}
		if isNil(value) {
			return failRequired(f), nil
		}
		lo, err := magnitudeOf(name, min)
		if err != nil {
			return Verdict{}, err
		}
		hi, err := magnitudeOf(name, max)
		if err != nil {
			return Verdict{}, err
		}
		v, err := magnitudeOf(name, value)
		if err != nil {
			return Verdict{}, err
		}
		if !cmp(v, lo, hi) {
			return fail(f, key, map[string]any{"min": min, "max": max}), nil
		}
		return pass(f), nil
	}
}

// Between requires the value's magnitude to lie in [min, max].
func Between(min, max any) Check {
	return betweenMagnitude("between", "validation.between", min, max,
		func(v, lo, hi float64) bool { return v >= lo && v <= hi })
}

// BetweenExclusive requires the value's magnitude to lie in (min, max).
func BetweenExclusive(min, max any) Check {
	return betweenMagnitude("between exclusive", "validation.between_exclusive", min, max,
		func(v, lo, hi float64) bool { return v > lo && v < hi })
}

// NotPositive requires a number or duration to be zero or below.
func NotPositive() Check {
	return func(f Field, value any) (Verdict, error) {
		if isNil(value) {
			return failRequired(f), nil
		}
		v, err := signOf("not positive", value)
		if err != nil {
			return Verdict{}, err
		}
		if v > 0 {
			return fail(f, "validation.not_positive", nil), nil
		}
		return pass(f), nil
	}
}

// NotNegative requires a number or duration to be zero or above.
func NotNegative() Check {
	return func(f Field, value any) (Verdict, error) {
		if isNil(value) {
			return failRequired(f), nil
		}
		v, err := signOf("not negative", value)
		if err != nil {
			return Verdict{}, err
		}
		if v < 0 {
			return fail(f, "validation.not_negative", nil), nil
		}
		return pass(f), nil
	}
}
