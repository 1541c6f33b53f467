package fieldval

import "time"

// Temporal checks accept date or date-time values only.

const dateLayout = "2006-01-02"

// Before requires the value to be strictly before the given instant.
func Before(bound time.Time) Check {
	return func(f Field, value any) (Verdict, error) {
		if isNil(value) {
			return failRequired(f), nil
		}
		t, err := dateOf("before", value)
		if err != nil {
			return Verdict{}, err
		}
		if !t.Before(bound) {
			return fail(f, "validation.date_before", map[string]any{"before": bound.Format(dateLayout)}), nil
		}
		return pass(f), nil
	}
}

// After requires the value to be strictly after the given instant.
func After(bound time.Time) Check {
	return func(f Field, value any) (Verdict, error) {
		if isNil(value) {
			return failRequired(f), nil
		}
		t, err := dateOf("after", value)
		if err != nil {
			return Verdict{}, err
		}
		if !t.After(bound) {
			return fail(f, "validation.date_after", map[string]any{"after": bound.Format(dateLayout)}), nil
		}
		return pass(f), nil
	}
}

// DateInRange requires the value to lie in [start, end], inclusive at both
// ends.
func DateInRange(start, end time.Time) Check {
	return func(f Field, value any) (Verdict, error) {
		if isNil(value) {
			return failRequired(f), nil
		}
		t, err := dateOf("date in range", value)
		if err != nil {
			return Verdict{}, err
		}
		inRange := (t.Equal(start) || t.After(start)) && (t.Equal(end) || t.Before(end))
		if !inRange {
			return fail(f, "validation.date_in_range", map[string]any{
				"start": start.Format(dateLayout),
				"end":   end.Format(dateLayout),
			}), nil
		}
		return pass(f), nil
	}
}
