package fieldval

import (
	"net/url"
	"regexp"

	"github.com/google/uuid"
)

var (
	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// URL requires the value to be text parseable as an absolute URL with a
// scheme and host.
func URL() Check {
	return func(f Field, value any) (Verdict, error) {
		s, ok := textOf(value)
		if !ok {
			return failNotText(f), nil
		}
		u, err := url.ParseRequestURI(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fail(f, "validation.url", nil), nil
		}
		return pass(f), nil
	}
}

// UUIDString requires the value to be text in canonical UUID form.
func UUIDString() Check {
	return func(f Field, value any) (Verdict, error) {
		s, ok := textOf(value)
		if !ok {
			return failNotText(f), nil
		}
		// Fast rejection before parsing: canonical form only.
		if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return fail(f, "validation.uuid", nil), nil
		}
		if _, err := uuid.Parse(s); err != nil {
			return fail(f, "validation.uuid", nil), nil
		}
		return pass(f), nil
	}
}

// Alphanumeric requires the value to be non-empty text of letters and
// digits only.
func Alphanumeric() Check {
	return func(f Field, value any) (Verdict, error) {
		s, ok := textOf(value)
		if !ok {
			return failNotText(f), nil
		}
		if !alphanumericRegex.MatchString(s) {
			return fail(f, "validation.alphanumeric", nil), nil
		}
		return pass(f), nil
	}
}

// NumericString requires the value to be non-empty text of digits only.
func NumericString() Check {
	return func(f Field, value any) (Verdict, error) {
		s, ok := textOf(value)
		if !ok {
			return failNotText(f), nil
		}
		if !numericStringRegex.MatchString(s) {
			return fail(f, "validation.numeric_string", nil), nil
		}
		return pass(f), nil
	}
}
