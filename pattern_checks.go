package fieldval

import (
	"fmt"
	"regexp"
	"strings"
)

// Textual checks require the value to be text. A non-text value is a
// validation failure ("must be text"), not a configuration error: text
// checks are routinely declared on loosely-typed fields.

// Email pattern: local part of 1-64 word/dot/dash characters not starting
// with a dot, then a domain of alphanumeric/dash characters, a dot, and a
// TLD of two or more letters.
var emailRegex = regexp.MustCompile(`^[\w-][\w.-]{0,63}@[A-Za-z0-9-]{1,255}\.[A-Za-z]{2,}$`)

func failNotText(f Field) Verdict {
	return fail(f, "validation.must_be_text", nil)
}

// Matches requires the value to match the given regular expression. An
// invalid pattern is a configuration error.
func Matches(pattern string) Check {
	regex, compileErr := regexp.Compile(pattern)
	return func(f Field, value any) (Verdict, error) {
		if compileErr != nil {
			return Verdict{}, fmt.Errorf("pattern %q: %w", pattern, compileErr)
		}
		s, ok := textOf(value)
		if !ok {
			return failNotText(f), nil
		}
		if !regex.MatchString(s) {
			return fail(f, "validation.pattern", map[string]any{"pattern": pattern}), nil
		}
		return pass(f), nil
	}
}

// EmailAddress requires the value to be a well-formed email address.
func EmailAddress() Check {
	return func(f Field, value any) (Verdict, error) {
		s, ok := textOf(value)
		if !ok {
			return failNotText(f), nil
		}
		if !emailRegex.MatchString(s) {
			return fail(f, "validation.email", nil), nil
		}
		return pass(f), nil
	}
}

// StartsWith requires the value to begin with the given prefix.
func StartsWith(prefix string) Check {
	return func(f Field, value any) (Verdict, error) {
		s, ok := textOf(value)
		if !ok {
			return failNotText(f), nil
		}
		if !strings.HasPrefix(s, prefix) {
			return fail(f, "validation.starts_with", map[string]any{"prefix": prefix}), nil
		}
		return pass(f), nil
	}
}

// EndsWith requires the value to end with the given suffix.
func EndsWith(suffix string) Check {
	return func(f Field, value any) (Verdict, error) {
		s, ok := textOf(value)
		if !ok {
			return failNotText(f), nil
		}
		if !strings.HasSuffix(s, suffix) {
			return fail(f, "validation.ends_with", map[string]any{"suffix": suffix}), nil
		}
		return pass(f), nil
	}
}

// Contains requires the value to contain the given substring.
func Contains(substring string) Check {
	return func(f Field, value any) (Verdict, error) {
		s, ok := textOf(value)
		if !ok {
			return failNotText(f), nil
		}
		if !strings.Contains(s, substring) {
			return fail(f, "validation.contains", map[string]any{"substring": substring}), nil
		}
		return pass(f), nil
	}
}
